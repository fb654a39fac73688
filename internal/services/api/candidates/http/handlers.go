// Package http provides http transport for candidates
package http

import (
	stdhttp "net/http"

	"gitinsight/internal/modkit/httpkit"
	"gitinsight/internal/services/api/candidates/domain"
	svc "gitinsight/internal/services/api/candidates/service"
)

// Register mounts candidates endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SaveInput](r, "/", h.save)
	httpkit.Get(r, "/", h.list)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary Save a candidate to the shortlist
// @Tags Candidates
// @Accept json
// @Produce json
// @Param payload body domain.SaveInput true "Candidate"
// @Success 200 {object} domain.Candidate "ok"
// @Router /candidates [post]
func (h *handlers) save(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	return h.svc.Save(r.Context(), in)
}

// @Summary List shortlisted candidates
// @Tags Candidates
// @Produce json
// @Success 200 {array} domain.Candidate "ok"
// @Router /candidates [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Remove a candidate from the shortlist
// @Tags Candidates
// @Produce json
// @Param id path int true "Candidate id"
// @Success 204 "no content"
// @Router /candidates/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
