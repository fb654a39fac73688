// Package http provides http transport for insight
package http

import (
	stdhttp "net/http"

	"gitinsight/internal/modkit/httpkit"
	"gitinsight/internal/services/api/insight/domain"
	svc "gitinsight/internal/services/api/insight/service"
)

// Register mounts insight endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// raw upstream bags
	httpkit.Get(r, "/profile/{username}", h.profile)
	httpkit.Get(r, "/repos/{username}", h.repos)

	// README summary for a single repo
	httpkit.Get(r, "/{username}/{repoName}", h.insight)

	// image description round trip
	httpkit.PostJSON[domain.EditImageInput](r, "/edit-image", h.editImage)
}

type handlers struct{ svc svc.Service }

// @Summary User profile
// @Tags Insight
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} map[string]any "ok"
// @Router /profile/{username} [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	return h.svc.Profile(r.Context(), httpkit.Param(r, "username"))
}

// @Summary User repositories
// @Tags Insight
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {array} map[string]any "ok"
// @Router /repos/{username} [get]
func (h *handlers) repos(r *stdhttp.Request) (any, error) {
	return h.svc.Repos(r.Context(), httpkit.Param(r, "username"))
}

// @Summary Two sentence README summary for a repo
// @Tags Insight
// @Produce json
// @Param username path string true "GitHub login"
// @Param repoName path string true "Repository name"
// @Success 200 {object} domain.RepoInsight "ok"
// @Router /{username}/{repoName} [get]
func (h *handlers) insight(r *stdhttp.Request) (any, error) {
	return h.svc.Insight(r.Context(), httpkit.Param(r, "username"), httpkit.Param(r, "repoName"))
}

// @Summary Describe an uploaded image
// @Tags Insight
// @Accept json
// @Produce json
// @Param payload body domain.EditImageInput true "Image and prompt"
// @Success 200 {object} domain.EditImageResult "ok"
// @Router /edit-image [post]
func (h *handlers) editImage(r *stdhttp.Request, in domain.EditImageInput) (any, error) {
	return h.svc.EditImage(r.Context(), in)
}
