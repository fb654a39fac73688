package module

import (
	"context"

	"gitinsight/internal/services/api/candidates/domain"
	csvc "gitinsight/internal/services/api/candidates/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCandidatesPort exposes service methods as module ports for cross-module usage
type adaptCandidatesPort struct{ svc csvc.Service }

func (a adaptCandidatesPort) Save(ctx context.Context, in domain.SaveInput) (domain.Candidate, error) {
	return a.svc.Save(ctx, in)
}

func (a adaptCandidatesPort) List(ctx context.Context) ([]domain.Candidate, error) {
	return a.svc.List(ctx)
}

func (a adaptCandidatesPort) Delete(ctx context.Context, id int64) error {
	return a.svc.Delete(ctx, id)
}
