package module

import (
	"context"

	"gitinsight/internal/services/api/insight/domain"
	isvc "gitinsight/internal/services/api/insight/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptInsightPort exposes service methods as module ports for cross-module usage
type adaptInsightPort struct{ svc isvc.Service }

func (a adaptInsightPort) Profile(ctx context.Context, username string) (map[string]any, error) {
	return a.svc.Profile(ctx, username)
}

func (a adaptInsightPort) Repos(ctx context.Context, username string) ([]map[string]any, error) {
	return a.svc.Repos(ctx, username)
}

func (a adaptInsightPort) Insight(ctx context.Context, username, repoName string) (domain.RepoInsight, error) {
	return a.svc.Insight(ctx, username, repoName)
}

func (a adaptInsightPort) EditImage(ctx context.Context, in domain.EditImageInput) (domain.EditImageResult, error) {
	return a.svc.EditImage(ctx, in)
}
