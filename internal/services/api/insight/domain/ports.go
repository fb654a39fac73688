package domain

import "context"

// ProfilePort is the upstream profile surface the service consumes
type ProfilePort interface {
	Profile(ctx context.Context, username string) (map[string]any, error)
	Repos(ctx context.Context, username string) ([]map[string]any, error)
	Readme(ctx context.Context, owner, repo string) (string, bool, error)
}

// SummarizerPort is the content generation surface the service consumes
type SummarizerPort interface {
	Summarize(ctx context.Context, content string) (string, error)
	DescribeImage(ctx context.Context, data []byte, mimeType, prompt string) (string, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Profile(ctx context.Context, username string) (map[string]any, error)
	Repos(ctx context.Context, username string) ([]map[string]any, error)
	Insight(ctx context.Context, username, repoName string) (RepoInsight, error)
	EditImage(ctx context.Context, in EditImageInput) (EditImageResult, error)
}
