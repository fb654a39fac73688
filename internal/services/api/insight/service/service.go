// Package service contains insight workflows
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"gitinsight/internal/platform/logger"
	"gitinsight/internal/services/api/insight/domain"
)

const (
	defaultReadmeTimeout    = 10 * time.Second
	defaultSummarizeTimeout = 30 * time.Second

	defaultMimeType = "image/png"
)

// Service defines the insight service contract
type Service interface {
	domain.ServicePort
}

// Config tunes per call deadlines
type Config struct {
	ReadmeTimeout    time.Duration
	SummarizeTimeout time.Duration
}

// Svc implements the insight service
type Svc struct {
	profiles   domain.ProfilePort
	summarizer domain.SummarizerPort
	cfg        Config
	log        logger.Logger
}

// New constructs an insight service
func New(profiles domain.ProfilePort, summarizer domain.SummarizerPort, cfg Config) *Svc {
	if profiles == nil {
		panic("insight.Service requires a non nil ProfilePort")
	}
	if summarizer == nil {
		panic("insight.Service requires a non nil SummarizerPort")
	}
	if cfg.ReadmeTimeout <= 0 {
		cfg.ReadmeTimeout = defaultReadmeTimeout
	}
	if cfg.SummarizeTimeout <= 0 {
		cfg.SummarizeTimeout = defaultSummarizeTimeout
	}
	return &Svc{
		profiles:   profiles,
		summarizer: summarizer,
		cfg:        cfg,
		log:        *logger.Named("insight"),
	}
}

// Profile returns the upstream profile bag untouched
func (s *Svc) Profile(ctx context.Context, username string) (map[string]any, error) {
	return s.profiles.Profile(ctx, username)
}

// Repos returns the upstream repo bags untouched
func (s *Svc) Repos(ctx context.Context, username string) ([]map[string]any, error) {
	return s.profiles.Repos(ctx, username)
}

// Insight fetches the repo README and condenses it to a recruiter summary
// a missing or unreachable README degrades to empty content rather than failing
func (s *Svc) Insight(ctx context.Context, username, repoName string) (domain.RepoInsight, error) {
	content := s.readme(ctx, username, repoName)

	sctx, cancel := context.WithTimeout(ctx, s.cfg.SummarizeTimeout)
	defer cancel()

	summary, err := s.summarizer.Summarize(sctx, content)
	if err != nil {
		return domain.RepoInsight{}, err
	}
	return domain.RepoInsight{RepoName: repoName, Summary: summary}, nil
}

func (s *Svc) readme(ctx context.Context, username, repoName string) string {
	rctx, cancel := context.WithTimeout(ctx, s.cfg.ReadmeTimeout)
	defer cancel()

	content, ok, err := s.profiles.Readme(rctx, username, repoName)
	if err != nil {
		s.log.Debug().Err(err).
			Str("username", username).
			Str("repo", repoName).
			Msg("readme fetch degraded to empty content")
		return ""
	}
	if !ok {
		return ""
	}
	return content
}

// EditImage decodes a data-URI image and asks the model about it
// always success shaped, any failure is reported as text in the result
func (s *Svc) EditImage(ctx context.Context, in domain.EditImageInput) (domain.EditImageResult, error) {
	data, mime, err := decodeDataURI(in.Image, in.MimeType)
	if err != nil {
		s.log.Debug().Err(err).Msg("edit image payload rejected")
		return domain.EditImageResult{Result: fmt.Sprintf("Could not read the image: %v", err)}, nil
	}

	sctx, cancel := context.WithTimeout(ctx, s.cfg.SummarizeTimeout)
	defer cancel()

	out, err := s.summarizer.DescribeImage(sctx, data, mime, in.Prompt)
	if err != nil {
		s.log.Warn().Err(err).Msg("edit image generation failed")
		return domain.EditImageResult{Result: fmt.Sprintf("Image processing failed: %v", err)}, nil
	}
	return domain.EditImageResult{Result: out}, nil
}

// decodeDataURI strips an optional data-URI header up to the first comma and
// base64 decodes the remainder
func decodeDataURI(s, mimeHint string) ([]byte, string, error) {
	payload := s
	mime := strings.TrimSpace(mimeHint)
	// base64 never contains a comma so anything before one is a data-URI header
	if idx := strings.Index(s, ","); idx >= 0 {
		header := s[:idx]
		payload = s[idx+1:]
		if mime == "" && strings.HasPrefix(header, "data:") {
			// data:image/png;base64 -> image/png
			h := strings.TrimPrefix(header, "data:")
			if semi := strings.Index(h, ";"); semi >= 0 {
				h = h[:semi]
			}
			mime = h
		}
	}
	if mime == "" {
		mime = defaultMimeType
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image payload")
	}
	return data, mime, nil
}
