// Package service contains candidates workflows
package service

import (
	"context"
	"strings"

	"gitinsight/internal/modkit/repokit"
	perr "gitinsight/internal/platform/errors"
	"gitinsight/internal/services/api/candidates/domain"
	"gitinsight/internal/services/api/candidates/repo"
)

// Service defines the candidates service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the candidates service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a candidates service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("candidates.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("candidates.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Save stores a shortlist entry, replacing any previous save for the username
func (s *Svc) Save(ctx context.Context, in domain.SaveInput) (domain.Candidate, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return domain.Candidate{}, perr.Newf(perr.ErrorCodeValidation, "username is required")
	}

	row, err := s.Repo.Upsert(ctx, repo.UpsertInput{
		Username:  in.Username,
		Name:      in.Name,
		AvatarURL: in.AvatarURL,
		Bio:       in.Bio,
		Summary:   in.Summary,
	})
	if err != nil {
		return domain.Candidate{}, err
	}
	return toCandidate(row), nil
}

// List returns all shortlist entries, most recently saved first
func (s *Svc) List(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Candidate, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCandidate(r))
	}
	return out, nil
}

// Delete removes a shortlist entry, missing ids are a no-op
func (s *Svc) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return perr.InvalidArgf("candidate id must be positive")
	}
	return s.Repo.Delete(ctx, id)
}

func toCandidate(r repo.Row) domain.Candidate {
	return domain.Candidate{
		ID:        r.ID,
		Username:  r.Username,
		Name:      r.Name,
		AvatarURL: r.AvatarURL,
		Bio:       r.Bio,
		Summary:   r.Summary,
		SavedAt:   r.SavedAt,
	}
}
