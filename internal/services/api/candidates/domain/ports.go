package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Save(ctx context.Context, in SaveInput) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	Delete(ctx context.Context, id int64) error
}
