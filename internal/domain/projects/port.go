package projects

import "context"

// Repository port (interface for the project registry backend).
// Ordering contract: List and Search return newest-first.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, id ID, upd Update) error
	Remove(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Search(ctx context.Context, query string) ([]*Project, error)
	Count(ctx context.Context) (int, error)
	ListByStatus(ctx context.Context, status Status) ([]*Project, error)
}
