package memstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	domain "github.com/deuslabs/pitchboard/internal/domain/projects"
)

// ProjectRepository is an in-memory implementation of the registry
// port. It mimics a remote backend: mutating calls wait a configurable
// latency before touching state, and any failure happens before the
// mutation so a failed call never leaves partial state behind.
//
// Instances are explicitly constructed and injectable; there is no
// package-level state.
type ProjectRepository struct {
	mu      sync.RWMutex
	items   []*domain.Project // newest first
	latency time.Duration
}

func NewProjectRepository(latency time.Duration) *ProjectRepository {
	return &ProjectRepository{latency: latency}
}

// Seed appends existing records after anything already stored; pass
// them newest first. Intended for demo data and tests.
func (r *ProjectRepository) Seed(ps ...*domain.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, ps...)
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	if p.FileKey == "" {
		return domain.ErrEmptyFileKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.ID == p.ID {
			return fmt.Errorf("duplicate project id: %s", p.ID)
		}
	}
	cp := *p
	r.items = append([]*domain.Project{&cp}, r.items...)
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, id domain.ID, upd domain.Update) error {
	if err := r.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == id {
			upd.Apply(p)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProjectRepository) Remove(ctx context.Context, id domain.ID) error {
	if err := r.wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items[:0]
	for _, p := range r.items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.items = out
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(), nil
}

func (r *ProjectRepository) Search(ctx context.Context, query string) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.snapshot(), nil
	}
	var out []*domain.Project
	for _, p := range r.items {
		if p.Matches(q) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Project
	for _, p := range r.items {
		if p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// wait simulates the remote round trip. Runs before any mutation.
func (r *ProjectRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.latency):
		return nil
	}
}

func (r *ProjectRepository) snapshot() []*domain.Project {
	out := make([]*domain.Project, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out
}
