package analysis

import (
	"context"
	"time"

	domain "github.com/deuslabs/pitchboard/internal/domain/analysis"
	"github.com/deuslabs/pitchboard/internal/domain/projects"
	"github.com/deuslabs/pitchboard/internal/platform/logger"
)

// Service resolves analysis reports for projects. Reports are never
// cached here; every Fetch recomputes through the configured source.
type Service struct {
	Projects projects.Repository
	Source   domain.Source
	Log      *logger.Logger

	// Latency simulates the round trip of a real analytics backend.
	// Zero in tests.
	Latency time.Duration
}

func NewService(repo projects.Repository, source domain.Source, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{Projects: repo, Source: source, Log: log}
}

// Fetch looks the project up and derives its report. An unknown id
// surfaces projects.ErrNotFound for the caller's error view.
func (s *Service) Fetch(ctx context.Context, id projects.ID) (*domain.Report, error) {
	p, err := s.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Latency):
		}
	}

	report, err := s.Source.Fetch(ctx, p)
	if err != nil {
		s.Log.Error("analysis fetch failed", "id", id, "error", err)
		return nil, err
	}
	return report, nil
}

// Refetch re-runs the derivation for the same id. Equivalent to Fetch;
// kept as a named entry point for manual refresh callers.
func (s *Service) Refetch(ctx context.Context, id projects.ID) (*domain.Report, error) {
	return s.Fetch(ctx, id)
}
