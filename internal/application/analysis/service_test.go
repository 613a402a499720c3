package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/deuslabs/pitchboard/internal/domain/analysis"
	"github.com/deuslabs/pitchboard/internal/domain/projects"
	"github.com/deuslabs/pitchboard/internal/infra/memstore"
)

// countingSource derives a trivial report and counts invocations.
type countingSource struct {
	calls int
	err   error
}

func (s *countingSource) Fetch(ctx context.Context, p *projects.Project) (*domain.Report, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Report{ID: p.ID, ProjectName: p.Name, Status: projects.StatusCompleted}, nil
}

func seededRepo(t *testing.T) *memstore.ProjectRepository {
	t.Helper()
	repo := memstore.NewProjectRepository(0)
	repo.Seed(&projects.Project{
		ID:        "p1",
		Name:      "Investor Pitch",
		FileKey:   "mock_1_pitch.mp3",
		CreatedAt: time.Now().UTC(),
		Status:    projects.StatusPending,
	})
	return repo
}

func TestServiceFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("derives a report for a known project", func(t *testing.T) {
		src := &countingSource{}
		svc := NewService(seededRepo(t), src, nil)

		r, err := svc.Fetch(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, projects.ID("p1"), r.ID)
		assert.Equal(t, "Investor Pitch", r.ProjectName)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("unknown id surfaces ErrNotFound without calling the source", func(t *testing.T) {
		src := &countingSource{}
		svc := NewService(seededRepo(t), src, nil)

		_, err := svc.Fetch(ctx, "no-such-id")
		assert.ErrorIs(t, err, projects.ErrNotFound)
		assert.Zero(t, src.calls)
	})

	t.Run("source failure propagates", func(t *testing.T) {
		src := &countingSource{err: domain.ErrUnavailable}
		svc := NewService(seededRepo(t), src, nil)

		_, err := svc.Fetch(ctx, "p1")
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("refetch recomputes instead of caching", func(t *testing.T) {
		src := &countingSource{}
		svc := NewService(seededRepo(t), src, nil)

		_, err := svc.Fetch(ctx, "p1")
		require.NoError(t, err)
		_, err = svc.Refetch(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("cancelled context aborts the simulated latency", func(t *testing.T) {
		src := &countingSource{}
		svc := NewService(seededRepo(t), src, nil)
		svc.Latency = time.Minute

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Fetch(ctx, "p1")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, src.calls)
	})
}
