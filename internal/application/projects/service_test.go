package projects

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/deuslabs/pitchboard/internal/domain/projects"
	"github.com/deuslabs/pitchboard/internal/infra/memstore"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

// countingRepo counts writes so tests can assert the registry was
// never touched on a rejected form submit.
type countingRepo struct {
	domain.Repository
	creates int
}

func (r *countingRepo) Create(ctx context.Context, p *domain.Project) error {
	r.creates++
	return r.Repository.Create(ctx, p)
}

func newTestService() (*Service, *countingRepo) {
	repo := &countingRepo{Repository: memstore.NewProjectRepository(0)}
	svc := NewService(repo, fixedClock{at: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)}, nil)
	return svc, repo
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a pending project with generated id and timestamp", func(t *testing.T) {
		svc, _ := newTestService()
		p, err := svc.Create(ctx, CreateProjectCommand{
			Name:    "Investor Pitch",
			Context: "Series A deck",
			FileKey: "mock_1_pitch.mp3",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, domain.StatusPending, p.Status)
		assert.Equal(t, time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC), p.CreatedAt)

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("rejects an empty file key and retains the error", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create(ctx, CreateProjectCommand{Name: "No file"})
		assert.ErrorIs(t, err, domain.ErrEmptyFileKey)
		assert.Zero(t, repo.creates)
		assert.Equal(t, domain.ErrEmptyFileKey.Error(), svc.LastError())

		svc.ClearError()
		assert.Empty(t, svc.LastError())
	})

	t.Run("a successful mutation clears the retained error", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(ctx, CreateProjectCommand{Name: "No file"})
		require.Error(t, err)
		require.NotEmpty(t, svc.LastError())

		_, err = svc.Create(ctx, CreateProjectCommand{Name: "Ok", FileKey: "key1"})
		require.NoError(t, err)
		assert.Empty(t, svc.LastError())
	})
}

func TestServiceCreateFromUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("no file selected", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.CreateFromUpload(ctx, CreateFromUploadCommand{Name: "Pitch"})

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "file", fieldErr.Field)
		assert.Equal(t, "Please select a file to upload", fieldErr.Message)
		assert.Zero(t, repo.creates)
	})

	t.Run("upload still in flight", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.CreateFromUpload(ctx, CreateFromUploadCommand{
			Name:      "Pitch",
			FileName:  "pitch.mp3",
			Uploading: true,
		})

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "Please wait for the file to finish uploading", fieldErr.Message)
		assert.Zero(t, repo.creates)
	})

	t.Run("upload resolved but key missing", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.CreateFromUpload(ctx, CreateFromUploadCommand{
			Name:     "Pitch",
			FileName: "pitch.mp3",
		})

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "Please wait for the file to finish uploading", fieldErr.Message)
		assert.Zero(t, repo.creates)
	})

	t.Run("blank name falls back to the file base name", func(t *testing.T) {
		svc, _ := newTestService()
		p, err := svc.CreateFromUpload(ctx, CreateFromUploadCommand{
			FileName: "quarterly.report.pdf",
			FileKey:  "mock_1_quarterly.report.pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "quarterly", p.Name)
	})

	t.Run("typed name wins over the file name", func(t *testing.T) {
		svc, _ := newTestService()
		p, err := svc.CreateFromUpload(ctx, CreateFromUploadCommand{
			Name:     "Board Update",
			Context:  "Q3 numbers",
			FileName: "update.mp3",
			FileKey:  "mock_2_update.mp3",
		})
		require.NoError(t, err)
		assert.Equal(t, "Board Update", p.Name)
		assert.Equal(t, "Q3 numbers", p.Context)
		assert.Equal(t, "mock_2_update.mp3", p.FileKey)
	})
}

func TestServiceUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	p, err := svc.Create(ctx, CreateProjectCommand{Name: "Pitch", FileKey: "key1"})
	require.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		status := domain.StatusCompleted
		require.NoError(t, svc.Update(ctx, p.ID, domain.Update{Status: &status}))

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, got.Status)
		assert.Equal(t, "Pitch", got.Name)
	})

	t.Run("updating a missing id", func(t *testing.T) {
		name := "ghost"
		err := svc.Update(ctx, "no-such-id", domain.Update{Name: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotEmpty(t, svc.LastError())
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, p.ID))
		require.NoError(t, svc.Delete(ctx, p.ID))
		_, err := svc.Get(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for i, status := range []domain.Status{
		domain.StatusCompleted,
		domain.StatusCompleted,
		domain.StatusPending,
		domain.StatusFailed,
	} {
		p, err := svc.Create(ctx, CreateProjectCommand{Name: "p", FileKey: "key"})
		require.NoError(t, err, i)
		require.NoError(t, svc.Update(ctx, p.ID, domain.Update{Status: &status}))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 4, Completed: 2, Pending: 1}, stats)
}
