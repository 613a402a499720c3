package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deuslabs/pitchboard/internal/domain/projects"
)

func TestTemplateSourceFetch(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	created := now.Add(-time.Hour)
	src := NewTemplateSource(fixedClock{at: now})

	p := &projects.Project{
		ID:        "p1",
		Name:      "Q2 Sales Kickoff",
		Context:   "quarterly sales meeting",
		FileKey:   "mock_1_kickoff.mp3",
		CreatedAt: created,
		Status:    projects.StatusPending,
	}
	r, err := src.Fetch(context.Background(), p)
	require.NoError(t, err)

	t.Run("carries the project identity", func(t *testing.T) {
		assert.Equal(t, projects.ID("p1"), r.ID)
		assert.Equal(t, "Q2 Sales Kickoff", r.ProjectName)
		assert.Equal(t, "mock_1_kickoff.mp3", r.FileKey)
		assert.Equal(t, created, r.CreatedAt)
		assert.Equal(t, now, r.UpdatedAt)
		assert.Equal(t, projects.StatusPending, r.Status)
	})

	t.Run("interpolates the name into the transcript", func(t *testing.T) {
		assert.Contains(t, r.Transcript.Text, "Q2 Sales Kickoff")
		assert.Equal(t, int64(180000), r.Transcript.DurationMilliseconds)
	})

	t.Run("interpolates the context into the key points", func(t *testing.T) {
		require.NotEmpty(t, r.KeyPoints)
		assert.Contains(t, r.KeyPoints[len(r.KeyPoints)-1], "quarterly sales meeting")
	})

	t.Run("empty status defaults to completed", func(t *testing.T) {
		blank := *p
		blank.Status = ""
		r2, err := src.Fetch(context.Background(), &blank)
		require.NoError(t, err)
		assert.Equal(t, projects.StatusCompleted, r2.Status)
	})
}
