package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deuslabs/pitchboard/internal/domain/projects"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func TestPickGood(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"anything-good-here", true},
		{"GOOD-UPPER", true},
		{"ab", true},    // even length
		{"abc", false},  // odd length, no marker
		{"abcde", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pickGood(tc.id), tc.id)
	}
}

func TestCannedSourceFetch(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	src := NewCannedSource(fixedClock{at: now})

	t.Run("restamps identity onto the canned payload", func(t *testing.T) {
		p := &projects.Project{ID: "good-1", Name: "My Pitch"}
		r, err := src.Fetch(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, projects.ID("good-1"), r.ID)
		assert.Equal(t, now, r.UpdatedAt)
		assert.Equal(t, projects.StatusCompleted, r.Status)
	})

	t.Run("same id always resolves to the same report", func(t *testing.T) {
		p := &projects.Project{ID: "abc"}
		first, err := src.Fetch(context.Background(), p)
		require.NoError(t, err)
		second, err := src.Fetch(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, first.Analysis.OverallAssessment.Score, second.Analysis.OverallAssessment.Score)
		assert.Equal(t, first.Transcript.Text, second.Transcript.Text)
	})

	t.Run("variants carry distinct transcripts and scores", func(t *testing.T) {
		good, err := src.Fetch(context.Background(), &projects.Project{ID: "good-1"})
		require.NoError(t, err)
		bad, err := src.Fetch(context.Background(), &projects.Project{ID: "abc"})
		require.NoError(t, err)

		assert.NotEqual(t, good.Transcript.Text, bad.Transcript.Text)
		assert.NotEqual(t, good.Analysis.OverallAssessment.Score, bad.Analysis.OverallAssessment.Score)
		for _, r := range []float64{good.Analysis.OverallAssessment.Score, bad.Analysis.OverallAssessment.Score} {
			assert.GreaterOrEqual(t, r, 0.0)
			assert.LessOrEqual(t, r, 1.0)
		}
	})
}
