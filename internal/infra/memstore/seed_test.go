package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/deuslabs/pitchboard/internal/domain/projects"
)

func TestDemoProjects(t *testing.T) {
	ps := DemoProjects()
	require.NotEmpty(t, ps)

	seen := map[domain.ID]bool{}
	for _, p := range ps {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name, p.ID)
		assert.NotEmpty(t, p.FileKey, p.ID)
		assert.NotEmpty(t, p.Status, p.ID)
		assert.False(t, p.CreatedAt.IsZero(), p.ID)
	}
}
