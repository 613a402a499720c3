package analysis

import (
	"context"

	"github.com/deuslabs/pitchboard/internal/domain/projects"
)

// Source derives a report for a project. The contract is "project in,
// report out"; how the report is produced (canned, templated, a real
// analytics backend) is an implementation detail.
type Source interface {
	Fetch(ctx context.Context, p *projects.Project) (*Report, error)
}
