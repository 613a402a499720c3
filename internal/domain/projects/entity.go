package projects

import (
	"strings"
	"time"
)

// ID tipe untuk Project
type ID string

// Status enum
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Aggregate Root: Project pairs an uploaded artifact with its metadata
// and analysis status.
type Project struct {
	ID        ID        `json:"id"`
	Name      string    `json:"projectName"`
	Context   string    `json:"context"`
	FileKey   string    `json:"fileKey"`
	CreatedAt time.Time `json:"createdAt"`
	Status    Status    `json:"status"`
}

// Update is a typed partial update. Nil fields are left untouched.
type Update struct {
	Name    *string
	Context *string
	FileKey *string
	Status  *Status
}

// Apply merges the set fields into p.
func (u Update) Apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Context != nil {
		p.Context = *u.Context
	}
	if u.FileKey != nil {
		p.FileKey = *u.FileKey
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
}

// Matches reports whether the project matches a lowercased search query
// over name, context and file key.
func (p *Project) Matches(loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	return containsFold(p.Name, loweredQuery) ||
		containsFold(p.Context, loweredQuery) ||
		containsFold(p.FileKey, loweredQuery)
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}
