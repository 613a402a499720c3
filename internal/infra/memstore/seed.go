package memstore

import (
	"time"

	domain "github.com/deuslabs/pitchboard/internal/domain/projects"
)

// DemoProjects returns the demo records shown on a fresh install.
func DemoProjects() []*domain.Project {
	return []*domain.Project{
		{
			ID:        "d0c2f240-48c7-4caa-b65b-4cefea988f0a",
			Name:      "Jennie Good",
			Context:   "Webinar introducing DEUS",
			FileKey:   "Jennie-Good.mp4",
			CreatedAt: date(2024, 1, 5),
			Status:    domain.StatusCompleted,
		},
		{
			ID:        "d0c2f240-48c7-4caa-b65b-4cefea988f0c",
			Name:      "Jennie Bad",
			Context:   "Webinar introducing DEUS",
			FileKey:   "Jennie-Bad.mp4",
			CreatedAt: date(2024, 1, 5),
			Status:    domain.StatusCompleted,
		},
		{
			ID:        "demo-project-1",
			Name:      "Q1 Sales Review",
			Context:   "Quarterly sales performance analysis",
			FileKey:   "q1-sales-review.mp3",
			CreatedAt: date(2024, 1, 15),
			Status:    domain.StatusCompleted,
		},
		{
			ID:        "demo-project-2",
			Name:      "Team Meeting Notes",
			Context:   "Weekly team sync discussion points",
			FileKey:   "team-meeting-2024-01.wav",
			CreatedAt: date(2024, 1, 10),
			Status:    domain.StatusCompleted,
		},
		{
			ID:        "demo-project-3",
			Name:      "Customer Interview",
			Context:   "Product feedback session with key customer",
			FileKey:   "customer-interview.m4a",
			CreatedAt: date(2024, 1, 8),
			Status:    domain.StatusPending,
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
