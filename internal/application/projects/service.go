package projects

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/deuslabs/pitchboard/internal/application"
	domain "github.com/deuslabs/pitchboard/internal/domain/projects"
	"github.com/deuslabs/pitchboard/internal/platform/logger"
)

// Service implements use-cases for the project registry.
// Safe for concurrent use.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
	Log   *logger.Logger

	mu      sync.Mutex
	lastErr string
}

func NewService(repo domain.Repository, clock application.Clock, log *logger.Logger) *Service {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{Repo: repo, Clock: clock, Log: log}
}

//
// ==== USE CASES ====
//

// CreateProjectCommand carries the fields for a direct create.
type CreateProjectCommand struct {
	Name    string
	Context string
	FileKey string
}

// Create registers a new project. The file key must already be
// resolved; a project cannot exist without one.
func (s *Service) Create(ctx context.Context, cmd CreateProjectCommand) (*domain.Project, error) {
	if cmd.FileKey == "" {
		return nil, s.fail(domain.ErrEmptyFileKey)
	}

	p := &domain.Project{
		ID:        domain.ID(uuid.New().String()),
		Name:      cmd.Name,
		Context:   cmd.Context,
		FileKey:   cmd.FileKey,
		CreatedAt: s.Clock.Now(),
		Status:    domain.StatusPending,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, s.fail(err)
	}
	s.clearErrLocked()
	s.Log.Info("project created", "id", p.ID, "name", p.Name, "fileKey", p.FileKey)
	return p, nil
}

// CreateFromUploadCommand is the submit of the new-project form: the
// user-typed fields plus the state of the upload pipeline at submit time.
type CreateFromUploadCommand struct {
	Name      string
	Context   string
	FileName  string // original name of the selected file, empty if none
	FileKey   string // resolved key, empty while the upload is pending
	Uploading bool
}

// CreateFromUpload enforces the form rules before touching the
// registry: a file must be selected and its upload resolved. A blank
// name falls back to the file's base name.
func (s *Service) CreateFromUpload(ctx context.Context, cmd CreateFromUploadCommand) (*domain.Project, error) {
	if cmd.FileName == "" {
		return nil, &FieldError{Field: "file", Message: "Please select a file to upload"}
	}
	if cmd.Uploading || cmd.FileKey == "" {
		return nil, &FieldError{Field: "file", Message: "Please wait for the file to finish uploading"}
	}

	name := cmd.Name
	if name == "" {
		name = baseName(cmd.FileName)
	}
	return s.Create(ctx, CreateProjectCommand{
		Name:    name,
		Context: cmd.Context,
		FileKey: cmd.FileKey,
	})
}

// Update merges a typed partial update into an existing project.
// A missing id is an explicit not-found error.
func (s *Service) Update(ctx context.Context, id domain.ID, upd domain.Update) error {
	if err := s.Repo.Update(ctx, id, upd); err != nil {
		return s.fail(err)
	}
	s.clearErrLocked()
	return nil
}

// Delete removes a project. Idempotent.
func (s *Service) Delete(ctx context.Context, id domain.ID) error {
	if err := s.Repo.Remove(ctx, id); err != nil {
		return s.fail(err)
	}
	s.clearErrLocked()
	return nil
}

// Get fetches one project by id.
func (s *Service) Get(ctx context.Context, id domain.ID) (*domain.Project, error) {
	return s.Repo.FindByID(ctx, id)
}

// Search filters the registry. A blank query returns the full list.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.Project, error) {
	return s.Repo.Search(ctx, query)
}

// List returns all projects, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Project, error) {
	return s.Repo.List(ctx)
}

// Stats are the derived read-only views over the registry.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	completed, err := s.Repo.ListByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return Stats{}, err
	}
	pending, err := s.Repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Total: total, Completed: len(completed), Pending: len(pending)}, nil
}

// LastError returns the retained message from the most recent failed
// mutation, empty when the last mutation succeeded.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError drops the retained error message.
func (s *Service) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Service) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	return err
}

func (s *Service) clearErrLocked() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// baseName is the portion of a file name before the first dot.
func baseName(fileName string) string {
	if i := strings.Index(fileName, "."); i >= 0 {
		return fileName[:i]
	}
	return fileName
}
