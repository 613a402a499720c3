package mysql

import (
	"context"
	"database/sql"
	"strings"

	domain "github.com/deuslabs/pitchboard/internal/domain/projects"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a Project record
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if p.FileKey == "" {
		return domain.ErrEmptyFileKey
	}
	const q = `
INSERT INTO projects (id, name, context, file_key, created_at, status)
VALUES (?,?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Name, p.Context, p.FileKey, p.CreatedAt, p.Status,
	)
	return err
}

// Update merges the set fields of a typed partial update
func (r *ProjectRepository) Update(ctx context.Context, id domain.ID, upd domain.Update) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *upd.Name)
	}
	if upd.Context != nil {
		sets = append(sets, "context=?")
		args = append(args, *upd.Context)
	}
	if upd.FileKey != nil {
		sets = append(sets, "file_key=?")
		args = append(args, *upd.FileKey)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*upd.Status))
	}
	if len(sets) == 0 {
		// nothing to change; still report missing ids
		_, err := r.FindByID(ctx, id)
		return err
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		"UPDATE projects SET "+strings.Join(sets, ", ")+" WHERE id=?;", args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Without clientFoundRows in the DSN the driver reports rows
		// changed, not rows matched, so a same-values write also lands
		// here. Only a genuinely missing id may surface ErrNotFound.
		_, err := r.FindByID(ctx, id)
		return err
	}
	return nil
}

// Remove deletes by id; removing a missing id is fine
func (r *ProjectRepository) Remove(ctx context.Context, id domain.ID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id=?;`, id)
	return err
}

// FindByID fetches one project
func (r *ProjectRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Project, error) {
	const q = `
SELECT id, name, context, file_key, created_at, status
FROM projects WHERE id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return p, err
}

// List returns all projects, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	const q = `
SELECT id, name, context, file_key, created_at, status
FROM projects ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// Search does a case-insensitive substring match over name, context and
// file key. A blank query returns the full list.
func (r *ProjectRepository) Search(ctx context.Context, query string) ([]*domain.Project, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return r.List(ctx)
	}
	like := "%" + escapeLike(strings.ToLower(q)) + "%"
	const sqlq = `
SELECT id, name, context, file_key, created_at, status
FROM projects
WHERE LOWER(name) LIKE ? ESCAPE '!' OR LOWER(context) LIKE ? ESCAPE '!' OR LOWER(file_key) LIKE ? ESCAPE '!'
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, sqlq, like, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects;`).Scan(&n)
	return n, err
}

func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Project, error) {
	const q = `
SELECT id, name, context, file_key, created_at, status
FROM projects WHERE status=? ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// escapeLike neutralizes LIKE metacharacters so the user query matches
// as a literal substring, same as the in-memory registry.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "!", "!!")
	s = strings.ReplaceAll(s, "%", "!%")
	s = strings.ReplaceAll(s, "_", "!_")
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Context, &p.FileKey, &p.CreatedAt, &p.Status); err != nil {
		return nil, err
	}
	return &p, nil
}

func collect(rows *sql.Rows) ([]*domain.Project, error) {
	var out []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
