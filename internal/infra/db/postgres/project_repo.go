package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domain "github.com/deuslabs/pitchboard/internal/domain/projects"
)

type ProjectRepository struct{ db *sql.DB }

func NewProjectRepository(db *sql.DB) *ProjectRepository { return &ProjectRepository{db: db} }

// Create inserts a Project record
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if p.FileKey == "" {
		return domain.ErrEmptyFileKey
	}
	const q = `
INSERT INTO projects (id, name, context, file_key, created_at, status)
VALUES ($1,$2,$3,$4,$5,$6);`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Name, p.Context, p.FileKey, p.CreatedAt, p.Status,
	)
	return err
}

// Update merges the set fields of a typed partial update
func (r *ProjectRepository) Update(ctx context.Context, id domain.ID, upd domain.Update) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Context != nil {
		add("context", *upd.Context)
	}
	if upd.FileKey != nil {
		add("file_key", *upd.FileKey)
	}
	if upd.Status != nil {
		add("status", string(*upd.Status))
	}
	if len(sets) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE projects SET %s WHERE id=$%d;", strings.Join(sets, ", "), len(args)),
		args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Remove deletes by id; removing a missing id is fine
func (r *ProjectRepository) Remove(ctx context.Context, id domain.ID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id=$1;`, id)
	return err
}

// FindByID fetches one project
func (r *ProjectRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Project, error) {
	const q = `
SELECT id, name, context, file_key, created_at, status
FROM projects WHERE id=$1 LIMIT 1;`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Context, &p.FileKey, &p.CreatedAt, &p.Status)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	const q = `
SELECT id, name, context, file_key, created_at, status
FROM projects ORDER BY created_at DESC;`
	return r.query(ctx, q)
}

// Search does a case-insensitive substring match over name, context and
// file key. A blank query returns the full list.
func (r *ProjectRepository) Search(ctx context.Context, query string) ([]*domain.Project, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return r.List(ctx)
	}
	like := "%" + escapeLike(q) + "%"
	const sqlq = `
SELECT id, name, context, file_key, created_at, status
FROM projects
WHERE name ILIKE $1 ESCAPE '!' OR context ILIKE $1 ESCAPE '!' OR file_key ILIKE $1 ESCAPE '!'
ORDER BY created_at DESC;`
	return r.query(ctx, sqlq, like)
}

// escapeLike neutralizes LIKE metacharacters so the user query matches
// as a literal substring, same as the in-memory registry.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "!", "!!")
	s = strings.ReplaceAll(s, "%", "!%")
	s = strings.ReplaceAll(s, "_", "!_")
	return s
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects;`).Scan(&n)
	return n, err
}

func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Project, error) {
	const q = `
SELECT id, name, context, file_key, created_at, status
FROM projects WHERE status=$1 ORDER BY created_at DESC;`
	return r.query(ctx, q, string(status))
}

func (r *ProjectRepository) query(ctx context.Context, q string, args ...any) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Context, &p.FileKey, &p.CreatedAt, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
