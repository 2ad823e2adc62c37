package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("job not found")

// Job is an open position listed on the careers page.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department,omitempty"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const jobColumns = `id, title, department, location, job_type, description, active, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, j *Job) (*Job, error) {
	const q = `
INSERT INTO jobs (id, title, department, location, job_type, description, active)
VALUES (gen_random_uuid()::text, $1, $2, $3, $4, $5, $6)
RETURNING ` + jobColumns + `;
`
	return scanJob(r.db.QueryRow(ctx, q, j.Title, j.Department, j.Location, j.Type, j.Description, j.Active))
}

// List returns job postings, optionally restricted to active ones.
func (r *Repo) List(ctx context.Context, activeOnly bool) ([]Job, error) {
	const q = `
SELECT ` + jobColumns + `
FROM jobs
WHERE ($1 = false) OR active
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0, 8)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, j *Job) (*Job, error) {
	const q = `
UPDATE jobs
SET title = $2, department = $3, location = $4, job_type = $5,
	description = $6, active = $7, updated_at = now()
WHERE id = $1
RETURNING ` + jobColumns + `;
`
	updated, err := scanJob(r.db.QueryRow(ctx, q, j.ID, j.Title, j.Department,
		j.Location, j.Type, j.Description, j.Active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM jobs WHERE id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type,
		&j.Description, &j.Active, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
