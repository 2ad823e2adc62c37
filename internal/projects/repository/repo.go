package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/domain"
	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/media"
)

// Repo provides persistence for project records. The image_urls column is a
// TEXT field holding a JSON-encoded array (legacy single-string values still
// occur); decoding happens here so the rest of the code only sees []string.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `id, title, description, location, project_type, sow,
	lod, area, image_urls, model_url, model_type, created_at, updated_at`

// Insert stores a new project and returns it with store-assigned timestamps.
func (r *Repo) Insert(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	for i := 0; i < 5; i++ {
		id, err := domain.NewID()
		if err != nil {
			return nil, err
		}

		const q = `
INSERT INTO projects (id, title, description, location, project_type, sow,
	lod, area, image_urls, model_url, model_type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + projectColumns + `;
`
		row := r.db.QueryRow(ctx, q, id, p.Title, p.Description, p.Location,
			p.ProjectType, p.SOW, p.LOD, p.Area, media.EncodeList(p.ImageURLs),
			p.ModelURL, p.ModelType)

		created, err := scanProject(row)
		if err == nil {
			return created, nil
		}

		// unique violation on id → retry with a fresh one
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique project id")
}

// GetByID loads one project.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`

	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all projects, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of the record. There is no version
// column, so concurrent updates to the same id are last-write-wins.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
UPDATE projects
SET title = $2, description = $3, location = $4, project_type = $5, sow = $6,
	lod = $7, area = $8, image_urls = $9, model_url = $10, model_type = $11,
	updated_at = now()
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	row := r.db.QueryRow(ctx, q, p.ID, p.Title, p.Description, p.Location,
		p.ProjectType, p.SOW, p.LOD, p.Area, media.EncodeList(p.ImageURLs),
		p.ModelURL, p.ModelType)

	updated, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the record.
func (r *Repo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM projects WHERE id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var rawImages string
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Location,
		&p.ProjectType, &p.SOW, &p.LOD, &p.Area, &rawImages,
		&p.ModelURL, &p.ModelType, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.ImageURLs = media.DecodeList(rawImages)
	return &p, nil
}
