package inquiries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("inquiry not found")

// Inquiry is one contact-form submission.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, in *Inquiry) (*Inquiry, error) {
	const q = `
INSERT INTO inquiries (id, name, email, phone, subject, message)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, email, phone, subject, message, created_at;
`
	row := r.db.QueryRow(ctx, q, uuid.NewString(), in.Name, in.Email, in.Phone, in.Subject, in.Message)

	var out Inquiry
	err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Phone, &out.Subject, &out.Message, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) List(ctx context.Context) ([]Inquiry, error) {
	const q = `
SELECT id, name, email, phone, subject, message, created_at
FROM inquiries
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Inquiry, 0, 16)
	for rows.Next() {
		var in Inquiry
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Phone, &in.Subject, &in.Message, &in.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM inquiries WHERE id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
