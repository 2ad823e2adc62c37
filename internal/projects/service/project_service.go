package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/domain"
	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/media"
)

// RecordStore is the document side of a project mutation.
type RecordStore interface {
	Insert(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// FileStore is the asset side. Delete is best-effort and never fails.
type FileStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Delete(url string)
}

// Upload is one file part of a multipart admin request.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// Input carries the form fields of one admin mutation. lod and area arrive as
// free text ("LOD 350", "15000 sqft") and are coerced here.
type Input struct {
	ID          string
	Title       string
	Description string
	Location    string
	ProjectType string
	SOW         string
	LOD         string
	Area        string
	ModelURL    string
	ModelType   string
	// ExistingImages is the client's keep-list: a JSON array of prior image
	// URLs to retain. Unparseable input contributes nothing.
	ExistingImages string
}

// ProjectService is the boundary for one admin mutation request. Files are
// written before the document; if the document write then fails, the files
// are orphaned until the nightly sweep picks them up.
type ProjectService struct {
	records RecordStore
	files   FileStore
}

func NewProjectService(records RecordStore, files FileStore) *ProjectService {
	return &ProjectService{records: records, files: files}
}

// Get loads one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.records.GetByID(ctx, id)
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.records.List(ctx)
}

// Create persists the uploads, composes the image list and inserts a new
// record.
func (s *ProjectService) Create(ctx context.Context, in Input, uploads []Upload) (*domain.Project, error) {
	if in.Title == "" {
		return nil, &domain.ValidationError{Field: "title"}
	}

	urls, err := s.saveAll(ctx, uploads)
	if err != nil {
		return nil, err
	}

	p := projectFromInput(in)
	p.ImageURLs = media.Reconcile(in.ExistingImages, urls)

	return s.records.Insert(ctx, p)
}

// Update persists any new uploads, then overwrites every mutable field of the
// record, including the reconciled image list. Returns domain.ErrNotFound for
// an unknown id.
func (s *ProjectService) Update(ctx context.Context, in Input, uploads []Upload) (*domain.Project, error) {
	if in.ID == "" {
		return nil, &domain.ValidationError{Field: "id"}
	}

	urls, err := s.saveAll(ctx, uploads)
	if err != nil {
		return nil, err
	}

	existing, err := s.records.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	p := projectFromInput(in)
	p.ID = existing.ID
	p.ImageURLs = media.Reconcile(in.ExistingImages, urls)

	return s.records.Update(ctx, p)
}

// Delete removes the record and best-effort deletes its image files. Missing
// or undeletable files never fail the request.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	p, err := s.records.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, url := range p.ImageURLs {
		s.files.Delete(url)
	}

	if err := s.records.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("[info] op=project_delete id=%s images=%d", id, len(p.ImageURLs))
	return nil
}

// saveAll writes every non-empty upload concurrently and returns their URLs
// in input order. It waits for all writes before returning, so callers never
// observe a partial set.
func (s *ProjectService) saveAll(ctx context.Context, uploads []Upload) ([]string, error) {
	pending := make([]Upload, 0, len(uploads))
	for _, u := range uploads {
		if u.Size > 0 {
			pending = append(pending, u)
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}

	urls := make([]string, len(pending))
	g, _ := errgroup.WithContext(ctx)
	for i, u := range pending {
		i, u := i, u
		g.Go(func() error {
			f, err := u.Open()
			if err != nil {
				return fmt.Errorf("open upload %s: %w", u.Filename, err)
			}
			defer f.Close()

			url, err := s.files.Save(u.Filename, f)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func projectFromInput(in Input) *domain.Project {
	return &domain.Project{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		ProjectType: in.ProjectType,
		SOW:         in.SOW,
		LOD:         domain.ParseNumeric(in.LOD),
		Area:        domain.ParseNumeric(in.Area),
		ModelURL:    in.ModelURL,
		ModelType:   in.ModelType,
	}
}
