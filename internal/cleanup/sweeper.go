// Package cleanup removes uploaded files that no project references.
//
// Project mutations write files before the document, so a failed document
// write (or an update against a missing id) leaves files behind. Rather than
// staging and rolling back inside the request, orphans are reaped nightly.
package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/harshkhandelwal17/tbes-company-website/internal/assets"
)

// RefSource reports which asset URLs are referenced by live records.
type RefSource interface {
	ReferencedImageURLs(ctx context.Context) (map[string]struct{}, error)
}

// AssetLister enumerates and deletes stored files.
type AssetLister interface {
	List() ([]assets.FileInfo, error)
	Delete(url string)
}

type Sweeper struct {
	refs  RefSource
	store AssetLister
	// grace protects files belonging to requests still in flight: nothing
	// younger than this is ever swept.
	grace time.Duration
}

func NewSweeper(refs RefSource, store AssetLister, grace time.Duration) *Sweeper {
	if grace <= 0 {
		grace = 24 * time.Hour
	}
	return &Sweeper{refs: refs, store: store, grace: grace}
}

// Run performs one sweep and returns the number of files removed.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	referenced, err := s.refs.ReferencedImageURLs(ctx)
	if err != nil {
		return 0, err
	}

	files, err := s.store.List()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-s.grace)
	removed := 0
	for _, f := range files {
		if _, ok := referenced[f.URL]; ok {
			continue
		}
		if f.ModTime.After(cutoff) {
			continue
		}
		s.store.Delete(f.URL)
		removed++
	}

	if removed > 0 {
		log.Printf("[info] op=upload_sweep removed=%d scanned=%d", removed, len(files))
	}
	return removed, nil
}

// Schedule registers the nightly sweep on c (midnight, server time).
func (s *Sweeper) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := s.Run(ctx); err != nil {
			log.Printf("[error] op=upload_sweep error=%v", err)
		}
	})
	return err
}
