package repository

import (
	"context"

	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/media"
)

// ReferencedImageURLs returns the set of image URLs referenced by any project
// row. Used by the orphan sweep to decide which stored files are live.
func (r *Repo) ReferencedImageURLs(ctx context.Context) (map[string]struct{}, error) {
	const q = `SELECT image_urls FROM projects;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make(map[string]struct{})
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		for _, url := range media.DecodeList(raw) {
			refs[url] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}
