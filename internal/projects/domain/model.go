package domain

import "time"

// Project is a portfolio entry shown on the public site and managed through
// the admin panel. It is storage-agnostic and shared across repository,
// service and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
	SOW         string    `json:"sow,omitempty"`
	LOD         *int      `json:"lod,omitempty"`
	Area        *int      `json:"area,omitempty"`
	ImageURLs   []string  `json:"imageUrls"`
	ModelURL    string    `json:"modelUrl,omitempty"`
	ModelType   string    `json:"modelType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
