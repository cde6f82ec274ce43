package models

// Department is an organisational unit and the most common lookup target.
// Breadcrumb holds the full hierarchical path ("Company / Operations / IT")
// and is preferred over Name when a reference to a department is rendered.
type Department struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Breadcrumb string `json:"breadcrumb,omitempty"`
}
