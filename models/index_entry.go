package models

import "time"

// IndexEntry is one row of a display-label projection: for an entity and one
// of its lookup-reference fields it materialises the resolved label so list
// views and search indexes never have to join against the target documents.
type IndexEntry struct {
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Field      string    `json:"field"`
	TargetID   string    `json:"target_id,omitempty"`
	Label      string    `json:"label"`
	BuiltAt    time.Time `json:"built_at"`
}
