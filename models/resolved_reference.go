package models

// ResolvedReference is the outcome of resolving one lookup-reference field of
// one entity. Label is always populated: the target's breadcrumb if present,
// else its name, else the raw target id, or the "not selected" sentinel when
// the reference field is empty. Never persisted; projection rows derived from
// it are stored as [IndexEntry].
type ResolvedReference struct {
	SourceType string `json:"source_type"`
	SourceID   string `json:"source_id"`
	Field      string `json:"field"`
	TargetID   string `json:"target_id,omitempty"`
	Label      string `json:"label"`
}
