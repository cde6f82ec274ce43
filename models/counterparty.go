package models

// Counterparty is an external organisation referenced by contracts.
// It deliberately has no breadcrumb: references to it are rendered by name.
type Counterparty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
