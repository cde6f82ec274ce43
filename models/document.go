package models

import "time"

// Document is the persisted form of any entity: a (type, id) key and the
// JSON body as it sits in the store. For entities with encrypted fields the
// body already contains ciphertext envelopes, never plaintext.
type Document struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Body      []byte    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}
