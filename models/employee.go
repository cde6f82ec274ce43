package models

// Employee is a personnel record. Fields tagged `vault:"encrypted"` are
// replaced with ciphertext envelopes before the record reaches the document
// store and restored on load. DepartmentID is a lookup reference: it stores
// the id of a [Department] and is rendered through the reference resolver.
type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Personal data, never stored in the clear.
	TaxNumber    string  `json:"tax_number" vault:"encrypted"`
	IBAN         string  `json:"iban" vault:"encrypted"`
	MedicalNotes *string `json:"medical_notes,omitempty" vault:"encrypted"`

	DepartmentID string `json:"department_id" vault:"lookup=Department"`
}
