package models

// Contract is a business agreement with an external counterparty.
// It carries one encrypted field and two lookup references into different
// target types.
type Contract struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	AccountNumber string `json:"account_number" vault:"encrypted"`

	CounterpartyID string `json:"counterparty_id" vault:"lookup=Counterparty"`
	DepartmentID   string `json:"department_id" vault:"lookup=Department"`
}
