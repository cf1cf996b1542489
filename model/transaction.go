package model

// Transaction is append-only: once created it is never updated or deleted.
// The ID is a hex MD5 digest derived from the submitted date, object and
// amount, so identity is a pure function of that triple.
type Transaction struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Object string  `json:"object"`
	Amount float64 `json:"amount"`
}
