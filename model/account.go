package model

// Account is keyed by username; the username is immutable after creation.
// Balance is the authoritative running total and is only ever changed by
// appending a transaction.
type Account struct {
	Username     string        `json:"username"`
	Currency     string        `json:"currency"`
	Balance      float64       `json:"balance"`
	Description  string        `json:"description"`
	Transactions []Transaction `json:"transactions"`
}
