// file: model/request.go

package model

import "encoding/json"

// CreateAccountRequest defines the payload for opening a new account.
// Balance accepts a number or a numeric string; absent defaults to zero.
type CreateAccountRequest struct {
	Username    string `json:"username" validate:"required"`
	Currency    string `json:"currency" validate:"required"`
	Balance     Number `json:"balance"`
	Description string `json:"description"`
}

// UpdateAccountRequest defines the payload for editing an account.
// Only description and currency are mutable; the other fields exist solely to
// detect that the caller tried to set them, which rejects the whole update.
type UpdateAccountRequest struct {
	Username     *string         `json:"username"`
	Balance      Number          `json:"balance"`
	Transactions json.RawMessage `json:"transactions"`
	Description  *string         `json:"description"`
	Currency     *string         `json:"currency"`
}

// HasImmutableField reports whether the payload touches a field that can
// never be updated through the API.
func (r UpdateAccountRequest) HasImmutableField() bool {
	return r.Username != nil || r.Balance.Present || r.Transactions != nil
}

// CreateTransactionRequest defines the payload for appending a transaction.
// All three fields are required; amount accepts a number or a numeric string.
type CreateTransactionRequest struct {
	Date   string `json:"date" validate:"required"`
	Object string `json:"object" validate:"required"`
	Amount Number `json:"amount" validate:"required"`
}
