package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/george-593/microsoft-bank-website/common"
	"github.com/george-593/microsoft-bank-website/logger"
	"github.com/george-593/microsoft-bank-website/model"
	"github.com/george-593/microsoft-bank-website/service"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListTransactions godoc
// @Summary      List account transactions
// @Description  Returns the account's transactions in insertion order, oldest first.
// @Tags         transactions
// @Produce      json
// @Param        username path string true "Account username"
// @Success      200  {array}   model.Transaction
// @Failure      404  {object}  common.AppError "No account found for the user"
// @Router       /api/accounts/{username}/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")

	transactions, err := h.service.ListTransactions(username)
	if err != nil {
		return common.NewAppError(http.StatusNotFound, fmt.Sprintf("No account found for user %s", username), err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transactions)
	return nil
}

// GetTransaction godoc
// @Summary      Get a transaction by position
// @Description  Resolves a 1-based position in the account's transaction sequence. Positions shift only if the sequence ever changes shape, which the API does not allow.
// @Tags         transactions
// @Produce      json
// @Param        username path string true "Account username"
// @Param        id path string true "1-based transaction position"
// @Success      200  {object}  model.Transaction
// @Failure      404  {object}  common.AppError "Account absent, or position invalid or out of range"
// @Router       /api/accounts/{username}/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")
	id := r.PathValue("id")

	transaction, err := h.service.GetTransaction(username, id)
	if err != nil {
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, fmt.Sprintf("No account found for user %s", username), err)
		case service.ErrInvalidTransactionID, service.ErrTransactionNotFound:
			return common.NewAppError(http.StatusNotFound, fmt.Sprintf("Invalid ID: %s", id), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transaction)
	return nil
}

// CreateTransaction godoc
// @Summary      Create a new transaction
// @Description  Appends a transaction to the account and applies its amount to the balance. Resubmitting the same date, object and amount is rejected as a duplicate.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        username path string true "Account username"
// @Param        transaction body model.CreateTransactionRequest true "Transaction to create"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Missing parameters or non-numeric amount"
// @Failure      404  {object}  common.AppError "Account does not exist"
// @Failure      409  {object}  common.AppError "Transaction already exists"
// @Router       /api/accounts/{username}/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")

	var req model.CreateTransactionRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		if err == common.ErrMalformedBody {
			return common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
		}
		return common.NewAppError(http.StatusBadRequest, "Missing parameters", err)
	}

	logger.Log.WithField("username", username).Info("Create transaction request received")

	transaction, err := h.service.CreateTransaction(username, req)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewAppError(http.StatusNotFound, "User does not exist", err)
		case service.ErrInvalidAmount:
			return common.NewAppError(http.StatusBadRequest, "Amount must be a number", err)
		case service.ErrDuplicateTransaction:
			return common.NewAppError(http.StatusConflict, "Transaction already exists", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
	return nil
}
