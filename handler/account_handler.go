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

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetAccount godoc
// @Summary      Get account details
// @Description  Retrieves the account for the given username, including its transactions.
// @Tags         accounts
// @Produce      json
// @Param        username path string true "Account username"
// @Success      200  {object}  model.Account
// @Failure      404  {object}  common.AppError "No account found for the user"
// @Router       /api/accounts/{username} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")

	account, err := h.service.GetAccount(username)
	if err != nil {
		return common.NewAppError(http.StatusNotFound, fmt.Sprintf("No account found for user %s", username), err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// CreateAccount godoc
// @Summary      Create a new account
// @Description  Opens an account for the given username. Balance may be a number or a numeric string; description defaults when omitted.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account body model.CreateAccountRequest true "Account to create"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError "Missing fields, invalid balance, or username taken"
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		if err == common.ErrMalformedBody {
			return common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
		}
		return common.NewAppError(http.StatusBadRequest, "Missing required fields", err)
	}

	logger.Log.WithField("username", req.Username).Info("Create account request received")

	account, err := h.service.CreateAccount(req)
	if err != nil {
		switch err {
		case service.ErrAccountExists:
			return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("Account already exists for user %s", req.Username), err)
		case service.ErrInvalidBalance:
			return common.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid balance value: %s", req.Balance.Raw), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
	return nil
}

// UpdateAccount godoc
// @Summary      Update account details
// @Description  Updates description and/or currency. Any attempt to set username, balance or transactions rejects the whole update.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        username path string true "Account username"
// @Param        account body model.UpdateAccountRequest true "Fields to update"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError "Immutable field present in payload"
// @Failure      404  {object}  common.AppError "No account found for the user"
// @Router       /api/accounts/{username} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")

	var req model.UpdateAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	account, err := h.service.UpdateAccount(username, req)
	if err != nil {
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, fmt.Sprintf("No account found for user %s", username), err)
		case service.ErrImmutableField:
			return common.NewAppError(http.StatusBadRequest, "Only currency and description can be updated", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update account", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
	return nil
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Removes the account and every transaction it owns.
// @Tags         accounts
// @Param        username path string true "Account username"
// @Success      204  "Account deleted"
// @Failure      404  {object}  common.AppError "No account found for the user"
// @Router       /api/accounts/{username} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")

	if err := h.service.DeleteAccount(username); err != nil {
		return common.NewAppError(http.StatusNotFound, fmt.Sprintf("No account found for user %s", username), err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
