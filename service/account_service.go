// file: service/account_service.go

package service

import (
	"errors"
	"fmt"

	"github.com/george-593/microsoft-bank-website/logger"
	"github.com/george-593/microsoft-bank-website/model"
	"github.com/george-593/microsoft-bank-website/repository"
	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrInvalidBalance  = errors.New("invalid balance value")
	ErrImmutableField  = errors.New("only currency and description can be updated")
)

type AccountService struct {
	repo repository.IAccountRepository
}

func NewAccountService(repo repository.IAccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// GetAccount looks up an account by username.
func (s *AccountService) GetAccount(username string) (*model.Account, error) {
	account, err := s.repo.GetAccount(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// CreateAccount opens a new account from the request payload. The balance may
// arrive as a number or a numeric string; absent or empty defaults to zero.
// The description defaults to "{username}'s account" when omitted.
func (s *AccountService) CreateAccount(req model.CreateAccountRequest) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"username": req.Username,
		"currency": req.Currency,
	})

	balance := 0.0
	if !req.Balance.Empty() {
		parsed, err := req.Balance.Float64()
		if err != nil {
			log.WithField("balance", req.Balance.Raw).Info("Rejecting unparsable balance")
			return nil, ErrInvalidBalance
		}
		balance = parsed
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("%s's account", req.Username)
	}

	account := &model.Account{
		Username:     req.Username,
		Currency:     req.Currency,
		Balance:      balance,
		Description:  description,
		Transactions: []model.Transaction{},
	}

	if err := s.repo.CreateAccount(account); err != nil {
		if errors.Is(err, repository.ErrExists) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	log.Info("Account created")
	return account, nil
}

// UpdateAccount applies the mutable fields of the payload. A payload that
// touches username, balance or transactions is refused in full; valid fields
// alongside an immutable one are not applied.
func (s *AccountService) UpdateAccount(username string, req model.UpdateAccountRequest) (*model.Account, error) {
	// Existence is checked before the payload: a missing account wins over
	// an invalid body.
	if _, err := s.repo.GetAccount(username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if req.HasImmutableField() {
		return nil, ErrImmutableField
	}

	account, err := s.repo.UpdateAccount(username, req.Description, req.Currency)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes the account and all transactions it owns.
func (s *AccountService) DeleteAccount(username string) error {
	if err := s.repo.DeleteAccount(username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	logger.Log.WithField("username", username).Info("Account deleted")
	return nil
}
