package service

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strconv"

	"github.com/george-593/microsoft-bank-website/logger"
	"github.com/george-593/microsoft-bank-website/model"
	"github.com/george-593/microsoft-bank-website/repository"
	"github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound         = errors.New("user does not exist")
	ErrInvalidAmount        = errors.New("amount must be a number")
	ErrDuplicateTransaction = errors.New("transaction already exists")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

type TransactionService struct {
	repo repository.IAccountRepository
}

func NewTransactionService(repo repository.IAccountRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// Fingerprint derives the transaction ID from the submitted date, object and
// raw amount. Two submissions with the same triple produce the same ID, which
// is the system's only idempotency mechanism.
func Fingerprint(date, object, rawAmount string) string {
	sum := md5.Sum([]byte(date + object + rawAmount))
	return hex.EncodeToString(sum[:])
}

// ListTransactions returns the account's transactions, oldest first.
func (s *TransactionService) ListTransactions(username string) ([]model.Transaction, error) {
	transactions, err := s.repo.ListTransactions(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return transactions, nil
}

// GetTransaction resolves a 1-based ordinal to a transaction. The ordinal
// addresses a position in the sequence at lookup time, not a stable key; it
// stays stable here only because the sequence is append-only and transactions
// are never deleted or reordered.
func (s *TransactionService) GetTransaction(username, ordinal string) (*model.Transaction, error) {
	transactions, err := s.ListTransactions(username)
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(ordinal)
	if err != nil {
		return nil, ErrInvalidTransactionID
	}

	index := n - 1
	if index < 0 || index >= len(transactions) {
		return nil, ErrTransactionNotFound
	}
	return &transactions[index], nil
}

// CreateTransaction validates the payload, fingerprints it and appends it to
// the account, crediting or debiting the balance by the amount.
func (s *TransactionService) CreateTransaction(username string, req model.CreateTransactionRequest) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"username": username,
		"date":     req.Date,
		"object":   req.Object,
	})

	// Existence is checked before the payload fields.
	if _, err := s.repo.GetAccount(username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	amount, err := req.Amount.Float64()
	if err != nil {
		log.WithField("amount", req.Amount.Raw).Info("Rejecting unparsable amount")
		return nil, ErrInvalidAmount
	}

	transaction := model.Transaction{
		ID:     Fingerprint(req.Date, req.Object, req.Amount.Raw),
		Date:   req.Date,
		Object: req.Object,
		Amount: amount,
	}

	if err := s.repo.AppendTransaction(username, transaction); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrDuplicateTransaction
		default:
			return nil, err
		}
	}

	log.WithField("transaction_id", transaction.ID).Info("Transaction created")
	return &transaction, nil
}
