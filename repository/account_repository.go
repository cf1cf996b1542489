package repository

import (
	"errors"
	"sync"

	"github.com/george-593/microsoft-bank-website/logger"
	"github.com/george-593/microsoft-bank-website/model"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when no account exists for the given username.
	ErrNotFound = errors.New("account not found")
	// ErrExists is returned when creating an account whose username is taken.
	ErrExists = errors.New("account already exists")
	// ErrDuplicate is returned when appending a transaction whose ID is
	// already present in the account's sequence.
	ErrDuplicate = errors.New("transaction already exists")
)

// IAccountRepository defines the contract for account storage operations.
type IAccountRepository interface {
	GetAccount(username string) (*model.Account, error)
	CreateAccount(account *model.Account) error
	UpdateAccount(username string, description, currency *string) (*model.Account, error)
	DeleteAccount(username string) error
	ListTransactions(username string) ([]model.Transaction, error)
	AppendTransaction(username string, transaction model.Transaction) error
}

// AccountRepository implements IAccountRepository over a process-memory map.
// The whole store lives for the process lifetime only; a restart discards
// all data. The RWMutex serializes every mutation, so compound operations
// (exists-check + insert, duplicate-check + append + balance update) are
// atomic with respect to concurrent requests.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*model.Account)}
}

// Seed installs the demo fixture account. The fixture transaction IDs are
// plain ordinals rather than fingerprints, matching the shipped demo data.
func (r *AccountRepository) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts["test"] = &model.Account{
		Username:    "test",
		Currency:    "GBP",
		Balance:     1000,
		Description: "test account",
		Transactions: []model.Transaction{
			{ID: "1", Date: "2020-10-01", Object: "Pocket money", Amount: 50},
			{ID: "2", Date: "2020-10-03", Object: "Book", Amount: -10},
			{ID: "3", Date: "2020-10-04", Object: "Sandwich", Amount: -5},
		},
	}
}

// GetAccount returns a deep copy of the account so callers never alias
// store-owned state.
func (r *AccountRepository) GetAccount(username string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}
	return copyAccount(account), nil
}

// CreateAccount inserts a new account keyed by its username.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": account.Username,
		"currency": account.Currency,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Username]; ok {
		log.Info("Account already exists, rejecting create")
		return ErrExists
	}

	r.accounts[account.Username] = copyAccount(account)
	log.Info("Account stored")
	return nil
}

// UpdateAccount applies the supplied description and/or currency and returns
// the updated account. Nil or empty values leave the field untouched.
func (r *AccountRepository) UpdateAccount(username string, description, currency *string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}

	if description != nil && *description != "" {
		account.Description = *description
	}
	if currency != nil && *currency != "" {
		account.Currency = *currency
	}

	logger.Log.WithField("username", username).Info("Account updated")
	return copyAccount(account), nil
}

// DeleteAccount removes the account and all transactions it owns.
func (r *AccountRepository) DeleteAccount(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[username]; !ok {
		return ErrNotFound
	}

	delete(r.accounts, username)
	logger.Log.WithField("username", username).Info("Account deleted")
	return nil
}

// ListTransactions returns the account's transactions in insertion order.
func (r *AccountRepository) ListTransactions(username string) ([]model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}

	transactions := make([]model.Transaction, len(account.Transactions))
	copy(transactions, account.Transactions)
	return transactions, nil
}

// AppendTransaction appends the transaction and applies its amount to the
// balance in one critical section. The duplicate check, the append and the
// balance update must not interleave with other writers, or concurrent
// submissions of the same triple could both pass the check.
func (r *AccountRepository) AppendTransaction(username string, transaction model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":       username,
		"transaction_id": transaction.ID,
		"amount":         transaction.Amount,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[username]
	if !ok {
		return ErrNotFound
	}

	for _, existing := range account.Transactions {
		if existing.ID == transaction.ID {
			log.Info("Duplicate transaction, rejecting append")
			return ErrDuplicate
		}
	}

	account.Transactions = append(account.Transactions, transaction)
	account.Balance += transaction.Amount
	log.WithField("balance", account.Balance).Info("Transaction stored")
	return nil
}

func copyAccount(account *model.Account) *model.Account {
	cp := *account
	cp.Transactions = make([]model.Transaction, len(account.Transactions))
	copy(cp.Transactions, account.Transactions)
	return &cp
}
