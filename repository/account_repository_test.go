package repository

import (
	"os"
	"testing"

	"github.com/george-593/microsoft-bank-website/logger"
	"github.com/george-593/microsoft-bank-website/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newAccount(username string) *model.Account {
	return &model.Account{
		Username:     username,
		Currency:     "USD",
		Balance:      0,
		Description:  username + "'s account",
		Transactions: []model.Transaction{},
	}
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	repo := NewAccountRepository()

	err := repo.CreateAccount(newAccount("alice"))
	assert.NoError(t, err)

	account, err := repo.GetAccount("alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "USD", account.Currency)
	assert.NotNil(t, account.Transactions)
	assert.Len(t, account.Transactions, 0)

	_, err = repo.GetAccount("bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountRepository_CreateConflict(t *testing.T) {
	repo := NewAccountRepository()

	assert.NoError(t, repo.CreateAccount(newAccount("alice")))

	err := repo.CreateAccount(newAccount("alice"))
	assert.ErrorIs(t, err, ErrExists)
}

func TestAccountRepository_Update(t *testing.T) {
	repo := NewAccountRepository()
	assert.NoError(t, repo.CreateAccount(newAccount("alice")))

	description := "savings"
	currency := "EUR"
	account, err := repo.UpdateAccount("alice", &description, &currency)
	assert.NoError(t, err)
	assert.Equal(t, "savings", account.Description)
	assert.Equal(t, "EUR", account.Currency)

	// A nil field leaves the current value untouched.
	account, err = repo.UpdateAccount("alice", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "savings", account.Description)
	assert.Equal(t, "EUR", account.Currency)

	_, err = repo.UpdateAccount("bob", &description, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountRepository_Delete(t *testing.T) {
	repo := NewAccountRepository()
	assert.NoError(t, repo.CreateAccount(newAccount("alice")))

	assert.NoError(t, repo.DeleteAccount("alice"))

	_, err := repo.GetAccount("alice")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.DeleteAccount("alice"), ErrNotFound)
}

func TestAccountRepository_AppendTransaction(t *testing.T) {
	repo := NewAccountRepository()
	assert.NoError(t, repo.CreateAccount(newAccount("alice")))

	first := model.Transaction{ID: "aaa", Date: "2021-01-01", Object: "Salary", Amount: 100}
	second := model.Transaction{ID: "bbb", Date: "2021-01-02", Object: "Book", Amount: -10}

	assert.NoError(t, repo.AppendTransaction("alice", first))
	assert.NoError(t, repo.AppendTransaction("alice", second))

	account, err := repo.GetAccount("alice")
	assert.NoError(t, err)
	assert.Equal(t, 90.0, account.Balance)

	transactions, err := repo.ListTransactions("alice")
	assert.NoError(t, err)
	assert.Equal(t, []model.Transaction{first, second}, transactions)

	// A duplicate ID leaves the balance and the sequence untouched.
	err = repo.AppendTransaction("alice", first)
	assert.ErrorIs(t, err, ErrDuplicate)

	account, err = repo.GetAccount("alice")
	assert.NoError(t, err)
	assert.Equal(t, 90.0, account.Balance)
	assert.Len(t, account.Transactions, 2)

	err = repo.AppendTransaction("bob", first)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountRepository_GetReturnsCopy(t *testing.T) {
	repo := NewAccountRepository()
	assert.NoError(t, repo.CreateAccount(newAccount("alice")))
	assert.NoError(t, repo.AppendTransaction("alice", model.Transaction{ID: "aaa", Amount: 10}))

	account, err := repo.GetAccount("alice")
	assert.NoError(t, err)

	// Mutating the snapshot must not leak into the store.
	account.Balance = 9999
	account.Transactions[0].Amount = 9999

	fresh, err := repo.GetAccount("alice")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, fresh.Balance)
	assert.Equal(t, 10.0, fresh.Transactions[0].Amount)
}

func TestAccountRepository_Seed(t *testing.T) {
	repo := NewAccountRepository()
	repo.Seed()

	account, err := repo.GetAccount("test")
	assert.NoError(t, err)
	assert.Equal(t, "GBP", account.Currency)
	assert.Equal(t, 1000.0, account.Balance)
	assert.Equal(t, "test account", account.Description)
	assert.Len(t, account.Transactions, 3)
	assert.Equal(t, "Pocket money", account.Transactions[0].Object)
}
