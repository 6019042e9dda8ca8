package domain

import "context"

// AccountRepository is the contract for storing and retrieving accounts,
// keyed by account name
type AccountRepository interface {
	// GetAccount returns the account with the given name, or nil without
	// error if it does not exist
	GetAccount(ctx context.Context, name string) (*Account, error)
	// GetAllAccounts returns all stored accounts
	GetAllAccounts(ctx context.Context) ([]Account, error)
	// CreateAccount inserts a new account and fails with
	// ErrAccountAlreadyExists if the name is already taken
	CreateAccount(ctx context.Context, account *Account) error
	// UpdateAccount inserts or replaces the account with the same name
	UpdateAccount(ctx context.Context, account *Account) error
	// DeleteAccount removes the account with the given name and fails with
	// ErrAccountNotFound if it does not exist
	DeleteAccount(ctx context.Context, name string) error
	// MigrateAccount copies the account stored under fromName to toName and
	// deletes the source row. It must run inside a write scope so that a
	// failure leaves either the old or the new state, never both or neither.
	MigrateAccount(ctx context.Context, fromName, toName string) error
	// DeleteAllAccounts removes every stored account
	DeleteAllAccounts(ctx context.Context) error
}
