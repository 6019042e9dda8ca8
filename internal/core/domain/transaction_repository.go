package domain

import "context"

// TransactionRepository is the contract for storing and retrieving
// transactions, keyed by hash
type TransactionRepository interface {
	// GetTransaction returns the transaction with the given hash, or nil
	// without error if it does not exist
	GetTransaction(ctx context.Context, hash string) (*Transaction, error)
	// GetAllTransactions returns all stored transactions
	GetAllTransactions(ctx context.Context) ([]Transaction, error)
	// GetTransactionsForAccount returns the transactions associated with
	// the given account name
	GetTransactionsForAccount(ctx context.Context, account string) ([]Transaction, error)
	// InsertTransaction inserts a new transaction and fails with
	// ErrTransactionAlreadyExists on a colliding hash
	InsertTransaction(ctx context.Context, tx *Transaction) error
	// UpsertTransaction inserts or replaces the transaction with the same hash
	UpsertTransaction(ctx context.Context, tx *Transaction) error
	// DeleteTransaction removes the transaction with the given hash and
	// fails with ErrTransactionNotFound if it does not exist
	DeleteTransaction(ctx context.Context, hash string) error
	// DeleteAllTransactions removes every stored transaction
	DeleteAllTransactions(ctx context.Context) error
}
