package domain

import "errors"

var (
	// ErrStoreClosed is thrown when a repository is used after the store
	// handle has been released
	ErrStoreClosed = errors.New("store is closed")
	// ErrSchemaMismatch is thrown at open time when the on-disk schema
	// version differs from SchemaVersion and no migration is provided
	ErrSchemaMismatch = errors.New("on-disk schema version is not compatible and no migration is provided")
	// ErrNestedTransaction is thrown when a write scope is requested while
	// another one is already active on the same context
	ErrNestedTransaction = errors.New("write scope already active on this context")
	// ErrNullAccountName ...
	ErrNullAccountName = errors.New("account name must not be null")
	// ErrAccountAlreadyExists ...
	ErrAccountAlreadyExists = errors.New("account with given name already exists")
	// ErrAccountNotFound ...
	ErrAccountNotFound = errors.New("account not found")
	// ErrNullNodeURL ...
	ErrNullNodeURL = errors.New("node url must not be null")
	// ErrNodeNotFound ...
	ErrNodeNotFound = errors.New("node not found")
	// ErrWalletNotFound is thrown when the wallet singleton for the current
	// schema version is missing, ie. the store has not been initialized
	ErrWalletNotFound = errors.New("wallet data not found for current schema version")
	// ErrTransactionAlreadyExists ...
	ErrTransactionAlreadyExists = errors.New("transaction with given hash already exists")
	// ErrTransactionNotFound ...
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAddressNotFound ...
	ErrAddressNotFound = errors.New("address not found")
)
