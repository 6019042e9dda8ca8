package domain

import "context"

// WalletRepository is the contract for the Wallet singleton of the
// current schema version
type WalletRepository interface {
	// CreateWalletIfNotExists creates the singleton row for the current
	// schema version with default settings if it is absent. Idempotent.
	CreateWalletIfNotExists(ctx context.Context) error
	// GetWallet returns the singleton row for the current schema version,
	// failing with ErrWalletNotFound if the store was never initialized
	GetWallet(ctx context.Context) (*Wallet, error)
	// GetSettings returns the settings sub-record of the singleton row
	GetSettings(ctx context.Context) (*WalletSettings, error)
	// UpdateWallet fetches an owned copy of the singleton row, applies
	// updateFn to it and writes the result back. Mutations never escape the
	// scope of updateFn.
	UpdateWallet(
		ctx context.Context,
		updateFn func(w *Wallet) (*Wallet, error),
	) error
	// UpdateSettings is UpdateWallet restricted to the settings sub-record
	UpdateSettings(
		ctx context.Context,
		updateFn func(s *WalletSettings) (*WalletSettings, error),
	) error
	// DeleteWallet removes every wallet row, for any schema version
	DeleteWallet(ctx context.Context) error
}
