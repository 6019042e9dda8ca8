package domain

import "context"

// AddressRepository is the contract for storing and retrieving standalone
// address rows, keyed by the address string
type AddressRepository interface {
	// GetAddress returns the row for the given address, or nil without
	// error if it does not exist
	GetAddress(ctx context.Context, address string) (*Address, error)
	// GetAllAddresses returns all stored address rows
	GetAllAddresses(ctx context.Context) ([]Address, error)
	// UpsertAddress inserts or replaces the row with the same address
	UpsertAddress(ctx context.Context, address *Address) error
	// DeleteAddress removes the row for the given address and fails with
	// ErrAddressNotFound if it does not exist
	DeleteAddress(ctx context.Context, address string) error
	// DeleteAllAddresses removes every stored address row
	DeleteAllAddresses(ctx context.Context) error
}

// SpendStatusRepository is the contract for the address spent flags,
// keyed by the address string
type SpendStatusRepository interface {
	// GetSpendStatus returns the spend status for the given address, or
	// nil without error if none is recorded
	GetSpendStatus(ctx context.Context, address string) (*AddressSpendStatus, error)
	// GetAllSpendStatuses returns all recorded spend statuses
	GetAllSpendStatuses(ctx context.Context) ([]AddressSpendStatus, error)
	// MarkSpent records the spent flag for the given address, replacing a
	// previous record if present
	MarkSpent(ctx context.Context, address string, spent bool) error
	// DeleteAllSpendStatuses removes every recorded spend status
	DeleteAllSpendStatuses(ctx context.Context) error
}
