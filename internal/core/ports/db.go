package ports

import (
	"context"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

// RepoManager gives access to every repository backed by the same store
// handle and to the only legal way of mutating it, RunTransaction.
type RepoManager interface {
	AccountRepository() domain.AccountRepository
	NodeRepository() domain.NodeRepository
	WalletRepository() domain.WalletRepository
	TransactionRepository() domain.TransactionRepository
	AddressRepository() domain.AddressRepository
	SpendStatusRepository() domain.SpendStatusRepository

	// RunTransaction executes handler within a write scope (or a read-only
	// snapshot if readOnly is true): every repository call made with the
	// context passed to handler operates on the same store transaction.
	// If handler returns without error all writes are committed atomically,
	// otherwise they are all discarded and the error is returned unchanged.
	// Write scopes are strictly serialized, concurrent callers queue.
	// Requesting a scope from a context that already carries one fails with
	// domain.ErrNestedTransaction.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)

	// Close releases the store handle. Any repository call issued after
	// Close fails with domain.ErrStoreClosed.
	Close()
}
