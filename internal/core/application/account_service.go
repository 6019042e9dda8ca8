package application

import (
	"context"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/ports"
)

// AccountService exposes account storage to the business layer. Every
// mutation runs in its own write scope.
type AccountService interface {
	GetAccount(ctx context.Context, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CreateAccount(ctx context.Context, account *domain.Account) error
	UpdateAccount(ctx context.Context, account *domain.Account) error
	DeleteAccount(ctx context.Context, name string) error
	// MigrateAccount renames an account by copying it under the new name
	// and deleting the old row, atomically
	MigrateAccount(ctx context.Context, fromName, toName string) error
	// UpdateAccountData merges fresh address data and transactions into the
	// account and mirrors them into the standalone address and transaction
	// rows, all in one write scope
	UpdateAccountData(
		ctx context.Context,
		name string,
		addressData map[string]domain.AddressInfo,
		transactions map[string]domain.Transaction,
	) error
	// MarkAddressSpent records the spent flag for the given address
	MarkAddressSpent(ctx context.Context, address string, spent bool) error
}

type accountService struct {
	repoManager ports.RepoManager
}

func NewAccountService(repoManager ports.RepoManager) AccountService {
	return &accountService{repoManager}
}

func (a *accountService) GetAccount(
	ctx context.Context, name string,
) (*domain.Account, error) {
	return a.repoManager.AccountRepository().GetAccount(ctx, name)
}

func (a *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return a.repoManager.AccountRepository().GetAllAccounts(ctx)
}

func (a *accountService) CreateAccount(
	ctx context.Context, account *domain.Account,
) error {
	_, err := a.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, a.repoManager.AccountRepository().CreateAccount(ctx, account)
		},
	)
	return err
}

func (a *accountService) UpdateAccount(
	ctx context.Context, account *domain.Account,
) error {
	_, err := a.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, a.repoManager.AccountRepository().UpdateAccount(ctx, account)
		},
	)
	return err
}

func (a *accountService) DeleteAccount(ctx context.Context, name string) error {
	_, err := a.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, a.repoManager.AccountRepository().DeleteAccount(ctx, name)
		},
	)
	return err
}

func (a *accountService) MigrateAccount(
	ctx context.Context, fromName, toName string,
) error {
	_, err := a.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, a.repoManager.AccountRepository().MigrateAccount(
				ctx, fromName, toName,
			)
		},
	)
	return err
}

func (a *accountService) UpdateAccountData(
	ctx context.Context,
	name string,
	addressData map[string]domain.AddressInfo,
	transactions map[string]domain.Transaction,
) error {
	_, err := a.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			accountRepo := a.repoManager.AccountRepository()

			account, err := accountRepo.GetAccount(ctx, name)
			if err != nil {
				return nil, err
			}
			if account == nil {
				return nil, domain.ErrAccountNotFound
			}

			for addr, info := range addressData {
				account.AddressData[addr] = info

				row := &domain.Address{
					Address:  addr,
					Index:    info.Index,
					Checksum: info.Checksum,
					Balance:  info.Balance,
					Spent:    info.Spent,
				}
				if err := a.repoManager.AddressRepository().UpsertAddress(
					ctx, row,
				); err != nil {
					return nil, err
				}
			}

			for hash, tx := range transactions {
				tx.Hash = hash
				tx.Account = name
				account.Transactions[hash] = tx

				if err := a.repoManager.TransactionRepository().UpsertTransaction(
					ctx, &tx,
				); err != nil {
					return nil, err
				}
			}

			return nil, accountRepo.UpdateAccount(ctx, account)
		},
	)
	return err
}

func (a *accountService) MarkAddressSpent(
	ctx context.Context, address string, spent bool,
) error {
	_, err := a.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, a.repoManager.SpendStatusRepository().MarkSpent(
				ctx, address, spent,
			)
		},
	)
	return err
}
