package dbbadger

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

type accountRepositoryImpl struct {
	db *repoManager
}

func (a accountRepositoryImpl) GetAccount(
	ctx context.Context, name string,
) (*domain.Account, error) {
	if err := a.db.checkOpen(); err != nil {
		return nil, err
	}

	var account domain.Account
	var err error

	if tx, ok := a.db.tx(ctx); ok {
		err = a.db.store.TxGet(tx, name, &account)
	} else {
		err = a.db.store.Get(name, &account)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	restoreMaps(&account)
	return &account, nil
}

func (a accountRepositoryImpl) GetAllAccounts(
	ctx context.Context,
) ([]domain.Account, error) {
	if err := a.db.checkOpen(); err != nil {
		return nil, err
	}

	var accounts []domain.Account
	var err error

	if tx, ok := a.db.tx(ctx); ok {
		err = a.db.store.TxFind(tx, &accounts, nil)
	} else {
		err = a.db.store.Find(&accounts, nil)
	}
	for i := range accounts {
		restoreMaps(&accounts[i])
	}

	return accounts, err
}

// restoreMaps re-creates the inner maps dropped by the codec when empty
func restoreMaps(account *domain.Account) {
	if account.AddressData == nil {
		account.AddressData = map[string]domain.AddressInfo{}
	}
	if account.Transactions == nil {
		account.Transactions = map[string]domain.Transaction{}
	}
}

func (a accountRepositoryImpl) CreateAccount(
	ctx context.Context, account *domain.Account,
) error {
	if err := a.db.checkOpen(); err != nil {
		return err
	}

	var err error
	if tx, ok := a.db.tx(ctx); ok {
		err = a.db.store.TxInsert(tx, account.Name, *account)
	} else {
		err = a.db.store.Insert(account.Name, *account)
	}
	if err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrAccountAlreadyExists
		}
		return err
	}

	return nil
}

func (a accountRepositoryImpl) UpdateAccount(
	ctx context.Context, account *domain.Account,
) error {
	if err := a.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := a.db.tx(ctx); ok {
		return a.db.store.TxUpsert(tx, account.Name, *account)
	}
	return a.db.store.Upsert(account.Name, *account)
}

func (a accountRepositoryImpl) DeleteAccount(
	ctx context.Context, name string,
) error {
	if err := a.db.checkOpen(); err != nil {
		return err
	}

	var err error
	if tx, ok := a.db.tx(ctx); ok {
		err = a.db.store.TxDelete(tx, name, domain.Account{})
	} else {
		err = a.db.store.Delete(name, domain.Account{})
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrAccountNotFound
		}
		return err
	}

	return nil
}

func (a accountRepositoryImpl) MigrateAccount(
	ctx context.Context, fromName, toName string,
) error {
	account, err := a.GetAccount(ctx, fromName)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}

	target, err := a.GetAccount(ctx, toName)
	if err != nil {
		return err
	}
	if target != nil {
		return domain.ErrAccountAlreadyExists
	}

	migrated, err := account.WithName(toName)
	if err != nil {
		return err
	}

	if err := a.CreateAccount(ctx, migrated); err != nil {
		return fmt.Errorf("migrating account %s to %s: %w", fromName, toName, err)
	}

	return a.DeleteAccount(ctx, fromName)
}

func (a accountRepositoryImpl) DeleteAllAccounts(ctx context.Context) error {
	if err := a.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := a.db.tx(ctx); ok {
		return a.db.store.TxDeleteMatching(tx, domain.Account{}, nil)
	}
	return a.db.store.DeleteMatching(domain.Account{}, nil)
}
