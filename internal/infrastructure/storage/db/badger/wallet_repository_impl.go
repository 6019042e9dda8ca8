package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

type walletRepositoryImpl struct {
	db *repoManager
}

func (w walletRepositoryImpl) CreateWalletIfNotExists(ctx context.Context) error {
	if err := w.db.checkOpen(); err != nil {
		return err
	}

	wallet := domain.NewWallet()

	var err error
	if tx, ok := w.db.tx(ctx); ok {
		err = w.db.store.TxInsert(tx, wallet.Version, *wallet)
	} else {
		err = w.db.store.Insert(wallet.Version, *wallet)
	}
	if err != nil && err != badgerhold.ErrKeyExists {
		return err
	}

	return nil
}

func (w walletRepositoryImpl) GetWallet(ctx context.Context) (*domain.Wallet, error) {
	if err := w.db.checkOpen(); err != nil {
		return nil, err
	}

	var wallet domain.Wallet
	var err error

	if tx, ok := w.db.tx(ctx); ok {
		err = w.db.store.TxGet(tx, domain.SchemaVersion, &wallet)
	} else {
		err = w.db.store.Get(domain.SchemaVersion, &wallet)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}

	return &wallet, nil
}

func (w walletRepositoryImpl) GetSettings(
	ctx context.Context,
) (*domain.WalletSettings, error) {
	wallet, err := w.GetWallet(ctx)
	if err != nil {
		return nil, err
	}

	return &wallet.Settings, nil
}

func (w walletRepositoryImpl) UpdateWallet(
	ctx context.Context,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	currentWallet, err := w.GetWallet(ctx)
	if err != nil {
		return err
	}

	updatedWallet, err := updateFn(currentWallet)
	if err != nil {
		return err
	}

	if tx, ok := w.db.tx(ctx); ok {
		return w.db.store.TxUpdate(tx, updatedWallet.Version, *updatedWallet)
	}
	return w.db.store.Update(updatedWallet.Version, *updatedWallet)
}

func (w walletRepositoryImpl) UpdateSettings(
	ctx context.Context,
	updateFn func(s *domain.WalletSettings) (*domain.WalletSettings, error),
) error {
	return w.UpdateWallet(ctx, func(wallet *domain.Wallet) (*domain.Wallet, error) {
		updatedSettings, err := updateFn(&wallet.Settings)
		if err != nil {
			return nil, err
		}
		wallet.Settings = *updatedSettings
		return wallet, nil
	})
}

func (w walletRepositoryImpl) DeleteWallet(ctx context.Context) error {
	if err := w.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := w.db.tx(ctx); ok {
		return w.db.store.TxDeleteMatching(tx, domain.Wallet{}, nil)
	}
	return w.db.store.DeleteMatching(domain.Wallet{}, nil)
}
