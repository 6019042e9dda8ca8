package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

type addressRepositoryImpl struct {
	db *repoManager
}

func (a addressRepositoryImpl) GetAddress(
	ctx context.Context, address string,
) (*domain.Address, error) {
	if err := a.db.checkOpen(); err != nil {
		return nil, err
	}

	var row domain.Address
	var err error

	if tx, ok := a.db.tx(ctx); ok {
		err = a.db.store.TxGet(tx, address, &row)
	} else {
		err = a.db.store.Get(address, &row)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

func (a addressRepositoryImpl) GetAllAddresses(
	ctx context.Context,
) ([]domain.Address, error) {
	if err := a.db.checkOpen(); err != nil {
		return nil, err
	}

	var rows []domain.Address
	var err error

	if tx, ok := a.db.tx(ctx); ok {
		err = a.db.store.TxFind(tx, &rows, nil)
	} else {
		err = a.db.store.Find(&rows, nil)
	}

	return rows, err
}

func (a addressRepositoryImpl) UpsertAddress(
	ctx context.Context, address *domain.Address,
) error {
	if err := a.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := a.db.tx(ctx); ok {
		return a.db.store.TxUpsert(tx, address.Address, *address)
	}
	return a.db.store.Upsert(address.Address, *address)
}

func (a addressRepositoryImpl) DeleteAddress(
	ctx context.Context, address string,
) error {
	if err := a.db.checkOpen(); err != nil {
		return err
	}

	var err error
	if tx, ok := a.db.tx(ctx); ok {
		err = a.db.store.TxDelete(tx, address, domain.Address{})
	} else {
		err = a.db.store.Delete(address, domain.Address{})
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrAddressNotFound
		}
		return err
	}

	return nil
}

func (a addressRepositoryImpl) DeleteAllAddresses(ctx context.Context) error {
	if err := a.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := a.db.tx(ctx); ok {
		return a.db.store.TxDeleteMatching(tx, domain.Address{}, nil)
	}
	return a.db.store.DeleteMatching(domain.Address{}, nil)
}
