package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

type spendStatusRepositoryImpl struct {
	db *repoManager
}

func (s spendStatusRepositoryImpl) GetSpendStatus(
	ctx context.Context, address string,
) (*domain.AddressSpendStatus, error) {
	if err := s.db.checkOpen(); err != nil {
		return nil, err
	}

	var status domain.AddressSpendStatus
	var err error

	if tx, ok := s.db.tx(ctx); ok {
		err = s.db.store.TxGet(tx, address, &status)
	} else {
		err = s.db.store.Get(address, &status)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &status, nil
}

func (s spendStatusRepositoryImpl) GetAllSpendStatuses(
	ctx context.Context,
) ([]domain.AddressSpendStatus, error) {
	if err := s.db.checkOpen(); err != nil {
		return nil, err
	}

	var statuses []domain.AddressSpendStatus
	var err error

	if tx, ok := s.db.tx(ctx); ok {
		err = s.db.store.TxFind(tx, &statuses, nil)
	} else {
		err = s.db.store.Find(&statuses, nil)
	}

	return statuses, err
}

func (s spendStatusRepositoryImpl) MarkSpent(
	ctx context.Context, address string, spent bool,
) error {
	if err := s.db.checkOpen(); err != nil {
		return err
	}

	status := domain.AddressSpendStatus{Address: address, Spent: spent}

	if tx, ok := s.db.tx(ctx); ok {
		return s.db.store.TxUpsert(tx, address, status)
	}
	return s.db.store.Upsert(address, status)
}

func (s spendStatusRepositoryImpl) DeleteAllSpendStatuses(ctx context.Context) error {
	if err := s.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := s.db.tx(ctx); ok {
		return s.db.store.TxDeleteMatching(tx, domain.AddressSpendStatus{}, nil)
	}
	return s.db.store.DeleteMatching(domain.AddressSpendStatus{}, nil)
}
