package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

type transactionRepositoryImpl struct {
	db *repoManager
}

func (t transactionRepositoryImpl) GetTransaction(
	ctx context.Context, hash string,
) (*domain.Transaction, error) {
	if err := t.db.checkOpen(); err != nil {
		return nil, err
	}

	var transaction domain.Transaction
	var err error

	if tx, ok := t.db.tx(ctx); ok {
		err = t.db.store.TxGet(tx, hash, &transaction)
	} else {
		err = t.db.store.Get(hash, &transaction)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &transaction, nil
}

func (t transactionRepositoryImpl) GetAllTransactions(
	ctx context.Context,
) ([]domain.Transaction, error) {
	return t.findTransactions(ctx, nil)
}

func (t transactionRepositoryImpl) GetTransactionsForAccount(
	ctx context.Context, account string,
) ([]domain.Transaction, error) {
	query := badgerhold.Where("Account").Eq(account)
	return t.findTransactions(ctx, query)
}

func (t transactionRepositoryImpl) InsertTransaction(
	ctx context.Context, transaction *domain.Transaction,
) error {
	if err := t.db.checkOpen(); err != nil {
		return err
	}

	var err error
	if tx, ok := t.db.tx(ctx); ok {
		err = t.db.store.TxInsert(tx, transaction.Hash, *transaction)
	} else {
		err = t.db.store.Insert(transaction.Hash, *transaction)
	}
	if err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrTransactionAlreadyExists
		}
		return err
	}

	return nil
}

func (t transactionRepositoryImpl) UpsertTransaction(
	ctx context.Context, transaction *domain.Transaction,
) error {
	if err := t.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := t.db.tx(ctx); ok {
		return t.db.store.TxUpsert(tx, transaction.Hash, *transaction)
	}
	return t.db.store.Upsert(transaction.Hash, *transaction)
}

func (t transactionRepositoryImpl) DeleteTransaction(
	ctx context.Context, hash string,
) error {
	if err := t.db.checkOpen(); err != nil {
		return err
	}

	var err error
	if tx, ok := t.db.tx(ctx); ok {
		err = t.db.store.TxDelete(tx, hash, domain.Transaction{})
	} else {
		err = t.db.store.Delete(hash, domain.Transaction{})
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	return nil
}

func (t transactionRepositoryImpl) DeleteAllTransactions(ctx context.Context) error {
	if err := t.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := t.db.tx(ctx); ok {
		return t.db.store.TxDeleteMatching(tx, domain.Transaction{}, nil)
	}
	return t.db.store.DeleteMatching(domain.Transaction{}, nil)
}

func (t transactionRepositoryImpl) findTransactions(
	ctx context.Context, query *badgerhold.Query,
) ([]domain.Transaction, error) {
	if err := t.db.checkOpen(); err != nil {
		return nil, err
	}

	var transactions []domain.Transaction
	var err error

	if tx, ok := t.db.tx(ctx); ok {
		err = t.db.store.TxFind(tx, &transactions, query)
	} else {
		err = t.db.store.Find(&transactions, query)
	}

	return transactions, err
}
