package dbbadger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/ports"
)

type contextKey int

// txKey is the context key under which RunTransaction stores the badger
// transaction shared by every repository call made within the scope.
const txKey contextKey = 0

const schemaKey = "schema_version"

// schemaInfo is the row stamping the on-disk layout version of the store
type schemaInfo struct {
	Version int
}

// MigrationFunc upgrades the records of a store written under fromVersion
// to the current domain.SchemaVersion. It runs inside a single write scope
// together with the stamping of the new version, so a failure leaves the
// store untouched and the open can be retried.
type MigrationFunc func(ctx context.Context, rm ports.RepoManager, fromVersion int) error

type repoManager struct {
	store *badgerhold.Store

	// writeMtx serializes write scopes, concurrent writers queue on it
	writeMtx sync.Mutex

	closeMtx sync.RWMutex
	closed   bool
	done     chan struct{}

	accountRepository     domain.AccountRepository
	nodeRepository        domain.NodeRepository
	walletRepository      domain.WalletRepository
	transactionRepository domain.TransactionRepository
	addressRepository     domain.AddressRepository
	spendStatusRepository domain.SpendStatusRepository
}

// NewRepoManager opens (or creates if not exists) the badger store at the
// given dir and returns a RepoManager backed by it. An empty dir opens the
// store in memory, which is useful for testing via handle substitution.
// If the on-disk schema version differs from domain.SchemaVersion the
// given migration is run, or the open fails with domain.ErrSchemaMismatch
// when none is provided.
func NewRepoManager(
	dbDir string, logger badger.Logger, migration MigrationFunc,
) (ports.RepoManager, error) {
	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening wallet store: %w", err)
	}

	rm := &repoManager{
		store: store,
		done:  make(chan struct{}),
	}
	rm.accountRepository = accountRepositoryImpl{rm}
	rm.nodeRepository = nodeRepositoryImpl{rm}
	rm.walletRepository = walletRepositoryImpl{rm}
	rm.transactionRepository = transactionRepositoryImpl{rm}
	rm.addressRepository = addressRepositoryImpl{rm}
	rm.spendStatusRepository = spendStatusRepositoryImpl{rm}

	if err := rm.checkSchemaVersion(migration); err != nil {
		store.Close()
		return nil, err
	}

	if len(dbDir) > 0 {
		go rm.runGarbageCollector()
	}

	return rm, nil
}

func (d *repoManager) AccountRepository() domain.AccountRepository {
	return d.accountRepository
}

func (d *repoManager) NodeRepository() domain.NodeRepository {
	return d.nodeRepository
}

func (d *repoManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *repoManager) TransactionRepository() domain.TransactionRepository {
	return d.transactionRepository
}

func (d *repoManager) AddressRepository() domain.AddressRepository {
	return d.addressRepository
}

func (d *repoManager) SpendStatusRepository() domain.SpendStatusRepository {
	return d.spendStatusRepository
}

// RunTransaction implements the ports.RepoManager interface
func (d *repoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (res interface{}, err error) {
	if ctx.Value(txKey) != nil {
		return nil, domain.ErrNestedTransaction
	}

	if !readOnly {
		d.writeMtx.Lock()
		defer d.writeMtx.Unlock()
	}

	// checked under the writer mutex, a queued writer must not open a
	// transaction against a store that was closed while it waited
	if err := d.checkOpen(); err != nil {
		return nil, err
	}

	tx := d.store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	// a panicking handler must roll back like an erroring one
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("recovered: %v", rec)
		}
	}()

	res, err = handler(context.WithValue(ctx, txKey, tx))
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Close implements the ports.RepoManager interface
func (d *repoManager) Close() {
	d.writeMtx.Lock()
	defer d.writeMtx.Unlock()
	d.closeMtx.Lock()
	defer d.closeMtx.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	close(d.done)
	d.store.Close()
}

func (d *repoManager) checkOpen() error {
	d.closeMtx.RLock()
	defer d.closeMtx.RUnlock()

	if d.closed {
		return domain.ErrStoreClosed
	}
	return nil
}

// tx returns the badger transaction carried by ctx, if any
func (d *repoManager) tx(ctx context.Context) (*badger.Txn, bool) {
	tx, ok := ctx.Value(txKey).(*badger.Txn)
	return tx, ok
}

func (d *repoManager) checkSchemaVersion(migration MigrationFunc) error {
	var stored schemaInfo
	err := d.store.Get(schemaKey, &stored)
	if err == badgerhold.ErrNotFound {
		return d.store.Insert(schemaKey, schemaInfo{domain.SchemaVersion})
	}
	if err != nil {
		return err
	}

	if stored.Version == domain.SchemaVersion {
		return nil
	}
	if stored.Version > domain.SchemaVersion || migration == nil {
		return domain.ErrSchemaMismatch
	}

	log.Infof(
		"migrating wallet store from schema version %d to %d",
		stored.Version, domain.SchemaVersion,
	)
	if _, err := d.RunTransaction(
		context.Background(), false,
		func(ctx context.Context) (interface{}, error) {
			if err := migration(ctx, d, stored.Version); err != nil {
				return nil, err
			}
			// the version stamp must land in the same commit as the
			// migrated records, a stamp lagging behind them would replay
			// the migration on the next open
			tx, _ := d.tx(ctx)
			return nil, d.store.TxUpsert(tx, schemaKey, schemaInfo{domain.SchemaVersion})
		},
	); err != nil {
		return fmt.Errorf("migrating store: %w", err)
	}

	return nil
}

func (d *repoManager) runGarbageCollector() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			if err := d.store.Badger().RunValueLogGC(0.5); err != nil &&
				err != badger.ErrNoRewrite {
				log.Error(err)
			}
		}
	}
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
