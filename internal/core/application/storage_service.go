package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/ports"
)

// StorageService is the lifecycle façade consumed by the surrounding
// application. It owns no state besides the repo manager and sequences
// purge and initialization so they never race each other.
type StorageService interface {
	// Initialize makes sure the wallet singleton for the current schema
	// version exists, creating it with default settings if absent
	Initialize(ctx context.Context) error
	// Purge deletes every record of every entity kind in one write scope.
	// The schema version stamp survives.
	Purge(ctx context.Context) error
	// Reinitialize runs Purge followed by Initialize
	Reinitialize(ctx context.Context) error
}

type storageService struct {
	repoManager ports.RepoManager
}

func NewStorageService(repoManager ports.RepoManager) StorageService {
	return &storageService{repoManager}
}

func (s *storageService) Initialize(ctx context.Context) error {
	_, err := s.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.WalletRepository().CreateWalletIfNotExists(ctx)
		},
	)
	if err != nil {
		return err
	}

	log.Debug("wallet storage initialized")
	return nil
}

func (s *storageService) Purge(ctx context.Context) error {
	_, err := s.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			if err := s.repoManager.AccountRepository().DeleteAllAccounts(ctx); err != nil {
				return nil, err
			}
			if err := s.repoManager.NodeRepository().DeleteAllNodes(ctx); err != nil {
				return nil, err
			}
			if err := s.repoManager.TransactionRepository().DeleteAllTransactions(ctx); err != nil {
				return nil, err
			}
			if err := s.repoManager.AddressRepository().DeleteAllAddresses(ctx); err != nil {
				return nil, err
			}
			if err := s.repoManager.SpendStatusRepository().DeleteAllSpendStatuses(ctx); err != nil {
				return nil, err
			}
			return nil, s.repoManager.WalletRepository().DeleteWallet(ctx)
		},
	)
	if err != nil {
		return err
	}

	log.Debug("wallet storage purged")
	return nil
}

func (s *storageService) Reinitialize(ctx context.Context) error {
	if err := s.Purge(ctx); err != nil {
		return err
	}
	return s.Initialize(ctx)
}
