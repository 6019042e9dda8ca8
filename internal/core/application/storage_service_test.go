package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/application"
	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/ports"
	dbbadger "github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/infrastructure/storage/db/badger"
)

func newTestRepoManager(t *testing.T) ports.RepoManager {
	t.Helper()

	rm, err := dbbadger.NewRepoManager("", nil, nil)
	require.NoError(t, err)
	t.Cleanup(rm.Close)

	return rm
}

func TestInitializeIsIdempotent(t *testing.T) {
	rm := newTestRepoManager(t)
	svc := application.NewStorageService(rm)
	ctx := context.Background()

	require.NoError(t, svc.Initialize(ctx))
	require.NoError(t, svc.Initialize(ctx))

	wallet, err := rm.WalletRepository().GetWallet(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.SchemaVersion, wallet.Version)
	require.Equal(t, domain.DefaultLocale, wallet.Settings.Locale)
}

func TestReinitialize(t *testing.T) {
	rm := newTestRepoManager(t)
	svc := application.NewStorageService(rm)
	accountSvc := application.NewAccountService(rm)
	nodeSvc := application.NewNodeService(rm)
	ctx := context.Background()

	require.NoError(t, svc.Initialize(ctx))

	for _, name := range []string{"alice", "bob", "carol"} {
		account, err := domain.NewAccount(name)
		require.NoError(t, err)
		require.NoError(t, accountSvc.CreateAccount(ctx, account))
	}
	require.NoError(t, nodeSvc.AddNodes(ctx, []domain.Node{
		{URL: "a", Custom: true},
		{URL: "b"},
	}))

	require.NoError(t, svc.Reinitialize(ctx))

	accounts, err := accountSvc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Empty(t, accounts)

	nodes, err := nodeSvc.ListNodes(ctx)
	require.NoError(t, err)
	require.Empty(t, nodes)

	// a fresh wallet singleton with default settings is in place
	wallet, err := rm.WalletRepository().GetWallet(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultLocale, wallet.Settings.Locale)
	require.Empty(t, wallet.ErrorLog)
}

func TestPurgeOnEmptyStore(t *testing.T) {
	rm := newTestRepoManager(t)
	svc := application.NewStorageService(rm)

	require.NoError(t, svc.Purge(context.Background()))
}
