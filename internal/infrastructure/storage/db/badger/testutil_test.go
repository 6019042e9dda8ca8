package dbbadger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/ports"
	dbbadger "github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/infrastructure/storage/db/badger"
)

// newTestRepoManager opens an in-memory store, the same code path used
// on disk minus the file handling
func newTestRepoManager(t *testing.T) ports.RepoManager {
	t.Helper()

	rm, err := dbbadger.NewRepoManager("", nil, nil)
	require.NoError(t, err)
	t.Cleanup(rm.Close)

	return rm
}
