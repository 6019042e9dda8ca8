package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

func TestNewAccount(t *testing.T) {
	account, err := domain.NewAccount("alice")
	require.NoError(t, err)
	require.NotNil(t, account)
	require.Equal(t, "alice", account.Name)
	require.Empty(t, account.AddressData)
	require.Empty(t, account.Transactions)
}

func TestFailingNewAccount(t *testing.T) {
	_, err := domain.NewAccount("")
	require.EqualError(t, err, domain.ErrNullAccountName.Error())
}

func TestAccountWithName(t *testing.T) {
	account, err := domain.NewAccount("alice")
	require.NoError(t, err)

	account.AddressData["addr1"] = domain.AddressInfo{
		Index:   0,
		Balance: decimal.NewFromInt(100),
	}
	account.Transactions["hash1"] = domain.Transaction{
		Hash:    "hash1",
		Account: "alice",
	}

	migrated, err := account.WithName("bob")
	require.NoError(t, err)
	require.Equal(t, "bob", migrated.Name)
	require.Equal(t, account.AddressData, migrated.AddressData)
	require.Equal(t, account.Transactions, migrated.Transactions)

	// the copy must be deep, mutating it must not touch the source
	migrated.AddressData["addr2"] = domain.AddressInfo{Index: 1}
	require.Len(t, account.AddressData, 1)
}

func TestAccountBalance(t *testing.T) {
	account, err := domain.NewAccount("alice")
	require.NoError(t, err)

	account.AddressData["addr1"] = domain.AddressInfo{
		Balance: decimal.NewFromInt(30),
	}
	account.AddressData["addr2"] = domain.AddressInfo{
		Balance: decimal.NewFromInt(12),
	}

	require.True(t, account.Balance().Equal(decimal.NewFromInt(42)))
}
