package dbbadger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

func TestCreateAndGetAccount(t *testing.T) {
	rm := newTestRepoManager(t)
	repo := rm.AccountRepository()
	ctx := context.Background()

	account, err := domain.NewAccount("alice")
	require.NoError(t, err)
	account.AddressData["addr1"] = domain.AddressInfo{
		Index:    0,
		Checksum: "chk",
		Balance:  decimal.NewFromInt(50),
	}
	account.Transactions["hash1"] = domain.Transaction{
		Hash:    "hash1",
		Account: "alice",
		Value:   decimal.NewFromInt(50),
	}

	require.NoError(t, repo.CreateAccount(ctx, account))

	stored, err := repo.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, *account, *stored)

	absent, err := repo.GetAccount(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, absent)
}

func TestCreateDuplicateAccount(t *testing.T) {
	rm := newTestRepoManager(t)
	repo := rm.AccountRepository()
	ctx := context.Background()

	account, err := domain.NewAccount("alice")
	require.NoError(t, err)

	require.NoError(t, repo.CreateAccount(ctx, account))
	err = repo.CreateAccount(ctx, account)
	require.EqualError(t, err, domain.ErrAccountAlreadyExists.Error())
}

func TestUpdateAccountReplacesFields(t *testing.T) {
	rm := newTestRepoManager(t)
	repo := rm.AccountRepository()
	ctx := context.Background()

	account, err := domain.NewAccount("alice")
	require.NoError(t, err)
	account.AddressData["addr1"] = domain.AddressInfo{Index: 0}
	require.NoError(t, repo.CreateAccount(ctx, account))

	replacement, err := domain.NewAccount("alice")
	require.NoError(t, err)
	replacement.AddressData["addr2"] = domain.AddressInfo{
		Index:   1,
		Balance: decimal.NewFromInt(0),
	}
	require.NoError(t, repo.UpdateAccount(ctx, replacement))

	accounts, err := repo.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, replacement.AddressData, accounts[0].AddressData)
}

func TestDeleteAccount(t *testing.T) {
	rm := newTestRepoManager(t)
	repo := rm.AccountRepository()
	ctx := context.Background()

	account, err := domain.NewAccount("alice")
	require.NoError(t, err)
	require.NoError(t, repo.CreateAccount(ctx, account))

	require.NoError(t, repo.DeleteAccount(ctx, "alice"))

	stored, err := repo.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, stored)

	err = repo.DeleteAccount(ctx, "alice")
	require.EqualError(t, err, domain.ErrAccountNotFound.Error())
}

func TestMigrateAccount(t *testing.T) {
	rm := newTestRepoManager(t)
	repo := rm.AccountRepository()
	ctx := context.Background()

	account, err := domain.NewAccount("alice")
	require.NoError(t, err)
	account.AddressData["addr1"] = domain.AddressInfo{
		Index:   3,
		Balance: decimal.NewFromInt(7),
	}
	account.Transactions["hash1"] = domain.Transaction{
		Hash:    "hash1",
		Account: "alice",
		Value:   decimal.NewFromInt(1),
	}
	require.NoError(t, repo.CreateAccount(ctx, account))

	_, err = rm.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, repo.MigrateAccount(ctx, "alice", "bob")
		},
	)
	require.NoError(t, err)

	oldAccount, err := repo.GetAccount(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, oldAccount)

	newAccount, err := repo.GetAccount(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, newAccount)
	require.Equal(t, account.AddressData, newAccount.AddressData)
	require.Equal(t, account.Transactions, newAccount.Transactions)
}

func TestFailingMigrateAccount(t *testing.T) {
	rm := newTestRepoManager(t)
	repo := rm.AccountRepository()
	ctx := context.Background()

	alice, err := domain.NewAccount("alice")
	require.NoError(t, err)
	bob, err := domain.NewAccount("bob")
	require.NoError(t, err)
	require.NoError(t, repo.CreateAccount(ctx, alice))
	require.NoError(t, repo.CreateAccount(ctx, bob))

	tests := []struct {
		name          string
		from          string
		to            string
		expectedError error
	}{
		{"source_missing", "nobody", "carol", domain.ErrAccountNotFound},
		{"target_taken", "alice", "bob", domain.ErrAccountAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rm.RunTransaction(
				ctx, false,
				func(ctx context.Context) (interface{}, error) {
					return nil, repo.MigrateAccount(ctx, tt.from, tt.to)
				},
			)
			require.EqualError(t, err, tt.expectedError.Error())

			// nothing must have changed
			accounts, err := repo.GetAllAccounts(ctx)
			require.NoError(t, err)
			require.Len(t, accounts, 2)
		})
	}
}
