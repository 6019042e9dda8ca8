package domain

import "github.com/shopspring/decimal"

// Account is the entity data structure for a named wallet account. The
// account name is the primary key; renaming is only possible through an
// explicit migration (copy under the new name, then delete the old row).
type Account struct {
	Name         string
	AddressData  map[string]AddressInfo
	Transactions map[string]Transaction
}

// NewAccount returns an empty Account with the given name
func NewAccount(name string) (*Account, error) {
	if len(name) <= 0 {
		return nil, ErrNullAccountName
	}

	return &Account{
		Name:         name,
		AddressData:  map[string]AddressInfo{},
		Transactions: map[string]Transaction{},
	}, nil
}

// WithName returns a deep copy of the account carrying the given name,
// leaving the receiver untouched. It is the copy half of a migration.
func (a *Account) WithName(name string) (*Account, error) {
	target, err := NewAccount(name)
	if err != nil {
		return nil, err
	}

	for addr, info := range a.AddressData {
		target.AddressData[addr] = info
	}
	for hash, tx := range a.Transactions {
		target.Transactions[hash] = tx
	}

	return target, nil
}

// Balance returns the sum of the balances of all addresses of the account
func (a *Account) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, info := range a.AddressData {
		total = total.Add(info.Balance)
	}
	return total
}
