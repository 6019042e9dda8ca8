package domain

import "github.com/shopspring/decimal"

// SpendStatus tracks whether an address has been spent from, as seen
// locally and as reported by the surrounding application
type SpendStatus struct {
	Local  bool
	Remote bool
}

// AddressInfo is the per-address metadata embedded in an Account
type AddressInfo struct {
	Index    int
	Checksum string
	Balance  decimal.Decimal
	Spent    SpendStatus
}

// Address is the standalone address row, keyed by the address string.
// Ownership by an account is a caller contract, not a store constraint.
type Address struct {
	Address  string
	Index    int
	Checksum string
	Balance  decimal.Decimal
	Spent    SpendStatus
}

// AddressSpendStatus maps an address to its spent flag
type AddressSpendStatus struct {
	Address string
	Spent   bool
}
