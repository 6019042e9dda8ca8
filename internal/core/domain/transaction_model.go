package domain

import "github.com/shopspring/decimal"

// Transaction is the entity data structure for a stored transaction,
// keyed by its hash
type Transaction struct {
	Hash        string
	Account     string
	Value       decimal.Decimal
	Timestamp   int64
	Confirmed   bool
	Broadcasted bool
}
