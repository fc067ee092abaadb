package model

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/id"
)

// Leg is a single row in journal.csv (one side of a transaction).
type Leg struct {
	EntryID     string // "<entry><x>" where x = a,b,c...
	Date        Date
	Account     string
	Description string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
}

// EntryGroup returns the transaction ID the leg belongs to.
func (l Leg) EntryGroup() string {
	return id.EntryGroup(l.EntryID)
}

// Side reports which side the leg posts to.
func (l Leg) Side() Side {
	if !l.Debit.IsZero() {
		return Debit
	}
	return Credit
}

// Amount is the non-zero side of the leg.
func (l Leg) Amount() decimal.Decimal {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}
