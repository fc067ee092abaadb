// Package ledger aggregates postings into per-account balances at each stage
// of the accounting cycle.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Balance is the accumulated debit and credit of one account.
type Balance struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// Net returns debit minus credit: positive is a debit balance.
func (b Balance) Net() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}

// Side returns Dr for a zero or debit balance, Cr otherwise.
func (b Balance) Side() model.Side {
	if b.Net().IsNegative() {
		return model.Credit
	}
	return model.Debit
}

// Amount returns the absolute net balance.
func (b Balance) Amount() decimal.Decimal {
	return b.Net().Abs()
}

// IsZero reports whether the net balance is zero.
func (b Balance) IsZero() bool {
	return b.Net().IsZero()
}

// Split re-splits the net balance into a debit column and a credit column,
// at most one of which is non-zero.
func (b Balance) Split() (dr, cr decimal.Decimal) {
	net := b.Net()
	if net.IsNegative() {
		return decimal.Zero, net.Neg()
	}
	return net, decimal.Zero
}

// Add returns the sum of two balances.
func (b Balance) Add(o Balance) Balance {
	return Balance{Debit: b.Debit.Add(o.Debit), Credit: b.Credit.Add(o.Credit)}
}

// FromNet builds a single-sided balance from a signed net amount.
func FromNet(net decimal.Decimal) Balance {
	if net.IsNegative() {
		return Balance{Debit: decimal.Zero, Credit: net.Neg()}
	}
	return Balance{Debit: net, Credit: decimal.Zero}
}

// AccountBalance pairs an account name with its balance.
type AccountBalance struct {
	Account string  `json:"account"`
	Balance Balance `json:"balance"`
}
