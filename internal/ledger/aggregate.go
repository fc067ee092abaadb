package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Totals is a raw debit/credit aggregate keyed by account name.
type Totals map[string]Balance

// Aggregate sums every posting in the given sources per account. Beginning
// balances and adjustments are optional.
func Aggregate(txns []model.Transaction, beginning *model.BeginningBalances, adjustments []model.Adjustment) Totals {
	totals := make(Totals)
	add := func(account string, dr, cr decimal.Decimal) {
		b := totals[account]
		totals[account] = b.Add(Balance{Debit: dr, Credit: cr})
	}
	for _, txn := range txns {
		for _, l := range txn.Debits {
			add(l.Account, l.Amount, decimal.Zero)
		}
		for _, l := range txn.Credits {
			add(l.Account, decimal.Zero, l.Amount)
		}
	}
	if beginning != nil {
		for account, bal := range beginning.Balances {
			add(account, bal.Dr, bal.Cr)
		}
	}
	for _, adj := range adjustments {
		add(adj.DrAcc, adj.Amount, decimal.Zero)
		add(adj.CrAcc, decimal.Zero, adj.Amount)
	}
	return totals
}

// FromLedger converts a generator-supplied raw ledger to Totals.
func FromLedger(raw map[string]model.LedgerTotals) Totals {
	totals := make(Totals, len(raw))
	for account, t := range raw {
		totals[account] = Balance{Debit: t.Debit, Credit: t.Credit}
	}
	return totals
}

// NetBalance returns the adjusted balance of account: its raw ledger totals
// plus every adjustment that touches it.
func NetBalance(account string, raw Totals, adjustments []model.Adjustment) Balance {
	b := raw[account]
	for _, adj := range adjustments {
		if sameAccount(adj.DrAcc, account) {
			b = b.Add(Balance{Debit: adj.Amount})
		}
		if sameAccount(adj.CrAcc, account) {
			b = b.Add(Balance{Credit: adj.Amount})
		}
	}
	return Balance{Debit: orZero(b.Debit), Credit: orZero(b.Credit)}
}

// Sum adds up the debit and credit of every account.
func (t Totals) Sum() Balance {
	var total Balance
	for _, b := range t {
		total = total.Add(b)
	}
	return Balance{Debit: orZero(total.Debit), Credit: orZero(total.Credit)}
}

func orZero(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d
}
