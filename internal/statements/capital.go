package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
)

// CapitalStatement is the statement of changes in owner's (or
// shareholders') equity.
type CapitalStatement struct {
	CapitalAccount string          `json:"capitalAccount"`
	Beginning      decimal.Decimal `json:"beginning"`
	Investments    decimal.Decimal `json:"investments"`
	NetIncome      decimal.Decimal `json:"netIncome"`
	Drawings       decimal.Decimal `json:"drawings"`
	Ending         decimal.Decimal `json:"ending"`
}

// Increase returns investments plus net income, or just investments when
// the period closed at a loss.
func (c CapitalStatement) Increase() decimal.Decimal {
	if c.NetIncome.IsNegative() {
		return c.Investments
	}
	return c.Investments.Add(c.NetIncome)
}

// Decrease returns drawings plus the net loss, if any.
func (c CapitalStatement) Decrease() decimal.Decimal {
	if c.NetIncome.IsNegative() {
		return c.Drawings.Add(c.NetIncome.Neg())
	}
	return c.Drawings
}

func deriveCapital(book *ledger.Book) CapitalStatement {
	cs := CapitalStatement{
		CapitalAccount: book.CapitalAccount(),
		Beginning:      decimal.Zero,
		Investments:    decimal.Zero,
		NetIncome:      book.NetIncome(),
		Drawings:       book.Drawings(),
	}

	for _, name := range book.Accounts() {
		if !accounts.IsCapital(name) {
			continue
		}
		cs.Beginning = cs.Beginning.Sub(book.Opening(name).Net())
		// Adjusting entries against capital are treated like transactions.
		adj := book.AdjustmentTotals(name)
		cs.Investments = cs.Investments.Add(adj.Credit)
		cs.Drawings = cs.Drawings.Add(adj.Debit)
	}

	for _, txn := range book.Transactions() {
		for _, l := range txn.Credits {
			if accounts.IsCapital(l.Account) {
				cs.Investments = cs.Investments.Add(l.Amount)
			}
		}
		for _, l := range txn.Debits {
			if accounts.IsCapital(l.Account) {
				cs.Drawings = cs.Drawings.Add(l.Amount)
			}
		}
	}

	cs.Ending = cs.Beginning.Add(cs.Investments).Add(cs.NetIncome).Sub(cs.Drawings)
	return cs
}
