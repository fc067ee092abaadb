// Package statements derives the financial statements from adjusted
// balances: income statement, statement of changes in capital, balance
// sheet and, optionally, the statement of cash flows.
package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Line is one labeled amount on a statement.
type Line struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Statements is the full expected statement set for one period.
type Statements struct {
	Income    IncomeStatement  `json:"incomeStatement"`
	Capital   CapitalStatement `json:"capitalStatement"`
	Balance   BalanceSheet     `json:"balanceSheet"`
	CashFlows *CashFlows       `json:"cashFlows,omitempty"`
	// EquityCheck is total assets less total liabilities, computed
	// independently of the capital statement.
	EquityCheck decimal.Decimal `json:"equityCheck"`
}

// Derive builds every statement from the book's adjusted balances.
func Derive(book *ledger.Book) Statements {
	cfg := book.Config()
	st := Statements{
		Income:  deriveIncome(book, cfg.FSFormat),
		Capital: deriveCapital(book),
	}
	st.Balance = deriveBalance(book, st.Capital.Ending)
	st.EquityCheck = st.Balance.TotalAssets.Sub(st.Balance.TotalLiabilities)
	if cfg.IncludeCashFlows {
		cf := deriveCashFlows(book)
		st.CashFlows = &cf
	}
	return st
}

// Balanced reports whether total assets equal total liabilities plus
// ending capital.
func (s Statements) Balanced() bool {
	return s.Balance.TotalAssets.Equal(s.Balance.TotalLiabilitiesAndEquity)
}

func sum(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

func isMultiStep(f model.StatementFormat) bool {
	return f == model.FormatMultiStep
}
