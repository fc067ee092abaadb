package statements

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// IncomeStatement lists revenues and expenses for the period. Contra
// revenues carry negative amounts. In the single-step format cost of sales
// lines are listed with the expenses and GrossIncome is zero.
type IncomeStatement struct {
	Format          model.StatementFormat `json:"format"`
	Revenues        []Line                `json:"revenues"`
	TotalRevenues   decimal.Decimal       `json:"totalRevenues"`
	CostOfSales     []Line                `json:"costOfSales,omitempty"`
	CostOfGoodsSold decimal.Decimal       `json:"costOfGoodsSold"`
	GrossIncome     decimal.Decimal       `json:"grossIncome"`
	Expenses        []Line                `json:"expenses"`
	TotalExpenses   decimal.Decimal       `json:"totalExpenses"`
	NetIncome       decimal.Decimal       `json:"netIncome"`
}

func deriveIncome(book *ledger.Book, format model.StatementFormat) IncomeStatement {
	is := IncomeStatement{Format: format}
	multi := isMultiStep(format)

	for _, name := range book.Accounts() {
		bal := book.Balance(name, ledger.Adjusted)
		if bal.IsZero() {
			continue
		}
		switch accounts.Classify(name) {
		case model.AccountTypeRevenue:
			is.Revenues = append(is.Revenues, Line{Label: name, Amount: bal.Net().Neg()})
		case model.AccountTypeExpense:
			l := Line{Label: name, Amount: bal.Net()}
			if multi && accounts.IsCostOfSales(name) {
				is.CostOfSales = append(is.CostOfSales, l)
			} else {
				is.Expenses = append(is.Expenses, l)
			}
		}
	}

	is.TotalRevenues = sum(is.Revenues)
	is.CostOfGoodsSold = sum(is.CostOfSales)
	is.TotalExpenses = sum(is.Expenses)
	if multi {
		is.GrossIncome = is.TotalRevenues.Sub(is.CostOfGoodsSold)
	} else {
		is.GrossIncome = decimal.Zero
	}
	is.NetIncome = is.TotalRevenues.Sub(is.CostOfGoodsSold).Sub(is.TotalExpenses)
	return is
}
