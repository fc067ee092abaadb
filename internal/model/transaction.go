package model

import (
	"github.com/shopspring/decimal"
)

// Line is one debit or credit of a transaction.
type Line struct {
	Account string          `json:"account" yaml:"account" validate:"required"`
	Amount  decimal.Decimal `json:"amount" yaml:"amount"`
}

// Transaction is a balanced business event recorded during the period.
type Transaction struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Date        Date   `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	Debits      []Line `json:"debits" yaml:"debits" validate:"required,min=1,dive"`
	Credits     []Line `json:"credits" yaml:"credits" validate:"required,min=1,dive"`
}

// TotalDebits sums the debit lines.
func (t Transaction) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Debits {
		total = total.Add(l.Amount)
	}
	return total
}

// TotalCredits sums the credit lines.
func (t Transaction) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Credits {
		total = total.Add(l.Amount)
	}
	return total
}

// Adjustment is a single-debit, single-credit adjusting entry recorded at
// period end.
type Adjustment struct {
	ID     string          `json:"id" yaml:"id"`
	Desc   string          `json:"desc" yaml:"desc"`
	DrAcc  string          `json:"drAcc" yaml:"drAcc" validate:"required"`
	CrAcc  string          `json:"crAcc" yaml:"crAcc" validate:"required"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}
