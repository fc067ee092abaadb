// Package worksheet derives the ten-column worksheet from a ledger book.
package worksheet

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Columns holds one amount per worksheet column.
type Columns struct {
	TBDr  decimal.Decimal `json:"tbDr"`
	TBCr  decimal.Decimal `json:"tbCr"`
	AdjDr decimal.Decimal `json:"adjDr"`
	AdjCr decimal.Decimal `json:"adjCr"`
	ATBDr decimal.Decimal `json:"atbDr"`
	ATBCr decimal.Decimal `json:"atbCr"`
	ISDr  decimal.Decimal `json:"isDr"`
	ISCr  decimal.Decimal `json:"isCr"`
	BSDr  decimal.Decimal `json:"bsDr"`
	BSCr  decimal.Decimal `json:"bsCr"`
}

// ColumnNames lists the column keys in worksheet order.
var ColumnNames = []string{"tbDr", "tbCr", "adjDr", "adjCr", "atbDr", "atbCr", "isDr", "isCr", "bsDr", "bsCr"}

// Get returns the column named by key, or zero for an unknown key.
func (c Columns) Get(key string) decimal.Decimal {
	switch key {
	case "tbDr":
		return c.TBDr
	case "tbCr":
		return c.TBCr
	case "adjDr":
		return c.AdjDr
	case "adjCr":
		return c.AdjCr
	case "atbDr":
		return c.ATBDr
	case "atbCr":
		return c.ATBCr
	case "isDr":
		return c.ISDr
	case "isCr":
		return c.ISCr
	case "bsDr":
		return c.BSDr
	case "bsCr":
		return c.BSCr
	}
	return decimal.Zero
}

func (c Columns) add(o Columns) Columns {
	return Columns{
		TBDr: c.TBDr.Add(o.TBDr), TBCr: c.TBCr.Add(o.TBCr),
		AdjDr: c.AdjDr.Add(o.AdjDr), AdjCr: c.AdjCr.Add(o.AdjCr),
		ATBDr: c.ATBDr.Add(o.ATBDr), ATBCr: c.ATBCr.Add(o.ATBCr),
		ISDr: c.ISDr.Add(o.ISDr), ISCr: c.ISCr.Add(o.ISCr),
		BSDr: c.BSDr.Add(o.BSDr), BSCr: c.BSCr.Add(o.BSCr),
	}
}

func zeroColumns() Columns {
	z := decimal.Zero
	return Columns{z, z, z, z, z, z, z, z, z, z}
}

// Row is one account line of the worksheet.
type Row struct {
	Account string `json:"account"`
	Columns
}

// Worksheet is the derived ten-column working paper.
type Worksheet struct {
	Rows []Row `json:"rows"`
	// Totals sums each column over the account rows.
	Totals Columns `json:"totals"`
	// NetIncome is the plug row that balances the IS and BS column pairs.
	NetIncome Columns `json:"netIncome"`
	// Final is Totals plus NetIncome.
	Final Columns `json:"final"`
	// Profit is isCr - isDr before the plug; negative for a loss.
	Profit decimal.Decimal `json:"profit"`
}

// Derive builds the worksheet for every account in the book, zero-balance
// accounts included, in canonical order.
func Derive(book *ledger.Book) Worksheet {
	ws := Worksheet{Totals: zeroColumns(), NetIncome: zeroColumns()}
	for _, name := range book.Accounts() {
		row := Row{Account: name, Columns: deriveRow(book, name)}
		ws.Rows = append(ws.Rows, row)
		ws.Totals = ws.Totals.add(row.Columns)
	}

	ws.Profit = ws.Totals.ISCr.Sub(ws.Totals.ISDr)
	if ws.Profit.IsNegative() {
		ws.NetIncome.ISCr = ws.Profit.Neg()
		ws.NetIncome.BSDr = ws.Profit.Neg()
	} else {
		ws.NetIncome.ISDr = ws.Profit
		ws.NetIncome.BSCr = ws.Profit
	}
	ws.Final = ws.Totals.add(ws.NetIncome)
	return ws
}

// Row returns the row for account, matched case-insensitively.
func (w Worksheet) Row(account string) (Row, bool) {
	for _, r := range w.Rows {
		if normalizeName(r.Account) == normalizeName(account) {
			return r, true
		}
	}
	return Row{}, false
}

func deriveRow(book *ledger.Book, name string) Columns {
	c := zeroColumns()
	c.TBDr, c.TBCr = book.Balance(name, ledger.Unadjusted).Split()
	adj := book.AdjustmentTotals(name)
	c.AdjDr, c.AdjCr = orZero(adj.Debit), orZero(adj.Credit)
	c.ATBDr, c.ATBCr = book.Balance(name, ledger.Adjusted).Split()

	switch accounts.Classify(name) {
	case model.AccountTypeRevenue, model.AccountTypeExpense:
		c.ISDr, c.ISCr = c.ATBDr, c.ATBCr
	default:
		c.BSDr, c.BSCr = c.ATBDr, c.ATBCr
	}
	return c
}

func orZero(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return decimal.Zero
	}
	return v
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
