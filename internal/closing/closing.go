// Package closing derives the period-end closing entries and decides which
// adjusting entries are reversed at the start of the next period.
package closing

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Kind names one of the four closing blocks.
type Kind string

const (
	CloseRevenue       Kind = "revenue"
	CloseExpense       Kind = "expense"
	CloseIncomeSummary Kind = "incomeSummary"
	CloseDrawings      Kind = "drawings"
)

// Kinds lists the closing blocks in posting order.
var Kinds = []Kind{CloseRevenue, CloseExpense, CloseIncomeSummary, CloseDrawings}

// Entry is one compound closing entry.
type Entry struct {
	Kind    Kind         `json:"kind"`
	Date    model.Date   `json:"date"`
	Debits  []model.Line `json:"debits"`
	Credits []model.Line `json:"credits"`
}

// Lines returns every line of the entry, debits first.
func (e Entry) Lines() []EntryLine {
	out := make([]EntryLine, 0, len(e.Debits)+len(e.Credits))
	for _, l := range e.Debits {
		out = append(out, EntryLine{Account: l.Account, Side: model.Debit, Amount: l.Amount})
	}
	for _, l := range e.Credits {
		out = append(out, EntryLine{Account: l.Account, Side: model.Credit, Amount: l.Amount})
	}
	return out
}

// EntryLine is a flattened entry line.
type EntryLine struct {
	Account string          `json:"account"`
	Side    model.Side      `json:"side"`
	Amount  decimal.Decimal `json:"amount"`
}

// Entries derives the closing entries in REID order: revenues, expenses,
// Income Summary, drawings. Blocks with nothing to close are omitted, so the
// result has between zero and four entries.
func Entries(book *ledger.Book) []Entry {
	date := book.PeriodEnd()
	capital := book.CapitalAccount()

	var (
		revenue = Entry{Kind: CloseRevenue, Date: date}
		expense = Entry{Kind: CloseExpense, Date: date}
		toIS    = decimal.Zero
		fromIS  = decimal.Zero
	)
	for _, name := range book.Accounts() {
		switch accounts.Classify(name) {
		case model.AccountTypeRevenue, model.AccountTypeExpense:
		default:
			continue
		}
		bal := book.Balance(name, ledger.Adjusted)
		if bal.IsZero() {
			continue
		}
		// Credit balances (revenues, contra-purchases) close with a debit.
		if bal.Side() == model.Credit {
			revenue.Debits = append(revenue.Debits, model.Line{Account: name, Amount: bal.Amount()})
			toIS = toIS.Add(bal.Amount())
		} else {
			expense.Credits = append(expense.Credits, model.Line{Account: name, Amount: bal.Amount()})
			fromIS = fromIS.Add(bal.Amount())
		}
	}

	var out []Entry
	if len(revenue.Debits) > 0 {
		revenue.Credits = []model.Line{{Account: ledger.IncomeSummary, Amount: toIS}}
		out = append(out, revenue)
	}
	if len(expense.Credits) > 0 {
		expense.Debits = []model.Line{{Account: ledger.IncomeSummary, Amount: fromIS}}
		out = append(out, expense)
	}

	ni := toIS.Sub(fromIS)
	switch {
	case ni.IsPositive():
		out = append(out, Entry{
			Kind:    CloseIncomeSummary,
			Date:    date,
			Debits:  []model.Line{{Account: ledger.IncomeSummary, Amount: ni}},
			Credits: []model.Line{{Account: capital, Amount: ni}},
		})
	case ni.IsNegative():
		out = append(out, Entry{
			Kind:    CloseIncomeSummary,
			Date:    date,
			Debits:  []model.Line{{Account: capital, Amount: ni.Neg()}},
			Credits: []model.Line{{Account: ledger.IncomeSummary, Amount: ni.Neg()}},
		})
	}

	drawings := Entry{Kind: CloseDrawings, Date: date}
	total := decimal.Zero
	for _, name := range book.Accounts() {
		if !accounts.IsDrawing(name) {
			continue
		}
		bal := book.Balance(name, ledger.Adjusted)
		if !bal.Net().IsPositive() {
			continue
		}
		drawings.Credits = append(drawings.Credits, model.Line{Account: name, Amount: bal.Net()})
		total = total.Add(bal.Net())
	}
	if total.IsPositive() {
		drawings.Debits = []model.Line{{Account: capital, Amount: total}}
		out = append(out, drawings)
	}
	return out
}

// Find returns the entry of the given kind.
func Find(entries []Entry, kind Kind) (Entry, bool) {
	for _, e := range entries {
		if e.Kind == kind {
			return e, true
		}
	}
	return Entry{}, false
}

// Date returns the closing date: the last day of the month of the latest
// transaction, or December 31 of fiscalYear when there are none.
func Date(txns []model.Transaction, fiscalYear int) model.Date {
	return ledger.NewBook(model.ActivityData{Transactions: txns, FiscalYear: fiscalYear}).PeriodEnd()
}
