package steps

import (
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
	"github.com/cleared-dev/ledgerlab/internal/worksheet"
)

func worksheetKey(book *ledger.Book) worksheet.Worksheet {
	ws := worksheet.Derive(book)
	var rows []worksheet.Row
	for _, r := range ws.Rows {
		if !emptyColumns(r.Columns) {
			rows = append(rows, r)
		}
	}
	ws.Rows = rows
	return ws
}

func emptyColumns(c worksheet.Columns) bool {
	for _, col := range worksheet.ColumnNames {
		if !c.Get(col).IsZero() {
			return false
		}
	}
	return true
}

// ValidateWorksheet grades step 6: all ten cells of every account row with
// any activity, then the totals, net income and final footer rows.
func ValidateWorksheet(book *ledger.Book, answers WorksheetAnswers, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	want := worksheetKey(book)

	cands := make([]scoring.Candidate, len(answers.Rows))
	for i, r := range answers.Rows {
		cands[i] = scoring.Candidate{Label: r.Account, Filled: !blank(r.Account) || r.filled()}
	}
	m := scoring.NewMatcher(cands)

	for _, row := range want.Rows {
		i, ok := m.MatchExact(row.Account)
		if !ok {
			tl.Missing(key("missing", row.Account), len(worksheet.ColumnNames))
			continue
		}
		tl.Mark(key("rows", i, "account"), true)
		for _, col := range worksheet.ColumnNames {
			tl.Amount(key("rows", i, col), answers.Rows[i].Get(col), row.Get(col))
		}
	}
	for _, i := range m.Spurious() {
		r := answers.Rows[i]
		if book.Has(r.Account) && !r.filled() {
			continue
		}
		tl.Spurious(key("rows", i, "account"))
	}

	footers := []struct {
		name string
		got  WorksheetCells
		want worksheet.Columns
	}{
		{"totals", answers.Footers.Totals, want.Totals},
		{"netIncome", answers.Footers.NetIncome, want.NetIncome},
		{"final", answers.Footers.Final, want.Final},
	}
	for _, f := range footers {
		for _, col := range worksheet.ColumnNames {
			optionalAmount(tl, key("footers", f.name, col), f.got.Get(col), f.want.Get(col), false)
		}
	}
	return tl.Result(want, nil)
}
