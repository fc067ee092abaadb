package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/closing"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/statements"
	"github.com/cleared-dev/ledgerlab/internal/steps"
	"github.com/cleared-dev/ledgerlab/internal/worksheet"
)

// Key prints the answer key of step as one or more tables. key must be the
// value steps.Key returns for step.
func (r *Renderer) Key(step steps.Step, key any) error {
	if _, err := fmt.Fprintln(r.w, titleStyle.Render(fmt.Sprintf("Step %d: %s", int(step), step.Title()))); err != nil {
		return err
	}
	switch k := key.(type) {
	case []steps.AnalysisKey:
		return r.analysis(k)
	case []steps.JournalKey:
		return r.journal(k)
	case []steps.LedgerKey:
		return r.ledger(k)
	case steps.TrialBalanceKey:
		return r.trialBalance(k)
	case []steps.AdjustingKey:
		return r.adjusting(k)
	case worksheet.Worksheet:
		return r.worksheet(k)
	case statements.Statements:
		return r.statements(k)
	case []closing.Entry:
		return r.closing(k)
	}
	return fmt.Errorf("no renderer for %T", key)
}

// table prints a bordered table. Columns listed in numeric are right-aligned.
func (r *Renderer) table(headers []string, rows [][]string, numeric ...int) error {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(r.w, t.Render())
	return err
}

func (r *Renderer) section(title string) error {
	_, err := fmt.Fprintln(r.w, infoStyle.Render(title))
	return err
}

func (r *Renderer) analysis(keys []steps.AnalysisKey) error {
	var rows [][]string
	for _, k := range keys {
		for i, l := range k.Lines {
			ref := ""
			if i == 0 {
				ref = k.ID
			}
			rows = append(rows, []string{ref, l.Account, string(l.Type), string(l.Side), string(l.Effect), r.Amount(l.Amount)})
		}
	}
	return r.table([]string{"Ref", "Account", "Type", "Side", "Effect", "Amount"}, rows, 5)
}

func (r *Renderer) entryRows(date model.Date, ref string, lines []steps.ExpectedLine) [][]string {
	rows := make([][]string, 0, len(lines))
	for i, l := range lines {
		d, id := "", ""
		if i == 0 {
			d, id = date.String(), ref
		}
		account := l.Account
		if l.Dr.IsZero() {
			account = "    " + account
		}
		rows = append(rows, []string{d, id, account, r.Amount(l.Dr), r.Amount(l.Cr)})
	}
	return rows
}

var entryHeaders = []string{"Date", "Ref", "Account", "Dr", "Cr"}

func (r *Renderer) journal(keys []steps.JournalKey) error {
	var rows [][]string
	for _, k := range keys {
		rows = append(rows, r.entryRows(k.Date, k.ID, k.Lines)...)
	}
	return r.table(entryHeaders, rows, 3, 4)
}

func (r *Renderer) adjusting(keys []steps.AdjustingKey) error {
	if len(keys) == 0 {
		r.Info("no entries")
		return nil
	}
	var rows [][]string
	for _, k := range keys {
		lines := []steps.ExpectedLine{
			{Account: k.DrAcc, Dr: k.Amount, Cr: decimal.Zero},
			{Account: k.CrAcc, Dr: decimal.Zero, Cr: k.Amount},
		}
		rows = append(rows, r.entryRows(k.Date, k.ID, lines)...)
	}
	return r.table(entryHeaders, rows, 3, 4)
}

func (r *Renderer) closing(entries []closing.Entry) error {
	var rows [][]string
	for _, e := range entries {
		var lines []steps.ExpectedLine
		for _, l := range e.Lines() {
			if l.Side == model.Debit {
				lines = append(lines, steps.ExpectedLine{Account: l.Account, Dr: l.Amount, Cr: decimal.Zero})
			} else {
				lines = append(lines, steps.ExpectedLine{Account: l.Account, Dr: decimal.Zero, Cr: l.Amount})
			}
		}
		rows = append(rows, r.entryRows(e.Date, string(e.Kind), lines)...)
	}
	return r.table([]string{"Date", "Closes", "Account", "Dr", "Cr"}, rows, 3, 4)
}

func (r *Renderer) ledger(keys []steps.LedgerKey) error {
	for _, k := range keys {
		if err := r.section(fmt.Sprintf("%s  %s %s", k.Account, k.Balance.Side(), r.Amount(k.Balance.Amount()))); err != nil {
			return err
		}
		rows := make([][]string, 0, len(k.Postings))
		for _, p := range k.Postings {
			rows = append(rows, []string{p.Date.String(), p.Ref, r.Amount(p.Debit), r.Amount(p.Credit), r.Amount(p.Running)})
		}
		if err := r.table([]string{"Date", "Ref", "Dr", "Cr", "Balance"}, rows, 2, 3, 4); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) trialBalance(k steps.TrialBalanceKey) error {
	rows := make([][]string, 0, len(k.Rows)+1)
	for _, row := range k.Rows {
		rows = append(rows, []string{row.Account, r.Amount(row.Dr), r.Amount(row.Cr)})
	}
	rows = append(rows, []string{"Total", r.Amount(k.TotalDr), r.Amount(k.TotalCr)})
	if err := r.section(k.Stage); err != nil {
		return err
	}
	return r.table([]string{"Account", "Dr", "Cr"}, rows, 1, 2)
}

func (r *Renderer) worksheet(ws worksheet.Worksheet) error {
	cols := func(label string, c worksheet.Columns) []string {
		row := []string{label}
		for _, name := range worksheet.ColumnNames {
			row = append(row, r.Amount(c.Get(name)))
		}
		return row
	}
	rows := make([][]string, 0, len(ws.Rows)+3)
	for _, row := range ws.Rows {
		rows = append(rows, cols(row.Account, row.Columns))
	}
	label := "Net Income"
	if ws.Profit.IsNegative() {
		label = "Net Loss"
	}
	rows = append(rows, cols("Totals", ws.Totals), cols(label, ws.NetIncome), cols("", ws.Final))

	headers := append([]string{"Account"}, worksheet.ColumnNames...)
	numeric := make([]int, len(worksheet.ColumnNames))
	for i := range numeric {
		numeric[i] = i + 1
	}
	return r.table(headers, rows, numeric...)
}

func (r *Renderer) lines(rows [][]string, lines []statements.Line) [][]string {
	for _, l := range lines {
		rows = append(rows, []string{"  " + l.Label, r.Amount(l.Amount)})
	}
	return rows
}

func (r *Renderer) statements(st statements.Statements) error {
	is := st.Income
	var rows [][]string
	rows = r.lines(rows, is.Revenues)
	rows = append(rows, []string{"Total Revenues", r.Amount(is.TotalRevenues)})
	if len(is.CostOfSales) > 0 {
		rows = r.lines(rows, is.CostOfSales)
		rows = append(rows,
			[]string{"Cost of Goods Sold", r.Amount(is.CostOfGoodsSold)},
			[]string{"Gross Income", r.Amount(is.GrossIncome)})
	}
	rows = r.lines(rows, is.Expenses)
	rows = append(rows,
		[]string{"Total Expenses", r.Amount(is.TotalExpenses)},
		[]string{"Net Income", r.Amount(is.NetIncome)})
	if err := r.statement("Income Statement", rows); err != nil {
		return err
	}

	c := st.Capital
	rows = [][]string{
		{c.CapitalAccount + ", beginning", r.Amount(c.Beginning)},
		{"Add: Investments", r.Amount(c.Investments)},
		{"Net Income", r.Amount(c.NetIncome)},
		{"Less: Drawings", r.Amount(c.Drawings)},
		{c.CapitalAccount + ", ending", r.Amount(c.Ending)},
	}
	if err := r.statement("Statement of Changes in Capital", rows); err != nil {
		return err
	}

	bs := st.Balance
	rows = nil
	rows = r.assets(rows, bs.CurrentAssets)
	rows = append(rows, []string{"Total Current Assets", r.Amount(bs.TotalCurrentAssets)})
	rows = r.assets(rows, bs.NonCurrentAssets)
	rows = append(rows,
		[]string{"Total Non-current Assets", r.Amount(bs.TotalNonCurrentAssets)},
		[]string{"Total Assets", r.Amount(bs.TotalAssets)})
	rows = r.lines(rows, bs.CurrentLiabilities)
	rows = append(rows, []string{"Total Current Liabilities", r.Amount(bs.TotalCurrentLiabilities)})
	rows = r.lines(rows, bs.NonCurrentLiabilities)
	rows = append(rows,
		[]string{"Total Non-current Liabilities", r.Amount(bs.TotalNonCurrentLiabilities)},
		[]string{"Total Liabilities", r.Amount(bs.TotalLiabilities)},
		[]string{bs.CapitalAccount, r.Amount(bs.EndingCapital)},
		[]string{"Total Liabilities and Equity", r.Amount(bs.TotalLiabilitiesAndEquity)})
	if err := r.statement("Balance Sheet", rows); err != nil {
		return err
	}

	if cf := st.CashFlows; cf != nil {
		rows = nil
		rows = r.lines(rows, cf.Operating)
		rows = append(rows, []string{"Net Cash from Operating Activities", r.Amount(cf.NetOperating)})
		rows = r.lines(rows, cf.Investing)
		rows = append(rows, []string{"Net Cash from Investing Activities", r.Amount(cf.NetInvesting)})
		rows = r.lines(rows, cf.Financing)
		rows = append(rows,
			[]string{"Net Cash from Financing Activities", r.Amount(cf.NetFinancing)},
			[]string{"Net Change in Cash", r.Amount(cf.NetChange)},
			[]string{"Cash, beginning", r.Amount(cf.Beginning)},
			[]string{"Cash, ending", r.Amount(cf.Ending)})
		if err := r.statement("Statement of Cash Flows", rows); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) assets(rows [][]string, lines []statements.AssetLine) [][]string {
	for _, a := range lines {
		if a.Contra == "" {
			rows = append(rows, []string{"  " + a.Label, r.Amount(a.Amount)})
			continue
		}
		rows = append(rows,
			[]string{"  " + a.Label, r.Amount(a.Amount)},
			[]string{"    Less: " + a.Contra, r.Amount(a.ContraAmount)},
			[]string{"  " + a.Label + ", net", r.Amount(a.Net)})
	}
	return rows
}

func (r *Renderer) statement(title string, rows [][]string) error {
	if err := r.section(title); err != nil {
		return err
	}
	return r.table([]string{"", "Amount"}, rows, 1)
}
