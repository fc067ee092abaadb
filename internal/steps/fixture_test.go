package steps

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/statements"
	"github.com/cleared-dev/ledgerlab/internal/worksheet"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(account, amount string) model.Line {
	return model.Line{Account: account, Amount: d(amount)}
}

func txn(id string, day int, desc string, debits, credits []model.Line) model.Transaction {
	return model.Transaction{ID: id, Date: model.NewDate(2025, time.December, day), Description: desc, Debits: debits, Credits: credits}
}

func simple(id string, day int, desc, dr, cr, amount string) model.Transaction {
	return txn(id, day, desc, []model.Line{line(dr, amount)}, []model.Line{line(cr, amount)})
}

func activity() model.ActivityData {
	return model.ActivityData{
		Transactions: []model.Transaction{
			simple("T1", 1, "Owner investment", "Cash", "Owner's Capital", "50000"),
			txn("T2", 2, "Bought equipment", []model.Line{line("Equipment", "20000")}, []model.Line{line("Cash", "5000"), line("Notes Payable", "15000")}),
			simple("T3", 5, "Supplies on account", "Supplies", "Accounts Payable", "2000"),
			simple("T4", 10, "Services for cash", "Cash", "Service Revenue", "30000"),
			simple("T5", 15, "Services on account", "Accounts Receivable", "Service Revenue", "20000"),
			simple("T6", 20, "Paid salaries", "Salaries Expense", "Cash", "12000"),
			simple("T7", 28, "Owner withdrawal", "Owner's Drawing", "Cash", "4000"),
		},
		Adjustments: []model.Adjustment{
			{ID: "A1", Desc: "Supplies used", DrAcc: "Supplies Expense", CrAcc: "Supplies", Amount: d("800")},
			{ID: "A2", Desc: "Depreciation", DrAcc: "Depreciation Expense", CrAcc: "Accumulated Depreciation - Equipment", Amount: d("1000")},
			{ID: "A3", Desc: "Accrued salaries", DrAcc: "Salaries Expense", CrAcc: "Salaries Payable", Amount: d("3000")},
			{ID: "A4", Desc: "Accrued interest", DrAcc: "Interest Expense", CrAcc: "Interest Payable", Amount: d("200")},
		},
		ValidAccounts: []string{"Cash", "Accounts Receivable", "Supplies", "Prepaid Insurance", "Equipment"},
		Config:        model.ActivityConfig{IncludeCashFlows: true},
		FiscalYear:    2025,
	}
}

func amt(v decimal.Decimal) string {
	if v.IsZero() {
		return ""
	}
	return v.StringFixed(2)
}

// perfect builds a submission that reproduces the answer key exactly.
func perfect(data model.ActivityData, step Step) StepAnswers {
	book := ledger.NewBook(data)
	switch step {
	case StepAnalysis:
		var a AnalysisAnswers
		for _, k := range analysisKey(book) {
			e := AnalysisEntry{ID: k.ID}
			for _, l := range k.Lines {
				e.Lines = append(e.Lines, AnalysisLine{Account: l.Account, Type: string(l.Type), Effect: string(l.Effect), Amount: amt(l.Amount)})
			}
			a.Transactions = append(a.Transactions, e)
		}
		return &a
	case StepJournal:
		var a JournalAnswers
		for _, k := range journalKey(book) {
			a.Entries = append(a.Entries, JournalEntry{Date: k.Date.String(), Lines: journalLines(k.Lines)})
		}
		return &a
	case StepLedger:
		var a LedgerAnswers
		for _, k := range ledgerKey(book) {
			t := TAccount{Account: k.Account, Balance: amt(k.Balance.Amount())}
			for _, p := range k.Postings {
				t.Rows = append(t.Rows, TAccountRow{Date: p.Date.String(), Dr: amt(p.Debit), Cr: amt(p.Credit)})
			}
			a.Accounts = append(a.Accounts, t)
		}
		return &a
	case StepTrialBalance:
		a := tbAnswers(trialBalanceKey(book, ledger.Unadjusted))
		return &a
	case StepPostClosing:
		return &PostClosingAnswers{tbAnswers(trialBalanceKey(book, ledger.PostClosing))}
	case StepAdjusting:
		return &AdjustingAnswers{Entries: adjustingAnswers(adjustingKey(book))}
	case StepReversing:
		return &ReversingAnswers{Entries: adjustingAnswers(reversingKey(book))}
	case StepWorksheet:
		ws := worksheetKey(book)
		a := WorksheetAnswers{Footers: WorksheetFooters{
			Totals:    cells(ws.Totals),
			NetIncome: cells(ws.NetIncome),
			Final:     cells(ws.Final),
		}}
		for _, r := range ws.Rows {
			a.Rows = append(a.Rows, WorksheetRow{Account: r.Account, WorksheetCells: cells(r.Columns)})
		}
		return &a
	case StepStatements:
		return statementAnswers(statementsKey(book))
	case StepClosing:
		var a ClosingAnswers
		for _, e := range closingKey(book) {
			a.Entries = append(a.Entries, JournalEntry{Date: e.Date.String(), Lines: journalLines(linesOf(e.Debits, e.Credits))})
		}
		return &a
	}
	return nil
}

func journalLines(lines []ExpectedLine) []JournalLine {
	var out []JournalLine
	for _, l := range lines {
		out = append(out, JournalLine{Account: l.Account, Dr: amt(l.Dr), Cr: amt(l.Cr)})
	}
	return out
}

func tbAnswers(k TrialBalanceKey) TrialBalanceAnswers {
	a := TrialBalanceAnswers{Totals: DrCrCells{Dr: amt(k.TotalDr), Cr: amt(k.TotalCr)}}
	for _, r := range k.Rows {
		a.Rows = append(a.Rows, TrialBalanceRow{Account: r.Account, DrCrCells: DrCrCells{Dr: amt(r.Dr), Cr: amt(r.Cr)}})
	}
	return a
}

func adjustingAnswers(keys []AdjustingKey) []AdjustingEntry {
	var out []AdjustingEntry
	for _, k := range keys {
		out = append(out, AdjustingEntry{Date: k.Date.String(), DrAcc: k.DrAcc, CrAcc: k.CrAcc, Amount: amt(k.Amount)})
	}
	return out
}

func cells(c worksheet.Columns) WorksheetCells {
	return WorksheetCells{
		TBDr: amt(c.TBDr), TBCr: amt(c.TBCr),
		AdjDr: amt(c.AdjDr), AdjCr: amt(c.AdjCr),
		ATBDr: amt(c.ATBDr), ATBCr: amt(c.ATBCr),
		ISDr: amt(c.ISDr), ISCr: amt(c.ISCr),
		BSDr: amt(c.BSDr), BSCr: amt(c.BSCr),
	}
}

func items(lines []statements.Line) []LineItem {
	var out []LineItem
	for _, l := range lines {
		out = append(out, LineItem{Label: l.Label, Amount: amt(l.Amount)})
	}
	return out
}

func statementAnswers(st statements.Statements) *StatementAnswers {
	a := &StatementAnswers{
		Income: IncomeAnswers{
			Revenues:        items(st.Income.Revenues),
			TotalRevenues:   amt(st.Income.TotalRevenues),
			CostOfSales:     items(st.Income.CostOfSales),
			CostOfGoodsSold: amt(st.Income.CostOfGoodsSold),
			GrossIncome:     amt(st.Income.GrossIncome),
			Expenses:        items(st.Income.Expenses),
			TotalExpenses:   amt(st.Income.TotalExpenses),
			NetIncome:       amt(st.Income.NetIncome),
		},
		Capital: CapitalAnswers{
			Beginning:   amt(st.Capital.Beginning),
			Investments: amt(st.Capital.Investments),
			NetIncome:   amt(st.Capital.NetIncome),
			Drawings:    amt(st.Capital.Drawings),
			Ending:      amt(st.Capital.Ending),
		},
		Balance: BalanceAnswers{
			TotalCurrentAssets:         amt(st.Balance.TotalCurrentAssets),
			TotalNonCurrentAssets:      amt(st.Balance.TotalNonCurrentAssets),
			TotalAssets:                amt(st.Balance.TotalAssets),
			CurrentLiabilities:         items(st.Balance.CurrentLiabilities),
			TotalCurrentLiabilities:    amt(st.Balance.TotalCurrentLiabilities),
			NonCurrentLiabilities:      items(st.Balance.NonCurrentLiabilities),
			TotalNonCurrentLiabilities: amt(st.Balance.TotalNonCurrentLiabilities),
			TotalLiabilities:           amt(st.Balance.TotalLiabilities),
			EndingCapital:              amt(st.Balance.EndingCapital),
			TotalLiabilitiesAndEquity:  amt(st.Balance.TotalLiabilitiesAndEquity),
		},
	}
	for _, l := range st.Balance.CurrentAssets {
		a.Balance.CurrentAssets = append(a.Balance.CurrentAssets, assetItem(l))
	}
	for _, l := range st.Balance.NonCurrentAssets {
		a.Balance.NonCurrentAssets = append(a.Balance.NonCurrentAssets, assetItem(l))
	}
	if cf := st.CashFlows; cf != nil {
		a.CashFlows = CashFlowAnswers{
			NetOperating: amt(cf.NetOperating),
			NetInvesting: amt(cf.NetInvesting),
			NetFinancing: amt(cf.NetFinancing),
			NetChange:    amt(cf.NetChange),
			Beginning:    amt(cf.Beginning),
			Ending:       amt(cf.Ending),
		}
	}
	return a
}

func assetItem(l statements.AssetLine) AssetItem {
	return AssetItem{Label: l.Label, Amount: amt(l.Amount), Contra: l.Contra, ContraAmount: amt(l.ContraAmount), Net: amt(l.Net)}
}
