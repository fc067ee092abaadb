package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

func cashOnly() model.ActivityData {
	return model.ActivityData{
		Transactions: []model.Transaction{simple("T1", 1, "Investment", "Cash", "Owner's Capital", "10000")},
	}
}

func TestRowConsumption(t *testing.T) {
	answers := &TrialBalanceAnswers{
		Rows: []TrialBalanceRow{
			{Account: "Cash", DrCrCells: DrCrCells{Dr: "10,000"}},
			{Account: "Cash", DrCrCells: DrCrCells{Dr: "10,000"}},
			{Account: "Owner's Capital", DrCrCells: DrCrCells{Cr: "10,000"}},
		},
		Totals: DrCrCells{Dr: "10000", Cr: "10000"},
	}
	res := validate(t, cashOnly(), answers)

	assert.True(t, res.FieldStatus["rows.0.account"])
	assert.True(t, res.FieldStatus["rows.0.dr"])
	assert.False(t, res.FieldStatus["rows.1.account"], "duplicate row is spurious")
	assert.Equal(t, 8, res.MaxScore)
	assert.Equal(t, 7, res.Score)
	assert.False(t, res.IsCorrect)
}

func TestTrialBalanceZeroRowsAllowed(t *testing.T) {
	data := cashOnly()
	data.ValidAccounts = []string{"Cash", "Supplies", "Owner's Capital"}
	answers := &TrialBalanceAnswers{
		Rows: []TrialBalanceRow{
			{Account: "Cash", DrCrCells: DrCrCells{Dr: "10000"}},
			{Account: "Supplies", DrCrCells: DrCrCells{Dr: "0"}},
			{Account: "Owner's Capital", DrCrCells: DrCrCells{Cr: "10000"}},
		},
		Totals: DrCrCells{Dr: "10000", Cr: "10000"},
	}
	res := validate(t, data, answers)
	assert.True(t, res.IsCorrect)
	assert.True(t, res.FieldStatus["rows.1.account"])
}

func TestPostClosingRejectsTemporaryAccounts(t *testing.T) {
	data := activity()
	answers := perfect(data, StepPostClosing).(*PostClosingAnswers)
	answers.Rows = append(answers.Rows, TrialBalanceRow{Account: "Service Revenue"})

	res := validate(t, data, answers)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, res.MaxScore-1, res.Score)
	assert.False(t, res.FieldStatus[key("rows", len(answers.Rows)-1, "account")])
}

func TestJournalPartialCredit(t *testing.T) {
	data := cashOnly()
	answers := &JournalAnswers{Entries: []JournalEntry{{
		Date: "12/1/2025",
		Lines: []JournalLine{
			{Account: "cash", Dr: "10,000"},
			{Account: "Owner's Capital", Cr: "1,000"},
		},
	}}}
	res := validate(t, data, answers)
	assert.Equal(t, 7, res.MaxScore)
	assert.Equal(t, 6, res.Score)
	assert.Equal(t, scoring.GradeP, res.LetterGrade)
	assert.True(t, res.FieldStatus["entries.0.date"])
	assert.False(t, res.FieldStatus["entries.0.lines.1.cr"])
}

func TestJournalMissingLineAndExtraEntry(t *testing.T) {
	answers := &JournalAnswers{Entries: []JournalEntry{
		{Date: "1", Lines: []JournalLine{{Account: "Cash", Dr: "10000"}}},
		{Date: "2", Lines: []JournalLine{{Account: "Rent Expense", Dr: "5"}}},
	}}
	res := validate(t, cashOnly(), answers)
	assert.False(t, res.FieldStatus["entries.0.missing.Owner's Capital"])
	assert.False(t, res.FieldStatus["entries.1"])
	assert.Equal(t, 7, res.MaxScore)
	assert.Equal(t, 3, res.Score)
}

func TestAnalysisEffects(t *testing.T) {
	data := model.ActivityData{
		Transactions: []model.Transaction{simple("T1", 6, "Paid rent", "Rent Expense", "Cash", "500")},
	}
	answers := &AnalysisAnswers{Transactions: []AnalysisEntry{{Lines: []AnalysisLine{
		{Account: "Cash", Type: "Asset", Effect: "decrease", Amount: "500"},
		{Account: "Rent Expense", Type: "Expense", Effect: "+", Amount: "500"},
	}}}}
	res := validate(t, data, answers)
	assert.True(t, res.IsCorrect, "failing: %v", failing(res))

	answers.Transactions[0].Lines[0].Effect = "Increase"
	res = validate(t, data, answers)
	assert.False(t, res.FieldStatus["transactions.0.lines.0.effect"])
	assert.Equal(t, 7, res.Score)
}

func TestAdjustingAnyOrderAndPartial(t *testing.T) {
	data := activity()
	answers := &AdjustingAnswers{Entries: []AdjustingEntry{
		{Date: "Dec 31", DrAcc: "Interest Expense", CrAcc: "Interest Payable", Amount: "200"},
		{Date: "Dec 31", DrAcc: "Salaries Expense", CrAcc: "Cash", Amount: "3000"},
		{Date: "Dec 31", DrAcc: "Depreciation Expense", CrAcc: "Accumulated Depreciation - Equipment", Amount: "1000"},
		{Date: "Dec 31", DrAcc: "Supplies Expense", CrAcc: "Supplies", Amount: "800"},
	}}
	res := validate(t, data, answers)
	assert.Equal(t, 16, res.MaxScore)
	assert.Equal(t, 15, res.Score)
	assert.True(t, res.FieldStatus["entries.1.drAcc"])
	assert.False(t, res.FieldStatus["entries.1.crAcc"])
	assert.True(t, res.FieldStatus["entries.0.amount"])
}

func TestAdjustingSpurious(t *testing.T) {
	data := activity()
	answers := perfect(data, StepAdjusting).(*AdjustingAnswers)
	answers.Entries = append(answers.Entries, AdjustingEntry{DrAcc: "Rent Expense", CrAcc: "Cash", Amount: "1"})
	res := validate(t, data, answers)
	assert.Equal(t, res.MaxScore-1, res.Score)
	assert.False(t, res.FieldStatus["entries.4"])
}

func TestReversalScenario(t *testing.T) {
	data := cashOnly()
	data.Config.DeferredExpenseMethod = model.DeferredExpenseExpense
	data.Adjustments = []model.Adjustment{{ID: "A1", DrAcc: "Supplies", CrAcc: "Supplies Expense", Amount: d("500")}}

	k, err := Key(data, StepReversing)
	require.NoError(t, err)
	keys := k.([]AdjustingKey)
	require.Len(t, keys, 1)
	assert.Equal(t, "Supplies Expense", keys[0].DrAcc)
	assert.Equal(t, "Supplies", keys[0].CrAcc)
	assert.Equal(t, "2026-01-01", keys[0].Date.String())

	answers := &ReversingAnswers{Entries: []AdjustingEntry{{Date: "Jan 1", DrAcc: "Supplies Expense", CrAcc: "Supplies", Amount: "500"}}}
	assert.True(t, validate(t, data, answers).IsCorrect)
}

func TestReversingNoneExpected(t *testing.T) {
	data := cashOnly()
	data.Adjustments = []model.Adjustment{{DrAcc: "Depreciation Expense", CrAcc: "Accumulated Depreciation - Equipment", Amount: d("100")}}

	// Leaving the form empty is the right answer here, so it earns full marks.
	for _, empty := range []*ReversingAnswers{{}, {Entries: []AdjustingEntry{{}}}} {
		res := validate(t, data, empty)
		assert.True(t, res.IsCorrect)
		assert.Equal(t, 1, res.Score)
		assert.Equal(t, 1, res.MaxScore)
		assert.Equal(t, scoring.GradeA, res.LetterGrade)
		assert.True(t, res.FieldStatus["entries.none"])
	}

	res := validate(t, data, &ReversingAnswers{Entries: []AdjustingEntry{{DrAcc: "Accumulated Depreciation - Equipment"}}})
	assert.False(t, res.IsCorrect)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, scoring.GradeIR, res.LetterGrade)
}

func TestClosingOrderMatters(t *testing.T) {
	data := activity()
	answers := perfect(data, StepClosing).(*ClosingAnswers)
	answers.Entries[0], answers.Entries[1] = answers.Entries[1], answers.Entries[0]
	res := validate(t, data, answers)
	assert.False(t, res.IsCorrect)
	assert.Less(t, res.Score, res.MaxScore/2+3)
}

func TestLedgerFeedback(t *testing.T) {
	data := cashOnly()
	answers := &LedgerAnswers{Accounts: []TAccount{
		{Account: "Owner's Capital", Rows: []TAccountRow{{Date: "1", Cr: "10000"}}, Balance: "10000"},
		{Account: "Cash", Rows: []TAccountRow{{Date: "2", Dr: "10000"}, {Date: "3", Dr: "1"}}, Balance: "10,000"},
	}}
	res := validate(t, data, answers)
	fb, ok := res.RowFeedback.([]TAccountFeedback)
	require.True(t, ok)
	require.Len(t, fb, 2)
	assert.True(t, fb[0].Account)
	assert.True(t, fb[0].Rows[0]["cr"])
	assert.True(t, fb[1].Balance)
	assert.False(t, fb[1].Rows[0]["date"])
	assert.True(t, fb[1].Rows[0]["dr"])
	assert.False(t, fb[1].Rows[1]["dr"], "extra posting flagged")
	assert.Equal(t, 8, res.MaxScore)
	assert.Equal(t, 6, res.Score)
}

func TestWorksheetFootersOnly(t *testing.T) {
	data := activity()
	full := perfect(data, StepWorksheet).(*WorksheetAnswers)
	answers := &WorksheetAnswers{Footers: full.Footers}
	res := validate(t, data, answers)
	assert.Positive(t, res.Score)
	assert.Less(t, res.Score, res.MaxScore)
	assert.True(t, res.FieldStatus["footers.final.bsCr"])
	assert.False(t, res.FieldStatus["missing.Cash"])
}

func TestWorksheetStrayNetIncomeCell(t *testing.T) {
	data := activity()
	answers := perfect(data, StepWorksheet).(*WorksheetAnswers)
	answers.Footers.NetIncome.ISCr = "33000"
	res := validate(t, data, answers)
	assert.False(t, res.FieldStatus["footers.netIncome.isCr"])
	assert.Equal(t, res.MaxScore-1, res.Score)
}

func TestStatementsContraKeyword(t *testing.T) {
	data := activity()
	answers := perfect(data, StepStatements).(*StatementAnswers)
	nca := answers.Balance.NonCurrentAssets
	require.Len(t, nca, 1)
	nca[0].Label = "Office Equipment"
	nca[0].Contra = "Less: Accum. Depreciation - Equipment"
	nca[0].ContraAmount = "(1,000)"
	res := validate(t, data, answers)
	assert.True(t, res.IsCorrect, "failing: %v", failing(res))
}

func TestStatementsMissingItem(t *testing.T) {
	data := activity()
	answers := perfect(data, StepStatements).(*StatementAnswers)
	answers.Income.Expenses = answers.Income.Expenses[1:]
	res := validate(t, data, answers)
	assert.Equal(t, res.MaxScore-2, res.Score)
	assert.False(t, res.FieldStatus["incomeStatement.expenses.missing.Salaries Expense"])
}

func TestStatementsMultiStep(t *testing.T) {
	data := model.ActivityData{
		Transactions: []model.Transaction{
			simple("T1", 1, "Investment", "Cash", "Owner's Capital", "60000"),
			simple("T2", 4, "Cash sales", "Cash", "Sales", "40000"),
			simple("T3", 8, "Cost of sales", "Cost of Goods Sold", "Merchandise Inventory", "15000"),
			simple("T4", 9, "Inventory purchase", "Merchandise Inventory", "Cash", "25000"),
		},
		Config: model.ActivityConfig{BusinessType: model.BusinessMerchandising, FSFormat: model.FormatMultiStep},
	}
	answers := perfect(data, StepStatements).(*StatementAnswers)
	assert.Equal(t, "25000.00", answers.Income.GrossIncome)
	assert.True(t, validate(t, data, answers).IsCorrect)

	answers.Income.GrossIncome = ""
	res := validate(t, data, answers)
	assert.False(t, res.FieldStatus["incomeStatement.grossIncome"])
}

func TestAccountColumnsRequireExactNames(t *testing.T) {
	tests := []struct {
		name   string
		step   Step
		rename func(a StepAnswers)
	}{
		{"analysis", StepAnalysis, func(a StepAnswers) {
			a.(*AnalysisAnswers).Transactions[2].Lines[0].Account = "Supplies Expense"
		}},
		{"journal", StepJournal, func(a StepAnswers) {
			a.(*JournalAnswers).Entries[2].Lines[0].Account = "Supplies Expense"
		}},
		{"ledger", StepLedger, func(a StepAnswers) {
			for i := range a.(*LedgerAnswers).Accounts {
				if acct := &a.(*LedgerAnswers).Accounts[i]; acct.Account == "Cash" {
					acct.Account = "Petty Cash"
				}
			}
		}},
		{"trial balance", StepTrialBalance, func(a StepAnswers) {
			for i := range a.(*TrialBalanceAnswers).Rows {
				if row := &a.(*TrialBalanceAnswers).Rows[i]; row.Account == "Cash" {
					row.Account = "Petty Cash"
				}
			}
		}},
		{"worksheet", StepWorksheet, func(a StepAnswers) {
			for i := range a.(*WorksheetAnswers).Rows {
				if row := &a.(*WorksheetAnswers).Rows[i]; row.Account == "Supplies" {
					row.Account = "Supplies Expense"
				}
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := activity()
			answers := perfect(data, tt.step)
			tt.rename(answers)
			res := validate(t, data, answers)
			assert.False(t, res.IsCorrect)
			assert.Less(t, res.Score, res.MaxScore)
		})
	}
}
