package steps

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
	"github.com/cleared-dev/ledgerlab/internal/statements"
)

func statementsKey(book *ledger.Book) statements.Statements {
	return statements.Derive(book)
}

// ValidateStatements grades step 7. Line items are matched by label within
// their section; amounts are compared by magnitude since students show
// deductions and losses either in parentheses or as plain numbers.
func ValidateStatements(book *ledger.Book, answers StatementAnswers, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	want := statementsKey(book)
	cfg := book.Config()

	is, ia := want.Income, answers.Income
	scoreItems(tl, "incomeStatement.revenues", is.Revenues, ia.Revenues)
	optionalAmount(tl, "incomeStatement.totalRevenues", ia.TotalRevenues, is.TotalRevenues, true)
	if cfg.FSFormat == model.FormatMultiStep {
		scoreItems(tl, "incomeStatement.costOfSales", is.CostOfSales, ia.CostOfSales)
		optionalAmount(tl, "incomeStatement.costOfGoodsSold", ia.CostOfGoodsSold, is.CostOfGoodsSold, true)
		optionalAmount(tl, "incomeStatement.grossIncome", ia.GrossIncome, is.GrossIncome, true)
	}
	scoreItems(tl, "incomeStatement.expenses", is.Expenses, ia.Expenses)
	optionalAmount(tl, "incomeStatement.totalExpenses", ia.TotalExpenses, is.TotalExpenses, true)
	optionalAmount(tl, "incomeStatement.netIncome", ia.NetIncome, is.NetIncome, true)

	cs, ca := want.Capital, answers.Capital
	if cfg.IsSubsequentYear {
		optionalAmount(tl, "capitalStatement.beginning", ca.Beginning, cs.Beginning, true)
	}
	optionalAmount(tl, "capitalStatement.investments", ca.Investments, cs.Investments, true)
	optionalAmount(tl, "capitalStatement.netIncome", ca.NetIncome, cs.NetIncome, true)
	optionalAmount(tl, "capitalStatement.drawings", ca.Drawings, cs.Drawings, true)
	optionalAmount(tl, "capitalStatement.ending", ca.Ending, cs.Ending, true)

	bs, ba := want.Balance, answers.Balance
	scoreAssets(tl, "balanceSheet.currentAssets", bs.CurrentAssets, ba.CurrentAssets)
	optionalAmount(tl, "balanceSheet.totalCurrentAssets", ba.TotalCurrentAssets, bs.TotalCurrentAssets, true)
	scoreAssets(tl, "balanceSheet.nonCurrentAssets", bs.NonCurrentAssets, ba.NonCurrentAssets)
	optionalAmount(tl, "balanceSheet.totalNonCurrentAssets", ba.TotalNonCurrentAssets, bs.TotalNonCurrentAssets, true)
	optionalAmount(tl, "balanceSheet.totalAssets", ba.TotalAssets, bs.TotalAssets, true)
	scoreItems(tl, "balanceSheet.currentLiabilities", bs.CurrentLiabilities, ba.CurrentLiabilities)
	optionalAmount(tl, "balanceSheet.totalCurrentLiabilities", ba.TotalCurrentLiabilities, bs.TotalCurrentLiabilities, true)
	if len(bs.NonCurrentLiabilities) > 0 {
		scoreItems(tl, "balanceSheet.nonCurrentLiabilities", bs.NonCurrentLiabilities, ba.NonCurrentLiabilities)
		optionalAmount(tl, "balanceSheet.totalNonCurrentLiabilities", ba.TotalNonCurrentLiabilities, bs.TotalNonCurrentLiabilities, true)
	} else {
		spuriousItems(tl, "balanceSheet.nonCurrentLiabilities", ba.NonCurrentLiabilities)
	}
	optionalAmount(tl, "balanceSheet.totalLiabilities", ba.TotalLiabilities, bs.TotalLiabilities, true)
	optionalAmount(tl, "balanceSheet.endingCapital", ba.EndingCapital, bs.EndingCapital, true)
	optionalAmount(tl, "balanceSheet.totalLiabilitiesAndEquity", ba.TotalLiabilitiesAndEquity, bs.TotalLiabilitiesAndEquity, true)

	if cf := want.CashFlows; cf != nil {
		ca := answers.CashFlows
		optionalAmount(tl, "cashFlows.netOperating", ca.NetOperating, cf.NetOperating, false)
		optionalAmount(tl, "cashFlows.netInvesting", ca.NetInvesting, cf.NetInvesting, false)
		optionalAmount(tl, "cashFlows.netFinancing", ca.NetFinancing, cf.NetFinancing, false)
		optionalAmount(tl, "cashFlows.netChange", ca.NetChange, cf.NetChange, false)
		optionalAmount(tl, "cashFlows.beginningCash", ca.Beginning, cf.Beginning, false)
		optionalAmount(tl, "cashFlows.endingCash", ca.Ending, cf.Ending, false)
	}
	return tl.Result(want, nil)
}

func amountAbs(tl *scoring.Tally, k, user string, want decimal.Decimal) bool {
	return tl.Field(k, tl.Policy().CheckAbs(user, want))
}

func scoreItems(tl *scoring.Tally, prefix string, want []statements.Line, got []LineItem) {
	cands := make([]scoring.Candidate, len(got))
	for i, g := range got {
		cands[i] = scoring.Candidate{Label: g.Label, Filled: g.filled()}
	}
	m := scoring.NewMatcher(cands)
	for _, w := range want {
		i, ok := m.MatchExact(w.Label)
		if !ok {
			tl.Missing(key(prefix, "missing", w.Label), 2)
			continue
		}
		tl.Field(key(prefix, i, "label"), true)
		amountAbs(tl, key(prefix, i, "amount"), got[i].Amount, w.Amount)
	}
	for _, i := range m.Spurious() {
		tl.Spurious(key(prefix, i, "label"))
	}
}

func spuriousItems(tl *scoring.Tally, prefix string, got []LineItem) {
	for i, g := range got {
		if g.filled() {
			tl.Spurious(key(prefix, i, "label"))
		}
	}
}

func scoreAssets(tl *scoring.Tally, prefix string, want []statements.AssetLine, got []AssetItem) {
	cands := make([]scoring.Candidate, len(got))
	for i, g := range got {
		cands[i] = scoring.Candidate{Label: g.Label, Filled: g.filled()}
	}
	m := scoring.NewMatcher(cands)
	for _, w := range want {
		fields := 2
		if w.Contra != "" {
			fields = 5
		}
		i, ok := m.Match(w.Label)
		if !ok {
			tl.Missing(key(prefix, "missing", w.Label), fields)
			continue
		}
		g := got[i]
		tl.Field(key(prefix, i, "label"), true)
		amountAbs(tl, key(prefix, i, "amount"), g.Amount, w.Amount)
		if w.Contra == "" {
			continue
		}
		_, contraOK := scoring.LabelsMatcher([]string{g.Contra}).Match(w.Contra)
		tl.Field(key(prefix, i, "contra"), contraOK)
		amountAbs(tl, key(prefix, i, "contraAmount"), g.ContraAmount, w.ContraAmount)
		amountAbs(tl, key(prefix, i, "net"), g.Net, w.Net)
	}
	for _, i := range m.Spurious() {
		tl.Spurious(key(prefix, i, "label"))
	}
}
