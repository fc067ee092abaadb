package steps

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// TrialBalanceKey is an expected trial balance.
type TrialBalanceKey struct {
	Stage   string               `json:"stage"`
	Rows    []TrialBalanceRowKey `json:"rows"`
	TotalDr decimal.Decimal      `json:"totalDr"`
	TotalCr decimal.Decimal      `json:"totalCr"`
}

// TrialBalanceRowKey is one expected trial balance line.
type TrialBalanceRowKey struct {
	Account string          `json:"account"`
	Dr      decimal.Decimal `json:"dr"`
	Cr      decimal.Decimal `json:"cr"`
}

// trialBalanceKey lists every account with a non-zero balance at stage.
func trialBalanceKey(book *ledger.Book, stage ledger.Stage) TrialBalanceKey {
	k := TrialBalanceKey{Stage: stage.String(), TotalDr: decimal.Zero, TotalCr: decimal.Zero}
	for _, ab := range book.Balances(stage) {
		if ab.Balance.IsZero() {
			continue
		}
		dr, cr := ab.Balance.Split()
		k.Rows = append(k.Rows, TrialBalanceRowKey{Account: ab.Account, Dr: dr, Cr: cr})
		k.TotalDr = k.TotalDr.Add(dr)
		k.TotalCr = k.TotalCr.Add(cr)
	}
	return k
}

// ValidateTrialBalance grades step 4, the unadjusted trial balance.
func ValidateTrialBalance(book *ledger.Book, answers TrialBalanceAnswers, policy scoring.Policy) scoring.ValidationResult {
	return validateTrialBalance(book, ledger.Unadjusted, answers, policy)
}

// ValidatePostClosing grades step 9. Only permanent accounts belong on the
// post-closing trial balance; any temporary account listed is spurious.
func ValidatePostClosing(book *ledger.Book, answers PostClosingAnswers, policy scoring.Policy) scoring.ValidationResult {
	return validateTrialBalance(book, ledger.PostClosing, answers.TrialBalanceAnswers, policy)
}

func validateTrialBalance(book *ledger.Book, stage ledger.Stage, answers TrialBalanceAnswers, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	want := trialBalanceKey(book, stage)

	cands := make([]scoring.Candidate, len(answers.Rows))
	for i, r := range answers.Rows {
		cands[i] = scoring.Candidate{Label: r.Account, Filled: r.filled()}
	}
	m := scoring.NewMatcher(cands)

	for _, k := range want.Rows {
		i, ok := m.MatchExact(k.Account)
		if !ok {
			tl.Missing(key("missing", k.Account), 3)
			continue
		}
		tl.Field(key("rows", i, "account"), true)
		tl.Amount(key("rows", i, "dr"), answers.Rows[i].Dr, k.Dr)
		tl.Amount(key("rows", i, "cr"), answers.Rows[i].Cr, k.Cr)
	}

	for _, i := range m.Spurious() {
		if zeroBalanceRow(book, stage, answers.Rows[i], tl.Policy()) {
			tl.Mark(key("rows", i, "account"), true)
			continue
		}
		tl.Spurious(key("rows", i, "account"))
	}

	tl.Amount("totals.dr", answers.Totals.Dr, want.TotalDr)
	tl.Amount("totals.cr", answers.Totals.Cr, want.TotalCr)
	return tl.Result(want, nil)
}

// zeroBalanceRow reports whether an unmatched row lists a known account
// whose balance is zero with zero amounts. Such rows are harmless, except
// temporary accounts on a post-closing trial balance.
func zeroBalanceRow(book *ledger.Book, stage ledger.Stage, row TrialBalanceRow, p scoring.Policy) bool {
	if !book.Has(row.Account) {
		return false
	}
	if stage == ledger.PostClosing && accounts.IsNominal(row.Account) {
		return false
	}
	if !book.Balance(row.Account, stage).IsZero() {
		return false
	}
	return p.CheckField(row.Dr, decimal.Zero) && p.CheckField(row.Cr, decimal.Zero)
}
