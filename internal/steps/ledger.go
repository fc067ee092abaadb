package steps

import (
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// LedgerKey is one expected T-account.
type LedgerKey struct {
	Account  string           `json:"account"`
	Postings []ledger.Posting `json:"postings"`
	Balance  ledger.Balance   `json:"balance"`
}

// TAccountFeedback mirrors a submitted T-account with per-cell results.
type TAccountFeedback struct {
	Account bool              `json:"account"`
	Rows    []map[string]bool `json:"rows"`
	Balance bool              `json:"balance"`
}

func ledgerKey(book *ledger.Book) []LedgerKey {
	var out []LedgerKey
	for _, name := range book.PostedAccounts() {
		out = append(out, LedgerKey{
			Account:  name,
			Postings: book.Postings(name),
			Balance:  book.Balance(name, ledger.Unadjusted),
		})
	}
	return out
}

// ValidateLedger grades step 3. T-accounts are matched by name; postings
// within an account are compared in order (date, debit, credit) and the
// ending balance is compared by magnitude.
func ValidateLedger(book *ledger.Book, answers LedgerAnswers, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	want := ledgerKey(book)

	feedback := make([]TAccountFeedback, len(answers.Accounts))
	cands := make([]scoring.Candidate, len(answers.Accounts))
	for i, a := range answers.Accounts {
		cands[i] = scoring.Candidate{Label: a.Account, Filled: a.filled()}
		feedback[i].Rows = make([]map[string]bool, len(a.Rows))
	}
	m := scoring.NewMatcher(cands)

	for _, k := range want {
		i, ok := m.MatchExact(k.Account)
		if !ok {
			tl.Missing(key("missing", k.Account), 3*len(k.Postings)+1)
			continue
		}
		got := answers.Accounts[i]
		fb := &feedback[i]
		fb.Account = true
		tl.Mark(key("accounts", i, "account"), true)

		for j, p := range k.Postings {
			var row TAccountRow
			if j < len(got.Rows) {
				row = got.Rows[j]
			}
			rk := key("accounts", i, "rows", j)
			cells := map[string]bool{
				"date": scoreDate(tl, key(rk, "date"), row.Date, p.Date),
				"dr":   tl.Amount(key(rk, "dr"), row.Dr, p.Debit),
				"cr":   tl.Amount(key(rk, "cr"), row.Cr, p.Credit),
			}
			if j < len(fb.Rows) {
				fb.Rows[j] = cells
			}
		}
		for j := len(k.Postings); j < len(got.Rows); j++ {
			if got.Rows[j].filled() {
				tl.Spurious(key("accounts", i, "rows", j))
				fb.Rows[j] = map[string]bool{"date": false, "dr": false, "cr": false}
			}
		}
		fb.Balance = tl.Field(key("accounts", i, "balance"), tl.Policy().CheckAbs(got.Balance, k.Balance.Amount()))
	}

	for _, i := range m.Spurious() {
		tl.Spurious(key("accounts", i, "account"))
	}
	return tl.Result(want, feedback)
}
