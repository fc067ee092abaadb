package steps

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// ExpectedLine is one line of an expected journal entry.
type ExpectedLine struct {
	Account string          `json:"account"`
	Dr      decimal.Decimal `json:"dr"`
	Cr      decimal.Decimal `json:"cr"`
}

func linesOf(debits, credits []model.Line) []ExpectedLine {
	out := make([]ExpectedLine, 0, len(debits)+len(credits))
	for _, l := range debits {
		out = append(out, ExpectedLine{Account: l.Account, Dr: l.Amount, Cr: decimal.Zero})
	}
	for _, l := range credits {
		out = append(out, ExpectedLine{Account: l.Account, Dr: decimal.Zero, Cr: l.Amount})
	}
	return out
}

// scoreLines matches expected lines to user lines by account. Each matched
// line scores its account, debit and credit; each missing line counts three
// fields against the maximum; unmatched user lines are spurious.
func scoreLines(tl *scoring.Tally, prefix string, want []ExpectedLine, got []JournalLine) {
	cands := make([]scoring.Candidate, len(got))
	for i, l := range got {
		cands[i] = scoring.Candidate{Label: l.Account, Filled: l.filled()}
	}
	m := scoring.NewMatcher(cands)
	for _, w := range want {
		i, ok := m.MatchExact(w.Account)
		if !ok {
			tl.Missing(key(prefix, "missing", w.Account), 3)
			continue
		}
		tl.Field(key(prefix, "lines", i, "account"), true)
		tl.Amount(key(prefix, "lines", i, "dr"), got[i].Dr, w.Dr)
		tl.Amount(key(prefix, "lines", i, "cr"), got[i].Cr, w.Cr)
	}
	for _, i := range m.Spurious() {
		tl.Spurious(key(prefix, "lines", i, "account"))
	}
}

// scoreDate scores a date field against want.
func scoreDate(tl *scoring.Tally, k, user string, want model.Date) bool {
	return tl.Field(k, scoring.MatchDate(user, want))
}

// optionalAmount scores a summary cell. A cell whose expected value is zero
// earns nothing when left blank, so that an empty submission scores zero; a
// non-zero entry in it is spurious. abs compares magnitudes.
func optionalAmount(tl *scoring.Tally, k, user string, want decimal.Decimal, abs bool) bool {
	p := tl.Policy()
	if p.CheckField("", want) {
		if p.CheckField(user, decimal.Zero) {
			tl.Mark(k, true)
			return true
		}
		tl.Spurious(k)
		return false
	}
	if abs {
		return tl.Field(k, p.CheckAbs(user, want))
	}
	return tl.Field(k, p.CheckField(user, want))
}
