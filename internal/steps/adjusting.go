package steps

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/closing"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// AdjustingKey is one expected single-debit, single-credit entry.
type AdjustingKey struct {
	ID     string          `json:"id"`
	Date   model.Date      `json:"date"`
	DrAcc  string          `json:"drAcc"`
	CrAcc  string          `json:"crAcc"`
	Amount decimal.Decimal `json:"amount"`
	Desc   string          `json:"desc"`
}

func adjustingKey(book *ledger.Book) []AdjustingKey {
	date := book.PeriodEnd()
	var out []AdjustingKey
	for _, adj := range book.Adjustments() {
		out = append(out, AdjustingKey{ID: adj.ID, Date: date, DrAcc: adj.DrAcc, CrAcc: adj.CrAcc, Amount: adj.Amount, Desc: adj.Desc})
	}
	return out
}

func reversingKey(book *ledger.Book) []AdjustingKey {
	var out []AdjustingKey
	for _, r := range closing.ReversingEntries(book.Adjustments(), book.Config(), book.PeriodEnd()) {
		out = append(out, AdjustingKey{
			ID:     r.Entry.ID,
			Date:   r.Date,
			DrAcc:  r.Entry.DrAcc,
			CrAcc:  r.Entry.CrAcc,
			Amount: r.Entry.Amount,
			Desc:   r.Entry.Desc,
		})
	}
	return out
}

// ValidateAdjusting grades step 5. Entries may be in any order.
func ValidateAdjusting(book *ledger.Book, answers AdjustingAnswers, policy scoring.Policy) scoring.ValidationResult {
	want := adjustingKey(book)
	return scoreEntries(want, answers.Entries, policy)
}

// ValidateReversing grades step 10. When no adjustment needs reversing the
// only field is whether the student correctly left the page empty.
func ValidateReversing(book *ledger.Book, answers ReversingAnswers, policy scoring.Policy) scoring.ValidationResult {
	want := reversingKey(book)
	if len(want) == 0 {
		tl := scoring.NewTally(policy)
		none := true
		for _, e := range answers.Entries {
			if e.filled() {
				none = false
			}
		}
		tl.Field("entries.none", none)
		return tl.Result(want, nil)
	}
	return scoreEntries(want, answers.Entries, policy)
}

// scoreEntries pairs expected entries with submitted ones, preferring an
// exact account pair with the right amount, then the account pair, then
// the debit account alone, then the credit account alone. Each pair scores
// debit account, credit account, amount and date.
func scoreEntries(want []AdjustingKey, got []AdjustingEntry, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	used := make([]bool, len(got))
	pairs := make([]int, len(want))
	for k := range pairs {
		pairs[k] = -1
	}

	passes := []func(w AdjustingKey, g AdjustingEntry) bool{
		func(w AdjustingKey, g AdjustingEntry) bool {
			return scoring.SameLabel(g.DrAcc, w.DrAcc) && scoring.SameLabel(g.CrAcc, w.CrAcc) && tl.Policy().CheckField(g.Amount, w.Amount)
		},
		func(w AdjustingKey, g AdjustingEntry) bool {
			return scoring.SameLabel(g.DrAcc, w.DrAcc) && scoring.SameLabel(g.CrAcc, w.CrAcc)
		},
		func(w AdjustingKey, g AdjustingEntry) bool {
			return scoring.SameLabel(g.DrAcc, w.DrAcc)
		},
		func(w AdjustingKey, g AdjustingEntry) bool {
			return scoring.SameLabel(g.CrAcc, w.CrAcc)
		},
	}
	for _, pass := range passes {
		for k, w := range want {
			if pairs[k] >= 0 {
				continue
			}
			for i, g := range got {
				if used[i] || !g.filled() || !pass(w, g) {
					continue
				}
				used[i] = true
				pairs[k] = i
				break
			}
		}
	}

	for k, w := range want {
		i := pairs[k]
		if i < 0 {
			tl.Missing(key("missing", k), 4)
			continue
		}
		g := got[i]
		tl.Field(key("entries", i, "drAcc"), scoring.SameLabel(g.DrAcc, w.DrAcc))
		tl.Field(key("entries", i, "crAcc"), scoring.SameLabel(g.CrAcc, w.CrAcc))
		tl.Amount(key("entries", i, "amount"), g.Amount, w.Amount)
		scoreDate(tl, key("entries", i, "date"), g.Date, w.Date)
	}
	for i, g := range got {
		if !used[i] && g.filled() {
			tl.Spurious(key("entries", i))
		}
	}
	return tl.Result(want, nil)
}
