package steps

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// Effect is the direction a posting moves an account.
type Effect string

const (
	Increase Effect = "Increase"
	Decrease Effect = "Decrease"
)

// AnalysisKey is the expected analysis of one transaction.
type AnalysisKey struct {
	ID    string            `json:"id"`
	Lines []AnalysisKeyLine `json:"lines"`
}

// AnalysisKeyLine is the expected analysis of one account.
type AnalysisKeyLine struct {
	Account string            `json:"account"`
	Type    model.AccountType `json:"type"`
	Side    model.Side        `json:"side"`
	Effect  Effect            `json:"effect"`
	Amount  decimal.Decimal   `json:"amount"`
}

func analysisKey(book *ledger.Book) []AnalysisKey {
	var out []AnalysisKey
	for _, txn := range book.Transactions() {
		k := AnalysisKey{ID: txn.ID}
		for _, l := range txn.Debits {
			k.Lines = append(k.Lines, analyzeLine(l, model.Debit))
		}
		for _, l := range txn.Credits {
			k.Lines = append(k.Lines, analyzeLine(l, model.Credit))
		}
		out = append(out, k)
	}
	return out
}

func analyzeLine(l model.Line, side model.Side) AnalysisKeyLine {
	effect := Decrease
	if accounts.NormalSide(l.Account) == side {
		effect = Increase
	}
	return AnalysisKeyLine{
		Account: l.Account,
		Type:    accounts.Classify(l.Account),
		Side:    side,
		Effect:  effect,
		Amount:  l.Amount,
	}
}

// ValidateAnalysis grades step 1. Transactions are compared in order; each
// expected line scores account, type, effect and amount.
func ValidateAnalysis(book *ledger.Book, answers AnalysisAnswers, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	want := analysisKey(book)
	for t, k := range want {
		var got []AnalysisLine
		if t < len(answers.Transactions) {
			got = answers.Transactions[t].Lines
		}
		prefix := key("transactions", t)

		cands := make([]scoring.Candidate, len(got))
		for i, l := range got {
			cands[i] = scoring.Candidate{Label: l.Account, Filled: l.filled()}
		}
		m := scoring.NewMatcher(cands)
		for _, w := range k.Lines {
			i, ok := m.MatchExact(w.Account)
			if !ok {
				tl.Missing(key(prefix, "missing", w.Account), 4)
				continue
			}
			lk := key(prefix, "lines", i)
			tl.Field(key(lk, "account"), true)
			tl.Field(key(lk, "type"), scoring.SameLabel(got[i].Type, string(w.Type)))
			tl.Field(key(lk, "effect"), matchEffect(got[i].Effect, w.Effect))
			tl.Amount(key(lk, "amount"), got[i].Amount, w.Amount)
		}
		for _, i := range m.Spurious() {
			tl.Spurious(key(prefix, "lines", i, "account"))
		}
	}
	for t := len(want); t < len(answers.Transactions); t++ {
		for i, l := range answers.Transactions[t].Lines {
			if l.filled() {
				tl.Spurious(key("transactions", t, "lines", i, "account"))
			}
		}
	}
	return tl.Result(want, nil)
}

func matchEffect(user string, want Effect) bool {
	u := strings.ToLower(strings.TrimSpace(user))
	switch want {
	case Increase:
		return u == "+" || strings.HasPrefix(u, "inc")
	case Decrease:
		return u == "-" || strings.HasPrefix(u, "dec")
	}
	return false
}
