package steps

import (
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// JournalKey is one expected journal entry.
type JournalKey struct {
	ID          string         `json:"id"`
	Date        model.Date     `json:"date"`
	Description string         `json:"description"`
	Lines       []ExpectedLine `json:"lines"`
}

func journalKey(book *ledger.Book) []JournalKey {
	var out []JournalKey
	for _, txn := range book.Transactions() {
		out = append(out, JournalKey{
			ID:          txn.ID,
			Date:        txn.Date,
			Description: txn.Description,
			Lines:       linesOf(txn.Debits, txn.Credits),
		})
	}
	return out
}

// ValidateJournal grades step 2. Entries are compared in transaction order:
// one point for the date, then account, debit and credit per line.
func ValidateJournal(book *ledger.Book, answers JournalAnswers, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	want := journalKey(book)
	for t, k := range want {
		var got JournalEntry
		if t < len(answers.Entries) {
			got = answers.Entries[t]
		}
		prefix := key("entries", t)
		scoreDate(tl, key(prefix, "date"), got.Date, k.Date)
		scoreLines(tl, prefix, k.Lines, got.Lines)
	}
	spuriousEntries(tl, answers.Entries, len(want))
	return tl.Result(want, nil)
}

// spuriousEntries penalizes filled entries beyond the expected count.
func spuriousEntries(tl *scoring.Tally, entries []JournalEntry, expected int) {
	for t := expected; t < len(entries); t++ {
		if entries[t].filled() {
			tl.Spurious(key("entries", t))
		}
	}
}
