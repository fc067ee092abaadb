package steps

import (
	"github.com/cleared-dev/ledgerlab/internal/closing"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

func closingKey(book *ledger.Book) []closing.Entry {
	return closing.Entries(book)
}

// ValidateClosing grades step 8. Closing entries must be in REID order, so
// the n-th submitted entry is compared with the n-th expected block.
func ValidateClosing(book *ledger.Book, answers ClosingAnswers, policy scoring.Policy) scoring.ValidationResult {
	tl := scoring.NewTally(policy)
	want := closingKey(book)
	for n, e := range want {
		var got JournalEntry
		if n < len(answers.Entries) {
			got = answers.Entries[n]
		}
		prefix := key("entries", n)
		scoreDate(tl, key(prefix, "date"), got.Date, e.Date)
		scoreLines(tl, prefix, linesOf(e.Debits, e.Credits), got.Lines)
	}
	spuriousEntries(tl, answers.Entries, len(want))
	return tl.Result(want, nil)
}
