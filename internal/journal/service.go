package journal

import (
	"fmt"
	"os"

	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Transactions groups legs into transactions by entry ID, in the order each
// entry first appears. The date and description come from the entry's first
// leg that carries them.
func Transactions(legs []model.Leg) []model.Transaction {
	index := make(map[string]int)
	var txns []model.Transaction
	for _, leg := range legs {
		g := leg.EntryGroup()
		i, ok := index[g]
		if !ok {
			i = len(txns)
			index[g] = i
			txns = append(txns, model.Transaction{ID: g, Date: leg.Date})
		}
		t := &txns[i]
		if t.Description == "" {
			t.Description = leg.Description
		}
		if t.Date.IsZero() {
			t.Date = leg.Date
		}
		line := model.Line{Account: leg.Account, Amount: leg.Amount()}
		if leg.Side() == model.Debit {
			t.Debits = append(t.Debits, line)
		} else {
			t.Credits = append(t.Credits, line)
		}
	}
	return txns
}

// Legs flattens transactions into journal legs, debits first. Transactions
// without an ID get the next dated ID for their month.
func Legs(txns []model.Transaction) []model.Leg {
	ids := make([]string, 0, len(txns))
	for _, t := range txns {
		ids = append(ids, t.ID)
	}

	var legs []model.Leg
	for _, t := range txns {
		entryID := t.ID
		if entryID == "" {
			year, month := t.Date.Year(), int(t.Date.Month())
			entryID = id.FormatEntryID(year, month, id.NextSeq(ids, year, month))
			ids = append(ids, entryID)
		}
		n := 0
		add := func(l model.Line, side model.Side) {
			leg := model.Leg{
				EntryID:     id.FormatLegID(entryID, n),
				Date:        t.Date,
				Account:     l.Account,
				Description: t.Description,
			}
			if side == model.Debit {
				leg.Debit = l.Amount
			} else {
				leg.Credit = l.Amount
			}
			legs = append(legs, leg)
			n++
		}
		for _, l := range t.Debits {
			add(l, model.Debit)
		}
		for _, l := range t.Credits {
			add(l, model.Credit)
		}
	}
	return legs
}

// Load reads journal.csv, checks its invariants and returns the transactions
// it records.
func Load(path string, accounts AccountChecker, year int) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	legs, err := ReadLegs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Err(ValidateLegs(legs, accounts, year)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Transactions(legs), nil
}

// Save writes transactions to journal.csv.
func Save(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal: %w", err)
	}
	if err := WriteLegs(f, Legs(txns)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
