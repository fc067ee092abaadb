package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// OpeningDescription labels the beginning-balance row of a T-account.
const OpeningDescription = "Bal"

// Posting is one row of a T-account.
type Posting struct {
	Date        model.Date      `json:"date"`
	Ref         string          `json:"ref,omitempty"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"dr"`
	Credit      decimal.Decimal `json:"cr"`
	Running     decimal.Decimal `json:"running"`
}

// Postings returns the chronological T-account rows of an account: the
// beginning balance (subsequent years only) followed by every transaction
// line that touches it. Transactions on the same day keep their input order.
func (b *Book) Postings(name string) []Posting {
	var out []Posting
	if open := b.Opening(name); !open.IsZero() {
		dr, cr := open.Split()
		out = append(out, Posting{
			Date:        b.PeriodStart(),
			Description: OpeningDescription,
			Debit:       dr,
			Credit:      cr,
		})
	}

	txns := make([]model.Transaction, len(b.txns))
	copy(txns, b.txns)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date.Time)
	})

	for _, txn := range txns {
		for _, l := range txn.Debits {
			if sameAccount(l.Account, name) {
				out = append(out, Posting{Date: txn.Date, Ref: txn.ID, Description: txn.Description, Debit: l.Amount, Credit: decimal.Zero})
			}
		}
		for _, l := range txn.Credits {
			if sameAccount(l.Account, name) {
				out = append(out, Posting{Date: txn.Date, Ref: txn.ID, Description: txn.Description, Debit: decimal.Zero, Credit: l.Amount})
			}
		}
	}

	running := decimal.Zero
	for i := range out {
		running = running.Add(out[i].Debit).Sub(out[i].Credit)
		out[i].Running = running
	}
	return out
}

// PostedAccounts returns the accounts that have at least one T-account row,
// in canonical order.
func (b *Book) PostedAccounts() []string {
	var out []string
	for _, name := range b.names {
		if len(b.Postings(name)) > 0 {
			out = append(out, name)
		}
	}
	return out
}
