package journal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ErrUnbalanced is matched by errors.Is for any entry whose debits and
// credits differ.
var ErrUnbalanced = errors.New("unbalanced entry")

// Invariants checked by ValidateLegs.
const (
	InvariantBalanced   = 1
	InvariantOneSide    = 2
	InvariantAccount    = 3
	InvariantFiscalYear = 4
	InvariantLegIDs     = 5
	InvariantDecimals   = 6
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// Unwrap exposes ErrUnbalanced for balance violations.
func (e ValidationError) Unwrap() error {
	if e.Invariant == InvariantBalanced {
		return ErrUnbalanced
	}
	return nil
}

// AccountChecker tests whether an account name exists in the chart of accounts.
type AccountChecker interface {
	Exists(name string) bool
}

// ValidateLegs enforces the journal invariants on a set of legs. A nil
// checker skips the account check and a zero year skips the date check.
func ValidateLegs(legs []model.Leg, accounts AccountChecker, year int) []ValidationError {
	var errs []ValidationError

	groups := make(map[string][]model.Leg)
	var groupOrder []string
	for _, leg := range legs {
		g := leg.EntryGroup()
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], leg)
	}

	// Invariant 1: each entry balances.
	for _, g := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, leg := range groups[g] {
			totalDebit = totalDebit.Add(leg.Debit)
			totalCredit = totalCredit.Add(leg.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantBalanced,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	hundred := decimal.NewFromInt(100)
	for _, leg := range legs {
		// Invariant 2: exactly one positive side per leg.
		hasDebit := !leg.Debit.IsZero()
		hasCredit := !leg.Credit.IsZero()
		if hasDebit == hasCredit || leg.Debit.IsNegative() || leg.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   InvariantOneSide,
				EntryID:     leg.EntryID,
				Description: "leg must have exactly one positive debit or credit",
			})
		}

		// Invariant 3: account is in the chart.
		if accounts != nil && !accounts.Exists(leg.Account) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantAccount,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("unknown account %q", leg.Account),
			})
		}

		// Invariant 4: dated within the fiscal year.
		if year != 0 && leg.Date.Year() != year {
			errs = append(errs, ValidationError{
				Invariant:   InvariantFiscalYear,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("date %s not in fiscal year %04d", leg.Date, year),
			})
		}

		// Invariant 6: no more than 2 decimal places.
		amt := leg.Amount()
		if !amt.Mul(hundred).Equal(amt.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantDecimals,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", amt),
			})
		}
	}

	// Invariant 5: legs of an entry are contiguous and lettered a, b, c...
	seen := make(map[string]bool)
	prev := ""
	next := 0
	for _, leg := range legs {
		g := leg.EntryGroup()
		if g == "" {
			errs = append(errs, ValidationError{
				Invariant:   InvariantLegIDs,
				EntryID:     leg.EntryID,
				Description: "missing entry ID",
			})
			continue
		}
		if g != prev {
			if seen[g] {
				errs = append(errs, ValidationError{
					Invariant:   InvariantLegIDs,
					EntryID:     leg.EntryID,
					Description: fmt.Sprintf("legs of %s are not contiguous", g),
				})
			}
			seen[g] = true
			prev = g
			next = 0
		}
		idx, ok := id.LegIndex(leg.EntryID)
		if !ok || idx != next {
			errs = append(errs, ValidationError{
				Invariant:   InvariantLegIDs,
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("expected leg %s", id.FormatLegID(g, next)),
			})
		}
		next++
	}

	return errs
}

// ValidateTransactions checks transactions by the same invariants as
// journal legs.
func ValidateTransactions(txns []model.Transaction, accounts AccountChecker, year int) []ValidationError {
	return ValidateLegs(Legs(txns), accounts, year)
}

// Err joins violations into a single error, or returns nil when there are
// none.
func Err(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}
