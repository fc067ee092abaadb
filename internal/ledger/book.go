package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Stage is an as-of point in the accounting cycle.
type Stage int

const (
	// Unadjusted is transactions plus beginning balances.
	Unadjusted Stage = iota
	// Adjusted adds the period-end adjusting entries.
	Adjusted
	// PostClosing zeroes the nominal accounts into capital.
	PostClosing
)

func (s Stage) String() string {
	switch s {
	case Unadjusted:
		return "unadjusted"
	case Adjusted:
		return "adjusted"
	case PostClosing:
		return "post-closing"
	}
	return "unknown"
}

// IncomeSummary is the clearing account used by closing entries.
const IncomeSummary = "Income Summary"

// Book is a read-only view over one activity's postings. Account names are
// matched case-insensitively; the first spelling seen is used for display.
type Book struct {
	txns        []model.Transaction
	raw         map[string]Balance
	beginning   map[string]Balance
	adjustments []model.Adjustment
	display     map[string]string
	names       []string
	cfg         model.ActivityConfig
	fiscalYear  int
}

// NewBook builds a Book from an activity. When the activity carries no raw
// ledger it is aggregated from the transactions.
func NewBook(data model.ActivityData) *Book {
	b := &Book{
		txns:        data.Transactions,
		raw:         make(map[string]Balance),
		beginning:   make(map[string]Balance),
		adjustments: data.Adjustments,
		display:     make(map[string]string),
		cfg:         data.Config.WithDefaults(),
		fiscalYear:  data.FiscalYear,
	}

	for _, name := range data.ValidAccounts {
		b.register(name)
	}

	raw := FromLedger(data.Ledger)
	if len(raw) == 0 {
		raw = Aggregate(data.Transactions, nil, nil)
	}
	for _, name := range sortedKeys(raw) {
		k := b.register(name)
		b.raw[k] = b.raw[k].Add(raw[name])
	}

	if bb := data.Beginning(); bb != nil {
		for _, name := range sortedKeys(bb.Balances) {
			k := b.register(name)
			v := bb.Balances[name]
			b.beginning[k] = b.beginning[k].Add(Balance{Debit: v.Dr, Credit: v.Cr})
		}
	}

	for _, adj := range data.Adjustments {
		b.register(adj.DrAcc)
		b.register(adj.CrAcc)
	}

	names := make([]string, 0, len(b.display))
	for _, display := range b.display {
		names = append(names, display)
	}
	b.names = accounts.CanonicalSort(names)
	return b
}

func (b *Book) register(name string) string {
	k := key(name)
	if k == "" {
		return k
	}
	if _, ok := b.display[k]; !ok {
		b.display[k] = strings.TrimSpace(name)
	}
	return k
}

// Config returns the activity configuration with defaults applied.
func (b *Book) Config() model.ActivityConfig { return b.cfg }

// Transactions returns the period's transactions.
func (b *Book) Transactions() []model.Transaction { return b.txns }

// Adjustments returns the period-end adjustments.
func (b *Book) Adjustments() []model.Adjustment { return b.adjustments }

// Accounts returns every account seen in any source, in canonical order,
// including accounts with zero balances.
func (b *Book) Accounts() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Has reports whether the book knows the account.
func (b *Book) Has(name string) bool {
	_, ok := b.display[key(name)]
	return ok
}

// DisplayName returns the book's spelling of name.
func (b *Book) DisplayName(name string) string {
	if d, ok := b.display[key(name)]; ok {
		return d
	}
	return strings.TrimSpace(name)
}

// Raw returns the transaction-only totals of an account.
func (b *Book) Raw(name string) Balance {
	return b.raw[key(name)]
}

// Opening returns the beginning balance of an account.
func (b *Book) Opening(name string) Balance {
	return b.beginning[key(name)]
}

// AdjustmentTotals returns the adjusting debits and credits of an account.
func (b *Book) AdjustmentTotals(name string) Balance {
	var total Balance
	for _, adj := range b.adjustments {
		if sameAccount(adj.DrAcc, name) {
			total.Debit = total.Debit.Add(adj.Amount)
		}
		if sameAccount(adj.CrAcc, name) {
			total.Credit = total.Credit.Add(adj.Amount)
		}
	}
	return total
}

// Balance returns the balance of an account as of stage.
func (b *Book) Balance(name string, stage Stage) Balance {
	k := key(name)
	unadjusted := b.raw[k].Add(b.beginning[k])
	if stage == Unadjusted {
		return unadjusted
	}
	adjusted := unadjusted.Add(b.AdjustmentTotals(name))
	if stage == Adjusted {
		return adjusted
	}

	if accounts.IsNominal(name) {
		return Balance{Debit: decimal.Zero, Credit: decimal.Zero}
	}
	if k == key(b.CapitalAccount()) {
		closed := adjusted.Net().Sub(b.NetIncome()).Add(b.Drawings())
		return FromNet(closed)
	}
	return FromNet(adjusted.Net())
}

// Balances returns every account's balance at stage in canonical order.
func (b *Book) Balances(stage Stage) []AccountBalance {
	names := b.Accounts()
	if stage == PostClosing && !b.Has(b.CapitalAccount()) {
		names = accounts.CanonicalSort(append(names, b.CapitalAccount()))
	}
	out := make([]AccountBalance, 0, len(names))
	for _, name := range names {
		out = append(out, AccountBalance{Account: name, Balance: b.Balance(name, stage)})
	}
	return out
}

// Totals returns the stage balances keyed by display name.
func (b *Book) Totals(stage Stage) Totals {
	out := make(Totals)
	for _, ab := range b.Balances(stage) {
		out[ab.Account] = ab.Balance
	}
	return out
}

// NetIncome returns adjusted revenues less adjusted expenses. A loss is
// negative.
func (b *Book) NetIncome() decimal.Decimal {
	ni := decimal.Zero
	for _, name := range b.names {
		switch accounts.Classify(name) {
		case model.AccountTypeRevenue, model.AccountTypeExpense:
			ni = ni.Sub(b.Balance(name, Adjusted).Net())
		}
	}
	return ni
}

// Drawings returns the adjusted debit balance of all drawing accounts.
func (b *Book) Drawings() decimal.Decimal {
	total := decimal.Zero
	for _, name := range b.names {
		if accounts.IsDrawing(name) {
			total = total.Add(b.Balance(name, Adjusted).Net())
		}
	}
	return total
}

// CapitalAccount returns the permanent equity account that closing entries
// post to: Retained Earnings for a corporation, else the first capital
// account in canonical order.
func (b *Book) CapitalAccount() string {
	if b.cfg.Ownership == model.OwnershipCorporation {
		for _, name := range b.names {
			if key(name) == "retained earnings" {
				return name
			}
		}
	}
	for _, name := range b.names {
		if accounts.IsCapital(name) {
			if b.cfg.Ownership == model.OwnershipCorporation && strings.Contains(key(name), "share") {
				continue
			}
			return name
		}
	}
	if b.cfg.Ownership == model.OwnershipCorporation {
		return "Retained Earnings"
	}
	return "Owner's Capital"
}

// PeriodEnd returns the last calendar day of the month of the latest
// transaction, or December 31 of the fiscal year when there are none.
func (b *Book) PeriodEnd() model.Date {
	var latest model.Date
	for _, txn := range b.txns {
		if txn.Date.After(latest.Time) {
			latest = txn.Date
		}
	}
	if latest.IsZero() {
		year := b.fiscalYear
		if year == 0 {
			year = 2000
		}
		return model.NewDate(year, 12, 31)
	}
	return latest.EndOfMonth()
}

// PeriodStart returns January 1 of the period-end year.
func (b *Book) PeriodStart() model.Date {
	return model.NewDate(b.PeriodEnd().Year(), 1, 1)
}

func key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func sameAccount(a, b string) bool {
	return key(a) == key(b)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
