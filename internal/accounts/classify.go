package accounts

import (
	"sort"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// canonicalOrder is the display order of the accounts a scenario can contain.
var canonicalOrder = []string{
	"Cash",
	"Petty Cash",
	"Accounts Receivable",
	"Allowance for Doubtful Accounts",
	"Notes Receivable",
	"Interest Receivable",
	"Rent Receivable",
	"Merchandise Inventory",
	"Raw Materials Inventory",
	"Work in Process Inventory",
	"Finished Goods Inventory",
	"Supplies",
	"Prepaid Insurance",
	"Prepaid Rent",
	"Prepaid Advertising",
	"Land",
	"Building",
	"Accumulated Depreciation - Building",
	"Equipment",
	"Accumulated Depreciation - Equipment",
	"Furniture and Fixtures",
	"Accumulated Depreciation - Furniture and Fixtures",
	"Accounts Payable",
	"Notes Payable",
	"Salaries Payable",
	"Utilities Payable",
	"Interest Payable",
	"Unearned Revenue",
	"Mortgage Payable",
	"Loans Payable",
	"Bonds Payable",
	"Owner's Capital",
	"Owner's Drawing",
	"Share Capital",
	"Retained Earnings",
	"Dividends",
	"Income Summary",
	"Service Revenue",
	"Sales",
	"Sales Returns and Allowances",
	"Sales Discounts",
	"Interest Income",
	"Rent Income",
	"Cost of Goods Sold",
	"Purchases",
	"Purchase Returns and Allowances",
	"Purchase Discounts",
	"Freight In",
	"Salaries Expense",
	"Rent Expense",
	"Utilities Expense",
	"Supplies Expense",
	"Insurance Expense",
	"Advertising Expense",
	"Depreciation Expense",
	"Interest Expense",
	"Bad Debts Expense",
	"Miscellaneous Expense",
}

var (
	assetSeeds = []string{
		"Cash", "Petty Cash", "Accounts Receivable", "Notes Receivable", "Interest Receivable",
		"Rent Receivable", "Merchandise Inventory", "Raw Materials Inventory",
		"Work in Process Inventory", "Finished Goods Inventory", "Supplies",
		"Prepaid Insurance", "Prepaid Rent", "Prepaid Advertising", "Land", "Building",
		"Equipment", "Furniture and Fixtures", "Allowance for Doubtful Accounts",
	}
	liabilitySeeds = []string{
		"Accounts Payable", "Notes Payable", "Salaries Payable", "Utilities Payable",
		"Interest Payable", "Unearned Revenue", "Unearned Service Revenue",
		"Mortgage Payable", "Loans Payable", "Bonds Payable",
	}
	equitySeeds = []string{
		"Owner's Capital", "Owner's Drawing", "Share Capital", "Retained Earnings",
		"Dividends", "Income Summary",
	}
)

// CanonicalOrder returns a copy of the default account display order.
func CanonicalOrder() []string {
	out := make([]string, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// Classifier maps account names to types and display positions. It is
// immutable once built.
type Classifier struct {
	rank  map[string]int
	seeds map[string]model.AccountType
}

// NewClassifier builds a Classifier that sorts by the given order.
func NewClassifier(order []string) *Classifier {
	c := &Classifier{
		rank:  make(map[string]int, len(order)),
		seeds: make(map[string]model.AccountType),
	}
	for i, name := range order {
		key := normalize(name)
		if _, dup := c.rank[key]; !dup {
			c.rank[key] = i
		}
	}
	for _, n := range assetSeeds {
		c.seeds[normalize(n)] = model.AccountTypeAsset
	}
	for _, n := range liabilitySeeds {
		c.seeds[normalize(n)] = model.AccountTypeLiability
	}
	for _, n := range equitySeeds {
		c.seeds[normalize(n)] = model.AccountTypeEquity
	}
	return c
}

var defaultClassifier = NewClassifier(canonicalOrder)

// Default returns the classifier built from the canonical order.
func Default() *Classifier { return defaultClassifier }

// Classify returns the account type of name using the default classifier.
func Classify(name string) model.AccountType { return defaultClassifier.Classify(name) }

// CanonicalSort sorts names using the default classifier.
func CanonicalSort(names []string) []string { return defaultClassifier.Sort(names) }

// Classify returns the account type of name. Unknown names are assets.
func (c *Classifier) Classify(name string) model.AccountType {
	n := normalize(name)
	if t, ok := c.seeds[n]; ok {
		return t
	}
	switch {
	case containsAny(n, "accumulated depreciation", "allowance for"):
		return model.AccountTypeAsset
	case containsAny(n, "payable", "unearned", "advances from", "customer advance"):
		return model.AccountTypeLiability
	case containsAny(n, "drawing", "dividend", "capital", "retained earnings", "income summary", "withdrawal"):
		return model.AccountTypeEquity
	case containsAny(n, "cost of goods sold", "purchases", "purchase returns", "purchase discounts", "freight"):
		return model.AccountTypeExpense
	case strings.Contains(n, "expense"):
		return model.AccountTypeExpense
	case containsAny(n, "revenue", "income", "sales", "discounts", "returns", "fees earned"):
		return model.AccountTypeRevenue
	}
	return model.AccountTypeAsset
}

// Rank returns the canonical position of name and whether it is listed.
func (c *Classifier) Rank(name string) (int, bool) {
	r, ok := c.rank[normalize(name)]
	return r, ok
}

// Sort returns names ordered by canonical position; unlisted names follow in
// lexicographic order. The input slice is not modified.
func (c *Classifier) Sort(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.SliceStable(out, func(i, j int) bool {
		ri, oki := c.Rank(out[i])
		rj, okj := c.Rank(out[j])
		switch {
		case oki && okj:
			return ri < rj
		case oki != okj:
			return oki
		}
		return out[i] < out[j]
	})
	return out
}

// NormalSide returns the side on which name normally carries its balance.
func NormalSide(name string) model.Side {
	n := normalize(name)
	switch Classify(name) {
	case model.AccountTypeAsset:
		if IsContraAsset(name) {
			return model.Credit
		}
		return model.Debit
	case model.AccountTypeExpense:
		if containsAny(n, "purchase returns", "purchase discounts") {
			return model.Credit
		}
		return model.Debit
	case model.AccountTypeRevenue:
		if containsAny(n, "sales returns", "sales discounts") {
			return model.Debit
		}
		return model.Credit
	case model.AccountTypeEquity:
		if IsDrawing(name) {
			return model.Debit
		}
		return model.Credit
	}
	return model.Credit
}

// IsContraAsset reports whether name is a valuation account that reduces an
// asset.
func IsContraAsset(name string) bool {
	return containsAny(normalize(name), "accumulated depreciation", "accumulated amortization", "allowance for")
}

// IsDrawing reports whether name is an owner withdrawal or dividend account.
func IsDrawing(name string) bool {
	return containsAny(normalize(name), "drawing", "dividend", "withdrawal")
}

// IsIncomeSummary reports whether name is the Income Summary clearing account.
func IsIncomeSummary(name string) bool {
	return strings.Contains(normalize(name), "income summary")
}

// IsCapital reports whether name is a permanent equity account.
func IsCapital(name string) bool {
	return Classify(name) == model.AccountTypeEquity && !IsDrawing(name) && !IsIncomeSummary(name)
}

// IsNominal reports whether name is a temporary account zeroed by closing.
func IsNominal(name string) bool {
	switch Classify(name) {
	case model.AccountTypeRevenue, model.AccountTypeExpense:
		return true
	}
	return IsDrawing(name) || IsIncomeSummary(name)
}

// IsCurrentAsset reports whether an asset account is current.
func IsCurrentAsset(name string) bool {
	return containsAny(normalize(name), "cash", "receivable", "inventory", "supplies", "prepaid", "allowance for")
}

// IsNonCurrentLiability reports whether a liability is long-term.
func IsNonCurrentLiability(name string) bool {
	return containsAny(normalize(name), "mortgage", "bond", "loan")
}

// IsCostOfSales reports whether an expense account belongs to cost of goods
// sold rather than operating expenses.
func IsCostOfSales(name string) bool {
	return containsAny(normalize(name), "cost of goods sold", "purchase", "freight in", "freight-in")
}

// ContraBase returns the keyword identifying the asset a contra account
// reduces: "Accumulated Depreciation - Equipment" -> "equipment".
func ContraBase(name string) string {
	n := normalize(name)
	if strings.HasPrefix(n, "allowance for") {
		return "receivable"
	}
	for _, sep := range []string{" - ", " – ", ":", "-"} {
		if i := strings.LastIndex(n, sep); i >= 0 {
			return strings.TrimSpace(n[i+len(sep):])
		}
	}
	for _, prefix := range []string{"accumulated depreciation", "accumulated amortization"} {
		if strings.HasPrefix(n, prefix) {
			rest := strings.TrimSpace(strings.TrimPrefix(n, prefix))
			rest = strings.TrimPrefix(rest, "on ")
			rest = strings.TrimPrefix(rest, "of ")
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "’", "'")
	return strings.Join(strings.Fields(n), " ")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
