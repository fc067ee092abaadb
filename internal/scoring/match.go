package scoring

import (
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Candidate is one user row offered for matching.
type Candidate struct {
	Label string
	// Filled reports whether the row has any non-blank content. Unmatched
	// filled rows are spurious.
	Filled bool
}

// Matcher pairs expected line items with user rows. Each user row can
// satisfy at most one expected item.
type Matcher struct {
	rows     []Candidate
	consumed []bool
}

// NewMatcher returns a Matcher over the given user rows.
func NewMatcher(rows []Candidate) *Matcher {
	return &Matcher{rows: rows, consumed: make([]bool, len(rows))}
}

// LabelsMatcher is NewMatcher for rows that are only labels.
func LabelsMatcher(labels []string) *Matcher {
	rows := make([]Candidate, len(labels))
	for i, l := range labels {
		rows[i] = Candidate{Label: l, Filled: !IsBlank(l)}
	}
	return NewMatcher(rows)
}

// Match finds and consumes the first unconsumed row whose label equals want
// (case-insensitive, trimmed). Failing that it tries a keyword match, which
// lets "Accum. Depreciation - Equipment" stand for
// "Accumulated Depreciation - Equipment". It returns the row index.
//
// The keyword fallback is for statement asset labels only; account-name
// columns use MatchExact.
func (m *Matcher) Match(want string) (int, bool) {
	if i, ok := m.find(want, equalLabels); ok {
		return i, true
	}
	return m.find(want, keywordMatch)
}

// MatchExact is Match without the keyword fallback.
func (m *Matcher) MatchExact(want string) (int, bool) {
	return m.find(want, equalLabels)
}

func (m *Matcher) find(want string, eq func(user, want string) bool) (int, bool) {
	if IsBlank(want) {
		return -1, false
	}
	for i, row := range m.rows {
		if m.consumed[i] || IsBlank(row.Label) {
			continue
		}
		if eq(row.Label, want) {
			m.consumed[i] = true
			return i, true
		}
	}
	return -1, false
}

// Consumed reports whether row i has been matched.
func (m *Matcher) Consumed(i int) bool {
	return i >= 0 && i < len(m.consumed) && m.consumed[i]
}

// Spurious returns the indexes of filled rows that matched nothing.
func (m *Matcher) Spurious() []int {
	var out []int
	for i, row := range m.rows {
		if !m.consumed[i] && row.Filled {
			out = append(out, i)
		}
	}
	return out
}

// SameLabel reports whether two labels are equal ignoring case and spacing.
func SameLabel(a, b string) bool {
	return equalLabels(a, b)
}

func equalLabels(user, want string) bool {
	return normalizeLabel(user) == normalizeLabel(want)
}

// keywordMatch accepts abbreviated or decorated labels for assets and
// contra-assets, whose names vary with the scenario.
func keywordMatch(user, want string) bool {
	u, w := normalizeLabel(user), normalizeLabel(want)
	if len(u) < 3 || accounts.Classify(user) != accounts.Classify(want) {
		return false
	}
	if accounts.IsContraAsset(want) {
		if !isContraLabel(u) {
			return false
		}
		base := accounts.ContraBase(want)
		if strings.HasPrefix(w, "allowance") {
			return strings.Contains(u, "allowance")
		}
		return base == "" || strings.Contains(u, base)
	}
	if isContraLabel(u) || accounts.Classify(want) != model.AccountTypeAsset {
		return false
	}
	return strings.Contains(u, w) || strings.Contains(w, u)
}

func isContraLabel(u string) bool {
	return strings.Contains(u, "accum") || strings.Contains(u, "allowance")
}

func normalizeLabel(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "’", "'")
	s = strings.NewReplacer(".", " ", ":", " ").Replace(s)
	s = strings.TrimPrefix(strings.TrimSpace(s), "less ")
	return strings.Join(strings.Fields(s), " ")
}
