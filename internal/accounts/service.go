package accounts

import (
	"fmt"
	"os"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Chart provides in-memory lookup over a scenario's chart of accounts.
// Lookups are case-insensitive.
type Chart struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewChart creates a Chart from a slice of accounts. Accounts without a type
// are classified; later duplicates of a name are dropped.
func NewChart(accounts []model.Account) *Chart {
	byName := make(map[string]model.Account, len(accounts))
	kept := make([]model.Account, 0, len(accounts))
	for _, a := range accounts {
		key := normalize(a.Name)
		if _, dup := byName[key]; dup {
			continue
		}
		if a.Type == "" {
			a.Type = Classify(a.Name)
		}
		byName[key] = a
		kept = append(kept, a)
	}
	return &Chart{accounts: kept, byName: byName}
}

// ChartFromNames builds a Chart from bare account names.
func ChartFromNames(names []string) *Chart {
	accts := make([]model.Account, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		accts = append(accts, model.Account{Name: n})
	}
	return NewChart(accts)
}

// Load reads a chart-of-accounts CSV file and returns a Chart.
func Load(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewChart(accts), nil
}

// Save writes the chart to a CSV file at path.
func (c *Chart) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, c.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

// All returns all accounts in insertion order.
func (c *Chart) All() []model.Account {
	return c.accounts
}

// Names returns the account names in canonical order.
func (c *Chart) Names() []string {
	names := make([]string, len(c.accounts))
	for i, a := range c.accounts {
		names[i] = a.Name
	}
	return CanonicalSort(names)
}

// Get returns an account by name.
func (c *Chart) Get(name string) (model.Account, bool) {
	a, ok := c.byName[normalize(name)]
	return a, ok
}

// Exists reports whether an account name exists.
func (c *Chart) Exists(name string) bool {
	_, ok := c.byName[normalize(name)]
	return ok
}

// ByType returns all accounts of the given type.
func (c *Chart) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
