package accounts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func TestDefaultChart(t *testing.T) {
	service := NewChart(DefaultChart(model.ActivityConfig{}))
	assert.True(t, service.Exists("Service Revenue"))
	assert.True(t, service.Exists("Owner's Capital"))
	assert.False(t, service.Exists("Sales"))

	corp := NewChart(DefaultChart(model.ActivityConfig{
		BusinessType:    model.BusinessMerchandising,
		Ownership:       model.OwnershipCorporation,
		InventorySystem: model.InventoryPeriodic,
	}))
	assert.True(t, corp.Exists("Retained Earnings"))
	assert.True(t, corp.Exists("Purchases"))
	assert.False(t, corp.Exists("Cost of Goods Sold"))
	assert.False(t, corp.Exists("Owner's Drawing"))

	for _, acct := range corp.All() {
		assert.Equal(t, Classify(acct.Name), acct.Type, "default chart type for %q", acct.Name)
	}
}

func TestGetExistsCaseInsensitive(t *testing.T) {
	chart := ChartFromNames([]string{"Cash", "Service Revenue", "", "cash"})
	require.Len(t, chart.All(), 2)

	acct, ok := chart.Get("  CASH ")
	assert.True(t, ok)
	assert.Equal(t, "Cash", acct.Name)
	assert.Equal(t, model.AccountTypeAsset, acct.Type)

	_, ok = chart.Get("Land")
	assert.False(t, ok)
}

func TestByTypeAndNames(t *testing.T) {
	chart := ChartFromNames([]string{"Rent Expense", "Cash", "Service Revenue", "Supplies Expense"})
	assert.Len(t, chart.ByType(model.AccountTypeExpense), 2)
	assert.Equal(t, []string{"Cash", "Service Revenue", "Rent Expense", "Supplies Expense"}, chart.Names())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chart := NewChart(DefaultChart(model.ActivityConfig{}))
	path := filepath.Join(t.TempDir(), "chart-of-accounts.csv")
	require.NoError(t, chart.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, chart.All(), loaded.All())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening chart of accounts")
}
