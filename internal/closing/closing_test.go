package closing

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func simple(id string, month time.Month, day int, dr, cr, amount string) model.Transaction {
	return model.Transaction{
		ID:      id,
		Date:    model.NewDate(2025, month, day),
		Debits:  []model.Line{{Account: dr, Amount: d(amount)}},
		Credits: []model.Line{{Account: cr, Amount: d(amount)}},
	}
}

func closingActivity() model.ActivityData {
	return model.ActivityData{
		Transactions: []model.Transaction{
			simple("T1", time.November, 1, "Cash", "Owner's Capital", "10000"),
			simple("T2", time.November, 10, "Cash", "Service Revenue", "50000"),
			simple("T3", time.November, 20, "Salaries Expense", "Cash", "20000"),
			simple("T4", time.November, 18, "Rent Expense", "Cash", "10000"),
		},
	}
}

type flat struct {
	account string
	side    model.Side
	amount  string
}

func flatten(e Entry) []flat {
	var out []flat
	for _, l := range e.Lines() {
		out = append(out, flat{l.Account, l.Side, l.Amount.String()})
	}
	return out
}

func TestClosingOrder(t *testing.T) {
	entries := Entries(ledger.NewBook(closingActivity()))
	require.Len(t, entries, 3)

	assert.Equal(t, CloseRevenue, entries[0].Kind)
	assert.Equal(t, []flat{
		{"Service Revenue", model.Debit, "50000"},
		{"Income Summary", model.Credit, "50000"},
	}, flatten(entries[0]))

	assert.Equal(t, CloseExpense, entries[1].Kind)
	assert.Equal(t, []flat{
		{"Income Summary", model.Debit, "30000"},
		{"Salaries Expense", model.Credit, "20000"},
		{"Rent Expense", model.Credit, "10000"},
	}, flatten(entries[1]))

	assert.Equal(t, CloseIncomeSummary, entries[2].Kind)
	assert.Equal(t, []flat{
		{"Income Summary", model.Debit, "20000"},
		{"Owner's Capital", model.Credit, "20000"},
	}, flatten(entries[2]))

	_, ok := Find(entries, CloseDrawings)
	assert.False(t, ok)

	for _, e := range entries {
		assert.Equal(t, "2025-11-30", e.Date.String())
	}
}

func TestClosingLossAndDrawings(t *testing.T) {
	data := closingActivity()
	data.Transactions[1] = simple("T2", time.November, 10, "Cash", "Service Revenue", "25000")
	data.Transactions = append(data.Transactions, simple("T5", time.December, 2, "Owner's Drawing", "Cash", "3000"))

	entries := Entries(ledger.NewBook(data))
	require.Len(t, entries, 4)

	is, ok := Find(entries, CloseIncomeSummary)
	require.True(t, ok)
	assert.Equal(t, []flat{
		{"Owner's Capital", model.Debit, "5000"},
		{"Income Summary", model.Credit, "5000"},
	}, flatten(is))

	dr, ok := Find(entries, CloseDrawings)
	require.True(t, ok)
	assert.Equal(t, []flat{
		{"Owner's Capital", model.Debit, "3000"},
		{"Owner's Drawing", model.Credit, "3000"},
	}, flatten(dr))
	assert.Equal(t, "2025-12-31", dr.Date.String())
}

func TestClosingLeavesOnlyPermanentAccounts(t *testing.T) {
	data := closingActivity()
	data.Transactions = append(data.Transactions, simple("T5", time.November, 25, "Owner's Drawing", "Cash", "3000"))
	book := ledger.NewBook(data)

	net := make(map[string]decimal.Decimal)
	for _, ab := range book.Balances(ledger.Adjusted) {
		net[ab.Account] = ab.Balance.Net()
	}
	for _, e := range Entries(book) {
		for _, l := range e.Lines() {
			v := net[l.Account]
			if l.Side == model.Debit {
				net[l.Account] = v.Add(l.Amount)
			} else {
				net[l.Account] = v.Sub(l.Amount)
			}
		}
	}
	for account, v := range net {
		assert.True(t, v.Equal(book.Balance(account, ledger.PostClosing).Net()), account)
	}
	assert.True(t, net["Income Summary"].IsZero())
}

func TestClosingDate(t *testing.T) {
	assert.Equal(t, "2025-11-30", Date(closingActivity().Transactions, 0).String())
	assert.Equal(t, "2024-12-31", Date(nil, 2024).String())
}

func TestShouldReverse(t *testing.T) {
	asset := model.ActivityConfig{}
	expenseMethod := model.ActivityConfig{DeferredExpenseMethod: model.DeferredExpenseExpense}
	incomeMethod := model.ActivityConfig{DeferredIncomeMethod: model.DeferredIncomeIncome}

	tests := []struct {
		name string
		adj  model.Adjustment
		cfg  model.ActivityConfig
		want bool
	}{
		{"accrued expense", model.Adjustment{DrAcc: "Salaries Expense", CrAcc: "Salaries Payable"}, asset, true},
		{"accounts payable", model.Adjustment{DrAcc: "Utilities Expense", CrAcc: "Accounts Payable"}, asset, false},
		{"notes payable", model.Adjustment{DrAcc: "Interest Expense", CrAcc: "Notes Payable"}, asset, false},
		{"accrued income", model.Adjustment{DrAcc: "Interest Receivable", CrAcc: "Interest Income"}, asset, true},
		{"accounts receivable", model.Adjustment{DrAcc: "Accounts Receivable", CrAcc: "Service Revenue"}, asset, false},
		{"described accrued", model.Adjustment{Desc: "Accrued revenue", DrAcc: "Accounts Receivable", CrAcc: "Service Revenue"}, asset, true},
		{"depreciation", model.Adjustment{DrAcc: "Depreciation Expense", CrAcc: "Accumulated Depreciation - Equipment"}, asset, false},
		{"asset method supplies", model.Adjustment{DrAcc: "Supplies Expense", CrAcc: "Supplies"}, asset, false},
		{"expense method supplies", model.Adjustment{DrAcc: "Supplies", CrAcc: "Supplies Expense"}, expenseMethod, true},
		{"expense method office supplies", model.Adjustment{DrAcc: "Office Supplies", CrAcc: "Supplies Expense"}, expenseMethod, true},
		{"expense method store supplies", model.Adjustment{DrAcc: "Store Supplies", CrAcc: "Store Supplies Expense"}, expenseMethod, true},
		{"expense method supplies expense debit", model.Adjustment{DrAcc: "Supplies Expense", CrAcc: "Cash"}, expenseMethod, false},
		{"expense method prepaid", model.Adjustment{DrAcc: "Prepaid Insurance", CrAcc: "Insurance Expense"}, expenseMethod, true},
		{"expense method under asset config", model.Adjustment{DrAcc: "Prepaid Insurance", CrAcc: "Insurance Expense"}, asset, false},
		{"liability method unearned", model.Adjustment{DrAcc: "Unearned Revenue", CrAcc: "Service Revenue"}, asset, false},
		{"income method unearned", model.Adjustment{DrAcc: "Service Revenue", CrAcc: "Unearned Revenue"}, incomeMethod, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldReverse(tt.adj, tt.cfg))
		})
	}
}

func TestReversingEntries(t *testing.T) {
	cfg := model.ActivityConfig{DeferredExpenseMethod: model.DeferredExpenseExpense}
	adjustments := []model.Adjustment{
		{ID: "A1", Desc: "Supplies on hand", DrAcc: "Supplies", CrAcc: "Supplies Expense", Amount: d("500")},
		{ID: "A2", DrAcc: "Depreciation Expense", CrAcc: "Accumulated Depreciation - Equipment", Amount: d("100")},
	}
	got := ReversingEntries(adjustments, cfg, model.NewDate(2025, time.December, 31))
	require.Len(t, got, 1)
	r := got[0]
	assert.Equal(t, "Supplies Expense", r.Entry.DrAcc)
	assert.Equal(t, "Supplies", r.Entry.CrAcc)
	assert.Equal(t, "500", r.Entry.Amount.String())
	assert.Equal(t, "2026-01-01", r.Date.String())
	assert.Contains(t, strings.ToLower(r.Entry.Desc), "reversing")
	assert.Equal(t, "A1", r.Adjustment.ID)
}
