package accounts

import "github.com/cleared-dev/ledgerlab/internal/model"

// DefaultChart returns the default chart of accounts for a scenario variant.
func DefaultChart(cfg model.ActivityConfig) []model.Account {
	cfg = cfg.WithDefaults()

	chart := []model.Account{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Accounts Receivable", Type: model.AccountTypeAsset},
		{Name: "Supplies", Type: model.AccountTypeAsset},
		{Name: "Prepaid Insurance", Type: model.AccountTypeAsset},
		{Name: "Equipment", Type: model.AccountTypeAsset},
		{Name: "Accumulated Depreciation - Equipment", Type: model.AccountTypeAsset, Description: "Contra asset"},
		{Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Name: "Salaries Payable", Type: model.AccountTypeLiability},
		{Name: "Unearned Revenue", Type: model.AccountTypeLiability},
		{Name: "Notes Payable", Type: model.AccountTypeLiability},
	}

	switch cfg.BusinessType {
	case model.BusinessMerchandising, model.BusinessManufacturing:
		chart = append(chart, model.Account{Name: "Merchandise Inventory", Type: model.AccountTypeAsset})
	}

	switch cfg.Ownership {
	case model.OwnershipCorporation:
		chart = append(chart,
			model.Account{Name: "Share Capital", Type: model.AccountTypeEquity},
			model.Account{Name: "Retained Earnings", Type: model.AccountTypeEquity},
			model.Account{Name: "Dividends", Type: model.AccountTypeEquity},
		)
	default:
		chart = append(chart,
			model.Account{Name: "Owner's Capital", Type: model.AccountTypeEquity},
			model.Account{Name: "Owner's Drawing", Type: model.AccountTypeEquity},
		)
	}
	chart = append(chart, model.Account{Name: "Income Summary", Type: model.AccountTypeEquity, Description: "Closing clearing account"})

	switch cfg.BusinessType {
	case model.BusinessMerchandising, model.BusinessManufacturing:
		chart = append(chart,
			model.Account{Name: "Sales", Type: model.AccountTypeRevenue},
			model.Account{Name: "Sales Returns and Allowances", Type: model.AccountTypeRevenue, Description: "Contra revenue"},
			model.Account{Name: "Sales Discounts", Type: model.AccountTypeRevenue, Description: "Contra revenue"},
		)
		if cfg.InventorySystem == model.InventoryPeriodic {
			chart = append(chart,
				model.Account{Name: "Purchases", Type: model.AccountTypeExpense},
				model.Account{Name: "Purchase Returns and Allowances", Type: model.AccountTypeExpense},
				model.Account{Name: "Purchase Discounts", Type: model.AccountTypeExpense},
				model.Account{Name: "Freight In", Type: model.AccountTypeExpense},
			)
		} else {
			chart = append(chart, model.Account{Name: "Cost of Goods Sold", Type: model.AccountTypeExpense})
		}
	default:
		chart = append(chart, model.Account{Name: "Service Revenue", Type: model.AccountTypeRevenue})
	}

	chart = append(chart,
		model.Account{Name: "Salaries Expense", Type: model.AccountTypeExpense},
		model.Account{Name: "Rent Expense", Type: model.AccountTypeExpense},
		model.Account{Name: "Utilities Expense", Type: model.AccountTypeExpense},
		model.Account{Name: "Supplies Expense", Type: model.AccountTypeExpense},
		model.Account{Name: "Insurance Expense", Type: model.AccountTypeExpense},
		model.Account{Name: "Depreciation Expense", Type: model.AccountTypeExpense},
	)
	return chart
}
