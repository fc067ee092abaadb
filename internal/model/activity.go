package model

import "github.com/shopspring/decimal"

// BusinessType drives which accounts a scenario contains.
type BusinessType string

const (
	BusinessService       BusinessType = "Service"
	BusinessMerchandising BusinessType = "Merchandising"
	BusinessManufacturing BusinessType = "Manufacturing"
)

// Ownership selects sole-proprietor or corporate equity accounts.
type Ownership string

const (
	OwnershipSoleProprietorship Ownership = "SoleProprietorship"
	OwnershipCorporation        Ownership = "Corporation"
)

// InventorySystem is the merchandise inventory method.
type InventorySystem string

const (
	InventoryPerpetual InventorySystem = "Perpetual"
	InventoryPeriodic  InventorySystem = "Periodic"
)

// StatementFormat is the income statement layout.
type StatementFormat string

const (
	FormatSingleStep StatementFormat = "Single"
	FormatMultiStep  StatementFormat = "Multi"
)

// DeferredExpenseMethod is how prepayments were first recorded.
type DeferredExpenseMethod string

const (
	DeferredExpenseAsset   DeferredExpenseMethod = "Asset"
	DeferredExpenseExpense DeferredExpenseMethod = "Expense"
)

// DeferredIncomeMethod is how advance collections were first recorded.
type DeferredIncomeMethod string

const (
	DeferredIncomeLiability DeferredIncomeMethod = "Liability"
	DeferredIncomeIncome    DeferredIncomeMethod = "Income"
)

// ActivityConfig describes the scenario variant.
type ActivityConfig struct {
	IsSubsequentYear      bool                  `json:"isSubsequentYear" yaml:"isSubsequentYear"`
	BusinessType          BusinessType          `json:"businessType" yaml:"businessType" validate:"omitempty,oneof=Service Merchandising Manufacturing"`
	Ownership             Ownership             `json:"ownership" yaml:"ownership" validate:"omitempty,oneof=SoleProprietorship Corporation"`
	InventorySystem       InventorySystem       `json:"inventorySystem" yaml:"inventorySystem" validate:"omitempty,oneof=Perpetual Periodic"`
	FSFormat              StatementFormat       `json:"fsFormat" yaml:"fsFormat" validate:"omitempty,oneof=Single Multi"`
	IncludeCashFlows      bool                  `json:"includeCashFlows" yaml:"includeCashFlows"`
	DeferredExpenseMethod DeferredExpenseMethod `json:"deferredExpenseMethod" yaml:"deferredExpenseMethod" validate:"omitempty,oneof=Asset Expense"`
	DeferredIncomeMethod  DeferredIncomeMethod  `json:"deferredIncomeMethod" yaml:"deferredIncomeMethod" validate:"omitempty,oneof=Liability Income"`
}

// WithDefaults fills unset enum fields with the service/sole-proprietor
// defaults.
func (c ActivityConfig) WithDefaults() ActivityConfig {
	if c.BusinessType == "" {
		c.BusinessType = BusinessService
	}
	if c.Ownership == "" {
		c.Ownership = OwnershipSoleProprietorship
	}
	if c.InventorySystem == "" {
		c.InventorySystem = InventoryPerpetual
	}
	if c.FSFormat == "" {
		c.FSFormat = FormatSingleStep
	}
	if c.DeferredExpenseMethod == "" {
		c.DeferredExpenseMethod = DeferredExpenseAsset
	}
	if c.DeferredIncomeMethod == "" {
		c.DeferredIncomeMethod = DeferredIncomeLiability
	}
	return c
}

// DrCr is a pair of debit and credit amounts.
type DrCr struct {
	Dr decimal.Decimal `json:"dr" yaml:"dr"`
	Cr decimal.Decimal `json:"cr" yaml:"cr"`
}

// BeginningBalances are the post-closing balances carried into a subsequent
// fiscal year.
type BeginningBalances struct {
	Balances map[string]DrCr `json:"balances" yaml:"balances"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}

// LedgerTotals is the raw debit and credit sum of one account.
type LedgerTotals struct {
	Debit  decimal.Decimal `json:"debit" yaml:"debit"`
	Credit decimal.Decimal `json:"credit" yaml:"credit"`
}

// ActivityData is one generated scenario: everything the answer key is
// derived from.
type ActivityData struct {
	Transactions      []Transaction           `json:"transactions" yaml:"transactions" validate:"dive"`
	Adjustments       []Adjustment            `json:"adjustments" yaml:"adjustments" validate:"dive"`
	ValidAccounts     []string                `json:"validAccounts" yaml:"validAccounts"`
	Ledger            map[string]LedgerTotals `json:"ledger,omitempty" yaml:"ledger,omitempty"`
	BeginningBalances *BeginningBalances      `json:"beginningBalances,omitempty" yaml:"beginningBalances,omitempty"`
	Config            ActivityConfig          `json:"config" yaml:"config"`
	FiscalYear        int                     `json:"fiscalYear,omitempty" yaml:"fiscalYear,omitempty" validate:"omitempty,gte=1900,lte=2999"`
}

// Beginning returns the beginning balances in effect, or nil when the
// scenario is a first year.
func (a ActivityData) Beginning() *BeginningBalances {
	if !a.Config.IsSubsequentYear {
		return nil
	}
	return a.BeginningBalances
}
