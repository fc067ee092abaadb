package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Side is the debit or credit side of a posting or balance.
type Side string

const (
	Debit  Side = "Dr"
	Credit Side = "Cr"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// Account represents a row in chart-of-accounts.csv. Type may be empty, in
// which case the account is classified from its name.
type Account struct {
	Name        string
	Type        AccountType
	Description string
}
