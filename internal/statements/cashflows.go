package statements

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Activity is a cash flow classification.
type Activity string

const (
	Operating Activity = "operating"
	Investing Activity = "investing"
	Financing Activity = "financing"
)

// CashFlows is the direct-method statement of cash flows. Inflows are
// positive, outflows negative.
type CashFlows struct {
	Operating    []Line          `json:"operating"`
	NetOperating decimal.Decimal `json:"netOperating"`
	Investing    []Line          `json:"investing"`
	NetInvesting decimal.Decimal `json:"netInvesting"`
	Financing    []Line          `json:"financing"`
	NetFinancing decimal.Decimal `json:"netFinancing"`
	NetChange    decimal.Decimal `json:"netChange"`
	Beginning    decimal.Decimal `json:"beginningCash"`
	Ending       decimal.Decimal `json:"endingCash"`
}

func deriveCashFlows(book *ledger.Book) CashFlows {
	var cf CashFlows
	for _, txn := range book.Transactions() {
		net, counter := cashMovement(txn)
		if net.IsZero() {
			continue
		}
		label := txn.Description
		if label == "" && len(counter) > 0 {
			label = counter[0]
		}
		line := Line{Label: label, Amount: net}
		switch Classify(counter) {
		case Investing:
			cf.Investing = append(cf.Investing, line)
		case Financing:
			cf.Financing = append(cf.Financing, line)
		default:
			cf.Operating = append(cf.Operating, line)
		}
	}

	cf.NetOperating = sum(cf.Operating)
	cf.NetInvesting = sum(cf.Investing)
	cf.NetFinancing = sum(cf.Financing)
	cf.NetChange = cf.NetOperating.Add(cf.NetInvesting).Add(cf.NetFinancing)
	cf.Beginning = decimal.Zero
	for _, name := range book.Accounts() {
		if isCash(name) {
			cf.Beginning = cf.Beginning.Add(book.Opening(name).Net())
		}
	}
	cf.Ending = cf.Beginning.Add(cf.NetChange)
	return cf
}

// cashMovement returns the net cash effect of txn and the accounts on the
// opposite side of the cash lines.
func cashMovement(txn model.Transaction) (decimal.Decimal, []string) {
	net := decimal.Zero
	var inflowCounter, outflowCounter []string
	for _, l := range txn.Debits {
		if isCash(l.Account) {
			net = net.Add(l.Amount)
		} else {
			outflowCounter = append(outflowCounter, l.Account)
		}
	}
	for _, l := range txn.Credits {
		if isCash(l.Account) {
			net = net.Sub(l.Amount)
		} else {
			inflowCounter = append(inflowCounter, l.Account)
		}
	}
	if net.IsNegative() {
		return net, outflowCounter
	}
	return net, inflowCounter
}

// Classify returns the cash flow activity implied by the counter-accounts
// of a cash movement. Investing wins over financing, which wins over
// operating.
func Classify(counter []string) Activity {
	activity := Operating
	for _, name := range counter {
		switch {
		case isNonCurrentAsset(name):
			return Investing
		case isFinancing(name):
			activity = Financing
		}
	}
	return activity
}

func isCash(name string) bool {
	return strings.Contains(strings.ToLower(name), "cash") && accounts.Classify(name) == model.AccountTypeAsset
}

func isNonCurrentAsset(name string) bool {
	return accounts.Classify(name) == model.AccountTypeAsset &&
		!accounts.IsCurrentAsset(name) && !accounts.IsContraAsset(name)
}

func isFinancing(name string) bool {
	if accounts.IsCapital(name) || accounts.IsDrawing(name) || accounts.IsNonCurrentLiability(name) {
		return true
	}
	return strings.Contains(strings.ToLower(name), "notes payable")
}
