package closing

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ReversingPrefix starts the description of every reversing entry.
const ReversingPrefix = "Reversing entry"

// Reversal is the expected reversing entry for one adjustment.
type Reversal struct {
	Adjustment model.Adjustment `json:"adjustment"`
	Entry      model.Adjustment `json:"entry"`
	Date       model.Date       `json:"date"`
}

// ShouldReverse reports whether adj is reversed on the first day of the next
// period. Accruals always are. Deferrals are only when first recorded in a
// nominal account (the expense or income method).
func ShouldReverse(adj model.Adjustment, cfg model.ActivityConfig) bool {
	cfg = cfg.WithDefaults()
	dr, cr := norm(adj.DrAcc), norm(adj.CrAcc)

	if strings.Contains(cr, "payable") && cr != "accounts payable" && cr != "notes payable" {
		return true
	}
	if strings.Contains(dr, "receivable") && dr != "accounts receivable" && dr != "notes receivable" {
		return true
	}
	if strings.Contains(norm(adj.Desc), "accrued") {
		return true
	}
	if cfg.DeferredExpenseMethod == model.DeferredExpenseExpense &&
		(strings.Contains(dr, "prepaid") || strings.Contains(dr, "supplies")) &&
		accounts.Classify(adj.DrAcc) == model.AccountTypeAsset {
		return true
	}
	if cfg.DeferredIncomeMethod == model.DeferredIncomeIncome &&
		(strings.Contains(cr, "unearned") || strings.Contains(cr, "advance")) {
		return true
	}
	return false
}

// ReversingEntries returns the reversals of every adjustment that
// ShouldReverse selects, dated the day after periodEnd, in adjustment
// order.
func ReversingEntries(adjustments []model.Adjustment, cfg model.ActivityConfig, periodEnd model.Date) []Reversal {
	date := periodEnd.NextDay()
	var out []Reversal
	for _, adj := range adjustments {
		if !ShouldReverse(adj, cfg) {
			continue
		}
		out = append(out, Reversal{
			Adjustment: adj,
			Entry:      Reverse(adj),
			Date:       date,
		})
	}
	return out
}

// Reverse swaps the debit and credit accounts of adj.
func Reverse(adj model.Adjustment) model.Adjustment {
	desc := ReversingPrefix
	if adj.Desc != "" {
		desc = fmt.Sprintf("%s: %s", ReversingPrefix, adj.Desc)
	}
	return model.Adjustment{
		ID:     adj.ID,
		Desc:   desc,
		DrAcc:  adj.CrAcc,
		CrAcc:  adj.DrAcc,
		Amount: adj.Amount,
	}
}

func norm(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
