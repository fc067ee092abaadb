package statements

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// AssetLine is an asset with its paired contra account, if any. Net is
// Amount less ContraAmount.
type AssetLine struct {
	Label        string          `json:"label"`
	Amount       decimal.Decimal `json:"amount"`
	Contra       string          `json:"contra,omitempty"`
	ContraAmount decimal.Decimal `json:"contraAmount"`
	Net          decimal.Decimal `json:"net"`
}

// BalanceSheet is the statement of financial position at period end.
type BalanceSheet struct {
	CurrentAssets              []AssetLine     `json:"currentAssets"`
	TotalCurrentAssets         decimal.Decimal `json:"totalCurrentAssets"`
	NonCurrentAssets           []AssetLine     `json:"nonCurrentAssets"`
	TotalNonCurrentAssets      decimal.Decimal `json:"totalNonCurrentAssets"`
	TotalAssets                decimal.Decimal `json:"totalAssets"`
	CurrentLiabilities         []Line          `json:"currentLiabilities"`
	TotalCurrentLiabilities    decimal.Decimal `json:"totalCurrentLiabilities"`
	NonCurrentLiabilities      []Line          `json:"nonCurrentLiabilities"`
	TotalNonCurrentLiabilities decimal.Decimal `json:"totalNonCurrentLiabilities"`
	TotalLiabilities           decimal.Decimal `json:"totalLiabilities"`
	CapitalAccount             string          `json:"capitalAccount"`
	EndingCapital              decimal.Decimal `json:"endingCapital"`
	TotalLiabilitiesAndEquity  decimal.Decimal `json:"totalLiabilitiesAndEquity"`
}

// Assets returns current then non-current asset lines.
func (b BalanceSheet) Assets() []AssetLine {
	out := make([]AssetLine, 0, len(b.CurrentAssets)+len(b.NonCurrentAssets))
	out = append(out, b.CurrentAssets...)
	return append(out, b.NonCurrentAssets...)
}

// Liabilities returns current then non-current liability lines.
func (b BalanceSheet) Liabilities() []Line {
	out := make([]Line, 0, len(b.CurrentLiabilities)+len(b.NonCurrentLiabilities))
	out = append(out, b.CurrentLiabilities...)
	return append(out, b.NonCurrentLiabilities...)
}

func deriveBalance(book *ledger.Book, endingCapital decimal.Decimal) BalanceSheet {
	bs := BalanceSheet{
		CapitalAccount: book.CapitalAccount(),
		EndingCapital:  endingCapital,
	}

	var contras []Line
	for _, name := range book.Accounts() {
		bal := book.Balance(name, ledger.Adjusted)
		if bal.IsZero() {
			continue
		}
		switch accounts.Classify(name) {
		case model.AccountTypeAsset:
			if accounts.IsContraAsset(name) {
				contras = append(contras, Line{Label: name, Amount: bal.Net().Neg()})
				continue
			}
			line := AssetLine{Label: name, Amount: bal.Net()}
			if accounts.IsCurrentAsset(name) {
				bs.CurrentAssets = append(bs.CurrentAssets, line)
			} else {
				bs.NonCurrentAssets = append(bs.NonCurrentAssets, line)
			}
		case model.AccountTypeLiability:
			line := Line{Label: name, Amount: bal.Net().Neg()}
			if accounts.IsNonCurrentLiability(name) {
				bs.NonCurrentLiabilities = append(bs.NonCurrentLiabilities, line)
			} else {
				bs.CurrentLiabilities = append(bs.CurrentLiabilities, line)
			}
		}
	}

	for _, c := range contras {
		if pairContra(bs.CurrentAssets, c) || pairContra(bs.NonCurrentAssets, c) {
			continue
		}
		// An unpaired contra account is listed on its own as a reduction.
		bs.NonCurrentAssets = append(bs.NonCurrentAssets, AssetLine{Label: c.Label, Amount: c.Amount.Neg()})
	}
	finishAssetLines(bs.CurrentAssets)
	finishAssetLines(bs.NonCurrentAssets)

	bs.TotalCurrentAssets = sumNet(bs.CurrentAssets)
	bs.TotalNonCurrentAssets = sumNet(bs.NonCurrentAssets)
	bs.TotalAssets = bs.TotalCurrentAssets.Add(bs.TotalNonCurrentAssets)
	bs.TotalCurrentLiabilities = sum(bs.CurrentLiabilities)
	bs.TotalNonCurrentLiabilities = sum(bs.NonCurrentLiabilities)
	bs.TotalLiabilities = bs.TotalCurrentLiabilities.Add(bs.TotalNonCurrentLiabilities)
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(endingCapital)
	return bs
}

// pairContra attaches c to the first unpaired asset whose name contains the
// contra's base keyword.
func pairContra(lines []AssetLine, c Line) bool {
	base := accounts.ContraBase(c.Label)
	if base == "" {
		return false
	}
	for i := range lines {
		if lines[i].Contra != "" {
			continue
		}
		if strings.Contains(strings.ToLower(lines[i].Label), base) {
			lines[i].Contra = c.Label
			lines[i].ContraAmount = c.Amount
			return true
		}
	}
	return false
}

func finishAssetLines(lines []AssetLine) {
	for i := range lines {
		lines[i].Net = lines[i].Amount.Sub(lines[i].ContraAmount)
	}
}

func sumNet(lines []AssetLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Net)
	}
	return total
}
