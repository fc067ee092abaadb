package steps

import "github.com/cleared-dev/ledgerlab/internal/scoring"

// Numeric fields are kept as the raw strings the student typed.

// AnalysisAnswers is the transaction analysis table (step 1).
type AnalysisAnswers struct {
	Transactions []AnalysisEntry `json:"transactions"`
}

// AnalysisEntry analyzes one transaction.
type AnalysisEntry struct {
	ID    string         `json:"id,omitempty"`
	Lines []AnalysisLine `json:"lines"`
}

// AnalysisLine is one account affected by a transaction.
type AnalysisLine struct {
	Account string `json:"account"`
	Type    string `json:"type"`
	Effect  string `json:"effect"`
	Amount  string `json:"amount"`
}

func (l AnalysisLine) filled() bool {
	return !blank(l.Account, l.Type, l.Effect, l.Amount)
}

// JournalAnswers is the general journal (step 2).
type JournalAnswers struct {
	Entries []JournalEntry `json:"entries"`
}

// JournalEntry is one compound journal entry.
type JournalEntry struct {
	Date        string        `json:"date"`
	Description string        `json:"description,omitempty"`
	Lines       []JournalLine `json:"lines"`
}

func (e JournalEntry) filled() bool {
	if !blank(e.Date) {
		return true
	}
	for _, l := range e.Lines {
		if l.filled() {
			return true
		}
	}
	return false
}

// JournalLine is one debit or credit line.
type JournalLine struct {
	Account string `json:"account"`
	Dr      string `json:"dr"`
	Cr      string `json:"cr"`
}

func (l JournalLine) filled() bool {
	return !blank(l.Account, l.Dr, l.Cr)
}

// LedgerAnswers are the T-accounts (step 3).
type LedgerAnswers struct {
	Accounts []TAccount `json:"accounts"`
}

// TAccount is one ledger account with its postings and ending balance.
type TAccount struct {
	Account string        `json:"account"`
	Rows    []TAccountRow `json:"rows"`
	Balance string        `json:"balance"`
}

func (a TAccount) filled() bool {
	if !blank(a.Account, a.Balance) {
		return true
	}
	for _, r := range a.Rows {
		if r.filled() {
			return true
		}
	}
	return false
}

// TAccountRow is one posting.
type TAccountRow struct {
	Date string `json:"date"`
	Dr   string `json:"dr"`
	Cr   string `json:"cr"`
}

func (r TAccountRow) filled() bool {
	return !blank(r.Date, r.Dr, r.Cr)
}

// TrialBalanceAnswers is a two-column trial balance (steps 4 and 9).
type TrialBalanceAnswers struct {
	Rows   []TrialBalanceRow `json:"rows"`
	Totals DrCrCells         `json:"totals"`
}

// TrialBalanceRow is one account line.
type TrialBalanceRow struct {
	Account string `json:"account"`
	DrCrCells
}

func (r TrialBalanceRow) filled() bool {
	return !blank(r.Account, r.Dr, r.Cr)
}

// DrCrCells is a debit and credit pair.
type DrCrCells struct {
	Dr string `json:"dr"`
	Cr string `json:"cr"`
}

// PostClosingAnswers is the post-closing trial balance (step 9).
type PostClosingAnswers struct {
	TrialBalanceAnswers
}

// AdjustingAnswers are the adjusting entries (step 5).
type AdjustingAnswers struct {
	Entries []AdjustingEntry `json:"entries"`
}

// AdjustingEntry is a single-debit, single-credit entry.
type AdjustingEntry struct {
	Date   string `json:"date"`
	DrAcc  string `json:"drAcc"`
	CrAcc  string `json:"crAcc"`
	Amount string `json:"amount"`
	Desc   string `json:"desc,omitempty"`
}

func (e AdjustingEntry) filled() bool {
	return !blank(e.Date, e.DrAcc, e.CrAcc, e.Amount)
}

// ReversingAnswers are the reversing entries (step 10).
type ReversingAnswers struct {
	Entries []AdjustingEntry `json:"entries"`
}

// WorksheetAnswers is the ten-column worksheet (step 6).
type WorksheetAnswers struct {
	Rows    []WorksheetRow   `json:"rows"`
	Footers WorksheetFooters `json:"footers"`
}

// WorksheetRow is one account line of the worksheet.
type WorksheetRow struct {
	Account string `json:"account"`
	WorksheetCells
}

// WorksheetCells holds one entry per worksheet column.
type WorksheetCells struct {
	TBDr  string `json:"tbDr"`
	TBCr  string `json:"tbCr"`
	AdjDr string `json:"adjDr"`
	AdjCr string `json:"adjCr"`
	ATBDr string `json:"atbDr"`
	ATBCr string `json:"atbCr"`
	ISDr  string `json:"isDr"`
	ISCr  string `json:"isCr"`
	BSDr  string `json:"bsDr"`
	BSCr  string `json:"bsCr"`
}

// Get returns the cell named by a worksheet column key.
func (c WorksheetCells) Get(column string) string {
	switch column {
	case "tbDr":
		return c.TBDr
	case "tbCr":
		return c.TBCr
	case "adjDr":
		return c.AdjDr
	case "adjCr":
		return c.AdjCr
	case "atbDr":
		return c.ATBDr
	case "atbCr":
		return c.ATBCr
	case "isDr":
		return c.ISDr
	case "isCr":
		return c.ISCr
	case "bsDr":
		return c.BSDr
	case "bsCr":
		return c.BSCr
	}
	return ""
}

func (c WorksheetCells) filled() bool {
	return !blank(c.TBDr, c.TBCr, c.AdjDr, c.AdjCr, c.ATBDr, c.ATBCr, c.ISDr, c.ISCr, c.BSDr, c.BSCr)
}

// WorksheetFooters are the three footer rows.
type WorksheetFooters struct {
	Totals    WorksheetCells `json:"totals"`
	NetIncome WorksheetCells `json:"netIncome"`
	Final     WorksheetCells `json:"final"`
}

// StatementAnswers are the financial statements (step 7).
type StatementAnswers struct {
	Income    IncomeAnswers   `json:"incomeStatement"`
	Capital   CapitalAnswers  `json:"capitalStatement"`
	Balance   BalanceAnswers  `json:"balanceSheet"`
	CashFlows CashFlowAnswers `json:"cashFlows"`
}

// LineItem is a labeled amount.
type LineItem struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

func (l LineItem) filled() bool { return !blank(l.Label, l.Amount) }

// IncomeAnswers is the income statement.
type IncomeAnswers struct {
	Revenues        []LineItem `json:"revenues"`
	TotalRevenues   string     `json:"totalRevenues"`
	CostOfSales     []LineItem `json:"costOfSales"`
	CostOfGoodsSold string     `json:"costOfGoodsSold"`
	GrossIncome     string     `json:"grossIncome"`
	Expenses        []LineItem `json:"expenses"`
	TotalExpenses   string     `json:"totalExpenses"`
	NetIncome       string     `json:"netIncome"`
}

// CapitalAnswers is the statement of changes in capital.
type CapitalAnswers struct {
	Beginning   string `json:"beginning"`
	Investments string `json:"investments"`
	NetIncome   string `json:"netIncome"`
	Drawings    string `json:"drawings"`
	Ending      string `json:"ending"`
}

// AssetItem is an asset with an optional contra deduction.
type AssetItem struct {
	Label        string `json:"label"`
	Amount       string `json:"amount"`
	Contra       string `json:"contra"`
	ContraAmount string `json:"contraAmount"`
	Net          string `json:"net"`
}

func (a AssetItem) filled() bool {
	return !blank(a.Label, a.Amount, a.Contra, a.ContraAmount, a.Net)
}

// BalanceAnswers is the balance sheet.
type BalanceAnswers struct {
	CurrentAssets              []AssetItem `json:"currentAssets"`
	TotalCurrentAssets         string      `json:"totalCurrentAssets"`
	NonCurrentAssets           []AssetItem `json:"nonCurrentAssets"`
	TotalNonCurrentAssets      string      `json:"totalNonCurrentAssets"`
	TotalAssets                string      `json:"totalAssets"`
	CurrentLiabilities         []LineItem  `json:"currentLiabilities"`
	TotalCurrentLiabilities    string      `json:"totalCurrentLiabilities"`
	NonCurrentLiabilities      []LineItem  `json:"nonCurrentLiabilities"`
	TotalNonCurrentLiabilities string      `json:"totalNonCurrentLiabilities"`
	TotalLiabilities           string      `json:"totalLiabilities"`
	EndingCapital              string      `json:"endingCapital"`
	TotalLiabilitiesAndEquity  string      `json:"totalLiabilitiesAndEquity"`
}

// CashFlowAnswers are the statement of cash flows subtotals.
type CashFlowAnswers struct {
	NetOperating string `json:"netOperating"`
	NetInvesting string `json:"netInvesting"`
	NetFinancing string `json:"netFinancing"`
	NetChange    string `json:"netChange"`
	Beginning    string `json:"beginningCash"`
	Ending       string `json:"endingCash"`
}

// ClosingAnswers are the closing entries (step 8), in posting order.
type ClosingAnswers struct {
	Entries []JournalEntry `json:"entries"`
}

func (AnalysisAnswers) Step() Step     { return StepAnalysis }
func (JournalAnswers) Step() Step      { return StepJournal }
func (LedgerAnswers) Step() Step       { return StepLedger }
func (TrialBalanceAnswers) Step() Step { return StepTrialBalance }
func (AdjustingAnswers) Step() Step    { return StepAdjusting }
func (WorksheetAnswers) Step() Step    { return StepWorksheet }
func (StatementAnswers) Step() Step    { return StepStatements }
func (ClosingAnswers) Step() Step      { return StepClosing }
func (PostClosingAnswers) Step() Step  { return StepPostClosing }
func (ReversingAnswers) Step() Step    { return StepReversing }

func blank(values ...string) bool {
	for _, v := range values {
		if !scoring.IsBlank(v) {
			return false
		}
	}
	return true
}
