// Package steps validates a student's answers for each of the ten steps of
// the accounting cycle against the answer key derived from the activity.
package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// ErrUnknownStep is returned for a step number outside 1..10.
var ErrUnknownStep = errors.New("unknown step")

// Step identifies a step of the accounting cycle.
type Step int

const (
	StepAnalysis Step = iota + 1
	StepJournal
	StepLedger
	StepTrialBalance
	StepAdjusting
	StepWorksheet
	StepStatements
	StepClosing
	StepPostClosing
	StepReversing
)

// All lists every step in cycle order.
var All = []Step{
	StepAnalysis, StepJournal, StepLedger, StepTrialBalance, StepAdjusting,
	StepWorksheet, StepStatements, StepClosing, StepPostClosing, StepReversing,
}

var stepNames = map[Step]string{
	StepAnalysis:     "analysis",
	StepJournal:      "journal",
	StepLedger:       "ledger",
	StepTrialBalance: "trial-balance",
	StepAdjusting:    "adjusting",
	StepWorksheet:    "worksheet",
	StepStatements:   "statements",
	StepClosing:      "closing",
	StepPostClosing:  "post-closing",
	StepReversing:    "reversing",
}

var stepTitles = map[Step]string{
	StepAnalysis:     "Transaction Analysis",
	StepJournal:      "Journal Entries",
	StepLedger:       "Posting to the Ledger",
	StepTrialBalance: "Unadjusted Trial Balance",
	StepAdjusting:    "Adjusting Entries",
	StepWorksheet:    "Worksheet",
	StepStatements:   "Financial Statements",
	StepClosing:      "Closing Entries",
	StepPostClosing:  "Post-Closing Trial Balance",
	StepReversing:    "Reversing Entries",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return "step" + strconv.Itoa(int(s))
}

// Title returns the display title of the step.
func (s Step) Title() string {
	return stepTitles[s]
}

// Valid reports whether s is one of the ten steps.
func (s Step) Valid() bool {
	_, ok := stepNames[s]
	return ok
}

// ParseStep accepts a step number ("4") or name ("trial-balance").
func ParseStep(s string) (Step, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if st := Step(n); st.Valid() {
			return st, nil
		}
		return 0, fmt.Errorf("step %d: %w", n, ErrUnknownStep)
	}
	for st, name := range stepNames {
		if name == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("step %q: %w", s, ErrUnknownStep)
}

// StepAnswers is a student's submission for one step. Each step has its
// own record type.
type StepAnswers interface {
	Step() Step
}

// NewAnswers returns an empty answer record for step.
func NewAnswers(step Step) (StepAnswers, error) {
	switch step {
	case StepAnalysis:
		return &AnalysisAnswers{}, nil
	case StepJournal:
		return &JournalAnswers{}, nil
	case StepLedger:
		return &LedgerAnswers{}, nil
	case StepTrialBalance:
		return &TrialBalanceAnswers{}, nil
	case StepAdjusting:
		return &AdjustingAnswers{}, nil
	case StepWorksheet:
		return &WorksheetAnswers{}, nil
	case StepStatements:
		return &StatementAnswers{}, nil
	case StepClosing:
		return &ClosingAnswers{}, nil
	case StepPostClosing:
		return &PostClosingAnswers{}, nil
	case StepReversing:
		return &ReversingAnswers{}, nil
	}
	return nil, fmt.Errorf("step %d: %w", int(step), ErrUnknownStep)
}

// DecodeAnswers decodes a step's JSON submission. Empty input decodes to an
// empty submission.
func DecodeAnswers(step Step, data []byte) (StepAnswers, error) {
	answers, err := NewAnswers(step)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return answers, nil
	}
	if err := json.Unmarshal(data, answers); err != nil {
		return nil, fmt.Errorf("decoding %s answers: %w", step, err)
	}
	return answers, nil
}

// Validate grades answers against the key derived from data. It never fails
// on bad user input; only a nil or foreign answers type is an error.
func Validate(data model.ActivityData, answers StepAnswers, policy scoring.Policy) (scoring.ValidationResult, error) {
	if answers == nil {
		return scoring.ValidationResult{}, fmt.Errorf("nil answers: %w", ErrUnknownStep)
	}
	book := ledger.NewBook(data)
	switch a := addressable(answers).(type) {
	case *AnalysisAnswers:
		return ValidateAnalysis(book, *a, policy), nil
	case *JournalAnswers:
		return ValidateJournal(book, *a, policy), nil
	case *LedgerAnswers:
		return ValidateLedger(book, *a, policy), nil
	case *TrialBalanceAnswers:
		return ValidateTrialBalance(book, *a, policy), nil
	case *AdjustingAnswers:
		return ValidateAdjusting(book, *a, policy), nil
	case *WorksheetAnswers:
		return ValidateWorksheet(book, *a, policy), nil
	case *StatementAnswers:
		return ValidateStatements(book, *a, policy), nil
	case *ClosingAnswers:
		return ValidateClosing(book, *a, policy), nil
	case *PostClosingAnswers:
		return ValidatePostClosing(book, *a, policy), nil
	case *ReversingAnswers:
		return ValidateReversing(book, *a, policy), nil
	}
	return scoring.ValidationResult{}, fmt.Errorf("answers of type %T: %w", answers, ErrUnknownStep)
}

// addressable returns value records as pointers so both forms validate.
func addressable(answers StepAnswers) StepAnswers {
	switch a := answers.(type) {
	case AnalysisAnswers:
		return &a
	case JournalAnswers:
		return &a
	case LedgerAnswers:
		return &a
	case TrialBalanceAnswers:
		return &a
	case AdjustingAnswers:
		return &a
	case WorksheetAnswers:
		return &a
	case StatementAnswers:
		return &a
	case ClosingAnswers:
		return &a
	case PostClosingAnswers:
		return &a
	case ReversingAnswers:
		return &a
	}
	return answers
}

// Key returns the expected-value snapshot of step, the same value a
// ValidationResult carries in Expected.
func Key(data model.ActivityData, step Step) (any, error) {
	book := ledger.NewBook(data)
	switch step {
	case StepAnalysis:
		return analysisKey(book), nil
	case StepJournal:
		return journalKey(book), nil
	case StepLedger:
		return ledgerKey(book), nil
	case StepTrialBalance:
		return trialBalanceKey(book, ledger.Unadjusted), nil
	case StepAdjusting:
		return adjustingKey(book), nil
	case StepWorksheet:
		return worksheetKey(book), nil
	case StepStatements:
		return statementsKey(book), nil
	case StepClosing:
		return closingKey(book), nil
	case StepPostClosing:
		return trialBalanceKey(book, ledger.PostClosing), nil
	case StepReversing:
		return reversingKey(book), nil
	}
	return nil, fmt.Errorf("step %d: %w", int(step), ErrUnknownStep)
}

func key(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, ".")
}
