// Package report renders grading results and answer keys for the terminal.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD75F"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numStyle     = cellStyle.Align(lipgloss.Right)
)

// Renderer writes styled output to w.
type Renderer struct {
	w io.Writer
	p *message.Printer
}

// New returns a Renderer that formats amounts with English digit grouping.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, p: message.NewPrinter(language.English)}
}

// Amount formats d with thousands separators and two decimals. Negative
// amounts are shown in parentheses and zero is blank.
func (r *Renderer) Amount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		s = r.p.Sprintf("%d", n) + "." + frac
	}
	if d.IsNegative() {
		return "(" + s + ")"
	}
	return s
}

// Result prints a score summary followed by every field that was marked
// wrong.
func (r *Renderer) Result(title string, res scoring.ValidationResult) error {
	grade := gradeStyle(res.LetterGrade).Render(string(res.LetterGrade))
	if _, err := fmt.Fprintf(r.w, "%s  %d/%d  %s\n", titleStyle.Render(title), res.Score, res.MaxScore, grade); err != nil {
		return err
	}

	var wrong []string
	for k, ok := range res.FieldStatus {
		if !ok {
			wrong = append(wrong, k)
		}
	}
	sort.Strings(wrong)
	right := len(res.FieldStatus) - len(wrong)

	if res.IsCorrect {
		_, err := fmt.Fprintf(r.w, "%s all %d fields correct\n", successStyle.Render(successSymbol), right)
		return err
	}
	if _, err := fmt.Fprintf(r.w, "%s %d correct  %s %d wrong\n",
		successStyle.Render(successSymbol), right,
		errorStyle.Render(errorSymbol), len(wrong)); err != nil {
		return err
	}
	for _, k := range wrong {
		if _, err := fmt.Fprintf(r.w, "  %s %s\n", errorStyle.Render(errorSymbol), k); err != nil {
			return err
		}
	}
	return nil
}

// Info prints an informational line.
func (r *Renderer) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", infoStyle.Render(infoSymbol), fmt.Sprintf(format, args...))
}

// Error prints an error line.
func (r *Renderer) Error(message string) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", errorStyle.Render(errorSymbol), errorStyle.Render(message))
}

func gradeStyle(g scoring.Grade) lipgloss.Style {
	switch g {
	case scoring.GradeA, scoring.GradeP:
		return successStyle.Bold(true)
	case scoring.GradeD:
		return warnStyle.Bold(true)
	}
	return errorStyle.Bold(true)
}
