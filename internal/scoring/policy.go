// Package scoring compares user-entered answers with expected values and
// folds the comparisons into a partial-credit score and letter grade.
package scoring

import "github.com/shopspring/decimal"

// Grade is a letter grade.
type Grade string

const (
	GradeA  Grade = "A"
	GradeP  Grade = "P"
	GradeD  Grade = "D"
	GradeIR Grade = "IR"
)

// Thresholds are the minimum percentages for each passing grade.
type Thresholds struct {
	A int `yaml:"a" json:"a"`
	P int `yaml:"p" json:"p"`
	D int `yaml:"d" json:"d"`
}

// Policy holds the grading knobs shared by every step.
type Policy struct {
	// Tolerance is the absolute difference accepted between a user value
	// and the expected value.
	Tolerance decimal.Decimal
	// ZeroEpsilon is the magnitude below which an expected value counts as
	// zero, so that a blank answer is accepted.
	ZeroEpsilon decimal.Decimal
	// Points is the score value of one field.
	Points int
	// SpuriousPenalty is subtracted once per spurious user row.
	SpuriousPenalty int
	Thresholds      Thresholds
}

// DefaultPolicy returns the standard grading policy: tolerance 1, one point
// per field, one point per spurious row, A/P/D at 95/85/75 percent.
func DefaultPolicy() Policy {
	return Policy{
		Tolerance:       decimal.NewFromInt(1),
		ZeroEpsilon:     decimal.RequireFromString("0.005"),
		Points:          1,
		SpuriousPenalty: 1,
		Thresholds:      Thresholds{A: 95, P: 85, D: 75},
	}
}

// normalized replaces invalid knobs with DefaultPolicy values: a negative
// tolerance or penalty, a zero epsilon, fewer than one point per field, or
// unset thresholds. A zero tolerance or penalty is kept and means exact
// grading or no penalty.
func (p Policy) normalized() Policy {
	def := DefaultPolicy()
	if p.Tolerance.IsNegative() {
		p.Tolerance = def.Tolerance
	}
	if p.ZeroEpsilon.IsZero() {
		p.ZeroEpsilon = def.ZeroEpsilon
	}
	if p.Points <= 0 {
		p.Points = def.Points
	}
	if p.SpuriousPenalty < 0 {
		p.SpuriousPenalty = def.SpuriousPenalty
	}
	if p.Thresholds == (Thresholds{}) {
		p.Thresholds = def.Thresholds
	}
	return p
}

// Grade maps score out of maxScore to a letter using the policy thresholds.
// A maxScore of zero is always IR.
func (p Policy) Grade(score, maxScore int) Grade {
	if maxScore <= 0 {
		return GradeIR
	}
	th := p.normalized().Thresholds
	pct := score * 100
	switch {
	case pct >= th.A*maxScore:
		return GradeA
	case pct >= th.P*maxScore:
		return GradeP
	case pct >= th.D*maxScore:
		return GradeD
	}
	return GradeIR
}

// LetterGrade maps score out of maxScore with the default thresholds.
func LetterGrade(score, maxScore int) Grade {
	return DefaultPolicy().Grade(score, maxScore)
}
