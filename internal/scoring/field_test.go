package scoring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestToleranceBoundary(t *testing.T) {
	one := decimal.NewFromInt(1)
	tests := []struct {
		user     string
		expected string
		want     bool
	}{
		{"100", "100.4", true},
		{"100", "102", false},
		{"", "0", true},
		{"", "50", false},
		{"0", "0", true},
		{"  ", "0.001", true},
		{"101", "100", true},
		{"101.01", "100", false},
		{"1,000", "1000", true},
		{"(500)", "-500", true},
		{"abc", "0", true},
		{"abc", "10", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckField(tt.user, d(tt.expected), one), "CheckField(%q, %s)", tt.user, tt.expected)
	}
}

func TestPolicyTolerance(t *testing.T) {
	p := DefaultPolicy()
	p.Tolerance = decimal.Zero
	assert.False(t, p.CheckField("100", d("100.4")))
	assert.True(t, p.CheckField("100.40", d("100.4")))
}

func TestPolicyNormalized(t *testing.T) {
	def := DefaultPolicy()

	zero := Policy{}.normalized()
	assert.True(t, zero.Tolerance.IsZero(), "zero tolerance means exact grading")
	assert.Equal(t, 0, zero.SpuriousPenalty)
	assert.True(t, def.ZeroEpsilon.Equal(zero.ZeroEpsilon))
	assert.Equal(t, def.Points, zero.Points)
	assert.Equal(t, def.Thresholds, zero.Thresholds)
	assert.False(t, Policy{}.CheckField("100", d("100.4")))

	negative := Policy{Tolerance: d("-1"), SpuriousPenalty: -2}.normalized()
	assert.True(t, def.Tolerance.Equal(negative.Tolerance))
	assert.Equal(t, def.SpuriousPenalty, negative.SpuriousPenalty)
}

func TestCheckAbs(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.CheckAbs("(1,000)", d("1000")))
	assert.True(t, p.CheckAbs("1000", d("-1000")))
	assert.False(t, p.CheckAbs("", d("1000")))
	assert.True(t, p.CheckAbs("", decimal.Zero))
}

func TestParseUserValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"(123)", "-123"},
		{"-123", "-123"},
		{"1,234.50", "1234.5"},
		{"$ 2,000", "2000"},
		{"₱15,000.00", "15000"},
		{"(-5)", "5"},
		{"", "0"},
		{"twelve", "0"},
		{"12abc", "0"},
	}
	for _, tt := range tests {
		got := ParseUserValue(tt.in)
		assert.True(t, got.Equal(d(tt.want)), "ParseUserValue(%q) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestMatchDate(t *testing.T) {
	want := model.NewDate(2025, time.December, 31)
	tests := []struct {
		in string
		ok bool
	}{
		{"2025-12-31", true},
		{"12/31/2025", true},
		{"12/31/25", true},
		{"Dec 31, 2025", true},
		{"Dec 31", true},
		{"December 31", true},
		{"12/31", true},
		{"31", true},
		{" 31 ", true},
		{"2024-12-31", false},
		{"Dec 30", false},
		{"30", false},
		{"", false},
		{"soon", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, MatchDate(tt.in, want), tt.in)
	}
	assert.False(t, MatchDate("31", model.Date{}))
}

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		score, max int
		want       Grade
	}{
		{95, 100, GradeA},
		{19, 20, GradeA},
		{94, 100, GradeP},
		{85, 100, GradeP},
		{84, 100, GradeD},
		{75, 100, GradeD},
		{74, 100, GradeIR},
		{0, 10, GradeIR},
		{0, 0, GradeIR},
		{5, 0, GradeIR},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGrade(tt.score, tt.max), "%d/%d", tt.score, tt.max)
	}
}

func TestCustomThresholds(t *testing.T) {
	p := DefaultPolicy()
	p.Thresholds = Thresholds{A: 90, P: 80, D: 70}
	assert.Equal(t, GradeA, p.Grade(9, 10))
	assert.Equal(t, GradeD, p.Grade(7, 10))
}
