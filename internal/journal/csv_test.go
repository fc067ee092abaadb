package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func date(y, m, d int) model.Date {
	return model.NewDate(y, time.Month(m), d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundTrip(t *testing.T) {
	legs := []model.Leg{
		{EntryID: "T1a", Date: date(2025, 1, 3), Account: "Cash", Description: "Owner investment", Debit: dec("50000.00")},
		{EntryID: "T1b", Date: date(2025, 1, 3), Account: "Owner's Capital", Description: "Owner investment", Credit: dec("50000.00")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLegs(&buf, legs))
	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))

	got, err := ReadLegs(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range legs {
		assert.Equal(t, legs[i].EntryID, got[i].EntryID)
		assert.Equal(t, legs[i].Date, got[i].Date)
		assert.Equal(t, legs[i].Account, got[i].Account)
		assert.True(t, legs[i].Debit.Equal(got[i].Debit))
		assert.True(t, legs[i].Credit.Equal(got[i].Credit))
	}
}

func TestMarshalLeg_BlankZeroSide(t *testing.T) {
	row := MarshalLeg(model.Leg{EntryID: "T1a", Date: date(2025, 1, 3), Account: "Cash", Debit: dec("12.5")})
	assert.Equal(t, []string{"T1a", "2025-01-03", "Cash", "", "12.50", ""}, row)
}

func TestUnmarshalLeg_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"short", []string{"T1a", "2025-01-03"}},
		{"bad date", []string{"T1a", "01/03/2025", "Cash", "", "1", ""}},
		{"no account", []string{"T1a", "2025-01-03", " ", "", "1", ""}},
		{"bad debit", []string{"T1a", "2025-01-03", "Cash", "", "abc", ""}},
		{"bad credit", []string{"T1a", "2025-01-03", "Cash", "", "", "1,000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLeg(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestReadLegs_Empty(t *testing.T) {
	legs, err := ReadLegs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, legs)

	legs, err = ReadLegs(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, legs)
}

func TestReadLegs_ReportsRow(t *testing.T) {
	input := Header + "\nT1a,2025-01-03,Cash,,x,\n"
	_, err := ReadLegs(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}
