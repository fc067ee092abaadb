package steps

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

func validate(t *testing.T, data model.ActivityData, answers StepAnswers) scoring.ValidationResult {
	t.Helper()
	res, err := Validate(data, answers, scoring.DefaultPolicy())
	require.NoError(t, err)
	return res
}

func TestEmptyAnswersEveryStep(t *testing.T) {
	for _, step := range All {
		t.Run(step.String(), func(t *testing.T) {
			answers, err := DecodeAnswers(step, []byte("{}"))
			require.NoError(t, err)
			assert.Equal(t, step, answers.Step())

			res := validate(t, activity(), answers)
			assert.Zero(t, res.Score)
			assert.Positive(t, res.MaxScore)
			assert.Equal(t, scoring.GradeIR, res.LetterGrade)
			assert.False(t, res.IsCorrect)
			assert.NotNil(t, res.FieldStatus)
		})
	}
}

func TestPerfectAnswersEveryStep(t *testing.T) {
	for _, step := range All {
		t.Run(step.String(), func(t *testing.T) {
			res := validate(t, activity(), perfect(activity(), step))
			assert.Equal(t, res.MaxScore, res.Score, "failing fields: %v", failing(res))
			assert.True(t, res.IsCorrect)
			assert.Equal(t, scoring.GradeA, res.LetterGrade)
		})
	}
}

func TestPerfectAnswersSurviveJSON(t *testing.T) {
	for _, step := range All {
		raw, err := json.Marshal(perfect(activity(), step))
		require.NoError(t, err)
		answers, err := DecodeAnswers(step, raw)
		require.NoError(t, err)
		assert.True(t, validate(t, activity(), answers).IsCorrect, step.String())
	}
}

func TestIdempotence(t *testing.T) {
	for _, step := range All {
		answers := perfect(activity(), step)
		first, err := json.Marshal(validate(t, activity(), answers))
		require.NoError(t, err)
		second, err := json.Marshal(validate(t, activity(), answers))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), step.String())
	}
}

func TestDecodeAnswers(t *testing.T) {
	answers, err := DecodeAnswers(StepTrialBalance, []byte(`{"rows":[{"account":"Cash","dr":"59,000"}],"totals":{"dr":"1","cr":"2"}}`))
	require.NoError(t, err)
	tb := answers.(*TrialBalanceAnswers)
	require.Len(t, tb.Rows, 1)
	assert.Equal(t, "59,000", tb.Rows[0].Dr)
	assert.Equal(t, "2", tb.Totals.Cr)

	answers, err = DecodeAnswers(StepPostClosing, []byte(`{"rows":[{"account":"Cash"}]}`))
	require.NoError(t, err)
	assert.Equal(t, StepPostClosing, answers.Step())
	assert.Len(t, answers.(*PostClosingAnswers).Rows, 1)

	answers, err = DecodeAnswers(StepJournal, nil)
	require.NoError(t, err)
	assert.Empty(t, answers.(*JournalAnswers).Entries)

	_, err = DecodeAnswers(StepJournal, []byte(`{"entries": 5}`))
	assert.Error(t, err)

	_, err = DecodeAnswers(Step(11), []byte("{}"))
	assert.True(t, errors.Is(err, ErrUnknownStep))
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		in   string
		want Step
		err  bool
	}{
		{"1", StepAnalysis, false},
		{"10", StepReversing, false},
		{"trial-balance", StepTrialBalance, false},
		{" Worksheet ", StepWorksheet, false},
		{"0", 0, true},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStep(tt.in)
		if tt.err {
			assert.ErrorIs(t, err, ErrUnknownStep, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "Worksheet", StepWorksheet.Title())
	assert.Equal(t, "step42", Step(42).String())
}

func TestValidateRejectsNil(t *testing.T) {
	_, err := Validate(activity(), nil, scoring.DefaultPolicy())
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestValidateValueRecords(t *testing.T) {
	data := activity()
	tests := []struct {
		name    string
		pointer StepAnswers
		value   StepAnswers
	}{
		{"journal", perfect(data, StepJournal), *perfect(data, StepJournal).(*JournalAnswers)},
		{"trial balance", perfect(data, StepTrialBalance), *perfect(data, StepTrialBalance).(*TrialBalanceAnswers)},
		{"post-closing", perfect(data, StepPostClosing), *perfect(data, StepPostClosing).(*PostClosingAnswers)},
		{"reversing", perfect(data, StepReversing), *perfect(data, StepReversing).(*ReversingAnswers)},
		{"empty statements", &StatementAnswers{}, StatementAnswers{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := validate(t, data, tt.pointer)
			got := validate(t, data, tt.value)
			assert.Equal(t, want, got)
		})
	}
}

func TestKeyEveryStep(t *testing.T) {
	for _, step := range All {
		k, err := Key(activity(), step)
		require.NoError(t, err)
		res := validate(t, activity(), perfect(activity(), step))
		a, _ := json.Marshal(k)
		b, _ := json.Marshal(res.Expected)
		assert.JSONEq(t, string(a), string(b), step.String())
	}
	_, err := Key(activity(), Step(0))
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func failing(res scoring.ValidationResult) []string {
	var out []string
	for k, ok := range res.FieldStatus {
		if !ok {
			out = append(out, k)
		}
	}
	return out
}
