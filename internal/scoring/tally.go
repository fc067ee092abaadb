package scoring

import "github.com/shopspring/decimal"

// Outcome is the result of one comparison.
type Outcome struct {
	ScoreDelta int
	MaxDelta   int
	Key        string
	OK         bool
}

// ValidationResult is the graded outcome of one step.
type ValidationResult struct {
	Score       int             `json:"score"`
	MaxScore    int             `json:"maxScore"`
	LetterGrade Grade           `json:"letterGrade"`
	IsCorrect   bool            `json:"isCorrect"`
	FieldStatus map[string]bool `json:"fieldStatus"`
	RowFeedback any             `json:"rowFeedback,omitempty"`
	Expected    any             `json:"expected,omitempty"`
}

// Tally folds comparison outcomes into a score. The zero value is not
// usable; call NewTally.
type Tally struct {
	policy   Policy
	score    int
	max      int
	spurious int
	fields   map[string]bool
}

// NewTally returns an empty Tally that scores with p.
func NewTally(p Policy) *Tally {
	return &Tally{policy: p.normalized(), fields: make(map[string]bool)}
}

// Policy returns the tally's grading policy.
func (t *Tally) Policy() Policy { return t.policy }

// Add folds one outcome. An outcome with an empty key only moves the score.
func (t *Tally) Add(o Outcome) {
	t.score += o.ScoreDelta
	t.max += o.MaxDelta
	if o.Key != "" {
		t.fields[o.Key] = o.OK
	}
}

// Field records a scored field worth one policy point and returns ok.
func (t *Tally) Field(key string, ok bool) bool {
	o := Outcome{MaxDelta: t.policy.Points, Key: key, OK: ok}
	if ok {
		o.ScoreDelta = t.policy.Points
	}
	t.Add(o)
	return ok
}

// Amount scores a numeric field.
func (t *Tally) Amount(key, user string, expected decimal.Decimal) bool {
	return t.Field(key, t.policy.CheckField(user, expected))
}

// Mark records a field status without scoring it.
func (t *Tally) Mark(key string, ok bool) {
	t.fields[key] = ok
}

// Spurious records a user row that matched nothing. Its key is marked
// incorrect and the penalty is applied when the result is built.
func (t *Tally) Spurious(key string) {
	t.spurious++
	if key != "" {
		t.fields[key] = false
	}
}

// Score returns the running score before penalties.
func (t *Tally) Score() int { return t.score }

// MaxScore returns the running maximum.
func (t *Tally) MaxScore() int { return t.max }

// Result applies the spurious-row penalty once, floors the score at zero
// and grades it.
func (t *Tally) Result(expected, rowFeedback any) ValidationResult {
	score := t.score - t.spurious*t.policy.SpuriousPenalty
	if score < 0 {
		score = 0
	}
	fields := make(map[string]bool, len(t.fields))
	for k, v := range t.fields {
		fields[k] = v
	}
	return ValidationResult{
		Score:       score,
		MaxScore:    t.max,
		LetterGrade: t.policy.Grade(score, t.max),
		IsCorrect:   t.max > 0 && score == t.max && t.spurious == 0,
		FieldStatus: fields,
		RowFeedback: rowFeedback,
		Expected:    expected,
	}
}

// Missing records an expected item the user never entered. Every field of
// the item counts toward the maximum.
func (t *Tally) Missing(key string, fields int) {
	t.Add(Outcome{MaxDelta: fields * t.policy.Points, Key: key, OK: false})
}
