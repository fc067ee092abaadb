package report

import (
	"strconv"

	"github.com/cleared-dev/ledgerlab/internal/scoring"
	"github.com/cleared-dev/ledgerlab/internal/steps"
)

// Scored is one graded submission of a batch run. Err is set when the
// submission could not be graded.
type Scored struct {
	Student string
	Step    steps.Step
	Result  scoring.ValidationResult
	Err     error
}

// Batch prints one row per submission.
func (r *Renderer) Batch(results []Scored) error {
	rows := make([][]string, 0, len(results))
	for _, s := range results {
		if s.Err != nil {
			rows = append(rows, []string{s.Student, strconv.Itoa(int(s.Step)), "", "", errorStyle.Render(s.Err.Error())})
			continue
		}
		g := s.Result.LetterGrade
		rows = append(rows, []string{
			s.Student,
			strconv.Itoa(int(s.Step)),
			strconv.Itoa(s.Result.Score),
			strconv.Itoa(s.Result.MaxScore),
			gradeStyle(g).Render(string(g)),
		})
	}
	return r.table([]string{"Student", "Step", "Score", "Max", "Grade"}, rows, 1, 2, 3)
}
