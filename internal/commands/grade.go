package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/gradelog"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/report"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
	"github.com/cleared-dev/ledgerlab/internal/steps"
)

// grader scores answer files for one step of a loaded activity.
type grader struct {
	data   model.ActivityData
	step   steps.Step
	policy scoring.Policy
}

func (g grader) gradeFile(path string) (scoring.ValidationResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scoring.ValidationResult{}, fmt.Errorf("reading answers: %w", err)
	}
	answers, err := steps.DecodeAnswers(g.step, raw)
	if err != nil {
		return scoring.ValidationResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return steps.Validate(g.data, answers, g.policy)
}

func (a *app) grader(stepArg string) (grader, error) {
	step, err := steps.ParseStep(stepArg)
	if err != nil {
		return grader{}, err
	}
	data, err := a.activity()
	if err != nil {
		return grader{}, err
	}
	return grader{data: data, step: step, policy: a.cfg.Policy()}, nil
}

// studentName derives a student identifier from an answers file name.
func studentName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// record appends graded results to the grade log when it is enabled.
func (a *app) record(runID uuid.UUID, results []report.Scored) error {
	if !a.cfg.GradeLog.Enabled {
		return nil
	}
	now := time.Now().UTC()
	var entries []gradelog.Entry
	for _, s := range results {
		if s.Err != nil {
			continue
		}
		entries = append(entries, gradelog.Entry{
			Timestamp: now,
			RunID:     runID,
			Student:   s.Student,
			Step:      int(s.Step),
			Score:     s.Result.Score,
			MaxScore:  s.Result.MaxScore,
			Grade:     string(s.Result.LetterGrade),
		})
	}
	if len(entries) == 0 {
		return nil
	}
	dir := a.rel(a.cfg.GradeLog.Dir)
	if err := gradelog.Append(dir, entries); err != nil {
		return err
	}
	a.log.Debug("recorded grades", "run_id", runID, "entries", len(entries), "dir", dir)
	return nil
}

func printResult(w io.Writer, format string, step steps.Step, res scoring.ValidationResult) error {
	if format == formatJSON {
		return writeJSON(w, res)
	}
	return report.New(w).Result(fmt.Sprintf("Step %d: %s", int(step), step.Title()), res)
}

func newGradeCommand(a *app) *cobra.Command {
	var format, student string

	cmd := &cobra.Command{
		Use:   "grade <step> <answers.json>",
		Short: "Grade one answers file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			g, err := a.grader(args[0])
			if err != nil {
				return err
			}
			res, err := g.gradeFile(args[1])
			if err != nil {
				return err
			}
			if student == "" {
				student = studentName(args[1])
			}
			a.log.Info("graded", "student", student, "step", g.step.String(), "score", res.Score, "max", res.MaxScore, "grade", res.LetterGrade)

			if err := a.record(uuid.New(), []report.Scored{{Student: student, Step: g.step, Result: res}}); err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), format, g.step, res)
		},
	}
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVar(&student, "student", "", "student name for the grade log (default: answers file name)")

	return cmd
}
