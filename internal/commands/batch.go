package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/ledgerlab/internal/report"
	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// batchRow is the JSON form of one batch result.
type batchRow struct {
	Student string                    `json:"student"`
	Step    int                       `json:"step"`
	Result  *scoring.ValidationResult `json:"result,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

// answerFiles expands directories into the .json files they contain.
func answerFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*.json"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}

// gradeAll grades files concurrently, at most jobs at a time. Results keep
// the order of files; a file that fails to grade carries its error.
func (g grader) gradeAll(ctx context.Context, files []string, jobs int) ([]report.Scored, error) {
	results := make([]report.Scored, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.gradeFile(f)
			results[i] = report.Scored{Student: studentName(f), Step: g.step, Result: res, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newBatchCommand(a *app) *cobra.Command {
	var format string
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch <step> <answers.json|dir>...",
		Short: "Grade many answers files concurrently",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			g, err := a.grader(args[0])
			if err != nil {
				return err
			}
			files, err := answerFiles(args[1:])
			if err != nil {
				return err
			}

			runID := uuid.New()
			a.log.Info("batch started", "run_id", runID, "files", len(files), "jobs", jobs)
			results, err := g.gradeAll(cmd.Context(), files, jobs)
			if err != nil {
				return err
			}
			failed := 0
			for _, s := range results {
				if s.Err != nil {
					failed++
					a.log.Warn("not graded", "student", s.Student, "err", s.Err)
				}
			}
			a.log.Info("batch finished", "run_id", runID, "graded", len(results)-failed, "failed", failed)

			if err := a.record(runID, results); err != nil {
				return err
			}

			if format == formatJSON {
				rows := make([]batchRow, len(results))
				for i, s := range results {
					rows[i] = batchRow{Student: s.Student, Step: int(s.Step)}
					if s.Err != nil {
						rows[i].Error = s.Err.Error()
					} else {
						res := s.Result
						rows[i].Result = &res
					}
				}
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return report.New(cmd.OutOrStdout()).Batch(results)
		},
	}
	addFormatFlag(cmd, &format)
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "maximum submissions graded at once")

	return cmd
}
