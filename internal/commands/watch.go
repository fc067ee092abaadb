package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay absorbs the burst of events editors emit for one save.
const debounceDelay = 100 * time.Millisecond

// fileWatcher reports changes to a single file. It watches the parent
// directory so that atomic saves (write to temp, rename over) are seen.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	delay   time.Duration
	log     *slog.Logger
}

func newFileWatcher(path string, delay time.Duration, log *slog.Logger) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &fileWatcher{watcher: w, path: abs, delay: delay, log: log}, nil
}

// Run calls onChange after each settled burst of changes until ctx is done.
// Calls to onChange never overlap.
func (fw *fileWatcher) Run(ctx context.Context, onChange func()) error {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		_ = fw.watcher.Close()
	}()

	fire := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() == nil {
			onChange()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.log.Debug("file event", "op", event.Op.String(), "path", event.Name)

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(fw.delay, fire)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("file watcher error", "err", err)
		}
	}
}

func newWatchCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "watch <step> <answers.json>",
		Short: "Re-grade an answers file every time it is saved",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			g, err := a.grader(args[0])
			if err != nil {
				return err
			}
			path := args[1]
			out := cmd.OutOrStdout()

			grade := func() {
				res, err := g.gradeFile(path)
				if err != nil {
					a.log.Error("grading failed", "path", path, "err", err)
					return
				}
				a.log.Info("graded", "path", path, "score", res.Score, "max", res.MaxScore, "grade", res.LetterGrade)
				if err := printResult(out, format, g.step, res); err != nil {
					a.log.Error("printing result", "err", err)
				}
			}

			fw, err := newFileWatcher(path, debounceDelay, a.log)
			if err != nil {
				return err
			}
			grade()
			a.log.Info("watching", "path", fw.path)
			return fw.Run(cmd.Context(), grade)
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}
