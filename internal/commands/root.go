package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/activity"
	"github.com/cleared-dev/ledgerlab/internal/buildinfo"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// app holds state shared by every subcommand once flags are parsed.
type app struct {
	configPath   string
	activityPath string

	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ledgerlab",
		Short:   "Answer keys and grading for accounting-cycle activities",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "path to "+config.FileName)
	rootCmd.PersistentFlags().StringVarP(&a.activityPath, "activity", "a", "", "activity file (.yaml, .yml or .json)")

	rootCmd.AddCommand(
		newInitCommand(),
		newKeyCommand(a),
		newGradeCommand(a),
		newWatchCommand(a),
		newBatchCommand(a),
	)

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	return nil
}

// activity loads the activity named by --activity, or by the config file.
func (a *app) activity() (model.ActivityData, error) {
	path := a.activityPath
	if path == "" && a.cfg.Activity != "" {
		path = a.rel(a.cfg.Activity)
	}
	if path == "" {
		return model.ActivityData{}, fmt.Errorf("no activity: pass --activity or set activity in %s", config.FileName)
	}
	data, err := activity.Load(path)
	if err != nil {
		return model.ActivityData{}, err
	}
	a.log.Debug("loaded activity", "path", path, "transactions", len(data.Transactions), "adjustments", len(data.Adjustments))
	return data, nil
}

// rel resolves a path from the config file relative to the file's directory.
func (a *app) rel(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(a.configPath), p)
}
