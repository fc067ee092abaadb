package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/activity"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/report"
)

const (
	activityFile = "activity.yaml"
	chartFile    = "chart-of-accounts.csv"
	journalFile  = "journal.csv"
)

type initOptions struct {
	course       string
	businessType string
	ownership    string
	year         int
}

func newInitCommand() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new activity project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.course, "course", "", "course name (required)")
	_ = cmd.MarkFlagRequired("course")
	cmd.Flags().StringVar(&opts.businessType, "business-type", string(model.BusinessService), "Service, Merchandising or Manufacturing")
	cmd.Flags().StringVar(&opts.ownership, "ownership", string(model.OwnershipSoleProprietorship), "SoleProprietorship or Corporation")
	cmd.Flags().IntVar(&opts.year, "year", time.Now().Year(), "fiscal year")

	return cmd
}

func runInit(w io.Writer, dir string, opts initOptions) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	actCfg := model.ActivityConfig{
		BusinessType: model.BusinessType(opts.businessType),
		Ownership:    model.Ownership(opts.ownership),
	}.WithDefaults()
	if err := activity.Validate(model.ActivityData{Config: actCfg, FiscalYear: opts.year}, nil); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating directory logs: %w", err)
	}

	cfg := config.Default(opts.course)
	cfg.Activity = activityFile
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	chart := accounts.NewChart(accounts.DefaultChart(actCfg))
	if err := chart.Save(filepath.Join(dir, chartFile)); err != nil {
		return err
	}

	if err := journal.Save(filepath.Join(dir, journalFile), starterJournal(chart, opts.year)); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}

	act := activity.File{
		ActivityData: model.ActivityData{Config: actCfg, FiscalYear: opts.year},
		Chart:        chartFile,
		Journal:      journalFile,
	}
	if err := activity.Save(filepath.Join(dir, activityFile), act); err != nil {
		return err
	}

	report.New(w).Info("Initialized activity project at %s", dir)
	return nil
}

// starterJournal records the opening investment so the journal shows the
// expected layout.
func starterJournal(chart *accounts.Chart, year int) []model.Transaction {
	capital := "Owner's Capital"
	if _, ok := chart.Get(capital); !ok {
		capital = "Share Capital"
	}
	amount := decimal.NewFromInt(10000)
	return []model.Transaction{{
		Date:        model.NewDate(year, time.January, 1),
		Description: "Initial investment",
		Debits:      []model.Line{{Account: "Cash", Amount: amount}},
		Credits:     []model.Line{{Account: capital, Amount: amount}},
	}}
}
