package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"footygraph/lib/graphstore"
	"footygraph/lib/telemetry"
	"footygraph/services/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var runForce *bool

func init() {
	runForce = runCmd.Flags().Bool("force", false, "Run even when the graph already has data.")
	rootCmd.AddCommand(runCmd)
}

// runPipeline runs one reconciliation against database.
func runPipeline(ctx context.Context, database *sql.DB) (reconcile.Report, error) {
	tel := telemetry.SlogAPI{}
	fetcher, closeFetcher, err := cfg.newFetcher(tel)
	if err != nil {
		return reconcile.Report{}, err
	}
	defer closeFetcher()

	leagues, err := cfg.leaguePairs()
	if err != nil {
		return reconcile.Report{}, err
	}

	pipeline := reconcile.NewPipeline(graphstore.NewStore(database), fetcher, reconcile.Options{
		Leagues:   leagues,
		ClubNames: cfg.clubNames(),
		Telemetry: tel,
	})

	start := time.Now()
	report, err := pipeline.Run(ctx)
	slog.Info("pipeline run took", "seconds", time.Since(start).Seconds())
	return report, err
}

func printReport(report reconcile.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Entity", "Count"})
	t.AppendRows([]table.Row{
		{"leagues", report.Leagues},
		{"clubs", report.Clubs},
		{"players", report.Players},
		{"stats created", report.StatsCreated},
		{"player stats inserted", report.PlayerStatsInserted},
		{"player stats already present", report.PlayerStatsDuplicate},
	})
	t.AppendSeparator()

	stages := make([]string, 0, len(report.Resolutions))
	for stage := range report.Resolutions {
		stages = append(stages, string(stage))
	}
	sort.Strings(stages)
	for _, stage := range stages {
		t.AppendRow(table.Row{fmt.Sprintf("clubs resolved by %s", stage), report.Resolutions[reconcile.Stage(stage)]})
	}

	reasons := make([]string, 0, len(report.Skipped))
	for reason := range report.Skipped {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		t.AppendRow(table.Row{fmt.Sprintf("skipped (%s)", reason), report.Skipped[reason]})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

var runCmd = &cobra.Command{
	Use:   "run [--force]",
	Short: "Runs the reconciliation pipeline once, only if the graph is still empty unless --force is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := cfg.openDB()
		if err != nil {
			return err
		}
		defer database.Close()

		empty, err := graphstore.NewStore(database).IsEmpty(cmd.Context())
		if err != nil {
			return err
		}
		if !empty && !*runForce {
			slog.Info("graph already has data, skipping run (use --force to run anyway)")
			return nil
		}

		report, err := runPipeline(cmd.Context(), database)
		printReport(report)
		return err
	},
}
