package commands

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"footygraph/lib/chrono"
	"footygraph/lib/graphstore"
	"footygraph/lib/telemetry"
	"footygraph/lib/util/serviceutil"
	"footygraph/services/graph"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

// scheduledRuns makes sure only one pipeline run touches the graph at a
// time.
type scheduledRuns struct {
	mutex    sync.Mutex
	database *sql.DB
}

func (s *scheduledRuns) run(ctx context.Context, onlyIfEmpty bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if onlyIfEmpty {
		empty, err := graphstore.NewStore(s.database).IsEmpty(ctx)
		if err != nil {
			slog.Error("failed to check whether the graph is empty", "err", err)
			return
		}
		if !empty {
			slog.Info("graph already has data, skipping startup run")
			return
		}
	}

	report, err := runPipeline(ctx, s.database)
	if err != nil {
		slog.Error("pipeline run failed", "err", err, "leagues", report.Leagues, "player_stats", report.PlayerStats())
		return
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the graph over connect, running the pipeline at startup if the graph is empty and then on the configured schedule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		err := telemetry.SetupFromEnv(ctx, "footygraph")
		if err != nil {
			slog.Warn("continuing without telemetry exporters", "err", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			telemetry.Shutdown(shutdownCtx)
		}()
		telemetry.InstrumentPerfStats(ctx, time.Second*30)

		database, err := cfg.openDB()
		if err != nil {
			return err
		}
		defer database.Close()

		runs := &scheduledRuns{database: database}
		var startup sync.WaitGroup
		startup.Add(1)
		go func() {
			defer startup.Done()
			runs.run(ctx, true)
		}()
		defer startup.Wait()

		cron := chrono.NewStandardCron(telemetry.SlogAPI{}, nil)
		defer cron.Stop()
		err = cron.Cron(cfg.Schedule, func() {
			runs.run(ctx, false)
		})
		if err != nil {
			return err
		}

		path, handler, err := graph.NewHandler(graph.NewService(database), cfg.Serve.AccessToken)
		if err != nil {
			return err
		}
		mux := http.NewServeMux()
		mux.Handle(path, handler)

		return serviceutil.StartHttpServer(ctx, cfg.Serve.Port, mux)
	},
}
