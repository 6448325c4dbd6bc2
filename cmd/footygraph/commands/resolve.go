package commands

import (
	"fmt"

	"footygraph/lib/graphstore"
	"footygraph/services/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	resolveHeader *string
	resolveLeague *int64
)

func init() {
	resolveHeader = resolveCmd.Flags().String("header", "", "The squad page header title to fall back on.")
	resolveLeague = resolveCmd.Flags().Int64("league", 0, "Only consider clubs of this league id.")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <club name> [--header title] [--league id]",
	Short: "Shows which stored club a stats source club name resolves to.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := cfg.openDB()
		if err != nil {
			return err
		}
		defer database.Close()

		query := reconcile.ClubQuery{
			DisplayName: cfg.clubNames().Fix(args[0]),
			HeaderTitle: *resolveHeader,
		}
		resolution, ok, err := reconcile.ResolveStored(cmd.Context(), graphstore.NewStore(database), query, *resolveLeague)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%q does not resolve to any stored club", query.DisplayName)
		}

		render(table.Row{"Query", "Club", "ID", "Stage", "Score"}, []table.Row{{
			query.DisplayName,
			resolution.Club.Name,
			resolution.Club.ID,
			resolution.Stage,
			resolution.Score,
		}})
		return nil
	},
}
