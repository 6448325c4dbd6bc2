package commands

import (
	"fmt"
	"net/http"
	"os"

	graphv1 "footygraph/proto/footygraph/graph/v1"
	"footygraph/proto/footygraph/graph/v1/graphv1connect"
	"footygraph/services/graph"

	"connectrpc.com/connect"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	listRemote   *string
	listLeague   *int64
	listClub     *int64
	listPosition *string
	listPlayer   *int64
	listStat     *int64
)

func init() {
	listRemote = listCmd.PersistentFlags().String("remote", os.Getenv("FOOTYGRAPH_REMOTE"), "Base url of a running footygraph server, the local database is read when empty.")
	listLeague = listClubsCmd.Flags().Int64("league", 0, "Only list clubs of this league id.")
	listClub = listPlayersCmd.Flags().Int64("club", 0, "List the players of this club id.")
	listPosition = listPlayersCmd.Flags().String("position", "", "List the players playing this position.")
	listPlayer = listPlayerStatsCmd.Flags().Int64("player", 0, "List the stats of this player id.")
	listStat = listPlayerStatsCmd.Flags().Int64("stat", 0, "List every player's value for this stat id.")

	listCmd.AddCommand(listSummaryCmd)
	listCmd.AddCommand(listLeaguesCmd)
	listCmd.AddCommand(listClubsCmd)
	listCmd.AddCommand(listPlayersCmd)
	listCmd.AddCommand(listStatsCmd)
	listCmd.AddCommand(listPlayerStatsCmd)
	rootCmd.AddCommand(listCmd)
}

// withQuerier calls fn with a client for the configured remote server, or
// with the service itself over the local database when no remote is set.
func withQuerier(fn func(q graphv1connect.GraphServiceClient) error) error {
	if *listRemote != "" {
		return fn(graph.NewClient(http.DefaultClient, *listRemote, cfg.Serve.AccessToken))
	}

	database, err := cfg.openDB()
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(graph.NewService(database))
}

func render(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.SetStyle(table.StyleRounded)
	t.Render()
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the contents of the graph.",
}

var listSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Counts every node and edge in the graph.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuerier(func(q graphv1connect.GraphServiceClient) error {
			res, err := q.GetSummary(cmd.Context(), connect.NewRequest(&graphv1.GetSummaryRequest{}))
			if err != nil {
				return err
			}
			render(table.Row{"Entity", "Count"}, []table.Row{
				{"leagues", res.Msg.GetLeagues()},
				{"clubs", res.Msg.GetClubs()},
				{"players", res.Msg.GetPlayers()},
				{"stats", res.Msg.GetStats()},
				{"player stats", res.Msg.GetPlayerStats()},
			})
			return nil
		})
	},
}

var listLeaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "Lists every league.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuerier(func(q graphv1connect.GraphServiceClient) error {
			res, err := q.ListLeagues(cmd.Context(), connect.NewRequest(&graphv1.ListLeaguesRequest{}))
			if err != nil {
				return err
			}
			rows := make([]table.Row, len(res.Msg.GetLeagues()))
			for i, l := range res.Msg.GetLeagues() {
				rows[i] = table.Row{l.GetId(), l.GetName(), l.GetNation(), l.GetCoefficient()}
			}
			render(table.Row{"ID", "Name", "Nation", "Coefficient"}, rows)
			return nil
		})
	},
}

var listClubsCmd = &cobra.Command{
	Use:   "clubs [--league id]",
	Short: "Lists clubs, optionally only those of one league.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuerier(func(q graphv1connect.GraphServiceClient) error {
			res, err := q.ListClubs(cmd.Context(), connect.NewRequest(&graphv1.ListClubsRequest{LeagueId: *listLeague}))
			if err != nil {
				return err
			}
			rows := make([]table.Row, len(res.Msg.GetClubs()))
			for i, c := range res.Msg.GetClubs() {
				rows[i] = table.Row{c.GetId(), c.GetName(), c.GetLeagueId()}
			}
			render(table.Row{"ID", "Name", "League"}, rows)
			return nil
		})
	},
}

var listPlayersCmd = &cobra.Command{
	Use:   "players (--club id | --position name)",
	Short: "Lists the players of a club or of a position.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuerier(func(q graphv1connect.GraphServiceClient) error {
			res, err := q.ListPlayers(cmd.Context(), connect.NewRequest(&graphv1.ListPlayersRequest{
				ClubId:   *listClub,
				Position: *listPosition,
			}))
			if err != nil {
				return err
			}
			rows := make([]table.Row, len(res.Msg.GetPlayers()))
			for i, p := range res.Msg.GetPlayers() {
				rows[i] = table.Row{p.GetId(), p.GetName(), p.GetAge(), p.GetPosition(), fmt.Sprintf("%.2fm", p.GetMarketValue()), p.GetClubId()}
			}
			render(table.Row{"ID", "Name", "Age", "Position", "Value", "Club"}, rows)
			return nil
		})
	},
}

var listStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Lists every stat label.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuerier(func(q graphv1connect.GraphServiceClient) error {
			res, err := q.ListStats(cmd.Context(), connect.NewRequest(&graphv1.ListStatsRequest{}))
			if err != nil {
				return err
			}
			rows := make([]table.Row, len(res.Msg.GetStats()))
			for i, s := range res.Msg.GetStats() {
				rows[i] = table.Row{s.GetId(), s.GetLabel()}
			}
			render(table.Row{"ID", "Label"}, rows)
			return nil
		})
	},
}

var listPlayerStatsCmd = &cobra.Command{
	Use:   "player-stats (--player id | --stat id)",
	Short: "Lists the stats of a player, or every player's value for one stat.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuerier(func(q graphv1connect.GraphServiceClient) error {
			res, err := q.ListPlayerStats(cmd.Context(), connect.NewRequest(&graphv1.ListPlayerStatsRequest{
				PlayerId: *listPlayer,
				StatId:   *listStat,
			}))
			if err != nil {
				return err
			}
			rows := make([]table.Row, len(res.Msg.GetPlayerStats()))
			for i, ps := range res.Msg.GetPlayerStats() {
				rows[i] = table.Row{ps.GetPlayerId(), ps.GetPlayerName(), ps.GetStatId(), ps.GetLabel(), ps.GetValue()}
			}
			render(table.Row{"Player", "Name", "Stat", "Label", "Value"}, rows)
			return nil
		})
	},
}
