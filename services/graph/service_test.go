package graph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"footygraph/lib/graphstore"
	"footygraph/lib/graphstore/db"
	"footygraph/lib/testutil"
	graphv1 "footygraph/proto/footygraph/graph/v1"
	"footygraph/proto/footygraph/graph/v1/graphv1connect"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
)

type fixture struct {
	arsenal  db.Club
	saka     db.Player
	odegaard db.Player
	goals    db.Stat
}

func seed(t *testing.T, store graphstore.Store) fixture {
	t.Helper()
	ctx := context.Background()

	league, err := store.UpsertLeague(ctx, graphstore.League{Name: "Premier League", Coefficient: 4, Nation: "England"})
	if err != nil {
		t.Fatal(err)
	}
	arsenal, err := store.UpsertClub(ctx, graphstore.Club{Name: "Arsenal FC", LeagueID: league.ID})
	if err != nil {
		t.Fatal(err)
	}
	_, err = store.UpsertClub(ctx, graphstore.Club{Name: "Tottenham Hotspur", LeagueID: league.ID})
	if err != nil {
		t.Fatal(err)
	}
	saka, err := store.UpsertPlayer(ctx, graphstore.Player{
		Name: "Bukayo Saka", Age: 22, Position: "Right Winger", MarketValue: 120, ClubID: arsenal.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	odegaard, err := store.UpsertPlayer(ctx, graphstore.Player{
		Name: "Martin Odegaard", Age: 24, Position: "Attacking Midfield", MarketValue: 110, ClubID: arsenal.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	goals, _, err := store.EnsureStat(ctx, "Non-Penalty Goals")
	if err != nil {
		t.Fatal(err)
	}
	assists, _, err := store.EnsureStat(ctx, "Assists")
	if err != nil {
		t.Fatal(err)
	}
	for _, ps := range []struct {
		player int64
		stat   int64
		value  float64
	}{
		{saka.ID, goals.ID, 8},
		{saka.ID, assists.ID, 9},
		{odegaard.ID, goals.ID, 6},
	} {
		_, err := store.AddPlayerStat(ctx, ps.player, ps.stat, ps.value)
		if err != nil {
			t.Fatal(err)
		}
	}

	return fixture{arsenal: arsenal, saka: saka, odegaard: odegaard, goals: goals}
}

func startService(t *testing.T, accessToken string) (graphv1connect.GraphServiceClient, fixture) {
	t.Helper()

	database := testutil.OpenDB(t, db.Schema)
	data := seed(t, graphstore.NewStore(database))
	return serve(t, NewService(database), accessToken), data
}

func serve(t *testing.T, service graphv1connect.GraphServiceHandler, accessToken string) graphv1connect.GraphServiceClient {
	t.Helper()

	path, handler, err := NewHandler(service, accessToken)
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewClient(server.Client(), server.URL, accessToken)
}

func TestServiceQueries(t *testing.T) {
	ctx := context.Background()
	client, data := startService(t, "")

	leagues, err := client.ListLeagues(ctx, connect.NewRequest(&graphv1.ListLeaguesRequest{}))
	if err != nil {
		t.Fatal(err)
	}
	expectedLeagues := []*graphv1.League{{Id: 1, Name: "Premier League", Coefficient: 4, Nation: "England"}}
	if diff := cmp.Diff(expectedLeagues, leagues.Msg.GetLeagues(), protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected leagues (-want +got):\n%s", diff)
	}

	clubs, err := client.ListClubs(ctx, connect.NewRequest(&graphv1.ListClubsRequest{LeagueId: 1}))
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, clubs.Msg.GetClubs(), 2)
	require.Equal(t, "Arsenal FC", clubs.Msg.GetClubs()[0].GetName())

	byClub, err := client.ListPlayers(ctx, connect.NewRequest(&graphv1.ListPlayersRequest{ClubId: data.arsenal.ID}))
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, byClub.Msg.GetPlayers(), 2)

	byPosition, err := client.ListPlayers(ctx, connect.NewRequest(&graphv1.ListPlayersRequest{Position: "Right Winger"}))
	if err != nil {
		t.Fatal(err)
	}
	expectedPlayers := []*graphv1.Player{{
		Id:          data.saka.ID,
		Name:        "Bukayo Saka",
		Age:         22,
		Position:    "Right Winger",
		MarketValue: 120,
		ClubId:      data.arsenal.ID,
	}}
	if diff := cmp.Diff(expectedPlayers, byPosition.Msg.GetPlayers(), protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected players (-want +got):\n%s", diff)
	}

	stats, err := client.ListStats(ctx, connect.NewRequest(&graphv1.ListStatsRequest{}))
	if err != nil {
		t.Fatal(err)
	}
	expectedStats := []*graphv1.Stat{{Id: 1, Label: "Non-Penalty Goals"}, {Id: 2, Label: "Assists"}}
	if diff := cmp.Diff(expectedStats, stats.Msg.GetStats(), protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}

	byPlayer, err := client.ListPlayerStats(ctx, connect.NewRequest(&graphv1.ListPlayerStatsRequest{PlayerId: data.saka.ID}))
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, byPlayer.Msg.GetPlayerStats(), 2)
	require.Equal(t, "Non-Penalty Goals", byPlayer.Msg.GetPlayerStats()[0].GetLabel())
	require.Equal(t, 8.0, byPlayer.Msg.GetPlayerStats()[0].GetValue())

	byStat, err := client.ListPlayerStats(ctx, connect.NewRequest(&graphv1.ListPlayerStatsRequest{StatId: data.goals.ID}))
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, byStat.Msg.GetPlayerStats(), 2)
	require.Equal(t, "Bukayo Saka", byStat.Msg.GetPlayerStats()[0].GetPlayerName())
	require.Equal(t, "Martin Odegaard", byStat.Msg.GetPlayerStats()[1].GetPlayerName())

	summary, err := client.GetSummary(ctx, connect.NewRequest(&graphv1.GetSummaryRequest{}))
	if err != nil {
		t.Fatal(err)
	}
	expectedSummary := &graphv1.GetSummaryResponse{Leagues: 1, Clubs: 2, Players: 2, Stats: 2, PlayerStats: 3}
	if diff := cmp.Diff(expectedSummary, summary.Msg, protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

func TestServiceRejectsAmbiguousFilters(t *testing.T) {
	ctx := context.Background()
	client, data := startService(t, "")

	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "players without filter",
			call: func() error {
				_, err := client.ListPlayers(ctx, connect.NewRequest(&graphv1.ListPlayersRequest{}))
				return err
			},
		},
		{
			name: "players with both filters",
			call: func() error {
				_, err := client.ListPlayers(ctx, connect.NewRequest(&graphv1.ListPlayersRequest{ClubId: data.arsenal.ID, Position: "Goalkeeper"}))
				return err
			},
		},
		{
			name: "player stats without filter",
			call: func() error {
				_, err := client.ListPlayerStats(ctx, connect.NewRequest(&graphv1.ListPlayerStatsRequest{}))
				return err
			},
		},
		{
			name: "player stats with both filters",
			call: func() error {
				_, err := client.ListPlayerStats(ctx, connect.NewRequest(&graphv1.ListPlayerStatsRequest{PlayerId: data.saka.ID, StatId: data.goals.ID}))
				return err
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			err := test.call()
			require.Error(t, err)
			require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}
}

func TestServiceAccessToken(t *testing.T) {
	ctx := context.Background()
	client, _ := startService(t, "secret")

	_, err := client.GetSummary(ctx, connect.NewRequest(&graphv1.GetSummaryRequest{}))
	if err != nil {
		t.Fatal(err)
	}

	database := testutil.OpenDB(t, db.Schema)
	path, handler, err := NewHandler(NewService(database), "secret")
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	anonymous := NewClient(server.Client(), server.URL, "")
	_, err = anonymous.GetSummary(ctx, connect.NewRequest(&graphv1.GetSummaryRequest{}))
	require.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestInProcessMatchesRemote(t *testing.T) {
	ctx := context.Background()

	database := testutil.OpenDB(t, db.Schema)
	data := seed(t, graphstore.NewStore(database))
	service := NewService(database)
	remote := serve(t, service, "")

	var results []*graphv1.ListPlayerStatsResponse
	for _, client := range []graphv1connect.GraphServiceClient{service, remote} {
		res, err := client.ListPlayerStats(ctx, connect.NewRequest(&graphv1.ListPlayerStatsRequest{StatId: data.goals.ID}))
		if err != nil {
			t.Fatal(err)
		}
		results = append(results, res.Msg)
	}
	if diff := cmp.Diff(results[0], results[1], protocmp.Transform()); diff != "" {
		t.Fatalf("in-process and remote disagree (-in-process +remote):\n%s", diff)
	}

	_, err := service.ListPlayers(ctx, connect.NewRequest(&graphv1.ListPlayersRequest{}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
