package reconcile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"footygraph/lib/graphstore"
	"footygraph/lib/graphstore/db"
	"footygraph/lib/scrapers/core"
	"footygraph/lib/telemetry"
	"footygraph/lib/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newSources(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	pages := map[string]string{
		"/premier-league/startseite/wettbewerb/GB1":          "tm_league.html",
		"/arsenal-fc/kader/verein/11/saison_id/2023":         "tm_arsenal.html",
		"/tottenham-hotspur/kader/verein/148/saison_id/2023": "tm_spurs.html",
		"/en/comps/9/Premier-League-Stats":                   "fb_league.html",
		"/en/squads/18bb7c10/Arsenal-Stats":                  "fb_arsenal.html",
		"/en/squads/361ca564/Tottenham-Hotspur-Stats":        "fb_spurs.html",
		"/en/squads/943e8050/Burnley-Stats":                  "fb_burnley.html",
		"/en/players/bc7dc64d/Bukayo-Saka":                   "fb_saka.html",
		"/en/players/79300479/Martin-Odegaard":               "fb_odegaard.html",
		"/en/players/0000dead/Unknown-Trialist":              "fb_trialist.html",
		"/en/players/92e7e919/Son-Heung-min":                 "fb_son.html",
	}
	for path, fixture := range pages {
		contents := testutil.ReadFixture(t, fixture)
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(contents)
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newPipeline(t *testing.T, server *httptest.Server, tel telemetry.API) (*Pipeline, graphstore.Store) {
	t.Helper()

	store := graphstore.NewStore(testutil.OpenDB(t, db.Schema))
	fetcher := core.NewClient(core.Options{Telemetry: tel})
	pipeline := NewPipeline(store, fetcher, Options{
		Leagues: []LeaguePair{
			{
				Identity: server.URL + "/premier-league/startseite/wettbewerb/GB1",
				Stats:    server.URL + "/en/comps/9/Premier-League-Stats",
			},
		},
		Telemetry: tel,
	})
	return pipeline, store
}

func TestPipelineEndToEnd(t *testing.T) {
	ctx := context.Background()
	server := newSources(t)
	tel := &telemetry.RecordingAPI{}
	pipeline, store := newPipeline(t, server, tel)

	report, err := pipeline.Run(ctx)
	if err != nil {
		t.Fatal(err)
	}

	expected := Report{
		Leagues:             1,
		Clubs:               2,
		Players:             3,
		StatsCreated:        3,
		PlayerStatsInserted: 4,
		Skipped: map[string]int{
			report_stats_club_unresolved:   1,
			report_stats_player:            2,
			report_stats_player_unresolved: 1,
			report_stats_value:             1,
		},
		Resolutions: map[Stage]int{
			StageSubstring: 1,
			StageHeader:    1,
		},
	}
	if diff := cmp.Diff(expected, report); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}

	league, err := store.FindLeague(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Premier League", league.Name)
	require.Equal(t, "England", league.Nation)

	clubs, err := store.Clubs(ctx, league.ID)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, clubs, 2)
	require.Equal(t, "Arsenal FC", clubs[0].Name)

	saka, err := store.FindPlayer(ctx, "Bukayo Saka", clubs[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, int64(22), saka.Age)
	require.Equal(t, "Right Winger", saka.Position)
	require.Equal(t, 120.0, saka.MarketValue)

	odegaard, err := store.FindPlayer(ctx, "Martin Odegaard", clubs[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 110.0, odegaard.MarketValue)

	stats, err := store.Queries().ListPlayerStatsByPlayer(ctx, saka.ID)
	if err != nil {
		t.Fatal(err)
	}
	values := map[string]float64{}
	for _, s := range stats {
		values[s.Label] = s.Value
	}
	require.Equal(t, map[string]float64{
		"Non-Penalty Goals": 8.0,
		"Assists":           9.0,
		"Pass Completion %": 80.5,
	}, values)

	warnings := tel.Reports("warning")
	var ids []string
	for _, w := range warnings {
		ids = append(ids, w.ID)
	}
	require.Contains(t, ids, "reconcile."+report_stats_club_unresolved)
	require.Contains(t, ids, "reconcile."+report_stats_player_unresolved)
}

func TestPipelineIsIdempotent(t *testing.T) {
	ctx := context.Background()
	server := newSources(t)
	pipeline, store := newPipeline(t, server, &telemetry.RecordingAPI{})

	_, err := pipeline.Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	before, err := store.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}

	report, err := pipeline.Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	after, err := store.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, before, after)
	require.Equal(t, db.CountGraphRow{
		Leagues:     1,
		Clubs:       2,
		Players:     3,
		Stats:       3,
		PlayerStats: 4,
	}, after)
	require.Equal(t, 0, report.StatsCreated)
	require.Equal(t, 0, report.PlayerStatsInserted)
	require.Equal(t, 4, report.PlayerStatsDuplicate)
}

func TestPipelineNothingPersisted(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	tel := &telemetry.RecordingAPI{}
	pipeline, store := newPipeline(t, server, tel)

	report, err := pipeline.Run(context.Background())
	require.ErrorIs(t, err, ErrNothingPersisted)
	require.Equal(t, 1, report.Skipped[report_identity_league])
	require.Equal(t, 1, report.Skipped[report_stats_league])

	empty, err := store.IsEmpty(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, empty)
}

func TestPipelineFallsBackToAllClubs(t *testing.T) {
	ctx := context.Background()
	server := newSources(t)
	tel := &telemetry.RecordingAPI{}
	store := graphstore.NewStore(testutil.OpenDB(t, db.Schema))

	pipeline := NewPipeline(store, core.NewClient(core.Options{Telemetry: tel}), Options{
		Leagues: []LeaguePair{
			{
				Identity: server.URL + "/premier-league/startseite/wettbewerb/GB1",
				Stats:    server.URL + "/en/comps/404/Missing-Stats",
			},
			{
				// the identity league of this pair is missing, so its stats
				// league is resolved against every persisted club
				Identity: server.URL + "/missing/startseite/wettbewerb/XX1",
				Stats:    server.URL + "/en/comps/9/Premier-League-Stats",
			},
		},
		Telemetry: tel,
	})

	report, err := pipeline.Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, report.Skipped[report_identity_league])
	require.Equal(t, 1, report.Skipped[report_stats_league])
	require.Equal(t, 4, report.PlayerStatsInserted)
}

func TestResolveStored(t *testing.T) {
	ctx := context.Background()
	server := newSources(t)
	pipeline, store := newPipeline(t, server, &telemetry.RecordingAPI{})

	_, err := pipeline.Run(ctx)
	if err != nil {
		t.Fatal(err)
	}

	resolution, ok, err := ResolveStored(ctx, store, ClubQuery{DisplayName: "Tottenham Hotspurs"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, ok)
	require.Equal(t, "Tottenham Hotspur", resolution.Club.Name)
	require.Equal(t, StageFuzzy, resolution.Stage)
}
