package graphstore

import (
	"context"
	"testing"
	"time"

	"footygraph/lib/graphstore/db"
	"footygraph/lib/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (Store, context.Context) {
	store := NewStore(testutil.OpenDB(t, db.Schema))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	t.Cleanup(cancel)
	return store, ctx
}

func TestUpsertIdempotent(t *testing.T) {
	store, ctx := setupStore(t)

	league, err := store.UpsertLeague(ctx, League{Name: "Premier League", Coefficient: 4, Nation: "England"})
	if err != nil {
		t.Fatal(err)
	}
	again, err := store.UpsertLeague(ctx, League{Name: "Premier League", Coefficient: 4, Nation: "England"})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, league.ID, again.ID)

	club, err := store.UpsertClub(ctx, Club{Name: "Arsenal FC", LeagueID: league.ID})
	if err != nil {
		t.Fatal(err)
	}
	_, err = store.UpsertClub(ctx, Club{Name: "Arsenal FC", LeagueID: league.ID})
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.UpsertPlayer(ctx, Player{
		Name:        "Bukayo Saka",
		Age:         21,
		Position:    "Right Winger",
		MarketValue: 110,
		ClubID:      club.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	latest, err := store.UpsertPlayer(ctx, Player{
		Name:        "Bukayo Saka",
		Age:         22,
		Position:    "Right Winger",
		MarketValue: 120,
		ClubID:      club.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, db.CountGraphRow{Leagues: 1, Clubs: 1, Players: 1}, counts)

	found, err := store.FindPlayer(ctx, "Bukayo Saka", club.ID)
	if err != nil {
		t.Fatal(err)
	}
	diff := cmp.Diff(latest, found)
	if diff != "" {
		t.Fatal(diff)
	}
	require.Equal(t, int64(22), found.Age)
	require.InDelta(t, 120.0, found.MarketValue, 1e-9)
}

func TestUpsertMergesByNaturalKey(t *testing.T) {
	store, ctx := setupStore(t)

	_, err := store.UpsertLeague(ctx, League{Name: "EPL", Coefficient: 4, Nation: ""})
	if err != nil {
		t.Fatal(err)
	}
	merged, err := store.UpsertLeague(ctx, League{Name: "Premier League", Coefficient: 4, Nation: "England"})
	if err != nil {
		t.Fatal(err)
	}
	serieA, err := store.UpsertLeague(ctx, League{Name: "Serie A", Coefficient: 2, Nation: "Italy"})
	if err != nil {
		t.Fatal(err)
	}

	leagues, err := store.Queries().ListLeagues(ctx)
	if err != nil {
		t.Fatal(err)
	}
	expected := []db.League{
		{Name: "Premier League", Coefficient: 4, Nation: "England"},
		{Name: "Serie A", Coefficient: 2, Nation: "Italy"},
	}
	diff := cmp.Diff(expected, leagues, cmpopts.IgnoreFields(db.League{}, "ID"))
	if diff != "" {
		t.Fatal(diff)
	}

	club, err := store.UpsertClub(ctx, Club{Name: "Inter Milan", LeagueID: merged.ID})
	if err != nil {
		t.Fatal(err)
	}
	moved, err := store.UpsertClub(ctx, Club{Name: "Inter Milan", LeagueID: serieA.ID})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, club.ID, moved.ID)
	require.Equal(t, serieA.ID, moved.LeagueID)
}

func TestUpsertRequiresParent(t *testing.T) {
	store, ctx := setupStore(t)

	_, err := store.UpsertClub(ctx, Club{Name: "Arsenal FC", LeagueID: 42})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpsertPlayer(ctx, Player{Name: "Bukayo Saka", ClubID: 42})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.UpsertLeague(ctx, League{Name: "  ", Coefficient: 1})
	require.Error(t, err)

	counts, err := store.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, db.CountGraphRow{}, counts)
}

func TestStatDedup(t *testing.T) {
	store, ctx := setupStore(t)

	league, err := store.UpsertLeague(ctx, League{Name: "Premier League", Coefficient: 4, Nation: "England"})
	if err != nil {
		t.Fatal(err)
	}
	club, err := store.UpsertClub(ctx, Club{Name: "Arsenal FC", LeagueID: league.ID})
	if err != nil {
		t.Fatal(err)
	}
	player, err := store.UpsertPlayer(ctx, Player{Name: "Bukayo Saka", ClubID: club.ID})
	if err != nil {
		t.Fatal(err)
	}

	stat, created, err := store.EnsureStat(ctx, "Non-Penalty Goals")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, created)
	reused, created, err := store.EnsureStat(ctx, "Non-Penalty Goals")
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, created)
	require.Equal(t, stat.ID, reused.ID)

	inserted, err := store.AddPlayerStat(ctx, player.ID, stat.ID, 8)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, inserted)

	inserted, err = store.AddPlayerStat(ctx, player.ID, stat.ID, 11)
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, inserted)

	rows, err := store.Queries().ListPlayerStatsByPlayer(ctx, player.ID)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, rows, 1)
	require.Equal(t, "Non-Penalty Goals", rows[0].Label)
	require.InDelta(t, 8.0, rows[0].Value, 1e-9)

	empty, err := store.IsEmpty(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, empty)
}

func TestFindMissing(t *testing.T) {
	store, ctx := setupStore(t)

	empty, err := store.IsEmpty(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, empty)

	_, err = store.FindPlayer(ctx, "Nobody", 1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.FindLeague(ctx, 9)
	require.ErrorIs(t, err, ErrNotFound)

	clubs, err := store.Clubs(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, clubs)
}
