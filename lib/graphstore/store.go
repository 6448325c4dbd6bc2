package graphstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"footygraph/lib/graphstore/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("footygraph/lib/graphstore")

var ErrNotFound = errors.New("not found")

// Store applies normalized records to the persisted graph. Every write is
// its own committed unit of work, so an interrupted run keeps everything
// written before the interruption.
type Store struct {
	db     *sql.DB
	qry    *db.Queries
	makeTx db.MakeTx
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:     database,
		qry:    db.New(database),
		makeTx: db.NewMakeTx(database),
	}
}

// Queries exposes the read queries of the underlying database.
func (s Store) Queries() *db.Queries {
	return s.qry
}

type League struct {
	Name        string
	Coefficient int64
	Nation      string
}

type Club struct {
	Name     string
	LeagueID int64
}

type Player struct {
	Name        string
	Age         int64
	Position    string
	MarketValue float64
	ClubID      int64
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func fail(span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	return fmt.Errorf("%s: %w", msg, err)
}

// UpsertLeague merges a league by its coefficient.
func (s Store) UpsertLeague(ctx context.Context, league League) (db.League, error) {
	ctx, span := tracer.Start(ctx, "UpsertLeague")
	defer span.End()
	span.SetAttributes(
		attribute.String("name", league.Name),
		attribute.Int64("coefficient", league.Coefficient),
	)

	if strings.TrimSpace(league.Name) == "" {
		return db.League{}, fail(span, fmt.Errorf("empty name"), "upsert league")
	}
	row, err := s.qry.UpsertLeague(ctx, db.UpsertLeagueParams{
		Name:        league.Name,
		Coefficient: league.Coefficient,
		Nation:      league.Nation,
	})
	if err != nil {
		return db.League{}, fail(span, err, "upsert league")
	}
	return row, nil
}

// UpsertClub merges a club by its name, the league must already exist.
func (s Store) UpsertClub(ctx context.Context, club Club) (db.Club, error) {
	ctx, span := tracer.Start(ctx, "UpsertClub")
	defer span.End()
	span.SetAttributes(attribute.String("name", club.Name))

	if strings.TrimSpace(club.Name) == "" {
		return db.Club{}, fail(span, fmt.Errorf("empty name"), "upsert club")
	}

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		return db.Club{}, fail(span, err, "upsert club")
	}
	defer discard()

	_, err = txqry.GetLeague(ctx, club.LeagueID)
	if err != nil {
		return db.Club{}, fail(span, fmt.Errorf("league %d: %w", club.LeagueID, notFound(err)), "upsert club")
	}
	row, err := txqry.UpsertClub(ctx, db.UpsertClubParams{
		Name:     club.Name,
		LeagueID: club.LeagueID,
	})
	if err != nil {
		return db.Club{}, fail(span, err, "upsert club")
	}
	err = commit()
	if err != nil {
		return db.Club{}, fail(span, err, "upsert club")
	}
	return row, nil
}

// UpsertPlayer merges a player by (name, club), the club must already exist.
func (s Store) UpsertPlayer(ctx context.Context, player Player) (db.Player, error) {
	ctx, span := tracer.Start(ctx, "UpsertPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("name", player.Name))

	if strings.TrimSpace(player.Name) == "" {
		return db.Player{}, fail(span, fmt.Errorf("empty name"), "upsert player")
	}

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		return db.Player{}, fail(span, err, "upsert player")
	}
	defer discard()

	_, err = txqry.GetClub(ctx, player.ClubID)
	if err != nil {
		return db.Player{}, fail(span, fmt.Errorf("club %d: %w", player.ClubID, notFound(err)), "upsert player")
	}
	row, err := txqry.UpsertPlayer(ctx, db.UpsertPlayerParams{
		Name:        player.Name,
		Age:         player.Age,
		Position:    player.Position,
		MarketValue: player.MarketValue,
		ClubID:      player.ClubID,
	})
	if err != nil {
		return db.Player{}, fail(span, err, "upsert player")
	}
	err = commit()
	if err != nil {
		return db.Player{}, fail(span, err, "upsert player")
	}
	return row, nil
}

// EnsureStat returns the stat with the given label, creating it the first
// time the label is seen. created reports whether a row was inserted.
func (s Store) EnsureStat(ctx context.Context, label string) (stat db.Stat, created bool, err error) {
	ctx, span := tracer.Start(ctx, "EnsureStat")
	defer span.End()
	span.SetAttributes(attribute.String("label", label))

	if strings.TrimSpace(label) == "" {
		return db.Stat{}, false, fail(span, fmt.Errorf("empty label"), "ensure stat")
	}

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		return db.Stat{}, false, fail(span, err, "ensure stat")
	}
	defer discard()

	existing, err := txqry.GetStatByLabel(ctx, label)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return db.Stat{}, false, fail(span, err, "ensure stat")
	}

	stat, err = txqry.CreateStat(ctx, label)
	if err != nil {
		return db.Stat{}, false, fail(span, err, "ensure stat")
	}
	err = commit()
	if err != nil {
		return db.Stat{}, false, fail(span, err, "ensure stat")
	}
	return stat, true, nil
}

// AddPlayerStat records a value for (player, stat). A pair that already has
// a value is left untouched and inserted is false.
func (s Store) AddPlayerStat(ctx context.Context, playerID, statID int64, value float64) (inserted bool, err error) {
	ctx, span := tracer.Start(ctx, "AddPlayerStat")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("player_id", playerID),
		attribute.Int64("stat_id", statID),
	)

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		return false, fail(span, err, "add player stat")
	}
	defer discard()

	_, err = txqry.GetPlayerStat(ctx, db.GetPlayerStatParams{
		PlayerID: playerID,
		StatID:   statID,
	})
	if err == nil {
		span.AddEvent("duplicate player stat")
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fail(span, err, "add player stat")
	}

	_, err = txqry.CreatePlayerStat(ctx, db.CreatePlayerStatParams{
		PlayerID: playerID,
		StatID:   statID,
		Value:    value,
	})
	if err != nil {
		return false, fail(span, err, "add player stat")
	}
	err = commit()
	if err != nil {
		return false, fail(span, err, "add player stat")
	}
	return true, nil
}

// FindPlayer looks up a player by exact name within a club.
func (s Store) FindPlayer(ctx context.Context, name string, clubID int64) (db.Player, error) {
	player, err := s.qry.GetPlayerByNameAndClub(ctx, db.GetPlayerByNameAndClubParams{
		Name:   name,
		ClubID: clubID,
	})
	if err != nil {
		return db.Player{}, notFound(err)
	}
	return player, nil
}

// FindLeague looks up a league by its coefficient.
func (s Store) FindLeague(ctx context.Context, coefficient int64) (db.League, error) {
	league, err := s.qry.GetLeagueByCoefficient(ctx, coefficient)
	if err != nil {
		return db.League{}, notFound(err)
	}
	return league, nil
}

// Clubs lists the clubs of a league, or every club when leagueID is 0.
func (s Store) Clubs(ctx context.Context, leagueID int64) ([]db.Club, error) {
	if leagueID == 0 {
		return s.qry.ListClubs(ctx)
	}
	return s.qry.ListClubsByLeague(ctx, leagueID)
}

// Counts returns the number of rows in every table of the graph.
func (s Store) Counts(ctx context.Context) (db.CountGraphRow, error) {
	return s.qry.CountGraph(ctx)
}

// IsEmpty reports whether nothing has been persisted yet.
func (s Store) IsEmpty(ctx context.Context) (bool, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return false, err
	}
	return counts.Leagues == 0 && counts.PlayerStats == 0, nil
}
