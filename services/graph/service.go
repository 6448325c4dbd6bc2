package graph

import (
	"context"
	"database/sql"
	"fmt"

	"footygraph/lib/graphstore/db"
	graphv1 "footygraph/proto/footygraph/graph/v1"
	"footygraph/proto/footygraph/graph/v1/graphv1connect"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("footygraph/services/graph")

// Service answers read queries over the persisted graph.
type Service struct {
	qry *db.Queries
}

// NewService returns the service wrapped in tracing, it can be mounted with
// NewHandler or called in-process.
func NewService(database *sql.DB) graphv1connect.GraphServiceClient {
	return graphv1connect.NewInstrumentedGraphServiceClient(
		Service{qry: db.New(database)},
	)
}

func internalErr(ctx context.Context, err error) error {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return connect.NewError(connect.CodeInternal, err)
}

func (s Service) ListLeagues(ctx context.Context, req *connect.Request[graphv1.ListLeaguesRequest]) (*connect.Response[graphv1.ListLeaguesResponse], error) {
	ctx, span := tracer.Start(ctx, "ListLeagues")
	defer span.End()

	rows, err := s.qry.ListLeagues(ctx)
	if err != nil {
		return nil, internalErr(ctx, err)
	}
	leagues := make([]*graphv1.League, len(rows))
	for i, r := range rows {
		leagues[i] = &graphv1.League{
			Id:          r.ID,
			Name:        r.Name,
			Coefficient: r.Coefficient,
			Nation:      r.Nation,
		}
	}
	return connect.NewResponse(&graphv1.ListLeaguesResponse{Leagues: leagues}), nil
}

func (s Service) ListClubs(ctx context.Context, req *connect.Request[graphv1.ListClubsRequest]) (*connect.Response[graphv1.ListClubsResponse], error) {
	ctx, span := tracer.Start(ctx, "ListClubs")
	defer span.End()
	span.SetAttributes(attribute.Int64("league_id", req.Msg.GetLeagueId()))

	var rows []db.Club
	var err error
	if req.Msg.GetLeagueId() == 0 {
		rows, err = s.qry.ListClubs(ctx)
	} else {
		rows, err = s.qry.ListClubsByLeague(ctx, req.Msg.GetLeagueId())
	}
	if err != nil {
		return nil, internalErr(ctx, err)
	}

	clubs := make([]*graphv1.Club, len(rows))
	for i, r := range rows {
		clubs[i] = &graphv1.Club{Id: r.ID, Name: r.Name, LeagueId: r.LeagueID}
	}
	return connect.NewResponse(&graphv1.ListClubsResponse{Clubs: clubs}), nil
}

func (s Service) ListPlayers(ctx context.Context, req *connect.Request[graphv1.ListPlayersRequest]) (*connect.Response[graphv1.ListPlayersResponse], error) {
	ctx, span := tracer.Start(ctx, "ListPlayers")
	defer span.End()

	clubID := req.Msg.GetClubId()
	position := req.Msg.GetPosition()

	var rows []db.Player
	var err error
	switch {
	case clubID != 0 && position != "":
		return nil, connect.NewError(
			connect.CodeInvalidArgument,
			fmt.Errorf("club_id and position are mutually exclusive"),
		)
	case clubID != 0:
		span.SetAttributes(attribute.Int64("club_id", clubID))
		rows, err = s.qry.ListPlayersByClub(ctx, clubID)
	case position != "":
		span.SetAttributes(attribute.String("position", position))
		rows, err = s.qry.ListPlayersByPosition(ctx, position)
	default:
		return nil, connect.NewError(
			connect.CodeInvalidArgument,
			fmt.Errorf("either club_id or position is required"),
		)
	}
	if err != nil {
		return nil, internalErr(ctx, err)
	}

	players := make([]*graphv1.Player, len(rows))
	for i, r := range rows {
		players[i] = &graphv1.Player{
			Id:          r.ID,
			Name:        r.Name,
			Age:         r.Age,
			Position:    r.Position,
			MarketValue: r.MarketValue,
			ClubId:      r.ClubID,
		}
	}
	return connect.NewResponse(&graphv1.ListPlayersResponse{Players: players}), nil
}

func (s Service) ListStats(ctx context.Context, req *connect.Request[graphv1.ListStatsRequest]) (*connect.Response[graphv1.ListStatsResponse], error) {
	ctx, span := tracer.Start(ctx, "ListStats")
	defer span.End()

	rows, err := s.qry.ListStats(ctx)
	if err != nil {
		return nil, internalErr(ctx, err)
	}
	stats := make([]*graphv1.Stat, len(rows))
	for i, r := range rows {
		stats[i] = &graphv1.Stat{Id: r.ID, Label: r.Label}
	}
	return connect.NewResponse(&graphv1.ListStatsResponse{Stats: stats}), nil
}

func (s Service) ListPlayerStats(ctx context.Context, req *connect.Request[graphv1.ListPlayerStatsRequest]) (*connect.Response[graphv1.ListPlayerStatsResponse], error) {
	ctx, span := tracer.Start(ctx, "ListPlayerStats")
	defer span.End()

	playerID := req.Msg.GetPlayerId()
	statID := req.Msg.GetStatId()

	var out []*graphv1.PlayerStat
	switch {
	case playerID != 0 && statID != 0:
		return nil, connect.NewError(
			connect.CodeInvalidArgument,
			fmt.Errorf("player_id and stat_id are mutually exclusive"),
		)
	case playerID != 0:
		span.SetAttributes(attribute.Int64("player_id", playerID))
		rows, err := s.qry.ListPlayerStatsByPlayer(ctx, playerID)
		if err != nil {
			return nil, internalErr(ctx, err)
		}
		out = make([]*graphv1.PlayerStat, len(rows))
		for i, r := range rows {
			out[i] = &graphv1.PlayerStat{
				Id:       r.ID,
				PlayerId: r.PlayerID,
				StatId:   r.StatID,
				Label:    r.Label,
				Value:    r.Value,
			}
		}
	case statID != 0:
		span.SetAttributes(attribute.Int64("stat_id", statID))
		rows, err := s.qry.ListPlayerStatsByStat(ctx, statID)
		if err != nil {
			return nil, internalErr(ctx, err)
		}
		out = make([]*graphv1.PlayerStat, len(rows))
		for i, r := range rows {
			out[i] = &graphv1.PlayerStat{
				Id:         r.ID,
				PlayerId:   r.PlayerID,
				PlayerName: r.PlayerName,
				StatId:     r.StatID,
				Value:      r.Value,
			}
		}
	default:
		return nil, connect.NewError(
			connect.CodeInvalidArgument,
			fmt.Errorf("either player_id or stat_id is required"),
		)
	}
	return connect.NewResponse(&graphv1.ListPlayerStatsResponse{PlayerStats: out}), nil
}

func (s Service) GetSummary(ctx context.Context, req *connect.Request[graphv1.GetSummaryRequest]) (*connect.Response[graphv1.GetSummaryResponse], error) {
	ctx, span := tracer.Start(ctx, "GetSummary")
	defer span.End()

	counts, err := s.qry.CountGraph(ctx)
	if err != nil {
		return nil, internalErr(ctx, err)
	}
	return connect.NewResponse(&graphv1.GetSummaryResponse{
		Leagues:     counts.Leagues,
		Clubs:       counts.Clubs,
		Players:     counts.Players,
		Stats:       counts.Stats,
		PlayerStats: counts.PlayerStats,
	}), nil
}
