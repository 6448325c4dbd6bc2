package reconcile

import (
	"context"
	"errors"

	"footygraph/lib/graphstore"
	"footygraph/lib/graphstore/db"
	"footygraph/lib/scrapers/fbref"
	"footygraph/lib/textutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// walkStats attaches the stats of one competition to the players persisted
// by the identity walk. Clubs are resolved among the clubs of leagueID, or
// among every club when leagueID is 0.
func (p *Pipeline) walkStats(ctx context.Context, link string, leagueID int64, report *Report) error {
	ctx, span := tracer.Start(ctx, "walkStats")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", link),
		attribute.Int64("league_id", leagueID),
	)

	squads, err := p.stats.LeagueTable(ctx, link)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.skip(ctx, report, report_stats_league, link, err)
		return nil
	}

	clubs, err := p.store.Clubs(ctx, leagueID)
	if err != nil {
		return storeErr("clubs", err)
	}

	for _, squad := range squads {
		err := p.walkStatsClub(ctx, squad, clubs, report)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) walkStatsClub(ctx context.Context, squad fbref.SquadLink, clubs []db.Club, report *Report) error {
	ctx, span := tracer.Start(ctx, "walkStatsClub")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", squad.Href),
		attribute.String("display_name", squad.DisplayName),
	)

	page, err := p.stats.Squad(ctx, squad.Href)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.skip(ctx, report, report_stats_club, squad.Href, err)
		return nil
	}

	query := ClubQuery{
		DisplayName: p.names.Fix(squad.DisplayName),
		HeaderTitle: page.HeaderTitle,
	}
	resolution, ok := ResolveClub(query, clubs)
	if !ok {
		p.skip(ctx, report, report_stats_club_unresolved, query.DisplayName, query.HeaderTitle)
		return nil
	}
	report.Resolutions[resolution.Stage]++
	resolutionCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", string(resolution.Stage))))
	p.tel.ReportDebug(
		"resolved club",
		query.DisplayName, resolution.Club.Name, resolution.Stage, resolution.Score,
	)
	span.SetAttributes(
		attribute.Int64("club_id", resolution.Club.ID),
		attribute.String("stage", string(resolution.Stage)),
	)

	for _, playerLink := range page.PlayerLinks {
		err := p.walkStatsPlayer(ctx, playerLink, resolution.Club, report)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) walkStatsPlayer(ctx context.Context, link string, club db.Club, report *Report) error {
	ctx, span := tracer.Start(ctx, "walkStatsPlayer")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	page, err := p.stats.Player(ctx, link)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.skip(ctx, report, report_stats_player, link, err)
		return nil
	}

	name := textutil.Transliterate(page.Name)
	player, err := p.store.FindPlayer(ctx, name, club.ID)
	if errors.Is(err, graphstore.ErrNotFound) {
		p.skip(ctx, report, report_stats_player_unresolved, name, club.Name)
		return nil
	}
	if err != nil {
		return storeErr("player lookup", err)
	}

	for _, row := range page.Stats {
		value, err := textutil.ParsePercent(row.Value)
		if err != nil {
			p.skip(ctx, report, report_stats_value, name, row.Label, err)
			continue
		}

		stat, created, err := p.store.EnsureStat(ctx, row.Label)
		if err != nil {
			return storeErr("stat", err)
		}
		if created {
			report.StatsCreated++
			p.upserted(ctx, "stat")
		}

		inserted, err := p.store.AddPlayerStat(ctx, player.ID, stat.ID, value)
		if err != nil {
			return storeErr("player stat", err)
		}
		if inserted {
			report.PlayerStatsInserted++
			p.upserted(ctx, "player_stat")
		} else {
			report.PlayerStatsDuplicate++
		}
	}
	return nil
}
