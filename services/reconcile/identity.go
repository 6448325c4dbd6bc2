package reconcile

import (
	"context"

	"footygraph/lib/graphstore"
	"footygraph/lib/textutil"

	"go.opentelemetry.io/otel/attribute"
)

// walkIdentity persists a league, its clubs and their players. It returns
// the league id, or 0 when the league page could not be read.
func (p *Pipeline) walkIdentity(ctx context.Context, link string, report *Report) (int64, error) {
	ctx, span := tracer.Start(ctx, "walkIdentity")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	page, err := p.identity.League(ctx, link)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		p.skip(ctx, report, report_identity_league, link, err)
		return 0, nil
	}

	league, err := p.store.UpsertLeague(ctx, graphstore.League{
		Name:        page.Name,
		Coefficient: page.Coefficient,
		Nation:      page.Nation,
	})
	if err != nil {
		return 0, storeErr("league", err)
	}
	report.Leagues++
	p.upserted(ctx, "league")

	for _, clubLink := range page.ClubLinks {
		err := p.walkIdentityClub(ctx, clubLink, league.ID, report)
		if err != nil {
			return league.ID, err
		}
	}
	return league.ID, nil
}

func (p *Pipeline) walkIdentityClub(ctx context.Context, link string, leagueID int64, report *Report) error {
	ctx, span := tracer.Start(ctx, "walkIdentityClub")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	page, err := p.identity.Club(ctx, link)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.skip(ctx, report, report_identity_club, link, err)
		return nil
	}

	club, err := p.store.UpsertClub(ctx, graphstore.Club{
		Name:     page.Name,
		LeagueID: leagueID,
	})
	if err != nil {
		return storeErr("club", err)
	}
	report.Clubs++
	p.upserted(ctx, "club")

	for _, row := range page.Players {
		_, err := p.store.UpsertPlayer(ctx, graphstore.Player{
			Name:        textutil.Transliterate(row.Name),
			Age:         row.Age,
			Position:    row.Position,
			MarketValue: textutil.ParseMarketValue(row.MarketValue),
			ClubID:      club.ID,
		})
		if err != nil {
			return storeErr("player", err)
		}
		report.Players++
		p.upserted(ctx, "player")
	}
	return nil
}
