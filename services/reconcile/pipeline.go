package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"footygraph/lib/graphstore"
	"footygraph/lib/scrapers/core"
	"footygraph/lib/scrapers/fbref"
	"footygraph/lib/scrapers/transfermarkt"
	"footygraph/lib/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("footygraph/services/reconcile")

var meter = otel.Meter("footygraph/services/reconcile")
var upsertCounter, _ = meter.Int64Counter("reconcile_upserts")
var skipCounter, _ = meter.Int64Counter("reconcile_skips")
var resolutionCounter, _ = meter.Int64Counter("reconcile_club_resolutions")

// ErrNothingPersisted is returned when a run walked every configured league
// without persisting a single league or player stat.
var ErrNothingPersisted = errors.New("pipeline persisted nothing")

const (
	report_identity_league         = "identity.league"
	report_identity_club           = "identity.club"
	report_stats_league            = "stats.league"
	report_stats_club              = "stats.club"
	report_stats_club_unresolved   = "stats.club-unresolved"
	report_stats_player            = "stats.player"
	report_stats_player_unresolved = "stats.player-unresolved"
	report_stats_value             = "stats.value"
)

// LeaguePair is one competition as it is known to both sources, the stats
// league is resolved against the clubs of the identity league.
type LeaguePair struct {
	Identity string
	Stats    string
}

type Options struct {
	Leagues   []LeaguePair
	ClubNames fbref.ClubNames
	Telemetry telemetry.API
}

// Report summarizes a single run.
type Report struct {
	Leagues int
	Clubs   int
	Players int

	StatsCreated         int
	PlayerStatsInserted  int
	PlayerStatsDuplicate int

	// Skipped counts skipped entities by the report id they were reported
	// under.
	Skipped     map[string]int
	Resolutions map[Stage]int
}

func newReport() Report {
	return Report{
		Skipped:     map[string]int{},
		Resolutions: map[Stage]int{},
	}
}

// PlayerStats is the number of player stats the run wrote or found already
// present.
func (r Report) PlayerStats() int {
	return r.PlayerStatsInserted + r.PlayerStatsDuplicate
}

// Pipeline walks the identity source and then the stats source, applying
// every record to the store as soon as it is read.
type Pipeline struct {
	store    graphstore.Store
	identity transfermarkt.Client
	stats    fbref.Client
	names    fbref.ClubNames
	leagues  []LeaguePair
	tel      telemetry.API
}

func NewPipeline(store graphstore.Store, fetcher core.Fetcher, opts Options) *Pipeline {
	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}
	names := opts.ClubNames
	if names.Abbreviations == nil && names.Aliases == nil {
		names = fbref.DefaultClubNames()
	}
	return &Pipeline{
		store:    store,
		identity: transfermarkt.NewClient(fetcher),
		stats:    fbref.NewClient(fetcher),
		names:    names,
		leagues:  opts.Leagues,
		tel:      telemetry.NewScopedAPI("reconcile", tel),
	}
}

func (p *Pipeline) skip(ctx context.Context, report *Report, id string, params ...any) {
	report.Skipped[id]++
	skipCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", id)))
	p.tel.ReportWarning(id, params...)
}

func (p *Pipeline) upserted(ctx context.Context, entity string) {
	upsertCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", entity)))
}

// Run performs one full reconciliation. Fetch, parse and resolution
// failures skip the entity they concern, store failures abort the run.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	report := newReport()

	scopes := make([]int64, len(p.leagues))
	for i, pair := range p.leagues {
		leagueID, err := p.walkIdentity(ctx, pair.Identity, &report)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "identity walk")
			return report, err
		}
		scopes[i] = leagueID
	}

	for i, pair := range p.leagues {
		err := p.walkStats(ctx, pair.Stats, scopes[i], &report)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "stats walk")
			return report, err
		}
	}

	p.tel.ReportCount("leagues", int64(report.Leagues))
	p.tel.ReportCount("clubs", int64(report.Clubs))
	p.tel.ReportCount("players", int64(report.Players))
	p.tel.ReportCount("player_stats", int64(report.PlayerStatsInserted))

	span.SetAttributes(
		attribute.Int("leagues", report.Leagues),
		attribute.Int("clubs", report.Clubs),
		attribute.Int("players", report.Players),
		attribute.Int("player_stats", report.PlayerStats()),
	)

	if report.Leagues == 0 && report.PlayerStats() == 0 {
		span.SetStatus(codes.Error, ErrNothingPersisted.Error())
		return report, ErrNothingPersisted
	}
	slog.InfoContext(
		ctx, "pipeline finished",
		"leagues", report.Leagues,
		"clubs", report.Clubs,
		"players", report.Players,
		"player_stats_inserted", report.PlayerStatsInserted,
	)
	return report, nil
}

func storeErr(what string, err error) error {
	return fmt.Errorf("store %s: %w", what, err)
}
