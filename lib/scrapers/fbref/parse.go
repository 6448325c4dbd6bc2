package fbref

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"footygraph/lib/htmlutil"
	"footygraph/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("footygraph/lib/scrapers/fbref")

// ErrStructure is returned when a page is missing an element every page of
// its kind is expected to have.
var ErrStructure = errors.New("unexpected fbref page structure")

const (
	statsTableSelector = "table.stats_table"
	headerSelector     = "#meta h1"
	scoutSelector      = "table[id*=scout_summary]"

	squadMarker    = "/squads/"
	playerMarker   = "/players/"
	matchlogMarker = "/matchlogs/"
)

func structureErr(what string) error {
	return fmt.Errorf("%w: missing %s", ErrStructure, what)
}

// SquadLink is one club of a league table, DisplayName is the name exactly
// as the table shows it.
type SquadLink struct {
	DisplayName string
	Href        string
}

type SquadPage struct {
	// HeaderTitle is the club name taken from the "<season> <club> Stats"
	// header, empty when the header does not have that shape.
	HeaderTitle string
	PlayerLinks []string
}

type StatRow struct {
	Label string
	Value string
}

type PlayerPage struct {
	Name  string
	Stats []StatRow
}

// ParseLeagueTable reads the squad links of the first stats table.
func ParseLeagueTable(ctx context.Context, base *url.URL, doc *goquery.Document) ([]SquadLink, error) {
	ctx, span := tracer.Start(ctx, "ParseLeagueTable")
	defer span.End()

	table := doc.Find(statsTableSelector).First()
	if table.Length() == 0 {
		err := structureErr("league stats table")
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse league table")
		return nil, err
	}

	var squads []SquadLink
	for _, a := range htmlutil.DedupeAnchors(htmlutil.GetAnchors(ctx, base, table.Find("a"))) {
		if !strings.Contains(a.Href, squadMarker) || a.Name == "" {
			continue
		}
		squads = append(squads, SquadLink{DisplayName: a.Name, Href: a.Href})
	}

	span.SetAttributes(attribute.Int("squads", len(squads)))
	return squads, nil
}

var seasonTitle = regexp.MustCompile(`\d{4}-\d{4}\s(.+?)\sStats`)

// HeaderTitle extracts the club words out of a "2023-2024 Arsenal Stats"
// style header.
func HeaderTitle(header string) string {
	match := seasonTitle.FindStringSubmatch(header)
	if len(match) != 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func headerText(doc *goquery.Document) string {
	header := doc.Find(headerSelector).First()
	// the title lives in a span next to hidden helper text on most pages
	if span := header.Find("span").First(); span.Length() > 0 {
		if text := htmlutil.Text(span); text != "" {
			return text
		}
	}
	return htmlutil.Text(header)
}

// ParseSquad reads a club page: the header title and every player profile
// link, match log pages are excluded.
func ParseSquad(ctx context.Context, base *url.URL, doc *goquery.Document) (SquadPage, error) {
	ctx, span := tracer.Start(ctx, "ParseSquad")
	defer span.End()

	table := doc.Find(statsTableSelector).First()
	if table.Length() == 0 {
		err := structureErr("squad stats table")
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse squad")
		return SquadPage{}, err
	}

	page := SquadPage{
		HeaderTitle: HeaderTitle(htmlutil.Text(doc.Find(headerSelector))),
	}
	for _, a := range htmlutil.DedupeAnchors(htmlutil.GetAnchors(ctx, base, table.Find("a"))) {
		if !strings.Contains(a.Href, playerMarker) || strings.Contains(a.Href, matchlogMarker) {
			continue
		}
		page.PlayerLinks = append(page.PlayerLinks, a.Href)
	}

	span.SetAttributes(
		attribute.String("header_title", page.HeaderTitle),
		attribute.Int("players", len(page.PlayerLinks)),
	)
	return page, nil
}

// ParsePlayer reads a player page. Stats come from the rows of the first
// scouting summary table only, rows without a label or a value are dropped.
func ParsePlayer(ctx context.Context, doc *goquery.Document) (PlayerPage, error) {
	_, span := tracer.Start(ctx, "ParsePlayer")
	defer span.End()

	name := headerText(doc)
	if name == "" {
		err := structureErr("player header")
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse player")
		return PlayerPage{}, err
	}
	scout := doc.Find(scoutSelector).First()
	if scout.Length() == 0 {
		err := structureErr("scouting summary table")
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse player")
		return PlayerPage{}, err
	}

	page := PlayerPage{Name: name}
	scout.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		label := htmlutil.Text(row.Find("th"))
		if !textutil.KeepLabel(label) {
			return
		}
		value := htmlutil.Text(row.Find("td.right"))
		if value == "" {
			return
		}
		page.Stats = append(page.Stats, StatRow{Label: label, Value: value})
	})

	span.SetAttributes(
		attribute.String("name", name),
		attribute.Int("stats", len(page.Stats)),
	)
	return page, nil
}
