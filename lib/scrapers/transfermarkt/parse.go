package transfermarkt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"footygraph/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("footygraph/lib/scrapers/transfermarkt")

// ErrStructure is returned when a page is missing an element every page of
// its kind is expected to have.
var ErrStructure = errors.New("unexpected transfermarkt page structure")

const (
	headlineSelector    = "h1.data-header__headline-wrapper.data-header__headline-wrapper--oswald"
	coefficientSelector = `a[href="/uefa/5jahreswertung/statistik"]`
	nationSelector      = "span.data-header__club a"
	clubLinkMarker      = "/kader/verein/"
)

type LeaguePage struct {
	Name        string
	Coefficient int64
	Nation      string
	// ClubLinks are absolute, de-duplicated links to the squad page of every club.
	ClubLinks []string
}

// PlayerRow is one row of a squad table, the market value is left as the
// raw string shown on the page.
type PlayerRow struct {
	Name        string
	Age         int64
	Position    string
	MarketValue string
}

type ClubPage struct {
	Name    string
	Players []PlayerRow
}

func structureErr(what string) error {
	return fmt.Errorf("%w: missing %s", ErrStructure, what)
}

var firstDigit = regexp.MustCompile(`\d`)

// ParseLeague reads a league overview page, relative links are resolved
// against base.
func ParseLeague(ctx context.Context, base *url.URL, doc *goquery.Document) (LeaguePage, error) {
	ctx, span := tracer.Start(ctx, "ParseLeague")
	defer span.End()

	name := htmlutil.Text(doc.Find(headlineSelector))
	if name == "" {
		err := structureErr("league headline")
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse league")
		return LeaguePage{}, err
	}

	// the coefficient is the leading digit of the uefa ranking link
	coefficientText := htmlutil.Text(doc.Find(coefficientSelector))
	digit := firstDigit.FindString(coefficientText)
	if digit == "" {
		err := structureErr("uefa coefficient link")
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse league")
		return LeaguePage{}, err
	}
	coefficient, _ := strconv.ParseInt(digit, 10, 64)

	nation := htmlutil.Text(doc.Find(nationSelector))

	clubTable := doc.Find("table").Eq(1)
	links := clubLinks(ctx, base, clubTable.Find("a"))
	if len(links) == 0 {
		links = clubLinks(ctx, base, doc.Find("table.items a"))
	}

	span.SetAttributes(
		attribute.String("name", name),
		attribute.Int64("coefficient", coefficient),
		attribute.Int("clubs", len(links)),
	)
	return LeaguePage{
		Name:        name,
		Coefficient: coefficient,
		Nation:      nation,
		ClubLinks:   links,
	}, nil
}

func clubLinks(ctx context.Context, base *url.URL, anchors *goquery.Selection) []string {
	var out []string
	for _, a := range htmlutil.DedupeAnchors(htmlutil.GetAnchors(ctx, base, anchors)) {
		if strings.Contains(a.Href, clubLinkMarker) {
			out = append(out, a.Href)
		}
	}
	return out
}

var bracketedAge = regexp.MustCompile(`\((\d{1,2})\)`)

func parseAge(row *goquery.Selection) int64 {
	var age int64
	row.Find("td.zentriert").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if cell.Find("div").Length() > 0 {
			return true
		}
		text := htmlutil.Text(cell)
		if len(text) == 2 {
			parsed, err := strconv.ParseInt(text, 10, 64)
			if err == nil {
				age = parsed
				return false
			}
		}
		match := bracketedAge.FindStringSubmatch(text)
		if len(match) == 2 {
			age, _ = strconv.ParseInt(match[1], 10, 64)
			return false
		}
		return true
	})
	return age
}

func parsePlayerRow(row *goquery.Selection) (PlayerRow, bool) {
	nameCell := row.Find("td.hauptlink:not(.rechts)").First()
	name := htmlutil.Text(nameCell.Find("a"))
	if name == "" {
		name = htmlutil.Text(nameCell)
	}
	if name == "" {
		return PlayerRow{}, false
	}

	return PlayerRow{
		Name:        name,
		Age:         parseAge(row),
		Position:    htmlutil.Text(row.Find("table.inline-table tr").Eq(1)),
		MarketValue: htmlutil.Text(row.Find("td.rechts.hauptlink")),
	}, true
}

// ParseClub reads a squad page, every player is taken from a single table
// row so a missing cell never shifts values onto another player.
func ParseClub(ctx context.Context, doc *goquery.Document) (ClubPage, error) {
	_, span := tracer.Start(ctx, "ParseClub")
	defer span.End()

	name := htmlutil.Text(doc.Find(headlineSelector))
	if name == "" {
		err := structureErr("club headline")
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse club")
		return ClubPage{}, err
	}

	var players []PlayerRow
	skipped := 0
	doc.Find("table.items > tbody > tr").Each(func(_ int, row *goquery.Selection) {
		player, ok := parsePlayerRow(row)
		if !ok {
			skipped++
			return
		}
		players = append(players, player)
	})

	span.SetAttributes(
		attribute.String("name", name),
		attribute.Int("players", len(players)),
		attribute.Int("skipped_rows", skipped),
	)
	return ClubPage{Name: name, Players: players}, nil
}
