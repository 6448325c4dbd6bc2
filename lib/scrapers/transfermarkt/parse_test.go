package transfermarkt

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"footygraph/lib/scrapers/core"
	"footygraph/lib/testutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func readDocument(t *testing.T, name string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(testutil.ReadFixture(t, name)))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestParseLeague(t *testing.T) {
	base, err := url.Parse("https://www.transfermarkt.com/premier-league/startseite/wettbewerb/GB1")
	if err != nil {
		t.Fatal(err)
	}

	league, err := ParseLeague(context.Background(), base, readDocument(t, "league.html"))
	if err != nil {
		t.Fatal(err)
	}

	expected := LeaguePage{
		Name:        "Premier League",
		Coefficient: 4,
		Nation:      "England",
		ClubLinks: []string{
			"https://www.transfermarkt.com/arsenal-fc/kader/verein/11/saison_id/2023",
			"https://www.transfermarkt.com/tottenham-hotspur/kader/verein/148/saison_id/2023",
		},
	}
	if diff := cmp.Diff(expected, league); diff != "" {
		t.Fatalf("unexpected league page (-want +got):\n%s", diff)
	}
}

func TestParseClub(t *testing.T) {
	club, err := ParseClub(context.Background(), readDocument(t, "club.html"))
	if err != nil {
		t.Fatal(err)
	}

	expected := ClubPage{
		Name: "Arsenal FC",
		Players: []PlayerRow{
			{Name: "Bukayo Saka", Age: 22, Position: "Right Winger", MarketValue: "€120.00m"},
			{Name: "Martin Ødegaard", Age: 24, Position: "Attacking Midfield", MarketValue: "€110.00m"},
			{Name: "Karl Hein", Age: 21, Position: "Goalkeeper", MarketValue: "€750k"},
			{Name: "Reuell Walters", Age: 19, Position: "Right-Back", MarketValue: "-"},
		},
	}
	if diff := cmp.Diff(expected, club); diff != "" {
		t.Fatalf("unexpected club page (-want +got):\n%s", diff)
	}
}

func TestParseClubKeepsValuesOnTheirRow(t *testing.T) {
	// the first player has no age cell and no market value
	page := `<html><body>
<h1 class="data-header__headline-wrapper data-header__headline-wrapper--oswald">Tottenham Hotspur</h1>
<table class="items"><tbody>
<tr>
  <td class="posrela"><table class="inline-table">
    <tr><td class="hauptlink"><a href="/p/1">Son Heung-min</a></td></tr>
    <tr><td>Left Winger</td></tr>
  </table></td>
</tr>
<tr>
  <td class="posrela"><table class="inline-table">
    <tr><td class="hauptlink"><a href="/p/2">James Maddison</a></td></tr>
    <tr><td>Attacking Midfield</td></tr>
  </table></td>
  <td class="zentriert">27</td>
  <td class="rechts hauptlink">€70.00m</td>
</tr>
</tbody></table>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}

	club, err := ParseClub(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []PlayerRow{
		{Name: "Son Heung-min", Position: "Left Winger"},
		{Name: "James Maddison", Age: 27, Position: "Attacking Midfield", MarketValue: "€70.00m"},
	}, club.Players)
}

func TestParseMissingStructure(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><p>captcha</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ParseLeague(context.Background(), nil, doc)
	require.ErrorIs(t, err, ErrStructure)
	_, err = ParseClub(context.Background(), doc)
	require.ErrorIs(t, err, ErrStructure)
}

func TestClientFetchesAndParses(t *testing.T) {
	league := testutil.ReadFixture(t, "league.html")
	club := testutil.ReadFixture(t, "club.html")
	mux := http.NewServeMux()
	mux.HandleFunc("/premier-league/startseite/wettbewerb/GB1", func(w http.ResponseWriter, r *http.Request) {
		w.Write(league)
	})
	mux.HandleFunc("/arsenal-fc/kader/verein/11/saison_id/2023", func(w http.ResponseWriter, r *http.Request) {
		w.Write(club)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(core.NewClient(core.Options{}))

	page, err := client.League(context.Background(), server.URL+"/premier-league/startseite/wettbewerb/GB1")
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, page.ClubLinks, 2)
	require.Equal(t, server.URL+"/arsenal-fc/kader/verein/11/saison_id/2023", page.ClubLinks[0])

	squad, err := client.Club(context.Background(), page.ClubLinks[0])
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Arsenal FC", squad.Name)
	require.Len(t, squad.Players, 4)

	_, err = client.Club(context.Background(), server.URL+"/missing")
	require.ErrorIs(t, err, core.ErrTransient)
}
