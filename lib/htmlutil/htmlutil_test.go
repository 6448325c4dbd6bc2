package htmlutil

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "  Arsenal FC \n", expected: "Arsenal FC"},
		{in: "Bukayo\n\t  Saka", expected: "Bukayo Saka"},
		{in: "\u00a0€120.00m\u200b", expected: "€120.00m"},
		{in: "", expected: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.in), test.in)
	}
}

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table>
			<tr><td><a href="/arsenal-fc/kader/verein/11">Arsenal
				FC</a></td></tr>
			<tr><td><a href="/arsenal-fc/kader/verein/11">Arsenal FC</a></td></tr>
			<tr><td><a>no href</a></td></tr>
			<tr><td><a href="https://fbref.com/en/squads/18bb7c10/Arsenal-Stats">Arsenal</a></td></tr>
		</table>
	`))
	if err != nil {
		t.Fatal(err)
	}
	base, err := url.Parse("https://www.transfermarkt.co.uk/premier-league/startseite/wettbewerb/GB1")
	if err != nil {
		t.Fatal(err)
	}

	anchors := GetAnchors(context.Background(), base, doc.Find("a"))
	expected := []Anchor{
		{Name: "Arsenal FC", Href: "https://www.transfermarkt.co.uk/arsenal-fc/kader/verein/11"},
		{Name: "Arsenal FC", Href: "https://www.transfermarkt.co.uk/arsenal-fc/kader/verein/11"},
		{Name: "Arsenal", Href: "https://fbref.com/en/squads/18bb7c10/Arsenal-Stats"},
	}
	if diff := cmp.Diff(expected, anchors); diff != "" {
		t.Fatal(diff)
	}

	deduped := DedupeAnchors(anchors)
	require.Len(t, deduped, 2)
	require.Equal(t, "Arsenal", deduped[1].Name)
}

func TestText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div id="meta"><h1><span> Bukayo Saka </span></h1><h1><span>Other</span></h1></div>`,
	))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Bukayo Saka", Text(doc.Find("#meta h1 span")))
	require.Equal(t, "", Text(doc.Find("#missing")))
}
