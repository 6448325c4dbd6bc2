package fbref

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"footygraph/lib/scrapers/core"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches and parses stats pages.
type Client struct {
	fetcher core.Fetcher
}

func NewClient(fetcher core.Fetcher) Client {
	return Client{fetcher: fetcher}
}

func (c Client) document(ctx context.Context, link string) (*url.URL, *goquery.Document, error) {
	base, err := url.Parse(link)
	if err != nil {
		return nil, nil, err
	}
	body, err := c.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("parse html of %s: %w", link, err)
	}
	return base, doc, nil
}

// LeagueTable fetches a competition page and returns its squad links.
func (c Client) LeagueTable(ctx context.Context, link string) ([]SquadLink, error) {
	base, doc, err := c.document(ctx, link)
	if err != nil {
		return nil, err
	}
	return ParseLeagueTable(ctx, base, doc)
}

func (c Client) Squad(ctx context.Context, link string) (SquadPage, error) {
	base, doc, err := c.document(ctx, link)
	if err != nil {
		return SquadPage{}, err
	}
	return ParseSquad(ctx, base, doc)
}

func (c Client) Player(ctx context.Context, link string) (PlayerPage, error) {
	_, doc, err := c.document(ctx, link)
	if err != nil {
		return PlayerPage{}, err
	}
	return ParsePlayer(ctx, doc)
}
