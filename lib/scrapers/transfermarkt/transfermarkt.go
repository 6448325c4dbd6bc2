package transfermarkt

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"footygraph/lib/scrapers/core"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches and parses identity pages.
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

// League fetches and parses a league overview page.
func (c Client) League(ctx context.Context, link string) (LeaguePage, error) {
	base, doc, err := c.document(ctx, link)
	if err != nil {
		return LeaguePage{}, err
	}
	return ParseLeague(ctx, base, doc)
}

// Club fetches and parses a squad page.
func (c Client) Club(ctx context.Context, link string) (ClubPage, error) {
	_, doc, err := c.document(ctx, link)
	if err != nil {
		return ClubPage{}, err
	}
	return ParseClub(ctx, doc)
}
