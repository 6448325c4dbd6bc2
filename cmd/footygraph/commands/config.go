package commands

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"footygraph/lib/configutil"
	"footygraph/lib/graphstore/db"
	"footygraph/lib/restyutil"
	"footygraph/lib/scrapers/core"
	"footygraph/lib/scrapers/fbref"
	"footygraph/lib/sqliteutil"
	"footygraph/lib/telemetry"
	"footygraph/services/reconcile"
)

type FetchConfig struct {
	DelayMs          int    `json:"delay_ms"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	Retries          int    `json:"retries"`
	RetryWaitMs      int    `json:"retry_wait_ms"`
	RetryMaxWaitMs   int    `json:"retry_max_wait_ms"`
	UserAgent        string `json:"user_agent"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
	CacheDir         string `json:"cache_dir"`
	CacheTtlHours    int    `json:"cache_ttl_hours"`
	DumpDir          string `json:"dump_dir"`
}

type SourceConfig struct {
	BaseUrl string `json:"base_url"`
}

// LeagueConfig pairs the path of a league on the identity source with the
// path of the same competition on the stats source.
type LeagueConfig struct {
	Identity string `json:"identity"`
	Stats    string `json:"stats"`
}

type ServeConfig struct {
	Port        int    `json:"port"`
	AccessToken string `json:"access_token"`
}

type Config struct {
	Database      sqliteutil.Config `json:"database"`
	Fetch         FetchConfig       `json:"fetch"`
	Identity      SourceConfig      `json:"identity"`
	Stats         SourceConfig      `json:"stats"`
	Leagues       []LeagueConfig    `json:"leagues"`
	ClubAliases   map[string]string `json:"club_aliases"`
	Abbreviations map[string]string `json:"abbreviations"`
	Schedule      string            `json:"schedule"`
	Serve         ServeConfig       `json:"serve"`
}

var defaultLeagues = []LeagueConfig{
	{Identity: "/premier-league/startseite/wettbewerb/GB1", Stats: "/en/comps/9/Premier-League-Stats"},
	{Identity: "/serie-a/startseite/wettbewerb/IT1", Stats: "/en/comps/11/Serie-A-Stats"},
	{Identity: "/primera-division/startseite/wettbewerb/ES1", Stats: "/en/comps/12/La-Liga-Stats"},
}

func (c *Config) applyDefaults() {
	if c.Database.File == "" && c.Database.Url == "" {
		c.Database.File = "<dev_state>/footygraph.db"
	}
	if c.Fetch.DelayMs == 0 {
		c.Fetch.DelayMs = 4000
	}
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = 30
	}
	if c.Fetch.Retries == 0 {
		c.Fetch.Retries = 3
	}
	if c.Fetch.RetryWaitMs == 0 {
		c.Fetch.RetryWaitMs = 2000
	}
	if c.Fetch.RetryMaxWaitMs == 0 {
		c.Fetch.RetryMaxWaitMs = 30000
	}
	if c.Fetch.CacheTtlHours == 0 {
		c.Fetch.CacheTtlHours = 24
	}
	if c.Identity.BaseUrl == "" {
		c.Identity.BaseUrl = "https://www.transfermarkt.co.uk"
	}
	if c.Stats.BaseUrl == "" {
		c.Stats.BaseUrl = "https://fbref.com"
	}
	if len(c.Leagues) == 0 {
		c.Leagues = defaultLeagues
	}
	if c.ClubAliases == nil {
		c.ClubAliases = fbref.DefaultAliases
	}
	if c.Abbreviations == nil {
		c.Abbreviations = fbref.DefaultAbbreviations
	}
	if c.Schedule == "" {
		c.Schedule = "0 4 * * 1"
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = 8000
	}
}

// loadConfig reads the config file (and its .local override) after loading
// .env, a missing file leaves every option at its default.
func loadConfig(name string) (Config, error) {
	err := configutil.LoadDotenv(".env", ".env.local")
	if err != nil {
		return Config{}, err
	}

	cfg, err := configutil.ReadConfig[Config](name)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no config file found, using defaults", "name", name)
		err = nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", name, err)
	}

	configutil.OverrideFromEnv(&cfg.Database.Url, "FOOTYGRAPH_DB_URL")
	configutil.OverrideFromEnv(&cfg.Database.AuthToken, "FOOTYGRAPH_DB_AUTH_TOKEN")
	configutil.OverrideFromEnv(&cfg.Serve.AccessToken, "FOOTYGRAPH_ACCESS_TOKEN")
	cfg.applyDefaults()
	return cfg, nil
}

func (c Config) openDB() (*sql.DB, error) {
	return c.Database.OpenDB(db.Schema)
}

func joinURL(base, path string) (string, error) {
	parsedBase, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	return parsedBase.ResolveReference(ref).String(), nil
}

func (c Config) leaguePairs() ([]reconcile.LeaguePair, error) {
	pairs := make([]reconcile.LeaguePair, len(c.Leagues))
	for i, l := range c.Leagues {
		identity, err := joinURL(c.Identity.BaseUrl, l.Identity)
		if err != nil {
			return nil, fmt.Errorf("identity league %q: %w", l.Identity, err)
		}
		stats, err := joinURL(c.Stats.BaseUrl, l.Stats)
		if err != nil {
			return nil, fmt.Errorf("stats league %q: %w", l.Stats, err)
		}
		pairs[i] = reconcile.LeaguePair{Identity: identity, Stats: stats}
	}
	return pairs, nil
}

func (c Config) clubNames() fbref.ClubNames {
	return fbref.ClubNames{
		Abbreviations: c.Abbreviations,
		Aliases:       c.ClubAliases,
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// newFetcher builds the http fetcher, the returned close function releases
// the page cache.
func (c Config) newFetcher(tel telemetry.API) (*core.Client, func(), error) {
	opts := core.Options{
		UserAgent:        c.Fetch.UserAgent,
		Delay:            ms(c.Fetch.DelayMs),
		Timeout:          time.Duration(c.Fetch.TimeoutSeconds) * time.Second,
		Retries:          c.Fetch.Retries,
		RetryWait:        ms(c.Fetch.RetryWaitMs),
		RetryMaxWait:     ms(c.Fetch.RetryMaxWaitMs),
		CloudflareBypass: c.Fetch.CloudflareBypass,
		Telemetry:        tel,
	}

	if c.Fetch.DumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(c.Fetch.DumpDir)
		if err != nil {
			return nil, nil, err
		}
		opts.Dump = output
	}

	closer := func() {}
	if c.Fetch.CacheDir != "" {
		cache, err := core.OpenPageCache(c.Fetch.CacheDir, time.Duration(c.Fetch.CacheTtlHours)*time.Hour)
		if err != nil {
			return nil, nil, fmt.Errorf("open page cache: %w", err)
		}
		opts.Cache = cache
		closer = func() {
			err := cache.Close()
			if err != nil {
				slog.Warn("failed to close page cache", "err", err)
			}
		}
	}

	return core.NewClient(opts), closer, nil
}
