package core

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"time"

	devenv "footygraph/dev/env"

	"github.com/PuerkitoBio/purell"
	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type webpage struct {
	Contents  []byte
	FetchedAt int64
}

// PageCache keeps fetched documents in badger so that a re-run of an
// interrupted crawl does not fetch pages it already has.
type PageCache struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenPageCache opens a badger cache in dir (which may start with
// <dev_state>), an empty dir keeps the cache in memory.
func OpenPageCache(dir string, ttl time.Duration) (*PageCache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	if dir != "" {
		resolved, err := devenv.ResolvePath(dir)
		if err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(resolved)
	}
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &PageCache{db: db, ttl: ttl}, nil
}

func (c *PageCache) Close() error {
	return c.db.Close()
}

func cacheKey(url string) ([]byte, error) {
	normalized, err := purell.NormalizeURLString(
		url,
		purell.FlagsSafe|
			purell.FlagsUsuallySafeNonGreedy|
			purell.FlagRemoveDirectoryIndex|
			purell.FlagRemoveFragment|
			purell.FlagSortQuery,
	)
	if err != nil {
		return nil, err
	}
	return []byte("page:" + normalized), nil
}

// Get returns the cached document for url, ok is false on a miss.
func (c *PageCache) Get(ctx context.Context, url string) (contents []byte, ok bool, err error) {
	_, span := tracer.Start(ctx, "PageCache.Get")
	defer span.End()

	key, err := cacheKey(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return nil, false, err
	}
	span.SetAttributes(attribute.String("cache_key", string(key)))

	var serialized []byte
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		serialized, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read item from badger")
		return nil, false, err
	}

	var cached webpage
	err = gob.NewDecoder(bytes.NewReader(serialized)).Decode(&cached)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached item")
		return nil, false, err
	}
	span.SetAttributes(
		attribute.Int("contentlength", len(cached.Contents)),
		attribute.Int64("fetched_at", cached.FetchedAt),
	)
	return cached.Contents, true, nil
}

// Set stores the document for url, it expires after the cache ttl.
func (c *PageCache) Set(ctx context.Context, url string, contents []byte) error {
	_, span := tracer.Start(ctx, "PageCache.Set")
	defer span.End()

	key, err := cacheKey(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return err
	}

	var serialized bytes.Buffer
	err = gob.NewEncoder(&serialized).Encode(webpage{
		Contents:  contents,
		FetchedAt: time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize webpage")
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, serialized.Bytes())
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
}
