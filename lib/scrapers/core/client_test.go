package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"footygraph/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Retries:      2,
		RetryWait:    time.Millisecond * 5,
		RetryMaxWait: time.Millisecond * 20,
		Telemetry:    &telemetry.RecordingAPI{},
	}
}

func TestFetchSendsBrowserIdentity(t *testing.T) {
	var userAgent, connection string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		connection = r.Header.Get("Connection")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	client := NewClient(testOptions())
	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "<html>ok</html>", string(body))
	require.Equal(t, DefaultUserAgent, userAgent)
	require.Equal(t, "keep-alive", connection)
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	client := NewClient(testOptions())
	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "recovered", string(body))
	require.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestFetchGivesUpAfterRetries(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(testOptions())
	_, err := client.Fetch(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrTransient)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusBadGateway, fetchErr.Status)
	require.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testOptions())
	_, err := client.Fetch(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrTransient)
	require.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetchPacesRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := testOptions()
	opts.Delay = time.Millisecond * 60
	client := NewClient(opts)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.Fetch(context.Background(), server.URL)
		if err != nil {
			t.Fatal(err)
		}
	}
	require.GreaterOrEqual(t, time.Since(start), time.Millisecond*150)
}

func TestFetchPacesEveryAttempt(t *testing.T) {
	type hit struct {
		start time.Time
		end   time.Time
	}
	var (
		mutex sync.Mutex
		hits  []hit
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mutex.Lock()
		defer mutex.Unlock()
		h := hit{start: time.Now()}
		if len(hits) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.Write([]byte("ok"))
		}
		h.end = time.Now()
		hits = append(hits, h)
	}))
	defer server.Close()

	delay := time.Millisecond * 100
	opts := testOptions()
	opts.Delay = delay
	client := NewClient(opts)

	_, err := client.Fetch(context.Background(), server.URL+"/first")
	if err != nil {
		t.Fatal(err)
	}

	// time spent handling the previous page does not count against the delay
	time.Sleep(delay * 3 / 2)
	called := time.Now()
	_, err = client.Fetch(context.Background(), server.URL+"/second")
	if err != nil {
		t.Fatal(err)
	}

	mutex.Lock()
	defer mutex.Unlock()
	require.Len(t, hits, 4)
	for i := 1; i < 3; i++ {
		require.GreaterOrEqual(t, hits[i].start.Sub(hits[i-1].end), delay, "retry %d", i)
	}
	require.GreaterOrEqual(t, hits[3].start.Sub(called), delay)
}

func TestFetchHonorsContext(t *testing.T) {
	opts := testOptions()
	opts.Delay = time.Hour
	client := NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*20)
	defer cancel()
	_, err := client.Fetch(ctx, "http://127.0.0.1:1/never")
	require.ErrorIs(t, err, ErrTransient)
}

func TestFetchUsesPageCache(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("squad page"))
	}))
	defer server.Close()

	cache, err := OpenPageCache("", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	opts := testOptions()
	opts.Cache = cache
	client := NewClient(opts)

	for i := 0; i < 2; i++ {
		body, err := client.Fetch(context.Background(), server.URL+"/en/squads/18bb7c10/#stats")
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, "squad page", string(body))
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// fragments are dropped from the cache key
	body, ok, err := cache.Get(context.Background(), server.URL+"/en/squads/18bb7c10/")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, ok)
	require.Equal(t, "squad page", string(body))
}
