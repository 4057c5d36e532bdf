package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"golang.org/x/time/rate"
)

const samplePayload = `{
	"resultCount": 2,
	"results": [
		{
			"artistName": "Norah Jones",
			"trackName": "Don't Know Why",
			"collectionName": "Come Away With Me",
			"kind": "song",
			"previewUrl": "https://example.com/p1.m4a"
		},
		{
			"artistName": "Norah Jones",
			"trackName": "Sunrise",
			"collectionName": "Feels Like Home",
			"kind": "song",
			"previewUrl": "https://example.com/p2.m4a"
		}
	]
}`

// newTestClient points a Client at srv with the rate limiter opened up
func newTestClient(srv *httptest.Server, country string) *Client {
	c := NewClientWithBaseURL(srv.URL, country)
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestSearchDecodesCatalogPayload(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"term":    r.URL.Query().Get("term"),
			"country": r.URL.Query().Get("country"),
			"media":   r.URL.Query().Get("media"),
			"entity":  r.URL.Query().Get("entity"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := newTestClient(srv, "de")
	tracks, err := c.Search(context.Background(), "norah jones")

	require.NoError(t, err)
	require.Len(t, tracks, 2)
	require.Equal(t, "Norah Jones", tracks[0].Artist)
	require.Equal(t, "Don't Know Why", tracks[0].Title)
	require.Equal(t, "Come Away With Me", tracks[0].Album)
	require.Equal(t, "song", tracks[0].Kind)
	require.Equal(t, "Sunrise", tracks[1].Title)

	require.Equal(t, "norah jones", gotQuery["term"])
	require.Equal(t, "de", gotQuery["country"])
	require.Equal(t, "music", gotQuery["media"])
	require.Equal(t, "song", gotQuery["entity"])
}

func TestSearchEmptyResultSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultCount": 0, "results": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	tracks, err := c.Search(context.Background(), "zzzzzzz")

	require.NoError(t, err)
	require.Empty(t, tracks)
}

func TestSearchNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	_, err := c.Search(context.Background(), "abc")

	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestSearchMalformedPayloadIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultCount": `))
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	_, err := c.Search(context.Background(), "abc")

	require.Error(t, err)
}

func TestSearchHonoursContextCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(srv, "")
	ctx, cancel := context.WithCancel(context.Background())

	errs := make(chan error, 1)
	go func() {
		_, err := c.Search(ctx, "abc")
		errs <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errs:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled request did not return")
	}
}

func TestDefaultCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "us", r.URL.Query().Get("country"))
		_, _ = w.Write([]byte(`{"resultCount": 0, "results": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv, "")
	_, err := c.Search(context.Background(), "abc")
	require.NoError(t, err)
}
