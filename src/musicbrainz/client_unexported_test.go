package musicbrainz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ironsmile/lyricount/src/config"
	"github.com/ironsmile/lyricount/src/music"
)

// TestClientResolvingArtistErrors checks the behaviour of the Client's method for
// resolving an artist in all kind of error situations.
func TestClientResolvingArtistErrors(t *testing.T) {
	tests := []struct {
		desc       string
		handler    http.HandlerFunc
		inspectErr func(*testing.T, error)
	}{
		{
			desc: "non 200 status code",
			handler: func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, music.ErrUpstream) {
					t.Errorf("expected %v but got %v", music.ErrUpstream, err)
				}
				if err != nil && !strings.Contains(err.Error(), "returned HTTP 503") {
					t.Error("expected an error showing what the XML API returned")
				}
			},
		},
		{
			desc: "malformed XML",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `definitely not an XML response`)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, music.ErrUpstream) {
					t.Errorf("expected %v but got %v", music.ErrUpstream, err)
				}
				if err != nil && !strings.Contains(err.Error(), "decoding") {
					t.Error("expected XML parsing error")
				}
			},
		},
		{
			desc: "no artists in the returned list",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `
					<metadata created="2021-09-17T19:15:05.632Z">
					<artist-list count="0" offset="0">
					</artist-list>
					</metadata>
				`)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, music.ErrNotFound) {
					t.Errorf("expected %v but got %v", music.ErrNotFound, err)
				}
			},
		},
		{
			desc: "artist ID is not a MusicBrainz ID",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `
					<metadata>
					<artist-list count="1" offset="0">
						<artist id="not-an-mbid" ns2:score="100"><name>Radiohead</name></artist>
					</artist-list>
					</metadata>
				`)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, music.ErrUpstream) {
					t.Errorf("expected %v but got %v", music.ErrUpstream, err)
				}
			},
		},
		{
			desc: "artist without a name",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `
					<metadata>
					<artist-list count="1" offset="0">
						<artist id="a74b1b7f-71a5-4011-9441-d0b5e4122711"></artist>
					</artist-list>
					</metadata>
				`)
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, music.ErrUpstream) {
					t.Errorf("expected %v but got %v", music.ErrUpstream, err)
				}
			},
		},
		{
			desc: "malformed HTTP response",
			handler: func(w http.ResponseWriter, req *http.Request) {
				w.Header().Add("content-length", "22")
				_, _ = w.Write([]byte("12"))
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, io.ErrUnexpectedEOF) {
					t.Errorf("expected %v but got %v", io.ErrUnexpectedEOF, err)
				}
			},
		},
		{
			desc: "slow server",
			handler: func(w http.ResponseWriter, req *http.Request) {
				select {
				case <-req.Context().Done():
				case <-time.After(5 * time.Second):
				}
			},
			inspectErr: func(t *testing.T, err error) {
				if !errors.Is(err, music.ErrNetwork) {
					t.Errorf("expected %v but got %v", music.ErrNetwork, err)
				}
				if !errors.Is(err, context.DeadlineExceeded) {
					t.Errorf("expected deadline exceeded but got %v", err)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			mbrainz := httptest.NewServer(test.handler)
			defer mbrainz.Close()

			cfg := config.Default()
			cfg.MusicBrainzDelay = 0
			cfg.RequestTimeout = 100 * time.Millisecond

			c := NewClient(cfg, mbrainz.Client(), nil)
			c.musicBrainzAPIHost = mbrainz.URL

			_, err := c.ResolveArtist(context.Background(), "does not matter")
			if err == nil {
				t.Fatal("expected an error")
			}
			test.inspectErr(t, err)
		})
	}
}

// TestClientThrottling makes sure that consecutive requests are not made faster
// than the configured delay.
func TestClientThrottling(t *testing.T) {
	var requestTimes []time.Time
	mbrainz := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			requestTimes = append(requestTimes, time.Now())
			fmt.Fprint(w, `<metadata><artist-list count="0" offset="0"/></metadata>`)
		},
	))
	defer mbrainz.Close()

	const delay = 50 * time.Millisecond

	cfg := config.Default()
	cfg.MusicBrainzURL = mbrainz.URL
	cfg.MusicBrainzDelay = delay

	c := NewClient(cfg, mbrainz.Client(), nil)
	for i := 0; i < 3; i++ {
		_, _ = c.ResolveArtist(context.Background(), "Radiohead")
	}

	if len(requestTimes) != 3 {
		t.Fatalf("expected 3 requests but got %d", len(requestTimes))
	}

	for i := 1; i < len(requestTimes); i++ {
		if between := requestTimes[i].Sub(requestTimes[i-1]); between < delay {
			t.Errorf("requests %d and %d were only %s apart", i-1, i, between)
		}
	}
}

// TestClientThrottlingRespectsContext makes sure that a caller waiting for its
// turn gives up when its context is done.
func TestClientThrottlingRespectsContext(t *testing.T) {
	cfg := config.Default()
	cfg.MusicBrainzURL = "http://127.0.0.1:1"

	c := NewClient(cfg, nil, nil)
	<-c.delayer.C
	c.delayer.Reset(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.ResolveArtist(ctx, "Radiohead")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded but got %v", err)
	}
}
