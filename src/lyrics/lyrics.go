/*
Package lyrics counts the words in song lyrics fetched from a lyrics.ovh compatible
web service.

API documentation: https://lyricsovh.docs.apiary.io/
*/
package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ironsmile/lyricount/src/config"
	"github.com/ironsmile/lyricount/src/music"
)

const lyricsEndpoint = "%s/v1/%s/%s"

// maxResponseSize limits how much of a response body is read. Song lyrics are
// never anywhere close to it.
const maxResponseSize = 1024 * 1024

// Client fetches lyrics and counts their words. It is safe for concurrent use.
type Client struct {
	useragent  string
	timeout    time.Duration
	limiter    *rate.Limiter
	httpClient *http.Client
	logger     *zap.Logger

	lyricsAPIHost string
}

// NewClient returns a Client configured with cfg. A positive cfg.LyricsRateLimit
// limits the number of requests per second made by this client.
func NewClient(cfg config.Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.LyricsRateLimit > 0 {
		burst := cfg.Concurrency
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.LyricsRateLimit), burst)
	}

	return &Client{
		useragent:     cfg.UserAgent,
		timeout:       cfg.RequestTimeout,
		limiter:       limiter,
		httpClient:    httpClient,
		logger:        logger.Named("lyrics"),
		lyricsAPIHost: cfg.LyricsURL,
	}
}

// CountWords returns the number of words in the lyrics of the song `title` by
// `artist`. It never fails. When the lyrics could not be obtained for whatever
// reason the result is absent and its Reason says why.
func (c *Client) CountWords(ctx context.Context, artist, title string) music.WordCount {
	text, err := c.fetch(ctx, artist, title)
	if err != nil {
		c.logAbsent(artist, title, err)
		return music.Absent(title, err)
	}

	return music.Found(title, CountWords(text))
}

func (c *Client) logAbsent(artist, title string, err error) {
	fields := []zap.Field{
		zap.String("artist", artist),
		zap.String("title", title),
		zap.Error(err),
	}

	switch {
	case errors.Is(err, music.ErrNotFound):
		c.logger.Debug("no lyrics", fields...)
	case errors.Is(err, context.Canceled):
		c.logger.Debug("lyrics request abandoned", fields...)
	default:
		c.logger.Warn("cannot get lyrics", fields...)
	}
}

// fetch returns the lyrics text for a song.
func (c *Client) fetch(ctx context.Context, artist, title string) (string, error) {
	if strings.TrimSpace(artist) == "" || strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("empty artist or title: %w", music.ErrNotFound)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	endpointURL := fmt.Sprintf(
		lyricsEndpoint,
		c.lyricsAPIHost,
		url.PathEscape(artist),
		url.PathEscape(title),
	)
	req, err := http.NewRequest(http.MethodGet, endpointURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating lyrics API req: %w", err)
	}
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", music.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("lyrics API returned HTTP 404: %w", music.ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"%w: lyrics API returned HTTP %d",
			music.ErrUpstream,
			resp.StatusCode,
		)
	}

	var body lyricsResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize))
	if err := dec.Decode(&body); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: reading lyrics response: %w", music.ErrNetwork, err)
		}
		return "", fmt.Errorf("%w: unrecognised JSON returned by lyrics API: %w",
			music.ErrUpstream, err)
	}

	if body.Error != "" {
		return "", fmt.Errorf("lyrics API: %s: %w", body.Error, music.ErrNotFound)
	}

	if strings.TrimSpace(body.Lyrics) == "" {
		return "", fmt.Errorf("empty lyrics: %w", music.ErrNotFound)
	}

	return body.Lyrics, nil
}

// CountWords returns the number of whitespace delimited words in text after all
// new lines have been replaced with spaces.
func CountWords(text string) int {
	text = newLines.Replace(text)
	return len(strings.Fields(text))
}

var newLines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// lyricsResponse is the JSON returned by the lyrics API. On success only
// Lyrics is set, on failure only Error is.
type lyricsResponse struct {
	Lyrics string `json:"lyrics"`
	Error  string `json:"error"`
}
