package musicbrainz

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ironsmile/lyricount/src/config"
	"github.com/ironsmile/lyricount/src/music"
)

// Client is a client for the MusicBrainz web service. It knows how to find an
// artist by name and how to list all works of an artist. It is safe for
// concurrent use.
//
// The kind people at MusicBrainz provide their API at no cost for everyone
// to use. For that reason they have kindly asked for all applications to
// throttle their usage as much as possible and do not exceed one request
// per second. So we are good citizen and throttle ourselves: no more than one
// request per `delay` is made by a single Client. The user agent is required so
// that they can use it for throttling and filtering out bad applications.
// More info: https://musicbrainz.org/doc/XML_Web_Service/Rate_Limiting
type Client struct {
	sync.Mutex

	delay      time.Duration
	delayer    *time.Timer
	useragent  string
	timeout    time.Duration
	pageSize   int
	maxPages   int
	httpClient *http.Client
	logger     *zap.Logger

	musicBrainzAPIHost string
}

// NewClient returns fully configured Client. All requests are made with
// httpClient which is expected to be shared with the rest of the program.
func NewClient(cfg config.Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		delay:              cfg.MusicBrainzDelay,
		delayer:            time.NewTimer(0),
		useragent:          cfg.UserAgent,
		timeout:            cfg.RequestTimeout,
		pageSize:           cfg.PageSize,
		maxPages:           cfg.MaxPages,
		httpClient:         httpClient,
		logger:             logger.Named("musicbrainz"),
		musicBrainzAPIHost: cfg.MusicBrainzURL,
	}
}

// get makes a throttled GET request to endpoint and decodes the XML response
// into `into`.
func (c *Client) get(
	ctx context.Context,
	endpoint string,
	query url.Values,
	into any,
) error {
	c.Lock()
	defer c.Unlock()

	select {
	case <-c.delayer.C:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer c.delayer.Reset(c.delay)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating MusicBrainz XML API req: %w", err)
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/xml")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req = req.WithContext(ctx)

	c.logger.Debug("request", zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", music.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"%w: MusicBrainz XML API returned HTTP %d",
			music.ErrUpstream,
			resp.StatusCode,
		)
	}

	if err := xml.NewDecoder(resp.Body).Decode(into); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: reading MusicBrainz response: %w", music.ErrNetwork, err)
		}
		return fmt.Errorf(
			"%w: decoding MusicBrainz XML API response: %w",
			music.ErrUpstream,
			err,
		)
	}

	return nil
}
