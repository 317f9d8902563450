package musicbrainz

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pborman/uuid"
	"go.uber.org/zap"

	"github.com/ironsmile/lyricount/src/music"
)

const musicBrainzArtistSearchEndpoint = "%s/ws/2/artist/"

// ResolveArtist returns the best MusicBrainz match for the free text `name`. It
// returns an error wrapping music.ErrNotFound when nothing matches.
func (c *Client) ResolveArtist(ctx context.Context, name string) (music.Artist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return music.Artist{}, fmt.Errorf("empty artist name: %w", music.ErrNotFound)
	}

	query := url.Values{}
	query.Set("query", name)
	query.Set("limit", "1")

	var root mbArtistSearchData
	mbURL := fmt.Sprintf(musicBrainzArtistSearchEndpoint, c.musicBrainzAPIHost)
	if err := c.get(ctx, mbURL, query, &root); err != nil {
		return music.Artist{}, fmt.Errorf("searching for artist %q: %w", name, err)
	}

	if len(root.ArtistList.Artists) < 1 {
		return music.Artist{}, fmt.Errorf("artist %q: %w", name, music.ErrNotFound)
	}

	found := root.ArtistList.Artists[0]
	if uuid.Parse(found.ID) == nil {
		return music.Artist{}, fmt.Errorf(
			"%w: artist search returned malformed ID %q",
			music.ErrUpstream,
			found.ID,
		)
	}

	displayName := strings.TrimSpace(found.Name)
	if displayName == "" {
		return music.Artist{}, fmt.Errorf(
			"%w: artist %s has no name",
			music.ErrUpstream,
			found.ID,
		)
	}

	c.logger.Debug("resolved artist",
		zap.String("query", name),
		zap.String("id", found.ID),
		zap.String("name", displayName),
		zap.Int("score", found.Score),
	)

	return music.Artist{
		ID:   found.ID,
		Name: displayName,
	}, nil
}

// The following are structures only used to decode the XML response from MusicBrainz
// API. And only the stuff we are interested and nothing more.
type mbArtistSearchData struct {
	ArtistList mbArtistList `xml:"artist-list"`
}

type mbArtistList struct {
	Count   int        `xml:"count,attr"`
	Artists []mbArtist `xml:"artist"`
}

type mbArtist struct {
	ID    string `xml:"id,attr"`
	Score int    `xml:"score,attr"`
	Name  string `xml:"name"`
}
