package musicbrainz

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/ironsmile/lyricount/src/music"
)

const musicBrainzWorkBrowseEndpoint = "%s/ws/2/work/"

// ListWorks returns the titles of all works by the artist with MusicBrainz ID
// `artistID`. Works are requested a page at a time until an empty page is
// returned or the configured maximum number of pages is reached. In the latter
// case the returned catalog is marked as truncated.
//
// A failure of any page fails the whole listing. No partial catalog is ever
// returned together with an error.
func (c *Client) ListWorks(ctx context.Context, artistID string) (music.Catalog, error) {
	var (
		catalog music.Catalog
		total   = -1
	)

	mbURL := fmt.Sprintf(musicBrainzWorkBrowseEndpoint, c.musicBrainzAPIHost)

	for offset := 0; ; offset += c.pageSize {
		if catalog.Pages >= c.maxPages {
			catalog.Truncated = total < 0 || total > len(catalog.Titles)
			if catalog.Truncated {
				c.logger.Warn("stopped listing works at the page limit",
					zap.String("artist", artistID),
					zap.Int("pages", catalog.Pages),
					zap.Int("works", len(catalog.Titles)),
					zap.Int("total", total),
				)
			}
			return catalog, nil
		}

		query := url.Values{}
		query.Set("artist", artistID)
		query.Set("limit", strconv.Itoa(c.pageSize))
		query.Set("offset", strconv.Itoa(offset))

		var root mbWorkBrowseData
		if err := c.get(ctx, mbURL, query, &root); err != nil {
			return music.Catalog{}, fmt.Errorf(
				"listing works of %s at offset %d: %w",
				artistID,
				offset,
				err,
			)
		}

		works := root.WorkList.Works
		if len(works) == 0 {
			return catalog, nil
		}

		if root.WorkList.Count != nil {
			total = *root.WorkList.Count
		}

		catalog.Pages++
		for _, work := range works {
			catalog.Titles = append(catalog.Titles, work.Title)
		}
	}
}

/*
mbWorkBrowseData represents the response from the MusicBrainz work browse XML.
Truncated example:

<metadata>
    <work-list count="325" offset="0">
        <work id="id" type="Song" type-id="typeid">
            <title>Creep</title>
        </work>
    </work-list>
</metadata>
*/
type mbWorkBrowseData struct {
	WorkList mbWorkList `xml:"work-list"`
}

type mbWorkList struct {
	Count  *int     `xml:"count,attr"`
	Offset int      `xml:"offset,attr"`
	Works  []mbWork `xml:"work"`
}

type mbWork struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title"`
}
