/*
Package music holds the types shared by every stage of a lyrics count: the resolved
artist, its catalog of works and the per-song word counts. It also defines the
error taxonomy which the stages use to tell the pipeline what went wrong.
*/
package music

import "errors"

// ErrNotFound is returned (wrapped) when an upstream service has no record for
// the thing asked for. For example no artist matches a search or there are no
// lyrics for a song.
var ErrNotFound = errors.New("not found")

// ErrUpstream is returned (wrapped) when an upstream service answered but the
// answer was not something we could use: unexpected HTTP status, malformed body
// and similar.
var ErrUpstream = errors.New("unexpected upstream response")

// ErrNetwork is returned (wrapped) when an upstream service could not be reached
// at all or did not answer within the request timeout.
var ErrNetwork = errors.New("network failure")

// Artist is an artist as known by the metadata service.
type Artist struct {
	// ID is the canonical identifier (a MusicBrainz ID).
	ID string

	// Name is the display name of the artist. It is the one used for looking
	// up lyrics since it is what the lyrics services know the artist as.
	Name string
}

// Catalog is the list of works for a single artist.
type Catalog struct {
	// Titles of all works in the order the metadata service returned them.
	// There is no guarantee that a title appears only once.
	Titles []string

	// Pages is the number of non-empty pages which were fetched.
	Pages int

	// Truncated is true when the listing stopped because it reached the
	// maximum number of pages and not because the catalog ended.
	Truncated bool
}

// WordCount is the result of counting the words in the lyrics of one song. It is
// either present, in which case Words is meaningful, or absent.
type WordCount struct {
	// Title is the song title exactly as it was given for counting.
	Title string

	// Words is the number of words in the song's lyrics. Only meaningful when
	// Present is true.
	Words int

	// Present is false when the count could not be obtained.
	Present bool

	// Reason explains why the count is absent. Nil for present counts.
	Reason error
}

// Found returns a present word count for title.
func Found(title string, words int) WordCount {
	return WordCount{
		Title:   title,
		Words:   words,
		Present: true,
	}
}

// Absent returns a word count for title which marks it as unavailable because
// of reason.
func Absent(title string, reason error) WordCount {
	return WordCount{
		Title:  title,
		Reason: reason,
	}
}
