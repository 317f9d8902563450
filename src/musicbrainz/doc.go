/*
Package musicbrainz finds artists and their works using the MusicBrainz web service.

It resolves a free text artist name to the best matching MusicBrainz artist and then
browses all works (songs) attributed to this artist, page by page.

The following API is used to achieve this packages' objective:

  - MusicBrainz API: https://musicbrainz.org/doc/MusicBrainz_API
*/
package musicbrainz
