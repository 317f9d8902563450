package cli

import "strings"

// SplitArtists returns the artist names in the command line arguments. All
// arguments are joined with spaces and then split on commas so that both
// `lyricount Pink Floyd, Queen` and `lyricount "Pink Floyd" ,Queen` mean the same.
// Surrounding white space is removed and blank names are dropped.
func SplitArtists(args []string) []string {
	var artists []string
	for _, name := range strings.Split(strings.Join(args, " "), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		artists = append(artists, name)
	}
	return artists
}
