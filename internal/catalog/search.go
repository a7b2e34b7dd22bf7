package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Results holds the outcome of a catalog search.
type Results struct {
	Tracks  []Track
	Artists []Artist
}

// Search filters tracks and artists by a case-insensitive substring match
// on title, artist, album or name. An empty or whitespace-only query
// matches nothing.
func (c *Catalog) Search(query string) Results {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Results{}
	}

	tracks := lo.Filter(c.tracks, func(t Track, _ int) bool {
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q) ||
			strings.Contains(strings.ToLower(t.Album), q)
	})
	artists := lo.Filter(c.artists, func(a Artist, _ int) bool {
		return strings.Contains(strings.ToLower(a.Name), q)
	})

	return Results{Tracks: tracks, Artists: artists}
}
