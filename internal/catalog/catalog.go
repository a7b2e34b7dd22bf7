// Package catalog provides the built-in demo content: tracks, artists and
// albums. It is a read-only source; nothing in here is ever mutated.
package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Track is a playable catalog entry. Duration is in whole seconds, the way
// it is stored and serialized everywhere in the app.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration int    `json:"duration"`
	Image    string `json:"image"`
	AudioURL string `json:"audioUrl"`
}

// Artist is a browsable artist entry.
type Artist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Followers string `json:"followers"`
}

// Album groups tracks under a shared title and artwork.
type Album struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Image  string `json:"image"`
	Year   int    `json:"year"`
}

// Catalog holds the full demo content set.
type Catalog struct {
	tracks  []Track
	artists []Artist
	albums  []Album
}

// New returns the built-in demo catalog.
func New() *Catalog {
	return &Catalog{
		tracks:  demoTracks,
		artists: demoArtists,
		albums:  demoAlbums,
	}
}

// Tracks returns a copy of all catalog tracks.
func (c *Catalog) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// Artists returns a copy of all catalog artists.
func (c *Catalog) Artists() []Artist {
	out := make([]Artist, len(c.artists))
	copy(out, c.artists)
	return out
}

// Albums returns a copy of all catalog albums.
func (c *Catalog) Albums() []Album {
	out := make([]Album, len(c.albums))
	copy(out, c.albums)
	return out
}

// TracksByAlbum returns the tracks whose album matches the given title,
// case-insensitively, in catalog order.
func (c *Catalog) TracksByAlbum(title string) []Track {
	return lo.Filter(c.tracks, func(t Track, _ int) bool {
		return strings.EqualFold(t.Album, title)
	})
}

// TracksByArtist returns the tracks by the given artist,
// case-insensitively, in catalog order.
func (c *Catalog) TracksByArtist(name string) []Track {
	return lo.Filter(c.tracks, func(t Track, _ int) bool {
		return strings.EqualFold(t.Artist, name)
	})
}
