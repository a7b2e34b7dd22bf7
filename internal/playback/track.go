package playback

import (
	"time"

	"github.com/llehouerou/soundsphere/internal/catalog"
)

// Track represents a track in the engine's queue.
// This is a copy of the data, not a reference to catalog.Track.
type Track struct {
	ID       string
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
	Artwork  string
	AudioURL string
}

// FromCatalog converts a catalog track into an engine track.
func FromCatalog(t catalog.Track) Track {
	return Track{
		ID:       t.ID,
		Title:    t.Title,
		Artist:   t.Artist,
		Album:    t.Album,
		Duration: time.Duration(t.Duration) * time.Second,
		Artwork:  t.Image,
		AudioURL: t.AudioURL,
	}
}

// FromCatalogList converts a catalog track list into an engine queue.
func FromCatalogList(tracks []catalog.Track) []Track {
	out := make([]Track, len(tracks))
	for i, t := range tracks {
		out[i] = FromCatalog(t)
	}
	return out
}
