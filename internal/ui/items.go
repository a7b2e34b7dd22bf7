package ui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/soundsphere/internal/catalog"
	"github.com/llehouerou/soundsphere/internal/library"
)

// trackItem adapts a catalog track for the list widget.
type trackItem struct {
	track catalog.Track
	liked bool
}

func (i trackItem) Title() string {
	if i.liked {
		return "♥ " + i.track.Title
	}
	return i.track.Title
}

func (i trackItem) Description() string {
	d := time.Duration(i.track.Duration) * time.Second
	return fmt.Sprintf("%s · %s · %s", i.track.Artist, i.track.Album, formatDuration(d))
}

func (i trackItem) FilterValue() string {
	return i.track.Title + " " + i.track.Artist + " " + i.track.Album
}

// albumItem adapts a catalog album for the list widget.
type albumItem struct {
	album catalog.Album
}

func (i albumItem) Title() string {
	return i.album.Title
}

func (i albumItem) Description() string {
	return fmt.Sprintf("%s · %d", i.album.Artist, i.album.Year)
}

func (i albumItem) FilterValue() string {
	return i.album.Title + " " + i.album.Artist
}

// artistItem adapts a catalog artist for search results.
type artistItem struct {
	artist catalog.Artist
}

func (i artistItem) Title() string {
	return i.artist.Name
}

func (i artistItem) Description() string {
	return i.artist.Followers + " followers"
}

func (i artistItem) FilterValue() string {
	return i.artist.Name
}

// playlistItem adapts a playlist for the list widget.
type playlistItem struct {
	playlist library.Playlist
}

func (i playlistItem) Title() string {
	return i.playlist.Title
}

func (i playlistItem) Description() string {
	return fmt.Sprintf("%d tracks · %s · updated %s",
		len(i.playlist.Tracks),
		i.playlist.Description,
		humanize.Time(i.playlist.UpdatedAt),
	)
}

func (i playlistItem) FilterValue() string {
	return i.playlist.Title
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
