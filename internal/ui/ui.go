// Package ui is the terminal front end: it renders the catalog, the
// user's library and the player bar, and translates key presses into
// engine and store commands.
package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundsphere/internal/catalog"
	"github.com/llehouerou/soundsphere/internal/library"
	"github.com/llehouerou/soundsphere/internal/playback"
)

// view identifies which collection the list shows.
type view int

const (
	viewLibrary view = iota
	viewAlbums
	viewPlaylists
	viewLiked
	// viewPlaylistDetail sits outside the tab cycle; it is entered from
	// the playlists view and left with esc.
	viewPlaylistDetail
)

// viewCount is the number of views in the tab cycle.
const viewCount = 4

func (v view) title() string {
	switch v {
	case viewLibrary:
		return "Library"
	case viewAlbums:
		return "Albums"
	case viewPlaylists:
		return "Playlists"
	case viewLiked:
		return "Liked Songs"
	default:
		return ""
	}
}

// prompt identifies what the text input is currently collecting.
type prompt int

const (
	promptNone prompt = iota
	promptNewPlaylist
	promptRename
	promptSearch
)

// Model is the top-level Bubble Tea model.
type Model struct {
	player playback.Service
	lib    *library.Store
	cat    *catalog.Catalog
	sub    *playback.Subscription

	keys  keyMap
	list  list.Model
	input textinput.Model

	view   view
	prompt prompt
	// focusedPlaylist is the playlist last selected in the playlists
	// view; "a" adds tracks to it.
	focusedPlaylist string
	// openPlaylist is the playlist shown by the detail view.
	openPlaylist string
	// renameTarget is the playlist the rename prompt applies to.
	renameTarget string
	status       string

	snap playback.Snapshot

	width  int
	height int
}

// New builds the UI around an engine, a library store and the catalog.
func New(player playback.Service, lib *library.Store, cat *catalog.Catalog) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = viewLibrary.title()
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	input := textinput.New()
	input.CharLimit = 100

	m := Model{
		player: player,
		lib:    lib,
		cat:    cat,
		sub:    player.Subscribe(),
		keys:   defaultKeyMap(),
		list:   l,
		input:  input,
		snap:   player.Snapshot(),
	}
	m.reloadItems()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.sub),
		waitForTrack(m.sub),
		waitForPosition(m.sub),
		waitForMode(m.sub),
		waitForVolume(m.sub),
		waitForError(m.sub),
	)
}

// reloadItems repopulates the list for the current view.
func (m *Model) reloadItems() {
	switch m.view {
	case viewLibrary:
		m.setTrackItems(m.cat.Tracks())
	case viewAlbums:
		albums := m.cat.Albums()
		items := make([]list.Item, len(albums))
		for i, a := range albums {
			items[i] = albumItem{album: a}
		}
		m.list.SetItems(items)
	case viewPlaylists:
		playlists := m.lib.Playlists()
		items := make([]list.Item, len(playlists))
		for i, pl := range playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.list.SetItems(items)
	case viewLiked:
		m.setTrackItems(m.lib.LikedSongs())
	case viewPlaylistDetail:
		pl, ok := m.lib.GetPlaylistByID(m.openPlaylist)
		if !ok {
			// Deleted underneath us; fall back to the playlists view.
			m.view = viewPlaylists
			m.openPlaylist = ""
			m.reloadItems()
			return
		}
		m.setTrackItems(pl.Tracks)
		m.list.Title = pl.Title
		return
	}
	m.list.Title = m.view.title()
}

func (m *Model) setTrackItems(tracks []catalog.Track) {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t, liked: m.lib.IsLiked(t.ID)}
	}
	m.list.SetItems(items)
}
