package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundsphere/internal/library"
	"github.com/llehouerou/soundsphere/internal/playback"
)

const seekStep = 5 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-playerBarHeight-1)
		return m, nil

	case stateChangedMsg:
		m.snap = m.player.Snapshot()
		return m, waitForState(m.sub)

	case trackChangedMsg:
		m.snap = m.player.Snapshot()
		return m, waitForTrack(m.sub)

	case positionChangedMsg:
		m.snap.Position = msg.Position
		return m, waitForPosition(m.sub)

	case modeChangedMsg:
		m.snap.RepeatMode = msg.RepeatMode
		m.snap.Shuffle = msg.Shuffle
		return m, waitForMode(m.sub)

	case volumeChangedMsg:
		m.snap.Volume = msg.Volume
		return m, waitForVolume(m.sub)

	case playbackErrorMsg:
		m.status = errorStyle.Render("Playback error: " + msg.Err.Error())
		m.snap = m.player.Snapshot()
		return m, waitForError(m.sub)

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextView):
		if m.view == viewPlaylistDetail {
			m.view = viewPlaylists
		} else {
			m.view = (m.view + 1) % viewCount
		}
		m.reloadItems()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.view == viewPlaylistDetail {
			m.view = viewPlaylists
			m.openPlaylist = ""
			m.reloadItems()
		}
		return m, nil

	case key.Matches(msg, m.keys.Play):
		return m.playSelected()

	case key.Matches(msg, m.keys.Toggle):
		if err := m.player.TogglePlay(); err != nil && !errors.Is(err, playback.ErrNoTrack) {
			m.status = errorStyle.Render(err.Error())
		}
		m.snap = m.player.Snapshot()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.player.Next()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.player.Previous()
		return m, nil

	case key.Matches(msg, m.keys.SeekFwd):
		m.player.SeekTo(m.snap.Position + seekStep)
		return m, nil

	case key.Matches(msg, m.keys.SeekBack):
		m.player.SeekTo(m.snap.Position - seekStep)
		return m, nil

	case key.Matches(msg, m.keys.VolUp):
		m.player.SetVolume(m.snap.Volume + 0.05)
		return m, nil

	case key.Matches(msg, m.keys.VolDown):
		m.player.SetVolume(m.snap.Volume - 0.05)
		return m, nil

	case key.Matches(msg, m.keys.Shuffle):
		m.player.ToggleShuffle()
		return m, nil

	case key.Matches(msg, m.keys.Repeat):
		m.player.CycleRepeatMode()
		return m, nil

	case key.Matches(msg, m.keys.Like):
		if item, ok := m.list.SelectedItem().(trackItem); ok {
			m.lib.ToggleLikedSong(item.track)
			m.reloadItems()
		}
		return m, nil

	case key.Matches(msg, m.keys.AddTo):
		return m.addSelectedToPlaylist()

	case key.Matches(msg, m.keys.Delete):
		if m.view == viewPlaylistDetail {
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				m.lib.RemoveFromPlaylist(m.openPlaylist, item.track.ID)
				m.reloadItems()
			}
			return m, nil
		}
		if item, ok := m.list.SelectedItem().(playlistItem); ok {
			m.lib.DeletePlaylist(item.playlist.ID)
			m.reloadItems()
		}
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		return m.startRename()

	case key.Matches(msg, m.keys.NewPlaylist):
		m.prompt = promptNewPlaylist
		m.input.Placeholder = "Playlist name"
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Search):
		if m.view == viewLibrary {
			m.prompt = promptSearch
			m.input.Placeholder = "Search"
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.view == viewPlaylists {
		if item, ok := m.list.SelectedItem().(playlistItem); ok {
			m.focusedPlaylist = item.playlist.ID
		}
	}
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.renameTarget = ""
		m.input.Blur()
		if m.view == viewLibrary {
			m.reloadItems()
		}
		return m, nil

	case "enter":
		value := m.input.Value()
		prompt := m.prompt
		m.prompt = promptNone
		m.input.Blur()

		switch prompt {
		case promptNewPlaylist:
			if _, err := m.lib.CreatePlaylist(value, ""); err != nil {
				m.status = errorStyle.Render(err.Error())
			} else {
				m.status = "Created playlist " + value
				if m.view == viewPlaylists {
					m.reloadItems()
				}
			}
		case promptRename:
			if err := m.lib.UpdatePlaylist(m.renameTarget, library.PlaylistUpdate{Title: value}); err != nil {
				m.status = errorStyle.Render(err.Error())
			} else {
				m.status = "Renamed playlist"
				m.reloadItems()
			}
			m.renameTarget = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Live-filter the library while searching; matching artists are
	// listed after the tracks.
	if m.prompt == promptSearch {
		if m.input.Value() == "" {
			m.setTrackItems(m.cat.Tracks())
			return m, cmd
		}
		res := m.cat.Search(m.input.Value())
		items := make([]list.Item, 0, len(res.Tracks)+len(res.Artists))
		for _, t := range res.Tracks {
			items = append(items, trackItem{track: t, liked: m.lib.IsLiked(t.ID)})
		}
		for _, a := range res.Artists {
			items = append(items, artistItem{artist: a})
		}
		m.list.SetItems(items)
	}
	return m, cmd
}

// playSelected acts on the selected entry: a track plays with the rest
// of its view as the queue, an album plays its tracks, an artist opens
// their tracks, a playlist opens its detail view.
func (m Model) playSelected() (tea.Model, tea.Cmd) {
	switch item := m.list.SelectedItem().(type) {
	case trackItem:
		queue := make([]playback.Track, 0, len(m.list.Items()))
		for _, it := range m.list.Items() {
			if ti, ok := it.(trackItem); ok {
				queue = append(queue, playback.FromCatalog(ti.track))
			}
		}
		m.player.PlayTrack(playback.FromCatalog(item.track), queue)

	case albumItem:
		tracks := m.cat.TracksByAlbum(item.album.Title)
		if len(tracks) == 0 {
			m.status = "No tracks for " + item.album.Title
			return m, nil
		}
		queue := playback.FromCatalogList(tracks)
		m.player.PlayTrack(queue[0], queue)

	case artistItem:
		m.prompt = promptNone
		m.input.Blur()
		m.setTrackItems(m.cat.TracksByArtist(item.artist.Name))
		m.status = "Tracks by " + item.artist.Name
		return m, nil

	case playlistItem:
		m.view = viewPlaylistDetail
		m.openPlaylist = item.playlist.ID
		m.reloadItems()
		return m, nil
	}
	m.snap = m.player.Snapshot()
	return m, nil
}

// startRename opens the rename prompt for the open or selected playlist.
func (m Model) startRename() (tea.Model, tea.Cmd) {
	var pl library.Playlist
	switch m.view {
	case viewPlaylistDetail:
		found, ok := m.lib.GetPlaylistByID(m.openPlaylist)
		if !ok {
			return m, nil
		}
		pl = found
	case viewPlaylists:
		item, ok := m.list.SelectedItem().(playlistItem)
		if !ok {
			return m, nil
		}
		pl = item.playlist
	default:
		return m, nil
	}

	m.renameTarget = pl.ID
	m.prompt = promptRename
	m.input.Placeholder = "Playlist name"
	m.input.SetValue(pl.Title)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) addSelectedToPlaylist() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok {
		return m, nil
	}
	if m.focusedPlaylist == "" {
		m.status = "Select a playlist first (tab to playlists view)"
		return m, nil
	}
	pl, ok := m.lib.GetPlaylistByID(m.focusedPlaylist)
	if !ok {
		m.focusedPlaylist = ""
		return m, nil
	}
	m.lib.AddToPlaylist(pl.ID, item.track)
	m.status = "Added " + item.track.Title + " to " + pl.Title
	return m, nil
}
