package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundsphere/internal/catalog"
	"github.com/llehouerou/soundsphere/internal/library"
	"github.com/llehouerou/soundsphere/internal/media"
	"github.com/llehouerou/soundsphere/internal/playback"
	"github.com/llehouerou/soundsphere/internal/storage"
)

func newTestModel(t *testing.T) (Model, *library.Store) {
	t.Helper()

	lib := library.Open(storage.NewMemory())
	svc := playback.New(media.NewMock())
	t.Cleanup(func() { svc.Close() })

	m := New(svc, lib, catalog.New())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, lib
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPlaylistDetail_RemovesTrack(t *testing.T) {
	m, lib := newTestModel(t)
	tracks := catalog.New().Tracks()
	pl, err := lib.CreatePlaylist("Road Trip", "")
	if err != nil {
		t.Fatal(err)
	}
	lib.AddToPlaylist(pl.ID, tracks[0])
	lib.AddToPlaylist(pl.ID, tracks[1])

	m = update(t, m, keyMsg("tab")) // albums
	m = update(t, m, keyMsg("tab")) // playlists
	m = update(t, m, keyMsg("enter"))

	if m.view != viewPlaylistDetail {
		t.Fatalf("view = %v, want playlist detail", m.view)
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("detail shows %d tracks, want 2", got)
	}

	m = update(t, m, keyMsg("d"))

	got, ok := lib.GetPlaylistByID(pl.ID)
	if !ok {
		t.Fatal("playlist gone")
	}
	if len(got.Tracks) != 1 {
		t.Fatalf("playlist has %d tracks after removal, want 1", len(got.Tracks))
	}
	if got.Tracks[0].ID != tracks[1].ID {
		t.Errorf("remaining track = %q, want %q", got.Tracks[0].ID, tracks[1].ID)
	}
	if len(m.list.Items()) != 1 {
		t.Error("detail list not reloaded after removal")
	}

	m = update(t, m, keyMsg("esc"))
	if m.view != viewPlaylists {
		t.Errorf("view after esc = %v, want playlists", m.view)
	}
}

func TestPlaylistRename(t *testing.T) {
	m, lib := newTestModel(t)
	pl, err := lib.CreatePlaylist("Road Trip", "")
	if err != nil {
		t.Fatal(err)
	}

	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("e"))

	if m.prompt != promptRename {
		t.Fatal("rename prompt not active")
	}
	if m.input.Value() != "Road Trip" {
		t.Errorf("prompt prefill = %q, want existing title", m.input.Value())
	}

	m = update(t, m, keyMsg(" 2"))
	m = update(t, m, keyMsg("enter"))

	got, _ := lib.GetPlaylistByID(pl.ID)
	if got.Title != "Road Trip 2" {
		t.Errorf("title = %q, want %q", got.Title, "Road Trip 2")
	}
	if m.prompt != promptNone {
		t.Error("prompt still active after enter")
	}
}

func TestAlbumsView_PlaysAlbumTracks(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyMsg("tab"))
	if m.view != viewAlbums {
		t.Fatalf("view = %v, want albums", m.view)
	}

	m = update(t, m, keyMsg("enter"))

	snap := m.player.Snapshot()
	if snap.CurrentTrack == nil {
		t.Fatal("nothing playing after enter on an album")
	}
	if snap.CurrentTrack.Album != "Sherine 2024" {
		t.Errorf("playing album = %q, want Sherine 2024", snap.CurrentTrack.Album)
	}
}

func TestSearch_ListsArtistsAndDrillsIn(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyMsg("/"))
	m = update(t, m, keyMsg("eminem"))

	items := m.list.Items()
	if len(items) != 4 {
		t.Fatalf("search shows %d items, want 3 tracks + 1 artist", len(items))
	}
	if _, ok := items[3].(artistItem); !ok {
		t.Fatalf("last item is %T, want artistItem", items[3])
	}

	m = update(t, m, keyMsg("enter")) // close the prompt, keep results
	m.list.Select(3)
	m = update(t, m, keyMsg("enter"))

	if got := len(m.list.Items()); got != 3 {
		t.Errorf("artist drill-in shows %d tracks, want 3", got)
	}
}
