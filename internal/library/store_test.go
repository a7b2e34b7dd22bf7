package library

import (
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/soundsphere/internal/catalog"
	"github.com/llehouerou/soundsphere/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()

	mem := storage.NewMemory()
	s := Open(mem)
	return s, mem
}

func track(id, title string) catalog.Track {
	return catalog.Track{ID: id, Title: title, Artist: "Artist", Album: "Album", Duration: 180}
}

func TestCreatePlaylist(t *testing.T) {
	s, _ := newTestStore(t)

	pl, err := s.CreatePlaylist("  Road Trip  ", "")
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}

	if pl.Title != "Road Trip" {
		t.Errorf("Title = %q, want trimmed Road Trip", pl.Title)
	}
	if pl.Description != DefaultDescription {
		t.Errorf("Description = %q, want default", pl.Description)
	}
	if pl.ID == "" {
		t.Error("ID should be generated")
	}
	if pl.Image == "" {
		t.Error("Image should be assigned")
	}
	if len(pl.Tracks) != 0 {
		t.Errorf("Tracks = %d, want 0", len(pl.Tracks))
	}
	if !pl.CreatedAt.Equal(pl.UpdatedAt) {
		t.Error("CreatedAt and UpdatedAt should match on create")
	}

	got, ok := s.GetPlaylistByID(pl.ID)
	if !ok {
		t.Fatal("created playlist not retrievable by id")
	}
	if got.Title != pl.Title {
		t.Errorf("retrieved Title = %q, want %q", got.Title, pl.Title)
	}
}

func TestCreatePlaylist_EmptyTitle(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.CreatePlaylist("   ", ""); err != ErrTitleRequired {
		t.Errorf("CreatePlaylist(blank) error = %v, want ErrTitleRequired", err)
	}
}

func TestCreatePlaylist_DuplicateTitleCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.CreatePlaylist("x", ""); err != nil {
		t.Fatalf("first create error = %v", err)
	}

	if _, err := s.CreatePlaylist("X", ""); err != ErrDuplicateTitle {
		t.Errorf("CreatePlaylist(X) error = %v, want ErrDuplicateTitle", err)
	}
}

func TestCreatePlaylist_TitleTooLong(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreatePlaylist(strings.Repeat("a", 101), "")
	if err == nil {
		t.Fatal("CreatePlaylist(101 chars) should fail")
	}
}

func TestUpdatePlaylist_EmptyTitleKeepsExisting(t *testing.T) {
	s, _ := newTestStore(t)
	pl, _ := s.CreatePlaylist("Keep Me", "desc")

	if err := s.UpdatePlaylist(pl.ID, PlaylistUpdate{Title: "  "}); err != nil {
		t.Fatalf("UpdatePlaylist() error = %v", err)
	}

	got, _ := s.GetPlaylistByID(pl.ID)
	if got.Title != "Keep Me" {
		t.Errorf("Title = %q, want Keep Me", got.Title)
	}
}

func TestUpdatePlaylist_DuplicateTitle(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreatePlaylist("First", "")
	pl, _ := s.CreatePlaylist("Second", "")

	err := s.UpdatePlaylist(pl.ID, PlaylistUpdate{Title: "first"})
	if err != ErrDuplicateTitle {
		t.Errorf("UpdatePlaylist error = %v, want ErrDuplicateTitle", err)
	}

	got, _ := s.GetPlaylistByID(pl.ID)
	if got.Title != "Second" {
		t.Errorf("Title = %q, want unchanged Second", got.Title)
	}
}

func TestUpdatePlaylist_RenameToSameTitle(t *testing.T) {
	s, _ := newTestStore(t)
	pl, _ := s.CreatePlaylist("Same", "")

	// Renaming a playlist to its own title is not a collision.
	if err := s.UpdatePlaylist(pl.ID, PlaylistUpdate{Title: "same"}); err != nil {
		t.Errorf("UpdatePlaylist(self rename) error = %v", err)
	}
}

func TestUpdatePlaylist_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.UpdatePlaylist("missing", PlaylistUpdate{Title: "x"}); err != nil {
		t.Errorf("UpdatePlaylist(missing) error = %v, want nil no-op", err)
	}
}

func TestUpdatePlaylist_RefreshesTimestamp(t *testing.T) {
	mem := storage.NewMemory()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Open(mem, WithClock(func() time.Time { return now }))

	pl, _ := s.CreatePlaylist("Stamped", "")

	now = now.Add(time.Hour)
	if err := s.UpdatePlaylist(pl.ID, PlaylistUpdate{Description: "new"}); err != nil {
		t.Fatalf("UpdatePlaylist() error = %v", err)
	}

	got, _ := s.GetPlaylistByID(pl.ID)
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}
	if !got.CreatedAt.Equal(now.Add(-time.Hour)) {
		t.Errorf("CreatedAt = %v, want unchanged", got.CreatedAt)
	}
}

func TestAddAndRemoveFromPlaylist(t *testing.T) {
	s, _ := newTestStore(t)
	pl, _ := s.CreatePlaylist("Mix", "")

	s.AddToPlaylist(pl.ID, track("t1", "One"))
	s.AddToPlaylist(pl.ID, track("t2", "Two"))
	s.AddToPlaylist(pl.ID, track("t1", "One")) // duplicates allowed

	got, _ := s.GetPlaylistByID(pl.ID)
	if len(got.Tracks) != 3 {
		t.Fatalf("Tracks = %d, want 3", len(got.Tracks))
	}

	s.RemoveFromPlaylist(pl.ID, "t1")

	got, _ = s.GetPlaylistByID(pl.ID)
	if len(got.Tracks) != 1 {
		t.Fatalf("Tracks after remove = %d, want 1", len(got.Tracks))
	}
	if got.Tracks[0].ID != "t2" {
		t.Errorf("remaining track = %q, want t2", got.Tracks[0].ID)
	}
}

func TestDeletePlaylist_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	pl, _ := s.CreatePlaylist("Gone", "")

	s.DeletePlaylist(pl.ID)
	if _, ok := s.GetPlaylistByID(pl.ID); ok {
		t.Fatal("playlist should be deleted")
	}

	// Second delete is a no-op, not an error.
	s.DeletePlaylist(pl.ID)
	if len(s.Playlists()) != 0 {
		t.Errorf("Playlists() = %d, want 0", len(s.Playlists()))
	}
}

func TestToggleLikedSong_Involution(t *testing.T) {
	s, _ := newTestStore(t)
	tr := track("t1", "Song")

	if liked := s.ToggleLikedSong(tr); !liked {
		t.Error("first toggle should like")
	}
	if !s.IsLiked("t1") {
		t.Error("IsLiked(t1) = false after like")
	}

	if liked := s.ToggleLikedSong(tr); liked {
		t.Error("second toggle should unlike")
	}
	if s.IsLiked("t1") {
		t.Error("IsLiked(t1) = true after unlike")
	}
	if len(s.LikedSongs()) != 0 {
		t.Errorf("LikedSongs() = %d, want 0", len(s.LikedSongs()))
	}
}

func TestLikedSongs_PreserveOrder(t *testing.T) {
	s, _ := newTestStore(t)

	s.ToggleLikedSong(track("a", "A"))
	s.ToggleLikedSong(track("b", "B"))
	s.ToggleLikedSong(track("c", "C"))
	s.ToggleLikedSong(track("b", "B"))

	liked := s.LikedSongs()
	if len(liked) != 2 {
		t.Fatalf("LikedSongs() = %d, want 2", len(liked))
	}
	if liked[0].ID != "a" || liked[1].ID != "c" {
		t.Errorf("order = %s,%s, want a,c", liked[0].ID, liked[1].ID)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	mem := storage.NewMemory()
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	s := Open(mem, WithClock(func() time.Time { return now }))

	pl, err := s.CreatePlaylist("Persisted", "keep this")
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	s.AddToPlaylist(pl.ID, track("t1", "One"))
	s.ToggleLikedSong(track("t2", "Two"))

	// Reopen over the same storage.
	s2 := Open(mem)

	got, ok := s2.GetPlaylistByID(pl.ID)
	if !ok {
		t.Fatal("playlist missing after reopen")
	}
	if got.Title != "Persisted" || got.Description != "keep this" {
		t.Errorf("playlist = %q/%q, want Persisted/keep this", got.Title, got.Description)
	}
	if len(got.Tracks) != 1 || got.Tracks[0].ID != "t1" {
		t.Errorf("tracks did not round-trip: %+v", got.Tracks)
	}
	if !got.CreatedAt.Equal(pl.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, pl.CreatedAt)
	}
	if !s2.IsLiked("t2") {
		t.Error("liked song missing after reopen")
	}
}

func TestOpen_MalformedDataFallsBackEmpty(t *testing.T) {
	mem := storage.NewMemory()
	mem.Set("soundsphere-playlists", "{not json")
	mem.Set("soundsphere-liked-songs", `[{"id":"ok","title":"T","artist":"A","album":"B","duration":1}]`)

	s := Open(mem)

	if len(s.Playlists()) != 0 {
		t.Errorf("Playlists() = %d, want 0 after malformed blob", len(s.Playlists()))
	}
	// The healthy collection still loads.
	if !s.IsLiked("ok") {
		t.Error("liked songs should load despite broken playlists blob")
	}
}

func TestCreatePlaylist_InjectedIDAndCover(t *testing.T) {
	mem := storage.NewMemory()
	s := Open(mem,
		WithIDGenerator(func() string { return "fixed-id" }),
		WithCoverPicker(func() string { return "/images/fixed.png" }),
	)

	pl, err := s.CreatePlaylist("Deterministic", "")
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if pl.ID != "fixed-id" {
		t.Errorf("ID = %q, want fixed-id", pl.ID)
	}
	if pl.Image != "/images/fixed.png" {
		t.Errorf("Image = %q, want /images/fixed.png", pl.Image)
	}
}
