package library

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/llehouerou/soundsphere/internal/catalog"
	"github.com/llehouerou/soundsphere/internal/storage"
)

// Storage keys. Kept stable so existing data survives upgrades.
const (
	playlistsKey = "soundsphere-playlists"
	likedKey     = "soundsphere-liked-songs"
)

// Store owns playlists and liked songs. All mutations are synchronous
// and persist the affected collection before returning.
type Store struct {
	mu       sync.RWMutex
	storage  storage.Store
	log      *log.Logger
	validate *validator.Validate

	newID     func() string
	now       func() time.Time
	pickCover func() string

	playlists []Playlist
	liked     []catalog.Track
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDGenerator overrides playlist ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithCoverPicker overrides default artwork selection.
func WithCoverPicker(fn func() string) Option {
	return func(s *Store) { s.pickCover = fn }
}

// Open creates a Store and rehydrates both collections from st. A blob
// that fails to parse is logged and replaced by an empty collection; it
// never prevents the store from opening.
func Open(st storage.Store, opts ...Option) *Store {
	s := &Store{
		storage:  st,
		log:      log.Default(),
		validate: validator.New(),
		newID:    uuid.NewString,
		now:      time.Now,
		pickCover: func() string {
			return catalog.DefaultCovers[rand.IntN(len(catalog.DefaultCovers))]
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.playlists = loadCollection[Playlist](s, playlistsKey)
	s.liked = loadCollection[catalog.Track](s, likedKey)
	return s
}

func loadCollection[T any](s *Store, key string) []T {
	raw, ok, err := s.storage.Get(key)
	if err != nil {
		s.log.Warn("failed to read stored collection", "key", key, "err", err)
		return nil
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("stored collection is malformed, starting empty", "key", key, "err", err)
		return nil
	}
	return items
}

// CreatePlaylist creates a playlist with the given title and optional
// description. The title must be non-empty after trimming and unique
// case-insensitively among all playlists.
func (s *Store) CreatePlaylist(title, description string) (Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return Playlist{}, ErrTitleRequired
	}
	if s.findByTitleLocked(title, "") != -1 {
		return Playlist{}, ErrDuplicateTitle
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}

	now := s.now()
	pl := Playlist{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Image:       s.pickCover(),
		Tracks:      []catalog.Track{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.validate.Struct(pl); err != nil {
		return Playlist{}, fmt.Errorf("%w: %v", ErrInvalidPlaylist, err)
	}

	s.playlists = append(s.playlists, pl)
	s.savePlaylistsLocked()
	return pl, nil
}

// UpdatePlaylist applies the provided fields to the playlist. Unknown
// ids are a no-op. A field that trims to empty keeps its current value.
func (s *Store) UpdatePlaylist(id string, upd PlaylistUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findByIDLocked(id)
	if idx == -1 {
		return nil
	}

	pl := s.playlists[idx]

	title := strings.TrimSpace(upd.Title)
	if title == "" {
		title = pl.Title
	}
	if s.findByTitleLocked(title, id) != -1 {
		return ErrDuplicateTitle
	}

	description := strings.TrimSpace(upd.Description)
	if description == "" {
		description = pl.Description
	}

	pl.Title = title
	pl.Description = description
	pl.UpdatedAt = s.now()

	if err := s.validate.Struct(pl); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlaylist, err)
	}

	s.playlists[idx] = pl
	s.savePlaylistsLocked()
	return nil
}

// AddToPlaylist appends the track. Duplicates are allowed; unknown ids
// are a no-op.
func (s *Store) AddToPlaylist(id string, track catalog.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findByIDLocked(id)
	if idx == -1 {
		return
	}

	s.playlists[idx].Tracks = append(s.playlists[idx].Tracks, track)
	s.playlists[idx].UpdatedAt = s.now()
	s.savePlaylistsLocked()
}

// RemoveFromPlaylist removes every occurrence of trackID. Unknown
// playlist ids are a no-op.
func (s *Store) RemoveFromPlaylist(id, trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findByIDLocked(id)
	if idx == -1 {
		return
	}

	tracks := s.playlists[idx].Tracks
	kept := tracks[:0]
	for _, t := range tracks {
		if t.ID != trackID {
			kept = append(kept, t)
		}
	}
	s.playlists[idx].Tracks = kept
	s.playlists[idx].UpdatedAt = s.now()
	s.savePlaylistsLocked()
}

// DeletePlaylist removes the playlist. Deleting an absent id is a no-op.
func (s *Store) DeletePlaylist(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findByIDLocked(id)
	if idx == -1 {
		return
	}

	s.playlists = append(s.playlists[:idx], s.playlists[idx+1:]...)
	s.savePlaylistsLocked()
}

// ToggleLikedSong adds the track to liked songs if absent, removes it if
// present. Returns whether the track is liked afterwards.
func (s *Store) ToggleLikedSong(track catalog.Track) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.liked {
		if t.ID == track.ID {
			s.liked = append(s.liked[:i], s.liked[i+1:]...)
			s.saveLikedLocked()
			return false
		}
	}

	s.liked = append(s.liked, track)
	s.saveLikedLocked()
	return true
}

// IsLiked reports whether the track id is in liked songs.
func (s *Store) IsLiked(trackID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.liked {
		if t.ID == trackID {
			return true
		}
	}
	return false
}

// GetPlaylistByID looks up a playlist.
func (s *Store) GetPlaylistByID(id string) (Playlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.findByIDLocked(id)
	if idx == -1 {
		return Playlist{}, false
	}
	return clonePlaylist(s.playlists[idx]), true
}

// Playlists returns a copy of all playlists.
func (s *Store) Playlists() []Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Playlist, len(s.playlists))
	for i, pl := range s.playlists {
		out[i] = clonePlaylist(pl)
	}
	return out
}

// LikedSongs returns a copy of the liked songs in like order.
func (s *Store) LikedSongs() []catalog.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Track, len(s.liked))
	copy(out, s.liked)
	return out
}

func (s *Store) findByIDLocked(id string) int {
	for i, pl := range s.playlists {
		if pl.ID == id {
			return i
		}
	}
	return -1
}

// findByTitleLocked returns the index of a playlist whose title matches
// case-insensitively, excluding excludeID. Returns -1 when none match.
func (s *Store) findByTitleLocked(title, excludeID string) int {
	for i, pl := range s.playlists {
		if pl.ID != excludeID && strings.EqualFold(pl.Title, title) {
			return i
		}
	}
	return -1
}

func (s *Store) savePlaylistsLocked() {
	s.saveLocked(playlistsKey, s.playlists)
}

func (s *Store) saveLikedLocked() {
	s.saveLocked(likedKey, s.liked)
}

// saveLocked serializes and writes a collection. Persistence failures
// are logged, not propagated: the in-memory state is already updated
// and remains authoritative for this session.
func (s *Store) saveLocked(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("failed to serialize collection", "key", key, "err", err)
		return
	}
	if err := s.storage.Set(key, string(data)); err != nil {
		s.log.Error("failed to persist collection", "key", key, "err", err)
	}
}

func clonePlaylist(pl Playlist) Playlist {
	out := pl
	out.Tracks = make([]catalog.Track, len(pl.Tracks))
	copy(out.Tracks, pl.Tracks)
	return out
}
