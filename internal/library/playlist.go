// Package library owns the user's playlists and liked songs, and keeps
// both persisted through a storage.Store.
package library

import (
	"time"

	"github.com/llehouerou/soundsphere/internal/catalog"
)

// DefaultDescription is used when a playlist is created or updated with
// an empty description.
const DefaultDescription = "Created by you"

// Playlist is a user-created ordered track collection.
//
// Titles are unique case-insensitively across the whole library; track
// duplicates inside a playlist are allowed.
type Playlist struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"       validate:"required,max=100"`
	Description string          `json:"description" validate:"max=300"`
	Image       string          `json:"image"`
	Tracks      []catalog.Track `json:"tracks"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PlaylistUpdate carries the fields Update may change. An empty (or
// whitespace-only) field keeps the existing value.
type PlaylistUpdate struct {
	Title       string
	Description string
}
