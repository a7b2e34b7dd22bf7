// Package playback implements the playback engine: it owns the current
// track, queue, transport state and modes, and drives a media.Element.
package playback

import "time"

// Snapshot is a consistent read of the full engine state.
type Snapshot struct {
	CurrentTrack *Track
	Queue        []Track
	Index        int
	State        State
	IsPlaying    bool
	IsLoading    bool
	Position     time.Duration
	Duration     time.Duration
	Buffered     time.Duration
	Volume       float64
	Shuffle      bool
	RepeatMode   RepeatMode
}

// Service defines the playback engine contract.
type Service interface {
	// Transport
	PlayTrack(track Track, queue []Track) // nil/empty queue defaults to just the track
	TogglePlay() error
	Next()
	Previous()
	SeekTo(pos time.Duration)

	// Modes and volume
	SetVolume(level float64)
	ToggleShuffle() bool
	CycleRepeatMode() RepeatMode

	// State queries
	Snapshot() Snapshot
	CurrentTrack() *Track
	IsPlaying() bool
	State() State

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
