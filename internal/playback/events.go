package playback

import "time"

// StateChange is emitted when the playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when the engine switches to a different track.
//
// Emitted by:
//   - PlayTrack: always, even when replaying the same track id
//   - Next/Previous: when navigation lands on a new index
//   - the ended handler: when a finished track advances automatically
//
// NOT emitted by:
//   - Previous restarting the current track in place
//   - TogglePlay, seeks or mode changes
//
// UI side effects tied to the active track (artwork, highlighting) should
// hang off this event rather than polling.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// PositionChange is emitted on time progress and seeks.
type PositionChange struct {
	Position time.Duration
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
}

// VolumeChange is emitted when the volume level changes.
type VolumeChange struct {
	Volume float64
}

// ErrorEvent is emitted when playback or loading fails.
type ErrorEvent struct {
	Op      string // e.g. "play", "load"
	TrackID string
	Err     error
}
