// Package media abstracts the audio element the playback engine drives.
// The engine issues load/play/pause/seek/volume commands and consumes a
// one-directional event stream; it never touches audio output directly.
package media

import "time"

// EventKind identifies a media element notification.
type EventKind int

const (
	// EventLoadStart fires when the element begins fetching a track.
	EventLoadStart EventKind = iota
	// EventMetadata fires when the track duration becomes known.
	EventMetadata
	// EventDataReady fires when enough data is decoded to begin playback.
	EventDataReady
	// EventCanPlay fires when the element can start producing audio.
	EventCanPlay
	// EventTimeUpdate reports playback position progress.
	EventTimeUpdate
	// EventProgress reports the contiguous buffered extent from the start.
	EventProgress
	// EventEnded fires when the current track plays to completion.
	EventEnded
	// EventWaiting fires when playback stalls on missing data.
	EventWaiting
	// EventPlaying fires when playback starts or resumes after a stall.
	EventPlaying
	// EventError fires when loading or decoding fails.
	EventError
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventLoadStart:
		return "loadstart"
	case EventMetadata:
		return "metadata"
	case EventDataReady:
		return "dataready"
	case EventCanPlay:
		return "canplay"
	case EventTimeUpdate:
		return "timeupdate"
	case EventProgress:
		return "progress"
	case EventEnded:
		return "ended"
	case EventWaiting:
		return "waiting"
	case EventPlaying:
		return "playing"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is an inbound notification from the element. Gen echoes the
// generation of the Load call the event belongs to; consumers drop
// events whose generation is stale.
type Event struct {
	Gen      uint64
	Kind     EventKind
	Position time.Duration
	Duration time.Duration
	Buffered time.Duration
	Err      error
}

// Element is the playback capability contract.
type Element interface {
	// Load begins fetching and decoding the track at uri. It returns
	// immediately; progress is reported through Events, tagged with gen.
	Load(gen uint64, uri string)
	// Play starts or resumes audio output. It may refuse (no loaded
	// track, output device unavailable).
	Play() error
	Pause()
	SetPosition(pos time.Duration)
	// SetVolume expects a 0.0-1.0 level.
	SetVolume(level float64)
	Events() <-chan Event
	Close() error
}
