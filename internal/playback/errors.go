package playback

import "errors"

// Errors surfaced by the engine, either directly or through the
// subscription's Error channel.
var (
	ErrNoTrack       = errors.New("no track loaded")
	ErrPlaybackStart = errors.New("playback could not start")
	ErrMediaLoad     = errors.New("media failed to load")
)
