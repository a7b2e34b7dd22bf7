package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/llehouerou/soundsphere/internal/media"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

// defaultVolume matches the level the player starts at before any
// user adjustment.
const defaultVolume = 0.7

// restartThreshold is how far into a track Previous restarts it instead
// of moving back.
const restartThreshold = 3 * time.Second

type serviceImpl struct {
	mu sync.RWMutex

	el media.Element

	queue    queue
	current  *Track
	playing  bool
	loading  bool
	pending  bool // play once the element reports canplay
	position time.Duration
	duration time.Duration
	buffered time.Duration
	volume   float64
	shuffle  bool
	repeat   RepeatMode

	// gen tags every outbound load; element events carrying a stale
	// generation belong to a superseded track and are dropped.
	gen uint64

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// Option configures the engine.
type Option func(*serviceImpl)

// WithVolume sets the initial volume level.
func WithVolume(level float64) Option {
	return func(s *serviceImpl) { s.volume = clampVolume(level) }
}

// New creates a playback engine driving el and starts consuming its
// event stream.
func New(el media.Element, opts ...Option) Service {
	s := &serviceImpl{
		el:     el,
		queue:  newQueue(),
		volume: defaultVolume,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	el.SetVolume(s.volume)
	go s.run()
	return s
}

// PlayTrack selects a track and its queue, then starts loading it.
// When tracks is empty the queue defaults to just the given track. A
// track missing from its own queue is tolerated: the index becomes -1
// and queue navigation simply has nowhere to go.
func (s *serviceImpl) PlayTrack(track Track, tracks []Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := tracks
	if len(resolved) == 0 {
		resolved = []Track{track}
	}

	prevState := s.stateLocked()
	prev, prevIdx := s.current, s.queue.index

	s.queue.replace(resolved, track.ID)
	t := track
	s.current = &t
	s.loadCurrentLocked()

	s.sendTrackChange(prev, prevIdx)
	s.sendStateChange(prevState)
}

// TogglePlay flips between playing and paused. Returns ErrNoTrack when
// nothing is selected; a refused start reverts the playing flag and
// returns ErrPlaybackStart.
func (s *serviceImpl) TogglePlay() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoTrack
	}

	prevState := s.stateLocked()

	if s.playing {
		s.playing = false
		s.pending = false
		s.el.Pause()
		s.sendStateChange(prevState)
		return nil
	}

	if s.loading {
		// Not ready yet; flip the armed autoplay so a toggle while
		// loading can also cancel it.
		s.pending = !s.pending
		return nil
	}

	if s.duration > 0 && s.position >= s.duration {
		// Resuming a track that played to the end replays it.
		s.position = 0
		s.el.SetPosition(0)
		s.sendPosition(0)
	}

	if err := s.el.Play(); err != nil {
		s.playing = false
		s.sendErr("play", fmt.Errorf("%w: %v", ErrPlaybackStart, err))
		return fmt.Errorf("%w: %v", ErrPlaybackStart, err)
	}
	s.playing = true
	s.sendStateChange(prevState)
	return nil
}

// Next advances to the following track. At the end of the queue it
// wraps to the start only in repeat-all mode; otherwise it is a no-op.
func (s *serviceImpl) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLocked()
}

func (s *serviceImpl) nextLocked() bool {
	if s.current == nil || s.queue.len() == 0 {
		return false
	}

	next := s.queue.index + 1
	if next >= s.queue.len() {
		if s.repeat != RepeatAll {
			return false
		}
		next = 0
	}
	s.jumpLocked(next)
	return true
}

// Previous restarts the current track when more than three seconds in.
// Otherwise it steps back, wrapping to the last track in repeat-all
// mode; a decrement landing before the start otherwise clamps to the
// first track, which means a restart in place only when already there.
func (s *serviceImpl) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.queue.len() == 0 {
		return
	}

	if s.position > restartThreshold {
		s.restartLocked()
		return
	}

	prev := s.queue.index - 1
	if prev < 0 {
		switch {
		case s.repeat == RepeatAll:
			prev = s.queue.len() - 1
		case s.queue.index == 0:
			s.restartLocked()
			return
		default:
			// Index -1 (track not in its queue): clamp to the first
			// queue track, loading it.
			prev = 0
		}
	}
	s.jumpLocked(prev)
}

// SeekTo jumps to the given position, clamped to the track bounds. The
// reported position updates immediately without waiting for the
// element to confirm.
func (s *serviceImpl) SeekTo(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > s.duration {
		pos = s.duration
	}
	s.position = pos
	s.el.SetPosition(pos)
	s.sendPosition(pos)
}

// SetVolume sets the volume, clamped to [0, 1].
func (s *serviceImpl) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = clampVolume(level)
	s.el.SetVolume(s.volume)
	s.sendVolume(s.volume)
}

// ToggleShuffle flips the shuffle flag. The queue order is untouched;
// the flag is advisory for consumers.
func (s *serviceImpl) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shuffle = !s.shuffle
	s.sendMode()
	return s.shuffle
}

// CycleRepeatMode advances repeat through none -> one -> all -> none.
func (s *serviceImpl) CycleRepeatMode() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repeat = s.repeat.Cycle()
	s.sendMode()
	return s.repeat
}

// Snapshot returns a consistent copy of the full engine state.
func (s *serviceImpl) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cur *Track
	if s.current != nil {
		t := *s.current
		cur = &t
	}
	return Snapshot{
		CurrentTrack: cur,
		Queue:        s.queue.copyTracks(),
		Index:        s.queue.index,
		State:        s.stateLocked(),
		IsPlaying:    s.playing,
		IsLoading:    s.loading,
		Position:     s.position,
		Duration:     s.duration,
		Buffered:     s.buffered,
		Volume:       s.volume,
		Shuffle:      s.shuffle,
		RepeatMode:   s.repeat,
	}
}

// CurrentTrack returns the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *Track {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	t := *s.current
	return &t
}

func (s *serviceImpl) IsPlaying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playing
}

func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the engine and its subscriptions.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

// jumpLocked moves to the given queue index and loads that track.
func (s *serviceImpl) jumpLocked(index int) {
	prevState := s.stateLocked()
	prev, prevIdx := s.current, s.queue.index

	s.queue.index = index
	t := s.queue.tracks[index]
	s.current = &t
	s.loadCurrentLocked()

	s.sendTrackChange(prev, prevIdx)
	s.sendStateChange(prevState)
}

// restartLocked rewinds the current track without reloading it.
func (s *serviceImpl) restartLocked() {
	s.position = 0
	s.el.SetPosition(0)
	s.sendPosition(0)
}

// loadCurrentLocked resets transient state and asks the element to load
// the current track under a fresh generation.
func (s *serviceImpl) loadCurrentLocked() {
	s.position = 0
	s.duration = 0
	s.buffered = 0
	s.playing = false
	s.loading = true
	s.pending = true
	s.gen++
	s.el.Load(s.gen, s.current.AudioURL)
}

// stateLocked derives the state machine position from the flags.
func (s *serviceImpl) stateLocked() State {
	switch {
	case s.current == nil:
		return StateIdle
	case s.loading:
		return StateLoading
	case s.playing:
		return StatePlaying
	default:
		return StatePaused
	}
}

func clampVolume(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}

// run consumes the element's event stream until Close.
func (s *serviceImpl) run() {
	events := s.el.Events()
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handleEvent(ev)
		}
	}
}

func (s *serviceImpl) handleEvent(ev media.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.Gen != s.gen {
		// Event from a superseded load; a newer track owns the element.
		return
	}

	prevState := s.stateLocked()

	switch ev.Kind {
	case media.EventLoadStart:
		s.loading = true
		s.position = 0
		s.duration = 0

	case media.EventTimeUpdate:
		s.position = ev.Position
		s.sendPosition(ev.Position)

	case media.EventMetadata:
		s.duration = ev.Duration

	case media.EventDataReady:
		if ev.Duration > 0 {
			s.duration = ev.Duration
		}
		s.loading = false

	case media.EventCanPlay:
		if ev.Duration > 0 {
			s.duration = ev.Duration
		}
		s.loading = false
		if s.pending && !s.playing {
			s.startPendingLocked()
		}

	case media.EventProgress:
		s.buffered = ev.Buffered

	case media.EventWaiting:
		s.loading = true

	case media.EventPlaying:
		s.loading = false

	case media.EventEnded:
		s.handleEndedLocked()

	case media.EventError:
		s.loading = false
		s.playing = false
		s.pending = false
		s.sendErr("load", fmt.Errorf("%w: %v", ErrMediaLoad, ev.Err))
	}

	s.sendStateChange(prevState)
}

// startPendingLocked begins playback that was requested before the
// element was ready.
func (s *serviceImpl) startPendingLocked() {
	s.pending = false
	if err := s.el.Play(); err != nil {
		s.playing = false
		s.sendErr("play", fmt.Errorf("%w: %v", ErrPlaybackStart, err))
		return
	}
	s.playing = true
}

// handleEndedLocked applies the repeat policy when a track finishes.
func (s *serviceImpl) handleEndedLocked() {
	if s.repeat == RepeatOne {
		s.position = 0
		s.el.SetPosition(0)
		if err := s.el.Play(); err != nil {
			s.playing = false
			s.sendErr("play", fmt.Errorf("%w: %v", ErrPlaybackStart, err))
			return
		}
		s.playing = true
		s.sendPosition(0)
		return
	}

	if !s.nextLocked() {
		// End of queue without wrap: track stays selected, stopped,
		// position parked at the end.
		s.playing = false
		s.pending = false
		if s.duration > 0 {
			s.position = s.duration
			s.sendPosition(s.position)
		}
	}
}

// Event emission. Sends are non-blocking, so holding s.mu is safe.

func (s *serviceImpl) sendStateChange(prev State) {
	cur := s.stateLocked()
	if cur == prev {
		return
	}
	e := StateChange{Previous: prev, Current: cur}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendState(e)
	}
}

func (s *serviceImpl) sendTrackChange(prev *Track, prevIdx int) {
	e := TrackChange{
		Previous:      prev,
		Current:       s.current,
		PreviousIndex: prevIdx,
		Index:         s.queue.index,
	}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendTrack(e)
	}
}

func (s *serviceImpl) sendPosition(pos time.Duration) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendPosition(pos)
	}
}

func (s *serviceImpl) sendMode() {
	e := ModeChange{RepeatMode: s.repeat, Shuffle: s.shuffle}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendMode(e)
	}
}

func (s *serviceImpl) sendVolume(v float64) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendVolume(v)
	}
}

func (s *serviceImpl) sendErr(op string, err error) {
	var trackID string
	if s.current != nil {
		trackID = s.current.ID
	}
	e := ErrorEvent{Op: op, TrackID: trackID, Err: err}
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(e)
	}
}
