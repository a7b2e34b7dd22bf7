package media

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	eventBufferSize = 64
	tickInterval    = 200 * time.Millisecond
)

// Beep is an Element producing audio through the beep speaker. Tracks
// are fetched fully (http(s) or local file), decoded in memory and then
// streamed, so buffered extent reaches the full duration before the
// canplay event.
type Beep struct {
	mu sync.Mutex

	events chan Event
	done   chan struct{}
	closed bool

	gen        uint64
	streamer   beep.StreamSeekCloser
	format     beep.Format
	ctrl       *beep.Ctrl
	vol        *effects.Volume
	level      float64
	sampleRate beep.SampleRate
	speakerOn  bool
	// attached reports whether the current sequence is still queued on
	// the speaker; it drops to false when the track plays to its end.
	attached bool
}

// Verify Beep implements Element at compile time.
var _ Element = (*Beep)(nil)

// NewBeep creates a beep-backed element. The speaker is initialized
// lazily on the first successful load.
func NewBeep() *Beep {
	b := &Beep{
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
		level:  1.0,
	}
	go b.tick()
	return b
}

func (b *Beep) Events() <-chan Event { return b.events }

// Load fetches and decodes the track in the background. A newer Load
// supersedes this one; its events are tagged with the stale generation
// and dropped by the consumer.
func (b *Beep) Load(gen uint64, uri string) {
	b.mu.Lock()
	b.gen = gen
	b.stopLocked()
	b.mu.Unlock()

	go b.load(gen, uri)
}

func (b *Beep) load(gen uint64, uri string) {
	b.emit(Event{Gen: gen, Kind: EventLoadStart})

	data, err := fetch(uri)
	if err != nil {
		b.emit(Event{Gen: gen, Kind: EventError, Err: fmt.Errorf("fetch %s: %w", uri, err)})
		return
	}

	streamer, format, err := decode(uri, data)
	if err != nil {
		b.emit(Event{Gen: gen, Kind: EventError, Err: fmt.Errorf("decode %s: %w", uri, err)})
		return
	}

	dur := format.SampleRate.D(streamer.Len())

	b.mu.Lock()
	if b.gen != gen {
		// Superseded while fetching or decoding.
		b.mu.Unlock()
		streamer.Close()
		return
	}

	if !b.speakerOn {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			b.mu.Unlock()
			streamer.Close()
			b.emit(Event{Gen: gen, Kind: EventError, Err: fmt.Errorf("speaker init: %w", err)})
			return
		}
		b.sampleRate = format.SampleRate
		b.speakerOn = true
	}

	b.streamer = streamer
	b.format = format

	var str beep.Streamer = streamer
	if format.SampleRate != b.sampleRate {
		str = beep.Resample(4, format.SampleRate, b.sampleRate, streamer)
	}

	b.ctrl = &beep.Ctrl{Streamer: str, Paused: true}
	b.vol = &effects.Volume{
		Streamer: b.ctrl,
		Base:     2,
		Volume:   levelToVolume(b.level),
		Silent:   b.level <= 0,
	}
	b.attachLocked(gen)
	b.mu.Unlock()

	b.emit(Event{Gen: gen, Kind: EventMetadata, Duration: dur})
	b.emit(Event{Gen: gen, Kind: EventProgress, Buffered: dur})
	b.emit(Event{Gen: gen, Kind: EventDataReady, Duration: dur})
	b.emit(Event{Gen: gen, Kind: EventCanPlay, Duration: dur})
}

func (b *Beep) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return fmt.Errorf("no track loaded")
	}
	if !b.attached {
		// The previous sequence played to completion and the speaker
		// dropped it; rewind the drained streamer and queue a fresh
		// sequence over it, or it would end again immediately.
		if b.streamer.Position() >= b.streamer.Len() {
			_ = b.streamer.Seek(0)
		}
		b.attachLocked(b.gen)
	}
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
	b.emit(Event{Gen: b.gen, Kind: EventPlaying})
	return nil
}

// attachLocked queues the current volume chain on the speaker. Must
// hold b.mu. The completion callback runs under the speaker lock, so
// the state update is deferred to a goroutine.
func (b *Beep) attachLocked(gen uint64) {
	speaker.Play(beep.Seq(b.vol, beep.Callback(func() {
		go b.finished(gen)
	})))
	b.attached = true
}

func (b *Beep) finished(gen uint64) {
	b.mu.Lock()
	if b.gen == gen {
		b.attached = false
	}
	b.mu.Unlock()
	b.emit(Event{Gen: gen, Kind: EventEnded})
}

func (b *Beep) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
}

func (b *Beep) SetPosition(pos time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.streamer == nil {
		return
	}
	speaker.Lock()
	_ = b.streamer.Seek(b.format.SampleRate.N(pos))
	speaker.Unlock()
	b.emit(Event{Gen: b.gen, Kind: EventTimeUpdate, Position: pos})
}

func (b *Beep) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.level = level
	if b.vol == nil {
		return
	}
	speaker.Lock()
	b.vol.Volume = levelToVolume(level)
	b.vol.Silent = level <= 0
	speaker.Unlock()
}

func (b *Beep) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	b.stopLocked()
	b.mu.Unlock()
	return nil
}

// stopLocked tears down the current streamer. Must hold b.mu.
func (b *Beep) stopLocked() {
	if b.speakerOn {
		speaker.Clear()
	}
	if b.streamer != nil {
		b.streamer.Close()
		b.streamer = nil
	}
	b.ctrl = nil
	b.vol = nil
	b.attached = false
}

// tick polls the playback position while audio is running.
func (b *Beep) tick() {
	t := time.NewTicker(tickInterval)
	defer t.Stop()

	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			b.mu.Lock()
			if b.streamer == nil || b.ctrl == nil {
				b.mu.Unlock()
				continue
			}
			gen := b.gen
			speaker.Lock()
			paused := b.ctrl.Paused
			pos := b.format.SampleRate.D(b.streamer.Position())
			speaker.Unlock()
			playing := !paused
			b.mu.Unlock()

			if playing {
				b.emit(Event{Gen: gen, Kind: EventTimeUpdate, Position: pos})
			}
		}
	}
}

// emit sends an event without blocking; stale progress updates may be
// dropped when the buffer is full.
func (b *Beep) emit(ev Event) {
	select {
	case <-b.done:
	case b.events <- ev:
	default:
	}
}

// levelToVolume converts a 0.0-1.0 level to beep's logarithmic Volume
// value (base 2): 1.0 -> 0, 0.5 -> -1, 0.25 -> -2.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

func fetch(uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		resp, err := http.Get(uri)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(uri)
}

func decode(uri string, data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	rc := nopCloser{bytes.NewReader(data)}
	if strings.Contains(strings.ToLower(uri), ".wav") {
		return wav.Decode(rc)
	}
	return mp3.Decode(rc)
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
