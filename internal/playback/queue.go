package playback

// queue holds the engine's ordered track list and current position.
type queue struct {
	tracks []Track
	index  int // -1 if nothing selected
}

func newQueue() queue {
	return queue{index: -1}
}

// replace swaps in a new track list and positions the index at the
// track with currentID, or -1 when it is not in the list.
func (q *queue) replace(tracks []Track, currentID string) {
	q.tracks = tracks
	q.index = q.indexOf(currentID)
}

// indexOf returns the position of the track with the given id, or -1.
func (q *queue) indexOf(id string) int {
	for i, t := range q.tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// current returns the track at the current index, or nil when the index
// is out of bounds.
func (q *queue) current() *Track {
	if q.index < 0 || q.index >= len(q.tracks) {
		return nil
	}
	t := q.tracks[q.index]
	return &t
}

func (q *queue) len() int {
	return len(q.tracks)
}

// copyTracks returns a defensive copy of the track list.
func (q *queue) copyTracks() []Track {
	out := make([]Track, len(q.tracks))
	copy(out, q.tracks)
	return out
}
