package timing

import "time"

// event is a deferred action due at an absolute time.
type event struct {
	at  time.Time
	seq uint64
	fn  func(now time.Time)
}

// Timeline holds the pending deferred events of one owner (a fire element).
//
// Events only ever flip flags on their owner, so firing them at the start of
// a frame is equivalent to a host timer that fired between frames. A
// Timeline is not safe for concurrent use; it belongs to the frame loop.
type Timeline struct {
	pending []event
	nextSeq uint64
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{pending: make([]event, 0, 4)}
}

// At schedules fn to run once the clock reaches at.
// fn receives the due time of the event, not the observation time, so that
// chained events keep their schedule regardless of frame jitter.
func (tl *Timeline) At(at time.Time, fn func(due time.Time)) {
	tl.pending = append(tl.pending, event{at: at, seq: tl.nextSeq, fn: fn})
	tl.nextSeq++
}

// After schedules fn to run d after from.
func (tl *Timeline) After(from time.Time, d time.Duration, fn func(due time.Time)) {
	if d < 0 {
		d = 0
	}
	tl.At(from.Add(d), fn)
}

// Fire runs every event due at or before now, in due-time order (ties in
// scheduling order). Events scheduled by a firing event are run in the same
// call when they are already due.
// Returns the number of events fired.
func (tl *Timeline) Fire(now time.Time) int {
	fired := 0
	for {
		idx := tl.nextDue(now)
		if idx < 0 {
			return fired
		}
		ev := tl.pending[idx]
		tl.pending = append(tl.pending[:idx], tl.pending[idx+1:]...)
		ev.fn(ev.at)
		fired++
	}
}

// nextDue returns the index of the earliest due event, or -1.
func (tl *Timeline) nextDue(now time.Time) int {
	best := -1
	for i, ev := range tl.pending {
		if ev.at.After(now) {
			continue
		}
		if best < 0 || ev.at.Before(tl.pending[best].at) ||
			(ev.at.Equal(tl.pending[best].at) && ev.seq < tl.pending[best].seq) {
			best = i
		}
	}
	return best
}

// Pending returns the number of events not yet fired.
func (tl *Timeline) Pending() int {
	return len(tl.pending)
}

// NextDue reports the due time of the earliest pending event.
func (tl *Timeline) NextDue() (time.Time, bool) {
	if len(tl.pending) == 0 {
		return time.Time{}, false
	}
	earliest := tl.pending[0].at
	for _, ev := range tl.pending[1:] {
		if ev.at.Before(earliest) {
			earliest = ev.at
		}
	}
	return earliest, true
}

// Clear drops every pending event.
func (tl *Timeline) Clear() {
	tl.pending = tl.pending[:0]
}
