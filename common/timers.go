package common

import "sort"

// Timers schedules recurring callbacks outside the frame loop.
type Timers interface {
	SetInterval(fn func(), ms int) int
	ClearInterval(id int)
}

type interval struct {
	fn     func()
	period float64
	next   float64
}

// ManualTimers is a Timers driven by Advance, for tests and native previews.
type ManualTimers struct {
	now       float64
	nextID    int
	intervals map[int]*interval
}

var _ Timers = (*ManualTimers)(nil)

// NewManualTimers creates a clock at time zero.
func NewManualTimers() *ManualTimers {
	return &ManualTimers{intervals: make(map[int]*interval)}
}

// SetInterval implements Timers.
func (m *ManualTimers) SetInterval(fn func(), ms int) int {
	if ms < 1 {
		ms = 1
	}
	m.nextID++
	m.intervals[m.nextID] = &interval{fn: fn, period: float64(ms), next: m.now + float64(ms)}
	return m.nextID
}

// ClearInterval implements Timers.
func (m *ManualTimers) ClearInterval(id int) {
	delete(m.intervals, id)
}

// Now returns the clock in milliseconds.
func (m *ManualTimers) Now() float64 {
	return m.now
}

// Active returns the number of live intervals.
func (m *ManualTimers) Active() int {
	return len(m.intervals)
}

// Advance moves the clock forward by ms and fires due intervals in order.
func (m *ManualTimers) Advance(ms float64) {
	target := m.now + ms
	for {
		iv := m.earliest()
		if iv == nil || iv.next > target {
			break
		}
		m.now = iv.next
		iv.next += iv.period
		iv.fn()
	}
	m.now = target
}

func (m *ManualTimers) earliest() *interval {
	ids := make([]int, 0, len(m.intervals))
	for id := range m.intervals {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var best *interval
	for _, id := range ids {
		iv := m.intervals[id]
		if best == nil || iv.next < best.next {
			best = iv
		}
	}
	return best
}
