package common

// Scheduler delivers display-synchronized callbacks. RequestFrame queues fn
// for the next frame and returns a handle accepted by CancelFrame. now is a
// monotonic timestamp in milliseconds.
type Scheduler interface {
	RequestFrame(fn func(now float64)) int
	CancelFrame(handle int)
}

// token is owned by one run of a Task. Once cancelled, any frame still
// queued with it is ignored even if the scheduler fires it.
type token struct {
	cancelled bool
}

// Task is a recurring tick handler that re-registers itself every frame.
type Task struct {
	sched  Scheduler
	tick   func(now float64)
	tok    *token
	handle int
	ticks  int
}

// NewTask binds tick to a scheduler. The task does nothing until Start.
func NewTask(sched Scheduler, tick func(now float64)) *Task {
	return &Task{sched: sched, tick: tick}
}

// Start begins ticking. Starting a running task is a no-op.
func (t *Task) Start() {
	if t == nil || t.sched == nil || t.tok != nil {
		return
	}
	tok := &token{}
	t.tok = tok
	t.schedule(tok)
}

func (t *Task) schedule(tok *token) {
	t.handle = t.sched.RequestFrame(func(now float64) {
		if tok.cancelled {
			return
		}
		// Schedule next frame first, like the RAF loop it replaces.
		t.schedule(tok)
		t.ticks++
		t.tick(now)
	})
}

// Stop cancels the task. It is safe to call before Start, more than once,
// or from inside the tick handler.
func (t *Task) Stop() {
	if t == nil || t.tok == nil {
		return
	}
	t.tok.cancelled = true
	t.tok = nil
	t.sched.CancelFrame(t.handle)
}

// Running reports whether the task is started.
func (t *Task) Running() bool {
	return t != nil && t.tok != nil
}

// Ticks returns how many times the handler has run.
func (t *Task) Ticks() int {
	if t == nil {
		return 0
	}
	return t.ticks
}

// FrameQueue is a Scheduler driven by hand. Tests and native previews call
// Flush once per simulated display frame.
type FrameQueue struct {
	// IgnoreCancel keeps cancelled callbacks queued, the way a stale
	// platform handle may still fire after cancellation.
	IgnoreCancel bool

	next    int
	pending map[int]func(now float64)
	order   []int
}

var _ Scheduler = (*FrameQueue)(nil)

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[int]func(now float64))}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func(now float64)) int {
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

// CancelFrame implements Scheduler.
func (q *FrameQueue) CancelFrame(handle int) {
	if q.IgnoreCancel {
		return
	}
	delete(q.pending, handle)
}

// Flush runs every callback queued before the call. Callbacks queued while
// flushing wait for the next Flush.
func (q *FrameQueue) Flush(now float64) int {
	order := q.order
	q.order = nil
	ran := 0
	for _, h := range order {
		fn, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
