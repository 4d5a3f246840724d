package audio

import "github.com/pkg/errors"

// ErrUnavailable is returned when no audio graph can be created.
var ErrUnavailable = errors.New("audio: audio output unavailable")

// Param is the automation surface of a gain parameter.
type Param interface {
	CancelScheduledValues(t float64)
	SetValueAtTime(v, t float64)
	LinearRampToValueAtTime(v, t float64)
}

// Graph is a live audio rendering graph with a master gain connected to
// the output.
type Graph interface {
	// CurrentTime returns the audio clock in seconds.
	CurrentTime() float64
	SampleRate() float64
	// Master is the master gain parameter. It starts at 0.
	Master() Param
	// StartDrone loops samples through a lowpass at cutoff into the master.
	StartDrone(samples []float32, cutoff, q float64)
	// Crackle plays a square wave at freq for duration seconds into the
	// master gain, then discards it.
	Crackle(freq, gain, duration float64)
	// Resume restarts a suspended output clock. It must run inside a user
	// activation to take effect in the browser.
	Resume()
	// Close tears the graph down.
	Close()
}

// Backend opens audio graphs.
type Backend interface {
	Open() (Graph, error)
}

// GestureSource delivers the first user gesture on the page. Once registers
// fn to run at most one time and returns a function that unregisters it.
type GestureSource interface {
	Once(fn func()) (cancel func())
}
