package audio

// Ramp is a linear parameter change from From at Start to To at End,
// times in seconds on the audio clock. Before Start it holds From, after
// End it holds To.
type Ramp struct {
	From, To   float64
	Start, End float64
}

// Hold returns a ramp that stays at v.
func Hold(v float64) Ramp {
	return Ramp{From: v, To: v}
}

// ValueAt returns the ramp value at time t.
func (r Ramp) ValueAt(t float64) float64 {
	if t <= r.Start {
		return r.From
	}
	if t >= r.End || r.End <= r.Start {
		return r.To
	}
	return r.From + (r.To-r.From)*(t-r.Start)/(r.End-r.Start)
}

// Done reports whether the ramp has reached To at time t.
func (r Ramp) Done(t float64) bool {
	return t >= r.End
}

// Automation is a minimal AudioParam: one hold or linear ramp at a time.
// Cancelling freezes the value reached at the cancel time.
type Automation struct {
	ramp Ramp
}

var _ Param = (*Automation)(nil)

// NewAutomation creates a parameter holding v.
func NewAutomation(v float64) *Automation {
	return &Automation{ramp: Hold(v)}
}

// CancelScheduledValues implements Param.
func (a *Automation) CancelScheduledValues(t float64) {
	v := a.ramp.ValueAt(t)
	a.ramp = Ramp{From: v, To: v, Start: t, End: t}
}

// SetValueAtTime implements Param.
func (a *Automation) SetValueAtTime(v, t float64) {
	a.ramp = Ramp{From: v, To: v, Start: t, End: t}
}

// LinearRampToValueAtTime implements Param. The ramp starts from the
// previous event.
func (a *Automation) LinearRampToValueAtTime(v, t float64) {
	a.ramp = Ramp{From: a.ramp.To, To: v, Start: a.ramp.End, End: t}
}

// ValueAt returns the parameter value at time t.
func (a *Automation) ValueAt(t float64) float64 {
	return a.ramp.ValueAt(t)
}
