package signal

// Sample is one observation of every monitored predicate at time T.
type Sample struct {
	T      float64
	Values []bool
}

// Trace is a time-ordered, fixed-step sequence of samples. Traces are
// produced once and read-only afterwards.
type Trace []Sample

// StepFn reports whether a predicate holds at time t.
type StepFn func(t float64) bool

// DefaultStep is the sampling grid spacing used when a signal config
// does not set one.
const DefaultStep = 0.1

// Generate samples every predicate on the grid 0, step, 2*step, ...
// stopping at the first grid point that reaches the horizon. Grid
// points are computed as i*step so accumulated floating-point error can
// neither skip the final sample nor emit one past it.
func Generate(horizon, step float64, fns []StepFn) Trace {
	if step <= 0 || horizon < 0 {
		return nil
	}
	var trace Trace
	for i := 0; ; i++ {
		t := float64(i) * step
		values := make([]bool, len(fns))
		for j, fn := range fns {
			values[j] = fn(t)
		}
		trace = append(trace, Sample{T: t, Values: values})
		if t >= horizon {
			break
		}
	}
	return trace
}
