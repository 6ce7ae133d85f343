package sorter

import "time"

// RestartPolicy decides whether a completed engine should be flagged for
// restart at the given monotonic time. The policy is a convenience layered
// on the engine state machine; it can only request a restart, never bypass
// the Completed -> Restarting -> Running transitions.
type RestartPolicy interface {
	ShouldRestart(now time.Duration) bool
}

// RestartPolicyFunc adapts a function into a RestartPolicy.
type RestartPolicyFunc func(now time.Duration) bool

// ShouldRestart calls the underlying function.
func (f RestartPolicyFunc) ShouldRestart(now time.Duration) bool {
	if f == nil {
		return false
	}
	return f(now)
}

// PulsePolicy restarts completed engines during a short window at the start
// of every period, so all completed slots reshuffle together on the pulse.
type PulsePolicy struct {
	Period time.Duration
	Window time.Duration
}

const (
	// DefaultRestartPeriod spaces restart pulses one second apart.
	DefaultRestartPeriod = time.Second
	// DefaultRestartWindow keeps each pulse open for a tenth of a second.
	DefaultRestartWindow = 100 * time.Millisecond
)

// NewPulsePolicy builds a pulse policy, substituting the defaults for
// non-positive values.
func NewPulsePolicy(period, window time.Duration) PulsePolicy {
	if period <= 0 {
		period = DefaultRestartPeriod
	}
	if window <= 0 {
		window = DefaultRestartWindow
	}
	return PulsePolicy{Period: period, Window: window}
}

// ShouldRestart reports whether now falls inside the current pulse window.
func (p PulsePolicy) ShouldRestart(now time.Duration) bool {
	if p.Period <= 0 {
		return true
	}
	return now%p.Period < p.Window
}
