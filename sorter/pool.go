package sorter

import "time"

// SlotConfig names one pool slot and binds it to an algorithm.
type SlotConfig struct {
	Name      string
	Algorithm Algorithm
}

// SlotView is the read-only per-slot snapshot handed to rendering
// collaborators. Values is a copy; mutating it cannot reach the engine.
type SlotView struct {
	Name          string
	Algorithm     Algorithm
	State         State
	Values        []byte
	Metrics       Metrics
	SortedPercent float64
}

// Pool owns a fixed set of named engines, advances each exactly once per
// tick, and applies the restart policy to completed engines. It is the
// explicit registry that replaces the original's global singleton slots.
type Pool struct {
	slots  []slot
	stats  *Aggregator
	policy RestartPolicy
	ticks  int
}

type slot struct {
	name   string
	engine *Engine
}

// NewPool builds one engine per slot config, all of size elements, sharing
// the rng, the stats aggregator, and the restart policy.
func NewPool(configs []SlotConfig, size int, rng Shuffler, stats *Aggregator, policy RestartPolicy) *Pool {
	p := &Pool{
		slots:  make([]slot, 0, len(configs)),
		stats:  stats,
		policy: policy,
	}
	for _, cfg := range configs {
		p.slots = append(p.slots, slot{
			name:   cfg.Name,
			engine: NewEngineWithSize(cfg.Algorithm, size, rng, stats),
		})
	}
	return p
}

// Tick advances every engine one step and flags completed engines for
// restart when the policy's time condition holds. now must be monotonic;
// the driver derives it from its clock.
func (p *Pool) Tick(now time.Duration) {
	p.ticks++
	for i := range p.slots {
		eng := p.slots[i].engine
		eng.Step()
		if eng.State() == StateCompleted && p.policy != nil && p.policy.ShouldRestart(now) {
			eng.Restart()
		}
	}
}

// Ticks returns how many times the pool has been advanced.
func (p *Pool) Ticks() int {
	return p.ticks
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return len(p.slots)
}

// Stats returns the shared completion aggregator.
func (p *Pool) Stats() *Aggregator {
	return p.stats
}

// Engine returns the engine in slot index, or nil when out of range.
// Exposed for tests and direct drivers; renderers should prefer Views.
func (p *Pool) Engine(index int) *Engine {
	if index < 0 || index >= len(p.slots) {
		return nil
	}
	return p.slots[index].engine
}

// RestartAll flags every engine for restart regardless of state or policy.
func (p *Pool) RestartAll() {
	for i := range p.slots {
		p.slots[i].engine.Restart()
	}
}

// Views returns a read-only snapshot of every slot for rendering.
func (p *Pool) Views() []SlotView {
	views := make([]SlotView, len(p.slots))
	for i, s := range p.slots {
		views[i] = SlotView{
			Name:          s.name,
			Algorithm:     s.engine.Algorithm(),
			State:         s.engine.State(),
			Values:        s.engine.Values(),
			Metrics:       s.engine.Metrics(),
			SortedPercent: s.engine.SortedPercent(),
		}
	}
	return views
}
