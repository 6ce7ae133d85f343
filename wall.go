package main

import (
	"math/rand"
	"time"

	"github.com/example/sort_wall_sim/sorter"
	"github.com/example/sort_wall_sim/visual"
)

// Wall drives a pool of sorting engines from a single tick loop and feeds
// frames to whichever visualizer is attached. It owns every engine; nothing
// else mutates them.
type Wall struct {
	cfg        *Config
	pool       *sorter.Pool
	stats      *sorter.Aggregator
	visualizer visual.Visualizer
	configHash string

	// clock maps the tick counter to the monotonic time handed to the
	// restart policy. Headless runs use a logical clock derived from the
	// tick count so results do not depend on host speed.
	clock func(tick int) time.Duration

	tick            int
	lastCompletions uint64

	isPaused  bool
	isRunning bool
}

// NewWall validates the config and builds the pool and its shared stats
// table. The visualizer starts as the one implied by the config; GUI hosts
// swap in their own with SetVisualizer before running.
func NewWall(cfg *Config) (*Wall, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	slots, err := slotConfigs(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	stats := sorter.NewAggregator()
	policy := sorter.NewPulsePolicy(cfg.restartPeriod(), cfg.restartWindow())

	w := &Wall{
		cfg:        cfg,
		pool:       sorter.NewPool(slots, cfg.ArraySize, rng, stats, policy),
		stats:      stats,
		configHash: computeConfigHash(cfg),
	}
	w.visualizer = w.initVisualizer()
	w.clock = w.defaultClock()
	return w, nil
}

func (w *Wall) defaultClock() func(tick int) time.Duration {
	if w.cfg.Headless {
		delay := w.cfg.tickDelay()
		return func(tick int) time.Duration {
			return time.Duration(tick) * delay
		}
	}
	start := time.Now()
	return func(int) time.Duration {
		return time.Since(start)
	}
}

func (w *Wall) initVisualizer() visual.Visualizer {
	mode := w.cfg.VisualMode
	if mode == "" {
		mode = "web"
	}
	if w.cfg.Headless || mode == "none" || mode == "gui" {
		// GUI visualizers need the host's main goroutine; main attaches
		// one with SetVisualizer.
		viz := visual.NewNullVisualizer()
		viz.SetHeadless(w.cfg.Headless || mode == "none")
		return viz
	}
	viz := NewWebVisualizer(defaultWebAddr)
	viz.SetHeadless(false)
	return viz
}

// SetVisualizer replaces the attached visualizer before Run starts.
func (w *Wall) SetVisualizer(v visual.Visualizer) {
	if v == nil {
		return
	}
	w.visualizer = v
}

// Pool exposes the engine pool for direct drivers and tests.
func (w *Wall) Pool() *sorter.Pool {
	return w.pool
}

// Stats returns the shared completion table.
func (w *Wall) Stats() *sorter.Aggregator {
	return w.stats
}

// Ticks returns how many ticks have been executed.
func (w *Wall) Ticks() int {
	return w.tick
}

// Run executes the tick loop until TotalTicks is reached (when positive).
// Each iteration drains one control command, advances every engine once,
// and publishes a frame when a frontend is attached.
func (w *Wall) Run() {
	w.isRunning = true
	w.isPaused = false

	for w.cfg.TotalTicks <= 0 || w.tick < w.cfg.TotalTicks {
		stepCommandPending := false
		if w.visualizer != nil {
			cmd, hasCmd := w.visualizer.NextCommand()
			if hasCmd {
				switch cmd.Type {
				case visual.CommandPause:
					w.isPaused = true
				case visual.CommandResume:
					w.isPaused = false
				case visual.CommandReset:
					w.reset(cmd.ConfigOverride)
					continue
				case visual.CommandStep:
					// Only meaningful while paused; executes one tick
					// below without resuming.
					if w.isPaused {
						stepCommandPending = true
					}
				}
			}
		}

		if w.isPaused && !stepCommandPending {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		now := w.clock(w.tick)
		w.pool.Tick(now)
		w.tick++

		metrics.RecordTicks(1)
		if total := w.totalCompletions(); total > w.lastCompletions {
			metrics.RecordCompletions(int(total - w.lastCompletions))
			w.lastCompletions = total
		}

		if w.visualizer != nil && !w.visualizer.IsHeadless() {
			w.visualizer.PublishFrame(w.buildFrame())
			time.Sleep(w.cfg.tickDelay())
		}
	}

	w.isRunning = false
}

// reset rebuilds the pool, optionally from a frontend-supplied config
// override. The completion table survives resets; it is the process-wide
// record, not per-layout state.
func (w *Wall) reset(override any) {
	if cfg, ok := override.(*Config); ok && cfg != nil {
		next := cfg.clone()
		next.Headless = w.cfg.Headless
		next.VisualMode = w.cfg.VisualMode
		if err := ValidateConfig(next); err != nil {
			GetLogger().Warnf("Reset rejected: %v", err)
			return
		}
		w.cfg = next
	}

	slots, err := slotConfigs(w.cfg)
	if err != nil {
		GetLogger().Errorf("Reset failed: %v", err)
		return
	}
	seed := w.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy := sorter.NewPulsePolicy(w.cfg.restartPeriod(), w.cfg.restartWindow())
	w.pool = sorter.NewPool(slots, w.cfg.ArraySize, rand.New(rand.NewSource(seed)), w.stats, policy)
	w.configHash = computeConfigHash(w.cfg)
	w.tick = 0
	w.lastCompletions = w.totalCompletions()
	w.clock = w.defaultClock()
	w.isPaused = false
	GetLogger().Infof("Wall reset: %d slots, %d elements", w.pool.Size(), w.cfg.ArraySize)
}

func (w *Wall) totalCompletions() uint64 {
	var total uint64
	for _, entry := range w.stats.Counts() {
		total += entry.Count
	}
	return total
}

// buildFrame snapshots every slot plus the leaderboard for frontends.
func (w *Wall) buildFrame() *visual.WallFrame {
	views := w.pool.Views()
	slots := make([]visual.SlotSnapshot, len(views))
	for i, v := range views {
		values := make([]int, len(v.Values))
		for k, b := range v.Values {
			values[k] = int(b)
		}
		slots[i] = visual.SlotSnapshot{
			Name:          v.Name,
			Algorithm:     v.Algorithm.Name(),
			State:         v.State.String(),
			Values:        values,
			Steps:         v.Metrics.Steps,
			Comparisons:   v.Metrics.Comparisons,
			Accesses:      v.Metrics.Accesses,
			SortedPercent: v.SortedPercent,
		}
	}

	leaderAlgo, leaderCount := w.stats.Leading()
	board := w.stats.Leaderboard(4)
	leaderboard := make([]visual.AlgorithmCount, len(board))
	for i, entry := range board {
		leaderboard[i] = visual.AlgorithmCount{Algorithm: entry.Algorithm.Name(), Count: entry.Count}
	}

	return &visual.WallFrame{
		Tick:        w.tick,
		Elapsed:     w.clock(w.tick).Seconds(),
		Paused:      w.isPaused,
		Slots:       slots,
		Leader:      visual.AlgorithmCount{Algorithm: leaderAlgo.Name(), Count: leaderCount},
		Leaderboard: leaderboard,
		ConfigHash:  w.configHash,
	}
}
