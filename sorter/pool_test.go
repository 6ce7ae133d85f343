package sorter

import (
	"math/rand"
	"testing"
	"time"
)

func fourSlotConfigs() []SlotConfig {
	return []SlotConfig{
		{Name: "top", Algorithm: AlgoShell},
		{Name: "bottom", Algorithm: AlgoQuick},
		{Name: "left", Algorithm: AlgoInsertion},
		{Name: "right", Algorithm: AlgoSelection},
	}
}

func TestPoolTickAdvancesEverySlot(t *testing.T) {
	pool := NewPool(fourSlotConfigs(), 100, rand.New(rand.NewSource(1)), NewAggregator(), nil)
	if pool.Size() != 4 {
		t.Fatalf("expected 4 slots, got %d", pool.Size())
	}

	for tick := 1; tick <= 3; tick++ {
		pool.Tick(0)
		for i := 0; i < pool.Size(); i++ {
			if steps := pool.Engine(i).Metrics().Steps; steps != tick {
				t.Fatalf("slot %d advanced %d steps after %d ticks", i, steps, tick)
			}
		}
	}
	if pool.Ticks() != 3 {
		t.Fatalf("tick counter: got %d", pool.Ticks())
	}
}

func TestPoolRestartPolicyCycle(t *testing.T) {
	always := RestartPolicyFunc(func(time.Duration) bool { return true })
	// The no-op shuffler leaves a sorted ramp, so bubble completes on the
	// first pass confirmation.
	pool := NewPool([]SlotConfig{{Name: "only", Algorithm: AlgoBubble}}, 4, &countingShuffler{}, NewAggregator(), always)
	eng := pool.Engine(0)

	for i := 0; i < 10 && eng.State() != StateRestarting; i++ {
		pool.Tick(0)
	}
	if eng.State() != StateRestarting {
		t.Fatalf("policy never flagged the completed engine, state=%s", eng.State())
	}

	// The next tick applies the pending restart before anything else.
	pool.Tick(0)
	if eng.State() != StateRunning {
		t.Fatalf("expected running after restart tick, got %s", eng.State())
	}
	if eng.Metrics() != (Metrics{}) {
		t.Fatalf("metrics survived restart: %+v", eng.Metrics())
	}
}

func TestPoolHoldsCompletedWithoutPolicyWindow(t *testing.T) {
	never := RestartPolicyFunc(func(time.Duration) bool { return false })
	agg := NewAggregator()
	pool := NewPool([]SlotConfig{{Name: "only", Algorithm: AlgoBubble}}, 4, &countingShuffler{}, agg, never)
	eng := pool.Engine(0)

	for i := 0; i < 20; i++ {
		pool.Tick(0)
	}
	if eng.State() != StateCompleted {
		t.Fatalf("expected completed engine to stay frozen, got %s", eng.State())
	}
	if got := agg.Count(AlgoBubble); got != 1 {
		t.Fatalf("completion recorded %d times", got)
	}
}

func TestPulsePolicyWindows(t *testing.T) {
	policy := NewPulsePolicy(time.Second, 100*time.Millisecond)
	cases := []struct {
		now  time.Duration
		want bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{100 * time.Millisecond, false},
		{500 * time.Millisecond, false},
		{time.Second, true},
		{time.Second + 99*time.Millisecond, true},
		{time.Second + 150*time.Millisecond, false},
		{3*time.Second + 10*time.Millisecond, true},
	}
	for _, tc := range cases {
		if got := policy.ShouldRestart(tc.now); got != tc.want {
			t.Fatalf("ShouldRestart(%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestPoolViewsAreReadOnlySnapshots(t *testing.T) {
	pool := NewPool(fourSlotConfigs(), 50, rand.New(rand.NewSource(4)), NewAggregator(), nil)
	pool.Tick(0)

	views := pool.Views()
	if len(views) != 4 {
		t.Fatalf("expected 4 views, got %d", len(views))
	}
	for i, v := range views {
		if v.Name != fourSlotConfigs()[i].Name {
			t.Fatalf("view %d name %q", i, v.Name)
		}
		if v.Algorithm != fourSlotConfigs()[i].Algorithm {
			t.Fatalf("view %d algorithm %s", i, v.Algorithm)
		}
		if len(v.Values) != 50 {
			t.Fatalf("view %d has %d values", i, len(v.Values))
		}
		if v.State != StateRunning {
			t.Fatalf("view %d state %s", i, v.State)
		}
	}

	// Mutating a view must not reach the engine.
	views[0].Values[0] ^= 0xff
	if pool.Engine(0).Values()[0] == views[0].Values[0] {
		t.Fatalf("view aliases engine storage")
	}
}

func TestPoolRestartAll(t *testing.T) {
	pool := NewPool(fourSlotConfigs(), 60, rand.New(rand.NewSource(8)), NewAggregator(), nil)
	pool.RestartAll()
	for i := 0; i < pool.Size(); i++ {
		if got := pool.Engine(i).State(); got != StateRestarting {
			t.Fatalf("slot %d state %s after RestartAll", i, got)
		}
	}
	pool.Tick(0)
	for i := 0; i < pool.Size(); i++ {
		if got := pool.Engine(i).State(); got != StateRunning {
			t.Fatalf("slot %d state %s after restart tick", i, got)
		}
	}
}
