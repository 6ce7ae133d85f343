package sorter

import "sync"

// CompletionCount pairs an algorithm with its recorded completion count.
type CompletionCount struct {
	Algorithm Algorithm
	Count     uint64
}

// Aggregator is the shared completion table. Engines from any execution
// context report into it through the CompletionObserver interface, so every
// access goes through the mutex even though the reference driver polls
// engines from a single tick loop.
type Aggregator struct {
	mu     sync.Mutex
	counts [algorithmCount]uint64
}

// NewAggregator returns an aggregator with every algorithm at zero.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// AlgorithmCompleted atomically increments the algorithm's completion
// count. It implements CompletionObserver and never fails; unknown tags
// are ignored.
func (a *Aggregator) AlgorithmCompleted(algo Algorithm) {
	if !algo.Valid() {
		return
	}
	a.mu.Lock()
	a.counts[algo]++
	a.mu.Unlock()
}

// Count returns the completion count recorded for one algorithm.
func (a *Aggregator) Count(algo Algorithm) uint64 {
	if !algo.Valid() {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[algo]
}

// Counts returns a snapshot of all counts in enumeration order.
func (a *Aggregator) Counts() []CompletionCount {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]CompletionCount, algorithmCount)
	for i := range a.counts {
		out[i] = CompletionCount{Algorithm: Algorithm(i), Count: a.counts[i]}
	}
	return out
}

// Leading returns the algorithm with the most completions. Ties go to the
// first-declared algorithm, so before any completion the first enumerated
// algorithm is reported with count zero.
func (a *Aggregator) Leading() (Algorithm, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	leader := Algorithm(0)
	best := a.counts[0]
	for i := 1; i < int(algorithmCount); i++ {
		if a.counts[i] > best {
			leader = Algorithm(i)
			best = a.counts[i]
		}
	}
	return leader, best
}

// Leaderboard returns up to limit entries ordered by descending count,
// enumeration order among equals. limit <= 0 means all algorithms.
func (a *Aggregator) Leaderboard(limit int) []CompletionCount {
	entries := a.Counts()
	// Insertion sort by count keeps the enumeration order stable for ties.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].Count < entries[j].Count; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}
