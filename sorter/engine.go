package sorter

// DefaultArraySize is the number of elements an engine sorts unless the
// caller asks for a different size.
const DefaultArraySize = 200

// State describes where an engine is in its lifecycle.
type State int

const (
	// StateRunning means the algorithm is actively making progress.
	StateRunning State = iota
	// StateCompleted means the array is fully sorted; the engine is frozen
	// until a restart is requested.
	StateCompleted
	// StateRestarting means a restart has been requested; the reshuffle
	// happens lazily on the next Step call.
	StateRestarting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// Shuffler supplies the uniform permutation source for an engine.
// *math/rand.Rand satisfies it directly; tests inject deterministic stubs.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// CompletionObserver is notified exactly once each time an engine's array
// reaches sorted order. The Aggregator is the usual implementation.
type CompletionObserver interface {
	AlgorithmCompleted(algo Algorithm)
}

// Metrics counts the work an engine has performed since it last entered
// the running state. Counters are instrumentation only; they never affect
// control flow.
type Metrics struct {
	Steps       int
	Comparisons int
	Accesses    int
}

// span is a pending (low, high) index range, the explicit stand-in for a
// recursive call frame.
type span struct {
	low  int
	high int
}

// Engine advances one sorting algorithm in small bounded units so a render
// loop can poll it once per frame. All cursor state lives here; nothing is
// shared with other engines.
type Engine struct {
	algo   Algorithm
	values []byte
	state  State

	// Cursor state. i and j are generic loop positions; pivot is
	// overloaded per algorithm (partition index for quick, gap for shell,
	// minimum index for selection, run width for merge, bit for radix,
	// high boundary for cocktail). phase flags a direction or stage for
	// the bidirectional and two-stage algorithms.
	i     int
	j     int
	pivot int
	phase int
	stack []span
	aux   []byte

	metrics  Metrics
	rng      Shuffler
	observer CompletionObserver
}

// NewEngine builds an engine for the default array size.
func NewEngine(algo Algorithm, rng Shuffler, observer CompletionObserver) *Engine {
	return NewEngineWithSize(algo, DefaultArraySize, rng, observer)
}

// NewEngineWithSize builds an engine over size elements. The values are the
// fixed multiset 1..size reduced mod 256, shuffled by rng; the multiset
// never changes afterwards, only its order.
func NewEngineWithSize(algo Algorithm, size int, rng Shuffler, observer CompletionObserver) *Engine {
	if size < 0 {
		size = 0
	}
	values := make([]byte, size)
	for i := range values {
		values[i] = byte((i + 1) % 256)
	}
	e := &Engine{
		algo:     algo,
		values:   values,
		state:    StateRunning,
		rng:      rng,
		observer: observer,
	}
	e.shuffle()
	e.initCursors()
	return e
}

// Algorithm returns the engine's fixed algorithm tag.
func (e *Engine) Algorithm() Algorithm {
	return e.algo
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Len returns the array length, constant for the engine's lifetime.
func (e *Engine) Len() int {
	return len(e.values)
}

// Values returns a copy of the current array contents for rendering.
func (e *Engine) Values() []byte {
	out := make([]byte, len(e.values))
	copy(out, e.values)
	return out
}

// Metrics returns the counters accumulated since the engine last entered
// the running state.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// SortedPercent reports the fraction of adjacent pairs already in order,
// in [0, 1]. Purely informational.
func (e *Engine) SortedPercent() float64 {
	n := len(e.values)
	if n < 2 {
		return 1
	}
	sorted := 0
	for i := 1; i < n; i++ {
		if e.values[i-1] <= e.values[i] {
			sorted++
		}
	}
	return float64(sorted) / float64(n-1)
}

// Restart flags the engine for a reshuffle. The reset itself happens on the
// next Step call, so a restart request is safe at any time.
func (e *Engine) Restart() {
	e.state = StateRestarting
}

// Step advances the algorithm by one bounded unit of work. Completed
// engines are frozen; a pending restart is applied here (reshuffle, zero
// metrics and cursors) without performing algorithm work.
func (e *Engine) Step() {
	switch e.state {
	case StateCompleted:
		return
	case StateRestarting:
		e.shuffle()
		e.metrics = Metrics{}
		e.i, e.j, e.pivot, e.phase = 0, 0, 0, 0
		e.stack = e.stack[:0]
		e.initCursors()
		e.state = StateRunning
		return
	}

	switch e.algo {
	case AlgoBogo:
		e.stepBogo()
	case AlgoBubble:
		e.stepBubble()
	case AlgoQuick:
		e.stepQuick()
	case AlgoMerge:
		e.stepMerge()
	case AlgoInsertion:
		e.stepInsertion()
	case AlgoSelection:
		e.stepSelection()
	case AlgoHeap:
		e.stepHeap()
	case AlgoRadix:
		e.stepRadix()
	case AlgoShell:
		e.stepShell()
	case AlgoCocktail:
		e.stepCocktail()
	}
	e.metrics.Steps++
}

// initCursors applies the algorithm-specific starting positions. Called on
// construction and again after every reshuffle.
func (e *Engine) initCursors() {
	n := len(e.values)
	switch e.algo {
	case AlgoQuick:
		if n > 1 {
			e.stack = append(e.stack, span{low: 0, high: n - 1})
		}
	case AlgoShell:
		e.pivot = n / 2
	case AlgoInsertion:
		e.i = 1
	case AlgoMerge:
		e.pivot = 1
		e.ensureAux()
	case AlgoHeap:
		e.i = n / 2
		e.j = n
	case AlgoRadix:
		e.ensureAux()
	case AlgoCocktail:
		if n > 0 {
			e.pivot = n - 1
		}
	}
}

func (e *Engine) ensureAux() {
	if e.aux == nil {
		e.aux = make([]byte, len(e.values))
	}
}

// complete moves the engine to the completed state and fires the one-time
// observer notification. Only reachable from the running state, so the
// notification cannot double-fire.
func (e *Engine) complete() {
	e.state = StateCompleted
	if e.observer != nil {
		e.observer.AlgorithmCompleted(e.algo)
	}
}

func (e *Engine) shuffle() {
	if e.rng == nil {
		return
	}
	e.rng.Shuffle(len(e.values), func(i, j int) {
		e.values[i], e.values[j] = e.values[j], e.values[i]
	})
}

// compare performs one ordering test between positions a and b, counting
// the two reads, and reports whether they are out of ascending order.
func (e *Engine) compare(a, b int) bool {
	e.metrics.Comparisons++
	e.metrics.Accesses += 2
	return e.values[a] > e.values[b]
}

// swapAt exchanges two positions, counting the two writes.
func (e *Engine) swapAt(a, b int) {
	e.values[a], e.values[b] = e.values[b], e.values[a]
	e.metrics.Accesses += 2
}

func (e *Engine) stackDepth() int {
	return len(e.stack)
}
