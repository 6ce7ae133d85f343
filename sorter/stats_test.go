package sorter

import (
	"sync"
	"testing"
)

func TestAggregatorZeroState(t *testing.T) {
	agg := NewAggregator()
	leader, count := agg.Leading()
	if leader != AlgoBogo || count != 0 {
		t.Fatalf("expected first-declared algorithm with zero count, got %s/%d", leader, count)
	}
	for _, entry := range agg.Counts() {
		if entry.Count != 0 {
			t.Fatalf("%s initialized to %d", entry.Algorithm, entry.Count)
		}
	}
}

func TestAggregatorLeading(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < 3; i++ {
		agg.AlgorithmCompleted(AlgoQuick)
	}
	agg.AlgorithmCompleted(AlgoShell)

	leader, count := agg.Leading()
	if leader != AlgoQuick || count != 3 {
		t.Fatalf("expected Quick/3, got %s/%d", leader, count)
	}
}

func TestAggregatorTieBreaksByDeclarationOrder(t *testing.T) {
	agg := NewAggregator()
	// Cocktail is declared after Bubble; equal counts must favor Bubble.
	agg.AlgorithmCompleted(AlgoCocktail)
	agg.AlgorithmCompleted(AlgoCocktail)
	agg.AlgorithmCompleted(AlgoBubble)
	agg.AlgorithmCompleted(AlgoBubble)

	leader, count := agg.Leading()
	if leader != AlgoBubble || count != 2 {
		t.Fatalf("expected Bubble/2 on tie, got %s/%d", leader, count)
	}
}

func TestAggregatorLeaderboard(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < 5; i++ {
		agg.AlgorithmCompleted(AlgoInsertion)
	}
	for i := 0; i < 2; i++ {
		agg.AlgorithmCompleted(AlgoHeap)
	}
	agg.AlgorithmCompleted(AlgoBogo)

	board := agg.Leaderboard(4)
	if len(board) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(board))
	}
	if board[0].Algorithm != AlgoInsertion || board[0].Count != 5 {
		t.Fatalf("unexpected top entry %s/%d", board[0].Algorithm, board[0].Count)
	}
	if board[1].Algorithm != AlgoHeap || board[1].Count != 2 {
		t.Fatalf("unexpected second entry %s/%d", board[1].Algorithm, board[1].Count)
	}
	if board[2].Algorithm != AlgoBogo || board[2].Count != 1 {
		t.Fatalf("unexpected third entry %s/%d", board[2].Algorithm, board[2].Count)
	}
	// Zero-count tail keeps declaration order.
	if board[3].Algorithm != AlgoBubble || board[3].Count != 0 {
		t.Fatalf("unexpected fourth entry %s/%d", board[3].Algorithm, board[3].Count)
	}
}

func TestAggregatorConcurrentIncrements(t *testing.T) {
	agg := NewAggregator()
	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				agg.AlgorithmCompleted(AlgoMerge)
				agg.Leading()
			}
		}()
	}
	wg.Wait()

	if got := agg.Count(AlgoMerge); got != workers*perWorker {
		t.Fatalf("lost updates: got %d want %d", got, workers*perWorker)
	}
}
