package sorter

import "strings"

// Algorithm identifies one of the supported sorting algorithms. The set is
// closed; dispatch is a switch over this tag, not dynamic.
type Algorithm int

const (
	AlgoBogo Algorithm = iota
	AlgoBubble
	AlgoQuick
	AlgoMerge
	AlgoInsertion
	AlgoSelection
	AlgoHeap
	AlgoRadix
	AlgoShell
	AlgoCocktail

	algorithmCount
)

var algorithmNames = [algorithmCount]string{
	AlgoBogo:      "Bogo Sort",
	AlgoBubble:    "Bubble Sort",
	AlgoQuick:     "Quick Sort",
	AlgoMerge:     "Merge Sort",
	AlgoInsertion: "Insertion Sort",
	AlgoSelection: "Selection Sort",
	AlgoHeap:      "Heap Sort",
	AlgoRadix:     "Radix Sort",
	AlgoShell:     "Shell Sort",
	AlgoCocktail:  "Cocktail Sort",
}

// Name returns the human-readable display name of the algorithm.
func (a Algorithm) Name() string {
	if a < 0 || a >= algorithmCount {
		return "Unknown"
	}
	return algorithmNames[a]
}

func (a Algorithm) String() string {
	return a.Name()
}

// Valid reports whether a is a member of the closed algorithm set.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

// Algorithms returns all algorithms in declaration order. The order is part
// of the contract: it breaks leaderboard ties (first declared wins).
func Algorithms() []Algorithm {
	all := make([]Algorithm, algorithmCount)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// ParseAlgorithm resolves a configuration string ("quick", "Quick Sort")
// to its Algorithm tag.
func ParseAlgorithm(name string) (Algorithm, bool) {
	for _, a := range Algorithms() {
		if strings.EqualFold(name, a.Name()) || strings.EqualFold(name, shortName(a)) {
			return a, true
		}
	}
	return 0, false
}

func shortName(a Algorithm) string {
	return strings.TrimSuffix(a.Name(), " Sort")
}
