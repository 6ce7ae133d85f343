package main

import "fmt"

// PrintStats writes the headless-run completion report to stdout.
func PrintStats(w *Wall) {
	if w == nil {
		fmt.Println("No stats available")
		return
	}

	fmt.Println("=== Wall Statistics ===")
	fmt.Printf("Total Ticks: %d\n", w.Ticks())
	leader, count := w.Stats().Leading()
	fmt.Printf("Leading Algorithm: %s (%d completions)\n", leader.Name(), count)

	fmt.Println()
	fmt.Println("=== Completions per Algorithm ===")
	for _, entry := range w.Stats().Counts() {
		if entry.Count == 0 {
			continue
		}
		fmt.Printf("%s: %d\n", entry.Algorithm.Name(), entry.Count)
	}

	fmt.Println()
	fmt.Println("=== Slot Snapshot ===")
	for _, view := range w.Pool().Views() {
		fmt.Printf("Slot %s (%s): state=%s steps=%d comparisons=%d accesses=%d sorted=%.0f%%\n",
			view.Name, view.Algorithm.Name(), view.State,
			view.Metrics.Steps, view.Metrics.Comparisons, view.Metrics.Accesses,
			view.SortedPercent*100)
	}
}
