package main

import (
	"fmt"
	"time"
)

// BenchmarkResult stores performance test results
type BenchmarkResult struct {
	TotalTicks      int
	TotalDuration   time.Duration
	TicksPerSec     float64
	DurationPerTick time.Duration
	Completions     uint64
}

// RunBenchmark runs a performance test in headless mode
func RunBenchmark(testTicks int, cfg *Config) (*BenchmarkResult, error) {
	// Override config for benchmark
	cfg.Headless = true
	cfg.VisualMode = "none"
	cfg.TotalTicks = testTicks

	wall, err := NewWall(cfg)
	if err != nil {
		return nil, err
	}

	// Measure execution time
	startTime := time.Now()
	wall.Run()
	duration := time.Since(startTime)

	ticksPerSec := float64(testTicks) / duration.Seconds()
	durationPerTick := duration / time.Duration(testTicks)

	return &BenchmarkResult{
		TotalTicks:      testTicks,
		TotalDuration:   duration,
		TicksPerSec:     ticksPerSec,
		DurationPerTick: durationPerTick,
		Completions:     wall.totalCompletions(),
	}, nil
}

// RunBenchmarkSuite runs the benchmark against every predefined layout
func RunBenchmarkSuite() {
	fmt.Println("=== Headless Mode Performance Benchmark ===")
	fmt.Println()

	const testTicks = 200000
	for _, layout := range GetPredefinedConfigs() {
		cfg := layout.Config.clone()
		cfg.Seed = 1 // comparable runs
		result, err := RunBenchmark(testTicks, cfg)
		if err != nil {
			fmt.Printf("%s: benchmark failed: %v\n", layout.Name, err)
			continue
		}
		fmt.Printf("%s: %d ticks in %v (%.0f ticks/s, %v/tick), %d sorts completed\n",
			layout.Name, result.TotalTicks, result.TotalDuration.Round(time.Millisecond),
			result.TicksPerSec, result.DurationPerTick, result.Completions)
	}
}
