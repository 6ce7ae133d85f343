package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/example/sort_wall_sim/sorter"
)

func main() {
	var headless = flag.Bool("headless", false, "Run in headless mode (no UI)")
	var benchmark = flag.Bool("benchmark", false, "Run performance benchmark test")
	var configName = flag.String("config", "", "Predefined configuration name (e.g., 'border_wall', 'full_roster')")
	var mode = flag.String("mode", "web", "Visual mode: web, gui, or none")
	var ticks = flag.Int("ticks", 0, "Override total tick count (0 keeps the configured value)")
	var seed = flag.Int64("seed", 0, "Shuffle seed (0 derives one from the clock)")
	var logLevel = flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	GetLogger().SetLevel(ParseLogLevel(*logLevel))

	// If benchmark mode, run benchmark suite
	if *benchmark {
		RunBenchmarkSuite()
		return
	}

	// Use predefined configuration
	configs := GetPredefinedConfigs()
	var cfg *Config

	// If config name is specified, use it; otherwise use first config
	selectedConfigName := *configName
	if selectedConfigName == "" && len(configs) > 0 {
		selectedConfigName = configs[0].Name
	}

	if selectedConfigName != "" {
		cfg = GetConfigByName(selectedConfigName)
		if cfg == nil {
			fmt.Printf("Warning: Configuration '%s' not found, using default\n", selectedConfigName)
		}
	}

	if cfg == nil {
		// Fallback if GetConfigByName fails or no configs available
		cfg = &Config{
			ArraySize: sorter.DefaultArraySize,
			Slots: []SlotSpec{
				{Name: "top", Algorithm: "Shell Sort"},
				{Name: "bottom", Algorithm: "Quick Sort"},
				{Name: "left", Algorithm: "Insertion Sort"},
				{Name: "right", Algorithm: "Selection Sort"},
			},
			TotalTicks:  DefaultTotalTicks,
			TickDelayMs: int(DefaultVisualizationDelay / time.Millisecond),
		}
	}

	cfg.Headless = *headless
	cfg.VisualMode = *mode
	if *ticks > 0 {
		cfg.TotalTicks = *ticks
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	wall, err := NewWall(cfg)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		return
	}

	if *headless || *mode == "none" {
		// Headless mode: run the wall and print the report
		wall.Run()
		PrintStats(wall)
		return
	}

	if *mode == "gui" {
		// Fyne owns the main goroutine; the tick loop runs alongside it.
		viz := NewFyneVisualizer()
		viz.Initialize()
		wall.SetVisualizer(viz)
		go wall.Run()
		viz.ShowAndRun()
		return
	}

	// Web mode: run the wall in a goroutine and keep the server alive
	go wall.Run()
	for {
		time.Sleep(1 * time.Second)
	}
}
