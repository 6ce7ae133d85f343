package main

import (
	"errors"
	"fmt"

	"github.com/example/sort_wall_sim/sorter"
)

// ValidateConfig applies structural checks to Config and populates defaults
// where required.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if cfg.ArraySize <= 0 {
		cfg.ArraySize = sorter.DefaultArraySize
	}
	if cfg.ArraySize > 4096 {
		return fmt.Errorf("ArraySize too large, got %d", cfg.ArraySize)
	}
	if len(cfg.Slots) == 0 {
		return errors.New("at least one slot is required")
	}
	seen := make(map[string]bool, len(cfg.Slots))
	for i, slot := range cfg.Slots {
		if slot.Name == "" {
			return fmt.Errorf("slot %d has no name", i)
		}
		if seen[slot.Name] {
			return fmt.Errorf("duplicate slot name %q", slot.Name)
		}
		seen[slot.Name] = true
		if _, ok := sorter.ParseAlgorithm(slot.Algorithm); !ok {
			return fmt.Errorf("slot %q: unknown algorithm %q", slot.Name, slot.Algorithm)
		}
	}

	if cfg.TotalTicks < 0 {
		cfg.TotalTicks = 0
	}
	if cfg.RestartPeriodMs <= 0 {
		cfg.RestartPeriodMs = DefaultRestartPeriodMs
	}
	if cfg.RestartWindowMs <= 0 {
		cfg.RestartWindowMs = DefaultRestartWindowMs
	}
	if cfg.RestartWindowMs > cfg.RestartPeriodMs {
		return fmt.Errorf("RestartWindowMs %d exceeds RestartPeriodMs %d", cfg.RestartWindowMs, cfg.RestartPeriodMs)
	}

	return nil
}

// slotConfigs resolves the validated slot specs into engine slot configs.
func slotConfigs(cfg *Config) ([]sorter.SlotConfig, error) {
	out := make([]sorter.SlotConfig, 0, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		algo, ok := sorter.ParseAlgorithm(slot.Algorithm)
		if !ok {
			return nil, fmt.Errorf("slot %q: unknown algorithm %q", slot.Name, slot.Algorithm)
		}
		out = append(out, sorter.SlotConfig{Name: slot.Name, Algorithm: algo})
	}
	return out, nil
}
