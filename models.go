package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Simulation constants
const (
	// DefaultVisualizationDelay is the pause between published frames when
	// a frontend is attached; one frame per delay is one engine step.
	DefaultVisualizationDelay = 50 * time.Millisecond

	// DefaultTotalTicks bounds a headless run; interactive modes run until
	// the frontend stops them.
	DefaultTotalTicks = 20000

	// DefaultRestartPeriodMs and DefaultRestartWindowMs describe the
	// restart pulse: completed slots reshuffle during the first window of
	// every period.
	DefaultRestartPeriodMs = 1000
	DefaultRestartWindowMs = 100

	// ConfigHashLength is the length of the config hash in hex characters.
	ConfigHashLength = 16
)

// SlotSpec binds a named wall slot to a sorting algorithm.
type SlotSpec struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
}

// Config holds wall configuration values.
type Config struct {
	// ArraySize is the element count every slot sorts. All slots share
	// one size so the leaderboard compares algorithms, not array lengths.
	ArraySize int `json:"arraySize"`

	// Slots lays out the wall; one engine per entry.
	Slots []SlotSpec `json:"slots"`

	// TotalTicks limits the run; <= 0 means run until stopped.
	TotalTicks int `json:"totalTicks"`

	// TickDelayMs is the per-frame delay in visual modes. Headless runs
	// never sleep and use it only to derive the logical clock.
	TickDelayMs int `json:"tickDelayMs"`

	// Restart pulse timing, milliseconds.
	RestartPeriodMs int `json:"restartPeriodMs"`
	RestartWindowMs int `json:"restartWindowMs"`

	// Seed fixes the shuffle source; 0 seeds from the wall clock.
	Seed int64 `json:"seed"`

	// visualization settings
	Headless   bool   `json:"headless"`
	VisualMode string `json:"visualMode"` // "web" | "gui" | "none"
}

func (c *Config) tickDelay() time.Duration {
	if c.TickDelayMs <= 0 {
		return DefaultVisualizationDelay
	}
	return time.Duration(c.TickDelayMs) * time.Millisecond
}

func (c *Config) restartPeriod() time.Duration {
	return time.Duration(c.RestartPeriodMs) * time.Millisecond
}

func (c *Config) restartWindow() time.Duration {
	return time.Duration(c.RestartWindowMs) * time.Millisecond
}

// clone returns a deep copy so resets cannot alias frontend-owned memory.
func (c *Config) clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Slots = make([]SlotSpec, len(c.Slots))
	copy(out.Slots, c.Slots)
	return &out
}

// computeConfigHash computes a hash of the configuration so frontends can
// detect layout changes between frames.
func computeConfigHash(cfg *Config) string {
	if cfg == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d-%d-%d-%d", cfg.ArraySize, cfg.RestartPeriodMs, cfg.RestartWindowMs, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		fmt.Fprintf(&sb, "-%s:%s", slot.Name, slot.Algorithm)
	}
	hash := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(hash[:])[:ConfigHashLength]
}
