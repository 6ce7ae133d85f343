package main

import (
	"testing"

	"github.com/example/sort_wall_sim/sorter"
)

func TestValidateConfigPopulatesDefaults(t *testing.T) {
	cfg := &Config{
		Slots: []SlotSpec{{Name: "a", Algorithm: "bubble"}},
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
	if cfg.ArraySize != sorter.DefaultArraySize {
		t.Errorf("Expected default array size %d, got %d", sorter.DefaultArraySize, cfg.ArraySize)
	}
	if cfg.RestartPeriodMs != DefaultRestartPeriodMs {
		t.Errorf("Expected default restart period, got %d", cfg.RestartPeriodMs)
	}
	if cfg.RestartWindowMs != DefaultRestartWindowMs {
		t.Errorf("Expected default restart window, got %d", cfg.RestartWindowMs)
	}
}

func TestValidateConfigRejections(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"no slots", &Config{ArraySize: 10}},
		{"oversized array", &Config{
			ArraySize: 5000,
			Slots:     []SlotSpec{{Name: "a", Algorithm: "bubble"}},
		}},
		{"unnamed slot", &Config{
			Slots: []SlotSpec{{Algorithm: "bubble"}},
		}},
		{"duplicate slot name", &Config{
			Slots: []SlotSpec{
				{Name: "a", Algorithm: "bubble"},
				{Name: "a", Algorithm: "quick"},
			},
		}},
		{"unknown algorithm", &Config{
			Slots: []SlotSpec{{Name: "a", Algorithm: "librarian"}},
		}},
		{"window exceeds period", &Config{
			Slots:           []SlotSpec{{Name: "a", Algorithm: "bubble"}},
			RestartPeriodMs: 100,
			RestartWindowMs: 200,
		}},
	}
	for _, tc := range cases {
		if err := ValidateConfig(tc.cfg); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestPredefinedConfigsAreValid(t *testing.T) {
	layouts := GetPredefinedConfigs()
	if len(layouts) == 0 {
		t.Fatal("Expected predefined layouts")
	}
	for _, layout := range layouts {
		if layout.Name == "" || layout.Description == "" {
			t.Errorf("Layout missing name or description: %+v", layout)
		}
		cfg := layout.Config.clone()
		if err := ValidateConfig(cfg); err != nil {
			t.Errorf("Layout %s failed validation: %v", layout.Name, err)
		}
	}
}

func TestGetConfigByNameReturnsCopy(t *testing.T) {
	cfg := GetConfigByName("border_wall")
	if cfg == nil {
		t.Fatal("Expected border_wall config")
	}
	cfg.ArraySize = 1
	cfg.Slots[0].Algorithm = "bogo"

	fresh := GetConfigByName("border_wall")
	if fresh.ArraySize == 1 {
		t.Error("Mutating a returned config leaked into the predefined layout")
	}
	if fresh.Slots[0].Algorithm == "bogo" {
		t.Error("Mutating a returned slot leaked into the predefined layout")
	}

	if GetConfigByName("no_such_layout") != nil {
		t.Error("Expected nil for unknown layout name")
	}
}

func TestComputeConfigHash(t *testing.T) {
	base := GetConfigByName("border_wall")
	first := computeConfigHash(base)
	if len(first) != ConfigHashLength {
		t.Fatalf("Expected %d-char hash, got %q", ConfigHashLength, first)
	}
	if computeConfigHash(base) != first {
		t.Error("Hash of unchanged config differs between calls")
	}

	changed := base.clone()
	changed.Slots[0].Algorithm = "merge"
	if computeConfigHash(changed) == first {
		t.Error("Expected hash to change when a slot algorithm changes")
	}

	resized := base.clone()
	resized.ArraySize = 32
	if computeConfigHash(resized) == first {
		t.Error("Expected hash to change when the array size changes")
	}

	if computeConfigHash(nil) != "" {
		t.Error("Expected empty hash for nil config")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"info":    LogLevelInfo,
		"warn":    LogLevelWarn,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"ERROR":   LogLevelError,
		"bogus":   LogLevelInfo,
	}
	for input, want := range cases {
		if got := ParseLogLevel(input); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
