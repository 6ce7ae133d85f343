package main

// WallLayoutConfig represents a predefined wall layout.
type WallLayoutConfig struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Config      *Config `json:"-"`
}

// GetPredefinedConfigs returns all available predefined wall layouts.
func GetPredefinedConfigs() []WallLayoutConfig {
	return []WallLayoutConfig{
		{
			Name:        "border_wall",
			Description: "Classic screen-border wall: Shell on top, Quick on bottom, Insertion left, Selection right, 100 elements each",
			Config: &Config{
				ArraySize: 100,
				Slots: []SlotSpec{
					{Name: "top", Algorithm: "shell"},
					{Name: "bottom", Algorithm: "quick"},
					{Name: "left", Algorithm: "insertion"},
					{Name: "right", Algorithm: "selection"},
				},
				TotalTicks:      0,
				RestartPeriodMs: DefaultRestartPeriodMs,
				RestartWindowMs: DefaultRestartWindowMs,
				Headless:        false,
				VisualMode:      "web",
			},
		},
		{
			Name:        "full_roster",
			Description: "Every algorithm in its own slot over 64 elements; the long-run leaderboard shootout",
			Config: &Config{
				ArraySize: 64,
				Slots: []SlotSpec{
					{Name: "bogo", Algorithm: "bogo"},
					{Name: "bubble", Algorithm: "bubble"},
					{Name: "quick", Algorithm: "quick"},
					{Name: "merge", Algorithm: "merge"},
					{Name: "insertion", Algorithm: "insertion"},
					{Name: "selection", Algorithm: "selection"},
					{Name: "heap", Algorithm: "heap"},
					{Name: "radix", Algorithm: "radix"},
					{Name: "shell", Algorithm: "shell"},
					{Name: "cocktail", Algorithm: "cocktail"},
				},
				TotalTicks:      0,
				RestartPeriodMs: DefaultRestartPeriodMs,
				RestartWindowMs: DefaultRestartWindowMs,
				Headless:        false,
				VisualMode:      "web",
			},
		},
		{
			Name:        "chaos_small",
			Description: "Tiny arrays where even Bogo finishes: Bogo, Cocktail, Radix, and Merge over 8 elements",
			Config: &Config{
				ArraySize: 8,
				Slots: []SlotSpec{
					{Name: "bogo", Algorithm: "bogo"},
					{Name: "cocktail", Algorithm: "cocktail"},
					{Name: "radix", Algorithm: "radix"},
					{Name: "merge", Algorithm: "merge"},
				},
				TotalTicks:      0,
				RestartPeriodMs: DefaultRestartPeriodMs,
				RestartWindowMs: DefaultRestartWindowMs,
				Headless:        false,
				VisualMode:      "web",
			},
		},
	}
}

// GetConfigByName returns a copy of the named predefined config, or nil.
func GetConfigByName(name string) *Config {
	for _, layout := range GetPredefinedConfigs() {
		if layout.Name == name {
			return layout.Config.clone()
		}
	}
	return nil
}
