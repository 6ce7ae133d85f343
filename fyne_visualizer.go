package main

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/example/sort_wall_sim/visual"
)

// FyneVisualizer implements visual.Visualizer using the Fyne GUI toolkit.
// Each slot gets a card with its state, progress, and counters; control
// buttons feed the same command channel the web frontend uses.
type FyneVisualizer struct {
	app    fyne.App
	window fyne.Window

	mu       sync.Mutex
	headless bool
	cards    map[string]*slotCard
	grid     *fyne.Container

	tickLabel   *widget.Label
	leaderLabel *widget.Label
	commands    chan visual.ControlCommand
}

type slotCard struct {
	card     *widget.Card
	state    *widget.Label
	progress *widget.ProgressBar
	counters *widget.Label
}

// NewFyneVisualizer creates a new Fyne-based visualizer.
func NewFyneVisualizer() *FyneVisualizer {
	return &FyneVisualizer{
		cards:    make(map[string]*slotCard),
		commands: make(chan visual.ControlCommand, 10),
	}
}

// Initialize builds the window and control panel. Must be called from the
// main goroutine before ShowAndRun.
func (v *FyneVisualizer) Initialize() {
	if v.headless {
		return
	}
	v.app = app.New()
	v.window = v.app.NewWindow("Sorting Wall")
	v.window.Resize(fyne.NewSize(900, 600))

	v.tickLabel = widget.NewLabel("Tick: 0")
	v.leaderLabel = widget.NewLabel("Leader: -")

	pauseButton := widget.NewButton("Pause", func() {
		v.queue(visual.ControlCommand{Type: visual.CommandPause})
	})
	resumeButton := widget.NewButton("Resume", func() {
		v.queue(visual.ControlCommand{Type: visual.CommandResume})
	})
	stepButton := widget.NewButton("Step", func() {
		v.queue(visual.ControlCommand{Type: visual.CommandStep})
	})
	resetButton := widget.NewButton("Reset", func() {
		v.queue(visual.ControlCommand{Type: visual.CommandReset})
	})

	controlPanel := container.NewHBox(
		v.tickLabel,
		widget.NewSeparator(),
		v.leaderLabel,
		widget.NewSeparator(),
		pauseButton,
		resumeButton,
		stepButton,
		resetButton,
	)

	v.grid = container.NewGridWithColumns(2)

	content := container.NewBorder(
		controlPanel,
		nil,
		nil,
		nil,
		v.grid,
	)
	v.window.SetContent(content)
}

// ShowAndRun displays the window and blocks until it is closed.
func (v *FyneVisualizer) ShowAndRun() {
	if v.window == nil {
		return
	}
	v.window.ShowAndRun()
}

func (v *FyneVisualizer) queue(cmd visual.ControlCommand) {
	select {
	case v.commands <- cmd:
	default:
	}
}

// SetHeadless switches headless state.
func (v *FyneVisualizer) SetHeadless(headless bool) {
	v.headless = headless
}

// IsHeadless returns whether the visualizer runs without UI.
func (v *FyneVisualizer) IsHeadless() bool {
	return v.headless
}

// PublishFrame updates the slot cards from the latest frame.
func (v *FyneVisualizer) PublishFrame(frame *visual.WallFrame) {
	if v.headless || frame == nil || v.grid == nil {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.tickLabel.SetText(fmt.Sprintf("Tick: %d", frame.Tick))
	v.leaderLabel.SetText(fmt.Sprintf("Leader: %s (%d)", frame.Leader.Algorithm, frame.Leader.Count))

	for _, slot := range frame.Slots {
		card, exists := v.cards[slot.Name]
		if !exists {
			card = &slotCard{
				state:    widget.NewLabel(""),
				progress: widget.NewProgressBar(),
				counters: widget.NewLabel(""),
			}
			card.card = widget.NewCard(slot.Name, slot.Algorithm, container.NewVBox(
				card.state,
				card.progress,
				card.counters,
			))
			v.cards[slot.Name] = card
			v.grid.Add(card.card)
		}
		card.state.SetText("State: " + slot.State)
		card.progress.SetValue(slot.SortedPercent)
		card.counters.SetText(fmt.Sprintf("steps %d  cmp %d  acc %d", slot.Steps, slot.Comparisons, slot.Accesses))
	}
	v.grid.Refresh()
}

// NextCommand returns the next control command if available, non-blocking.
func (v *FyneVisualizer) NextCommand() (visual.ControlCommand, bool) {
	select {
	case cmd := <-v.commands:
		return cmd, true
	default:
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
}
