package visual

// ControlCommandType represents types of control instructions from UI.
type ControlCommandType string

const (
	CommandNone   ControlCommandType = "none"
	CommandPause  ControlCommandType = "pause"
	CommandResume ControlCommandType = "resume"
	CommandReset  ControlCommandType = "reset"
	CommandStep   ControlCommandType = "step"
)

// ControlCommand captures a control instruction for the wall driver.
// ConfigOverride optionally carries a replacement configuration for reset;
// it is opaque here so frontends and the driver can agree on the concrete
// type without this package knowing it.
type ControlCommand struct {
	Type           ControlCommandType
	ConfigOverride any
}

// SlotSnapshot is the rendered view of a single sorting slot: current bar
// values, lifecycle state, and instrumentation counters.
type SlotSnapshot struct {
	Name          string  `json:"name"`
	Algorithm     string  `json:"algorithm"`
	State         string  `json:"state"`
	Values        []int   `json:"values"`
	Steps         int     `json:"steps"`
	Comparisons   int     `json:"comparisons"`
	Accesses      int     `json:"accesses"`
	SortedPercent float64 `json:"sortedPercent"`
}

// AlgorithmCount is one leaderboard row.
type AlgorithmCount struct {
	Algorithm string `json:"algorithm"`
	Count     uint64 `json:"count"`
}

// WallFrame aggregates everything a frontend needs to draw one tick.
type WallFrame struct {
	Tick        int              `json:"tick"`
	Elapsed     float64          `json:"elapsed"`
	Paused      bool             `json:"paused"`
	Slots       []SlotSnapshot   `json:"slots"`
	Leader      AlgorithmCount   `json:"leader"`
	Leaderboard []AlgorithmCount `json:"leaderboard"`
	ConfigHash  string           `json:"configHash,omitempty"`
}

// Visualizer defines methods for visualization implementations.
type Visualizer interface {
	SetHeadless(headless bool)
	IsHeadless() bool
	PublishFrame(frame *WallFrame)
	NextCommand() (ControlCommand, bool)
}

// NullVisualizer is a no-op implementation used for headless mode.
type NullVisualizer struct {
	headless bool
}

// NewNullVisualizer creates a new NullVisualizer.
func NewNullVisualizer() *NullVisualizer {
	return &NullVisualizer{headless: true}
}

func (n *NullVisualizer) SetHeadless(headless bool) {
	n.headless = headless
}

func (n *NullVisualizer) IsHeadless() bool {
	return n.headless
}

func (n *NullVisualizer) PublishFrame(frame *WallFrame) {}

func (n *NullVisualizer) NextCommand() (ControlCommand, bool) {
	return ControlCommand{Type: CommandNone}, false
}
