package main

import "github.com/example/sort_wall_sim/visual"

// WebVisualizer bridges the wall driver with the web server.
type WebVisualizer struct {
	headless bool
	server   *WebServer
}

// NewWebVisualizer creates a new web visualizer instance and starts the
// server.
func NewWebVisualizer(addr string) *WebVisualizer {
	if addr == "" {
		addr = defaultWebAddr
	}
	server := NewWebServer(addr)
	server.Start()

	GetLogger().Infof("Web visualizer listening at http://%s", addr)

	return &WebVisualizer{
		headless: false,
		server:   server,
	}
}

// SetHeadless switches headless state.
func (w *WebVisualizer) SetHeadless(headless bool) {
	w.headless = headless
}

// IsHeadless returns whether visualizer runs without UI.
func (w *WebVisualizer) IsHeadless() bool {
	return w.headless
}

// PublishFrame updates the server with the latest frame.
func (w *WebVisualizer) PublishFrame(frame *visual.WallFrame) {
	if w.server != nil {
		w.server.UpdateFrame(frame)
	}
}

// NextCommand returns the next control command if available, non-blocking.
func (w *WebVisualizer) NextCommand() (visual.ControlCommand, bool) {
	if w.server == nil {
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
	return w.server.NextCommand()
}
