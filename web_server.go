package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/example/sort_wall_sim/visual"
)

const defaultWebAddr = "127.0.0.1:8080"

// WebServer provides HTTP endpoints for visualization and control.
type WebServer struct {
	mu          sync.RWMutex
	latestFrame *visual.WallFrame
	commands    chan visual.ControlCommand
	server      *http.Server
	hub         *wsHub
}

// NewWebServer creates a new web server instance.
func NewWebServer(addr string) *WebServer {
	ws := &WebServer{
		commands: make(chan visual.ControlCommand, 10),
		hub:      newHub(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/frame", ws.handleFrame)
	mux.HandleFunc("/api/stats", ws.handleStats)
	mux.HandleFunc("/api/control", ws.handleControl)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.hub.handle(ws, w, r)
	})
	mux.Handle("/", http.FileServer(http.Dir("web/static")))

	ws.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	return ws
}

// Start starts the HTTP server in a goroutine.
func (ws *WebServer) Start() error {
	go func() {
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			GetLogger().Errorf("Web server stopped: %v", err)
		}
	}()
	return nil
}

// UpdateFrame stores the latest frame and pushes it to websocket clients.
func (ws *WebServer) UpdateFrame(frame *visual.WallFrame) {
	ws.mu.Lock()
	ws.latestFrame = frame
	ws.mu.Unlock()
	ws.hub.broadcastFrame(frame)
}

// NextCommand returns the next control command if available, non-blocking.
func (ws *WebServer) NextCommand() (visual.ControlCommand, bool) {
	select {
	case cmd := <-ws.commands:
		return cmd, true
	default:
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
}

func (ws *WebServer) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ws.mu.RLock()
	frame := ws.latestFrame
	ws.mu.RUnlock()

	if frame == nil {
		http.Error(w, "No frame available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(frame); err != nil {
		http.Error(w, "Failed to encode frame", http.StatusInternalServerError)
	}
}

// statsReport is the /api/stats payload: the leaderboard carried by the
// latest frame.
type statsReport struct {
	Tick        int                     `json:"tick"`
	Leader      visual.AlgorithmCount   `json:"leader"`
	Leaderboard []visual.AlgorithmCount `json:"leaderboard"`
}

func (ws *WebServer) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ws.mu.RLock()
	frame := ws.latestFrame
	ws.mu.RUnlock()

	if frame == nil {
		http.Error(w, "No stats available", http.StatusNotFound)
		return
	}

	report := statsReport{
		Tick:        frame.Tick,
		Leader:      frame.Leader,
		Leaderboard: frame.Leaderboard,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, "Failed to encode stats", http.StatusInternalServerError)
	}
}

type controlRequest struct {
	Type   string  `json:"type"`
	Config *Config `json:"config,omitempty"`
}

func (ws *WebServer) handleControl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req controlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cmd, err := ws.processControlRequest(&req)
	if err != nil {
		http.Error(w, "Invalid command: "+err.Error(), http.StatusBadRequest)
		return
	}

	if ws.queueCommand(*cmd) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("Command accepted"))
		return
	}
	http.Error(w, "Command queue full", http.StatusServiceUnavailable)
}

func (ws *WebServer) processControlRequest(req *controlRequest) (*visual.ControlCommand, error) {
	var cmd visual.ControlCommand
	switch req.Type {
	case "pause":
		cmd.Type = visual.CommandPause
	case "resume":
		cmd.Type = visual.CommandResume
	case "step":
		cmd.Type = visual.CommandStep
	case "reset":
		cmd.Type = visual.CommandReset
		if req.Config != nil {
			if err := ValidateConfig(req.Config); err != nil {
				return nil, err
			}
			cmd.ConfigOverride = req.Config
		}
	default:
		return nil, &validationError{msg: "unknown command type " + req.Type}
	}
	return &cmd, nil
}

func (ws *WebServer) queueCommand(cmd visual.ControlCommand) bool {
	select {
	case ws.commands <- cmd:
		return true
	default:
		return false
	}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}
