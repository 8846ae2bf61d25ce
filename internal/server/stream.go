package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pfrederiksen/pathfinder/internal/grid"
	"github.com/pfrederiksen/pathfinder/internal/observe"
	"github.com/pfrederiksen/pathfinder/internal/scenario"
	"github.com/pfrederiksen/pathfinder/internal/search"
)

// Message types sent on the stream
const (
	MessageStep   = "step"
	MessageDepth  = "depth"
	MessageResult = "result"
	MessageError  = "error"
)

// StreamMessage is one frame sent to a stream client
type StreamMessage struct {
	Type            string         `json:"type"`
	Cell            *grid.Cell     `json:"cell,omitempty"`
	State           string         `json:"state,omitempty"`
	Depth           *int           `json:"depth,omitempty"`
	Result          *search.Result `json:"result,omitempty"`
	ExecutionTimeMs float64        `json:"executionTimeMs,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// wsClient wraps a WebSocket connection with a write lock
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(msg StreamMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// streamObserver forwards every step to the client. The first write error
// cancels the run.
type streamObserver struct {
	client *wsClient
	cancel context.CancelFunc
	err    error
}

func (o *streamObserver) OnCellStateChanged(cell grid.Cell, state search.State) {
	o.write(StreamMessage{Type: MessageStep, Cell: &cell, State: state.String()})
}

func (o *streamObserver) OnDepthStarted(depth int) {
	o.write(StreamMessage{Type: MessageDepth, Depth: &depth})
}

func (o *streamObserver) write(msg StreamMessage) {
	if o.err != nil {
		return
	}
	if err := o.client.send(msg); err != nil {
		o.err = err
		o.cancel()
	}
}

func (s *Server) handleStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	client := &wsClient{conn: conn}

	var sc scenario.Scenario
	if err := conn.ReadJSON(&sc); err != nil {
		_ = client.send(StreamMessage{Type: MessageError, Error: "invalid scenario: " + err.Error()})
		return
	}

	job, err := s.prepare(&sc)
	if err != nil {
		_ = client.send(StreamMessage{Type: MessageError, Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.opts.Timeout)
	defer cancel()

	// The client sends nothing after the scenario; a failed read means it left.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	obs := &streamObserver{client: client, cancel: cancel}
	pacer := observe.NewPacer(obs, job.delay)
	pacer.Sleep = func(d time.Duration) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}

	search.Prime(obs, job.start, job.target)
	started := time.Now()
	res, err := job.run(ctx, pacer)
	if err != nil {
		if obs.err == nil && !errors.Is(err, context.Canceled) {
			_ = client.send(StreamMessage{Type: MessageError, Error: err.Error()})
		}
		s.log.Info("Stream ended early", "algorithm", job.alg, "error", err)
		return
	}
	elapsed := elapsedMs(started)

	if res.Found() {
		search.Trace(pacer, res.Path)
	}
	if obs.err != nil {
		return
	}

	s.log.Info("Stream complete",
		"algorithm", job.alg,
		"outcome", res.Outcome,
		"expanded", res.Expanded)

	if err := client.send(StreamMessage{Type: MessageResult, Result: &res, ExecutionTimeMs: elapsed}); err != nil {
		s.log.Warn("Failed to send result", "error", err)
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}
