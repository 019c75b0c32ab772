package scanner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrSessionRunning = errors.New("camera session already running for order")

// Manager owns at most one camera scan loop per repair order. Start opens
// the stream synchronously so a bad camera URL fails the request instead of
// a background goroutine; the loop itself runs detached until Stop or a
// device failure.
type Manager struct {
	pipe *Pipeline
	cfg  SessionConfig
	log  *slog.Logger

	mu      sync.Mutex
	running map[string]context.CancelFunc
}

func NewManager(pipe *Pipeline, cfg SessionConfig, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		pipe:    pipe,
		cfg:     cfg,
		log:     log,
		running: make(map[string]context.CancelFunc),
	}
}

// Start connects to cameraURL and begins scanning for orderID. Every decoded
// symbol is handed to commit, the same path manual entry uses.
func (m *Manager) Start(orderID, cameraURL string, commit CommitFunc) error {
	m.mu.Lock()
	if _, ok := m.running[orderID]; ok {
		m.mu.Unlock()
		return ErrSessionRunning
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.running[orderID] = cancel
	m.mu.Unlock()

	src, err := OpenMJPEG(ctx, cameraURL)
	if err != nil {
		m.drop(orderID)
		cancel()
		return err
	}

	s := NewSession(src, m.pipe, commit, m.cfg, m.log.With("order_id", orderID))
	go func() {
		defer m.drop(orderID)
		defer cancel()
		if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			m.log.Error("scan loop exited", "order_id", orderID, "err", err)
		}
	}()
	return nil
}

// Stop cancels the order's scan loop if one is running.
func (m *Manager) Stop(orderID string) {
	m.mu.Lock()
	cancel, ok := m.running[orderID]
	m.mu.Unlock()
	if ok {
		cancel()
	}
}

// Running reports whether a camera loop is active for the order.
func (m *Manager) Running(orderID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.running[orderID]
	return ok
}

func (m *Manager) drop(orderID string) {
	m.mu.Lock()
	delete(m.running, orderID)
	m.mu.Unlock()
}
