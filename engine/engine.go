package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hexlattice/graphbridge/errors"
	"github.com/hexlattice/graphbridge/resource"
)

// Config holds configuration for engine initialization.
type Config struct {
	// HandleCapacity pre-sizes the handle table. 0 means default.
	HandleCapacity int
}

type lifecycleState int

const (
	stateNew lifecycleState = iota
	stateRunning
	stateClosed
)

// lifecycle owns the engine's process-wide state: one handle table and an
// explicit init/shutdown state machine. It exists as a struct so its
// transitions are testable without touching the package singleton.
type lifecycle struct {
	mu    sync.Mutex
	state lifecycleState
	table *resource.Table
}

func (l *lifecycle) initialize(cfg *Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case stateRunning:
		return nil // idempotent
	case stateClosed:
		return errors.Unsupported("engine_init", "engine cannot be reinitialized after shutdown")
	}

	capacity := 0
	if cfg != nil {
		capacity = cfg.HandleCapacity
	}
	l.table = resource.NewTableCapacity(capacity)
	l.state = stateRunning

	fields := []zap.Field{}
	if capacity > 0 {
		fields = append(fields, zap.Int("handle_capacity", capacity))
	}
	Logger().Debug("engine initialized", fields...)
	return nil
}

func (l *lifecycle) shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != stateRunning {
		return errors.NotRunning("engine_shutdown")
	}

	leaked := l.table.Len()
	if leaked > 0 {
		Logger().Warn("engine shutdown with live handles", zap.Int("leaked", leaked))
	}
	err := l.table.Close()
	l.table = nil
	l.state = stateClosed

	Logger().Debug("engine shut down")
	return err
}

func (l *lifecycle) running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == stateRunning
}

func (l *lifecycle) handleTable() *resource.Table {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table
}

var global lifecycle

// Initialize creates the embedded engine exactly once per process.
// Subsequent calls are no-ops. Must run before any bridge operation.
func Initialize(cfg *Config) error {
	return global.initialize(cfg)
}

// Shutdown tears the engine down. After shutdown all operations fail and the
// engine cannot be reinitialized within the same process.
func Shutdown() error {
	return global.shutdown()
}

// Running reports whether the engine is initialized and not shut down.
func Running() bool {
	return global.running()
}

// Handles returns the process-wide handle table, or nil when the engine is
// not running.
func Handles() *resource.Table {
	return global.handleTable()
}
