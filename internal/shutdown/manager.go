// Package shutdown coordinates orderly teardown of application components.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"mdflex/internal/logger"
)

// ComponentTimeout bounds how long a single component may take to stop.
const ComponentTimeout = 10 * time.Second

// Shutdownable is implemented by components that need teardown on exit.
type Shutdownable interface {
	Name() string
	Shutdown(ctx context.Context) error
}

// CloserFunc adapts a plain close function into a Shutdownable.
func CloserFunc(name string, close func() error) Shutdownable {
	return closerFunc{name: name, close: close}
}

type closerFunc struct {
	name  string
	close func() error
}

func (c closerFunc) Name() string { return c.name }

func (c closerFunc) Shutdown(context.Context) error { return c.close() }

// Manager collects components and shuts them down in reverse registration
// order, so dependents stop before the things they depend on.
type Manager struct {
	mu         sync.Mutex
	components []Shutdownable
	log        logger.Logger
	once       sync.Once
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{log: log}
}

// Register adds a component. Safe to call from any goroutine.
func (m *Manager) Register(c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, c)
	m.log.Debug("shutdown", "component registered", map[string]interface{}{
		"component": c.Name(),
	})
}

// Listen waits for SIGINT or SIGTERM in the background and invokes
// onSignal when one arrives. The GUI quit path calls Shutdown directly,
// so the signal path only needs to hand control back to the application.
func (m *Manager) Listen(onSignal func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-ch
		m.log.Info("shutdown", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		onSignal()
	}()
}

// Shutdown stops every registered component, newest first. Errors are
// logged but do not stop the remaining teardown. Subsequent calls are
// no-ops.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		components := make([]Shutdownable, len(m.components))
		copy(components, m.components)
		m.mu.Unlock()

		for i := len(components) - 1; i >= 0; i-- {
			c := components[i]
			ctx, cancel := context.WithTimeout(context.Background(), ComponentTimeout)

			m.log.Debug("shutdown", "stopping component", map[string]interface{}{
				"component": c.Name(),
			})
			if err := c.Shutdown(ctx); err != nil {
				m.log.Error("shutdown", err, map[string]interface{}{
					"component": c.Name(),
				})
			}
			cancel()
		}

		m.log.Info("shutdown", "shutdown complete", map[string]interface{}{
			"components": len(components),
		})
	})
}
