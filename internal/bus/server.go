package bus

import (
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

const (
	// DefaultServerName identifies the embedded server and its client.
	DefaultServerName = "tripwise-bus"
	// DefaultDrainTimeout bounds how long Close waits for subscribers.
	DefaultDrainTimeout = 2 * time.Second

	readyTimeout    = 4 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Option configures a Bus.
type Option func(*options)

type options struct {
	name         string
	drainTimeout time.Duration
	eventLog     *logger.Logger
}

func defaultOptions() options {
	return options{
		name:         DefaultServerName,
		drainTimeout: DefaultDrainTimeout,
	}
}

// WithServerName overrides the name reported by the server and connection.
func WithServerName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithDrainTimeout bounds how long Close lets in-flight trip and selection
// handlers finish before the connection is forced shut.
func WithDrainTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.drainTimeout = d
		}
	}
}

// WithEventLog mirrors every tripwise event to l as soon as the bus starts.
func WithEventLog(l *logger.Logger) Option {
	return func(o *options) {
		o.eventLog = l
	}
}

// startEmbedded starts an in-memory NATS server with no listening ports and
// no JetStream. Trips are never written to disk.
func startEmbedded(name string) (*server.Server, error) {
	logger.Debug("Starting embedded event bus %q", name)

	ns, err := server.NewServer(&server.Options{
		ServerName: name,
		DontListen: true,
		NoLog:      true,
		NoSigs:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event bus server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("event bus not ready within %s", readyTimeout)
	}
	return ns, nil
}

// connectInProcess opens a connection that talks to ns without the network.
func connectInProcess(ns *server.Server, name string) (*nats.Conn, error) {
	return nats.Connect("", nats.InProcessServer(ns), nats.Name(name))
}

// shutdown drains nc then stops ns. A drain that outlives drainTimeout is
// cut short so a stuck subscriber cannot hang the program on exit.
func shutdown(nc *nats.Conn, ns *server.Server, drainTimeout time.Duration) error {
	if nc != nil && !nc.IsClosed() {
		done := make(chan error, 1)
		go func() { done <- nc.Drain() }()

		select {
		case err := <-done:
			if err != nil {
				logger.Warn("Event bus drain failed, closing: %v", err)
				nc.Close()
			}
		case <-time.After(drainTimeout):
			logger.Warn("Event bus drain exceeded %s, closing", drainTimeout)
			nc.Close()
		}
	}

	if ns == nil {
		return nil
	}
	ns.Shutdown()

	stopped := make(chan struct{})
	go func() {
		ns.WaitForShutdown()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-time.After(shutdownTimeout):
		return errors.New("event bus shutdown timed out")
	}
}
