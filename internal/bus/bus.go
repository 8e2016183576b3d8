// Package bus fans trip and selection events out over an embedded NATS
// server. Nothing here is durable: subscribers only see events published
// while they are connected.
package bus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/tripwise/internal/itinerary"
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

const (
	// SubjectAll matches every tripwise event.
	SubjectAll = "tripwise.>"
	// SubjectTripsCreated matches trip-created events for any city.
	SubjectTripsCreated = "tripwise.trip.*.created"
	// SubjectSelectionChanged carries itinerary map focus changes.
	SubjectSelectionChanged = "tripwise.selection.changed"
)

// SubjectForTrip returns the trip-created subject for a city.
// Example: "tripwise.trip.istanbul.created"
func SubjectForTrip(city trip.City) string {
	return fmt.Sprintf("tripwise.trip.%s.created", slug.Make(string(city)))
}

// TripCreated is published once per completed wizard.
type TripCreated struct {
	Timestamp time.Time `json:"timestamp"`
	Trip      trip.Trip `json:"trip"`
}

// SelectionChanged is published when the itinerary selection moves.
type SelectionChanged struct {
	Timestamp time.Time          `json:"timestamp"`
	TripID    string             `json:"tripId"`
	Focus     itinerary.MapFocus `json:"focus"`
}

// Bus owns the embedded server and the in-process connection.
type Bus struct {
	ns           *server.Server
	nc           *nats.Conn
	log          *logger.Logger
	now          func() time.Time
	drainTimeout time.Duration
}

// New starts the embedded server and connects to it.
func New(opts ...Option) (*Bus, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ns, err := startEmbedded(o.name)
	if err != nil {
		return nil, fmt.Errorf("starting event bus: %w", err)
	}
	nc, err := connectInProcess(ns, o.name)
	if err != nil {
		_ = shutdown(nil, ns, o.drainTimeout)
		return nil, fmt.Errorf("connecting to event bus: %w", err)
	}

	b := &Bus{
		ns:           ns,
		nc:           nc,
		log:          logger.Default.With("bus"),
		now:          time.Now,
		drainTimeout: o.drainTimeout,
	}
	if o.eventLog != nil {
		if _, err := b.LogEvents(o.eventLog); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("subscribing to events: %w", err)
		}
	}
	return b, nil
}

// Name reports the embedded server's name.
func (b *Bus) Name() string {
	return b.ns.Name()
}

// Conn exposes the underlying connection for ad-hoc subscribers.
func (b *Bus) Conn() *nats.Conn {
	return b.nc
}

// Close drains subscribers and stops the server.
func (b *Bus) Close() error {
	return shutdown(b.nc, b.ns, b.drainTimeout)
}

// PublishTripCreated announces a completed trip on its city subject.
func (b *Bus) PublishTripCreated(t trip.Trip) error {
	subject := SubjectForTrip(t.City)
	if err := b.publish(subject, TripCreated{Timestamp: b.now(), Trip: t}); err != nil {
		return fmt.Errorf("publishing trip %s: %w", t.ID, err)
	}
	b.log.Debug("published %s", subject)
	return nil
}

// PublishSelection announces a new map focus for a trip's itinerary.
func (b *Bus) PublishSelection(tripID string, focus itinerary.MapFocus) error {
	ev := SelectionChanged{Timestamp: b.now(), TripID: tripID, Focus: focus}
	if err := b.publish(SubjectSelectionChanged, ev); err != nil {
		return fmt.Errorf("publishing selection: %w", err)
	}
	return nil
}

func (b *Bus) publish(subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.nc.Publish(subject, data)
}

// Flush waits until the server has processed everything published so far.
func (b *Bus) Flush() error {
	return b.nc.Flush()
}

// SubscribeTrips calls fn for every trip created in any city.
func (b *Bus) SubscribeTrips(fn func(TripCreated)) (*nats.Subscription, error) {
	return b.nc.Subscribe(SubjectTripsCreated, func(msg *nats.Msg) {
		var ev TripCreated
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			b.log.Warn("dropping malformed event on %s: %v", msg.Subject, err)
			return
		}
		fn(ev)
	})
}

// SubscribeSelections calls fn for every itinerary selection change.
func (b *Bus) SubscribeSelections(fn func(SelectionChanged)) (*nats.Subscription, error) {
	return b.nc.Subscribe(SubjectSelectionChanged, func(msg *nats.Msg) {
		var ev SelectionChanged
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			b.log.Warn("dropping malformed event on %s: %v", msg.Subject, err)
			return
		}
		fn(ev)
	})
}

// LogEvents writes every bus event to l at info level. Used by --events.
func (b *Bus) LogEvents(l *logger.Logger) (*nats.Subscription, error) {
	return b.nc.Subscribe(SubjectAll, func(msg *nats.Msg) {
		if !l.Enabled(logger.LevelInfo) {
			return
		}
		l.Info("%s %s", msg.Subject, msg.Data)
	})
}
