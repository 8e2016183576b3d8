// Package testfixtures provides shared values and helpers for TUI tests.
package testfixtures

import (
	"sync"

	"github.com/mark3labs/tripwise/internal/itinerary"
	"github.com/mark3labs/tripwise/internal/trip"
)

// FixedTrip is a five day Istanbul trip.
var FixedTrip = trip.Trip{
	ID:        "trip-fixed",
	StartDate: "2024-09-10",
	EndDate:   "2024-09-15",
	City:      trip.Istanbul,
}

// MockPublisher records everything published to it. It is safe for
// concurrent use.
type MockPublisher struct {
	mu         sync.Mutex
	Trips      []trip.Trip
	Selections []itinerary.MapFocus
	Err        error
}

// NewMockPublisher creates an empty recorder.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// PublishTripCreated records t.
func (p *MockPublisher) PublishTripCreated(t trip.Trip) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Trips = append(p.Trips, t)
	return p.Err
}

// PublishSelection records focus.
func (p *MockPublisher) PublishSelection(tripID string, focus itinerary.MapFocus) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Selections = append(p.Selections, focus)
	return p.Err
}

// TripCount returns the number of recorded trips.
func (p *MockPublisher) TripCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Trips)
}

// SelectionCount returns the number of recorded selection changes.
func (p *MockPublisher) SelectionCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Selections)
}
