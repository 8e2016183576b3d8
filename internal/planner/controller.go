package planner

import (
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/rs/xid"
)

// Controller drives the wizard state machine and hands the finished trip to
// the trip-created collaborator. It is not safe for concurrent use; every
// call is expected to come from the single UI event loop.
type Controller struct {
	state         State
	defaultCity   trip.City
	onTripCreated func(trip.Trip)
	newID         func() string
	log           *logger.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnTripCreated sets the callback invoked once per completed wizard.
func WithOnTripCreated(fn func(trip.Trip)) Option {
	return func(c *Controller) {
		c.onTripCreated = fn
	}
}

// WithDefaultCity preselects a destination other than Istanbul on Open.
func WithDefaultCity(city trip.City) Option {
	return func(c *Controller) {
		c.defaultCity = city
	}
}

// WithIDGenerator replaces the trip id generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		c.newID = fn
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// NewController returns a closed wizard.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state: Closed(),
		newID: func() string { return xid.New().String() },
		log:   logger.Default.With("planner"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Open shows the wizard with a fresh draft, discarding any previous one.
func (c *Controller) Open() {
	c.Dispatch(Open{City: c.defaultCity})
}

// Close hides the wizard without producing a trip.
func (c *Controller) Close() {
	c.Dispatch(Cancel{})
}

// Advance submits the current step. It returns true when the wizard
// completed and the trip callback fired.
func (c *Controller) Advance() bool {
	return c.Dispatch(Submit{})
}

// Retreat moves back one step; a no-op on the first step.
func (c *Controller) Retreat() {
	c.Dispatch(Back{})
}

// Update applies a field edit to the draft.
func (c *Controller) Update(e FieldEvent) {
	c.Dispatch(e)
}

// Dispatch runs an event through the reducer. It returns true when the event
// completed the wizard.
func (c *Controller) Dispatch(e Event) bool {
	prev := c.state
	next, created := Reduce(prev, e)
	c.state = next

	if prev.step != next.step || prev.open != next.open {
		c.log.Debug("%s -> %s on %T", prev, next, e)
	} else if _, ok := e.(Submit); ok && prev.open {
		c.log.Debug("submit blocked on %s, missing %v", prev, prev.MissingFields())
	}

	if created == nil {
		return false
	}

	t := *created
	if c.newID != nil {
		t.ID = c.newID()
	}
	c.log.Info("trip created: %s to %s, %s", t.City, t.StartDate, t.EndDate)
	if c.onTripCreated != nil {
		c.onTripCreated(t)
	}
	return true
}

// Indicator returns the progress indicator for the current step.
func (c *Controller) Indicator() []StepStatus {
	return Indicator(c.state.step)
}

// Summary returns the review projection of the current draft.
func (c *Controller) Summary() trip.Summary {
	return c.state.draft.Summary()
}
