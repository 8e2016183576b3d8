package planner

import (
	"bytes"
	"testing"

	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	trips []trip.Trip
}

func (r *recorder) record(t trip.Trip) {
	r.trips = append(r.trips, t)
}

func newTestController(rec *recorder, opts ...Option) *Controller {
	base := []Option{
		WithOnTripCreated(rec.record),
		WithIDGenerator(func() string { return "trip-1" }),
	}
	return NewController(append(base, opts...)...)
}

func TestController_HappyPath(t *testing.T) {
	rec := &recorder{}
	c := newTestController(rec)

	assert.False(t, c.State().IsOpen())

	c.Open()
	c.Update(SetStartDate{Value: "2024-09-10"})
	c.Update(SetEndDate{Value: "2024-09-15"})
	c.Update(SetCity{City: trip.Istanbul})

	assert.False(t, c.Advance()) // -> history
	assert.False(t, c.Advance()) // -> companions
	assert.False(t, c.Advance()) // -> review
	assert.Equal(t, StepReview, c.State().Step())
	assert.Equal(t, "First Time Visitor", c.Summary().Experience)
	assert.Equal(t, "Solo Traveler", c.Summary().TravelGroup)

	assert.True(t, c.Advance()) // complete

	require.Len(t, rec.trips, 1)
	assert.Equal(t, trip.Trip{
		ID:        "trip-1",
		StartDate: "2024-09-10",
		EndDate:   "2024-09-15",
		City:      trip.Istanbul,
	}, rec.trips[0])
	assert.False(t, c.State().IsOpen(), "completion performs close cleanup")
	assert.Equal(t, Closed(), c.State())
}

func TestController_ReturningTravelerWithCompanions(t *testing.T) {
	rec := &recorder{}
	c := newTestController(rec)

	c.Open()
	c.Update(SetStartDate{Value: "2024-09-10"})
	c.Update(SetEndDate{Value: "2024-09-15"})
	c.Advance()

	c.Update(SetFirstTime{Value: false})
	c.Update(SetPreviousVisits{Value: 3})
	c.Advance()

	c.Update(SetSolo{Value: false})
	c.Update(SetCompanionCount{Value: 2})
	c.Advance()

	summary := c.Summary()
	assert.Equal(t, "3 Previous Visits", summary.Experience)
	assert.Equal(t, "Group of 3", summary.TravelGroup)

	c.Advance()
	require.Len(t, rec.trips, 1)
	assert.Equal(t, trip.Istanbul, rec.trips[0].City, "history and companions are not part of the trip")
}

func TestController_CancelMidWizard(t *testing.T) {
	rec := &recorder{}
	c := newTestController(rec)

	c.Open()
	c.Update(SetStartDate{Value: "2024-06-01"})
	c.Update(SetEndDate{Value: "2024-06-05"})
	c.Advance()
	c.Advance()
	require.Equal(t, StepCompanions, c.State().Step())

	c.Close()
	assert.Empty(t, rec.trips)
	assert.False(t, c.State().IsOpen())

	c.Open()
	assert.Equal(t, StepDates, c.State().Step())
	assert.Equal(t, trip.NewDraft(), c.State().Draft())
}

func TestController_AdvanceBlockedWithoutDates(t *testing.T) {
	rec := &recorder{}
	c := newTestController(rec)

	c.Open()
	c.Update(SetStartDate{Value: "2024-06-01"})
	assert.False(t, c.Advance())
	assert.Equal(t, StepDates, c.State().Step())
	assert.Equal(t, []string{"End Date"}, c.State().MissingFields())
}

func TestController_RetreatOnFirstStep(t *testing.T) {
	c := newTestController(&recorder{})
	c.Open()
	c.Retreat()
	assert.Equal(t, StepDates, c.State().Step())
	assert.True(t, c.State().IsOpen())
}

func TestController_DefaultCity(t *testing.T) {
	c := newTestController(&recorder{}, WithDefaultCity(trip.Izmir))
	c.Open()
	assert.Equal(t, trip.Izmir, c.State().Draft().City)
}

func TestController_NilCallback(t *testing.T) {
	c := NewController()
	c.Open()
	c.Update(SetStartDate{Value: "2024-06-01"})
	c.Update(SetEndDate{Value: "2024-06-02"})
	for i := 0; i < 3; i++ {
		c.Advance()
	}
	assert.True(t, c.Advance(), "completes without a collaborator")
}

func TestController_CallbackFiresOncePerCompletion(t *testing.T) {
	rec := &recorder{}
	c := newTestController(rec)

	for round := 0; round < 2; round++ {
		c.Open()
		c.Update(SetStartDate{Value: "2024-06-01"})
		c.Update(SetEndDate{Value: "2024-06-03"})
		for i := 0; i < 4; i++ {
			c.Advance()
		}
		// Extra submits on a closed wizard do nothing
		c.Advance()
	}
	assert.Len(t, rec.trips, 2)
}

func TestController_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetLevel(logger.LevelDebug)

	c := newTestController(&recorder{}, WithLogger(l.With("planner")))
	c.Open()
	c.Advance()

	out := buf.String()
	assert.Contains(t, out, "Closed -> Step(Travel Dates)")
	assert.Contains(t, out, "submit blocked")
}

func TestIndicator(t *testing.T) {
	got := Indicator(StepCompanions)
	require.Len(t, got, StepCount)

	want := []StepState{StepCompleted, StepCompleted, StepCurrent, StepPending}
	for i, st := range got {
		assert.Equal(t, want[i], st.State, "step %d", i)
	}
	assert.Equal(t, "Travel Dates", got[0].Name)
	assert.Equal(t, "Review", got[3].Name)
	assert.Equal(t, "current", got[2].State.String())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "Companions", StepCompanions.String())
	assert.Equal(t, "Unknown", Step(9).String())
	assert.True(t, StepReview.Terminal())
	assert.False(t, StepDates.Terminal())
}
