package planner

import "github.com/mark3labs/tripwise/internal/trip"

// Event is an input to the wizard state machine.
type Event interface {
	isEvent()
}

// FieldEvent edits one draft field. Each field belongs to exactly one step
// and is only applied while that step is current.
type FieldEvent interface {
	Event
	Step() Step
	apply(trip.TripDraft) trip.TripDraft
}

// Open shows the wizard on the first step with a fresh draft. City, when
// set, replaces the default destination.
type Open struct {
	City trip.City
}

// Cancel closes the wizard and discards the draft.
type Cancel struct{}

// Submit advances past the current step, or completes on Review.
type Submit struct{}

// Back returns to the previous step.
type Back struct{}

func (Open) isEvent()   {}
func (Cancel) isEvent() {}
func (Submit) isEvent() {}
func (Back) isEvent()   {}

// SetStartDate sets the ISO start date.
type SetStartDate struct{ Value string }

// SetEndDate sets the ISO end date.
type SetEndDate struct{ Value string }

// SetCity sets the destination.
type SetCity struct{ City trip.City }

// SetFirstTime toggles between first-time and returning visitor.
type SetFirstTime struct{ Value bool }

// SetPreviousVisits sets how often the visitor has been before.
type SetPreviousVisits struct{ Value int }

// SetSolo toggles solo travel.
type SetSolo struct{ Value bool }

// SetCompanionCount sets the number of companions.
type SetCompanionCount struct{ Value int }

func (SetStartDate) isEvent()      {}
func (SetEndDate) isEvent()        {}
func (SetCity) isEvent()           {}
func (SetFirstTime) isEvent()      {}
func (SetPreviousVisits) isEvent() {}
func (SetSolo) isEvent()           {}
func (SetCompanionCount) isEvent() {}

func (SetStartDate) Step() Step      { return StepDates }
func (SetEndDate) Step() Step        { return StepDates }
func (SetCity) Step() Step           { return StepDates }
func (SetFirstTime) Step() Step      { return StepHistory }
func (SetPreviousVisits) Step() Step { return StepHistory }
func (SetSolo) Step() Step           { return StepCompanions }
func (SetCompanionCount) Step() Step { return StepCompanions }

func (e SetStartDate) apply(d trip.TripDraft) trip.TripDraft { return d.WithStartDate(e.Value) }
func (e SetEndDate) apply(d trip.TripDraft) trip.TripDraft   { return d.WithEndDate(e.Value) }
func (e SetCity) apply(d trip.TripDraft) trip.TripDraft      { return d.WithCity(e.City) }
func (e SetFirstTime) apply(d trip.TripDraft) trip.TripDraft { return d.WithFirstTime(e.Value) }
func (e SetPreviousVisits) apply(d trip.TripDraft) trip.TripDraft {
	return d.WithPreviousVisits(e.Value)
}
func (e SetSolo) apply(d trip.TripDraft) trip.TripDraft { return d.WithSolo(e.Value) }
func (e SetCompanionCount) apply(d trip.TripDraft) trip.TripDraft {
	return d.WithCompanionCount(e.Value)
}
