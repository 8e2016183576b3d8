// Package planner implements the trip-creation wizard as a state machine.
//
// The wizard is either Closed or open on one of four ordered steps. All
// transitions go through Reduce, a pure function of (State, Event); the
// Controller wraps it with the trip-created callback.
package planner

import "github.com/mark3labs/tripwise/internal/trip"

// Step identifies one screen of the wizard.
type Step int

const (
	StepDates Step = iota
	StepHistory
	StepCompanions
	StepReview
)

// StepCount is the number of wizard steps.
const StepCount = 4

var stepNames = [StepCount]string{
	"Travel Dates",
	"Travel History",
	"Companions",
	"Review",
}

// String returns the display name of the step.
func (s Step) String() string {
	if s < 0 || int(s) >= StepCount {
		return "Unknown"
	}
	return stepNames[s]
}

// Terminal reports whether submitting this step completes the wizard.
func (s Step) Terminal() bool {
	return s == StepReview
}

// Steps returns all steps in order.
func Steps() []Step {
	return []Step{StepDates, StepHistory, StepCompanions, StepReview}
}

// State is the wizard state. The zero value is Closed. Fields are private so
// a closed state can never carry a step or a draft.
type State struct {
	open  bool
	step  Step
	draft trip.TripDraft
}

// Closed returns the closed state.
func Closed() State {
	return State{}
}

// opened returns the state for an open wizard on the given step.
func opened(step Step, draft trip.TripDraft) State {
	return State{open: true, step: step, draft: draft}
}

// IsOpen reports whether the wizard is visible.
func (s State) IsOpen() bool {
	return s.open
}

// Step returns the current step. Closed states report StepDates.
func (s State) Step() Step {
	return s.step
}

// Draft returns a copy of the draft being edited.
func (s State) Draft() trip.TripDraft {
	return s.draft
}

// CanAdvance reports whether Submit would leave the current step.
func (s State) CanAdvance() bool {
	if !s.open {
		return false
	}
	if s.step == StepDates {
		return s.draft.HasDates()
	}
	return true
}

// CanRetreat reports whether Back would move to the previous step.
func (s State) CanRetreat() bool {
	return s.open && s.step > StepDates
}

// MissingFields lists the required fields blocking the current step.
func (s State) MissingFields() []string {
	if !s.open || s.step != StepDates {
		return nil
	}
	var missing []string
	if s.draft.StartDate == "" {
		missing = append(missing, "Start Date")
	}
	if s.draft.EndDate == "" {
		missing = append(missing, "End Date")
	}
	return missing
}

// String describes the state for logs.
func (s State) String() string {
	if !s.open {
		return "Closed"
	}
	return "Step(" + s.step.String() + ")"
}
