package planner

import "github.com/mark3labs/tripwise/internal/trip"

// Reduce maps (state, event) to the next state. The returned Trip is non-nil
// only when Submit on the Review step completes the wizard.
//
// Transitions:
//
//	Closed  --Open-->   Step(0)
//	Step(i) --Submit--> Step(i+1)   i < 3, dates required at i = 0
//	Step(3) --Submit--> Closed      emits Trip
//	Step(i) --Back-->   Step(i-1)   i > 0
//	Step(i) --Cancel--> Closed
func Reduce(s State, e Event) (State, *trip.Trip) {
	switch e := e.(type) {
	case Open:
		draft := trip.NewDraft()
		if e.City != "" {
			draft = draft.WithCity(e.City)
		}
		return opened(StepDates, draft), nil

	case Cancel:
		return Closed(), nil
	}

	if !s.open {
		return s, nil
	}

	switch e := e.(type) {
	case Submit:
		if !s.CanAdvance() {
			return s, nil
		}
		if s.step.Terminal() {
			t := s.draft.Snapshot()
			return Closed(), &t
		}
		return opened(s.step+1, s.draft), nil

	case Back:
		if !s.CanRetreat() {
			return s, nil
		}
		return opened(s.step-1, s.draft), nil

	case FieldEvent:
		if e.Step() != s.step {
			return s, nil
		}
		return opened(s.step, e.apply(s.draft)), nil
	}

	return s, nil
}
