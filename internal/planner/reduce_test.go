package planner

import (
	"testing"

	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run folds events through Reduce and collects emitted trips.
func run(s State, events ...Event) (State, []trip.Trip) {
	var trips []trip.Trip
	for _, e := range events {
		var created *trip.Trip
		s, created = Reduce(s, e)
		if created != nil {
			trips = append(trips, *created)
		}
	}
	return s, trips
}

func TestReduce_ZeroValueIsClosed(t *testing.T) {
	var s State
	assert.False(t, s.IsOpen())
	assert.Equal(t, Closed(), s)
	assert.Equal(t, "Closed", s.String())
}

func TestReduce_Open(t *testing.T) {
	s, _ := run(Closed(), Open{})

	require.True(t, s.IsOpen())
	assert.Equal(t, StepDates, s.Step())
	assert.Equal(t, trip.NewDraft(), s.Draft())
}

func TestReduce_OpenWithCity(t *testing.T) {
	s, _ := run(Closed(), Open{City: trip.Ankara})
	assert.Equal(t, trip.Ankara, s.Draft().City)
}

func TestReduce_EventsWhileClosedAreIgnored(t *testing.T) {
	events := []Event{
		Submit{}, Back{},
		SetStartDate{Value: "2024-01-01"},
		SetFirstTime{Value: false},
		SetSolo{Value: false},
	}
	for _, e := range events {
		s, created := Reduce(Closed(), e)
		assert.Equal(t, Closed(), s, "%T must not open the wizard", e)
		assert.Nil(t, created)
	}
}

func TestReduce_DatesGate(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   Step
	}{
		{"no dates", []Event{Submit{}}, StepDates},
		{"start only", []Event{SetStartDate{Value: "2024-06-01"}, Submit{}}, StepDates},
		{"end only", []Event{SetEndDate{Value: "2024-06-05"}, Submit{}}, StepDates},
		{"whitespace start", []Event{SetStartDate{Value: "  "}, SetEndDate{Value: "2024-06-05"}, Submit{}}, StepDates},
		{"both dates", []Event{SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-05"}, Submit{}}, StepHistory},
		{"reversed dates still pass", []Event{SetStartDate{Value: "2024-06-05"}, SetEndDate{Value: "2024-06-01"}, Submit{}}, StepHistory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, trips := run(Closed(), append([]Event{Open{}}, tt.events...)...)
			assert.Equal(t, tt.want, s.Step())
			assert.Empty(t, trips)
		})
	}
}

func TestReduce_MissingFields(t *testing.T) {
	s, _ := run(Closed(), Open{})
	assert.Equal(t, []string{"Start Date", "End Date"}, s.MissingFields())
	assert.False(t, s.CanAdvance())

	s, _ = run(s, SetEndDate{Value: "2024-06-05"})
	assert.Equal(t, []string{"Start Date"}, s.MissingFields())

	s, _ = run(s, SetStartDate{Value: "2024-06-01"})
	assert.Empty(t, s.MissingFields())
	assert.True(t, s.CanAdvance())
}

func TestReduce_StepBounds(t *testing.T) {
	s, _ := run(Closed(), Open{}, Back{}, Back{})
	assert.Equal(t, StepDates, s.Step(), "back on first step is a no-op")

	s, _ = run(s,
		SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-05"},
		Submit{}, Submit{}, Submit{},
	)
	assert.Equal(t, StepReview, s.Step())
	assert.True(t, s.CanRetreat())

	s, _ = run(s, Back{}, Back{}, Back{}, Back{}, Back{})
	assert.Equal(t, StepDates, s.Step())
	assert.True(t, s.IsOpen())
}

func TestReduce_FieldEventsOnlyApplyToCurrentStep(t *testing.T) {
	s, _ := run(Closed(), Open{},
		SetFirstTime{Value: false},
		SetSolo{Value: false},
		SetCompanionCount{Value: 4},
	)
	assert.True(t, s.Draft().History.FirstTime, "history edits are ignored on the dates step")
	assert.True(t, s.Draft().Companions.IsSolo, "companion edits are ignored on the dates step")

	s, _ = run(s,
		SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-05"}, Submit{},
		SetStartDate{Value: "2030-01-01"},
		SetCity{City: trip.Izmir},
	)
	assert.Equal(t, StepHistory, s.Step())
	assert.Equal(t, "2024-06-01", s.Draft().StartDate, "date edits are ignored on the history step")
	assert.Equal(t, trip.Istanbul, s.Draft().City)
}

func TestReduce_BackPreservesDraft(t *testing.T) {
	s, _ := run(Closed(), Open{},
		SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-05"}, SetCity{City: trip.Antalya},
		Submit{},
		SetFirstTime{Value: false}, SetPreviousVisits{Value: 2},
		Back{},
	)
	assert.Equal(t, StepDates, s.Step())
	assert.Equal(t, trip.Antalya, s.Draft().City)
	assert.Equal(t, 2, s.Draft().History.PreviousVisits)
}

func TestReduce_HappyPath(t *testing.T) {
	s, trips := run(Closed(),
		Open{},
		SetStartDate{Value: "2024-09-10"},
		SetEndDate{Value: "2024-09-15"},
		SetCity{City: trip.Istanbul},
		Submit{}, // history: leave first time
		Submit{}, // companions: leave solo
		Submit{}, // review
		Submit{}, // complete
	)

	assert.False(t, s.IsOpen())
	require.Len(t, trips, 1)
	assert.Equal(t, trip.Trip{StartDate: "2024-09-10", EndDate: "2024-09-15", City: trip.Istanbul}, trips[0])
}

func TestReduce_CompletionOnlyFromReview(t *testing.T) {
	s, _ := run(Closed(), Open{}, SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-02"})

	for step := StepDates; step < StepReview; step++ {
		require.Equal(t, step, s.Step())
		var created *trip.Trip
		s, created = Reduce(s, Submit{})
		assert.Nil(t, created, "submit on %s must not complete", step)
	}

	_, created := Reduce(s, Submit{})
	require.NotNil(t, created)
}

func TestReduce_CancelFromAnyStep(t *testing.T) {
	base, _ := run(Closed(), Open{}, SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-02"})

	for i := 0; i < StepCount; i++ {
		s := base
		for j := 0; j < i; j++ {
			s, _ = Reduce(s, Submit{})
		}
		require.Equal(t, Step(i), s.Step())

		s, trips := run(s, Cancel{})
		assert.Equal(t, Closed(), s)
		assert.Empty(t, trips)
	}
}

func TestReduce_CancelMidWizardThenReopen(t *testing.T) {
	s, trips := run(Closed(),
		Open{},
		SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-05"}, SetCity{City: trip.Ankara},
		Submit{},
		SetFirstTime{Value: false}, SetPreviousVisits{Value: 6},
		Submit{},
		SetSolo{Value: false},
		Cancel{},
		Open{},
	)

	assert.Empty(t, trips)
	assert.Equal(t, StepDates, s.Step())
	assert.Equal(t, trip.NewDraft(), s.Draft(), "reopened wizard must not leak the discarded draft")
}

func TestReduce_OpenWhileOpenResets(t *testing.T) {
	s, _ := run(Closed(), Open{}, SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-05"}, Submit{}, Open{})
	assert.Equal(t, StepDates, s.Step())
	assert.Equal(t, "", s.Draft().StartDate)
}

func TestReduce_InvariantsAcrossSequences(t *testing.T) {
	open, _ := run(Closed(), Open{}, SetStartDate{Value: "2024-06-01"}, SetEndDate{Value: "2024-06-02"})
	alphabet := []Event{
		Submit{}, Back{},
		SetFirstTime{Value: true}, SetFirstTime{Value: false},
		SetPreviousVisits{Value: 5}, SetPreviousVisits{Value: -2},
		SetSolo{Value: true}, SetSolo{Value: false},
		SetCompanionCount{Value: 3}, SetCompanionCount{Value: 500},
	}

	// Every sequence of length 4 over the alphabet
	var walk func(s State, depth int)
	walk = func(s State, depth int) {
		d := s.Draft()
		if d.History.FirstTime {
			require.Equal(t, 0, d.History.PreviousVisits)
		}
		if d.Companions.IsSolo {
			require.Equal(t, 0, d.Companions.CompanionCount)
		}
		require.GreaterOrEqual(t, int(s.Step()), 0)
		require.Less(t, int(s.Step()), StepCount)
		if depth == 0 {
			return
		}
		for _, e := range alphabet {
			next, _ := Reduce(s, e)
			walk(next, depth-1)
		}
	}
	walk(open, 4)
}
