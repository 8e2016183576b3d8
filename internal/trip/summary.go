package trip

import "fmt"

// Summary is the review-step projection of a draft.
type Summary struct {
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Experience  string `json:"experience"`
	TravelGroup string `json:"travelGroup"`
	Warning     string `json:"warning,omitempty"`
}

// Summary derives the review lines shown before the trip is created.
func (d TripDraft) Summary() Summary {
	s := Summary{
		Destination: string(d.City),
		Dates:       FormatDateRange(d.StartDate, d.EndDate),
		Experience:  "First Time Visitor",
		TravelGroup: "Solo Traveler",
	}
	if !d.History.FirstTime {
		s.Experience = fmt.Sprintf("%d Previous Visits", d.History.PreviousVisits)
	}
	if !d.Companions.IsSolo {
		s.TravelGroup = fmt.Sprintf("Group of %d", d.GroupSize())
	}
	// Ordering is not enforced; surface it instead.
	if days, err := DurationDays(d.StartDate, d.EndDate); err == nil && days < 0 {
		s.Warning = "End date is before start date"
	}
	return s
}

// Lines returns label/value pairs in display order.
func (s Summary) Lines() [][2]string {
	return [][2]string{
		{"Destination", s.Destination},
		{"Dates", s.Dates},
		{"Experience", s.Experience},
		{"Travel Group", s.TravelGroup},
	}
}
