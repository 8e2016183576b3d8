// Package trip holds the trip draft collected by the planning wizard and the
// finalized trip record handed to the itinerary.
package trip

import (
	"fmt"
	"strings"
)

// City is one of the destinations the wizard offers.
type City string

const (
	Istanbul City = "Istanbul"
	Ankara   City = "Ankara"
	Izmir    City = "Izmir"
	Antalya  City = "Antalya"
)

// DefaultCity is preselected when the wizard opens.
const DefaultCity = Istanbul

// Count bounds for previous visits and companions once the governing flag
// allows editing them.
const (
	MinCount = 1
	MaxCount = 99
)

// Cities returns the selectable destinations in display order.
func Cities() []City {
	return []City{Istanbul, Ankara, Izmir, Antalya}
}

// ParseCity matches a city name case-insensitively.
func ParseCity(s string) (City, error) {
	s = strings.TrimSpace(s)
	for _, c := range Cities() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown city: %q (must be one of Istanbul, Ankara, Izmir, Antalya)", s)
}

// Valid reports whether c is one of the known destinations.
func (c City) Valid() bool {
	_, err := ParseCity(string(c))
	return err == nil
}

// TravelHistory records whether the visitor has been to the city before.
type TravelHistory struct {
	FirstTime      bool `json:"firstTime"`
	PreviousVisits int  `json:"previousVisits"`
}

// TravelCompanions records who the visitor travels with.
type TravelCompanions struct {
	IsSolo         bool `json:"isSolo"`
	CompanionCount int  `json:"companionCount"`
}

// TripDraft is the in-progress record the wizard accumulates.
// It is a value type: every With* method returns an updated copy.
type TripDraft struct {
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	City       City             `json:"city"`
	History    TravelHistory    `json:"travelHistory"`
	Companions TravelCompanions `json:"travelCompanions"`
}

// NewDraft returns the draft a freshly opened wizard starts from.
func NewDraft() TripDraft {
	return TripDraft{
		City:       DefaultCity,
		History:    TravelHistory{FirstTime: true},
		Companions: TravelCompanions{IsSolo: true},
	}
}

// WithStartDate sets the ISO start date.
func (d TripDraft) WithStartDate(date string) TripDraft {
	d.StartDate = strings.TrimSpace(date)
	return d
}

// WithEndDate sets the ISO end date.
func (d TripDraft) WithEndDate(date string) TripDraft {
	d.EndDate = strings.TrimSpace(date)
	return d
}

// WithCity sets the destination. Unknown cities leave the draft unchanged.
func (d TripDraft) WithCity(c City) TripDraft {
	parsed, err := ParseCity(string(c))
	if err != nil {
		return d
	}
	d.City = parsed
	return d
}

// WithFirstTime flips the first-visit flag. Switching to first time forces
// PreviousVisits to 0; switching to returning keeps the count but never
// below MinCount.
func (d TripDraft) WithFirstTime(firstTime bool) TripDraft {
	d.History.FirstTime = firstTime
	if firstTime {
		d.History.PreviousVisits = 0
		return d
	}
	d.History.PreviousVisits = clampCount(d.History.PreviousVisits)
	return d
}

// WithPreviousVisits sets the visit count. Ignored while FirstTime is set.
func (d TripDraft) WithPreviousVisits(n int) TripDraft {
	if d.History.FirstTime {
		return d
	}
	d.History.PreviousVisits = clampCount(n)
	return d
}

// WithSolo flips the solo flag. Solo forces CompanionCount to 0; traveling
// with others starts at MinCount companions.
func (d TripDraft) WithSolo(solo bool) TripDraft {
	d.Companions.IsSolo = solo
	if solo {
		d.Companions.CompanionCount = 0
		return d
	}
	d.Companions.CompanionCount = clampCount(d.Companions.CompanionCount)
	return d
}

// WithCompanionCount sets the companion count. Ignored while IsSolo is set.
func (d TripDraft) WithCompanionCount(n int) TripDraft {
	if d.Companions.IsSolo {
		return d
	}
	d.Companions.CompanionCount = clampCount(n)
	return d
}

// HasDates reports whether both required dates are filled in.
func (d TripDraft) HasDates() bool {
	return d.StartDate != "" && d.EndDate != ""
}

// GroupSize is the number of travelers including the visitor.
func (d TripDraft) GroupSize() int {
	if d.Companions.IsSolo {
		return 1
	}
	return d.Companions.CompanionCount + 1
}

// Snapshot copies out the fields the itinerary consumes.
func (d TripDraft) Snapshot() Trip {
	return Trip{
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		City:      d.City,
	}
}

func clampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// Trip is the finalized, immutable trip record.
type Trip struct {
	ID        string `json:"id,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	City      City   `json:"city"`
}

// Days returns the trip length; see DurationDays.
func (t Trip) Days() (int, error) {
	return DurationDays(t.StartDate, t.EndDate)
}

// DateRange renders the trip dates for headers.
func (t Trip) DateRange() string {
	return FormatDateRange(t.StartDate, t.EndDate)
}
