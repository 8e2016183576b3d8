// Package guide holds the static city reference shown on the home screen.
package guide

import "github.com/mark3labs/tripwise/internal/trip"

// Fact is a labelled value such as "Voltage: 220V".
type Fact struct {
	Label string
	Value string
}

// Index is a 0-100 quality score.
type Index struct {
	Name  string
	Value int
}

// Season describes one visiting period.
type Season struct {
	Name        string
	Months      string
	Description string
	Temperature string
	Crowds      string
}

// Guide is the reference content for one city.
type Guide struct {
	City      trip.City
	Country   string
	Tagline   string
	Image     string
	WiFi      []Fact
	Quality   []Index
	Emergency []Fact
	Power     []Fact
	Seasons   []Season
	Events    []Fact
}

// For returns the guide for a city. Only Istanbul has content.
func For(city trip.City) (Guide, bool) {
	if city == trip.Istanbul {
		return Istanbul(), true
	}
	return Guide{}, false
}

// Istanbul returns the compiled-in Istanbul guide.
func Istanbul() Guide {
	return Guide{
		City:    trip.Istanbul,
		Country: "Turkey",
		Tagline: "Where East meets West, Istanbul is a vibrant metropolis that bridges two continents, " +
			"blending ancient history with modern culture in a spectacular setting.",
		Image: "https://images.unsplash.com/photo-1581430872221-d1cfed785922?auto=format&fit=crop&q=80&w=2070",
		WiFi: []Fact{
			{"Public WiFi Coverage", "Good"},
			{"Average Speed", "25 Mbps"},
			{"Free Hotspots", "500+"},
		},
		Quality: []Index{
			{"Safety", 75},
			{"Healthcare", 82},
			{"Education", 88},
			{"Cost of Living", 65},
		},
		Emergency: []Fact{
			{"Police", "155"},
			{"Ambulance", "112"},
			{"Fire Department", "110"},
		},
		Power: []Fact{
			{"Voltage", "220V"},
			{"Frequency", "50Hz"},
			{"Plug Types", "C & F"},
		},
		Seasons: []Season{
			{
				Name:        "Peak Season",
				Months:      "Jun - Aug",
				Description: "Warm and sunny, ideal for beachgoers and outdoor activities.",
				Temperature: "25°C - 35°C",
				Crowds:      "High",
			},
			{
				Name:        "Shoulder Season",
				Months:      "Apr - May, Sep - Oct",
				Description: "Mild weather with fewer crowds, perfect for exploring the city.",
				Temperature: "15°C - 25°C",
				Crowds:      "Moderate",
			},
			{
				Name:        "Off Season",
				Months:      "Nov - Mar",
				Description: "Cooler temperatures and possible rain, but lower prices and fewer tourists.",
				Temperature: "5°C - 15°C",
				Crowds:      "Low",
			},
		},
		Events: []Fact{
			{"Istanbul Biennial", "September"},
			{"Jazz Festival", "July"},
			{"Film Festival", "April"},
		},
	}
}
