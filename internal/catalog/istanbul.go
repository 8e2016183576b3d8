package catalog

import "github.com/mark3labs/tripwise/internal/trip"

// DefaultCenter is central Istanbul at city zoom.
var DefaultCenter = Center{Lat: 41.0082, Lng: 28.9784, Zoom: 12}

// Istanbul returns the compiled-in catalog.
func Istanbul() Catalog {
	return Catalog{
		City:   trip.Istanbul,
		Center: DefaultCenter,
		POIs: []POI{
			{
				ID:          1,
				Name:        "Hagia Sophia",
				Description: "Ancient church turned mosque, architectural marvel that has stood for centuries as a testament to Istanbul's rich history and cultural heritage.",
				Type:        "Historical",
				Lat:         41.008587,
				Lng:         28.980170,
				Image:       "https://images.unsplash.com/photo-1614815407090-c2ffb7cf1f1c?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID:          2,
				Name:        "Blue Mosque",
				Description: "Iconic mosque with six minarets, known for its stunning blue tile interior and cascading domes.",
				Type:        "Religious",
				Lat:         41.005270,
				Lng:         28.976960,
				Image:       "https://images.unsplash.com/photo-1641128324972-af3212f0f6bd?auto=format&fit=crop&q=80&w=1200",
			},
			{
				ID:          3,
				Name:        "Grand Bazaar",
				Description: "One of the world's oldest and largest covered markets, featuring thousands of shops selling everything from spices to jewelry.",
				Type:        "Shopping",
				Lat:         41.010700,
				Lng:         28.968050,
				Image:       "https://images.unsplash.com/photo-1673697160775-96f3b7abd92c?auto=format&fit=crop&q=80&w=1200",
			},
		},
	}
}
