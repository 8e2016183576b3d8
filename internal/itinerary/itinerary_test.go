package itinerary

import (
	"testing"

	"github.com/mark3labs/tripwise/internal/catalog"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTrip = trip.Trip{
	ID:        "t1",
	StartDate: "2024-09-10",
	EndDate:   "2024-09-15",
	City:      trip.Istanbul,
}

func newView(t *testing.T, focus *[]MapFocus) *View {
	t.Helper()
	opts := []Option{}
	if focus != nil {
		opts = append(opts, WithMapListener(func(f MapFocus) {
			*focus = append(*focus, f)
		}))
	}
	return New(sampleTrip, catalog.Istanbul(), opts...)
}

func TestView_InitialState(t *testing.T) {
	v := newView(t, nil)

	_, ok := v.Selected()
	assert.False(t, ok)
	assert.Len(t, v.POIs(), 3)
	assert.Equal(t, sampleTrip, v.Trip())

	focus := v.MapFocus()
	assert.Equal(t, MapFocus{Lat: 41.0082, Lng: 28.9784, Zoom: 12}, focus)
	assert.False(t, focus.Marker)
}

func TestView_Duration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"five days", "2024-09-10", "2024-09-15", 5},
		{"same day", "2024-06-01", "2024-06-01", 0},
		{"reversed", "2024-06-05", "2024-06-01", -4},
		{"invalid", "soon", "2024-06-01", 0},
		{"empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := trip.Trip{StartDate: tt.start, EndDate: tt.end, City: trip.Istanbul}
			v := New(tr, catalog.Istanbul())
			assert.Equal(t, tt.want, v.Duration())
		})
	}
}

func TestView_Header(t *testing.T) {
	h := newView(t, nil).Header()
	assert.Equal(t, trip.Istanbul, h.City)
	assert.Equal(t, "Sep 10, 2024 - Sep 15, 2024", h.DateRange)
	assert.Equal(t, 5, h.Days)
}

func TestView_SelectMovesMap(t *testing.T) {
	var got []MapFocus
	v := newView(t, &got)

	require.True(t, v.Select(2))

	p, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Blue Mosque", p.Name)
	assert.True(t, v.IsSelected(2))
	assert.False(t, v.IsSelected(1))

	require.Len(t, got, 1)
	assert.Equal(t, MapFocus{Lat: 41.005270, Lng: 28.976960, Zoom: 12, Marker: true, POIID: 2}, got[0])
	assert.Equal(t, got[0], v.MapFocus())
}

func TestView_SelectIsIdempotent(t *testing.T) {
	var got []MapFocus
	v := newView(t, &got)

	assert.True(t, v.Select(3))
	assert.False(t, v.Select(3))
	assert.False(t, v.Select(3))

	assert.Len(t, got, 1, "re-selecting the same poi must not notify the map again")
}

func TestView_SelectUnknownID(t *testing.T) {
	var got []MapFocus
	v := newView(t, &got)

	v.Select(1)
	assert.False(t, v.Select(42))
	assert.True(t, v.IsSelected(1), "unknown ids leave the selection alone")
	assert.Len(t, got, 1)
}

func TestView_AtMostOneSelection(t *testing.T) {
	v := newView(t, nil)

	v.Select(1)
	v.Select(3)

	selected := 0
	for _, p := range v.POIs() {
		if v.IsSelected(p.ID) {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
	assert.True(t, v.IsSelected(3))
}

func TestView_Deselect(t *testing.T) {
	var got []MapFocus
	v := newView(t, &got)

	assert.False(t, v.Deselect(), "nothing to clear")
	assert.Empty(t, got)

	v.Select(1)
	assert.True(t, v.Deselect())
	require.Len(t, got, 2)
	assert.False(t, got[1].Marker)
	assert.Equal(t, 41.0082, got[1].Lat)

	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestView_SelectNextWraps(t *testing.T) {
	v := newView(t, nil)

	var order []int
	for i := 0; i < 4; i++ {
		require.True(t, v.SelectNext())
		p, _ := v.Selected()
		order = append(order, p.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 1}, order)
}

func TestView_SelectPrevWraps(t *testing.T) {
	v := newView(t, nil)

	var order []int
	for i := 0; i < 4; i++ {
		require.True(t, v.SelectPrev())
		p, _ := v.Selected()
		order = append(order, p.ID)
	}
	assert.Equal(t, []int{3, 2, 1, 3}, order)
}

func TestView_CursorOnEmptyCatalog(t *testing.T) {
	v := New(sampleTrip, catalog.Catalog{Center: catalog.DefaultCenter})

	assert.False(t, v.SelectNext())
	assert.False(t, v.SelectPrev())
	assert.False(t, v.MapFocus().Marker)
}

func TestView_SingleEntryCatalogCursor(t *testing.T) {
	c := catalog.Istanbul()
	c.POIs = c.POIs[:1]
	var got []MapFocus
	v := New(sampleTrip, c, WithMapListener(func(f MapFocus) { got = append(got, f) }))

	assert.True(t, v.SelectNext())
	assert.False(t, v.SelectNext(), "wrapping onto the same poi is not a change")
	assert.Len(t, got, 1)
}
