// Package itinerary holds the state behind the trip details screen: the POI
// catalog, the single optional selection and the map focus derived from it.
package itinerary

import (
	"github.com/mark3labs/tripwise/internal/catalog"
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/trip"
)

// MapFocus is what the map panel should center on.
type MapFocus struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Zoom   int     `json:"zoom"`
	Marker bool    `json:"marker"`
	POIID  int     `json:"poiId,omitempty"`
}

// Header is the summary line shown above the POI list.
type Header struct {
	City      trip.City
	DateRange string
	Days      int
}

// View is the itinerary for one trip. It lives only as long as the screen
// that shows it; the selection is not persisted.
type View struct {
	trip     trip.Trip
	catalog  catalog.Catalog
	selected int // catalog index, -1 when nothing is selected
	onFocus  func(MapFocus)
	log      *logger.Logger
}

// Option configures a View.
type Option func(*View)

// WithMapListener registers the map collaborator. It is called with the new
// focus every time the selection actually changes.
func WithMapListener(fn func(MapFocus)) Option {
	return func(v *View) {
		v.onFocus = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(v *View) {
		v.log = l
	}
}

// New creates an itinerary with no selection.
func New(t trip.Trip, c catalog.Catalog, opts ...Option) *View {
	v := &View{
		trip:     t,
		catalog:  c,
		selected: -1,
		log:      logger.Default.With("itinerary"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Trip returns the trip this itinerary was created for.
func (v *View) Trip() trip.Trip {
	return v.trip
}

// POIs returns the catalog entries in display order.
func (v *View) POIs() []catalog.POI {
	return v.catalog.POIs
}

// Duration returns the trip length in days. Unparseable dates yield 0.
func (v *View) Duration() int {
	days, err := trip.DurationDays(v.trip.StartDate, v.trip.EndDate)
	if err != nil {
		v.log.Warn("trip %s has unusable dates: %v", v.trip.ID, err)
		return 0
	}
	return days
}

// Header returns the city, formatted date range and duration.
func (v *View) Header() Header {
	return Header{
		City:      v.trip.City,
		DateRange: trip.FormatDateRange(v.trip.StartDate, v.trip.EndDate),
		Days:      v.Duration(),
	}
}

// Select makes the POI with the given id the selection. It reports whether
// the selection changed; selecting the current POI or an unknown id does
// nothing.
func (v *View) Select(id int) bool {
	idx := v.catalog.Index(id)
	if idx < 0 {
		v.log.Debug("ignoring selection of unknown poi %d", id)
		return false
	}
	return v.selectIndex(idx)
}

// Deselect clears the selection.
func (v *View) Deselect() bool {
	return v.selectIndex(-1)
}

// SelectNext moves the selection forward through the catalog, wrapping at
// the end. With nothing selected it selects the first POI.
func (v *View) SelectNext() bool {
	n := v.catalog.Len()
	if n == 0 {
		return false
	}
	if v.selected < 0 {
		return v.selectIndex(0)
	}
	return v.selectIndex((v.selected + 1) % n)
}

// SelectPrev moves the selection backward, wrapping at the start. With
// nothing selected it selects the last POI.
func (v *View) SelectPrev() bool {
	n := v.catalog.Len()
	if n == 0 {
		return false
	}
	if v.selected < 0 {
		return v.selectIndex(n - 1)
	}
	return v.selectIndex((v.selected - 1 + n) % n)
}

func (v *View) selectIndex(idx int) bool {
	if idx == v.selected {
		return false
	}
	v.selected = idx
	focus := v.MapFocus()
	v.log.Debug("map focus -> %.4f, %.4f (marker=%v)", focus.Lat, focus.Lng, focus.Marker)
	if v.onFocus != nil {
		v.onFocus(focus)
	}
	return true
}

// Selected returns the selected POI, if any.
func (v *View) Selected() (catalog.POI, bool) {
	if v.selected < 0 {
		return catalog.POI{}, false
	}
	return v.catalog.POIs[v.selected], true
}

// IsSelected reports whether id is the current selection.
func (v *View) IsSelected(id int) bool {
	p, ok := v.Selected()
	return ok && p.ID == id
}

// MapFocus returns the selected POI's coordinates with a marker, or the
// catalog's default center without one.
func (v *View) MapFocus() MapFocus {
	if p, ok := v.Selected(); ok {
		return MapFocus{
			Lat:    p.Lat,
			Lng:    p.Lng,
			Zoom:   v.catalog.Center.Zoom,
			Marker: true,
			POIID:  p.ID,
		}
	}
	return MapFocus{
		Lat:  v.catalog.Center.Lat,
		Lng:  v.catalog.Center.Lng,
		Zoom: v.catalog.Center.Zoom,
	}
}
