// Package tui hosts the tripwise terminal UI: the city guide home screen,
// the trip planning wizard overlay and the itinerary screen.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tripwise/internal/catalog"
	"github.com/mark3labs/tripwise/internal/itinerary"
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/planner"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/mark3labs/tripwise/internal/tui/theme"
	"github.com/mark3labs/tripwise/internal/tui/wizard"
)

// Screen is the page shown under the wizard overlay.
type Screen int

const (
	ScreenGuide Screen = iota
	ScreenItinerary
)

func (s Screen) String() string {
	if s == ScreenItinerary {
		return "itinerary"
	}
	return "guide"
}

// Publisher receives trip and selection events. The event bus satisfies it.
type Publisher interface {
	PublishTripCreated(t trip.Trip) error
	PublishSelection(tripID string, focus itinerary.MapFocus) error
}

// App is the main Bubbletea model that manages the TUI application.
type App struct {
	catalog   catalog.Catalog
	publisher Publisher
	log       *logger.Logger

	guide     *GuideScreen
	itinerary *ItineraryScreen // nil unless a trip was just created
	wizard    *wizard.Model
	toast     *Toast

	screen   Screen
	width    int
	height   int
	quitting bool
}

// Option configures an App.
type Option func(*appOptions)

type appOptions struct {
	publisher   Publisher
	defaultCity trip.City
	log         *logger.Logger
}

// WithPublisher forwards trip and selection events to p.
func WithPublisher(p Publisher) Option {
	return func(o *appOptions) {
		o.publisher = p
	}
}

// WithDefaultCity preselects the wizard destination.
func WithDefaultCity(city trip.City) Option {
	return func(o *appOptions) {
		o.defaultCity = city
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.log = l
	}
}

// NewApp creates the app on the guide screen for the catalog's city.
func NewApp(c catalog.Catalog, opts ...Option) *App {
	o := appOptions{log: logger.Default.With("tui")}
	for _, opt := range opts {
		opt(&o)
	}

	city := c.City
	if city == "" {
		city = trip.DefaultCity
	}

	a := &App{
		catalog:   c,
		publisher: o.publisher,
		log:       o.log,
		guide:     NewGuideScreen(city),
		toast:     NewToast(),
		width:     80,
		height:    24,
	}
	a.wizard = wizard.New(planner.WithDefaultCity(o.defaultCity), planner.WithLogger(o.log.With("planner")))
	return a
}

// Screen returns the page currently shown.
func (a *App) Screen() Screen {
	return a.screen
}

// Wizard exposes the wizard overlay.
func (a *App) Wizard() *wizard.Model {
	return a.wizard
}

// Itinerary returns the current itinerary, or nil on the guide screen.
func (a *App) Itinerary() *itinerary.View {
	if a.itinerary == nil {
		return nil
	}
	return a.itinerary.Itinerary()
}

// Toast exposes the notification component.
func (a *App) Toast() *Toast {
	return a.toast
}

// Init initializes the application and returns any initial commands.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.wizard.SetSize(msg.Width, msg.Height)
		return a, nil

	case wizard.TripCreatedMsg:
		return a, a.onTripCreated(msg.Trip)

	case wizard.CancelledMsg:
		a.log.Debug("trip planning cancelled")
		return a, nil

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)
	}

	if a.wizard.IsOpen() {
		return a, a.wizard.Update(msg)
	}
	if a.screen == ScreenGuide {
		return a, a.guide.Update(msg)
	}
	return a, nil
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	// The wizard is modal: it gets every other key while open.
	if a.wizard.IsOpen() {
		return a, a.wizard.Update(msg)
	}

	if msg.String() == "q" {
		a.quitting = true
		return a, tea.Quit
	}

	switch a.screen {
	case ScreenGuide:
		if msg.String() == "p" {
			return a, a.wizard.Open()
		}
		return a, a.guide.Update(msg)

	case ScreenItinerary:
		if a.itinerary.Update(msg) {
			a.backToGuide()
		}
	}
	return a, nil
}

// onTripCreated publishes the trip and switches to its itinerary.
func (a *App) onTripCreated(t trip.Trip) tea.Cmd {
	if a.publisher != nil {
		if err := a.publisher.PublishTripCreated(t); err != nil {
			a.log.Warn("failed to publish trip %s: %v", t.ID, err)
		}
	}

	view := itinerary.New(t, a.catalog,
		itinerary.WithMapListener(func(focus itinerary.MapFocus) {
			a.publishSelection(t.ID, focus)
		}),
		itinerary.WithLogger(a.log.With("itinerary")),
	)
	a.itinerary = NewItineraryScreen(view)
	a.screen = ScreenItinerary

	return a.toast.Show(fmt.Sprintf("Trip to %s created", t.City))
}

func (a *App) publishSelection(tripID string, focus itinerary.MapFocus) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.PublishSelection(tripID, focus); err != nil {
		a.log.Warn("failed to publish selection: %v", err)
	}
}

// backToGuide discards the itinerary; its selection is not kept.
func (a *App) backToGuide() {
	a.itinerary = nil
	a.screen = ScreenGuide
}

// View renders the application.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgCrust)
	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	header, body, footer := splitRows(area, 1, 1)
	a.drawHeader(scr, header)

	switch a.screen {
	case ScreenItinerary:
		a.itinerary.Draw(scr, body)
		DrawText(scr, footer, HintItinerary())
	default:
		a.guide.Draw(scr, body)
		DrawText(scr, footer, HintGuide())
	}

	if a.wizard.IsOpen() {
		a.wizard.Draw(scr, area)
	}

	// Draw toast last so it appears on top of everything
	if toastContent := a.toast.View(area.Dx()); toastContent != "" {
		w := lipgloss.Width(toastContent)
		h := lipgloss.Height(toastContent)
		x := max(area.Min.X, area.Max.X-w-1)
		y := max(area.Min.Y, area.Max.Y-1-h)
		uv.NewStyledString(toastContent).Draw(scr, uv.Rect(x, y, w, h))
	}
}

func (a *App) drawHeader(scr uv.Screen, area uv.Rectangle) {
	th := theme.Current()
	title := theme.ApplyGradient("tripwise", th.Primary, th.Secondary)
	sub := th.S().HeaderSubtitle.Render(" · " + string(a.guide.city) + " city guide")
	if a.screen == ScreenItinerary {
		sub = th.S().HeaderSubtitle.Render(" · itinerary")
	}
	DrawText(scr, area, title+sub)
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, app *App) error {
	p := tea.NewProgram(app, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
