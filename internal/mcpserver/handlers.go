package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/planner"
	"github.com/mark3labs/tripwise/internal/trip"
)

// PlanResult is the plan-trip response body.
type PlanResult struct {
	Trip    trip.Trip    `json:"trip"`
	Days    int          `json:"days"`
	Summary trip.Summary `json:"summary"`
}

// handleListPOIs returns the catalog as JSON.
func (s *Server) handleListPOIs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(s.catalog, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal catalog: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleTripDuration returns the day count between two dates.
func (s *Server) handleTripDuration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}

	start, _ := args["startDate"].(string)
	end, _ := args["endDate"].(string)

	days, err := trip.DurationDays(start, end)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d", days)), nil
}

// handlePlanTrip drives the wizard through every step with the given
// answers. It fails where the wizard would block.
func (s *Server) handlePlanTrip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}

	city := s.defaultCity
	if raw, ok := args["city"].(string); ok && raw != "" {
		parsed, err := trip.ParseCity(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		city = parsed
	}

	previousVisits, err := intArg(args, "previousVisits")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	companions, err := intArg(args, "companions")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var created *trip.Trip
	c := planner.NewController(
		planner.WithDefaultCity(city),
		planner.WithOnTripCreated(func(t trip.Trip) { created = &t }),
		planner.WithLogger(logger.Default.With("mcp")),
	)

	start, _ := args["startDate"].(string)
	end, _ := args["endDate"].(string)

	c.Open()
	c.Update(planner.SetStartDate{Value: start})
	c.Update(planner.SetEndDate{Value: end})
	if missing := c.State().MissingFields(); len(missing) > 0 {
		return mcp.NewToolResultError(fmt.Sprintf("cannot leave %s: missing %s", c.State().Step(), joinFields(missing))), nil
	}
	for _, d := range []string{start, end} {
		if !trip.ValidDate(d) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", d)), nil
		}
	}
	c.Advance()

	c.Update(planner.SetFirstTime{Value: previousVisits <= 0})
	c.Update(planner.SetPreviousVisits{Value: previousVisits})
	c.Advance()

	c.Update(planner.SetSolo{Value: companions <= 0})
	c.Update(planner.SetCompanionCount{Value: companions})
	c.Advance()

	summary := c.Summary()
	c.Advance()

	if created == nil {
		return mcp.NewToolResultError("wizard did not complete"), nil
	}
	if s.onTripCreated != nil {
		s.onTripCreated(*created)
	}

	days, _ := created.Days()
	data, err := json.MarshalIndent(PlanResult{Trip: *created, Days: days, Summary: summary}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal trip: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// intArg reads an optional count. JSON numbers arrive as float64; they must
// be whole and finite. Negative values mean "none" and large values are
// clamped to trip.MaxCount before conversion.
func intArg(args map[string]any, name string) (int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	default:
		return 0, fmt.Errorf("'%s' must be a number", name)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("'%s' must be a whole number", name)
	}
	switch {
	case f <= 0:
		return 0, nil
	case f > trip.MaxCount:
		return trip.MaxCount, nil
	}
	return int(f), nil
}
