package mcpserver

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/tripwise/internal/trip"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list-pois",
			mcp.WithDescription("List the points of interest in the trip catalog"),
		),
		s.handleListPOIs,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("trip-duration",
			mcp.WithDescription("Compute the number of days between two dates (may be negative)"),
			mcp.WithString("startDate", mcp.Required(),
				mcp.Description("Start date as YYYY-MM-DD"),
			),
			mcp.WithString("endDate", mcp.Required(),
				mcp.Description("End date as YYYY-MM-DD"),
			),
		),
		s.handleTripDuration,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("plan-trip",
			mcp.WithDescription("Run the trip wizard end to end and return the created trip with its review summary"),
			mcp.WithString("startDate", mcp.Required(),
				mcp.Description("Start date as YYYY-MM-DD"),
			),
			mcp.WithString("endDate", mcp.Required(),
				mcp.Description("End date as YYYY-MM-DD"),
			),
			mcp.WithString("city",
				mcp.Description("Destination city"),
				mcp.Enum(cityNames()...),
			),
			mcp.WithNumber("previousVisits",
				mcp.Description("Number of previous visits; 0 or omitted means first time"),
			),
			mcp.WithNumber("companions",
				mcp.Description("Number of travel companions; 0 or omitted means solo"),
			),
		),
		s.handlePlanTrip,
	)
}

func cityNames() []string {
	cities := trip.Cities()
	out := make([]string, len(cities))
	for i, c := range cities {
		out[i] = string(c)
	}
	return out
}

func joinFields(fields []string) string {
	return strings.Join(fields, ", ")
}
