package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "▀█▀ █▀█ █ █▀█ █ █ █ █ █▀ █▀▀"
	logoText2 = " █  █▀▄ █ █▀▀ ▀▄▀▄▀ █ ▄█ ██▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tripwise",
	Short: "Plan a city trip from the terminal",
	RunE:  runRoot,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

tripwise shows a city guide, walks you through a four step trip planning
wizard (dates and destination, travel history, companions, review) and then
lists points of interest for the new trip with a map focus panel.

Trips live only for the running session. Nothing is written to disk.`

	rootCmd.AddCommand(poisCmd)
	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(setupCmd)
}
