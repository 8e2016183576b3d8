package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

var poisFlags struct {
	json bool
}

var poisCmd = &cobra.Command{
	Use:   "pois",
	Short: "List the points of interest in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runPOIs,
}

func init() {
	poisCmd.Flags().BoolVar(&poisFlags.json, "json", false, "Print the catalog as JSON")
}

func runPOIs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if poisFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Type", "Coordinates")
	for _, p := range c.POIs {
		t.Row(strconv.Itoa(p.ID), p.Name, p.Type, p.Coordinates())
	}
	_, err = fmt.Fprintf(out, "%s (%d POIs)\n%s\n", c.City, c.Len(), t.Render())
	return err
}
