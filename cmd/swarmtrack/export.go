package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swarmtrack/pkg/checkin"
	"swarmtrack/pkg/export"
	"swarmtrack/pkg/ui"
)

var (
	exportOutput   string
	exportYear     int
	exportCity     string
	exportCategory string
)

// exportCmd represents the export command group
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your checkins to other formats",
	Long: `Export the downloaded checkin history for use in other tools.

  csv   spreadsheet-friendly rows, one per checkin, newest first
  kml   placemarks grouped by category, for Google Earth and map viewers`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export checkins as CSV",
	Example: `  # Everything
  swarmtrack export csv

  # Only 2023, to a custom file
  swarmtrack export csv --year 2023 -o 2023.csv`,
	RunE: runExportCSV,
}

var exportKMLCmd = &cobra.Command{
	Use:   "kml",
	Short: "Export checkins as KML",
	Long: `Export every checkin with coordinates as a KML placemark, grouped into
one folder per venue category.`,
	RunE: runExportKML,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportKMLCmd)

	for _, cmd := range []*cobra.Command{exportCSVCmd, exportKMLCmd} {
		cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default in the data directory)")
		cmd.Flags().IntVar(&exportYear, "year", 0, "only export checkins from this year")
		cmd.Flags().StringVar(&exportCity, "city", "", "only export checkins in this city")
		cmd.Flags().StringVar(&exportCategory, "category", "", "only export this category")
	}
}

func exportFilter() checkin.Filter {
	return checkin.Filter{
		Year:     exportYear,
		City:     exportCity,
		Category: exportCategory,
	}
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	list, err := loadCheckins(cfg)
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = cfg.CSVPath()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	n, err := export.WriteCSV(f, list, export.CSVOptions{
		Year:     exportYear,
		City:     exportCity,
		Category: exportCategory,
	})
	if err != nil {
		return fmt.Errorf("CSV export failed: %w", err)
	}

	ui.PrintSuccess("Wrote %d checkins to %s", n, path)
	return nil
}

func runExportKML(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	list, err := loadCheckins(cfg)
	if err != nil {
		return err
	}

	filter := exportFilter()
	if !filter.IsZero() {
		list = filter.Apply(list)
	}

	path := exportOutput
	if path == "" {
		path = cfg.KMLPath()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	n, err := export.WriteKML(f, list)
	if err != nil {
		return fmt.Errorf("KML export failed: %w", err)
	}

	ui.PrintSuccess("Wrote %d placemarks to %s", n, path)
	return nil
}
