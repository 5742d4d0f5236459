package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/cityscope/filmmap/internal/model"
)

var (
	listBorough string
	listFilm    string
	listLimit   int
	listStats   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the loaded film-location records",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := newLoader(cfg)
		records, err := loader.Load()
		if err != nil {
			return eris.Wrap(err, "location data unavailable")
		}

		filtered := filterLocations(records, listFilm, listBorough, listLimit)

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Film", "Location", "Borough", "Neighborhood", "Lat", "Lon"})
		for _, loc := range filtered {
			t.AppendRow(table.Row{
				loc.Film,
				loc.DisplayText,
				loc.Borough,
				loc.Neighborhood,
				fmt.Sprintf("%.5f", loc.Latitude),
				fmt.Sprintf("%.5f", loc.Longitude),
			})
		}
		t.Render()

		fmt.Fprintf(cmd.OutOrStdout(), "%d of %d records\n", len(filtered), len(records))

		if listStats {
			stats := loader.Stats()
			fmt.Fprintf(cmd.OutOrStdout(),
				"accepted=%d short_rows=%d bad_number_rows=%d missing_field_rows=%d\n",
				stats.Accepted, stats.ShortRows, stats.BadNumberRows, stats.MissingFieldRows,
			)
		}

		return nil
	},
}

// filterLocations applies case-insensitive substring filters and an optional
// limit, preserving source order.
func filterLocations(records []model.Location, film, borough string, limit int) []model.Location {
	var out []model.Location
	for _, loc := range records {
		if film != "" && !strings.Contains(strings.ToLower(loc.Film), strings.ToLower(film)) {
			continue
		}
		if borough != "" && !strings.EqualFold(loc.Borough, borough) {
			continue
		}
		out = append(out, loc)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func init() {
	listCmd.Flags().StringVar(&listFilm, "film", "", "filter by film title substring")
	listCmd.Flags().StringVar(&listBorough, "borough", "", "filter by borough")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum rows to print (0 = all)")
	listCmd.Flags().BoolVar(&listStats, "stats", false, "print row skip counters")
	rootCmd.AddCommand(listCmd)
}
