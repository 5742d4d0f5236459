package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode <query>",
	Short: "Resolve a free-text location query to coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		client := newGeocodeClient(cfg)

		result, err := client.Lookup(cmd.Context(), query)
		if err != nil {
			// Lookup failures are advisories, not process errors.
			fmt.Fprintf(cmd.ErrOrStderr(), "geocoding failed for %q: %v\n", query, err)
			return nil
		}
		if !result.Found {
			fmt.Fprintf(cmd.OutOrStdout(), "location not found: %q\n", query)
			return nil
		}

		if result.DisplayName != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.DisplayName)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f, %.4f\n", result.Latitude, result.Longitude)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}
