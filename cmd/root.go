package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cityscope/filmmap/internal/config"
	"github.com/cityscope/filmmap/internal/extract"
	"github.com/cityscope/filmmap/pkg/geocode"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "filmmap",
	Short: "Film-location map service",
	Long:  "Loads geocoded film-location records from a spreadsheet export and serves them to an interactive map shell with search-driven re-centering.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newLoader builds the record loader from config.
func newLoader(cfg *config.Config) *extract.Loader {
	return extract.NewLoader(cfg.Data.Path, cfg.Data.Worksheet)
}

// newGeocodeClient builds the lookup client from config.
func newGeocodeClient(cfg *config.Config) *geocode.Client {
	return geocode.NewClient(
		geocode.WithProvider(geocode.NewNominatim(
			geocode.WithBaseURL(cfg.Geocode.BaseURL),
			geocode.WithUserAgent(cfg.Geocode.UserAgent),
		)),
		geocode.WithMinDelay(time.Duration(cfg.Geocode.MinDelayMS)*time.Millisecond),
		geocode.WithTimeout(time.Duration(cfg.Geocode.TimeoutSecs)*time.Second),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
