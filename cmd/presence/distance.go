package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"presence/internal/attendance/location"
	"presence/internal/attendance/models"
	"presence/internal/platform/config"
)

// distanceCmd takes its arguments raw: southern and western coordinates start
// with '-' and must not be read as flags.
var distanceCmd = &cobra.Command{
	Use:                "distance LAT LON",
	Short:              "Report how far a point is from the office and whether it is admitted",
	Args:               cobra.ExactArgs(2),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		at, err := parseCoordinate(args[0], args[1])
		if err != nil {
			return err
		}
		if err := location.ValidateCoordinate(at); err != nil {
			return err
		}

		zone := cfg.Zone()
		verdict := "inside"
		if location.Evaluate(&at, zone) != nil {
			verdict = "outside"
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.2f m from office (radius %.0f m): %s\n",
			location.Distance(at, zone.Center), zone.RadiusMeters, verdict)
		return err
	},
}

// offsetNorth returns the point meters due north of c.
func offsetNorth(c models.GeoCoordinate, meters float64) models.GeoCoordinate {
	return models.GeoCoordinate{
		Latitude:  c.Latitude + meters/location.EarthRadiusMeters*180/math.Pi,
		Longitude: c.Longitude,
	}
}
