package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/twitsprout/tools/json"

	"photo-catalog/internal/geotag"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:           "exif-location <image>",
		Short:         "Print the GPS location stored in an image's EXIF metadata",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			loc, err := geotag.ReadLocation(args[0])
			switch {
			case errors.Is(err, geotag.ErrNoMetadata):
				fmt.Fprintln(out, "No EXIF data found in the image.")
				return nil
			case err != nil:
				return err
			case loc == nil:
				fmt.Fprintln(out, "Location information not found in the image metadata.")
				return nil
			}

			if asJSON {
				return json.Encode(out, loc, "  ")
			}
			fmt.Fprintf(out, "%f,%f\n", loc.Latitude, loc.Longitude)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the location as JSON")
	return cmd
}
