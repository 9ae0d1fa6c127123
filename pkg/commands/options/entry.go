// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/maplog/pkg/creation"
	"tableflip.dev/maplog/pkg/entry"
)

// EntryOptions holds the clicked location and the form fields of a new entry.
type EntryOptions struct {
	Lat       float64
	Lng       float64
	Variant   string
	Title     string
	Location  string
	Tag       string
	Elevation string

	Interactive bool
}

// EntryFlags are the flags prompted for in interactive mode, in order.
var EntryFlags = []string{"lat", "lng", "variant", "title", "location", "tag", "elevation"}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	variants := make([]string, 0, 2)
	for _, v := range entry.AllVariants() {
		variants = append(variants, v.String())
	}

	cmd.Flags().Float64Var(&o.Lat, "lat", 0, "Latitude of the map click.")
	cmd.Flags().Float64Var(&o.Lng, "lng", 0, "Longitude of the map click.")
	cmd.Flags().StringVar(&o.Variant, "variant", entry.Finished.String(),
		fmt.Sprintf("Entry kind, one of %s.", strings.Join(variants, ", ")))
	cmd.Flags().StringVar(&o.Title, "title", "", "Short title.")
	cmd.Flags().StringVar(&o.Location, "location", "", "Place name.")
	cmd.Flags().StringVar(&o.Tag, "tag", "", "Numeric tag.")
	cmd.Flags().StringVar(&o.Elevation, "elevation", "", "Optional positive elevation.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Interactive input of the entry fields.`)
}

func (o *EntryOptions) Coordinates() entry.Coordinates {
	return entry.NewCoordinates(o.Lat, o.Lng)
}

func (o *EntryOptions) Form() creation.Form {
	return creation.Form{
		Variant:   o.Variant,
		Title:     o.Title,
		Location:  o.Location,
		Tag:       o.Tag,
		Elevation: o.Elevation,
	}
}
