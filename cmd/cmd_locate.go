package cmd

import (
	"fmt"
	"strconv"

	"github.com/blkot/geoscene/geojson"
	"github.com/blkot/geoscene/lookup"
)

type CmdLocate struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("locate",
		"Locate a coordinate",
		"Find the polygonal features of a GeoJSON file that contain a coordinate",
		&CmdLocate{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdLocate) Usage() string {
	return "filename lon lat"
}

func (cmd CmdLocate) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return err
	}

	doc, err := geojson.LoadFile(args[0])
	if err != nil {
		return err
	}

	l := lookup.New()
	for i, f := range doc.Features {
		l.IndexGeometry(int64(i), f.Geometry)
	}

	matches := l.Query(lon, lat)
	if len(matches) == 0 {
		fmt.Println("No features contain this coordinate")
		return nil
	}

	for _, id := range matches {
		f := doc.Features[id]
		name := ""
		if v, ok := f.Properties["name"].(string); ok {
			name = " " + v
		}
		fmt.Printf("Feature %d%s\n", id, name)
	}
	return nil
}
