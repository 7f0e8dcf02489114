package cmd

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"

	"github.com/blkot/geoscene/geojson"
)

type CmdInfo struct {
	global *GlobalOptions

	Verbose bool `short:"v" long:"verbose" description:"Dump full feature contents"`
}

func init() {
	_, err := parser.AddCommand("info",
		"Inspect a GeoJSON file",
		"Load a GeoJSON file and print its feature count, bounds and geometry types",
		&CmdInfo{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdInfo) Usage() string {
	return "filename"
}

func (cmd CmdInfo) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	doc, err := geojson.LoadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Features: %d\n", doc.FeatureCount())

	if doc.Bounds != nil {
		fmt.Printf("Bounds: Min(%.4f, %.4f), Max(%.4f, %.4f)\n",
			doc.Bounds.Min.Lon(), doc.Bounds.Min.Lat(),
			doc.Bounds.Max.Lon(), doc.Bounds.Max.Lat())
	} else {
		fmt.Println("Bounds: None")
	}

	types := doc.GeometryTypes()
	if len(types) > 0 {
		fmt.Printf("Geometry Types: %s\n", strings.Join(types, ", "))
	} else {
		fmt.Println("Geometry Types: None")
	}

	for _, skip := range doc.Skipped {
		fmt.Printf("Skipped feature %d: %s\n", skip.Index, skip.Reason)
	}

	if cmd.Verbose {
		for i, f := range doc.Features {
			fmt.Printf("Feature %d:\n", i)
			pretty.Println(f)
		}
	}

	return nil
}
