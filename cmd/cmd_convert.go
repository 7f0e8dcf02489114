package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"sync"

	"github.com/cheggaaa/pb"

	"github.com/blkot/geoscene/geojson"
	"github.com/blkot/geoscene/geoscene"
)

type CmdConvert struct {
	global *GlobalOptions

	Quiet bool `short:"q" long:"quiet" description:"Suppress the progress bar"`
}

func init() {
	_, err := parser.AddCommand("convert",
		"Convert GeoJSON to meshes",
		"Load a GeoJSON file, triangulate its polygons and write the mesh set as JSON",
		&CmdConvert{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdConvert) Usage() string {
	return "input.geojson output.json"
}

func (cmd CmdConvert) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}

	doc, err := geojson.LoadFile(args[0])
	if err != nil {
		return err
	}
	log.Printf("Loaded %d features", doc.FeatureCount())

	pipeline := geoscene.NewPipeline(doc).Configure(config)

	var bar *pb.ProgressBar
	var barOnce sync.Once
	if !cmd.Quiet {
		pipeline.Progress(func(done, total int) {
			barOnce.Do(func() {
				bar = pb.StartNew(total)
			})
			bar.Set(done)
		})
	}

	result, err := pipeline.Run()
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	for _, skip := range result.Skipped {
		log.Printf("Skipped feature %d: %s", skip.Feature, skip.Reason)
	}
	log.Printf("Emitted %d meshes", len(result.Meshes))

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(args[1], data, 0644)
}
