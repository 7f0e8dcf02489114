package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/blkot/geoscene/geoscene"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Pipeline configuration file (YAML)"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadConfig() (*geoscene.Config, error) {
	if g.Config == "" {
		return geoscene.NewConfig(), nil
	}
	return geoscene.LoadConfig(g.Config)
}
