package geoscene

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"runtime"

	yaml "gopkg.in/yaml.v2"
)

// Config holds pipeline settings, usually read from a YAML file.
// Zero values fall back to the NewConfig defaults when applied.
type Config struct {
	TargetExtent    float64   `yaml:"target_extent"`
	Color           []float64 `yaml:"color"`
	SingleSided     bool      `yaml:"single_sided"`
	Simplify        float64   `yaml:"simplify"`
	Workers         int       `yaml:"workers"`
	KeepOrientation bool      `yaml:"keep_orientation"`
}

func NewConfig() *Config {
	return &Config{
		TargetExtent: DefaultTargetExtent,
		Color:        []float64{DefaultColor[0], DefaultColor[1], DefaultColor[2]},
		Workers:      runtime.NumCPU(),
	}
}

func ParseConfig(in io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}

	config := NewConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if len(config.Color) != 3 {
		return nil, fmt.Errorf("color needs 3 components, got %d", len(config.Color))
	}

	return config, nil
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseConfig(f)
}
