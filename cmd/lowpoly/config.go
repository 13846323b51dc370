package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the parameters of one run. Precedence when assembling it is
// defaults < config file < command line flags.
type config struct {
	// Factor is the grid cell size in model units.
	Factor float64 `yaml:"factor"`
	// Rounding is the smoothing iteration count.
	Rounding int `yaml:"rounding"`
	// Color is the host color convention string: empty for the pastel
	// default, "none", a single token or a space separated palette.
	Color string `yaml:"color"`
	// CartoonStyle and OutlineColor shape the optional PNG preview only.
	CartoonStyle bool   `yaml:"cartoon_style"`
	OutlineColor string `yaml:"outline_color"`
	// Name labels the output object; empty derives it from the first
	// input file.
	Name string `yaml:"name"`
	// Output is the result path (.ply or .stl). Empty derives
	// "<name>.ply".
	Output string `yaml:"output"`
	// Preview, when set, is a PNG path the simplified mesh is rendered to.
	Preview string `yaml:"preview"`

	Logging loggingConfig `yaml:"logging"`
}

type loggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// defaultConfig mirrors the host command's defaults.
func defaultConfig() config {
	return config{
		Factor:       7.5,
		Rounding:     1,
		CartoonStyle: true,
		OutlineColor: "black",
		Logging:      loggingConfig{Level: "info"},
	}
}

// loadConfig reads a YAML config over the defaults. An empty path returns
// plain defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, nil
}
