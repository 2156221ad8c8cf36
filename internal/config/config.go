package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"physvec/internal/geometry/vector"
	"physvec/internal/observability/log"
)

// Config is the runtime configuration of the vecdemo binary.
type Config struct {
	Log  LogConfig  `json:"log" yaml:"log"`
	Demo DemoConfig `json:"demo" yaml:"demo"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// DemoConfig lists extra vectors whose magnitude and normalized form the
// demo reports after the fixed scenario.
type DemoConfig struct {
	Extra []Triple `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Triple is an x, y, z component list as written in the config file.
type Triple [3]float64

func (t Triple) Vec3() vector.Vec3 { return vector.NewVec3(t[0], t[1], t[2]) }

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: log.EncodingConsole,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Encoding {
	case log.EncodingJSON, log.EncodingConsole:
	default:
		return fmt.Errorf("log.encoding: must be %q or %q, got %q",
			log.EncodingJSON, log.EncodingConsole, c.Log.Encoding)
	}
	return nil
}

// LoggerOptions converts the log section into logger options. Call Validate first.
func (c Config) LoggerOptions() log.Options {
	level, _ := log.ParseLevel(c.Log.Level)
	return log.Options{Level: level, Encoding: c.Log.Encoding}
}
