// Package config loads cubegen settings from defaults, an optional file and
// CUBEGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CUBEGEN_GRID_NX.
const EnvPrefix = "CUBEGEN"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete cubegen configuration.
type Config struct {
	Grid    GridConfig `mapstructure:"grid"`
	Eval    EvalConfig `mapstructure:"eval"`
	Log     LogConfig  `mapstructure:"log"`
	Records string     `mapstructure:"records"`
}

// GridConfig holds the default grid shape.
type GridConfig struct {
	Nx         int     `mapstructure:"nx"`
	Ny         int     `mapstructure:"ny"`
	Nz         int     `mapstructure:"nz"`
	Margin     float64 `mapstructure:"margin"`
	Resolution float64 `mapstructure:"resolution"`
}

// EvalConfig tunes the field evaluators.
type EvalConfig struct {
	ChunkSize int `mapstructure:"chunk_size"`
	Workers   int `mapstructure:"workers"` // 0 means GOMAXPROCS
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{Nx: 80, Ny: 80, Nz: 80, Margin: 3.0},
		Eval: EvalConfig{ChunkSize: 8000},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("grid.nx", d.Grid.Nx)
	v.SetDefault("grid.ny", d.Grid.Ny)
	v.SetDefault("grid.nz", d.Grid.Nz)
	v.SetDefault("grid.margin", d.Grid.Margin)
	v.SetDefault("grid.resolution", d.Grid.Resolution)
	v.SetDefault("eval.chunk_size", d.Eval.ChunkSize)
	v.SetDefault("eval.workers", d.Eval.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("records", d.Records)
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables apply. The file type follows the
// extension (yaml, toml or json).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges. Grid counts are checked again when a grid is
// built, since flags may override them.
func (c Config) Validate() error {
	if c.Grid.Margin < 0 {
		return fmt.Errorf("%w: grid.margin must not be negative", ErrInvalidConfig)
	}

	if c.Grid.Resolution < 0 {
		return fmt.Errorf("%w: grid.resolution must not be negative", ErrInvalidConfig)
	}

	if c.Eval.ChunkSize < 0 || c.Eval.Workers < 0 {
		return fmt.Errorf("%w: eval values must not be negative", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}
