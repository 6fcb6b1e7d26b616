package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-mapgen/maze"
	"github.com/joho/godotenv"
)

// Defaults produce a 40x20 map with 700 walls.
const (
	defaultWidth     = 40
	defaultHeight    = 20
	defaultWallCount = 700
	defaultLogLevel  = "info"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the generator's configuration values.
type Config struct {
	Width         int    // Number of cell columns
	Height        int    // Number of cell rows
	WallCount     int    // Total walls wanted, boundary included
	Seed          *int64 // Random seed; nil means seed from the clock
	Name          string // Map name written as a "Name=" header line when set
	LogLevel      string // debug, info or error
	Quiet         bool   // Only log errors
	EnvFileLoaded bool   // Whether a .env file was read
}

// Load reads the configuration from the given .env files (".env" when none is
// given), the environment and finally the command line arguments, each layer
// overriding the previous one. A missing .env file is not an error.
func Load(args []string, envFiles ...string) (Config, error) {
	cfg := Config{}
	cfg.EnvFileLoaded = godotenv.Load(envFiles...) == nil

	var err error
	if cfg.Width, err = getEnvAsIntWithDefault("MAP_WIDTH", defaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsIntWithDefault("MAP_HEIGHT", defaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.WallCount, err = getEnvAsIntWithDefault("MAP_WALL_COUNT", defaultWallCount); err != nil {
		return Config{}, err
	}
	if value, exists := os.LookupEnv("MAP_SEED"); exists {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: environment variable MAP_SEED must be an integer: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = &seed
	}
	cfg.Name = getEnvWithDefault("MAP_NAME", "")
	cfg.LogLevel = getEnvWithDefault("MAP_LOG_LEVEL", defaultLogLevel)

	if err := cfg.parseFlags(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&c.Width, "width", c.Width, "grid column count")
	fs.IntVar(&c.Height, "height", c.Height, "grid row count")
	fs.IntVar(&c.WallCount, "walls", c.WallCount, "total wall segments including the boundary")
	fs.StringVar(&c.Name, "name", c.Name, "map name written as a Name= header")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "only log errors")
	seed := fs.Int64("seed", 0, "random seed, replays an earlier run")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			c.Seed = seed
		}
	})
	if c.Quiet {
		c.LogLevel = "error"
	}
	return nil
}

// Validate rejects grids and wall counts the generator cannot satisfy.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w (width=%d height=%d)", maze.ErrInvalidDimensions, c.Width, c.Height)
	}

	boundary := maze.BoundaryCount(c.Width, c.Height)
	available := maze.UniverseCount(c.Width, c.Height) - boundary
	cfgErr := &maze.ConfigurationError{
		Width:     c.Width,
		Height:    c.Height,
		WallCount: c.WallCount,
		Boundary:  boundary,
		Available: available,
	}
	switch {
	case c.WallCount < boundary:
		cfgErr.Err = maze.ErrWallCountBelowBoundary
		return cfgErr
	case c.WallCount-boundary > available:
		cfgErr.Err = maze.ErrWallCountExceedsUniverse
		return cfgErr
	}
	return nil
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: environment variable %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
