package utils

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Initial patterns
const (
	PatternRandom = "random"
	PatternGlider = "glider"
)

// Renderers
const (
	RendererText   = "text"
	RendererScreen = "screen"
	RendererWindow = "window"
	RendererNone   = "none"
)

// Interpolations used when scaling frames for display
const (
	InterpolationNearest  = "nearest"
	InterpolationBilinear = "bilinear"
	InterpolationGaussian = "gaussian"
)

// Config holds the configuration for a run
type Config struct {
	GridSize         int           `json:"grid_size" yaml:"grid_size"`
	Pattern          string        `json:"pattern" yaml:"pattern"`
	AliveProbability float64       `json:"alive_probability" yaml:"alive_probability"`
	GliderTop        int           `json:"glider_top" yaml:"glider_top"`
	GliderLeft       int           `json:"glider_left" yaml:"glider_left"`
	Seed             int64         `json:"seed" yaml:"seed"`
	Interval         time.Duration `json:"interval" yaml:"interval"`
	Frames           int           `json:"frames" yaml:"frames"`
	MovFile          string        `json:"movfile" yaml:"movfile"`
	Interpolation    string        `json:"interpolation" yaml:"interpolation"`
	Scale            int           `json:"scale" yaml:"scale"`
	Renderer         string        `json:"renderer" yaml:"renderer"`
	Workers          int           `json:"workers" yaml:"workers"`
	Verbose          bool          `json:"verbose" yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		GridSize:         100,
		Pattern:          PatternRandom,
		AliveProbability: 0.1,
		GliderTop:        1,
		GliderLeft:       1,
		Seed:             time.Now().UnixNano(),
		Interval:         500 * time.Millisecond,
		Frames:           0, // no cap
		Interpolation:    InterpolationGaussian,
		Scale:            4,
		Renderer:         RendererText,
		Workers:          runtime.NumCPU(),
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "grid-size", c.GridSize, "number of rows and columns of the grid")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: random or glider")
	fs.BoolFunc("glider", "start from a single glider (same as -pattern=glider)", func(string) error {
		c.Pattern = PatternGlider
		return nil
	})
	fs.Float64Var(&c.AliveProbability, "probability", c.AliveProbability, "probability that a cell starts alive with the random pattern")
	fs.IntVar(&c.GliderTop, "glider-top", c.GliderTop, "row of the glider's top-left corner")
	fs.IntVar(&c.GliderLeft, "glider-left", c.GliderLeft, "column of the glider's top-left corner")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Var((*interval)(&c.Interval), "interval", "delay between frames, as a duration (250ms) or a number of milliseconds")
	fs.IntVar(&c.Frames, "frames", c.Frames, "stop after this many generations (0 = until the colony dies or stagnates)")
	fs.StringVar(&c.MovFile, "movfile", c.MovFile, "write the run as an animated GIF to this path")
	fs.StringVar(&c.Interpolation, "interpolation", c.Interpolation, "one of nearest, bilinear, gaussian")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the window and the animation")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "one of text, screen, window, none")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed concurrently per generation")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log every generation")
}

// interval parses a duration, reading a bare integer as milliseconds
type interval time.Duration

func (i *interval) String() string {
	return time.Duration(*i).String()
}

func (i *interval) Set(value string) error {
	if ms, err := strconv.Atoi(value); err == nil {
		*i = interval(time.Duration(ms) * time.Millisecond)
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return errors.Errorf("invalid interval %q: want milliseconds or a duration", value)
	}
	*i = interval(d)
	return nil
}

// ParseArgs builds a Config from defaults, an optional -config file and command-line flags.
// Flags take precedence over values from the file.
func ParseArgs(name string, args []string) (Config, error) {
	config := DefaultConfig()
	path, err := parseInto(name, args, &config)
	if err != nil {
		return config, err
	}

	if path != "" {
		if config, err = LoadConfig(path); err != nil {
			return config, err
		}
		if _, err = parseInto(name, args, &config); err != nil {
			return config, err
		}
	}

	return config, config.Validate()
}

func parseInto(name string, args []string, config *Config) (string, error) {
	var path string
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "JSON or YAML configuration file")
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return "", errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}
	return path, nil
}

// Validate checks settings that are not validated by the grid constructors
func (c Config) Validate() error {
	switch c.Pattern {
	case PatternRandom, PatternGlider:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
	switch c.Renderer {
	case RendererText, RendererScreen, RendererWindow, RendererNone:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	}
	switch c.Interpolation {
	case InterpolationNearest, InterpolationBilinear, InterpolationGaussian:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown interpolation %q", c.Interpolation)
	}
	if c.Frames < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frames must not be negative, got %d", c.Frames)
	}
	if c.Interval < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] interval must not be negative, got %v", c.Interval)
	}
	if c.Scale <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] scale must be positive, got %d", c.Scale)
	}
	if c.Workers <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must be positive, got %d", c.Workers)
	}
	return nil
}
