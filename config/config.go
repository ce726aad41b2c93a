package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/clusterfield/builder"
	"github.com/katalvlaran/clusterfield/cluster"
	"github.com/katalvlaran/clusterfield/field"
	"github.com/katalvlaran/clusterfield/gridgraph"
)

// Defaults.
const (
	DefaultGridSize     = 16
	DefaultPolicy       = "strict"
	DefaultConnectivity = 4
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete command configuration.
type Config struct {
	Grid GridConfig `yaml:"grid"`
	Log  LogConfig  `yaml:"log"`

	// LoadedFrom lists the sources applied, in order.
	LoadedFrom []string `yaml:"-"`
}

// GridConfig drives field.Build.
type GridConfig struct {
	Size         int     `yaml:"size" validate:"min=1,max=4096"`
	Seed         int64   `yaml:"seed"`
	Occupancy    float64 `yaml:"occupancy" validate:"gte=0,lte=1"`
	Policy       string  `yaml:"policy" validate:"oneof=strict merge"`
	Connectivity int     `yaml:"connectivity" validate:"oneof=4 8"`
}

// LogConfig drives the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Size:         DefaultGridSize,
			Occupancy:    builder.OccupancyProbability,
			Policy:       DefaultPolicy,
			Connectivity: DefaultConnectivity,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

var validate = validator.New()

// Validate checks every field against its tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens validator errors into one message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Policy returns the configured cluster policy.
func (c *Config) Policy() (cluster.Policy, error) {
	p, err := cluster.ParsePolicy(c.Grid.Policy)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Connectivity maps 4 or 8 to a gridgraph.Connectivity.
func (c *Config) Connectivity() gridgraph.Connectivity {
	if c.Grid.Connectivity == 8 {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

// FieldOptions translates the grid section into field.Build options.
// A zero seed is left out so Build draws one.
func (c *Config) FieldOptions() ([]field.Option, error) {
	p, err := c.Policy()
	if err != nil {
		return nil, err
	}
	opts := []field.Option{
		field.WithPolicy(p),
		field.WithConnectivity(c.Connectivity()),
	}
	if c.Grid.Seed != 0 {
		opts = append(opts, field.WithSeed(c.Grid.Seed))
	}
	if c.Grid.Occupancy != builder.OccupancyProbability {
		opts = append(opts, field.WithOccupancy(c.Grid.Occupancy))
	}
	return opts, nil
}

// Logger builds a zap logger for the log section: "json" gets the production
// encoder, "console" the development one. Output goes to stderr.
func (c *Config) Logger() (*zap.Logger, error) {
	zc, err := c.zapConfig()
	if err != nil {
		return nil, err
	}
	return zc.Build()
}

// LoggerTo is Logger writing to w instead of stderr.
func (c *Config) LoggerTo(w io.Writer) (*zap.Logger, error) {
	zc, err := c.zapConfig()
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zc.EncoderConfig)
	if zc.Encoding == "json" {
		enc = zapcore.NewJSONEncoder(zc.EncoderConfig)
	}
	sink := zapcore.AddSync(w)
	return zap.New(zapcore.NewCore(enc, sink, zc.Level), zap.ErrorOutput(sink)), nil
}

func (c *Config) zapConfig() (zap.Config, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	var zc zap.Config
	switch c.Log.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return zap.Config{}, fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc, nil
}
