// Package config provides configuration loading and validation for sortbench.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/generator"
	"github.com/katalvlaran/sortlab/observability"
)

// Sentinel validation errors.
var (
	ErrInvalidRepetitions = errors.New("repetitions must be positive")
	ErrInvalidWorkers     = errors.New("workers must not be negative")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrNoAlgorithms       = errors.New("at least one algorithm is required")
)

// EnvPrefix prefixes every environment override, e.g. SORTBENCH_EXPERIMENT_SEED.
const EnvPrefix = "SORTBENCH"

// Config holds all configuration for sortbench.
type Config struct {
	Experiment ExperimentConfig `mapstructure:"experiment"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// ExperimentConfig describes the benchmark grid.
type ExperimentConfig struct {
	Algorithms  []string    `mapstructure:"algorithms"`
	Cases       []string    `mapstructure:"cases"`
	Sizes       SizesConfig `mapstructure:"sizes"`
	Quadratic   []string    `mapstructure:"quadratic"`
	Repetitions int         `mapstructure:"repetitions"`
	Seed        int64       `mapstructure:"seed"`
	Workers     int         `mapstructure:"workers"`
	Verify      bool        `mapstructure:"verify"`
}

// SizesConfig holds the two size ladders.
type SizesConfig struct {
	Large []int `mapstructure:"large"`
	Small []int `mapstructure:"small"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	CompressLog bool   `mapstructure:"compress_log"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig controls the Prometheus endpoint. Empty MetricsAddr disables it.
type TelemetryConfig struct {
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// LoadConfig loads configuration from file and environment variables.
// With an empty path, sortbench.yaml is looked up in the working directory
// and ./config; not finding it is not an error. An explicit path must exist.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("sortbench")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Validate checks the values that LoadConfig cannot leave to the driver.
func (c *Config) Validate() error {
	if len(c.Experiment.Algorithms) == 0 {
		return ErrNoAlgorithms
	}

	if c.Experiment.Repetitions <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRepetitions, c.Experiment.Repetitions)
	}

	if c.Experiment.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Experiment.Workers)
	}

	if _, err := observability.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case observability.FormatText, observability.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// Plan converts the experiment section into a validated driver plan.
// Case labels are normalized, so the legacy labels are accepted too.
func (c *Config) Plan() (experiment.Plan, error) {
	cases := make([]generator.Case, 0, len(c.Experiment.Cases))
	for _, label := range c.Experiment.Cases {
		parsed, err := generator.ParseCase(label)
		if err != nil {
			return experiment.Plan{}, err
		}
		cases = append(cases, parsed)
	}

	plan := experiment.Plan{
		Algorithms:  c.Experiment.Algorithms,
		Cases:       cases,
		LargeSizes:  c.Experiment.Sizes.Large,
		SmallSizes:  c.Experiment.Sizes.Small,
		Quadratic:   c.Experiment.Quadratic,
		Repetitions: c.Experiment.Repetitions,
		Seed:        c.Experiment.Seed,
		Workers:     c.Experiment.Workers,
		Verify:      c.Experiment.Verify,
	}

	if err := plan.Validate(); err != nil {
		return experiment.Plan{}, err
	}

	return plan, nil
}
