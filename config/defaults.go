package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/generator"
)

// Default values not derived from experiment.DefaultPlan.
const (
	DefaultOutputDir   = "results"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultMetricsAddr = ""
)

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	plan := experiment.DefaultPlan()

	cases := make([]string, 0, len(plan.Cases))
	for _, c := range generator.Cases() {
		cases = append(cases, c.String())
	}

	// Experiment defaults.
	viperCfg.SetDefault("experiment.algorithms", plan.Algorithms)
	viperCfg.SetDefault("experiment.cases", cases)
	viperCfg.SetDefault("experiment.repetitions", plan.Repetitions)
	viperCfg.SetDefault("experiment.sizes.large", plan.LargeSizes)
	viperCfg.SetDefault("experiment.sizes.small", plan.SmallSizes)
	viperCfg.SetDefault("experiment.quadratic", plan.Quadratic)
	viperCfg.SetDefault("experiment.seed", plan.Seed)
	viperCfg.SetDefault("experiment.workers", plan.Workers)
	viperCfg.SetDefault("experiment.verify", plan.Verify)

	// Output defaults.
	viperCfg.SetDefault("output.dir", DefaultOutputDir)
	viperCfg.SetDefault("output.compress_log", false)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	// Telemetry defaults.
	viperCfg.SetDefault("telemetry.metrics_addr", DefaultMetricsAddr)
}
