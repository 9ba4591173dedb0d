package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults matching the original model: the auxiliary distributions use a
// fixed 0.1s standard deviation and a 0.1s uniform lower bound, with the
// uniform upper bound at twice the mean.
const (
	defaultStd        = 0.1
	defaultUniformLow = 0.1
)

// Config holds all model parameters. Loaded from YAML via LoadConfig(path)
// or assembled directly (the CLI populates it from flags).
type Config struct {
	// NumServers is the fleet size (must be > 0).
	NumServers int `yaml:"num_servers"`

	// ServerProcessingTime is the mean processing duration in seconds
	// (must be > 0).
	ServerProcessingTime float64 `yaml:"server_processing_time"`

	// ServerProcessingTimeStd is the standard deviation of the processing
	// duration when the processing distribution is normal (default 0.1).
	ServerProcessingTimeStd float64 `yaml:"server_processing_time_std,omitempty"`

	// QueueTimeout is accepted for interface compatibility but not
	// consulted by request handling: rejection is always immediate rather
	// than "wait up to QueueTimeout for a free server".
	QueueTimeout float64 `yaml:"queue_timeout,omitempty"`

	// RequestRate is the mean arrival rate in requests per second (> 0).
	RequestRate float64 `yaml:"request_rate"`

	// FailureRate is the mean server failure rate per second (> 0).
	FailureRate float64 `yaml:"failure_rate"`

	// RecoveryRate is the mean server recovery rate per second (> 0).
	RecoveryRate float64 `yaml:"recovery_rate"`

	// Distribution selectors, one per stochastic concern. Each must be one
	// of "exponential", "uniform", "normal", "custom" (default exponential).
	ArrivalDistribution    string `yaml:"arrival_distribution,omitempty"`
	ProcessingDistribution string `yaml:"processing_distribution,omitempty"`
	FailureDistribution    string `yaml:"failure_distribution,omitempty"`
	RecoveryDistribution   string `yaml:"recovery_distribution,omitempty"`

	// CustomValues is the fixed literal set drawn from when any selector is
	// "custom". Must be non-empty in that case.
	CustomValues []float64 `yaml:"custom_values,omitempty"`
}

// applyDefaults fills zero-valued optional fields in place.
func (c *Config) applyDefaults() {
	if c.ServerProcessingTimeStd == 0 {
		c.ServerProcessingTimeStd = defaultStd
	}
	if c.ArrivalDistribution == "" {
		c.ArrivalDistribution = DistExponential
	}
	if c.ProcessingDistribution == "" {
		c.ProcessingDistribution = DistExponential
	}
	if c.FailureDistribution == "" {
		c.FailureDistribution = DistExponential
	}
	if c.RecoveryDistribution == "" {
		c.RecoveryDistribution = DistExponential
	}
}

// Validate checks the numeric parameters and the custom-value requirement.
// Distribution selector names are checked by NewDurationSampler at Model
// construction, so an unknown name surfaces as ErrUnsupportedDistribution
// rather than ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.NumServers <= 0 {
		return fmt.Errorf("%w: num_servers must be > 0, got %d", ErrInvalidConfig, c.NumServers)
	}
	if c.ServerProcessingTime <= 0 {
		return fmt.Errorf("%w: server_processing_time must be > 0, got %v", ErrInvalidConfig, c.ServerProcessingTime)
	}
	if c.RequestRate <= 0 {
		return fmt.Errorf("%w: request_rate must be > 0, got %v", ErrInvalidConfig, c.RequestRate)
	}
	if c.FailureRate <= 0 {
		return fmt.Errorf("%w: failure_rate must be > 0, got %v", ErrInvalidConfig, c.FailureRate)
	}
	if c.RecoveryRate <= 0 {
		return fmt.Errorf("%w: recovery_rate must be > 0, got %v", ErrInvalidConfig, c.RecoveryRate)
	}
	for _, dist := range []string{c.ArrivalDistribution, c.ProcessingDistribution, c.FailureDistribution, c.RecoveryDistribution} {
		if dist == DistCustom && len(c.CustomValues) == 0 {
			return fmt.Errorf("%w: custom_values must be non-empty when a custom distribution is selected", ErrInvalidConfig)
		}
	}
	return nil
}

// arrivalParams derives interarrival-time parameters from the request rate.
func (c *Config) arrivalParams() VariateParams {
	return VariateParams{
		Rate:   c.RequestRate,
		Mean:   1 / c.RequestRate,
		Std:    defaultStd,
		Low:    defaultUniformLow,
		High:   2 / c.RequestRate,
		Values: c.CustomValues,
	}
}

// processingParams derives processing-time parameters from the configured
// mean; the exponential rate is its reciprocal.
func (c *Config) processingParams() VariateParams {
	return VariateParams{
		Rate:   1 / c.ServerProcessingTime,
		Mean:   c.ServerProcessingTime,
		Std:    c.ServerProcessingTimeStd,
		Low:    defaultUniformLow,
		High:   2 * c.ServerProcessingTime,
		Values: c.CustomValues,
	}
}

// failureParams derives time-to-failure parameters from the failure rate.
func (c *Config) failureParams() VariateParams {
	return VariateParams{
		Rate:   c.FailureRate,
		Mean:   1 / c.FailureRate,
		Std:    defaultStd,
		Low:    defaultUniformLow,
		High:   2 / c.FailureRate,
		Values: c.CustomValues,
	}
}

// recoveryParams derives recovery-time parameters from the recovery rate.
func (c *Config) recoveryParams() VariateParams {
	return VariateParams{
		Rate:   c.RecoveryRate,
		Mean:   1 / c.RecoveryRate,
		Std:    defaultStd,
		Low:    defaultUniformLow,
		High:   2 / c.RecoveryRate,
		Values: c.CustomValues,
	}
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
