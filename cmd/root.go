package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Azat-Bilalov/highload-service-model/sim"
)

var (
	// CLI flags shared by the run subcommand
	configPath     string    // Optional YAML config file
	seed           int64     // Seed for all stochastic draws
	horizon        float64   // Total simulation time (in seconds of virtual time)
	sampleInterval float64   // Interval between snapshot samples
	logLevel       string    // Log verbosity level

	// Model parameters (ignored when --config is given)
	numServers        int
	processingTime    float64
	processingTimeStd float64
	queueTimeout      float64
	requestRate       float64
	failureRate       float64
	recoveryRate      float64
	arrivalDist       string
	processingDist    string
	failureDist       string
	recoveryDist      string
	customValues      []float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "highload-service-model",
	Short: "Discrete-event simulator for request-processing server fleets",
}

// runCmd executes a single simulation using parameters from CLI flags or a
// YAML config file, sampling metrics periodically up to the horizon.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the fleet simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		logrus.Infof("Starting simulation with %d servers, horizon=%.1fs, seed=%d",
			cfg.NumServers, horizon, seed)

		m, err := sim.NewModel(*cfg, seed)
		if err != nil {
			return err
		}

		// Drive the clock in fixed increments; each AdvanceTo returns with
		// the clock exactly at the sample point even when no event is due,
		// which is what makes periodic sampling possible.
		for t := sampleInterval; t < horizon; t += sampleInterval {
			if err := m.AdvanceTo(t); err != nil {
				return err
			}
			snap := m.Snapshot()
			logrus.Infof("[t=%8.2f] total=%d completed=%d failed=%d avg_latency=%.4f available=%d",
				snap.Time, snap.TotalRequests, snap.CompletedRequests, snap.FailedRequests,
				snap.AvgLatency, snap.AvailableServers)
		}
		if err := m.AdvanceTo(horizon); err != nil {
			return err
		}

		m.Metrics().Print(horizon)
		logrus.Info("Simulation complete.")
		return nil
	},
}

// buildConfig assembles the model configuration from the YAML file when
// --config is given, otherwise from individual flags.
func buildConfig() (*sim.Config, error) {
	if configPath != "" {
		return sim.LoadConfig(configPath)
	}
	return &sim.Config{
		NumServers:              numServers,
		ServerProcessingTime:    processingTime,
		ServerProcessingTimeStd: processingTimeStd,
		QueueTimeout:            queueTimeout,
		RequestRate:             requestRate,
		FailureRate:             failureRate,
		RecoveryRate:            recoveryRate,
		ArrivalDistribution:     arrivalDist,
		ProcessingDistribution:  processingDist,
		FailureDistribution:     failureDist,
		RecoveryDistribution:    recoveryDist,
		CustomValues:            customValues,
	}, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file (overrides parameter flags)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all stochastic draws")
	runCmd.Flags().Float64Var(&horizon, "horizon", 60, "Total simulation horizon (seconds of virtual time)")
	runCmd.Flags().Float64Var(&sampleInterval, "interval", 5, "Interval between metric samples (seconds of virtual time)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Model parameters
	runCmd.Flags().IntVar(&numServers, "servers", 10, "Number of servers in the fleet")
	runCmd.Flags().Float64Var(&processingTime, "processing-time", 1.0, "Mean request processing time (seconds)")
	runCmd.Flags().Float64Var(&processingTimeStd, "processing-time-std", 0.1, "Processing time standard deviation (normal distribution)")
	runCmd.Flags().Float64Var(&queueTimeout, "queue-timeout", 5.0, "Queue wait timeout (accepted, not consulted: rejection is immediate)")
	runCmd.Flags().Float64Var(&requestRate, "request-rate", 10.0, "Mean request arrival rate (requests/second)")
	runCmd.Flags().Float64Var(&failureRate, "failure-rate", 0.01, "Mean server failure rate (failures/second)")
	runCmd.Flags().Float64Var(&recoveryRate, "recovery-rate", 0.1, "Mean server recovery rate (recoveries/second)")
	runCmd.Flags().StringVar(&arrivalDist, "arrival-dist", "exponential", "Interarrival time distribution (exponential, uniform, normal, custom)")
	runCmd.Flags().StringVar(&processingDist, "processing-dist", "exponential", "Processing time distribution")
	runCmd.Flags().StringVar(&failureDist, "failure-dist", "exponential", "Time-to-failure distribution")
	runCmd.Flags().StringVar(&recoveryDist, "recovery-dist", "exponential", "Recovery time distribution")
	runCmd.Flags().Float64SliceVar(&customValues, "custom-values", nil, "Comma-separated literal durations for the custom distribution")

	rootCmd.AddCommand(runCmd)
}
