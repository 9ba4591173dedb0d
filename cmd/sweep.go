package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Azat-Bilalov/highload-service-model/sim"
	"github.com/Azat-Bilalov/highload-service-model/sim/sweep"
)

var (
	sweepSeed    int64
	sweepHorizon float64
	sweepTrials  int
	sweepLog     string

	serversRange        []int
	requestRateRange    []float64
	failureRateRange    []float64
	recoveryRateRange   []float64
	processingTimeRange []float64
)

// sweepCmd searches randomized configurations for the one with the lowest
// average latency at the horizon.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Search randomized configurations for minimal average latency",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(sweepLog)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", sweepLog)
		}
		logrus.SetLevel(level)

		if len(serversRange) != 2 || len(requestRateRange) != 2 || len(failureRateRange) != 2 ||
			len(recoveryRateRange) != 2 || len(processingTimeRange) != 2 {
			return fmt.Errorf("every range flag takes exactly two values: min,max")
		}

		ranges := sweep.Ranges{
			NumServers:           sweep.IntRange{Min: serversRange[0], Max: serversRange[1]},
			RequestRate:          sweep.Range{Min: requestRateRange[0], Max: requestRateRange[1]},
			FailureRate:          sweep.Range{Min: failureRateRange[0], Max: failureRateRange[1]},
			RecoveryRate:         sweep.Range{Min: recoveryRateRange[0], Max: recoveryRateRange[1]},
			ServerProcessingTime: sweep.Range{Min: processingTimeRange[0], Max: processingTimeRange[1]},
		}

		// Fixed distribution choices for the search: Poisson arrivals,
		// near-Gaussian processing, exponential failure and recovery.
		base := sim.Config{
			ArrivalDistribution:    sim.DistExponential,
			ProcessingDistribution: sim.DistNormal,
			FailureDistribution:    sim.DistExponential,
			RecoveryDistribution:   sim.DistExponential,
		}

		logrus.Infof("Sweeping %d trials over %.1fs horizon (seed %d)", sweepTrials, sweepHorizon, sweepSeed)
		result, err := sweep.Optimize(base, ranges, sweepHorizon, sweepTrials, sweepSeed)
		if err != nil {
			return err
		}

		best := result.Best
		fmt.Println("=== Best Configuration ===")
		fmt.Printf("Servers              : %d\n", best.Config.NumServers)
		fmt.Printf("Request Rate         : %.4f req/s\n", best.Config.RequestRate)
		fmt.Printf("Processing Time      : %.4f s\n", best.Config.ServerProcessingTime)
		fmt.Printf("Failure Rate         : %.4f /s\n", best.Config.FailureRate)
		fmt.Printf("Recovery Rate        : %.4f /s\n", best.Config.RecoveryRate)
		fmt.Println("=== Best Metrics ===")
		fmt.Printf("Total Requests       : %d\n", best.Snapshot.TotalRequests)
		fmt.Printf("Completed Requests   : %d\n", best.Snapshot.CompletedRequests)
		fmt.Printf("Failed Requests      : %d\n", best.Snapshot.FailedRequests)
		fmt.Printf("Average Latency      : %.4f s\n", best.Snapshot.AvgLatency)
		fmt.Printf("Available Servers    : %d\n", best.Snapshot.AvailableServers)
		return nil
	},
}

func init() {
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 42, "Seed for the sweep and all trial simulations")
	sweepCmd.Flags().Float64Var(&sweepHorizon, "horizon", 100, "Horizon each trial is advanced to (seconds)")
	sweepCmd.Flags().IntVar(&sweepTrials, "trials", 50, "Number of randomized configurations to try")
	sweepCmd.Flags().StringVar(&sweepLog, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	sweepCmd.Flags().IntSliceVar(&serversRange, "servers-range", []int{1, 10}, "min,max number of servers")
	sweepCmd.Flags().Float64SliceVar(&requestRateRange, "request-rate-range", []float64{0.5, 5.0}, "min,max request rate (req/s)")
	sweepCmd.Flags().Float64SliceVar(&failureRateRange, "failure-rate-range", []float64{0.05, 0.2}, "min,max failure rate (/s)")
	sweepCmd.Flags().Float64SliceVar(&recoveryRateRange, "recovery-rate-range", []float64{0.1, 0.5}, "min,max recovery rate (/s)")
	sweepCmd.Flags().Float64SliceVar(&processingTimeRange, "processing-time-range", []float64{0.5, 2.0}, "min,max mean processing time (s)")

	rootCmd.AddCommand(sweepCmd)
}
