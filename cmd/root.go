package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slotbroker/slotbroker/broker"
	"github.com/slotbroker/slotbroker/broker/trace"
)

var (
	// CLI flags for the shared-resource run
	logLevel     string  // Log verbosity level
	participants int     // Total participants (1 coordinator + workers)
	slots        int     // Shared resource slots (tokens)
	tasks        int     // Tasks per worker
	computeSec   float64 // Seconds of compute phase per task
	resourceSec  float64 // Seconds of shared-resource phase per task
	traceRun     bool    // Record and print coordinator decisions

	// Scenario preset selection
	scenarioFile string
	scenarioName string

	// CLI flags for the slot sweep
	slotsList []int
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "slotbroker",
	Short: "Shared-resource bottleneck lab: a token broker arbitrating scarce slots among workers",
}

// buildConfig assembles the run configuration from flags, or from a named
// scenario preset when one is selected.
func buildConfig() broker.Config {
	if scenarioName != "" {
		preset := GetScenarioConfig(scenarioFile, scenarioName)
		if preset == nil {
			logrus.Fatalf("Unknown scenario %q in %s", scenarioName, scenarioFile)
		}
		return *preset
	}
	return broker.Config{
		Participants:   participants,
		Slots:          slots,
		TasksPerWorker: tasks,
		Compute:        time.Duration(computeSec * float64(time.Second)),
		Resource:       time.Duration(resourceSec * float64(time.Second)),
	}
}

// setUpLogging applies the --log flag process-wide.
func setUpLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes one lab run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the shared-resource arbitration lab once",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()

		cfg := buildConfig()
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		var rt *trace.RunTrace
		if traceRun {
			rt = trace.New()
		}

		summary, err := broker.Run(cfg, rt)
		if err != nil {
			logrus.Fatalf("Run aborted: %v", err)
		}

		summary.Print()
		if traceRun {
			trace.Summarize(rt).Print()
		}
	},
}

// sweepCmd repeats the same workload across several slot counts, one
// report line per run. This is the lab's "add more accelerators" exercise.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the same workload across several slot counts",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()

		base := buildConfig()
		for _, s := range slotsList {
			cfg := base
			cfg.Slots = s
			if err := cfg.Validate(); err != nil {
				logrus.Fatalf("Invalid configuration at slots=%d: %v", s, err)
			}
			summary, err := broker.Run(cfg, nil)
			if err != nil {
				logrus.Fatalf("Run aborted at slots=%d: %v", s, err)
			}
			fmt.Println(summary.Line())
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, sweepCmd} {
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().IntVar(&participants, "participants", 5, "Total participants (1 coordinator + workers)")
		c.Flags().IntVar(&tasks, "tasks", 50, "Tasks per worker")
		c.Flags().Float64Var(&computeSec, "compute", 0.01, "Seconds of compute phase per task")
		c.Flags().Float64Var(&resourceSec, "resource", 0.05, "Seconds of shared-resource phase per task")
		c.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file with named scenario presets")
		c.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset (overrides run flags)")
	}

	runCmd.Flags().IntVar(&slots, "slots", 1, "Number of shared resource slots (tokens)")
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "Record coordinator decisions and print a trace summary")

	sweepCmd.Flags().IntSliceVar(&slotsList, "slots-list", []int{1, 2, 4}, "Comma-separated slot counts to sweep")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
