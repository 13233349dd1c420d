package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/linolastella/checkout-sim/sim"
	"github.com/linolastella/checkout-sim/sim/trace"
	"github.com/linolastella/checkout-sim/sim/workload"
)

var (
	configPath   string // Store configuration (YAML or JSON)
	eventsPath   string // Line-oriented event log
	schedulePath string // Cron schedule spec, alternative to an event log
	logLevel     string // Log verbosity level
	traceLevel   string // Decision trace verbosity
	strict       bool   // Treat stranded customers and empty runs as failures
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "checkout-sim",
	Short: "Discrete-event simulator for grocery store checkout lines",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the checkout simulation",
	Long: `Run simulates one store day. Events come either from an event log
(--events) with lines of the form

  <timestamp> join <customer-id> <items>
  <timestamp> close <line-index>

or from a cron schedule spec (--schedule).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			return fmt.Errorf("unknown trace level %q; valid: none, decisions", traceLevel)
		}
		cmd.SilenceUsage = true
		return runSimulation(cmd)
	},
}

func runSimulation(cmd *cobra.Command) error {
	cfg, err := loadStoreConfig(configPath)
	if err != nil {
		return err
	}
	records, err := loadRecords()
	if err != nil {
		return err
	}

	logrus.Infof("Starting simulation: %d cashier, %d express, %d self-serve lines, capacity %d, %d input events",
		cfg.CashierCount, cfg.ExpressCount, cfg.SelfServeCount, cfg.LineCapacity, len(records))

	s, err := sim.NewSimulator(cfg, trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
	if err != nil {
		return err
	}
	stats, err := s.Run(records)
	if err != nil && !errors.Is(err, sim.ErrNoCompletedCustomers) {
		return fmt.Errorf("simulation failed: %w", err)
	}
	report := newRunReport(s, stats, err)
	writeReport(cmd.OutOrStdout(), report)

	if strict {
		if err != nil {
			return err
		}
		if n := len(report.Unresolved); n > 0 {
			return fmt.Errorf("%d customers could not be placed in a line", n)
		}
	}
	return nil
}

func loadRecords() ([]sim.EventRecord, error) {
	switch {
	case eventsPath != "" && schedulePath != "":
		return nil, fmt.Errorf("--events and --schedule are mutually exclusive")
	case eventsPath != "":
		return workload.LoadEventLog(eventsPath)
	case schedulePath != "":
		spec, err := workload.LoadScheduleSpec(schedulePath)
		if err != nil {
			return nil, err
		}
		return workload.Generate(spec)
	default:
		return nil, fmt.Errorf("one of --events or --schedule is required")
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Store configuration file (YAML or JSON)")
	runCmd.Flags().StringVarP(&eventsPath, "events", "e", "", "Event log to replay")
	runCmd.Flags().StringVar(&schedulePath, "schedule", "", "Cron schedule spec to generate events from")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if any customer is stranded or nobody finishes")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
