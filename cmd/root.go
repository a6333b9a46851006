package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beergame-sim/beergame-sim/sim"
	"github.com/beergame-sim/beergame-sim/sim/policy"
)

var (
	// CLI flags for the game setup
	weeks    int    // Number of simulated weeks
	logLevel string // Log verbosity level

	// CLI flags for external demand generation
	demandMode     string // Demand mode (constant, random)
	demandConstant int    // Weekly demand in constant mode
	demandMin      int    // Lower demand bound in random mode
	demandMax      int    // Upper demand bound in random mode
	seed           int64  // Seed for random demand generation

	// CLI flags for the order-decision policy
	policyName    string // Order policy (fixed, base-stock)
	orderQuantity int    // Constant order quantity for the fixed policy
	safetyStock   int    // Safety buffer for the base-stock policy
	forecastWeeks int    // Moving-average window for the base-stock policy

	// CLI flags for inputs and outputs
	scenarioPath string // YAML scenario overriding generated demand/orders
	outputPath   string // JSON report destination; empty prints a table
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "beergame",
	Short: "Discrete-time simulator for the beer distribution game",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the beer game simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if weeks <= 0 {
			logrus.Fatalf("Week count must be positive, got %d", weeks)
		}

		cfg := sim.DefaultGameConfig(weeks)

		var demand []int
		var orders sim.OrderTable

		if scenarioPath != "" {
			scenario, err := LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %s: %v", scenarioPath, err)
			}
			if scenario.Weeks > 0 {
				cfg.Weeks = scenario.Weeks
			}
			demand = sim.NewFixedDemand(scenario.Demand).Sequence(cfg.Weeks)
			orders = sim.NewOrderTable(scenario.Orders)
		} else {
			demand = demandSource().Sequence(cfg.Weeks)
			orders = policy.NewOrderPolicy(policyName, orderQuantity, safetyStock, forecastWeeks).Table(demand)
		}

		logrus.Infof("Running %d weeks (demand mode=%s, policy=%s)", cfg.Weeks, demandMode, policyName)

		report := sim.RunSimulation(cfg, demand, orders)

		if outputPath != "" {
			if err := writeReportJSON(report, outputPath); err != nil {
				logrus.Fatalf("Failed to write report to %s: %v", outputPath, err)
			}
			logrus.Infof("Report written to %s", outputPath)
		} else {
			report.Print()
		}
	},
}

// demandSource builds the demand source selected by the CLI flags.
func demandSource() sim.DemandSource {
	switch demandMode {
	case "constant":
		return sim.ConstantDemand(demandConstant)
	case "random":
		return sim.RandomDemand{Seed: seed, Min: demandMin, Max: demandMax}
	default:
		logrus.Fatalf("Unknown demand mode %q; valid modes: [constant, random]", demandMode)
		return nil
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
	runCmd.Flags().IntVar(&weeks, "weeks", sim.DefaultWeeks, "Number of simulated weeks")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// External demand generation
	runCmd.Flags().StringVar(&demandMode, "demand-mode", "constant", "Demand mode (constant, random)")
	runCmd.Flags().IntVar(&demandConstant, "demand", sim.DefaultDemand, "Weekly customer demand in constant mode")
	runCmd.Flags().IntVar(&demandMin, "demand-min", 0, "Lower demand bound in random mode")
	runCmd.Flags().IntVar(&demandMax, "demand-max", 8, "Upper demand bound in random mode")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random demand generation")

	// Order-decision policy
	runCmd.Flags().StringVar(&policyName, "policy", "fixed", "Order policy (fixed, base-stock)")
	runCmd.Flags().IntVar(&orderQuantity, "order-quantity", sim.DefaultOrderQuantity, "Constant order quantity for the fixed policy")
	runCmd.Flags().IntVar(&safetyStock, "safety-stock", 4, "Safety buffer for the base-stock policy")
	runCmd.Flags().IntVar(&forecastWeeks, "forecast-weeks", 4, "Moving-average window for the base-stock policy")

	// Inputs and outputs
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file with explicit demand and order rows")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the report as JSON to this path instead of printing")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
