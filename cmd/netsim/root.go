package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	flagInput          string
	flagOutput         string
	flagHorizon        uint64
	flagReportMode     string
	flagReportInterval uint64
	flagReportTurns    []uint
	flagDumpState      bool
)

var rootCmd = &cobra.Command{
	Use:   "netsim",
	Short: "NetSim runs a turn-based factory package-flow simulation.",
	Long: `NetSim loads a factory topology, reports its structure, runs a ` +
		`bounded simulation over it, and reports selected turns, with every ` +
		`knob exposed as a flag.`,
	RunE: runNetSim,
}

func init() {
	rootCmd.Flags().StringVar(&flagInput, "input", "factory_structure.txt",
		"topology file to load")
	rootCmd.Flags().StringVar(&flagOutput, "output", "factory_structure_saved.txt",
		"path to save the loaded topology back to")
	rootCmd.Flags().Uint64Var(&flagHorizon, "horizon", 5,
		"number of turns to simulate")
	rootCmd.Flags().StringVar(&flagReportMode, "report-mode", "interval",
		`turn report notifier: "interval" or "turns"`)
	rootCmd.Flags().Uint64Var(&flagReportInterval, "report-interval", 1,
		`report period for --report-mode=interval`)
	rootCmd.Flags().UintSliceVar(&flagReportTurns, "report-turns", nil,
		`explicit turns to report for --report-mode=turns`)
	rootCmd.Flags().BoolVar(&flagDumpState, "dump-state", false,
		"write a JSON dump of the loaded factory's state to stderr for debugging")
}

// Execute runs the root command and translates a failure into exit
// code 1. It exits through atexit so any cleanup registered during the
// run (see runNetSim's buffered stdout flush) still happens before the
// process actually terminates.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "netsim:", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func runNetSim(cmd *cobra.Command, args []string) error {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { _ = stdout.Flush() })
	defer stdout.Flush()

	reportTurns := make([]uint64, len(flagReportTurns))
	for i, t := range flagReportTurns {
		reportTurns[i] = uint64(t)
	}

	return run(runOptions{
		input:          flagInput,
		output:         flagOutput,
		horizon:        flagHorizon,
		reportMode:     flagReportMode,
		reportInterval: flagReportInterval,
		reportTurns:    reportTurns,
		dumpState:      flagDumpState,
		stdout:         stdout,
		stderr:         os.Stderr,
		logger:         logger,
	})
}
