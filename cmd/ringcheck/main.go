// Command ringcheck runs the reducible-configuration analyzer over a
// configuration file (§6): load the graph, apply the
// requested contraction, and log every danger-pattern match found.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringcheck"
	"github.com/katalvlaran/ringcheck/confio"
	"github.com/katalvlaran/ringcheck/logx"
)

var (
	confPath  string
	edgeIDs   []int
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "ringcheck",
	Short: "Verify a reducible-configuration input against the danger-pattern catalogue",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	log, err := logx.New(verbosity)
	if err != nil {
		return fmt.Errorf("ringcheck: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	if confPath == "" {
		return fmt.Errorf("ringcheck: --conf is required")
	}

	f, err := os.Open(confPath)
	if err != nil {
		return fmt.Errorf("ringcheck: opening %s: %w", confPath, err)
	}
	defer f.Close()

	g, err := confio.Read(f)
	if err != nil {
		return fmt.Errorf("ringcheck: parsing %s: %w", confPath, err)
	}

	contract, err := confio.EdgesFromDualIDs(g, edgeIDs)
	if err != nil {
		return fmt.Errorf("ringcheck: translating --edgeids: %w", err)
	}

	cfg, err := ringcheck.New(g, confPath)
	if err != nil {
		return fmt.Errorf("ringcheck: building configuration: %w", err)
	}
	if err := cfg.SetContract(contract); err != nil {
		return fmt.Errorf("ringcheck: applying contraction: %w", err)
	}

	cfg.Analyze(log)
	// Exit code is always 0: danger findings are warnings in the log
	// stream, not failures (§6 "Output").
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&confPath, "conf", "c", "", "input configuration file")
	rootCmd.Flags().IntSliceVarP(&edgeIDs, "edgeids", "e", nil, "dual-edge ids identifying the contraction set")
	rootCmd.Flags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity: 0, 1, or 2")
	rootCmd.Flags().BoolP("help", "H", false, "help for ringcheck")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
