// Command ghl builds an approximately optimal hub labeling using the
// GHLp algorithm over a DIMACS or METIS graph file.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hublabel/hl/cmd/internal/clicommon"
	"github.com/hublabel/hl/ghl"
	"github.com/hublabel/hl/labeling"
)

var (
	normFlag  string
	alpha     float64
	labelFile string
	threads   int
	verbose   bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "ghl [flags] graph",
		Short:        "Build an approximately optimal hub labeling using GHLp",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringVarP(&normFlag, "norm", "p", "1", "approximate p-norm of labels; use \"max\" to approximate maximum label size")
	cmd.Flags().Float64VarP(&alpha, "alpha", "a", 1.1, "alpha parameter (>=1.0) trading speed for labeling size")
	cmd.Flags().StringVarP(&labelFile, "labeling", "l", "", "file to write the labeling")
	cmd.Flags().IntVarP(&threads, "threads", "t", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	clicommon.SetupLogging(verbose)
	if alpha < 1.0 {
		return fmt.Errorf("ghl: --alpha must be >= 1.0")
	}
	if threads <= 0 {
		return fmt.Errorf("ghl: --threads must be > 0")
	}

	g, err := clicommon.OpenGraph(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read graph from file %s\n", args[0])
		os.Exit(1)
	}
	clicommon.PrintGraphStats(g)

	p := 1.0
	if normFlag == "max" {
		p = math.Log(float64(g.N()))
	} else if parsed, err := parseNorm(normFlag); err == nil {
		p = parsed
	}

	lab := labeling.New(g.N())
	b := ghl.New(g, ghl.WithWorkers(threads), ghl.WithAlpha(alpha), ghl.WithP(p))
	b.Run(lab)

	clicommon.PrintLabelStats(lab)
	clicommon.WriteLabelingFile(labelFile, lab)

	log.Debug("done")
	return nil
}

func parseNorm(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%g", &v)
	return v, err
}
