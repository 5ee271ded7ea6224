// Command lcheck validates a labeling file against a graph, either by
// cross-checking every query against direct Dijkstra distances (-c) or
// by simply reporting label-size statistics.
package main

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hublabel/hl/cmd/internal/clicommon"
	"github.com/hublabel/hl/labelcheck"
	"github.com/hublabel/hl/labeling"
)

var (
	check     bool
	labelFile string
	threads   int
	verbose   bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "lcheck -l labeling [flags] graph",
		Short:        "Verify or report statistics on a labeling file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().BoolVarP(&check, "check", "c", false, "check labels (without this option, print statistics only)")
	cmd.Flags().StringVarP(&labelFile, "labeling", "l", "", "file with the labeling (required)")
	cmd.Flags().IntVarP(&threads, "threads", "t", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
	_ = cmd.MarkFlagRequired("labeling")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	clicommon.SetupLogging(verbose)
	if threads <= 0 {
		return fmt.Errorf("lcheck: --threads must be > 0")
	}

	g, err := clicommon.OpenGraph(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read graph from file %s\n", args[0])
		os.Exit(1)
	}
	clicommon.PrintGraphStats(g)

	lf, err := os.Open(labelFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read labels from file %s\n", labelFile)
		os.Exit(1)
	}
	lab, err := labeling.Read(lf, g.N())
	lf.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read labels from file %s\n", labelFile)
		os.Exit(1)
	}

	if check {
		if !labelcheck.New(g, labelcheck.WithWorkers(threads)).Run(lab) {
			fmt.Println("Bad Labels")
			os.Exit(1)
		}
		fmt.Println("Labels OK")
	}

	clicommon.PrintLabelStats(lab)

	log.Debug("done")
	return nil
}
