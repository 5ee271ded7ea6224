// Command hhl builds a general-graph greedy hierarchical hub labeling
// over a DIMACS or METIS graph file, using either the path-greedy or
// label-greedy weight function and optionally assuming unique shortest
// paths.
package main

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hublabel/hl/cmd/internal/clicommon"
	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/hhl"
	"github.com/hublabel/hl/labeling"
	"github.com/hublabel/hl/uhhl"
)

var (
	labelGreedy bool
	usp         bool
	orderFile   string
	labelFile   string
	threads     int
	verbose     bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "hhl [flags] graph",
		Short:        "Build a greedy hierarchical hub labeling for a graph",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().BoolVarP(&labelGreedy, "label-greedy", "w", false, "use label-greedy algorithm instead of path-greedy")
	cmd.Flags().BoolVarP(&usp, "usp", "u", false, "assume that shortest paths are unique")
	cmd.Flags().StringVarP(&orderFile, "order", "o", "", "file to write the vertex order")
	cmd.Flags().StringVarP(&labelFile, "labeling", "l", "", "file to write the labeling")
	cmd.Flags().IntVarP(&threads, "threads", "t", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	clicommon.SetupLogging(verbose)
	if threads <= 0 {
		return fmt.Errorf("hhl: --threads must be > 0")
	}

	g, err := clicommon.OpenGraph(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read graph from file %s\n", args[0])
		os.Exit(1)
	}
	clicommon.PrintGraphStats(g)

	lab := labeling.New(g.N())

	var selected []graph.Vertex
	if usp {
		b, err := uhhl.New(g, uhhlKind(), uhhl.WithWorkers(threads))
		if err != nil {
			return fmt.Errorf("hhl: %w", err)
		}
		selected, err = b.Run(lab)
		if err != nil {
			return fmt.Errorf("hhl: %w", err)
		}
	} else {
		b, err := hhl.New(g, hhlKind(), hhl.WithWorkers(threads))
		if err != nil {
			return fmt.Errorf("hhl: %w", err)
		}
		selected, err = b.Run(lab)
		if err != nil {
			return fmt.Errorf("hhl: %w", err)
		}
	}

	clicommon.PrintLabelStats(lab)
	clicommon.WriteLabelingFile(labelFile, lab)
	clicommon.WriteOrderFile(orderFile, selected)

	log.Debug("done")
	return nil
}

func hhlKind() hhl.WeightKind {
	if labelGreedy {
		return hhl.LabelGreedy
	}
	return hhl.PathGreedy
}

func uhhlKind() uhhl.WeightKind {
	if labelGreedy {
		return uhhl.LabelGreedy
	}
	return uhhl.PathGreedy
}
