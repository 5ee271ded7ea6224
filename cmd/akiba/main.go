// Command akiba builds a hub labeling from a fixed vertex order using
// pruned Dijkstra (Akiba's algorithm) over a DIMACS or METIS graph file.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hublabel/hl/akiba"
	"github.com/hublabel/hl/cmd/internal/clicommon"
	"github.com/hublabel/hl/labeling"
	"github.com/hublabel/hl/order"
)

var (
	orderFile string
	labelFile string
	verbose   bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "akiba -o ordering [flags] graph",
		Short:        "Build a hub labeling from a fixed vertex order",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringVarP(&orderFile, "order", "o", "", "file with the vertex order (required)")
	cmd.Flags().StringVarP(&labelFile, "labeling", "l", "", "file to write the labeling")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")
	_ = cmd.MarkFlagRequired("order")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	clicommon.SetupLogging(verbose)

	g, err := clicommon.OpenGraph(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read graph from file %s\n", args[0])
		os.Exit(1)
	}
	clicommon.PrintGraphStats(g)

	of, err := os.Open(orderFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read vertex order from file %s\n", orderFile)
		os.Exit(1)
	}
	vertexOrder, err := order.Read(of)
	of.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read vertex order from file %s\n", orderFile)
		os.Exit(1)
	}
	if len(vertexOrder) != g.N() {
		fmt.Fprintln(os.Stderr, "Order is incompatible with graph.")
		os.Exit(1)
	}

	lab := labeling.New(g.N())
	if err := akiba.New(g).Run(vertexOrder, lab); err != nil {
		return fmt.Errorf("akiba: %w", err)
	}

	clicommon.PrintLabelStats(lab)
	clicommon.WriteLabelingFile(labelFile, lab)

	log.Debug("done")
	return nil
}
