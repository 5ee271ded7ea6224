// Command degree orders the vertices of a graph by decreasing total
// degree, a cheap ordering heuristic suitable as input to akiba.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hublabel/hl/cmd/internal/clicommon"
	"github.com/hublabel/hl/order"
)

var (
	orderFile string
	verbose   bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "degree -o ordering graph",
		Short:        "Order vertices by decreasing degree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringVarP(&orderFile, "order", "o", "", "file with the vertex order (required)")
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

	vertexOrder := order.ByDegree(g)
	clicommon.WriteOrderFile(orderFile, vertexOrder)

	log.Debug("done")
	return nil
}
