// Package clicommon holds the small pieces of plumbing shared by the
// cmd/* drivers: graph loading, logging setup, and the "Graph has N
// vertices and M arcs" / "Average label size" / "Maximum label size"
// stdout lines every driver prints in the same wording.
package clicommon

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/hublabel/hl/graph"
	"github.com/hublabel/hl/labeling"
	"github.com/hublabel/hl/order"
)

// SetupLogging configures logrus verbosity for a driver invocation.
// Library packages (graph, hhl, akiba, ...) never log themselves; only
// the cmd/* binaries do, and only at -v.
func SetupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// OpenGraph reads a graph file, trying the DIMACS shortest-path format
// first and falling back to METIS if the DIMACS parse fails for any
// reason. No driver exposes a format flag. If both parses fail, the
// DIMACS error is returned.
func OpenGraph(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open graph file %s: %w", path, err)
	}
	g, dimacsErr := graph.ReadDIMACS(bytes.NewReader(data), false)
	if dimacsErr == nil {
		return g, nil
	}
	g, metisErr := graph.ReadMETIS(bytes.NewReader(data))
	if metisErr == nil {
		return g, nil
	}
	return nil, fmt.Errorf("parse graph file %s: %w", path, dimacsErr)
}

// PrintGraphStats prints the "Graph has N vertices and M arcs" line.
func PrintGraphStats(g *graph.Graph) {
	fmt.Printf("Graph has %d vertices and %d arcs\n", g.N(), g.M())
}

// PrintLabelStats prints the "Average label size" / "Maximum label
// size" lines common to every driver that produces or loads a labeling.
func PrintLabelStats(lab *labeling.Labeling) {
	fmt.Printf("Average label size %v\n", lab.AverageSize())
	fmt.Printf("Maximum label size %v\n", lab.MaxSize())
}

// WriteLabelingFile writes lab to path, warning on stderr (not exiting)
// if the write fails, matching the original drivers' non-fatal
// "Unable to write labels to file" behavior.
func WriteLabelingFile(path string, lab *labeling.Labeling) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to write labels to file %s\n", path)
		return
	}
	defer f.Close()
	if err := lab.Write(f); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to write labels to file %s\n", path)
	}
}

// WriteOrderFile writes order to path, warning on stderr (not exiting)
// if the write fails, matching the original drivers' non-fatal
// "Unable to write order to file" behavior.
func WriteOrderFile(path string, vertexOrder []graph.Vertex) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to write order to file %s\n", path)
		return
	}
	defer f.Close()
	if err := order.Write(f, vertexOrder); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to write order to file %s\n", path)
	}
}
