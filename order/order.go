// Package order provides vertex-order file I/O and ordering heuristics
// used to seed hub-labeling construction: the order in which vertices
// are promoted to hubs strongly affects resulting label sizes.
package order

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hublabel/hl/graph"
)

// Write serializes order in the original text format: a first line
// with len(order), then one vertex id per line.
func Write(w io.Writer, order []graph.Vertex) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(order)); err != nil {
		return err
	}
	for _, v := range order {
		if _, err := fmt.Fprintln(bw, int(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses the format written by Write.
func Read(r io.Reader) ([]graph.Vertex, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("order: read count: %w", io.ErrUnexpectedEOF)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("order: parse count: %w", err)
	}

	result := make([]graph.Vertex, 0, n)
	for len(result) < n {
		if !sc.Scan() {
			return nil, fmt.Errorf("order: read vertex %d: %w", len(result), io.ErrUnexpectedEOF)
		}
		v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, fmt.Errorf("order: parse vertex: %w", err)
		}
		result = append(result, graph.Vertex(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("order: read: %w", err)
	}
	return result, nil
}

// ByDegree returns vertices sorted by strictly decreasing total degree
// (ties broken by decreasing vertex id), the ordering heuristic used by
// the standalone "degree" driver: high-degree vertices tend to make
// good early hubs since they cover many pairs.
//
// The tie-break direction matches sorting (degree, vertex) pairs
// ascending and then reversing the whole sequence, rather than sorting
// descending directly: the two are not the same when degrees repeat.
func ByDegree(g *graph.Graph) []graph.Vertex {
	result := make([]graph.Vertex, g.N())
	for v := 0; v < g.N(); v++ {
		result[v] = graph.Vertex(v)
	}
	sort.SliceStable(result, func(i, j int) bool {
		di, dj := g.Degree(result[i]), g.Degree(result[j])
		if di != dj {
			return di > dj
		}
		return result[i] > result[j]
	})
	return result
}
