// Package labeling implements the hub-labeling data structure itself:
// for every vertex, a forward list of (hub, distance) pairs reachable
// going forward, and a reverse list reachable going backward. A
// distance query merges one vertex's forward list with the other's
// reverse list and takes the minimum sum over shared hubs.
package labeling

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hublabel/hl/graph"
)

// Entry is one (hub, distance) pair in a label list.
type Entry struct {
	Hub  graph.Vertex
	Dist graph.Distance
}

// Labeling holds both label lists for every vertex in [0, n).
//
// label[0][v] is v's reverse list (distance FROM a hub TO v); label[1][v]
// is v's forward list (distance FROM v TO a hub). This layout and the
// query merge below are grounded on the original labeling file format
// and query algorithm.
type Labeling struct {
	n     int
	label [2][][]Entry // label[side][v] = sorted-by-hub entries
}

const (
	sideReverse = 0
	sideForward = 1
)

func sideIndex(forward bool) int {
	if forward {
		return sideForward
	}
	return sideReverse
}

// New returns an empty Labeling over n vertices.
func New(n int) *Labeling {
	l := &Labeling{n: n}
	l.label[0] = make([][]Entry, n)
	l.label[1] = make([][]Entry, n)
	return l
}

// N returns the number of vertices.
func (l *Labeling) N() int { return l.n }

// Add appends (hub, d) to v's forward list (forward=true) or reverse
// list (forward=false). Construction algorithms that process hubs in
// increasing order (Akiba, HHL, UHHL) never need an explicit Sort
// afterwards; GHL, which can add hubs out of order, must call Sort.
func (l *Labeling) Add(v graph.Vertex, forward bool, hub graph.Vertex, d graph.Distance) {
	s := sideIndex(forward)
	l.label[s][v] = append(l.label[s][v], Entry{Hub: hub, Dist: d})
}

// Forward returns v's forward label list.
func (l *Labeling) Forward(v graph.Vertex) []Entry { return l.label[sideForward][v] }

// Reverse returns v's reverse label list.
func (l *Labeling) Reverse(v graph.Vertex) []Entry { return l.label[sideReverse][v] }

// Query returns the shortest distance from u to v when forward is
// true (following forward arcs), or the shortest distance from v to u
// when forward is false, by merging u's forward list with v's reverse
// list (u's reverse list with v's forward list when forward is false),
// taking the minimum sum over hubs common to both. It returns
// graph.Infinity if no common hub covers the pair.
//
// Both label lists must already be sorted by Hub (true immediately
// after construction by Akiba/HHL/UHHL, or after an explicit Sort for
// builders that do not add hubs in increasing order).
func (l *Labeling) Query(u, v graph.Vertex, forward bool) graph.Distance {
	a := l.label[sideIndex(forward)][u]
	b := l.label[sideIndex(!forward)][v]

	best := graph.Infinity
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Hub < b[j].Hub:
			i++
		case a[i].Hub > b[j].Hub:
			j++
		default:
			if sum := a[i].Dist + b[j].Dist; sum < best {
				best = sum
			}
			i++
			j++
		}
	}
	return best
}

// Sort stably sorts every label list by Hub, making Query's linear
// merge valid after out-of-order Add calls.
func (l *Labeling) Sort() {
	for s := 0; s < 2; s++ {
		for v := 0; v < l.n; v++ {
			entries := l.label[s][v]
			sort.SliceStable(entries, func(i, j int) bool { return entries[i].Hub < entries[j].Hub })
		}
	}
}

// Clear empties every label list while keeping the vertex count.
func (l *Labeling) Clear() {
	for s := 0; s < 2; s++ {
		for v := 0; v < l.n; v++ {
			l.label[s][v] = l.label[s][v][:0]
		}
	}
}

// AverageSize returns the mean label list length, counting both sides
// of every vertex (matching the original's get_avg, which divides the
// combined forward+reverse total by n and by 2).
func (l *Labeling) AverageSize() float64 {
	if l.n == 0 {
		return 0
	}
	total := 0
	for s := 0; s < 2; s++ {
		for v := 0; v < l.n; v++ {
			total += len(l.label[s][v])
		}
	}
	return float64(total) / float64(l.n) / 2
}

// MaxSize returns the longest label list length over both sides of
// every vertex.
func (l *Labeling) MaxSize() int {
	max := 0
	for s := 0; s < 2; s++ {
		for v := 0; v < l.n; v++ {
			if n := len(l.label[s][v]); n > max {
				max = n
			}
		}
	}
	return max
}

// Write serializes l in the original text format: a first line with n,
// then for every vertex and side (reverse then forward) a line
// "<size> h1 d1 h2 d2 ...".
func (l *Labeling) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, l.n); err != nil {
		return err
	}
	for v := 0; v < l.n; v++ {
		for s := 0; s < 2; s++ {
			entries := l.label[s][v]
			if _, err := fmt.Fprint(bw, len(entries)); err != nil {
				return err
			}
			for _, e := range entries {
				if _, err := fmt.Fprintf(bw, " %d %d", int(e.Hub), int64(e.Dist)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Read parses the format written by Write. If checkN is non-zero, it
// is compared against the parsed vertex count and an error is returned
// on mismatch, mirroring the original's optional consistency check.
func Read(r io.Reader, checkN int) (*Labeling, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("labeling: read vertex count: %w", io.ErrUnexpectedEOF)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("labeling: parse vertex count: %w", err)
	}
	if checkN != 0 && n != checkN {
		return nil, fmt.Errorf("labeling: vertex count %d does not match expected %d", n, checkN)
	}

	l := New(n)
	for v := 0; v < n; v++ {
		for s := 0; s < 2; s++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("labeling: unexpected end of input at vertex %d side %d: %w", v, s, io.ErrUnexpectedEOF)
			}
			fields := strings.Fields(sc.Text())
			if len(fields) == 0 {
				return nil, fmt.Errorf("labeling: empty label line at vertex %d side %d", v, s)
			}
			size, err := strconv.Atoi(fields[0])
			if err != nil || len(fields) != 1+2*size {
				return nil, fmt.Errorf("labeling: malformed label line at vertex %d side %d", v, s)
			}
			entries := make([]Entry, size)
			for i := 0; i < size; i++ {
				hub, err1 := strconv.Atoi(fields[1+2*i])
				dist, err2 := strconv.ParseInt(fields[2+2*i], 10, 64)
				if err1 != nil || err2 != nil {
					return nil, fmt.Errorf("labeling: malformed entry at vertex %d side %d", v, s)
				}
				entries[i] = Entry{Hub: graph.Vertex(hub), Dist: graph.Distance(dist)}
			}
			l.label[s][v] = entries
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("labeling: read: %w", err)
	}
	return l, nil
}
