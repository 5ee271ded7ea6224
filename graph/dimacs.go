package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedInput is returned by the file readers when the input does
// not parse as the expected format.
var ErrMalformedInput = fmt.Errorf("graph: malformed input")

// ReadDIMACS parses the DIMACS shortest-path challenge format:
//
//	c comment lines, ignored
//	p sp <n> <m>
//	a <u> <v> <w>       (one per arc, 1-based vertex ids)
//
// When undirected is true each "a" line adds a bidirectional edge;
// otherwise it adds a directed arc u -> v.
func ReadDIMACS(r io.Reader, undirected bool) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var b *Builder
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) < 4 {
				return nil, fmt.Errorf("graph: parse DIMACS problem line: %w", ErrMalformedInput)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("graph: parse DIMACS vertex count: %w", err)
			}
			b = NewBuilder(n)
		case "a":
			if b == nil {
				return nil, fmt.Errorf("graph: DIMACS arc before problem line: %w", ErrMalformedInput)
			}
			if len(fields) < 4 {
				return nil, fmt.Errorf("graph: parse DIMACS arc line: %w", ErrMalformedInput)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			w, err3 := strconv.ParseInt(fields[3], 10, 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("graph: parse DIMACS arc fields: %w", ErrMalformedInput)
			}
			if err := b.AddArc(Vertex(u-1), Vertex(v-1), Distance(w), undirected); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: read DIMACS: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("graph: empty DIMACS input: %w", ErrMalformedInput)
	}
	return b.Build()
}

// WriteDIMACS writes g in the same format ReadDIMACS understands, with
// 1-based vertex ids and one "a" line per stored forward-capable arc.
// A bidirectional edge is stored at both endpoints and is therefore
// written twice, once in each direction; ReadDIMACS with
// undirected=false merges the two lines back into the same edge.
func WriteDIMACS(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	m := 0
	for v := 0; v < g.N(); v++ {
		m += len(g.Forward(Vertex(v)))
	}
	if _, err := fmt.Fprintf(bw, "p sp %d %d\n", g.N(), m); err != nil {
		return err
	}
	for v := 0; v < g.N(); v++ {
		for _, a := range g.Forward(Vertex(v)) {
			if _, err := fmt.Fprintf(bw, "a %d %d %d\n", v+1, int(a.Head)+1, int64(a.Length)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadMETIS parses the METIS graph format:
//
//	<n> <m> [<fmt> [<ncon>]]
//	<neighbor1> <neighbor2> ... (one line per vertex, 1-based ids)
//
// fmt is a 3-digit mask ijk: i (hundreds) flags a leading vertex-size
// field, j (tens) flags ncon vertex-weight fields (ncon defaults to 1
// when j is set and no ncon header field is given), k (units) flags
// that each adjacency entry is a (neighbor, weight) pair rather than a
// bare neighbor id. Size and vertex-weight fields are skipped, not
// interpreted: this reader only consumes edge structure and, when k=1,
// edge weights. All edges are treated as undirected, matching METIS's
// own semantics (each edge is listed from both endpoints, so an arc is
// only added once, from the lower-numbered endpoint).
func ReadMETIS(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("graph: empty METIS input: %w", ErrMalformedInput)
	}
	header := strings.Fields(strings.TrimSpace(sc.Text()))
	if len(header) < 2 {
		return nil, fmt.Errorf("graph: parse METIS header: %w", ErrMalformedInput)
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("graph: parse METIS vertex count: %w", err)
	}

	fmtMask, skip := 0, 0
	if len(header) >= 3 {
		fmtMask, err = strconv.Atoi(header[2])
		if err != nil {
			return nil, fmt.Errorf("graph: parse METIS fmt: %w", ErrMalformedInput)
		}
		if fmtMask%10 > 1 || (fmtMask/10)%10 > 1 || fmtMask > 111 {
			return nil, fmt.Errorf("graph: invalid METIS fmt %03d: %w", fmtMask, ErrMalformedInput)
		}
		iFlag, jFlag := 0, 0
		if fmtMask >= 100 {
			iFlag = 1
		}
		if (fmtMask/10)%10 >= 1 {
			jFlag = 1
		}
		skip = iFlag + jFlag
	}
	if len(header) >= 4 {
		if (fmtMask/10)%10 < 1 {
			return nil, fmt.Errorf("graph: METIS ncon given without vertex-weight fmt flag: %w", ErrMalformedInput)
		}
		ncon, err := strconv.Atoi(header[3])
		if err != nil {
			return nil, fmt.Errorf("graph: parse METIS ncon: %w", ErrMalformedInput)
		}
		iFlag := 0
		if fmtMask >= 100 {
			iFlag = 1
		}
		skip = iFlag + ncon
	}
	weighted := fmtMask%10 == 1

	b := NewBuilder(n)
	v := 0
	for sc.Scan() && v < n {
		fields := strings.Fields(strings.TrimSpace(sc.Text()))
		if len(fields) < skip {
			return nil, fmt.Errorf("graph: METIS vertex %d line shorter than fmt header promises: %w", v+1, ErrMalformedInput)
		}
		rest := fields[skip:]
		if weighted && len(rest)%2 != 0 {
			return nil, fmt.Errorf("graph: METIS vertex %d has an unpaired edge weight: %w", v+1, ErrMalformedInput)
		}
		step := 1
		if weighted {
			step = 2
		}
		for i := 0; i < len(rest); i += step {
			head, err := strconv.Atoi(rest[i])
			if err != nil {
				return nil, fmt.Errorf("graph: parse METIS adjacency: %w", ErrMalformedInput)
			}
			length := Distance(1)
			if weighted {
				wv, err := strconv.ParseInt(rest[i+1], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("graph: parse METIS edge weight: %w", ErrMalformedInput)
				}
				length = Distance(wv)
			}
			u, w := Vertex(v), Vertex(head-1)
			if u < w {
				if err := b.AddArc(u, w, length, true); err != nil {
					return nil, err
				}
			}
		}
		v++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: read METIS: %w", err)
	}
	return b.Build()
}
