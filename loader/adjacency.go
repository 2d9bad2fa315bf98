// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
)

const unknownWeight = "?"

type adjEntry struct {
	dest   int
	weight string
}

// ReadAdjacency parses the line-oriented adjacency format into a directed
// graph. Trailing blank lines are ignored.
func ReadAdjacency(r io.Reader) (*core.Graph, error) {
	var rows [][]adjEntry
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		entries, err := parseAdjLine(text, len(rows))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
		}
		rows = append(rows, entries)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for i := range rows {
		if err := g.AddVertex(strconv.Itoa(i), core.WithAttr("label", i)); err != nil {
			return nil, err
		}
	}
	for i, entries := range rows {
		for _, e := range entries {
			if e.dest >= len(rows) {
				continue
			}
			var opts []core.EdgeOption
			if e.weight != unknownWeight {
				w, _ := strconv.ParseFloat(e.weight, 64)
				opts = append(opts, core.WithWeight(w))
			}
			if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(e.dest), opts...); err != nil {
				return nil, fmt.Errorf("%w: vertex %d: %w", ErrFormat, i, err)
			}
		}
	}

	return g, nil
}

func parseAdjLine(text string, want int) ([]adjEntry, error) {
	head, tail, ok := strings.Cut(text, ":")
	if !ok {
		return nil, fmt.Errorf("missing ':' in %q", text)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || idx != want {
		return nil, fmt.Errorf("index %q, want %d", head, want)
	}
	tail = strings.TrimSpace(tail)
	if tail == "" {
		return nil, nil
	}

	var out []adjEntry
	for _, pair := range strings.Split(tail, ",") {
		dest, w, ok := strings.Cut(strings.TrimSpace(pair), "|")
		if !ok {
			return nil, fmt.Errorf("entry %q is not dest|weight", pair)
		}
		d, err := strconv.Atoi(dest)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("bad destination %q", dest)
		}
		if w != unknownWeight {
			if _, err := strconv.ParseFloat(w, 64); err != nil {
				return nil, fmt.Errorf("bad weight %q", w)
			}
		}
		out = append(out, adjEntry{dest: d, weight: w})
	}

	return out, nil
}
