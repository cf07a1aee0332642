package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse reads an ASCII map, one grid row per line:
//
//	.  empty        #  barrier
//	S  start        E  end
//	o  explored     *  path      (both read back as empty)
//
// Leading/trailing whitespace and blank lines are ignored. Every row must
// have the same width, and S and E may each appear at most once.
// Neighbours are not computed; call PrepareRun before searching.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: row %d is not valid UTF-8", ErrUnknownGlyph, i)
		}
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, n, cols)
		}
	}

	g, err := NewGrid(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		c := 0
		for _, ch := range line {
			n := g.nodes[r][c]
			c++
			switch ch {
			case '.', 'o', '*':
				// empty
			case '#':
				n.SetState(Barrier)
			case 'S':
				if g.start != nil {
					return nil, fmt.Errorf("%w: second start at %v", ErrDuplicateEndpoint, n.Coord())
				}
				n.SetState(Start)
				g.start = n
			case 'E':
				if g.end != nil {
					return nil, fmt.Errorf("%w: second end at %v", ErrDuplicateEndpoint, n.Coord())
				}
				n.SetState(End)
				g.end = n
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownGlyph, ch, n.Coord())
			}
		}
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// String renders the grid with the glyphs accepted by Parse, one row per
// line, each line newline-terminated.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for _, row := range g.nodes {
		for _, n := range row {
			b.WriteByte(n.State().Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
