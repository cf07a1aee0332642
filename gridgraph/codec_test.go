package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyBlankLines", "\n  \n\n", gridgraph.ErrEmptyGrid},
		{"Ragged", "...\n..\n", gridgraph.ErrNonRectangular},
		{"Glyph", "..x\n", gridgraph.ErrUnknownGlyph},
		{"MultiByteGlyph", "Sé\n..\n", gridgraph.ErrUnknownGlyph},
		{"MultiByteWidth", "...\n.é\n", gridgraph.ErrNonRectangular},
		{"InvalidUTF8", "S\xff\n", gridgraph.ErrUnknownGlyph},
		{"TwoStarts", "S.S\n", gridgraph.ErrDuplicateEndpoint},
		{"TwoEnds", "E..\n..E\n", gridgraph.ErrDuplicateEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseString(tc.src)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_GlyphErrorNamesCharacter checks that a multi-byte cell is reported
// whole, at its cell column rather than its byte offset.
func TestParse_GlyphErrorNamesCharacter(t *testing.T) {
	_, err := gridgraph.ParseString("Sé.\n")
	require.ErrorIs(t, err, gridgraph.ErrUnknownGlyph)
	assert.Contains(t, err.Error(), `'é' at (0,1)`)

	_, err = gridgraph.ParseString("..\n.→\n")
	require.ErrorIs(t, err, gridgraph.ErrUnknownGlyph)
	assert.Contains(t, err.Error(), `'→' at (1,1)`)
}

// TestParse_Layout checks dimensions, endpoints and barrier coordinates.
func TestParse_Layout(t *testing.T) {
	src := `
		S.#.
		.##.
		...E
	`
	g, err := gridgraph.ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, g.Start().Coord())
	assert.Equal(t, gridgraph.Coord{Row: 2, Col: 3}, g.End().Coord())

	var walls []gridgraph.Coord
	for _, n := range g.Nodes() {
		if n.IsBarrier() {
			walls = append(walls, n.Coord())
		}
	}
	want := []gridgraph.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}
	if diff := cmp.Diff(want, walls); diff != "" {
		t.Errorf("barriers mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_RoundTrip renders and re-reads a map; search glyphs read back as empty.
func TestParse_RoundTrip(t *testing.T) {
	g, err := gridgraph.ParseString("S.#\n.#.\n..E\n")
	require.NoError(t, err)
	assert.Equal(t, "S.#\n.#.\n..E\n", g.String())

	g.Node(1, 0).SetState(gridgraph.Path)
	g.Node(0, 1).SetState(gridgraph.Explored)
	rendered := g.String()
	assert.Equal(t, "So#\n*#.\n..E\n", rendered)

	back, err := gridgraph.Parse(strings.NewReader(rendered))
	require.NoError(t, err)
	assert.Equal(t, "S.#\n.#.\n..E\n", back.String())
}
