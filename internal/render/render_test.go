package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestate"
)

func TestSVGDefaultViewShowsThreeFaces(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, cubestate.SolvedGrid(), DefaultOptions()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Equal(t, 27, strings.Count(out, "<polygon"))
	assert.Equal(t, 9, strings.Count(out, `data-face="U"`))
	assert.Equal(t, 9, strings.Count(out, `data-face="R"`))
	assert.Equal(t, 9, strings.Count(out, `data-face="F"`))
	assert.NotContains(t, out, `data-face="D"`)
	assert.Contains(t, out, `width="480"`)
}

func TestSVGTopView(t *testing.T) {
	opts := DefaultOptions()
	opts.Elevation = 90

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, cubestate.SolvedGrid(), opts))
	assert.Equal(t, 9, strings.Count(buf.String(), "<polygon"))
}

func TestSVGUsesPalette(t *testing.T) {
	s, err := cubestate.Scramble("R")
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Palette = opts.Palette.WithOverrides(map[cubestate.Color]string{cubestate.Green: "#123456"})

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, cubestate.Project(s), opts))

	out := buf.String()
	// After R the right column of U shows the front color.
	assert.Contains(t, out, `data-face="U" data-row="0" data-col="2" points=`)
	assert.Contains(t, out, `fill="#123456"`)
	assert.Contains(t, out, `fill="#FFD500"`, "yellow moves up onto F")
}

func TestSVGStickerPositions(t *testing.T) {
	list, err := stickers(cubestate.SolvedGrid(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, list, 27)

	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].depth, list[i].depth)
	}
	for _, s := range list {
		for _, pt := range strings.Fields(s.Points) {
			var x, y float64
			_, err := fmt.Sscanf(pt, "%f,%f", &x, &y)
			require.NoError(t, err)
			assert.True(t, x >= 0 && x <= 480 && y >= 0 && y <= 480, "point %s out of frame", pt)
		}
	}
}

func TestSVGRejectsUnknownColor(t *testing.T) {
	g := cubestate.SolvedGrid()
	g[cubestate.CubeFaceF][1][1] = cubestate.Color(42)

	var buf bytes.Buffer
	err := SVG(&buf, g, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.Zero(t, buf.Len(), "nothing is written on error")
}

func TestSVGRejectsBadSize(t *testing.T) {
	opts := DefaultOptions()
	opts.Size = 0
	assert.Error(t, SVG(&bytes.Buffer{}, cubestate.SolvedGrid(), opts))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cube.svg")
	require.NoError(t, Save(path, cubestate.SolvedGrid(), DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")
}

func TestSaveRemovesFileOnError(t *testing.T) {
	g := cubestate.SolvedGrid()
	g[cubestate.CubeFaceU][0][0] = cubestate.Color(42)

	path := filepath.Join(t.TempDir(), "cube.svg")
	require.Error(t, Save(path, g, DefaultOptions()))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNet(t *testing.T) {
	out := Net(cubestate.SolvedGrid(), DefaultPalette())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "      "))
	assert.NotContains(t, out, "??")

	g := cubestate.SolvedGrid()
	g[cubestate.CubeFaceD][2][2] = cubestate.Color(42)
	assert.Contains(t, Net(g, DefaultPalette()), "??")
}

func TestPaletteWithOverridesCopies(t *testing.T) {
	base := DefaultPalette()
	over := base.WithOverrides(map[cubestate.Color]string{cubestate.Red: "#FF0000"})

	assert.Equal(t, "#FF0000", over[cubestate.Red])
	assert.Equal(t, "#C41E3A", base[cubestate.Red])
	assert.Len(t, over, 6)
}
