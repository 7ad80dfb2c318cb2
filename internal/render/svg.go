package render

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/SeamusWaldron/cubestate"
)

//go:embed cube.svg.tmpl
var svgTemplate string

var svgTmpl = template.Must(template.New("cube").Parse(svgTemplate))

// Options controls the 3D drawing.
type Options struct {
	Size      int     // image width and height in pixels
	Elevation float64 // degrees above the horizon
	Azimuth   float64 // degrees around the vertical axis, from the front face towards the right
	Palette   Palette
}

// DefaultOptions returns a 480px view from above the front-right corner.
func DefaultOptions() Options {
	return Options{
		Size:      480,
		Elevation: 20,
		Azimuth:   30,
		Palette:   DefaultPalette(),
	}
}

type vec [3]float64

func (a vec) add(b vec) vec       { return vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a vec) scale(k float64) vec { return vec{a[0] * k, a[1] * k, a[2] * k} }
func (a vec) dot(b vec) float64   { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// faceAxes gives the outward normal, the column direction and the row
// direction of every face (x right, y up, z towards the front).
var faceAxes = [cubestate.NumFaces][3]vec{
	cubestate.CubeFaceU: {{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
	cubestate.CubeFaceD: {{0, -1, 0}, {1, 0, 0}, {0, 0, -1}},
	cubestate.CubeFaceR: {{1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
	cubestate.CubeFaceL: {{-1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
	cubestate.CubeFaceF: {{0, 0, 1}, {1, 0, 0}, {0, -1, 0}},
	cubestate.CubeFaceB: {{0, 0, -1}, {-1, 0, 0}, {0, -1, 0}},
}

// stickerInset shrinks each sticker so the black body shows between them.
const stickerInset = 0.92

type camera struct {
	view, right, up vec
}

func newCamera(elevation, azimuth float64) camera {
	e := elevation * math.Pi / 180
	a := azimuth * math.Pi / 180
	return camera{
		view:  vec{math.Cos(e) * math.Sin(a), math.Sin(e), math.Cos(e) * math.Cos(a)},
		right: vec{math.Cos(a), 0, -math.Sin(a)},
		up:    vec{-math.Sin(e) * math.Sin(a), math.Cos(e), -math.Sin(e) * math.Cos(a)},
	}
}

type sticker struct {
	Face   string
	Row    int
	Col    int
	Points string
	Fill   string
	depth  float64
}

// stickers returns the visible stickers of g, farthest first.
func stickers(g cubestate.Grid, opts Options) ([]sticker, error) {
	cam := newCamera(opts.Elevation, opts.Azimuth)
	size := float64(opts.Size)
	scale := 0.95 * size / (2 * math.Sqrt(3))
	half := stickerInset / 3

	var out []sticker
	for face := cubestate.CubeFace(0); face < cubestate.NumFaces; face++ {
		normal, right, down := faceAxes[face][0], faceAxes[face][1], faceAxes[face][2]
		if normal.dot(cam.view) <= 1e-9 {
			continue
		}

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				fill, err := opts.Palette.Hex(g[face][row][col])
				if err != nil {
					return nil, fmt.Errorf("%s[%d][%d]: %w", face, row, col, err)
				}

				center := normal.
					add(right.scale(float64(col-1) * 2 / 3)).
					add(down.scale(float64(row-1) * 2 / 3))

				var pts []string
				for _, corner := range [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
					p := center.add(right.scale(corner[0] * half)).add(down.scale(corner[1] * half))
					x := size/2 + p.dot(cam.right)*scale
					y := size/2 - p.dot(cam.up)*scale
					pts = append(pts, fmt.Sprintf("%.2f,%.2f", x, y))
				}

				out = append(out, sticker{
					Face:   face.String(),
					Row:    row,
					Col:    col,
					Points: strings.Join(pts, " "),
					Fill:   fill,
					depth:  center.dot(cam.view),
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].depth < out[j].depth })
	return out, nil
}

// SVG writes an orthographic 3D view of g to w.
func SVG(w io.Writer, g cubestate.Grid, opts Options) error {
	if opts.Size <= 0 {
		return fmt.Errorf("render: size must be positive, got %d", opts.Size)
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}

	list, err := stickers(g, opts)
	if err != nil {
		return err
	}

	data := struct {
		Size     int
		Stroke   string
		Stickers []sticker
	}{
		Size:     opts.Size,
		Stroke:   fmt.Sprintf("%.2f", math.Max(1, float64(opts.Size)/240)),
		Stickers: list,
	}

	if err := svgTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing svg template: %w", err)
	}
	return nil
}

// Save writes the SVG view of g to path, creating parent directories.
func Save(path string, g cubestate.Grid, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := SVG(f, g, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
