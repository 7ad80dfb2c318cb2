package cubestate

import "fmt"

// Color represents a sticker color. Its value equals the index of the face
// that shows it when solved, so a Color doubles as an index into
// CanonicalPalette order.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Red    Color = 2 // Right face when solved
	Orange Color = 3 // Left face when solved
	Green  Color = 4 // Front face when solved
	Blue   Color = 5 // Back face when solved
)

// Colors lists all colors in index order.
var Colors = []Color{White, Yellow, Red, Orange, Green, Blue}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Name returns the lower-case color name, e.g. "white".
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// ParseColor parses a color name as returned by Name.
func ParseColor(name string) (Color, error) {
	for _, c := range Colors {
		if c.Name() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("cubestate: unknown color %q", name)
}

// MarshalText encodes the color as its name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CubeFace indexes the faces of a facelet Grid.
// This is distinct from Face which is used for move notation.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceR CubeFace = 2 // Right (Red)
	CubeFaceL CubeFace = 3 // Left (Orange)
	CubeFaceF CubeFace = 4 // Front (Green)
	CubeFaceB CubeFace = 5 // Back (Blue)
)

// NumFaces is the number of faces in a Grid.
const NumFaces = 6

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	default:
		return "?"
	}
}

// CanonicalPalette gives the solved color of every face, indexed by CubeFace.
var CanonicalPalette = [NumFaces]Color{
	CubeFaceU: White,
	CubeFaceD: Yellow,
	CubeFaceR: Red,
	CubeFaceL: Orange,
	CubeFaceF: Green,
	CubeFaceB: Blue,
}
