// cubestate - CLI application for applying scrambles to a virtual 3x3x3 cube.
package main

import (
	"github.com/SeamusWaldron/cubestate/internal/cli"
)

func main() {
	cli.Execute()
}
