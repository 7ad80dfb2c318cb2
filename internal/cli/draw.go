package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
)

// NewDrawCommand creates the draw command.
func NewDrawCommand(opts *RootOptions) *cobra.Command {
	var (
		outPath   string
		id        string
		size      int
		elevation float64
		azimuth   float64
	)

	cmd := &cobra.Command{
		Use:   "draw [notation...]",
		Short: "Draw the cube after a scramble",
		Long: `Draw the cube after applying a scramble (or a stored scramble with --id).

With --out, write a 3D view of the U, F and R faces as an SVG file.
Without it, print a colored net to the terminal.`,
		Example: `  cubestate draw "R U R' U'"
  cubestate draw --out cube.svg --size 600 "R U F' L2 D B' R2 U' F D2"
  cubestate draw --id last --out last.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var state cubestate.State
			if id != "" {
				db, err := opts.openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				record, err := loadScramble(db, id)
				if err != nil {
					return err
				}
				state = record.State
			} else {
				var err error
				state, err = cubestate.Scramble(notationArg(args), opts.scrambleOptions(false)...)
				if err != nil {
					return err
				}
			}

			grid := cubestate.Project(state)
			renderOpts := opts.renderOptions()
			if cmd.Flags().Changed("size") {
				renderOpts.Size = size
			}
			if cmd.Flags().Changed("elevation") {
				renderOpts.Elevation = elevation
			}
			if cmd.Flags().Changed("azimuth") {
				renderOpts.Azimuth = azimuth
			}

			out := cmd.OutOrStdout()
			if outPath == "" {
				fmt.Fprint(out, render.Net(grid, renderOpts.Palette))
				return nil
			}

			if err := render.Save(outPath, grid, renderOpts); err != nil {
				return err
			}
			opts.logger.Debug("cube drawn",
				zap.String("path", outPath),
				zap.Int("size", renderOpts.Size),
				zap.Float64("elevation", renderOpts.Elevation),
				zap.Float64("azimuth", renderOpts.Azimuth),
			)
			fmt.Fprintf(out, "Drawing saved to: %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write an SVG file instead of printing a net")
	cmd.Flags().StringVar(&id, "id", "", "Draw a stored scramble (an ID or \"last\")")
	cmd.Flags().IntVar(&size, "size", 0, "Image size in pixels (default from config)")
	cmd.Flags().Float64Var(&elevation, "elevation", 0, "View elevation in degrees (default from config)")
	cmd.Flags().Float64Var(&azimuth, "azimuth", 0, "View azimuth in degrees (default from config)")

	return cmd
}
