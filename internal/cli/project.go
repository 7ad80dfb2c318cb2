package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
)

// gridOutput is the structured form of a projected grid.
type gridOutput struct {
	Faces map[string][3][3]cubestate.Color `json:"faces" yaml:"faces"`
	Phase string                           `json:"phase" yaml:"phase"`
}

func newGridOutput(g cubestate.Grid) gridOutput {
	out := gridOutput{
		Faces: make(map[string][3][3]cubestate.Color, cubestate.NumFaces),
		Phase: g.DetectPhase().String(),
	}
	for face := cubestate.CubeFace(0); face < cubestate.NumFaces; face++ {
		out.Faces[face.String()] = g[face]
	}
	return out
}

// NewProjectCommand creates the project command.
func NewProjectCommand(opts *RootOptions) *cobra.Command {
	var (
		cp, co, ep, eo []int
		format         string
		color          bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project cp/co/ep/eo vectors onto stickers",
		Long: `Project a cubie-level state given as four vectors onto the 54 stickers.

Omitted vectors default to the solved values. Vector lengths must be
8 (cp, co) and 12 (ep, eo).`,
		Example: `  cubestate project --cp 0,2,6,3,4,1,5,7 --co 0,1,2,0,0,2,1,0 --ep 0,5,9,3,4,2,6,7,8,1,10,11
  cubestate project --eo 0,0,0,0,0,0,1,1,0,0,0,0 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			solved := cubestate.Solved
			if !cmd.Flags().Changed("cp") {
				cp = solved.CP[:]
			}
			if !cmd.Flags().Changed("co") {
				co = solved.CO[:]
			}
			if !cmd.Flags().Changed("ep") {
				ep = solved.EP[:]
			}
			if !cmd.Flags().Changed("eo") {
				eo = solved.EO[:]
			}

			grid, err := cubestate.ProjectVectors(cp, co, ep, eo)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != FormatText {
				return writeStructured(out, format, newGridOutput(grid))
			}

			if color {
				fmt.Fprint(out, render.Net(grid, opts.renderOptions().Palette))
			} else {
				fmt.Fprint(out, grid.String())
			}
			fmt.Fprintf(out, "Phase: %s\n", grid.DetectPhase().DisplayName())
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&cp, "cp", nil, "Corner permutation (8 values)")
	cmd.Flags().IntSliceVar(&co, "co", nil, "Corner orientation (8 values)")
	cmd.Flags().IntSliceVar(&ep, "ep", nil, "Edge permutation (12 values)")
	cmd.Flags().IntSliceVar(&eo, "eo", nil, "Edge orientation (12 values)")
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&color, "color", "c", false, "Print a colored net instead of letters")

	return cmd
}
