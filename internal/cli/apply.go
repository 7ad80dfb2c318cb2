package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

// applyResult is the output of the apply command.
type applyResult struct {
	ID        string          `json:"id,omitempty" yaml:"id,omitempty"`
	From      string          `json:"from,omitempty" yaml:"from,omitempty"`
	Notation  string          `json:"notation" yaml:"notation"`
	MoveCount int             `json:"move_count" yaml:"move_count"`
	State     cubestate.State `json:"state" yaml:"state"`
	Solved    bool            `json:"solved" yaml:"solved"`
	Legal     bool            `json:"legal" yaml:"legal"`
	Phase     string          `json:"phase" yaml:"phase"`
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(opts *RootOptions) *cobra.Command {
	var (
		format   string
		showNet  bool
		save     bool
		validate bool
		simplify bool
		from     string
	)

	cmd := &cobra.Command{
		Use:   "apply [notation...]",
		Short: "Apply a scramble and print the resulting state",
		Long: `Apply a move sequence such as "R U R' U'" to a solved cube (or to a
stored state with --from) and print the resulting cp/co/ep/eo vectors.

Moves are case-sensitive: U D L R F B, optionally followed by 2 or '.
An empty sequence prints the starting state.`,
		Example: `  cubestate apply "R U R' U'"
  cubestate apply R U F2 --format json
  cubestate apply --save --net "R U F' L2 D B' R2 U' F D2"
  cubestate apply --from last "D2 F' U R2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			moves, err := cubestate.ParseMoves(notationArg(args))
			if err != nil {
				return err
			}
			if simplify {
				moves = cubestate.Simplify(moves)
			}
			notation := cubestate.FormatMoves(moves)
			scrambleOpts := opts.scrambleOptions(validate)

			var db *storage.DB
			if save || from != "" {
				db, err = opts.openDB()
				if err != nil {
					return err
				}
				defer db.Close()
			}

			var base *storage.Scramble
			if from != "" {
				base, err = loadScramble(db, from)
				if err != nil {
					return err
				}
				scrambleOpts = append(scrambleOpts, cubestate.WithBase(base.State))
			}

			state, err := cubestate.Scramble(notation, scrambleOpts...)
			if err != nil {
				return err
			}

			grid := cubestate.Project(state)
			result := applyResult{
				Notation:  notation,
				MoveCount: len(moves),
				State:     state,
				Solved:    state.IsSolved(),
				Legal:     state.IsLegal(),
				Phase:     grid.DetectPhase().String(),
			}
			if base != nil {
				result.From = base.ScrambleID
			}

			opts.logger.Debug("scramble applied",
				zap.String("from", result.From),
				zap.String("notation", result.Notation),
				zap.Int("moves", result.MoveCount),
				zap.Bool("solved", result.Solved),
			)

			if save {
				id, err := storage.NewScrambleRepository(db).CreateFrom(base, notation, state)
				if err != nil {
					return err
				}
				result.ID = id
				opts.logger.Debug("scramble saved", zap.String("id", id))
			}

			out := cmd.OutOrStdout()
			if format != FormatText {
				return writeStructured(out, format, result)
			}

			printApplyResult(out, result)
			if showNet {
				fmt.Fprintln(out)
				fmt.Fprint(out, render.Net(grid, opts.renderOptions().Palette))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&showNet, "net", "n", false, "Also print the colored sticker net")
	cmd.Flags().BoolVarP(&save, "save", "s", false, "Store the scramble in the history database")
	cmd.Flags().BoolVar(&validate, "validate", false, "Check the starting state before applying moves")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "Merge and cancel adjacent turns of the same face first")
	cmd.Flags().StringVar(&from, "from", "", "Start from a stored scramble (an ID or \"last\") instead of the solved cube")

	return cmd
}

func printApplyResult(w io.Writer, r applyResult) {
	if r.ID != "" {
		fmt.Fprintf(w, "Saved:    %s\n", r.ID)
	}
	if r.From != "" {
		fmt.Fprintf(w, "From:     %s\n", r.From)
	}
	fmt.Fprintf(w, "Scramble: %s\n", r.Notation)
	fmt.Fprintf(w, "Moves:    %d\n", r.MoveCount)
	fmt.Fprintf(w, "cp: %v\n", r.State.CP)
	fmt.Fprintf(w, "co: %v\n", r.State.CO)
	fmt.Fprintf(w, "ep: %v\n", r.State.EP)
	fmt.Fprintf(w, "eo: %v\n", r.State.EO)
	fmt.Fprintf(w, "Solved:   %t\n", r.Solved)
	fmt.Fprintf(w, "Phase:    %s\n", r.Phase)
}
