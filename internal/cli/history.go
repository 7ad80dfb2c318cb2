package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

// NewHistoryCommand creates the history command and its subcommands.
func NewHistoryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage stored scrambles",
		Long:  `List, show and delete scrambles saved with 'apply --save'.`,
	}

	cmd.AddCommand(newHistoryListCommand(opts))
	cmd.AddCommand(newHistoryShowCommand(opts))
	cmd.AddCommand(newHistoryDeleteCommand(opts))

	return cmd
}

func newHistoryListCommand(opts *RootOptions) *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent scrambles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			scrambles, err := storage.NewScrambleRepository(db).List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != FormatText {
				results := make([]applyResult, len(scrambles))
				for i, s := range scrambles {
					results[i] = recordResult(s)
				}
				return writeStructured(out, format, results)
			}

			if len(scrambles) == 0 {
				fmt.Fprintln(out, "No scrambles found.")
				return nil
			}

			fmt.Fprintf(out, "%-36s  %-19s  %5s  %-15s  %s\n", "ID", "CREATED", "MOVES", "PHASE", "SCRAMBLE")
			for _, s := range scrambles {
				notation := s.Notation
				if s.BaseID != "" {
					notation = fmt.Sprintf("%s (from %s)", notation, shortID(s.BaseID))
				}
				fmt.Fprintf(out, "%-36s  %-19s  %5d  %-15s  %s\n",
					s.ScrambleID,
					s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					s.MoveCount,
					s.Phase,
					notation,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of scrambles to list")
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format (text|json|yaml)")

	return cmd
}

func newHistoryShowCommand(opts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored scramble",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := storage.NewScrambleRepository(db).Get(args[0])
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("scramble not found: %s", args[0])
			}
			records, err := storage.NewMoveRepository(db).GetByScramble(s.ScrambleID)
			if err != nil {
				return err
			}
			profile := cubestate.Profile(storage.ToMoves(records))

			out := cmd.OutOrStdout()
			result := recordResult(*s)
			if format != FormatText {
				return writeStructured(out, format, result)
			}

			fmt.Fprintf(out, "Created:  %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			printApplyResult(out, result)
			fmt.Fprintf(out, "Quarters: %d\n", profile.Quarters)
			if profile.Total > 0 {
				fmt.Fprintf(out, "Busiest:  %s (%d)\n", profile.MostUsedFace, profile.FaceCounts[profile.MostUsedFace])
			}
			if profile.Redundant > 0 {
				fmt.Fprintf(out, "Simplify: %s (%d redundant)\n",
					cubestate.FormatMoves(cubestate.Simplify(storage.ToMoves(records))), profile.Redundant)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, render.Net(cubestate.Project(s.State), opts.renderOptions().Palette))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format (text|json|yaml)")

	return cmd
}

func newHistoryDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored scramble",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			repo := storage.NewScrambleRepository(db)
			s, err := repo.Get(args[0])
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("scramble not found: %s", args[0])
			}

			if err := repo.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", args[0])
			return nil
		},
	}
}

func recordResult(s storage.Scramble) applyResult {
	return applyResult{
		ID:        s.ScrambleID,
		From:      s.BaseID,
		Notation:  s.Notation,
		MoveCount: s.MoveCount,
		State:     s.State,
		Solved:    s.Solved,
		Legal:     s.State.IsLegal(),
		Phase:     s.Phase,
	}
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
