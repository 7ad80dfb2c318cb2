package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
)

// NewPlayCommand creates the play command.
func NewPlayCommand(opts *RootOptions) *cobra.Command {
	var scrambleLen int

	cmd := &cobra.Command{
		Use:   "play [notation...]",
		Short: "Turn a virtual cube interactively",
		Long: `Start an interactive TUI showing a colored net of the cube.

Keyboard shortcuts:
  u d l r f b  - Turn a face clockwise
  U D L R F B  - Turn a face counter-clockwise
  s            - Random scramble
  z            - Undo last move
  x            - Reset to the starting state
  q/Esc        - Quit

An optional notation argument sets the starting state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := cubestate.Scramble(notationArg(args), opts.scrambleOptions(false)...)
			if err != nil {
				return err
			}

			m := newPlayModel(opts.catalog, start, opts.renderOptions().Palette, scrambleLen, opts.logger)
			p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&scrambleLen, "scramble-length", 20, "Number of moves in a random scramble")

	return cmd
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// maxShownMoves limits the move list in the view.
const maxShownMoves = 24

// Model
type playModel struct {
	catalog     *cubestate.Catalog
	tracker     *cubestate.Tracker
	palette     render.Palette
	rng         *rand.Rand
	scrambleLen int
	logger      *zap.Logger

	// UI
	message  string
	err      error
	quitting bool
}

func newPlayModel(catalog *cubestate.Catalog, start cubestate.State, palette render.Palette, scrambleLen int, logger *zap.Logger) *playModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &playModel{
		catalog:     catalog,
		palette:     palette,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		scrambleLen: scrambleLen,
		logger:      logger,
	}
	m.startFrom(start)
	return m
}

// startFrom replaces the tracker with one based on s.
func (m *playModel) startFrom(s cubestate.State) {
	m.tracker = cubestate.NewTracker(m.catalog, cubestate.WithBase(s))
	m.tracker.OnPhaseChange(func(p cubestate.Phase) {
		m.message = fmt.Sprintf("Reached: %s", p.DisplayName())
		m.logger.Debug("phase reached", zap.String("phase", p.String()))
	})
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

// faceKeys maps lower-case keys to faces.
var faceKeys = map[string]cubestate.Face{
	"u": cubestate.FaceU,
	"d": cubestate.FaceD,
	"l": cubestate.FaceL,
	"r": cubestate.FaceR,
	"f": cubestate.FaceF,
	"b": cubestate.FaceB,
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	m.err = nil

	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "z":
		if err := m.tracker.Undo(); err != nil {
			m.err = err
		}
		m.message = ""
		return m, nil

	case "x":
		m.tracker.Reset()
		m.message = "Reset"
		return m, nil

	case "s":
		m.scramble()
		return m, nil
	}

	turn := cubestate.CW
	if lower := strings.ToLower(key); lower != key {
		turn = cubestate.CCW
		key = lower
	}
	face, ok := faceKeys[key]
	if !ok {
		return m, nil
	}

	m.message = ""
	if err := m.tracker.ApplyMove(cubestate.Move{Face: face, Turn: turn}); err != nil {
		m.err = err
	}
	if m.tracker.IsSolved() && len(m.tracker.Moves()) > 0 {
		m.message = "SOLVED!"
	}
	return m, nil
}

// scramble starts over from a random sequence of catalog moves.
func (m *playModel) scramble() {
	names := m.catalog.Names()
	parts := make([]string, m.scrambleLen)
	for i := range parts {
		parts[i] = names[m.rng.Intn(len(names))]
	}
	notation := strings.Join(parts, " ")

	s, err := cubestate.Scramble(notation, cubestate.WithCatalog(m.catalog))
	if err != nil {
		m.err = err
		return
	}
	m.startFrom(s)
	m.message = "Scramble: " + notation
	m.logger.Debug("random scramble", zap.String("notation", notation))
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubestate"))
	b.WriteString("\n\n")

	b.WriteString(render.Net(m.tracker.Grid(), m.palette))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED")))
	} else {
		b.WriteString(fmt.Sprintf("Phase: %s\n", phaseStyle.Render(m.tracker.CurrentPhase().DisplayName())))
		if best := m.tracker.HighestPhase(); best > cubestate.PhaseScrambled {
			b.WriteString(fmt.Sprintf("Best:  %s\n", statusStyle.Render(best.DisplayName())))
		}
	}

	moves := m.tracker.Moves()
	shown := moves
	prefix := ""
	if len(shown) > maxShownMoves {
		shown = shown[len(shown)-maxShownMoves:]
		prefix = "... "
	}
	b.WriteString(fmt.Sprintf("Moves (%d): %s\n", len(moves), moveStyle.Render(prefix+cubestate.FormatMoves(shown))))

	if m.message != "" {
		b.WriteString(statusStyle.Render(m.message))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: udlrfb=turn  UDLRFB=inverse  s=scramble  z=undo  x=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
