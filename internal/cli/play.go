package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play <moves...>",
	Short: "Step through a move sequence interactively",
	Long: `Step through a move sequence one move at a time, starting from a solved
cube, and watch the state change.

Use --from to start from a scrambled cube instead, e.g. to watch a solution:
  permcube play --from "R U R' F2 D2 L" "L' D2 F2 R U' R'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

var (
	playFrom     string
	playInterval time.Duration
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playFrom, "from", "", "Scramble to apply before playing")
	playCmd.Flags().DurationVarP(&playInterval, "interval", "i", 700*time.Millisecond, "Delay between moves in autoplay")
}

func runPlay(cmd *cobra.Command, args []string) error {
	catalog := moves.Default()

	start, err := catalog.Scramble(playFrom)
	if err != nil {
		return fmt.Errorf("invalid --from scramble: %w", err)
	}

	names, err := catalog.Validate(strings.Join(args, " "))
	if err != nil {
		return err
	}

	model := newPlayModel(catalog, start, names, playInterval, colorEnabled())
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("player error: %w", err)
	}

	return nil
}

// playModel steps through a move sequence. states[i] is the cube after the
// first i moves, so states has one more entry than names.
type playModel struct {
	names    []string
	states   []cube.State
	index    int
	interval time.Duration
	autoplay bool
	colored  bool
	quitting bool
}

func newPlayModel(catalog *moves.Catalog, start cube.State, names []string, interval time.Duration, colored bool) *playModel {
	states := make([]cube.State, 0, len(names)+1)
	states = append(states, start)
	for _, name := range names {
		states = append(states, states[len(states)-1].Apply(catalog.MustLookup(name)))
	}

	return &playModel{
		names:    names,
		states:   states,
		interval: interval,
		colored:  colored,
	}
}

type playTickMsg time.Time

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right", "l":
			m.step(1)

		case "p", "left", "h":
			m.step(-1)

		case "home", "r":
			m.index = 0
			m.autoplay = false

		case "end":
			m.index = len(m.names)

		case "a":
			m.autoplay = !m.autoplay
			if m.autoplay {
				if m.index == len(m.names) {
					m.index = 0
				}
				return m, m.tick()
			}

		case "+", "=":
			m.interval /= 2
			if m.interval < 50*time.Millisecond {
				m.interval = 50 * time.Millisecond
			}

		case "-":
			m.interval *= 2
			if m.interval > 5*time.Second {
				m.interval = 5 * time.Second
			}
		}

	case playTickMsg:
		if !m.autoplay {
			return m, nil
		}
		m.step(1)
		if m.index == len(m.names) {
			m.autoplay = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

// step moves the cursor by delta, clamped to the sequence.
func (m *playModel) step(delta int) {
	m.index += delta
	if m.index < 0 {
		m.index = 0
	}
	if m.index > len(m.names) {
		m.index = len(m.names)
	}
}

func (m *playModel) current() cube.State {
	return m.states[m.index]
}

func (m *playModel) View() string {
	if m.quitting {
		return "Player closed.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("permcube player"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.names))
	if m.autoplay {
		progress += " [PLAYING]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString("\n\n")

	// Sequence with the last applied move highlighted
	parts := make([]string, len(m.names))
	for i, name := range m.names {
		switch {
		case i == m.index-1:
			parts[i] = currentMoveStyle.Render(name)
		case i < m.index:
			parts[i] = moveStyle.Render(name)
		default:
			parts[i] = statusStyle.Render(name)
		}
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n\n")

	state := m.current()
	b.WriteString(render.Net(state, m.colored))
	b.WriteString("\n")

	if state.IsSolved() {
		b.WriteString(moveStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Period: %d", state.Period())))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("SPACE/n=next  p=prev  a=autoplay  +/-=speed  r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
