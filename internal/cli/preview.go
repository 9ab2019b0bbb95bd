package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/JakeOShannessy/minotaur/pkg/maze"
	"github.com/JakeOShannessy/minotaur/pkg/render/ascii"
)

// previewCommand creates the preview command for interactive maze browsing.
func (c *CLI) previewCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview mazes interactively in the terminal",
		Long: `Preview mazes interactively in the terminal.

Keys:
  n  carve a new maze with a fresh seed
  a  cycle to the next algorithm
  q  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := newPreviewModel(width, height, c.Config.Algorithm)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "x", c.Config.Width, "maze width in cells")
	cmd.Flags().IntVarP(&height, "height", "y", c.Config.Height, "maze height in cells")

	return cmd
}

// =============================================================================
// PreviewModel - Interactive maze browsing
// =============================================================================

// PreviewModel is the bubbletea model for the preview command.
type PreviewModel struct {
	Width   int
	Height  int
	AlgoIdx int
	Seed    uint64

	algorithms []string
	rendered   string
}

// newPreviewModel creates a preview model starting on the given algorithm.
func newPreviewModel(width, height int, algorithm string) (PreviewModel, error) {
	m := PreviewModel{
		Width:      width,
		Height:     height,
		Seed:       maze.RandomSeed(),
		algorithms: maze.Algorithms(),
	}
	for i, name := range m.algorithms {
		if strings.EqualFold(name, algorithm) {
			m.AlgoIdx = i
			break
		}
	}
	if err := m.carve(); err != nil {
		return m, err
	}
	return m, nil
}

// carve regenerates the maze for the current algorithm and seed.
func (m *PreviewModel) carve() error {
	gen, err := maze.NewGenerator(m.algorithms[m.AlgoIdx])
	if err != nil {
		return err
	}
	g, err := maze.New(m.Width, m.Height)
	if err != nil {
		return err
	}
	gen.Generate(g, maze.NewSource(m.Seed))
	m.rendered = ascii.Render(g)
	return nil
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n":
			m.Seed = maze.RandomSeed()
			m.carve()
		case "a":
			m.AlgoIdx = (m.AlgoIdx + 1) % len(m.algorithms)
			m.carve()
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Maze Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("n new seed  a next algorithm  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.rendered)
	b.WriteString("\n")
	b.WriteString(StyleHighlight.Render(m.algorithms[m.AlgoIdx]))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d  seed %d", m.Width, m.Height, m.Seed)))
	b.WriteString("\n")

	return b.String()
}
