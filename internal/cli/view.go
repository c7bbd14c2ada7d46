package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/layerlp/layerlp/pkg/errors"
	"github.com/layerlp/layerlp/pkg/sgf"
)

// viewCommand creates the interactive layer browser.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <graph.(sgf|json)>",
		Short: "Browse a graph's layers interactively",
		Long: `Open an alternate-screen browser over the graph's layers showing
per-layer occupancy and the crossing count of each channel. Navigate
with arrow keys or j/k, jump with g/G, quit with q.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(c.Out) {
				return errs.New(errs.ErrCodeUnsupported, "view needs an interactive terminal; try 'stats' for plain output")
			}

			g, err := readGraph(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			p := tea.NewProgram(newLayerView(g),
				tea.WithAltScreen(),
				tea.WithInput(c.In),
				tea.WithOutput(c.Out),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}

	return cmd
}

// Viewer styles.
var (
	viewCursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	viewNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	viewHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// layerView is the bubbletea model for the layer browser. The cursor
// walks the layers; the table window follows it.
type layerView struct {
	graph  *sgf.Graph
	cursor int
	height int
	offset int
}

func newLayerView(g *sgf.Graph) layerView {
	return layerView{graph: g, height: 15}
}

func (m layerView) Init() tea.Cmd {
	return nil
}

func (m layerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < m.graph.LayerCount()-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor = 0
			m.offset = 0
		case "G", "end":
			m.cursor = m.graph.LayerCount() - 1
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 3 {
			m.height = 3
		}
	}
	return m, nil
}

func (m layerView) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.graph.Name()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d nodes · %d edges · %d crossings",
		m.graph.NodeCount(), m.graph.EdgeCount(), sgf.CountCrossings(m.graph))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  g/G jump  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, m.graph.LayerCount())

	rows := [][]string{}
	for layer := m.offset; layer < end; layer++ {
		cursor := "  "
		if layer == m.cursor {
			cursor = "▸ "
		}

		ids := m.graph.Layer(layer)
		crossings := "—"
		if layer < m.graph.LayerCount()-1 {
			crossings = strconv.Itoa(sgf.CountChannelCrossings(m.graph, layer))
		}

		rows = append(rows, []string{
			cursor,
			strconv.Itoa(layer),
			strconv.Itoa(len(ids)),
			crossings,
			summarize(ids, 8),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layer", "Nodes", "Crossings ↑", "IDs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return viewHeaderStyle
			}
			if m.offset+row == m.cursor {
				return viewCursorStyle
			}
			return viewNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, m.graph.LayerCount())))

	return b.String()
}
