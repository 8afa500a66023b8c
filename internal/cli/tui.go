package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/combcap/idcgen/pkg/config"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// PresetListModel - Interactive preset selection
// =============================================================================

// PresetItem is one row of the preset picker.
type PresetItem struct {
	Name   string
	Preset config.Preset
}

// PresetListModel is the bubbletea model for interactive preset selection.
type PresetListModel struct {
	Items    []PresetItem
	Cursor   int
	Selected *PresetItem
	Height   int
	Offset   int
}

// NewPresetListModel creates a picker over the resolved presets of cfg in
// name order.
func NewPresetListModel(cfg *config.Config) (PresetListModel, error) {
	names := cfg.Names()
	items := make([]PresetItem, 0, len(names))
	for _, name := range names {
		p, err := cfg.Resolve(name)
		if err != nil {
			return PresetListModel{}, err
		}
		items = append(items, PresetItem{Name: name, Preset: p})
	}
	return PresetListModel{Items: items, Height: 15}, nil
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Items) == 0 {
				return m, tea.Quit
			}
			item := m.Items[m.Cursor]
			m.Selected = &item
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	if len(m.Items) == 0 {
		b.WriteString(listDimStyle.Render("  no presets"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Items))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, presetRow(m.Items[i])...))
	}

	t := presetTable(append([]string{""}, presetHeaders...), rows).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return presetHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))

	return b.String()
}

// =============================================================================
// Table Helpers
// =============================================================================

var presetHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

var presetHeaders = []string{"Name", "Track", "Gap", "Width / Length", "Fingers", "Description"}

// presetTable builds the bordered preset table.
func presetTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...)
}

// presetRow formats a resolved preset for display. Unset values show as "-".
func presetRow(item PresetItem) []string {
	p := item.Preset
	size := "-"
	switch {
	case p.FingerLength > 0:
		size = "L " + mmString(p.FingerLength)
	case p.TotalWidth > 0:
		size = "W " + mmString(p.TotalWidth)
	}
	fingers := "-"
	if p.NumFingers > 0 {
		fingers = strconv.Itoa(p.NumFingers)
	}
	return []string{item.Name, optMM(p.TrackWidth), optMM(p.Gap), size, fingers, p.Description}
}

func optMM(v float64) string {
	if v <= 0 {
		return "-"
	}
	return mmString(v)
}
