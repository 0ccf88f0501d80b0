package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/paramgen/internal/table"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Browser is a scrollable terminal view over a generated sample table.
type Browser struct {
	kind   string
	table  *table.Table
	widths []int

	cursor int
	offset int
	height int
}

func NewBrowser(kind string, t *table.Table) *Browser {
	widths := make([]int, len(t.Columns()))
	for i, name := range t.Columns() {
		widths[i] = len(name)
	}
	for r := 0; r < t.NumRows(); r++ {
		for i, cell := range t.Row(r) {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return &Browser{
		kind:   kind,
		table:  t,
		widths: widths,
		height: 24,
	}
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.height = msg.Height
		return b, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < b.table.NumRows()-1 {
				b.cursor++
			}
		case "pgup":
			b.cursor -= b.pageSize()
			if b.cursor < 0 {
				b.cursor = 0
			}
		case "pgdown":
			b.cursor += b.pageSize()
			if b.cursor > b.table.NumRows()-1 {
				b.cursor = b.table.NumRows() - 1
			}
			if b.cursor < 0 {
				b.cursor = 0
			}
		case "g", "home":
			b.cursor = 0
		case "G", "end":
			if b.table.NumRows() > 0 {
				b.cursor = b.table.NumRows() - 1
			}
		}
		b.scroll()
	}
	return b, nil
}

func (b *Browser) pageSize() int {
	size := b.height - 4
	if size < 1 {
		size = 1
	}
	return size
}

func (b *Browser) scroll() {
	page := b.pageSize()
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+page {
		b.offset = b.cursor - page + 1
	}
}

func (b Browser) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s samples", b.kind)))
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render(b.formatRow(b.table.Columns())))
	sb.WriteString("\n")

	page := b.pageSize()
	end := b.offset + page
	if end > b.table.NumRows() {
		end = b.table.NumRows()
	}
	for i := b.offset; i < end; i++ {
		line := b.formatRow(b.table.Row(i))
		if i == b.cursor {
			sb.WriteString(cursorStyle.Render("> " + line))
		} else {
			sb.WriteString(cellStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render(fmt.Sprintf("row %d/%d  j/k scroll  q quit",
		b.cursor+1, b.table.NumRows())))
	return sb.String()
}

func (b Browser) formatRow(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", b.widths[i], cell)
	}
	return strings.Join(parts, "  ")
}

// Run opens the browser and blocks until the user quits.
func Run(kind string, t *table.Table) error {
	p := tea.NewProgram(NewBrowser(kind, t))
	_, err := p.Run()
	return err
}
