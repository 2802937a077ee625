package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moldtool/mold/pkg/source"
)

var (
	pickerSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	pickerNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	pickerDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// templatePickerModel is the bubbletea model for interactive template
// selection.
type templatePickerModel struct {
	templates []string
	cursor    int
	offset    int
	height    int
	choice    string
}

func newTemplatePickerModel(templates []string) templatePickerModel {
	return templatePickerModel{templates: templates, height: 15}
}

func (m templatePickerModel) Init() tea.Cmd {
	return nil
}

func (m templatePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.cursor < len(m.templates)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.choice = m.templates[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Height > 4 {
			m.height = msg.Height - 4
		}
	}
	return m, nil
}

func (m templatePickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerDimStyle.Render("Select a template (enter to confirm, q to cancel)"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.templates))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(pickerSelectedStyle.Render("> " + m.templates[i]))
		} else {
			b.WriteString(pickerNormalStyle.Render("  " + m.templates[i]))
		}
		b.WriteString("\n")
	}

	if len(m.templates) > m.height {
		b.WriteString("\n")
		b.WriteString(pickerDimStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.templates))))
	}
	return b.String()
}

// pickTemplate lists the source's templates and lets the user choose one
// interactively. An empty name with a nil error means the picker was
// cancelled.
func (c *CLI) pickTemplate(ctx context.Context, src source.Source) (string, error) {
	spinner := newSpinner(ctx, "Fetching templates...")
	spinner.Start()
	names, err := src.List(ctx, nil)
	spinner.Stop()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no templates available in %s", src.Name())
	}

	program := tea.NewProgram(newTemplatePickerModel(names), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return "", err
	}
	return final.(templatePickerModel).choice, nil
}
