// Package tui renders an assembled level as a scrollable terminal
// preview.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

type model struct {
	theme Theme
	level domain.Level
	name  string

	vp    viewport.Model
	ready bool
}

// Run opens the preview for one level and blocks until the user quits.
func Run(name string, lvl domain.Level) error {
	m := model{
		theme: DefaultTheme(),
		level: lvl,
		name:  name,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerH := lipgloss.Height(m.header())
		footerH := lipgloss.Height(m.footer())
		w, h := msg.Width, msg.Height-headerH-footerH

		if !m.ready {
			m.vp = viewport.New(w, h)
			m.vp.SetContent(RenderLevel(m.theme, m.level))
			m.ready = true
		} else {
			m.vp.Width = w
			m.vp.Height = h
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.header() + "\n" + m.vp.View() + "\n" + m.footer()
}

func (m model) header() string {
	title := m.theme.Title.Render("lvlgrid preview")
	info := m.theme.Subtitle.Render(fmt.Sprintf("%s — %dx%d, %d walls, %d checkpoints",
		m.name, m.level.Width, m.level.Height, len(m.level.Walls), len(m.level.Checkpoints)))
	return title + "\n" + info
}

func (m model) footer() string {
	return m.theme.Help.Render("↑/↓/←/→ scroll • q quit")
}
