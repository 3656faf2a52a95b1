package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/scriptboard/catalog"
	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/dashboard"
	"github.com/joshyorko/scriptboard/pretty"
)

const (
	// header line, divider, divider, footer line
	chromeHeight = 4
)

type (
	Pager struct {
		fallback    dashboard.Viewer
		interactive func() bool
		height      func() int
		run         func(tea.Model) error
	}

	pagerModel struct {
		title    string
		content  string
		keys     KeyMap
		styles   *Styles
		viewport viewport.Model
		ready    bool
	}
)

// NewPager returns a viewer that pages long scripts full-screen and hands
// everything else to fallback.
func NewPager(fallback dashboard.Viewer) *Pager {
	return &Pager{
		fallback: fallback,
		interactive: func() bool {
			return pretty.Interactive
		},
		height: pretty.TerminalHeight,
		run: func(model tea.Model) error {
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

func lineCount(content string) int {
	return strings.Count(strings.TrimRight(content, "\n"), "\n") + 1
}

func (it *Pager) View(script catalog.ScriptItem, content string) error {
	if !it.interactive() || lineCount(content) <= it.height()-chromeHeight {
		return it.fallback.View(script, content)
	}
	common.Debug("Paging %q (%d lines).", script.Name, lineCount(content))
	err := it.run(newPagerModel(script, content))
	if err != nil {
		common.Debug("Pager failed, printing instead: %v", err)
		return it.fallback.View(script, content)
	}
	return nil
}

func newPagerModel(script catalog.ScriptItem, content string) *pagerModel {
	return &pagerModel{
		title:   script.Name,
		content: content,
		keys:    DefaultKeyMap(),
		styles:  NewStyles(),
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	width := m.viewport.Width
	if width < 1 {
		width = 1
	}
	divider := m.styles.Divider.Render(strings.Repeat("─", width))

	header := m.styles.Title.Render(m.title)
	position := m.styles.Subtle.Render(fmt.Sprintf(" %3.f%%", m.viewport.ScrollPercent()*100))

	hints := make([]string, 0, 3)
	for _, binding := range m.keys.hints() {
		help := binding.Help()
		hints = append(hints, m.styles.HelpKey.Render(help.Key)+" "+m.styles.HelpDesc.Render(help.Desc))
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(hints, "  "), position)

	return lipgloss.JoinVertical(lipgloss.Left, header, divider, m.viewport.View(), divider, footer)
}
