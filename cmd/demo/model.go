package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/holt/flexbar"
	"github.com/holt/flexbar/grid"
	"github.com/holt/flexbar/layout"
	"github.com/holt/flexbar/text"
)

// tickMsg advances the clock section once per second.
type tickMsg time.Time

// configReloadedMsg carries a bar rebuilt from a changed config file.
type configReloadedMsg struct {
	bar *flexbar.StatusBar
}

// watchErrMsg is sent when the config watcher fails.
type watchErrMsg struct {
	err error
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	width    int
	height   int
	insert   bool
	filename string
	now      time.Time
	bar      *flexbar.StatusBar
	lastErr  error
}

func newModel(bar *flexbar.StatusBar, filename string) model {
	return model{filename: filename, now: time.Now(), bar: bar}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the clock.
func (m model) Init() tea.Cmd {
	return tick()
}

// Update handles incoming messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.insert {
				return m, tea.Quit
			}
		case "i":
			m.insert = true
		case "esc":
			m.insert = false
		}
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case configReloadedMsg:
		m.bar = msg.bar
		m.lastErr = nil
		return m, nil

	case watchErrMsg:
		m.lastErr = msg.err
		return m, nil
	}
	return m, nil
}

// View renders the body and the status bar on the bottom row.
func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	mode := " NORMAL "
	if m.insert {
		mode = " INSERT "
	}
	contents := []text.Line{
		text.Plain(mode),
		text.Plain(m.filename),
		text.Plain(m.now.Format("15:04:05")),
	}
	for i, line := range contents {
		if i >= m.bar.Len() {
			break
		}
		_, _ = m.bar.Content(i, line)
	}

	buf := grid.New(m.width, 1)
	m.bar.Render(layout.Rect{X: 0, Y: 0, Width: m.width, Height: 1}, buf)

	var b strings.Builder
	b.WriteString(titleStyle.Render("flexbar demo") + "\n")
	b.WriteString(helpStyle.Render("i: insert mode  esc: normal mode  q: quit") + "\n")
	used := 2
	if m.lastErr != nil {
		b.WriteString(errStyle.Render("config error: "+m.lastErr.Error()) + "\n")
		used++
	}
	for row := used; row < m.height-1; row++ {
		b.WriteString("\n")
	}
	b.WriteString(buf.StyledRow(0))
	return b.String()
}
