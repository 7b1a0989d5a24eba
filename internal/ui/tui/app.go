package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kappibw/scheduling/internal/domain"
)

const defaultInterval = 2 * time.Second

type model struct {
	theme Theme
	deps  Deps

	spin    spinner.Model
	loaded  bool
	states  []domain.ServiceState
	pollErr error
	updated time.Time
}

func Run(deps Deps) error {
	if deps.Interval <= 0 {
		deps.Interval = defaultInterval
	}

	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		spin:  s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, cmdPoll(m.deps))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, cmdPoll(m.deps)
		}

	case servicesMsg:
		m.loaded = true
		m.states = msg.states
		m.pollErr = msg.err
		m.updated = msg.at
		if m.deps.Logger != nil && msg.err != nil {
			m.deps.Logger.Debug("status.poll_failed", "err", msg.err.Error())
		}
		return m, cmdTick(m.deps.Interval)

	case tickMsg:
		return m, cmdPoll(m.deps)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("schedenv status"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.deps.Root))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(m.spin.View())
		b.WriteString(" querying services...\n")
	case m.pollErr != nil:
		b.WriteString(m.theme.Down.Render("poll failed: " + m.pollErr.Error()))
		b.WriteString("\n")
	case len(m.states) == 0:
		b.WriteString("(no services; run `schedenv up`)\n")
	default:
		b.WriteString(m.renderServices())
	}

	if !m.updated.IsZero() {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("updated " + m.updated.Format("15:04:05")))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("r: refresh • q: quit"))
	return m.theme.Card.Render(b.String())
}

func (m model) renderServices() string {
	var b strings.Builder
	for _, s := range m.states {
		marker := m.theme.Down.Render("●")
		if s.Running() {
			marker = m.theme.Up.Render("●")
		}

		name := s.Name
		if name == m.deps.Service {
			name = m.theme.Title.Render(name)
		}

		b.WriteString(fmt.Sprintf("%s %s  %s", marker, name, s.Status))
		if s.Ports != "" {
			b.WriteString("  " + m.theme.Subtitle.Render(s.Ports))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cmdPoll(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.Interval*3)
		defer cancel()

		states, err := deps.Poll(ctx)
		return servicesMsg{states: states, err: err, at: time.Now()}
	}
}

func cmdTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
