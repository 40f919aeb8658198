package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	xlog "github.com/wippyai/xlog-go"
	"github.com/wippyai/xlog-go/engine/memengine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxVisibleWrites = 12

type consoleModel struct {
	eng     *memengine.Engine
	logger  *xlog.Logger
	input   textinput.Model
	prefix  string
	tag     string
	level   xlog.Level
	status  string
	quitErr error
}

func newConsoleModel(logDir, prefix, cacheDir string, level xlog.Level, syncMode bool) (*consoleModel, error) {
	eng := memengine.New()

	cfg := xlog.NewConfig(logDir, prefix).WithCacheDir(cacheDir)
	if syncMode {
		cfg = cfg.WithMode(xlog.ModeSync)
	}
	if err := xlog.Open(eng, cfg, level); err != nil {
		return nil, err
	}
	logger, err := xlog.New(eng, cfg, level)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "message"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &consoleModel{
		eng:    eng,
		logger: logger,
		input:  ti,
		prefix: prefix,
		tag:    prefix,
		level:  xlog.LevelInfo,
	}, nil
}

func (m *consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.logger.Close()
			return m, tea.Quit

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				before := len(m.eng.WritesFor(m.prefix))
				m.logger.Log(m.level, m.tag, text)
				if len(m.eng.WritesFor(m.prefix)) == before {
					m.status = fmt.Sprintf("filtered: %s below instance level %s", m.level, m.logger.Level())
				} else {
					m.status = ""
				}
				m.input.Reset()
			}
			return m, nil

		case "ctrl+n":
			m.level = nextLevel(m.level)
			m.status = ""
			return m, nil

		case "ctrl+r":
			m.logger.SetLevel(nextLevel(m.logger.Level()))
			m.status = ""
			return m, nil

		case "ctrl+f":
			m.logger.Flush(true)
			m.status = "flushed"
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextLevel(l xlog.Level) xlog.Level {
	if l >= xlog.LevelFatal {
		return xlog.LevelVerbose
	}
	return l + 1
}

func levelStyle(l xlog.Level) lipgloss.Style {
	switch {
	case l >= xlog.LevelError:
		return errStyle
	case l == xlog.LevelWarn:
		return warnStyle
	default:
		return infoStyle
	}
}

func (m *consoleModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("xlog console"))
	b.WriteString(" ")
	b.WriteString(m.prefix)
	b.WriteString("\n\n")

	path, _ := xlog.CurrentLogPath(m.eng)
	fmt.Fprintf(&b, "instance %s  write level %s  min level %s\n",
		infoStyle.Render(fmt.Sprintf("#%d", m.logger.Instance())),
		okStyle.Render(m.level.String()),
		okStyle.Render(m.logger.Level().String()))
	fmt.Fprintf(&b, "log path %s\n\n", dimStyle.Render(path))

	writes := m.eng.WritesFor(m.prefix)
	start := 0
	if len(writes) > maxVisibleWrites {
		start = len(writes) - maxVisibleWrites
	}
	for _, w := range writes[start:] {
		lvl := xlog.LevelFromInt(w.Info.Level)
		fmt.Fprintf(&b, "  %s %s: %s\n",
			levelStyle(lvl).Render(fmt.Sprintf("[%-7s]", lvl)),
			w.Info.Tag, w.Msg)
	}
	if len(writes) == 0 {
		b.WriteString(dimStyle.Render("  (no writes yet)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter write • ctrl+n cycle write level • ctrl+r cycle min level • ctrl+f flush • esc quit"))

	return b.String()
}

func runInteractive(logDir, prefix, cacheDir string, level xlog.Level, syncMode bool) error {
	m, err := newConsoleModel(logDir, prefix, cacheDir, level, syncMode)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
