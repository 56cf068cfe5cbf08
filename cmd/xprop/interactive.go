package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duskwm/xutil/xconn"
	"github.com/duskwm/xutil/xerror"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FAF")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	conn    *xconn.Conn
	cfg     config
	input   textinput.Model
	snap    *windowSnapshot
	lastErr string
	xErrors []string
}

type snapshotMsg struct {
	snap *windowSnapshot
}

type xErrorMsg struct {
	text string
}

func newInteractiveModel(conn *xconn.Conn, cfg config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "window id (decimal or 0x hex)"
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 24

	return &interactiveModel{conn: conn, cfg: cfg, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			win, err := parseWindow(strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.lastErr = err.Error()
				return m, nil
			}
			m.lastErr = ""
			return m, func() tea.Msg {
				return snapshotMsg{snap: snapshot(m.conn, m.cfg, win)}
			}
		}
	case snapshotMsg:
		m.snap = msg.snap
		return m, nil
	case xErrorMsg:
		m.xErrors = append(m.xErrors, msg.text)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("xprop — window hint browser"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.lastErr != "" {
		b.WriteString(errorStyle.Render(m.lastErr))
		b.WriteString("\n\n")
	}

	if s := m.snap; s != nil {
		row := func(label, value string) {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", label)))
			b.WriteString(valueStyle.Render(value))
			b.WriteString("\n")
		}

		b.WriteString(fmt.Sprintf("window %#x\n", uint32(s.win)))
		if s.class != nil {
			row("WM_CLASS", fmt.Sprintf("%q, %q", s.class.Instance, s.class.Class))
		}
		if s.hasName {
			row("WM_NAME", fmt.Sprintf("%q", s.name))
		}
		if s.hasNet {
			row("_NET_WM_NAME", fmt.Sprintf("%q", s.netName))
		}
		if s.hasTrans {
			row("WM_TRANSIENT_FOR", fmt.Sprintf("%#x", uint32(s.transient)))
		}
		row("lock masks", fmt.Sprintf("num %#x shift %#x caps %#x", s.numLock, s.shiftLock, s.capsLock))
		b.WriteString("\n")
	}

	for _, e := range m.xErrors {
		b.WriteString(errorStyle.Render("x error: " + e))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: fetch · esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(cfg config) error {
	conn, err := xconn.Dial(cfg.Display)
	if err != nil {
		return err
	}
	defer conn.Close()

	m := newInteractiveModel(conn, cfg)
	p := tea.NewProgram(m)

	xerror.InstallCatchAll(conn, func(raw []byte) {
		if e := xerror.Decode(raw); e != nil {
			p.Send(xErrorMsg{text: e.String()})
		}
	})

	_, err = p.Run()
	return err
}
