package termsurface

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameInterval is the period of the frame tick.
const FrameInterval = 33 * time.Millisecond

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Back  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Click key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "swipe up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "swipe down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "swipe left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "swipe right")),
		Back:  key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab")),
		Click: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Next, k.Click, k.Back, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Model runs a Provider inside a Bubble Tea program.
type Model struct {
	provider *Provider
	keys     keyMap

	onBack  func()
	onFrame []func()
	status  func() string

	frameStyle  lipgloss.Style
	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style
	focusStyle  lipgloss.Style
}

// NewModel wraps p. accent colors the frame and status line.
func NewModel(p *Provider, accent color.RGBA) *Model {
	c := lipgloss.Color(hex(accent))
	return &Model{
		provider:    p,
		keys:        newKeyMap(),
		frameStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c),
		statusStyle: lipgloss.NewStyle().Bold(true).Foreground(c).Padding(0, 1),
		helpStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		focusStyle:  lipgloss.NewStyle().Foreground(c),
	}
}

// OnBack sets the handler for the back key.
func (m *Model) OnBack(fn func()) { m.onBack = fn }

// OnFrame adds a callback run on every frame, before animations advance.
// Input sources that queue gestures from other goroutines dispatch here.
func (m *Model) OnFrame(fn func()) { m.onFrame = append(m.onFrame, fn) }

// SetStatus sets the function producing the status line.
func (m *Model) SetStatus(fn func() string) { m.status = fn }

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		for _, fn := range m.onFrame {
			fn()
		}
		m.provider.Tick(time.Time(msg))
		return m, tick()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.provider.Swipe(constants.DirectionUp)
	case key.Matches(msg, m.keys.Down):
		m.provider.Swipe(constants.DirectionDown)
	case key.Matches(msg, m.keys.Left):
		m.provider.Swipe(constants.DirectionLeft)
	case key.Matches(msg, m.keys.Right):
		m.provider.Swipe(constants.DirectionRight)
	case key.Matches(msg, m.keys.Back):
		if m.onBack != nil {
			m.onBack()
		}
	case key.Matches(msg, m.keys.Next):
		m.provider.MoveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.provider.MoveFocus(-1)
	case key.Matches(msg, m.keys.Click):
		m.provider.Click()
	}
	return nil
}

func (m *Model) View() string {
	var b strings.Builder

	if m.status != nil {
		b.WriteString(m.statusStyle.Render(m.status()))
		b.WriteString("\n")
	}

	b.WriteString(m.frameStyle.Render(strings.Join(m.provider.Render(), "\n")))
	b.WriteString("\n")

	if f := m.provider.Focused(); f != nil && len(f.lines) > 0 {
		b.WriteString(m.focusStyle.Render("▶ " + strings.TrimSpace(f.lines[0])))
		b.WriteString("\n")
	}
	b.WriteString(m.helpStyle.Render(m.keys.help()))
	return b.String()
}

// Program creates a Bubble Tea program for m on the alternate screen.
func (m *Model) Program(opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
