// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/sposa/internal/reader"
)

var (
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4"))
	orpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#0080FF"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	speedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B4BEFE"))
)

// tickMsg drives one unit of reader work. Each tick schedules the next one
// with the delay the reader asks for, forming a chain of one-shot timers.
type tickMsg struct{}

// Model implements the Bubble Tea reading UI.
type Model struct {
	rd    *reader.Reader
	frame reader.Frame

	keys     keyMap
	help     help.Model
	progress progress.Model

	width  int
	height int
}

// NewModel constructs a reading TUI model around an already-loaded reader.
func NewModel(rd *reader.Reader) *Model {
	prog := progress.New(
		progress.WithSolidFill("#CBA6F7"),
		progress.WithoutPercentage(),
	)
	return &Model{
		rd:       rd,
		frame:    rd.Frame(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: prog,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick(m.rd.PollInterval())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		frame, delay := m.rd.Next()
		m.frame = frame
		return m, tick(delay)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.rd.TogglePause()
		case key.Matches(msg, m.keys.Faster):
			m.rd.IncreaseSpeed()
		case key.Matches(msg, m.keys.Slower):
			m.rd.DecreaseSpeed()
		case key.Matches(msg, m.keys.Prev):
			m.rd.JumpToPreviousSentence()
		case key.Matches(msg, m.keys.Next):
			m.rd.JumpToNextSentence()
		}
		// Intents mutate the reader synchronously; the running tick chain
		// picks the new state up on its next firing.
		m.frame = m.rd.Frame()
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	line := m.renderWord()
	if m.width == 0 || m.height == 0 {
		return line
	}
	footer := m.renderFooter()
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - footerHeight
	if bodyHeight < 1 {
		return line
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Center, line)
	return body + "\n" + footer
}

// renderWord draws the revealed word with its ORP letter pinned to the
// anchor column so the eye never has to move between words.
func (m *Model) renderWord() string {
	word := m.frame.Word
	if word.IsZero() {
		return ""
	}
	var b strings.Builder
	if pad := m.anchorColumn() - runewidth.StringWidth(word.Prefix); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(wordStyle.Render(word.Prefix))
	b.WriteString(orpStyle.Render(word.Letter))
	b.WriteString(wordStyle.Render(word.Suffix))
	if m.frame.Typing {
		b.WriteString(cursorStyle.Render("_"))
	} else {
		b.WriteString(" ")
	}
	return b.String()
}

func (m *Model) anchorColumn() int {
	if m.width <= 0 {
		return 0
	}
	return m.width / 2
}

func (m *Model) renderFooter() string {
	speed := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center,
		speedStyle.Render(m.frame.SpeedLabel))
	bar := m.progress.ViewAs(m.progressRatio())
	legend := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center,
		footerStyle.Render(m.help.View(m.keys)))
	return speed + "\n" + bar + "\n" + legend
}

func (m *Model) progressRatio() float64 {
	if m.frame.Total == 0 {
		return 0
	}
	return float64(m.frame.Index) / float64(m.frame.Total)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
