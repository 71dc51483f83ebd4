package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/quiz"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type quizKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func (k quizKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Next, k.Prev, k.Submit, k.Quit}
}

func (k quizKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultQuizKeys() quizKeyMap {
	return quizKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "back")),
		Submit: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tickMsg is sent once per second while the run is in progress.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// quizModel drives a quiz.Run from the keyboard. The countdown and the key
// handlers both go through the run, which serialises them.
type quizModel struct {
	run     *quiz.Run
	keys    quizKeyMap
	help    help.Model
	cursor  int
	width   int
	aborted bool
}

func newQuizModel(run *quiz.Run) quizModel {
	return quizModel{
		run:  run,
		keys: defaultQuizKeys(),
		help: help.New(),
	}
}

func (m quizModel) Init() tea.Cmd {
	return tickCmd()
}

func (m quizModel) finished() bool {
	return m.run.State() == quiz.StateFinished
}

// syncCursor puts the cursor on the current question's answer, or the top.
func (m *quizModel) syncCursor() {
	if sel, ok := m.run.Selected(m.run.Current()); ok {
		m.cursor = sel
		return
	}
	m.cursor = 0
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.finished() {
			return m, nil
		}
		if m.run.Tick() {
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.KeyMsg:
		if m.finished() {
			return m, tea.Quit
		}
		options := len(m.run.Question().Options)

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < options-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Choose):
			_ = m.run.Select(m.cursor)

		case key.Matches(msg, m.keys.Next):
			if m.run.Next() {
				return m, tea.Quit
			}
			m.syncCursor()

		case key.Matches(msg, m.keys.Prev):
			m.run.Previous()
			m.syncCursor()

		case key.Matches(msg, m.keys.Submit):
			m.run.Finish()
			return m, tea.Quit

		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			if d := int(msg.Runes[0] - '1'); d >= 0 && d < options {
				m.cursor = d
				_ = m.run.Select(d)
			}
		}
	}
	return m, nil
}

func (m quizModel) View() string {
	q := m.run.Quiz()
	if m.finished() {
		return formatter.Dim("Quiz finished.") + "\n"
	}

	var b strings.Builder

	countdown := formatter.FormatCountdown(m.run.Remaining())
	timer := formatter.StyleFg.Render("⏱ " + countdown)
	if m.run.Remaining() <= 30 {
		timer = formatter.StyleRed.Bold(true).Render("⏱ " + countdown)
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", formatter.StyleHeader.Render(q.Title), timer))

	current := m.run.Current()
	total := len(q.Questions)
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		formatter.Dim(fmt.Sprintf("Question %d of %d", current+1, total)),
		formatter.RenderCompactBar(float64(current+1)/float64(total), 12)))

	question := m.run.Question()
	b.WriteString(formatter.Bold(question.Question) + "\n\n")

	selected, hasSelected := m.run.Selected(current)
	for i, opt := range question.Options {
		pointer := "  "
		if i == m.cursor {
			pointer = formatter.StyleHeader.Render("> ")
		}
		radio := formatter.Dim("○")
		label := formatter.StyleFg.Render(opt)
		if hasSelected && i == selected {
			radio = formatter.StyleGreen.Render("●")
			label = formatter.StyleGreen.Render(opt)
		}
		b.WriteString(fmt.Sprintf("%s%s %d. %s\n", pointer, radio, i+1, label))
	}

	hint := "→ next question"
	if m.run.IsLast() {
		hint = "→ finish quiz"
	}
	b.WriteString("\n" + formatter.Dim(hint) + "\n")
	b.WriteString(lipgloss.NewStyle().MarginTop(1).Render(m.help.View(m.keys)))
	return b.String()
}
