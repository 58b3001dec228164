// Package tui provides an interactive commit wizard built on bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcdonaldj/gitorade/internal/adapters/commitsvc"
	"github.com/mcdonaldj/gitorade/internal/commit"
	"github.com/mcdonaldj/gitorade/internal/config"
	"github.com/mcdonaldj/gitorade/internal/ports"
)

// View represents the current view state
type View int

const (
	TypeView    View = iota // Picking a commit type
	MessageView             // Typing the commit message
	ResultView              // Showing the commit outcome
)

// Model is the main TUI model
type Model struct {
	svc    ports.CommitService
	config *config.Config
	view   View
	width  int
	height int

	quitting bool

	// Discovered git, for the header ("" until known)
	gitLine string
	gitErr  error

	// Type view
	types      []string
	typeCursor int

	selectedType string

	// Message view
	input textinput.Model

	// Result view
	committing bool
	outcome    *ports.CommitOutcome
	commitErr  error

	// Status message
	statusMsg string
	statusErr bool
}

// Key bindings
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// NewModel creates a new TUI model backed by the given service.
func NewModel(svc ports.CommitService) (*Model, error) {
	cfg, err := svc.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "commit message"
	input.Prompt = "> "
	input.Width = 60

	m := &Model{
		svc:    svc,
		config: cfg,
		view:   TypeView,
		types:  commit.Types,
		input:  input,
	}

	// Preselect the configured default type
	for i, t := range m.types {
		if t == cfg.DefaultType {
			m.typeCursor = i
			break
		}
	}

	if path, version, err := svc.GitVersion(); err != nil {
		m.gitErr = err
	} else {
		m.gitLine = fmt.Sprintf("%s (git version %s)", path, version)
	}

	return m, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commitDoneMsg:
		m.committing = false
		if msg.err != nil {
			m.commitErr = msg.err
			m.outcome = nil
		} else {
			outcome := msg.outcome
			m.outcome = &outcome
			m.commitErr = nil
		}
		m.view = ResultView
		return m, nil

	case tea.KeyMsg:
		// The message view owns most keys; handle it separately so typed
		// characters are not swallowed by bindings.
		if m.view == MessageView {
			return m.updateMessageView(msg)
		}

		// Clear status on any key
		m.statusMsg = ""
		m.statusErr = false

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, keys.Enter):
			switch m.view {
			case TypeView:
				m.selectedType = m.types[m.typeCursor]
				m.view = MessageView
				m.input.Focus()
			case ResultView:
				m.reset()
			}

		case key.Matches(msg, keys.Back):
			if m.view == ResultView {
				m.reset()
			}
		}
	}

	return m, nil
}

func (m *Model) updateMessageView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.view = TypeView
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		message := strings.TrimSpace(m.input.Value())
		if message == "" {
			m.statusMsg = "Commit message required"
			m.statusErr = true
			return m, nil
		}
		m.committing = true
		return m, m.runCommit(message)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if m.view != TypeView {
		return
	}
	m.typeCursor += delta
	if m.typeCursor < 0 {
		m.typeCursor = 0
	}
	if m.typeCursor >= len(m.types) {
		m.typeCursor = len(m.types) - 1
	}
}

// reset returns to the type picker for another commit.
func (m *Model) reset() {
	m.view = TypeView
	m.outcome = nil
	m.commitErr = nil
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) runCommit(message string) tea.Cmd {
	commitType := m.selectedType
	dir := config.ExpandPath(m.config.DefaultPath)
	return func() tea.Msg {
		outcome, err := m.svc.Commit(message, commitType, dir)
		return commitDoneMsg{outcome: outcome, err: err}
	}
}

type commitDoneMsg struct {
	outcome ports.CommitOutcome
	err     error
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.view {
	case TypeView:
		content = m.renderTypeView()
	case MessageView:
		content = m.renderMessageView()
	case ResultView:
		content = m.renderResultView()
	}

	return appStyle.Render(content)
}

func (m *Model) renderTypeView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" gitorade "))
	b.WriteString("\n\n")

	if m.gitErr != nil {
		b.WriteString(errorStyle.Render(m.gitErr.Error()))
		b.WriteString("\n\n")
	} else if m.gitLine != "" {
		b.WriteString(dimStyle.Render(m.gitLine))
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.Render("  COMMIT TYPE"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", 30)))
	b.WriteString("\n")

	for i, t := range m.types {
		cursor := "  "
		style := normalStyle
		if i == m.typeCursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(t))
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.statusMsg))
		} else {
			b.WriteString(dimStyle.Render(m.statusMsg))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))
	return b.String()
}

func (m *Model) renderMessageView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" gitorade "))
	b.WriteString("\n\n")

	b.WriteString(normalStyle.Render("Type: "))
	b.WriteString(selectedStyle.Render("[" + m.selectedType + "]"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.committing {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Committing..."))
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter commit · esc back · ctrl+c quit"))
	return b.String()
}

func (m *Model) renderResultView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" gitorade "))
	b.WriteString("\n\n")

	switch {
	case m.commitErr != nil:
		b.WriteString(errorStyle.Render("✗ " + m.commitErr.Error()))
		b.WriteString("\n")

	case m.outcome != nil && m.outcome.ExitCode != 0:
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ git exited with code %d", m.outcome.ExitCode)))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(strings.TrimRight(m.outcome.Output, "\n")))
		b.WriteString("\n")

	case m.outcome != nil:
		b.WriteString(successStyle.Render("✓ committed: " + m.outcome.Message))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(strings.TrimRight(m.outcome.Output, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter new commit · q quit"))
	return b.String()
}

// Run starts the TUI with the production commit service.
func Run() error {
	m, err := NewModel(commitsvc.New())
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
