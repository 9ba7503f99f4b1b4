// Package console is the terminal front-end: an interactive bubbletea UI
// on a TTY and a one-shot text report otherwise.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	service "github.com/okian/pressdetective/internal/app"
	"github.com/okian/pressdetective/internal/domain/model"
)

// SessionID is the single session the console drives.
const SessionID = "console"

// Backend is what the console needs from the service.
type Backend interface {
	Submit(ctx context.Context, sessionID, rawURL string) model.Outcome
	Page(ctx context.Context, sessionID string) (service.Page, error)
}

// Run launches the interactive UI. A non-empty initialURL is analyzed at once.
func Run(ctx context.Context, backend Backend, initialURL string) error {
	program := tea.NewProgram(NewModel(ctx, backend, DefaultTheme(), initialURL),
		tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("console.run: %w", err)
	}
	return nil
}

type pageMsg struct {
	page service.Page
	err  error
	// afterSubmit marks the reload that ends a submission.
	afterSubmit bool
}

type submittedMsg struct {
	outcome model.Outcome
}

// Model is the bubbletea model of the console UI.
type Model struct {
	ctx      context.Context
	backend  Backend
	theme    Theme
	input    textinput.Model
	viewport viewport.Model
	page     service.Page
	pending  string
	busy     bool
	ready    bool
	err      error
}

// NewModel builds the UI model.
func NewModel(ctx context.Context, backend Backend, th Theme, initialURL string) Model {
	in := textinput.New()
	in.Placeholder = "뉴스 URL을 입력하세요"
	in.Prompt = "URL › "
	in.CharLimit = 2048
	in.SetValue(initialURL)
	in.Focus()
	pending := strings.TrimSpace(initialURL)
	return Model{
		ctx:      ctx,
		backend:  backend,
		theme:    th,
		input:    in,
		viewport: viewport.New(0, 0),
		pending:  pending,
		busy:     pending != "",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.start())
}

// start either submits the initial URL or loads the page, never both, so
// the first page read cannot consume the submission's notice.
func (m Model) start() tea.Cmd {
	if m.pending != "" {
		return m.submit(m.pending)
	}
	return m.loadPage(false)
}

func (m Model) loadPage(afterSubmit bool) tea.Cmd {
	return func() tea.Msg {
		p, err := m.backend.Page(m.ctx, SessionID)
		return pageMsg{page: p, err: err, afterSubmit: afterSubmit}
	}
}

func (m Model) submit(url string) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{outcome: m.backend.Submit(m.ctx, SessionID, url)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.submit(m.input.Value())
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.ready = true
		m.refresh()
		return m, nil
	case submittedMsg:
		return m, m.loadPage(true)
	case pageMsg:
		if msg.afterSubmit {
			m.busy = false
		}
		m.page, m.err = msg.page, msg.err
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if m.err != nil {
		m.viewport.SetContent(m.theme.Notice.Render(m.err.Error()))
		return
	}
	m.viewport.SetContent(Render(m.page, m.theme))
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	status := "enter 분석 • ↑/↓ 스크롤 • esc 종료"
	if m.busy {
		status = "분석 중..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.input.View(),
		m.theme.Help.Render(status),
	)
}

// Page returns the page currently shown.
func (m Model) Page() service.Page { return m.page }

// Busy reports whether a submission is in flight.
func (m Model) Busy() bool { return m.busy }
