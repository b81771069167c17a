package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/persona-chat/internal/adapters/render/chat"
	"github.com/bnema/persona-chat/internal/application"
	"github.com/bnema/persona-chat/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type snapshotMsg application.Snapshot

type opDoneMsg struct {
	op  string
	err error
}

type Options struct {
	ShowMind bool
	Logger   zerolog.Logger
}

// Model is the interactive chat. It never mutates session state itself; every
// change goes through the session store or turn controller inside a tea.Cmd
// and comes back as a snapshot.
type Model struct {
	ctx     context.Context
	session *application.ChatSession
	agentID domain.AgentID
	logger  zerolog.Logger
	keys    keyMap

	updates     chan application.Snapshot
	unsubscribe func()

	snapshot  application.Snapshot
	lastDraft string
	showMind  bool

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func NewModel(ctx context.Context, session *application.ChatSession, agentID domain.AgentID, opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "Type a message"
	input.Prompt = "> "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		ctx:      ctx,
		session:  session,
		agentID:  agentID,
		logger:   opts.Logger.With().Str("component", "tui").Logger(),
		keys:     defaultKeyMap(),
		updates:  make(chan application.Snapshot, 1),
		showMind: opts.ShowMind,
		input:    input,
		spinner:  spin,
		snapshot: session.State.Snapshot(),
	}
	m.unsubscribe = session.State.Subscribe(m.publish)

	return m
}

// publish keeps only the newest snapshot queued. It runs on the goroutine
// that mutated the state and must not block it.
func (m *Model) publish(snapshot application.Snapshot) {
	select {
	case m.updates <- snapshot:
		return
	default:
	}

	select {
	case <-m.updates:
	default:
	}
	m.updates <- snapshot
}

func (m *Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		select {
		case snapshot := <-m.updates:
			return snapshotMsg(snapshot)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.waitForSnapshot(),
		m.run("open agent", func(ctx context.Context) error {
			return m.session.Store.OpenAgent(ctx, m.agentID)
		}),
	)
}

func (m *Model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(m.ctx)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refreshViewport()

	case snapshotMsg:
		m.applySnapshot(application.Snapshot(msg))
		cmds = append(cmds, m.waitForSnapshot())

	case opDoneMsg:
		m.logOp(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

		if !m.snapshot.Pending {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
			if value := m.input.Value(); value != m.lastDraft {
				m.lastDraft = value
				m.session.State.SetDraft(value)
			}
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		return tea.Quit, true

	case key.Matches(msg, m.keys.Send):
		text := m.input.Value()
		conversationID := m.snapshot.SelectedID
		if m.snapshot.Pending || strings.TrimSpace(text) == "" || conversationID == "" {
			return nil, true
		}
		m.input.Reset()
		m.lastDraft = ""
		return m.run("send", func(ctx context.Context) error {
			err := m.session.Turns.Send(ctx, conversationID, text)
			if errors.Is(err, domain.ErrConversationNotActive) || errors.Is(err, domain.ErrTurnInFlight) {
				m.session.State.RestoreDraft(text)
			}
			return err
		}), true

	case key.Matches(msg, m.keys.New):
		return m.run("create conversation", func(ctx context.Context) error {
			return m.session.Store.Create(ctx, m.agentID)
		}), true

	case key.Matches(msg, m.keys.Delete):
		conversationID := m.snapshot.SelectedID
		if conversationID == "" {
			return nil, true
		}
		return m.run("delete conversation", func(ctx context.Context) error {
			return m.session.Store.Remove(ctx, conversationID)
		}), true

	case key.Matches(msg, m.keys.Prev):
		return m.selectRelative(-1), true

	case key.Matches(msg, m.keys.Next):
		return m.selectRelative(1), true

	case key.Matches(msg, m.keys.Dismiss):
		m.session.State.DismissPageError()
		m.session.State.DismissSendError()
		return nil, true

	case key.Matches(msg, m.keys.Mind):
		m.showMind = !m.showMind
		m.refreshViewport()
		return nil, true
	}

	return nil, false
}

func (m *Model) selectRelative(delta int) tea.Cmd {
	conversations := m.snapshot.Conversations
	if len(conversations) == 0 {
		return nil
	}

	index := -1
	for i, conversation := range conversations {
		if conversation.ID == m.snapshot.SelectedID {
			index = i
			break
		}
	}

	next := index + delta
	if index < 0 {
		next = 0
	}
	if next < 0 || next >= len(conversations) {
		return nil
	}

	target := conversations[next].ID
	return m.run("select conversation", func(ctx context.Context) error {
		return m.session.Store.Select(ctx, target)
	})
}

func (m *Model) applySnapshot(snapshot application.Snapshot) {
	if snapshot.Version != 0 && snapshot.Version < m.snapshot.Version {
		return
	}

	messagesChanged := len(snapshot.Messages) != len(m.snapshot.Messages) ||
		snapshot.SelectedID != m.snapshot.SelectedID ||
		snapshot.Pending != m.snapshot.Pending
	m.snapshot = snapshot

	if snapshot.Draft != m.lastDraft {
		m.lastDraft = snapshot.Draft
		m.input.SetValue(snapshot.Draft)
		m.input.CursorEnd()
	}

	if snapshot.Pending {
		m.input.Blur()
	} else {
		m.input.Focus()
	}

	m.resize()
	m.refreshViewport()
	if messagesChanged {
		m.viewport.GotoBottom()
	}
}

func (m *Model) logOp(msg opDoneMsg) {
	if msg.err == nil {
		m.logger.Debug().Str("op", msg.op).Msg("operation finished")
		return
	}

	event := m.logger.Warn()
	if errors.Is(msg.err, domain.ErrTurnInFlight) || errors.Is(msg.err, context.Canceled) {
		event = m.logger.Debug()
	}
	event.Err(msg.err).Str("op", msg.op).Msg("operation failed")
}

func (m *Model) chrome() (top string, bottom string) {
	top = lipgloss.JoinVertical(lipgloss.Left, chat.Header(m.snapshot), m.tabLine())

	inputLine := m.input.View()
	if m.snapshot.Pending {
		inputLine = m.spinner.View() + " waiting for reply"
	}

	parts := []string{}
	if notices := chat.Notices(m.snapshot); notices != "" {
		parts = append(parts, notices)
	}
	parts = append(parts, inputLine, helpStyle.Render(m.keys.helpLine()))
	bottom = lipgloss.JoinVertical(lipgloss.Left, parts...)

	return top, bottom
}

var (
	helpStyle      = lipgloss.NewStyle().Faint(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159"))
)

func (m *Model) tabLine() string {
	if len(m.snapshot.Conversations) == 0 {
		return tabStyle.Render("no conversations · ctrl+n to start one")
	}

	tabs := make([]string, 0, len(m.snapshot.Conversations))
	for _, conversation := range m.snapshot.Conversations {
		if conversation.ID == m.snapshot.SelectedID {
			tabs = append(tabs, activeTabStyle.Render("["+conversation.DisplayTitle()+"]"))
			continue
		}
		tabs = append(tabs, tabStyle.Render(conversation.DisplayTitle()))
	}

	return strings.Join(tabs, " ")
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	top, bottom := m.chrome()
	height := m.height - lipgloss.Height(top) - lipgloss.Height(bottom)
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(chat.Transcript(m.snapshot, chat.RenderOptions{
		Width:    m.width,
		ShowMind: m.showMind,
	}))
}

func (m *Model) View() string {
	top, bottom := m.chrome()
	if !m.ready {
		return lipgloss.JoinVertical(lipgloss.Left, top, "", bottom)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, m.viewport.View(), bottom)
}

// Run starts the interactive chat for agentID and blocks until the user quits.
func Run(ctx context.Context, session *application.ChatSession, agentID domain.AgentID, opts Options) error {
	m := NewModel(ctx, session, agentID, opts)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}
