package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/persona-chat/internal/application"
	"github.com/bnema/persona-chat/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type progressSnapshotMsg application.Snapshot

type turnFinishedMsg struct {
	err      error
	snapshot application.Snapshot
}

var (
	progressSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	progressUserStyle    = lipgloss.NewStyle().Bold(true)
	progressFailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// turnProgressModel follows one turn through the session state. While the
// reply is pending it shows the message that went out; a failed turn leaves
// the send notice behind.
type turnProgressModel struct {
	spinner  spinner.Model
	updates  chan application.Snapshot
	stop     <-chan struct{}
	snapshot application.Snapshot
	run      tea.Cmd
	err      error
	done     bool
}

func newTurnProgressModel(initial application.Snapshot, run tea.Cmd, stop <-chan struct{}) turnProgressModel {
	return turnProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(progressSpinnerStyle),
		),
		updates:  make(chan application.Snapshot, 1),
		stop:     stop,
		snapshot: initial,
		run:      run,
	}
}

// publish is the state subscriber. Only the newest snapshot stays queued.
func (m turnProgressModel) publish(snapshot application.Snapshot) {
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

func (m turnProgressModel) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		select {
		case snapshot := <-m.updates:
			return progressSnapshotMsg(snapshot)
		case <-m.stop:
			return nil
		}
	}
}

func (m turnProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForSnapshot(), m.run)
}

func (m turnProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressSnapshotMsg:
		if msg.Version >= m.snapshot.Version {
			m.snapshot = application.Snapshot(msg)
		}
		return m, m.waitForSnapshot()
	case turnFinishedMsg:
		m.done = true
		m.err = msg.err
		m.snapshot = msg.snapshot
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m turnProgressModel) View() string {
	if m.done {
		notice := m.snapshot.SendError
		if m.err == nil || notice == nil {
			return ""
		}
		return progressFailStyle.Render(fmt.Sprintf("not sent: %s (status %d)", notice.Message, notice.Status)) + "\n"
	}

	if !m.snapshot.Pending {
		return fmt.Sprintf("%s opening conversation...", m.spinner.View())
	}

	waiting := fmt.Sprintf("%s waiting for %s", m.spinner.View(), agentName(m.snapshot))
	sent, ok := lastUserMessage(m.snapshot.Messages)
	if !ok {
		return waiting
	}

	return progressUserStyle.Render("you: ") + sent.Content + "\n" + waiting
}

func agentName(snapshot application.Snapshot) string {
	if snapshot.Agent != nil && snapshot.Agent.Name != "" {
		return snapshot.Agent.Name
	}
	return "the agent"
}

func lastUserMessage(messages []domain.Message) (domain.Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			return messages[i], true
		}
	}
	return domain.Message{}, false
}

// runTurnProgress runs turn while rendering its progress from session's state
// on output.
func runTurnProgress(ctx context.Context, output io.Writer, session *application.ChatSession, turn func(context.Context) error) error {
	stop := make(chan struct{})
	defer close(stop)

	runCmd := func() tea.Msg {
		err := turn(ctx)
		return turnFinishedMsg{err: err, snapshot: session.State.Snapshot()}
	}

	model := newTurnProgressModel(session.State.Snapshot(), runCmd, stop)
	unsubscribe := session.State.Subscribe(model.publish)
	defer unsubscribe()

	p := tea.NewProgram(
		model,
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(turnProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
