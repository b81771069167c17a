package chat

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/persona-chat/internal/application"
	"github.com/bnema/persona-chat/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const favorabilityBarWidth = 20

type RenderOptions struct {
	// Width wraps message bodies; zero disables wrapping.
	Width             int
	ShowConversations bool
	ShowMind          bool
}

// View renders a whole session snapshot for one-shot output.
func View(snapshot application.Snapshot, opts RenderOptions) string {
	s := newStyles()
	sections := []string{header(snapshot, s)}

	if opts.ShowConversations {
		sections = append(sections, s.section.Render(conversationList(snapshot, s)))
	}

	sections = append(sections, s.section.Render(transcript(snapshot, opts, s)))

	if notices := noticeLines(snapshot, s); len(notices) > 0 {
		sections = append(sections, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, notices...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Header shows the agent and its current persona.
func Header(snapshot application.Snapshot) string {
	return header(snapshot, newStyles())
}

// Transcript renders the message history of the selected conversation.
func Transcript(snapshot application.Snapshot, opts RenderOptions) string {
	return transcript(snapshot, opts, newStyles())
}

func Conversations(snapshot application.Snapshot) string {
	return conversationList(snapshot, newStyles())
}

// Notices renders the page and send notices, or "" when there are none.
func Notices(snapshot application.Snapshot) string {
	return strings.Join(noticeLines(snapshot, newStyles()), "\n")
}

func header(snapshot application.Snapshot, s styles) string {
	name := string(snapshot.AgentID)
	if snapshot.Agent != nil && snapshot.Agent.Name != "" {
		name = snapshot.Agent.Name
	}
	if name == "" {
		name = "No agent"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.agent.Render(name),
		personaLine(snapshot.Persona, s),
	)
}

func personaLine(persona domain.PersonaSnapshot, s styles) string {
	emotion := persona.Emotion
	if emotion == "" {
		emotion = "unknown"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("emotion: "+emotion),
		"  ",
		s.detail.Render("favorability: "),
		renderFavorabilityBar(persona.Favorability, favorabilityBarWidth, s),
		" ",
		lipgloss.NewStyle().Foreground(interpolateColor(float64(persona.Favorability), 0, 100)).
			Render(fmt.Sprintf("%d", persona.Favorability)),
	)
}

func conversationList(snapshot application.Snapshot, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("conversations: %d", len(snapshot.Conversations)))}
	if len(snapshot.Conversations) == 0 {
		lines = append(lines, s.empty.Render("No conversations yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, conversation := range snapshot.Conversations {
		label := fmt.Sprintf("%s (%s)", conversation.DisplayTitle(), conversation.ID)
		if conversation.ID == snapshot.SelectedID {
			lines = append(lines, s.selected.Render("> "+label))
			continue
		}
		lines = append(lines, s.detail.Render("  "+label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func transcript(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	if snapshot.SelectedID == "" {
		return s.empty.Render("No conversation selected.")
	}
	if len(snapshot.Messages) == 0 && !snapshot.Pending {
		return s.empty.Render("No messages yet. Say hello.")
	}

	agentName := "Agent"
	if snapshot.Agent != nil && snapshot.Agent.Name != "" {
		agentName = snapshot.Agent.Name
	}

	blocks := make([]string, 0, len(snapshot.Messages)+1)
	for _, msg := range snapshot.Messages {
		blocks = append(blocks, renderMessage(msg, agentName, opts, s))
	}
	if snapshot.Pending {
		blocks = append(blocks, s.pending.Render(agentName+" is typing..."))
	}

	return strings.Join(blocks, "\n")
}

func renderMessage(msg domain.Message, agentName string, opts RenderOptions, s styles) string {
	body := msg.Content
	if opts.Width > 0 {
		body = lipgloss.NewStyle().Width(opts.Width).Render(body)
	}

	if msg.Role != domain.RoleAssistant {
		return s.user.Render("You") + "\n" + body
	}

	speaker := agentName
	if msg.Name != "" {
		speaker = msg.Name
	}

	title := s.assistant.Render(speaker)
	if tags := personaTags(msg); tags != "" {
		title += " " + s.emotion.Render(tags)
	}

	lines := []string{title, body}
	if opts.ShowMind && msg.Mind != "" {
		lines = append(lines, s.mind.Render("("+msg.Mind+")"))
	}

	return strings.Join(lines, "\n")
}

func personaTags(msg domain.Message) string {
	var tags []string
	if msg.Emotion != "" {
		tags = append(tags, msg.Emotion)
	}
	if msg.Favorability != nil {
		tags = append(tags, fmt.Sprintf("♥ %d", *msg.Favorability))
	}
	if len(tags) == 0 {
		return ""
	}

	return "[" + strings.Join(tags, ", ") + "]"
}

func noticeLines(snapshot application.Snapshot, s styles) []string {
	var lines []string
	if snapshot.PageError != nil {
		lines = append(lines, s.warning.Render(formatNotice("error", snapshot.PageError)))
	}
	if snapshot.SendError != nil {
		lines = append(lines, s.notice.Render(formatNotice("not sent", snapshot.SendError)))
	}

	return lines
}

func formatNotice(label string, notice *application.Notice) string {
	return fmt.Sprintf("%s: %s (status %d)", label, notice.Message, notice.Status)
}

func renderFavorabilityBar(favorability int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := clampPercent(float64(favorability)) / 100.0
	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 is the faded end of the greyscale ramp, 255 the brightest.
	interpolated := 240.0 + 15.0*normalized

	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}
