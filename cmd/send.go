package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/persona-chat/internal/application"
	"github.com/bnema/persona-chat/internal/domain"
	"github.com/spf13/cobra"
)

type sendResult struct {
	ConversationID domain.ConversationID  `json:"conversation_id" yaml:"conversation_id"`
	Reply          domain.Message         `json:"reply" yaml:"reply"`
	Persona        domain.PersonaSnapshot `json:"persona" yaml:"persona"`
}

func newSendCmd(app *app) *cobra.Command {
	var agent string
	var conversation string
	var startNew bool
	var showMind bool
	var output string

	cmd := &cobra.Command{
		Use:   "send <text>...",
		Short: "Send one message and print the agent's reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("message text is empty")
			}

			agentID, err := app.resolveAgentID(cmd.Context(), agent)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			session := app.newChatSession(client)
			turn := func(ctx context.Context) error {
				return runSingleTurn(ctx, session, agentID, domain.ConversationID(conversation), startNew, text)
			}
			if err := runTurnProgress(cmd.Context(), cmd.ErrOrStderr(), session, turn); err != nil {
				return err
			}

			if err := app.auth.RememberAgent(cmd.Context(), app.profileName(), agentID); err != nil {
				app.logger.Warn().Err(err).Msg("could not remember last agent")
			}

			snapshot := session.State.Snapshot()
			result := sendResult{ConversationID: snapshot.SelectedID, Persona: snapshot.Persona}
			if n := len(snapshot.Messages); n > 0 {
				result.Reply = snapshot.Messages[n-1]
			}

			return writeOutput(cmd, output, result, func(w io.Writer) error {
				return writeReplyText(w, snapshot, result, showMind)
			})
		},
	}

	addAgentFlag(cmd, &agent)
	cmd.Flags().StringVarP(&conversation, "conversation", "c", "", "Conversation ID (default: the agent's first conversation)")
	cmd.Flags().BoolVar(&startNew, "new", false, "Start a new conversation for this message")
	cmd.Flags().BoolVar(&showMind, "mind", false, "Show the agent's inner thoughts")
	addOutputFlag(cmd, &output)
	cmd.MarkFlagsMutuallyExclusive("conversation", "new")

	return cmd
}

// runSingleTurn opens the agent, settles on a conversation and sends text
// through the turn controller. Without a conversation to pick, one is created.
func runSingleTurn(ctx context.Context, session *application.ChatSession, agentID domain.AgentID, conversationID domain.ConversationID, startNew bool, text string) error {
	if err := session.Store.OpenAgent(ctx, agentID); err != nil {
		return err
	}

	switch {
	case startNew:
		if err := session.Store.Create(ctx, agentID); err != nil {
			return err
		}
	case conversationID != "":
		if err := session.Store.Select(ctx, conversationID); err != nil {
			return err
		}
	case session.State.Snapshot().SelectedID == "":
		if err := session.Store.Create(ctx, agentID); err != nil {
			return err
		}
	}

	selected := session.State.Snapshot().SelectedID
	if selected == "" {
		return errors.New("no conversation to send to")
	}

	return session.Turns.Send(ctx, selected, text)
}

func writeReplyText(w io.Writer, snapshot application.Snapshot, result sendResult, showMind bool) error {
	name := result.Reply.Name
	if name == "" && snapshot.Agent != nil {
		name = snapshot.Agent.Name
	}
	if name == "" {
		name = "Agent"
	}

	if _, err := fmt.Fprintf(w, "%s: %s\n", name, result.Reply.Content); err != nil {
		return err
	}
	if showMind && result.Reply.Mind != "" {
		if _, err := fmt.Fprintf(w, "(%s)\n", result.Reply.Mind); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "[%s, favorability %d] conversation %s\n", result.Persona.Emotion, result.Persona.Favorability, result.ConversationID)
	return err
}
