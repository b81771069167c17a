package cmd

import (
	"fmt"
	"io"

	chatrender "github.com/bnema/persona-chat/internal/adapters/render/chat"
	"github.com/bnema/persona-chat/internal/domain"
	"github.com/spf13/cobra"
)

func newConversationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversation",
		Aliases: []string{"conv"},
		Short:   "Manage an agent's conversations",
	}

	cmd.AddCommand(
		newConversationListCmd(app),
		newConversationShowCmd(app),
		newConversationNewCmd(app),
		newConversationRemoveCmd(app),
	)

	return cmd
}

func newConversationListCmd(app *app) *cobra.Command {
	var agent string
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations with an agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agentID, err := app.resolveAgentID(cmd.Context(), agent)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			conversations, err := client.ListConversations(cmd.Context(), agentID)
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, conversations, func(w io.Writer) error {
				if len(conversations) == 0 {
					_, err := fmt.Fprintf(w, "no conversations with agent %s\n", agentID)
					return err
				}
				for _, conversation := range conversations {
					if _, err := fmt.Fprintf(w, "%s\t%s\n", conversation.ID, conversation.DisplayTitle()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	addAgentFlag(cmd, &agent)
	addOutputFlag(cmd, &output)

	return cmd
}

func newConversationShowCmd(app *app) *cobra.Command {
	var agent string
	var output string

	cmd := &cobra.Command{
		Use:   "show <conversation-id>",
		Short: "Show one conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, err := app.resolveAgentID(cmd.Context(), agent)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			conversation, err := client.GetConversation(cmd.Context(), agentID, domain.ConversationID(args[0]))
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, conversation, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s\t%s\tagent=%s\n", conversation.ID, conversation.DisplayTitle(), conversation.AgentID)
				return err
			})
		},
	}

	addAgentFlag(cmd, &agent)
	addOutputFlag(cmd, &output)

	return cmd
}

func newConversationNewCmd(app *app) *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new conversation with an agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agentID, err := app.resolveAgentID(cmd.Context(), agent)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			session := app.newChatSession(client)
			if err := session.Store.Create(cmd.Context(), agentID); err != nil {
				return err
			}
			if err := app.auth.RememberAgent(cmd.Context(), app.profileName(), agentID); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created conversation %s\n", session.State.Snapshot().SelectedID)
			return err
		},
	}

	addAgentFlag(cmd, &agent)

	return cmd
}

func newConversationRemoveCmd(app *app) *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:     "rm <conversation-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a conversation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, err := app.resolveAgentID(cmd.Context(), agent)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			session := app.newChatSession(client)
			if err := session.Store.OpenAgent(cmd.Context(), agentID); err != nil {
				return err
			}

			conversationID := domain.ConversationID(args[0])
			if err := session.Store.Remove(cmd.Context(), conversationID); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted conversation %s\n", conversationID)
			return err
		},
	}

	addAgentFlag(cmd, &agent)

	return cmd
}

func newMessageCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Read conversation histories",
	}

	cmd.AddCommand(newMessageListCmd(app))

	return cmd
}

func newMessageListCmd(app *app) *cobra.Command {
	var agent string
	var conversation string
	var output string
	var showMind bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a conversation's history and the agent's persona",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agentID, err := app.resolveAgentID(cmd.Context(), agent)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			session := app.newChatSession(client)
			if err := session.Store.OpenAgent(cmd.Context(), agentID); err != nil {
				return err
			}
			if conversation != "" {
				if err := session.Store.Select(cmd.Context(), domain.ConversationID(conversation)); err != nil {
					return err
				}
			}

			snapshot := session.State.Snapshot()
			return writeOutput(cmd, output, snapshot.Messages, func(w io.Writer) error {
				rendered, err := app.renderSession(snapshot, chatrender.RenderOptions{ShowConversations: true, ShowMind: showMind})
				if err != nil {
					return fmt.Errorf("render conversation: %w", err)
				}
				_, err = fmt.Fprintln(w, rendered)
				return err
			})
		},
	}

	addAgentFlag(cmd, &agent)
	cmd.Flags().StringVarP(&conversation, "conversation", "c", "", "Conversation ID (default: the agent's first conversation)")
	cmd.Flags().BoolVar(&showMind, "mind", false, "Show the agent's inner thoughts")
	addOutputFlag(cmd, &output)

	return cmd
}

func addAgentFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "agent", "a", "", "Agent ID (default: the last agent used with the profile)")
}
