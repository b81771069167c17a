package cmd

import (
	"github.com/bnema/persona-chat/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var agent string
	var showMind bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat with an agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agentID, err := app.resolveAgentID(cmd.Context(), agent)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.auth.RememberAgent(cmd.Context(), app.profileName(), agentID); err != nil {
				return err
			}

			return app.runChat(cmd.Context(), app.newChatSession(client), agentID, tui.Options{
				ShowMind: showMind,
				Logger:   app.logger,
			})
		},
	}

	addAgentFlag(cmd, &agent)
	cmd.Flags().BoolVar(&showMind, "mind", false, "Show the agent's inner thoughts")

	return cmd
}
