package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/spf13/cobra"
)

func newAgentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents",
	}

	cmd.AddCommand(
		newAgentListCmd(app),
		newAgentShowCmd(app),
		newAgentCreateCmd(app),
		newAgentDeleteCmd(app),
	)

	return cmd
}

func newAgentListCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the agents of the logged-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			agents, err := client.ListAgents(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, agents, func(w io.Writer) error {
				if len(agents) == 0 {
					_, err := fmt.Fprintln(w, "no agents")
					return err
				}
				for _, agent := range agents {
					if err := writeAgentLine(w, agent); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func newAgentShowCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show [agent-id]",
		Short: "Show an agent and its current persona",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, err := app.resolveAgentID(cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			agent, err := client.GetAgent(cmd.Context(), agentID)
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, agent, func(w io.Writer) error {
				return writeAgentLine(w, agent)
			})
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func newAgentCreateCmd(app *app) *cobra.Command {
	var metaID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agent from an agent meta",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			id, err := client.CreateAgent(cmd.Context(), domain.AgentMetaID(metaID))
			if err != nil {
				return err
			}
			if err := app.auth.RememberAgent(cmd.Context(), app.profileName(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created agent %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&metaID, "meta", "", "Agent meta ID")
	_ = cmd.MarkFlagRequired("meta")

	return cmd
}

func newAgentDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <agent-id>",
		Short: "Delete an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			agentID := domain.AgentID(args[0])
			if err := client.DeleteAgent(cmd.Context(), agentID); err != nil {
				return err
			}

			profile, err := app.auth.Profile(cmd.Context(), app.profileName())
			if err != nil {
				return err
			}
			if profile.LastAgentID == agentID {
				if err := app.auth.RememberAgent(cmd.Context(), app.profileName(), ""); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted agent %s\n", agentID)
			return err
		},
	}
}

func writeAgentLine(w io.Writer, agent domain.Agent) error {
	_, err := fmt.Fprintf(w, "%s\t%s\temotion=%s\tfavorability=%d\n", agent.ID, agent.Name, agent.Emotion, agent.Favorability)
	return err
}

func newMetaCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Manage agent metas (character templates)",
	}

	cmd.AddCommand(newMetaListCmd(app), newMetaCreateCmd(app))

	return cmd
}

func newMetaListCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agent metas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			metas, err := client.ListAgentMetas(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, metas, func(w io.Writer) error {
				if len(metas) == 0 {
					_, err := fmt.Fprintln(w, "no agent metas")
					return err
				}
				for _, meta := range metas {
					if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", meta.ID, meta.Name, meta.Description); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func newMetaCreateCmd(app *app) *cobra.Command {
	var meta domain.AgentMeta

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agent meta",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			id, err := client.CreateAgentMeta(cmd.Context(), meta)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created agent meta %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&meta.Name, "name", "", "Character name")
	cmd.Flags().StringVar(&meta.Description, "description", "", "Short description")
	cmd.Flags().StringVar(&meta.CharacterDesign, "character-design", "", "Character design prompt")
	cmd.Flags().StringVar(&meta.ResponseRequirement, "response-requirement", "", "Response requirement prompt")
	cmd.Flags().StringVar(&meta.CharacterEmotionSplit, "emotion-split", "", "Character emotion split")
	cmd.Flags().StringVar(&meta.Model, "model", "", "Model name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
