package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform administration (requires an admin session)",
	}

	cmd.AddCommand(
		newAdminUsersCmd(app),
		newAdminUserCmd(app),
		newAdminUpdateUserCmd(app),
		newAdminDeleteUserCmd(app),
		newAdminSessionsCmd(app),
		newAdminRevokeSessionCmd(app),
	)

	return cmd
}

func newAdminUsersCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, users, func(w io.Writer) error {
				return writeUsersText(w, users)
			})
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func newAdminUserCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "user <user-id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.GetUser(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, user, func(w io.Writer) error {
				return writeUsersText(w, []domain.User{user})
			})
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func newAdminUpdateUserCmd(app *app) *cobra.Command {
	var flags userUpdateFlags

	cmd := &cobra.Command{
		Use:   "update-user <user-id>",
		Short: "Change a user's name, email or password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := flags.toUpdate(cmd)
			if err != nil {
				return err
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.UpdateUser(cmd.Context(), domain.UserID(args[0]), update)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", user.ID)
			return err
		},
	}

	flags.register(cmd)

	return cmd
}

func newAdminDeleteUserCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-user <user-id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.DeleteUser(cmd.Context(), domain.UserID(args[0])); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
			return err
		},
	}
}

func newAdminSessionsCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List active sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			sessions, err := client.ListSessions(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, sessions, func(w io.Writer) error {
				if len(sessions) == 0 {
					_, err := fmt.Fprintln(w, "no sessions")
					return err
				}
				for _, session := range sessions {
					if _, err := fmt.Fprintf(w, "%s\tuser=%s\n", session.ID, session.UserID); err != nil {
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

func newAdminRevokeSessionCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-session <session-id>",
		Short: "Revoke a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.DeleteSession(cmd.Context(), domain.SessionID(args[0])); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Revoked session %s\n", args[0])
			return err
		},
	}
}
