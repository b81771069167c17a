package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show or change the logged-in user",
	}

	cmd.AddCommand(newAccountShowCmd(app), newAccountUpdateCmd(app))

	return cmd
}

func newAccountShowCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.CurrentUser(cmd.Context())
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

func newAccountUpdateCmd(app *app) *cobra.Command {
	var flags userUpdateFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the logged-in user's name, email or password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, err := flags.toUpdate(cmd)
			if err != nil {
				return err
			}
			if update.Password != nil && update.OldPassword == "" {
				update.OldPassword, err = app.readPassword(cmd, "Current password: ")
				if err != nil {
					return err
				}
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.UpdateCurrentUser(cmd.Context(), update)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", user.ID)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.oldPassword, "old-password", "", "Current password (prompted when changing the password)")

	return cmd
}

type userUpdateFlags struct {
	name        string
	email       string
	password    string
	oldPassword string
}

func (f *userUpdateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "New display name")
	cmd.Flags().StringVar(&f.email, "email", "", "New email")
	cmd.Flags().StringVar(&f.password, "password", "", "New password")
}

func (f *userUpdateFlags) toUpdate(cmd *cobra.Command) (domain.UserUpdate, error) {
	update := domain.UserUpdate{OldPassword: f.oldPassword}
	if cmd.Flags().Changed("name") {
		update.Name = &f.name
	}
	if cmd.Flags().Changed("email") {
		update.Email = &f.email
	}
	if cmd.Flags().Changed("password") {
		update.Password = &f.password
	}

	if update.Name == nil && update.Email == nil && update.Password == nil {
		return domain.UserUpdate{}, fmt.Errorf("nothing to update: pass --name, --email or --password")
	}

	return update, nil
}

func writeUsersText(w io.Writer, users []domain.User) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "no users")
		return err
	}

	for _, user := range users {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", user.ID, user.Name, user.Email); err != nil {
			return err
		}
	}

	return nil
}
