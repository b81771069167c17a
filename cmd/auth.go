package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/persona-chat/internal/application"
	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token for the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				password, err = app.readPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.auth.Login(cmd.Context(), client, application.LoginCommand{
				Profile:   app.profileName(),
				ServerURL: client.BaseURL,
				Email:     email,
				Password:  password,
			}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (profile %s)\n", email, app.profileName())
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the server session and forget the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.auth.Logout(cmd.Context(), client, app.profileName()); err != nil {
				if errors.Is(err, domain.ErrProfileNotFound) {
					return domain.ErrNotLoggedIn
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged out (profile %s)\n", app.profileName())
			return err
		},
	}
}

func newRegisterCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a platform user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				password, err = app.readPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			id, err := app.auth.Register(cmd.Context(), client, application.RegisterCommand{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered user %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newWhoamiCmd(app *app) *cobra.Command {
	var output string
	var offline bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile and the user it is logged in as",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var users ports.UserTransport
			if !offline {
				client, err := app.client(cmd.Context())
				if err != nil {
					return err
				}
				users = client
			}

			status, err := app.auth.Status(cmd.Context(), users, app.profileName())
			if errors.Is(err, domain.ErrProfileNotFound) {
				status, err = application.ProfileStatus{Profile: domain.Profile{Name: app.profileName()}}, nil
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, whoamiView(status), func(w io.Writer) error {
				return writeWhoamiText(w, status)
			})
		},
	}

	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the server lookup")

	return cmd
}

type whoami struct {
	Profile     string       `json:"profile" yaml:"profile"`
	ServerURL   string       `json:"server_url,omitempty" yaml:"server_url,omitempty"`
	Email       string       `json:"email,omitempty" yaml:"email,omitempty"`
	LoggedIn    bool         `json:"logged_in" yaml:"logged_in"`
	LastAgentID string       `json:"last_agent_id,omitempty" yaml:"last_agent_id,omitempty"`
	User        *domain.User `json:"user,omitempty" yaml:"user,omitempty"`
}

func whoamiView(status application.ProfileStatus) whoami {
	return whoami{
		Profile:     status.Profile.Name,
		ServerURL:   status.Profile.ServerURL,
		Email:       status.Profile.Email,
		LoggedIn:    status.LoggedIn,
		LastAgentID: string(status.Profile.LastAgentID),
		User:        status.User,
	}
}

func writeWhoamiText(w io.Writer, status application.ProfileStatus) error {
	if !status.LoggedIn {
		_, err := fmt.Fprintf(w, "profile %s: not logged in\n", status.Profile.Name)
		return err
	}

	if _, err := fmt.Fprintf(w, "profile %s: %s on %s\n", status.Profile.Name, status.Profile.Email, status.Profile.ServerURL); err != nil {
		return err
	}
	if status.User != nil {
		if _, err := fmt.Fprintf(w, "user: %s <%s> (%s)\n", status.User.Name, status.User.Email, status.User.ID); err != nil {
			return err
		}
	}
	if status.Profile.LastAgentID != "" {
		if _, err := fmt.Fprintf(w, "last agent: %s\n", status.Profile.LastAgentID); err != nil {
			return err
		}
	}

	return nil
}

func newHealthCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the platform is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.client(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.HealthCheck(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", client.BaseURL, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", client.BaseURL)
			return err
		},
	}
}

// promptPassword reads a password without echo from a terminal, or one line
// from stdin when it is piped.
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), prompt); err != nil {
			return "", err
		}
		raw, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
