package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pchat",
		Short:         "Persona chat client (pchat): talk to agents from the terminal",
		Long:          "pchat logs into a persona chat platform, manages agents and conversations, and runs chat turns either one at a time or in an interactive view that tracks the agent's emotion and favorability.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configPath, "config", "", "Config file (default ~/.pchat/config.toml)")
	flags.StringVarP(&app.flags.profile, "profile", "p", "", "Profile name (default from config, then \"default\")")
	flags.StringVar(&app.flags.server, "server", "", "Platform base URL (overrides the profile)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newHealthCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newAccountCmd(app),
		newAgentCmd(app),
		newMetaCmd(app),
		newConversationCmd(app),
		newMessageCmd(app),
		newSendCmd(app),
		newChatCmd(app),
		newAdminCmd(app),
	)

	return rootCmd
}
