package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	chatrender "github.com/bnema/persona-chat/internal/adapters/render/chat"
	tomlrepo "github.com/bnema/persona-chat/internal/adapters/repo/toml"
	chainstore "github.com/bnema/persona-chat/internal/adapters/secrets/chain"
	"github.com/bnema/persona-chat/internal/adapters/transport/httpapi"
	"github.com/bnema/persona-chat/internal/adapters/tui"
	"github.com/bnema/persona-chat/internal/application"
	"github.com/bnema/persona-chat/internal/config"
	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/logging"
	"github.com/bnema/persona-chat/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type globalFlags struct {
	configPath string
	profile    string
	server     string
	verbose    bool
}

type app struct {
	flags globalFlags

	cfg        config.Config
	viper      *viper.Viper
	logger     zerolog.Logger
	logCloser  io.Closer
	auth       *application.AuthService
	httpClient *http.Client
	clock      ports.Clock

	renderSession func(application.Snapshot, chatrender.RenderOptions) (string, error)
	runChat       func(context.Context, *application.ChatSession, domain.AgentID, tui.Options) error
	readPassword  func(cmd *cobra.Command, prompt string) (string, error)
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.flags.configPath)
	if err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyProfile, cmd.Root().PersistentFlags().Lookup("profile")); err != nil {
		return fmt.Errorf("bind profile flag: %w", err)
	}

	cfg, err := config.Resolve(v)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Verbose: a.flags.verbose,
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return fmt.Errorf("wire profile repository: %w", err)
	}

	configDir, err := config.Dir()
	if err != nil {
		return err
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(configDir, "secrets"), logger)
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}

	a.cfg = cfg
	a.viper = v
	a.logger = logger
	a.logCloser = closer
	a.auth = application.NewAuthService(repo, secretStore, logger)
	if a.httpClient == nil {
		a.httpClient = http.DefaultClient
	}
	if a.clock == nil {
		a.clock = ports.SystemClock{}
	}
	if a.renderSession == nil {
		a.renderSession = chatrender.Render
	}
	if a.runChat == nil {
		a.runChat = tui.Run
	}
	if a.readPassword == nil {
		a.readPassword = promptPassword
	}

	logger.Debug().
		Str("profile", cfg.Profile).
		Str("config", v.ConfigFileUsed()).
		Str("profiles", repo.Path()).
		Msg("pchat wired")

	return nil
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}

	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

func (a *app) profileName() string {
	return a.cfg.Profile
}

// serverURL picks the platform endpoint: --server, then an explicit config or
// environment setting, then the URL the profile logged in against, then the
// default.
func (a *app) serverURL(ctx context.Context) (string, error) {
	if server := strings.TrimSpace(a.flags.server); server != "" {
		return server, nil
	}

	fromEnv := os.Getenv(config.EnvPrefix+"_SERVER_URL") != ""
	if fromEnv || a.viper.InConfig(config.KeyServerURL) {
		return a.cfg.ServerURL, nil
	}

	profile, err := a.auth.Profile(ctx, a.profileName())
	if err != nil {
		return "", err
	}
	if profile.ServerURL != "" {
		return profile.ServerURL, nil
	}

	return a.cfg.ServerURL, nil
}

func (a *app) client(ctx context.Context) (*httpapi.Client, error) {
	baseURL, err := a.serverURL(ctx)
	if err != nil {
		return nil, err
	}

	profile := a.profileName()
	return &httpapi.Client{
		BaseURL:    baseURL,
		HTTPClient: a.httpClient,
		Tokens: httpapi.TokenFunc(func(ctx context.Context) (string, error) {
			token, err := a.auth.Token(ctx, profile)
			if errors.Is(err, domain.ErrNotLoggedIn) {
				return "", fmt.Errorf("profile %q is not logged in: run `pchat login`", profile)
			}
			return token, err
		}),
		RequestTimeout: a.cfg.HTTPTimeout,
		Logger:         a.logger,
	}, nil
}

// resolveAgentID returns the requested agent or the last one used with the
// profile.
func (a *app) resolveAgentID(ctx context.Context, raw string) (domain.AgentID, error) {
	if requested := strings.TrimSpace(raw); requested != "" {
		return domain.AgentID(requested), nil
	}

	profile, err := a.auth.Profile(ctx, a.profileName())
	if err != nil {
		return "", err
	}
	if profile.LastAgentID == "" {
		return "", errors.New("no agent selected: pass --agent")
	}

	return profile.LastAgentID, nil
}

func (a *app) newChatSession(client *httpapi.Client) *application.ChatSession {
	return application.NewChatSession(client, client, a.clock, a.logger)
}
