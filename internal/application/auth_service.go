package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/persona-chat/internal/domain"
	"github.com/bnema/persona-chat/internal/ports"
	"github.com/rs/zerolog"
)

// AuthService keeps a profile's session token in the secret store and the
// reference to it in the profile repository.
type AuthService struct {
	repo   ports.ProfileRepository
	store  ports.SecretStore
	logger zerolog.Logger
}

func NewAuthService(repo ports.ProfileRepository, store ports.SecretStore, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		store:  store,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

func TokenSecretKey(profile string) string {
	return fmt.Sprintf("pchat://%s/session_token", profile)
}

func (s *AuthService) Profile(ctx context.Context, name string) (domain.Profile, error) {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Profile{}, fmt.Errorf("get profile by name: %w", err)
		}
		profile = domain.Profile{Name: name}
	}

	return profile, nil
}

// Login authenticates against the profile's server and stores the session
// token. The stored secret is removed again if the profile cannot be saved.
func (s *AuthService) Login(ctx context.Context, auth ports.AuthTransport, cmd LoginCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	profile, err := s.Profile(ctx, cmd.Profile)
	if err != nil {
		return err
	}
	previousTokenRef := profile.TokenRef

	token, err := auth.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return fmt.Errorf("log in as %s: %w", cmd.Email, err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("log in as %s: server returned an empty session token", cmd.Email)
	}

	secretKey := TokenSecretKey(cmd.Profile)
	if err := s.store.Put(ctx, secretKey, token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	profile.ServerURL = cmd.ServerURL
	profile.Email = cmd.Email
	profile.TokenRef = secretKey

	if err := s.repo.Save(ctx, profile); err != nil {
		if rollbackErr := s.store.Delete(ctx, secretKey); rollbackErr != nil {
			return fmt.Errorf("save profile and rollback stored token: %w", errors.Join(err, rollbackErr))
		}

		return fmt.Errorf("save profile: %w", err)
	}

	if previousTokenRef != "" && previousTokenRef != secretKey {
		if err := s.store.Delete(ctx, previousTokenRef); err != nil {
			s.logger.Warn().Err(err).Str("secret_ref", previousTokenRef).Msg("previous session token left behind")
		}
	}

	s.logger.Info().Str("profile", cmd.Profile).Str("email", cmd.Email).Msg("logged in")
	return nil
}

// Logout ends the server session and forgets the local token. Local cleanup
// runs even when the server call fails; all failures are reported.
func (s *AuthService) Logout(ctx context.Context, auth ports.AuthTransport, name string) error {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("get profile by name: %w", err)
	}
	if !profile.LoggedIn() {
		return domain.ErrNotLoggedIn
	}

	var errs []error
	if err := auth.Logout(ctx); err != nil {
		errs = append(errs, fmt.Errorf("end server session: %w", err))
	}

	if err := s.store.Delete(ctx, profile.TokenRef); err != nil {
		errs = append(errs, fmt.Errorf("delete session token: %w", err))
		return errors.Join(errs...)
	}

	profile.TokenRef = ""
	if err := s.repo.Save(ctx, profile); err != nil {
		errs = append(errs, fmt.Errorf("save profile: %w", err))
	}

	return errors.Join(errs...)
}

// Token returns the stored session token for a profile.
func (s *AuthService) Token(ctx context.Context, name string) (string, error) {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return "", domain.ErrNotLoggedIn
		}
		return "", fmt.Errorf("get profile by name: %w", err)
	}
	if !profile.LoggedIn() {
		return "", domain.ErrNotLoggedIn
	}

	token, err := s.store.Get(ctx, profile.TokenRef)
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}

	return token, nil
}

func (s *AuthService) Register(ctx context.Context, users ports.UserTransport, cmd RegisterCommand) (domain.UserID, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	id, err := users.CreateUser(ctx, cmd.Name, cmd.Email, cmd.Password)
	if err != nil {
		return "", fmt.Errorf("register %s: %w", cmd.Email, err)
	}

	return id, nil
}

// Status reports the profile and, when logged in, the user the server
// associates with its session. users may be nil to skip the server lookup.
func (s *AuthService) Status(ctx context.Context, users ports.UserTransport, name string) (ProfileStatus, error) {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return ProfileStatus{}, fmt.Errorf("get profile by name: %w", err)
	}

	status := ProfileStatus{Profile: profile, LoggedIn: profile.LoggedIn()}
	if !status.LoggedIn || users == nil {
		return status, nil
	}

	user, err := users.CurrentUser(ctx)
	if err != nil {
		return status, fmt.Errorf("get current user: %w", err)
	}
	status.User = &user

	return status, nil
}

// RememberAgent records the last agent opened with a profile so commands can
// default to it.
func (s *AuthService) RememberAgent(ctx context.Context, name string, agentID domain.AgentID) error {
	profile, err := s.Profile(ctx, name)
	if err != nil {
		return err
	}
	if profile.LastAgentID == agentID {
		return nil
	}

	profile.LastAgentID = agentID
	if err := s.repo.Save(ctx, profile); err != nil {
		return fmt.Errorf("save profile last agent: %w", err)
	}

	return nil
}
