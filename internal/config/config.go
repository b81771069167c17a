package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	KeyServerURL    = "server.url"
	KeyProfilesPath = "profiles.path"
	KeyProfile      = "profile"
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
	KeyHTTPTimeout  = "http.timeout"

	EnvPrefix = "PCHAT"

	DefaultServerURL   = "http://127.0.0.1:3000"
	DefaultProfile     = "default"
	DefaultLogLevel    = "warn"
	DefaultHTTPTimeout = 60 * time.Second

	dirName  = ".pchat"
	fileName = "config.toml"
)

// Config is the resolved view of the settings every command needs.
type Config struct {
	ServerURL    string
	Profile      string
	ProfilesPath string
	LogLevel     zerolog.Level
	LogFile      string
	HTTPTimeout  time.Duration
}

// Dir is the directory pchat keeps its config, profiles and logs in.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, dirName), nil
}

// New returns a viper instance with defaults, PCHAT_ environment overrides and
// the config file at path applied. An empty path means ~/.pchat/config.toml;
// a missing default file is not an error.
func New(path string) (*viper.Viper, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeyServerURL, DefaultServerURL)
	v.SetDefault(KeyProfile, DefaultProfile)
	v.SetDefault(KeyProfilesPath, filepath.Join(dir, "profiles.toml"))
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, filepath.Join(dir, "pchat.log"))
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, fileName)
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return v, nil
}

func Resolve(v *viper.Viper) (Config, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	timeout := v.GetDuration(KeyHTTPTimeout)
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid %s %q: must be a positive duration", KeyHTTPTimeout, v.GetString(KeyHTTPTimeout))
	}

	serverURL := strings.TrimSpace(v.GetString(KeyServerURL))
	if serverURL == "" {
		return Config{}, fmt.Errorf("%s is required", KeyServerURL)
	}

	profile := strings.TrimSpace(v.GetString(KeyProfile))
	if profile == "" {
		profile = DefaultProfile
	}

	return Config{
		ServerURL:    serverURL,
		Profile:      profile,
		ProfilesPath: v.GetString(KeyProfilesPath),
		LogLevel:     level,
		LogFile:      v.GetString(KeyLogFile),
		HTTPTimeout:  timeout,
	}, nil
}
