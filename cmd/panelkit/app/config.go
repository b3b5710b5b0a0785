package app

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/panelkit/pkg/constants"
	pkgerrors "github.com/agentstation/panelkit/pkg/errors"
)

// EnvPrefix prefixes every environment variable panelkit reads through viper.
const EnvPrefix = "PANELKIT"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Panel connection
	BaseURL           string
	Session           string
	SessionCookie     string
	Timeout           time.Duration
	DetailStatusCheck bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. PANELKIT_* environment variables
// 3. .env and .env.local files
// 4. Config file (configFile, or ~/.panelkit.yaml and ./.panelkit.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", constants.DefaultBaseURL)
	v.SetDefault("session_cookie", constants.DefaultSessionCookie)
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, pkgerrors.NewConfigError("config file", configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".panelkit")

		// A missing default config file is fine
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, pkgerrors.NewConfigError("config file", "reading .panelkit.yaml", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		BaseURL:           v.GetString("base_url"),
		Session:           v.GetString("session"),
		SessionCookie:     v.GetString("session_cookie"),
		Timeout:           v.GetDuration("timeout"),
		DetailStatusCheck: v.GetBool("detail_status_check"),

		LogLevel:  firstNonEmpty(v.GetString("log_level"), os.Getenv("LOG_LEVEL")),
		LogFormat: firstNonEmpty(os.Getenv("LOG_FORMAT"), v.GetString("log_format")),
		LogOutput: firstNonEmpty(os.Getenv("LOG_OUTPUT"), v.GetString("log_output")),
	}

	return config, nil
}

// Flags holds the global command-line flags.
type Flags struct {
	ConfigFile string
	BaseURL    string
	Verbose    bool
	Quiet      bool
	NoColor    bool
	Format     string
	LogLevel   string
}

// UpdateFromFlags updates config values from parsed command flags.
// Only flags that were set override the loaded configuration.
func (c *Config) UpdateFromFlags(f *Flags) {
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.Verbose {
		c.Verbose = true
	}
	if f.Quiet {
		c.Quiet = true
	}
	if f.NoColor {
		c.NoColor = true
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
