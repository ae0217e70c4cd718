package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Schedule data modes. The mode decides how the assembler reacts to remote
// failures and empty results.
const (
	ModeLive            = "live"
	ModeMock            = "mock"
	ModeFallbackOnError = "fallback-on-error"
)

// Config represents the application configuration. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		StaticDir    string        `yaml:"static_dir"`
	} `yaml:"server"`

	CurrentRMS struct {
		BaseURL   string        `yaml:"base_url"`
		Subdomain string        `yaml:"subdomain"`
		APIKey    string        `yaml:"api_key"`
		Timeout   time.Duration `yaml:"timeout"`
		// Outbound request rate towards the Current RMS API, requests per second.
		RateLimit float64 `yaml:"rate_limit"`
		RateBurst int     `yaml:"rate_burst"`
	} `yaml:"current_rms"`

	Schedule struct {
		Mode string `yaml:"mode"`
	} `yaml:"schedule"`

	Logging struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		FilePath string `yaml:"file_path"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// Load loads configuration from file and environment variables.
// Missing Current RMS credentials are not rejected here; they surface as
// authentication errors on the first remote call.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 4000
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.StaticDir = "web/dist"

	config.CurrentRMS.BaseURL = "https://api.current-rms.com/api/v1"
	config.CurrentRMS.Timeout = 30 * time.Second
	config.CurrentRMS.RateLimit = 5
	config.CurrentRMS.RateBurst = 5

	config.Schedule.Mode = ModeFallbackOnError

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if staticDir := os.Getenv("STATIC_DIR"); staticDir != "" {
		c.Server.StaticDir = staticDir
	}

	if subdomain := os.Getenv("CURRENT_RMS_SUBDOMAIN"); subdomain != "" {
		c.CurrentRMS.Subdomain = subdomain
	}

	if apiKey := os.Getenv("CURRENT_RMS_API_KEY"); apiKey != "" {
		c.CurrentRMS.APIKey = apiKey
	}

	if baseURL := os.Getenv("CURRENT_RMS_BASE_URL"); baseURL != "" {
		c.CurrentRMS.BaseURL = baseURL
	}

	if timeout := os.Getenv("CURRENT_RMS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.CurrentRMS.Timeout = d
		}
	}

	if rateLimit := os.Getenv("CURRENT_RMS_RATE_LIMIT"); rateLimit != "" {
		if r, err := strconv.ParseFloat(rateLimit, 64); err == nil {
			c.CurrentRMS.RateLimit = r
		}
	}

	if mode := os.Getenv("SCHEDULE_MODE"); mode != "" {
		c.Schedule.Mode = mode
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		c.Logging.FilePath = logFile
	}
}

// validate rejects configuration values that cannot work at all
func (c *Config) validate() error {
	switch c.Schedule.Mode {
	case ModeLive, ModeMock, ModeFallbackOnError:
	default:
		return fmt.Errorf("invalid schedule mode %q (want %q, %q or %q)",
			c.Schedule.Mode, ModeLive, ModeMock, ModeFallbackOnError)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	return nil
}
