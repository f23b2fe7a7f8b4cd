package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	JWT      JWTConfig      `yaml:"jwt"`
	Log      LogConfig      `yaml:"log"`
	Jobs     JobsConfig     `yaml:"jobs"`
}

// ServerConfig contains HTTP and gRPC listener settings
type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	GRPCPort            int    `yaml:"grpc_port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SMTPConfig contains email service settings. When Enabled is false, rental
// notifications are only logged.
type SMTPConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// JWTConfig contains employee token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// JobsConfig contains cron schedules for the job runner
type JobsConfig struct {
	OverdueReport string `yaml:"overdue_report"`
	ReportEmail   string `yaml:"report_email"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// SMTP
	if val := os.Getenv("SMTP_ENABLED"); val != "" {
		c.SMTP.Enabled = val == "true" || val == "1"
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.GRPCPort)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.Server.GRPCPort)
	}
	if c.Server.GRPCPort != 0 && c.Server.GRPCPort == c.Server.Port {
		return fmt.Errorf("gRPC port must differ from server port")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.SMTP.Enabled {
		if c.SMTP.Host == "" {
			return fmt.Errorf("SMTP host is required when SMTP is enabled")
		}
		if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.SMTP.Port)
		}
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	// Defaults
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = 15
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = 15
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}
	if c.Jobs.OverdueReport == "" {
		c.Jobs.OverdueReport = "0 0 6 * * *" // Daily at 6 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health server address
func (c *Config) GetGRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}

// AccessTokenTTL returns the employee token lifetime
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiry) * time.Minute
}
