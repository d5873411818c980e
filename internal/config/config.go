package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "postl-admin-backend/internal/errors"

	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreDriverREST     = "rest"
	StoreDriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Hosted backend
	SupabaseURL            string `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey        string `mapstructure:"SUPABASE_ANON_KEY"`
	SupabaseServiceRoleKey string `mapstructure:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseServiceKey     string `mapstructure:"SUPABASE_SERVICE_KEY"`
	BackendTimeoutSec      int    `mapstructure:"BACKEND_TIMEOUT_SEC"`

	// Tenant store
	StoreDriver   string `mapstructure:"STORE_DRIVER"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	TenantsTable  string `mapstructure:"TENANTS_TABLE"`
	ProfilesTable string `mapstructure:"PROFILES_TABLE"`

	// Tenant form behaviour
	DefaultTenantPassword      string `mapstructure:"DEFAULT_TENANT_PASSWORD"`
	DefaultContractYears       int    `mapstructure:"DEFAULT_CONTRACT_YEARS"`
	Timezone                   string `mapstructure:"TIMEZONE"`
	ReconcileTimeoutSec        int    `mapstructure:"RECONCILE_TIMEOUT_SEC"`
	CompensateOrphanedAccounts bool   `mapstructure:"COMPENSATE_ORPHANED_ACCOUNTS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Rate limiting
	RateLimitEnabled           bool `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitRequestsPerMinute int  `mapstructure:"RATE_LIMIT_REQUESTS_PER_MINUTE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Secrets have no usable default; registering them lets AutomaticEnv feed Unmarshal
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_ANON_KEY", "")
	v.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	v.SetDefault("SUPABASE_SERVICE_KEY", "")
	v.SetDefault("BACKEND_TIMEOUT_SEC", 15)

	v.SetDefault("STORE_DRIVER", StoreDriverREST)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("TENANTS_TABLE", "tenants")
	v.SetDefault("PROFILES_TABLE", "profiles")

	v.SetDefault("DEFAULT_TENANT_PASSWORD", "123456")
	v.SetDefault("DEFAULT_CONTRACT_YEARS", 1)
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("RECONCILE_TIMEOUT_SEC", 10)
	v.SetDefault("COMPENSATE_ORPHANED_ACCOUNTS", true)

	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_REQUESTS_PER_MINUTE", 120)
}

func validate(config *Config) error {
	if config.SupabaseURL == "" || config.SupabaseAnonKey == "" {
		return apperrors.NewConfigurationError("SUPABASE_URL and SUPABASE_ANON_KEY are required")
	}

	config.StoreDriver = strings.ToLower(strings.TrimSpace(config.StoreDriver))
	switch config.StoreDriver {
	case StoreDriverREST:
	case StoreDriverPostgres:
		if config.DatabaseURL == "" {
			return apperrors.NewConfigurationError("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unsupported STORE_DRIVER %q", config.StoreDriver))
	}

	if _, err := config.Location(); err != nil {
		return apperrors.NewConfigurationError(fmt.Sprintf("invalid TIMEZONE %q: %v", config.Timezone, err))
	}

	if config.DefaultContractYears < 1 {
		config.DefaultContractYears = 1
	}

	return nil
}

// ServiceKey returns the privileged key, preferring SUPABASE_SERVICE_ROLE_KEY.
func (c *Config) ServiceKey() string {
	if c.SupabaseServiceRoleKey != "" {
		return c.SupabaseServiceRoleKey
	}
	return c.SupabaseServiceKey
}

// HasServiceKey reports whether a privileged key was supplied
func (c *Config) HasServiceKey() bool {
	return c.ServiceKey() != ""
}

// AdminKey returns the key used for identity administration and profile writes.
// Without a service key it degrades to the public key; account creation and
// password resets will then be rejected by the backend.
func (c *Config) AdminKey() string {
	if key := c.ServiceKey(); key != "" {
		return key
	}
	return c.SupabaseAnonKey
}

// Location resolves TIMEZONE
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// BackendTimeout is the http.Client timeout for backend calls
func (c *Config) BackendTimeout() time.Duration {
	if c.BackendTimeoutSec <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.BackendTimeoutSec) * time.Second
}

// ReconcileTimeout bounds each detached reconciliation write
func (c *Config) ReconcileTimeout() time.Duration {
	if c.ReconcileTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ReconcileTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
