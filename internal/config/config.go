package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	AuthMode       string   `mapstructure:"AUTH_MODE"`
	AuthJWTSecret  string   `mapstructure:"AUTH_JWT_SECRET"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	Workers        int      `mapstructure:"WORKERS"`

	// Postgres is only used by the migrate command and the optional
	// postgres catalog source; the serving path works without it.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32  `mapstructure:"DB_MIN_CONNS"`

	CatalogSource     string `mapstructure:"CATALOG_SOURCE"`
	LOINCTableFile    string `mapstructure:"LOINC_TABLE_FILE"`
	ICD10PCSTableFile string `mapstructure:"ICD10PCS_TABLE_FILE"`
	TerminologyFile   string `mapstructure:"TERMINOLOGY_FILE"`

	LLMEnabled             bool          `mapstructure:"LLM_ENABLED"`
	LLMBaseURL             string        `mapstructure:"LLM_BASE_URL"`
	LLMAPIKey              string        `mapstructure:"LLM_API_KEY"`
	LLMModel               string        `mapstructure:"LLM_MODEL"`
	LLMTimeout             time.Duration `mapstructure:"LLM_TIMEOUT"`
	LLMConfidenceThreshold string        `mapstructure:"LLM_CONFIDENCE_THRESHOLD"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("AUTH_MODE", "") // auto-detect: "" -> inferred from ENV
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("WORKERS", 0) // 0 -> one worker per CPU
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CATALOG_SOURCE", "builtin")
	v.SetDefault("LLM_ENABLED", false)
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_TIMEOUT", "30s")
	v.SetDefault("LLM_CONFIDENCE_THRESHOLD", "Low")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("AUTH_MODE")
	v.BindEnv("AUTH_JWT_SECRET")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("WORKERS")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CATALOG_SOURCE")
	v.BindEnv("LOINC_TABLE_FILE")
	v.BindEnv("ICD10PCS_TABLE_FILE")
	v.BindEnv("TERMINOLOGY_FILE")
	v.BindEnv("LLM_ENABLED")
	v.BindEnv("LLM_BASE_URL")
	v.BindEnv("LLM_API_KEY")
	v.BindEnv("LLM_MODEL")
	v.BindEnv("LLM_TIMEOUT")
	v.BindEnv("LLM_CONFIDENCE_THRESHOLD")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDev() {
		log.Println("WARNING: ============================================================")
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: DevAuthMiddleware is active — all requests get admin access.")
		log.Println("WARNING: Do NOT use this configuration in production.")
		log.Println("WARNING: Set ENV=production and AUTH_JWT_SECRET for production.")
		log.Println("WARNING: ============================================================")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ResolvedAuthMode returns the effective auth mode. If AUTH_MODE is explicitly
// set, it is returned. Otherwise, the mode is inferred:
//   - ENV=development → "disabled" (no auth, all requests get admin)
//   - Otherwise       → "jwt" (HS256 bearer tokens)
func (c *Config) ResolvedAuthMode() string {
	if c.AuthMode != "" {
		return c.AuthMode
	}
	if c.IsDev() {
		return "disabled"
	}
	return "jwt"
}

// Validate checks that the configuration is safe to run. Outside
// development, JWT auth needs a signing secret; file and database catalog
// sources need their inputs named.
func (c *Config) Validate() error {
	mode := c.ResolvedAuthMode()
	switch mode {
	case "disabled":
		// nothing to check
	case "jwt":
		if c.AuthJWTSecret == "" {
			return fmt.Errorf(
				"AUTH_JWT_SECRET must be set when AUTH_MODE is \"jwt\" (current ENV=%q). "+
					"Refusing to start without authentication configuration. "+
					"Use AUTH_MODE=disabled only for local development", c.Env)
		}
	default:
		return fmt.Errorf("AUTH_MODE must be \"disabled\" or \"jwt\", got %q", mode)
	}

	switch c.CatalogSource {
	case "builtin":
		// compiled-in tables, nothing to check
	case "csv":
		if c.LOINCTableFile == "" {
			return fmt.Errorf("LOINC_TABLE_FILE is required when CATALOG_SOURCE is \"csv\"")
		}
		if c.ICD10PCSTableFile == "" {
			return fmt.Errorf("ICD10PCS_TABLE_FILE is required when CATALOG_SOURCE is \"csv\"")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when CATALOG_SOURCE is \"postgres\"")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be \"builtin\", \"csv\", or \"postgres\", got %q", c.CatalogSource)
	}

	if c.LLMEnabled && c.LLMBaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL is required when LLM_ENABLED is true")
	}

	if c.Workers < 0 {
		return fmt.Errorf("WORKERS must be >= 0, got %d", c.Workers)
	}

	return nil
}
