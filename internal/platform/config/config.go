package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultRoleAccounts maps every well-known role to the account code used when
// no ROLE_* variable overrides it.
var DefaultRoleAccounts = map[domain.AccountRole]string{
	domain.RoleAccountsPayable:      "2100",
	domain.RoleAccountsReceivable:   "1200",
	domain.RoleSalesRevenue:         "4100",
	domain.RoleConsumablesExpense:   "5100",
	domain.RoleInventory:            "1300",
	domain.RoleOpeningBalanceEquity: "3900",
}

// Config holds application configuration.
type Config struct {
	DatabaseURL         string
	Port                string
	IsProduction        bool
	EnableDBCheck       bool
	LogLevel            string
	JWTSecret           string // empty disables bearer auth
	RateLimit           string
	CORSAllowedOrigins  []string
	MigrationsOnStart   bool
	ChartOfAccountsFile string

	// AllowUnbalancedAdjustments lets manual adjustments bypass the debit == credit check.
	AllowUnbalancedAdjustments bool

	// RoleAccounts maps each well-known role to an account code or name.
	RoleAccounts map[domain.AccountRole]string
}

// roleKey is the environment variable that maps a role, e.g. ROLE_ACCOUNTS_PAYABLE.
func roleKey(role domain.AccountRole) string {
	return "ROLE_" + string(role)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MIGRATIONS_ON_START", true)
	v.SetDefault("CHART_OF_ACCOUNTS_FILE", "")
	v.SetDefault("LEDGER_ALLOW_UNBALANCED_ADJUSTMENTS", false)
	for role, code := range DefaultRoleAccounts {
		v.SetDefault(roleKey(role), code)
	}

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:                v.GetString("PGSQL_URL"),
		Port:                       v.GetString("PORT"),
		IsProduction:               v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:              v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:                   strings.ToLower(v.GetString("LOG_LEVEL")),
		JWTSecret:                  v.GetString("JWT_SECRET"),
		RateLimit:                  v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:         splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsOnStart:          v.GetBool("MIGRATIONS_ON_START"),
		ChartOfAccountsFile:        v.GetString("CHART_OF_ACCOUNTS_FILE"),
		AllowUnbalancedAdjustments: v.GetBool("LEDGER_ALLOW_UNBALANCED_ADJUSTMENTS"),
		RoleAccounts:               make(map[domain.AccountRole]string, len(domain.AccountRoles)),
	}
	for _, role := range domain.AccountRoles {
		cfg.RoleAccounts[role] = strings.TrimSpace(v.GetString(roleKey(role)))
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. API authentication is disabled.")
	}
	if cfg.AllowUnbalancedAdjustments {
		log.Println("Warning: LEDGER_ALLOW_UNBALANCED_ADJUSTMENTS is enabled. Manual adjustments are not balance checked.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails when a well-known role is left without an account mapping.
func (c *Config) Validate() error {
	var missing []string
	for _, role := range domain.AccountRoles {
		if c.RoleAccounts[role] == "" {
			missing = append(missing, roleKey(role))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("account roles not mapped: %s", strings.Join(missing, ", "))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
