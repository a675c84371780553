package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Dispatch DispatchConfig
	EmailJS  EmailJSConfig
}

type ServerConfig struct {
	Port int
}

// DatabaseConfig configures the optional order-request ledger. With
// Enabled=false orders go to a bounded in-memory ledger.
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrateOnStart  bool
	// MemoryLimit caps the in-memory ledger used when Enabled is false.
	MemoryLimit int
}

type LogConfig struct {
	Level  string
	Format string
}

type CatalogConfig struct {
	Path string
	// DefaultDiscountCap is in minor currency units.
	DefaultDiscountCap int64
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
	CookieName    string
}

type CheckoutConfig struct {
	SuccessDelay time.Duration
	FailureDelay time.Duration
}

type DispatchConfig struct {
	SurfaceFailures bool
	ToEmail         string
}

type EmailJSConfig struct {
	Endpoint          string
	ServiceID         string
	OrderTemplateID   string
	ContactTemplateID string
	PublicKey         string
	PrivateKey        string
	RequestTimeout    time.Duration
}

// Configured reports whether enough settings are present to talk to EmailJS.
func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.PublicKey != "" && c.OrderTemplateID != ""
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.SetDefault("DB_ENABLED", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "portfolio")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "portfolio")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 2)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("DB_MIGRATE_ON_START", true)
	viper.SetDefault("LEDGER_MEMORY_LIMIT", 1000)

	viper.SetDefault("CATALOG_PATH", "config/catalog.yaml")
	viper.SetDefault("PRICING_DEFAULT_DISCOUNT_CAP", 1000000)

	viper.SetDefault("SESSION_TTL", "2h")
	viper.SetDefault("SESSION_SWEEP_INTERVAL", "5m")
	viper.SetDefault("SESSION_COOKIE_NAME", "portfolio_session")

	viper.SetDefault("CHECKOUT_SUCCESS_DELAY", "1500ms")
	viper.SetDefault("CHECKOUT_FAILURE_DELAY", "3s")

	viper.SetDefault("DISPATCH_SURFACE_FAILURES", false)
	viper.SetDefault("DISPATCH_TO_EMAIL", "hello@example.com")

	viper.SetDefault("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	viper.SetDefault("EMAILJS_SERVICE_ID", "")
	viper.SetDefault("EMAILJS_ORDER_TEMPLATE_ID", "")
	viper.SetDefault("EMAILJS_CONTACT_TEMPLATE_ID", "")
	viper.SetDefault("EMAILJS_PUBLIC_KEY", "")
	viper.SetDefault("EMAILJS_PRIVATE_KEY", "")
	viper.SetDefault("EMAILJS_REQUEST_TIMEOUT", "15s")

	var (
		connMaxLifetime, sessionTTL, sweepInterval time.Duration
		successDelay, failureDelay, emailTimeout   time.Duration
	)
	durations := map[string]*time.Duration{
		"DB_CONN_MAX_LIFETIME":    &connMaxLifetime,
		"SESSION_TTL":             &sessionTTL,
		"SESSION_SWEEP_INTERVAL":  &sweepInterval,
		"CHECKOUT_SUCCESS_DELAY":  &successDelay,
		"CHECKOUT_FAILURE_DELAY":  &failureDelay,
		"EMAILJS_REQUEST_TIMEOUT": &emailTimeout,
	}

	for key, dst := range durations {
		d, err := time.ParseDuration(viper.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		*dst = d
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Enabled:         viper.GetBool("DB_ENABLED"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
			MigrateOnStart:  viper.GetBool("DB_MIGRATE_ON_START"),
			MemoryLimit:     viper.GetInt("LEDGER_MEMORY_LIMIT"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Catalog: CatalogConfig{
			Path:               viper.GetString("CATALOG_PATH"),
			DefaultDiscountCap: viper.GetInt64("PRICING_DEFAULT_DISCOUNT_CAP"),
		},
		Session: SessionConfig{
			TTL:           sessionTTL,
			SweepInterval: sweepInterval,
			CookieName:    viper.GetString("SESSION_COOKIE_NAME"),
		},
		Checkout: CheckoutConfig{
			SuccessDelay: successDelay,
			FailureDelay: failureDelay,
		},
		Dispatch: DispatchConfig{
			SurfaceFailures: viper.GetBool("DISPATCH_SURFACE_FAILURES"),
			ToEmail:         viper.GetString("DISPATCH_TO_EMAIL"),
		},
		EmailJS: EmailJSConfig{
			Endpoint:          viper.GetString("EMAILJS_ENDPOINT"),
			ServiceID:         viper.GetString("EMAILJS_SERVICE_ID"),
			OrderTemplateID:   viper.GetString("EMAILJS_ORDER_TEMPLATE_ID"),
			ContactTemplateID: viper.GetString("EMAILJS_CONTACT_TEMPLATE_ID"),
			PublicKey:         viper.GetString("EMAILJS_PUBLIC_KEY"),
			PrivateKey:        viper.GetString("EMAILJS_PRIVATE_KEY"),
			RequestTimeout:    emailTimeout,
		},
	}

	return cfg, nil
}
