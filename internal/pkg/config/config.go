package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Store    StoreConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Issuance IssuanceConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"issuance"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// StoreConfig selects the transactional backend. MaxRetries bounds how many
// times a conflicting transaction body is re-run before surfacing as internal.
type StoreConfig struct {
	Driver     string        `envconfig:"STORE_DRIVER" default:"postgres"`
	MaxRetries int           `envconfig:"STORE_MAX_RETRIES" default:"5"`
	RetryBase  time.Duration `envconfig:"STORE_RETRY_BASE" default:"20ms"`
	// SeedFile is an optional YAML file of customers loaded into the memory store.
	SeedFile string `envconfig:"STORE_SEED_FILE"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER"`
}

type IssuanceConfig struct {
	CouponMonthlyCeiling int64  `envconfig:"COUPON_MONTHLY_CEILING" default:"600"`
	CouponMaxBatchSize   int64  `envconfig:"COUPON_MAX_BATCH_SIZE" default:"600"`
	CouponBatchPrefix    string `envconfig:"COUPON_BATCH_PREFIX" default:"DI"`
	OfferNumberPrefix    string `envconfig:"OFFER_NUMBER_PREFIX" default:"OFFERTA"`
	BusinessTimeZone     string `envconfig:"BUSINESS_TIMEZONE" default:"America/Bogota"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the configured zone is unknown to the host.
func (c IssuanceConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// numberPrefix is the shape accepted for COUPON_BATCH_PREFIX and OFFER_NUMBER_PREFIX.
var numberPrefix = regexp.MustCompile(`^[A-Z0-9]{1,16}$`)

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.MaxRetries < 0 {
		return fmt.Errorf("STORE_MAX_RETRIES must not be negative")
	}
	if c.Issuance.CouponMonthlyCeiling < 1 {
		return fmt.Errorf("COUPON_MONTHLY_CEILING must be positive")
	}
	if c.Issuance.CouponMaxBatchSize < 1 {
		return fmt.Errorf("COUPON_MAX_BATCH_SIZE must be positive")
	}
	if !numberPrefix.MatchString(c.Issuance.CouponBatchPrefix) {
		return fmt.Errorf("COUPON_BATCH_PREFIX %q must match %s", c.Issuance.CouponBatchPrefix, numberPrefix)
	}
	if !numberPrefix.MatchString(c.Issuance.OfferNumberPrefix) {
		return fmt.Errorf("OFFER_NUMBER_PREFIX %q must match %s", c.Issuance.OfferNumberPrefix, numberPrefix)
	}
	if _, err := time.LoadLocation(c.Issuance.BusinessTimeZone); err != nil {
		return fmt.Errorf("invalid BUSINESS_TIMEZONE: %w", err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Store: StoreConfig{
			Driver:     StoreDriverMemory,
			MaxRetries: 10,
			RetryBase:  time.Millisecond,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Issuance: IssuanceConfig{
			CouponMonthlyCeiling: 600,
			CouponMaxBatchSize:   600,
			CouponBatchPrefix:    "DI",
			OfferNumberPrefix:    "OFFERTA",
			BusinessTimeZone:     "UTC",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}
