package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Ledger LedgerConfig
	Form   FormConfig
	Relay  RelayConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Submission-Ref"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// empty disables the rotating file sink
	File           string `envconfig:"LOG_FILE"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type LedgerConfig struct {
	CodePrefix        string   `envconfig:"LEDGER_CODE_PREFIX" default:"GC"`
	CodeMaxAttempts   int      `envconfig:"LEDGER_CODE_MAX_ATTEMPTS" default:"10"`
	RedeemMaxAttempts int      `envconfig:"LEDGER_REDEEM_MAX_ATTEMPTS" default:"3"`
	AllowedForms      []string `envconfig:"LEDGER_ALLOWED_FORMS"`
}

// FormConfig names the fields the form-submission webhook reads from loosely typed payloads.
type FormConfig struct {
	CodeField  string `envconfig:"FORM_CODE_FIELD" default:"gift_certificate_code"`
	TotalField string `envconfig:"FORM_TOTAL_FIELD" default:"order_total"`
	OrderField string `envconfig:"FORM_ORDER_FIELD" default:"order_id"`
}

type RelayConfig struct {
	Interval       time.Duration `envconfig:"RELAY_INTERVAL" default:"5s"`
	BatchSize      int           `envconfig:"RELAY_BATCH_SIZE" default:"50"`
	MaxAttempts    int           `envconfig:"RELAY_MAX_ATTEMPTS" default:"5"`
	WebhookURL     string        `envconfig:"RELAY_WEBHOOK_URL"`
	WebhookTimeout time.Duration `envconfig:"RELAY_WEBHOOK_TIMEOUT" default:"5s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
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
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Ledger: LedgerConfig{
			CodePrefix:        "GC",
			CodeMaxAttempts:   10,
			RedeemMaxAttempts: 3,
		},
		Form: FormConfig{
			CodeField:  "gift_certificate_code",
			TotalField: "order_total",
			OrderField: "order_id",
		},
		Relay: RelayConfig{
			Interval:       time.Second,
			BatchSize:      50,
			MaxAttempts:    5,
			WebhookTimeout: time.Second,
		},
	}
}
