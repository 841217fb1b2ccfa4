package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-required:"true"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-required:"true"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15m"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

// SessionConfig controls how long shopper snapshots (cart, boxes, language)
// live in the session store after the last write.
type SessionConfig struct {
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"720h"`
}

type PricingConfig struct {
	DeliveryFee  decimal.Decimal `yaml:"delivery_fee" env:"DELIVERY_FEE" env-default:"1.00"`
	MinimumOrder decimal.Decimal `yaml:"minimum_order" env:"MINIMUM_ORDER" env-default:"10.00"`
}

type CheckoutConfig struct {
	BaseURL        string `yaml:"base_url" env:"CHECKOUT_BASE_URL" env-default:"https://wa.me"`
	WhatsAppNumber string `yaml:"whatsapp_number" env:"WHATSAPP_NUMBER" env-default:"962790796457"`
}

type SendGrid struct {
	APIKey               string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail            string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL"`
	FromName             string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Grocery Storefront"`
	NotificationsEnabled bool   `yaml:"NOTIFICATIONS_ENABLED" env:"SENDGRID_NOTIFICATIONS_ENABLED" env-default:"false"`
	OwnerEmail           string `yaml:"OWNER_EMAIL" env:"SENDGRID_OWNER_EMAIL"`
}

type OTel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"grocery-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Database     Database       `yaml:"database"`
	RedisConnect RedisConnect   `yaml:"redis"`
	RateConfig   RateConfig     `yaml:"rateConfig"`
	Security     Security       `yaml:"security"`
	Cache        CacheConfig    `yaml:"cache"`
	Session      SessionConfig  `yaml:"session"`
	Pricing      PricingConfig  `yaml:"pricing"`
	Checkout     CheckoutConfig `yaml:"checkout"`
	SendGrid     SendGrid       `yaml:"sendgrid"`
	OTel         OTel           `yaml:"otel"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags
	}

	if configPath == "" {
		configPath = "config/local.yaml"
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
