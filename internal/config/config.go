package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const EnvProduction = "production"

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	JWTSecret     string `env:"JWT_SECRET"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	StripeSecretKey     string   `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string   `env:"STRIPE_WEBHOOK_SECRET"`
	StripeCurrency      string   `env:"STRIPE_CURRENCY"           envDefault:"usd"`
	ShippingCountries   []string `env:"STRIPE_SHIPPING_COUNTRIES" envDefault:"US" envSeparator:","`
	CheckoutSuccessURL  string   `env:"CHECKOUT_SUCCESS_URL"      envDefault:"http://localhost:3000/checkout/success"`
	CheckoutCancelURL   string   `env:"CHECKOUT_CANCEL_URL"       envDefault:"http://localhost:3000/cart"`

	ShipstationBaseURL   string          `env:"SHIPSTATION_BASE_URL"     envDefault:"https://ssapi.shipstation.com"`
	ShipstationAPIKey    string          `env:"SHIPSTATION_API_KEY"`
	ShipstationAPISecret string          `env:"SHIPSTATION_API_SECRET"`
	ShipstationCarrier   string          `env:"SHIPSTATION_CARRIER_CODE" envDefault:"stamps_com"`
	ShipFromPostalCode   string          `env:"SHIP_FROM_POSTAL_CODE"`
	DefaultItemWeightOz  float64         `env:"DEFAULT_ITEM_WEIGHT_OZ"   envDefault:"8"`
	FlatShippingRate     decimal.Decimal `env:"FLAT_SHIPPING_RATE"       envDefault:"9.99"`

	MailerBaseURL string `env:"MAILER_BASE_URL"`
	MailerAPIKey  string `env:"MAILER_API_KEY"`
	MailFrom      string `env:"MAIL_FROM"       envDefault:"orders@localhost"`

	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"15s"`
	TaskWorkers     uint          `env:"TASK_WORKERS"     envDefault:"4"`
	TaskQueueSize   uint          `env:"TASK_QUEUE_SIZE"  envDefault:"256"`
}

// IsProduction окружение определяется по APP_ENV.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// LoadConfig читает необязательный .env, переменные окружения и флаги командной строки.
// Переменные окружения имеют приоритет над флагами.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.ParseWithOptions(&envConfig, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(decimal.Decimal{}): func(v string) (any, error) {
				return decimal.NewFromString(v)
			},
		},
	}); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if c.StripeSecretKey == "" {
		errs = append(errs, errors.New("STRIPE_SECRET_KEY is not set"))
	}
	if c.StripeWebhookSecret == "" {
		errs = append(errs, errors.New("STRIPE_WEBHOOK_SECRET is not set"))
	}
	if c.FlatShippingRate.IsNegative() {
		errs = append(errs, errors.New("FLAT_SHIPPING_RATE must not be negative"))
	}
	return errors.Join(errs...)
}

func loadFlags(flagConfig *Config, args []string) error {
	flagSet := flag.NewFlagSet("storefront", flag.ContinueOnError)
	flagSet.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flagSet.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flagSet.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")

	return flagSet.Parse(args) //nolint:wrapcheck
}

// mergeConfig флаги задают только адрес, DSN и каталог миграций, остальное берется из окружения.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
