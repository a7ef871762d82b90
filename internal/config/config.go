package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrMissingMagentoToken = errors.New("config: MAGENTO_API_TOKEN is required")

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Magento           Magento           `mapstructure:",squash"`
	Store             Store             `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	RemoteHealthCheck RemoteHealthCheck `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Magento struct {
	BaseURL              string        `mapstructure:"magento_base_url"`
	AccessToken          string        `mapstructure:"magento_api_token"`
	TimeoutSeconds       int           `mapstructure:"magento_timeout_seconds"`
	InsecureSkipVerify   bool          `mapstructure:"magento_insecure_skip_verify"`
	PageSize             int           `mapstructure:"magento_page_size"`
	MaxPages             int           `mapstructure:"magento_max_pages"`
	MaxConcurrentLookups int           `mapstructure:"magento_max_concurrent_lookups"`
	Timeout              time.Duration `mapstructure:"-"`
}

type Store struct {
	Currency string `mapstructure:"store_currency"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type RemoteHealthCheck struct {
	CronSchedule string `mapstructure:"remote_health_check_cron"`
	Enabled      bool   `mapstructure:"remote_health_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000") // "*" libera qualquer origem

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "Local")

	viper.SetDefault("MAGENTO_BASE_URL", "https://your-magento-store.com/rest/V1")
	viper.SetDefault("MAGENTO_API_TOKEN", "")
	viper.SetDefault("MAGENTO_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MAGENTO_INSECURE_SKIP_VERIFY", false) // ONLY LOCAL
	viper.SetDefault("MAGENTO_PAGE_SIZE", 100)
	viper.SetDefault("MAGENTO_MAX_PAGES", 500)            // 50 mil pedidos por consulta
	viper.SetDefault("MAGENTO_MAX_CONCURRENT_LOOKUPS", 5) // Consultas de produto em paralelo

	viper.SetDefault("STORE_CURRENCY", "USD")

	// Vazio desabilita a autenticação
	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("REMOTE_HEALTH_CHECK_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("REMOTE_HEALTH_CHECK_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Info("config: viper could not read .env, using process environment")
	} else {
		logrus.Info("config: .env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa os campos derivados e valida o que é obrigatório
func (c *Config) normalize() error {
	if strings.TrimSpace(c.Magento.AccessToken) == "" {
		return ErrMissingMagentoToken
	}

	c.Magento.BaseURL = strings.TrimRight(c.Magento.BaseURL, "/")
	c.Magento.Timeout = time.Duration(c.Magento.TimeoutSeconds) * time.Second

	if c.Magento.PageSize <= 0 {
		c.Magento.PageSize = 100
	}

	if c.Magento.MaxConcurrentLookups <= 0 {
		c.Magento.MaxConcurrentLookups = 1
	}

	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("config: invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	return nil
}

// loadEnvFile carrega o .env local com godotenv; em produção as variáveis vêm do ambiente
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Warn("config: could not resolve working directory")
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debugf("config: trying .env at %s", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Infof("config: .env loaded from %s", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
