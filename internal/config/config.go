package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	VoteTrack     VoteTrack     `mapstructure:",squash"`
	Monitor       Monitor       `mapstructure:",squash"`
	Report        Report        `mapstructure:",squash"`
	LookupRefresh LookupRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
	Timezone    string `mapstructure:"timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Enabled indica se o histórico de relatórios deve ser persistido
func (d Database) Enabled() bool {
	return d.URL != ""
}

type Redis struct {
	URL            string        `mapstructure:"redis_url"`
	LookupCacheKey string        `mapstructure:"lookup_cache_key"`
	LookupCacheTTL time.Duration `mapstructure:"lookup_cache_ttl"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type VoteTrack struct {
	URL           string        `mapstructure:"votetrack_url"`
	PushURL       string        `mapstructure:"votetrack_push_url"`
	PushEnabled   bool          `mapstructure:"votetrack_push_enabled"`
	Timeout       time.Duration `mapstructure:"votetrack_timeout"`
	MaxConcurrent int           `mapstructure:"votetrack_max_concurrent"`
	ServiceToken  string        `mapstructure:"votetrack_service_token"`
}

type Monitor struct {
	PollInterval    time.Duration `mapstructure:"monitor_poll_interval"`
	RecentLimit     int           `mapstructure:"monitor_recent_limit"`
	MaxViews        int           `mapstructure:"monitor_max_views"`
	MaxViewsPerUser int           `mapstructure:"monitor_max_views_per_user"`
	IdleTimeout     time.Duration `mapstructure:"monitor_idle_timeout"`
}

type Report struct {
	MaxPages int    `mapstructure:"report_max_pages"`
	Title    string `mapstructure:"report_title"`
}

type LookupRefresh struct {
	CronSchedule string `mapstructure:"lookup_refresh_cron"`
	Enabled      bool   `mapstructure:"lookup_refresh_enabled"`
}

// Location carrega o fuso usado para agrupar votos por dia
func (a App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando o local", a.Timezone)
		return time.Local
	}
	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")

	// Histórico de relatórios fica desligado sem DATABASE_URL
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOOKUP_CACHE_KEY", "satisfaction:lookups")
	viper.SetDefault("LOOKUP_CACHE_TTL", "10m")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("VOTETRACK_URL", "http://localhost:3001/api")
	viper.SetDefault("VOTETRACK_PUSH_URL", "ws://localhost:3001/ws")
	viper.SetDefault("VOTETRACK_PUSH_ENABLED", true)
	viper.SetDefault("VOTETRACK_TIMEOUT", "15s")
	viper.SetDefault("VOTETRACK_MAX_CONCURRENT", 4)
	viper.SetDefault("VOTETRACK_SERVICE_TOKEN", "")

	viper.SetDefault("MONITOR_POLL_INTERVAL", "30s") // 0 desliga o polling
	viper.SetDefault("MONITOR_RECENT_LIMIT", 10)
	viper.SetDefault("MONITOR_MAX_VIEWS", 200)
	viper.SetDefault("MONITOR_MAX_VIEWS_PER_USER", 10)
	viper.SetDefault("MONITOR_IDLE_TIMEOUT", "30m") // 0 mantém a visão até o DELETE

	viper.SetDefault("REPORT_MAX_PAGES", 3)
	viper.SetDefault("REPORT_TITLE", "Relatório de Satisfação")

	viper.SetDefault("LOOKUP_REFRESH_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("LOOKUP_REFRESH_ENABLED", false)
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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.validate(); err != nil {
		return nil, err
	}

	if config.Database.Enabled() {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.VoteTrack.URL == "" {
		return fmt.Errorf("config: VOTETRACK_URL é obrigatório")
	}
	if c.VoteTrack.MaxConcurrent <= 0 {
		c.VoteTrack.MaxConcurrent = 1
	}
	if c.VoteTrack.Timeout <= 0 {
		return fmt.Errorf("config: VOTETRACK_TIMEOUT deve ser positivo")
	}
	if c.Monitor.PollInterval < 0 {
		return fmt.Errorf("config: MONITOR_POLL_INTERVAL não pode ser negativo")
	}
	if c.Report.MaxPages < 0 {
		return fmt.Errorf("config: REPORT_MAX_PAGES não pode ser negativo")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
