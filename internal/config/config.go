package config

import (
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

const (
	FavoritesStorePostgres = "postgres"
	FavoritesStoreRedis    = "redis"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Backend        Backend        `mapstructure:",squash"`
	Frontend       Frontend       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Marketplace    Marketplace    `mapstructure:",squash"`
	Analysis       Analysis       `mapstructure:",squash"`
	Thumbnail      Thumbnail      `mapstructure:",squash"`
	CatalogRefresh CatalogRefresh `mapstructure:",squash"`
	Favorites      Favorites      `mapstructure:",squash"`
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

	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	MaxIdleTime  time.Duration `mapstructure:"database_max_idle_time"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

// Backend descreve a API Laravel que é dona dos anúncios, criativos e sessões.
type Backend struct {
	URL       string        `mapstructure:"next_public_backend_url"`
	APIToken  string        `mapstructure:"backend_api_token"`
	Timeout   time.Duration `mapstructure:"backend_timeout"`
	RateLimit float64       `mapstructure:"backend_rate_limit"`
	RateBurst int           `mapstructure:"backend_rate_burst"`
}

type Frontend struct {
	FBPixelID string `mapstructure:"next_public_fb_pixel_id"`
	AppURL    string `mapstructure:"app_url"`
	LoginURL  string `mapstructure:"login_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret     string        `mapstructure:"auth_secret"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	CookieName string        `mapstructure:"session_cookie_name"`
	// CronToken protege as rotas de controle do agendador
	CronToken string `mapstructure:"cron_token"`
}

type Marketplace struct {
	ItemsPerPage int `mapstructure:"items_per_page"`
}

type Analysis struct {
	Delay time.Duration `mapstructure:"analysis_delay"`
	Seed  int64         `mapstructure:"analysis_seed"`
}

type Thumbnail struct {
	Timeout     time.Duration `mapstructure:"thumbnail_timeout"`
	CacheTTL    time.Duration `mapstructure:"thumbnail_cache_ttl"`
	FFmpegPath  string        `mapstructure:"ffmpeg_path"`
	FFprobePath string        `mapstructure:"ffprobe_path"`
	Placeholder string        `mapstructure:"thumbnail_placeholder"`
	// MaxConcurrent limita quantos ffmpeg rodam ao mesmo tempo
	MaxConcurrent int64 `mapstructure:"thumbnail_max_concurrent"`
}

type CatalogRefresh struct {
	IntervalSeconds int  `mapstructure:"catalog_refresh_seconds"`
	Enabled         bool `mapstructure:"catalog_refresh_enabled"`
}

type Favorites struct {
	Store string `mapstructure:"favorites_store"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,https://app.liveturb.com")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/escalando?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_TIME", "5m")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("NEXT_PUBLIC_BACKEND_URL", "https://liveturb.com")
	viper.SetDefault("BACKEND_API_TOKEN", "")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("BACKEND_RATE_LIMIT", 20) // requisições por segundo para a API Laravel
	viper.SetDefault("BACKEND_RATE_BURST", 10)

	viper.SetDefault("NEXT_PUBLIC_FB_PIXEL_ID", "")
	viper.SetDefault("APP_URL", "https://app.liveturb.com")
	viper.SetDefault("LOGIN_URL", "https://liveturb.com/login")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("SESSION_TTL", "10m")
	viper.SetDefault("SESSION_COOKIE_NAME", "escalando_session")
	viper.SetDefault("CRON_TOKEN", "")

	viper.SetDefault("ITEMS_PER_PAGE", 12)

	viper.SetDefault("ANALYSIS_DELAY", "3s") // Pausa artificial da "análise de IA"
	viper.SetDefault("ANALYSIS_SEED", 0)     // 0 = semente baseada no relógio

	viper.SetDefault("THUMBNAIL_TIMEOUT", "5s")
	viper.SetDefault("THUMBNAIL_CACHE_TTL", "24h")
	viper.SetDefault("FFMPEG_PATH", "ffmpeg")
	viper.SetDefault("FFPROBE_PATH", "ffprobe")
	viper.SetDefault("THUMBNAIL_PLACEHOLDER", "/placeholder.jpg")
	viper.SetDefault("THUMBNAIL_MAX_CONCURRENT", 4)

	viper.SetDefault("CATALOG_REFRESH_SECONDS", 30)
	viper.SetDefault("CATALOG_REFRESH_ENABLED", true)

	viper.SetDefault("FAVORITES_STORE", FavoritesStorePostgres)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa campos derivados e valida combinações inválidas
func (c *Config) normalize() error {
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
	c.Frontend.AppURL = strings.TrimRight(c.Frontend.AppURL, "/")

	if c.Marketplace.ItemsPerPage <= 0 {
		c.Marketplace.ItemsPerPage = 12
	}

	if c.CatalogRefresh.IntervalSeconds <= 0 {
		c.CatalogRefresh.IntervalSeconds = 30
	}

	switch c.Favorites.Store {
	case FavoritesStorePostgres, FavoritesStoreRedis:
	case "":
		c.Favorites.Store = FavoritesStorePostgres
	default:
		return fmt.Errorf("config: invalid FAVORITES_STORE %q", c.Favorites.Store)
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

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
