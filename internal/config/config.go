package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings (stub commerce platform)
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	TokenTTL    int64  `env:"TOKEN_TTL"` // seconds, lifetime of issued app tokens

	// Shared settings
	BaseURL string `env:"BASE_URL"`

	// Commerce platform endpoints (client-side)
	APIURL       string `env:"API_URL"`
	AuthURL      string `env:"AUTH_URL"`
	ProjectKey   string `env:"PROJECT_KEY"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	Locale       string `env:"LOCALE"`
	PageSize     int    `env:"PAGE_SIZE"`

	// Client-side storage
	TokenDir     string `env:"TOKEN_DIR"`
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen/connect address of the stub platform (host:port)")
	// Client flags
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "commerce API base URL")
	flag.StringVar(&cfg.AuthURL, "auth-url", cfg.AuthURL, "commerce auth base URL (token endpoint host)")
	flag.StringVar(&cfg.ProjectKey, "project-key", cfg.ProjectKey, "commerce project key")
	flag.StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "API client id")
	flag.StringVar(&cfg.ClientSecret, "client-secret", cfg.ClientSecret, "API client secret")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "default locale for localized search")
	flag.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "products per page")
	flag.StringVar(&cfg.TokenDir, "token-dir", cfg.TokenDir, "directory for the cached app token")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to the local product cache (SQLite)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 3600
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.APIURL == "" {
		cfg.APIURL = "http://" + cfg.BaseURL
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = "http://" + cfg.BaseURL
	}
	if cfg.ProjectKey == "" {
		cfg.ProjectKey = "storefront-demo"
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "storefront-client"
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = "storefront-secret"
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 8
	}

	// Fill client storage defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(home, "sfcli.db")
	}

	return cfg
}
