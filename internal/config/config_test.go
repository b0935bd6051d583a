package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("API_URL", "")
	t.Setenv("AUTH_URL", "")
	t.Setenv("PROJECT_KEY", "")
	t.Setenv("CLIENT_ID", "")
	t.Setenv("CLIENT_SECRET", "")
	t.Setenv("LOCALE", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("TOKEN_DIR", "")
	t.Setenv("CLIENT_DB_PATH", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.APIURL != "http://localhost:8081" {
		t.Fatalf("APIURL default expected 'http://localhost:8081', got %q", cfg.APIURL)
	}
	if cfg.AuthURL != "http://localhost:8081" {
		t.Fatalf("AuthURL default expected 'http://localhost:8081', got %q", cfg.AuthURL)
	}
	if cfg.ProjectKey != "storefront-demo" {
		t.Fatalf("ProjectKey default expected 'storefront-demo', got %q", cfg.ProjectKey)
	}
	if cfg.Locale != "en" {
		t.Fatalf("Locale default expected 'en', got %q", cfg.Locale)
	}
	if cfg.PageSize != 8 {
		t.Fatalf("PageSize default expected 8, got %d", cfg.PageSize)
	}
	if cfg.TokenTTL != 3600 {
		t.Fatalf("TokenTTL default expected 3600, got %d", cfg.TokenTTL)
	}
	if cfg.ClientDBPath == "" {
		t.Fatalf("ClientDBPath default must be non-empty")
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "shop.example.com:443")
	t.Setenv("API_URL", "https://api.example.com")
	t.Setenv("AUTH_URL", "https://auth.example.com")
	t.Setenv("PROJECT_KEY", "acme-shop")
	t.Setenv("CLIENT_ID", "acme-client")
	t.Setenv("CLIENT_SECRET", "s3cret")
	t.Setenv("LOCALE", "de")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("TOKEN_TTL", "120")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.APIURL != "https://api.example.com" {
		t.Fatalf("APIURL expected env value, got %q", cfg.APIURL)
	}
	if cfg.AuthURL != "https://auth.example.com" {
		t.Fatalf("AuthURL expected env value, got %q", cfg.AuthURL)
	}
	if cfg.ProjectKey != "acme-shop" || cfg.ClientID != "acme-client" || cfg.ClientSecret != "s3cret" {
		t.Fatalf("project credentials not taken from env: %+v", cfg)
	}
	if cfg.Locale != "de" {
		t.Fatalf("Locale expected 'de', got %q", cfg.Locale)
	}
	if cfg.PageSize != 20 {
		t.Fatalf("PageSize expected 20, got %d", cfg.PageSize)
	}
	if cfg.TokenTTL != 120 {
		t.Fatalf("TokenTTL expected 120, got %d", cfg.TokenTTL)
	}
}

func TestNewConfig_InvalidBaseURLFallsBack(t *testing.T) {
	t.Setenv("BASE_URL", "http://has-scheme:8081/path")
	t.Setenv("API_URL", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fall back to default, got %q", cfg.BaseURL)
	}
	if cfg.APIURL != "http://localhost:8081" {
		t.Fatalf("APIURL must derive from fallback BaseURL, got %q", cfg.APIURL)
	}
}
