package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del servicio.
// Se carga desde YAML y se pisa con variables de entorno (applyEnvOverrides).
type Config struct {
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		ReadTimeout        string   `yaml:"read_timeout"`
		WriteTimeout       string   `yaml:"write_timeout"`
	} `yaml:"server"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Storage struct {
		DSN      string `yaml:"dsn"`
		Postgres struct {
			MaxConns        int    `yaml:"max_conns"`
			MinConns        int    `yaml:"min_conns"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	Cache struct {
		Kind  string `yaml:"kind"` // memory | redis
		Redis struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
		Memory struct {
			DefaultTTL string `yaml:"default_ttl"`
		} `yaml:"memory"`
	} `yaml:"cache"`

	Rate struct {
		Enabled     bool   `yaml:"enabled"`
		Window      string `yaml:"window"`
		MaxRequests int    `yaml:"max_requests"`
	} `yaml:"rate"`

	// Auth protege los endpoints de lookup por email.
	// Si BearerSecret está vacío, los endpoints quedan abiertos.
	Auth struct {
		BearerSecret string `yaml:"bearer_secret"`
		Issuer       string `yaml:"issuer"`
	} `yaml:"auth"`

	// Providers de social login.
	Providers struct {
		GitHub ProviderConfig `yaml:"github"`
		Google ProviderConfig `yaml:"google"`
		AILab  AILabConfig    `yaml:"ailab"`
	} `yaml:"providers"`
}

// ProviderConfig son las credenciales OAuth2 de un provider estándar.
type ProviderConfig struct {
	Enabled      bool   `yaml:"enabled"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

// AILabConfig agrega la URL base del provider propietario.
// Los endpoints se derivan: /oauth/authorize, /rest/token, /rest/userinfo.
type AILabConfig struct {
	Enabled      bool   `yaml:"enabled"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
	BaseURL      string `yaml:"base_url"`
}

// Load lee el YAML, aplica defaults, overrides por env y valida.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}

	// sane defaults
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "30s"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.Memory.DefaultTTL == "" {
		c.Cache.Memory.DefaultTTL = "2m"
	}
	if c.Rate.Window == "" {
		c.Rate.Window = "1m"
	}
	if c.Rate.MaxRequests == 0 {
		c.Rate.MaxRequests = 60
	}
	if c.Storage.Postgres.MaxConns == 0 {
		c.Storage.Postgres.MaxConns = 10
	}

	c.applyEnvOverrides()

	// validate string durations
	for _, d := range []string{
		c.Server.ReadTimeout, c.Server.WriteTimeout,
		c.Cache.Memory.DefaultTTL, c.Rate.Window,
	} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return nil, fmt.Errorf("config: invalid duration %q: %w", d, err)
		}
	}
	if c.Storage.Postgres.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(c.Storage.Postgres.ConnMaxLifetime); err != nil {
			return nil, fmt.Errorf("config: invalid conn_max_lifetime: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate chequea coherencia mínima de la configuración.
func (c *Config) Validate() error {
	if c.Cache.Kind != "memory" && c.Cache.Kind != "redis" {
		return fmt.Errorf("config: cache.kind must be memory or redis, got %q", c.Cache.Kind)
	}
	if c.Cache.Kind == "redis" && strings.TrimSpace(c.Cache.Redis.Addr) == "" {
		return fmt.Errorf("config: cache.redis.addr is required when cache.kind=redis")
	}
	for name, p := range map[string]ProviderConfig{
		"github": c.Providers.GitHub,
		"google": c.Providers.Google,
	} {
		if p.Enabled && (p.ClientID == "" || p.ClientSecret == "") {
			return fmt.Errorf("config: providers.%s enabled without client credentials", name)
		}
	}
	if a := c.Providers.AILab; a.Enabled {
		if a.ClientID == "" || a.ClientSecret == "" {
			return fmt.Errorf("config: providers.ailab enabled without client credentials")
		}
		if strings.TrimSpace(a.BaseURL) == "" {
			return fmt.Errorf("config: providers.ailab.base_url is required")
		}
	}
	return nil
}

// Duration parsea una duración ya validada por Load.
func Duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

// applyEnvOverrides pisa el YAML con variables de entorno.
// Las credenciales normalmente llegan por env, no por archivo.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("WORKHUB_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvStr("WORKHUB_ENV"); ok {
		c.App.Env = v
	}
	if v, ok := getEnvStr("WORKHUB_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := getEnvStr("DATABASE_DSN"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = v
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvStr("REDIS_PASSWORD"); ok {
		c.Cache.Redis.Password = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvBool("RATE_ENABLED"); ok {
		c.Rate.Enabled = v
	}
	if v, ok := getEnvInt("RATE_MAX_REQUESTS"); ok {
		c.Rate.MaxRequests = v
	}
	if v, ok := getEnvStr("AUTH_BEARER_SECRET"); ok {
		c.Auth.BearerSecret = v
	}
	if v, ok := getEnvCSV("CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}

	overrideProvider(&c.Providers.GitHub, "GITHUB")
	overrideProvider(&c.Providers.Google, "GOOGLE")
	if v, ok := getEnvStr("AILAB_CLIENT_ID"); ok {
		c.Providers.AILab.ClientID = v
	}
	if v, ok := getEnvStr("AILAB_CLIENT_SECRET"); ok {
		c.Providers.AILab.ClientSecret = v
	}
	if v, ok := getEnvStr("AILAB_REDIRECT_URL"); ok {
		c.Providers.AILab.RedirectURL = v
	}
	if v, ok := getEnvStr("AILAB_BASE_URL"); ok {
		c.Providers.AILab.BaseURL = v
	}
	if v, ok := getEnvBool("AILAB_ENABLED"); ok {
		c.Providers.AILab.Enabled = v
	}
}

func overrideProvider(p *ProviderConfig, prefix string) {
	if v, ok := getEnvStr(prefix + "_CLIENT_ID"); ok {
		p.ClientID = v
	}
	if v, ok := getEnvStr(prefix + "_CLIENT_SECRET"); ok {
		p.ClientSecret = v
	}
	if v, ok := getEnvStr(prefix + "_REDIRECT_URL"); ok {
		p.RedirectURL = v
	}
	if v, ok := getEnvBool(prefix + "_ENABLED"); ok {
		p.Enabled = v
	}
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}

func getEnvCSV(key string) ([]string, bool) {
	if s, ok := getEnvStr(key); ok {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}
