package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// AI providers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Database  DatabaseConfig  `yaml:"database"`
	AI        AIConfig        `yaml:"ai"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	BasePath        string        `yaml:"base_path"        env:"SERVER_BASE_PATH"        env-default:"/api"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"10485760"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects the history store.
type StorageConfig struct {
	Driver      string        `yaml:"driver"       env:"STORAGE_DRIVER"       env-default:"mongo"`
	SaveTimeout time.Duration `yaml:"save_timeout" env:"STORAGE_SAVE_TIMEOUT" env-default:"5s"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGODB_URI"             env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database"        env:"MONGODB_DATABASE"        env-default:"promptcraft"`
	Collection     string        `yaml:"collection"      env:"MONGODB_COLLECTION"      env-default:"prompts"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AIConfig holds generative AI provider settings.
// An empty or malformed APIKey leaves the rewriter in mock mode.
type AIConfig struct {
	Provider        string        `yaml:"provider"          env:"AI_PROVIDER"          env-default:"gemini"`
	APIKey          string        `yaml:"api_key"           env:"AI_API_KEY"`
	Model           string        `yaml:"model"             env:"AI_MODEL"`
	BaseURL         string        `yaml:"base_url"          env:"AI_BASE_URL"`
	Timeout         time.Duration `yaml:"timeout"           env:"AI_TIMEOUT"           env-default:"30s"`
	CancelOnTimeout bool          `yaml:"cancel_on_timeout" env:"AI_CANCEL_ON_TIMEOUT" env-default:"false"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits. When RedisAddr is set the
// counters are shared through Redis; otherwise they live in process memory.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATELIMIT_ENABLED"             env-default:"true"`
	RequestsPerWindow int           `yaml:"requests_per_window" env:"RATELIMIT_REQUESTS_PER_WINDOW" env-default:"100"`
	RewritePerWindow  int           `yaml:"rewrite_per_window"  env:"RATELIMIT_REWRITE_PER_WINDOW"  env-default:"20"`
	Window            time.Duration `yaml:"window"              env:"RATELIMIT_WINDOW"              env-default:"15m"`
	RedisAddr         string        `yaml:"redis_addr"          env:"RATELIMIT_REDIS_ADDR"`
	RedisPassword     string        `yaml:"redis_password"      env:"RATELIMIT_REDIS_PASSWORD"`
	Prefix            string        `yaml:"prefix"              env:"RATELIMIT_PREFIX"              env-default:"ratelimit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Origins returns the configured CORS allow-list with blanks removed.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
