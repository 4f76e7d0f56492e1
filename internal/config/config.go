package config

import (
	"fmt"
	"time"

	config "github.com/0xsj/overwatch-pkg/config"
)

// Config holds all configuration for the wikilink service.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Replica  ReplicaConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Wiki     WikiConfig
	Session  SessionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds primary (identity store) PostgreSQL configuration.
type DatabaseConfig struct {
	Host              string        `env:"DATABASE_HOST" default:"localhost"`
	Port              int           `env:"DATABASE_PORT" default:"5432"`
	User              string        `env:"DATABASE_USER" default:"wikilink"`
	Password          string        `env:"DATABASE_PASSWORD" default:"wikilink" sensitive:"true"`
	Database          string        `env:"DATABASE_NAME" default:"wikilink"`
	SSLMode           string        `env:"DATABASE_SSL_MODE" default:"disable"`
	MaxConns          int           `env:"DATABASE_MAX_CONNS" default:"25"`
	MinConns          int           `env:"DATABASE_MIN_CONNS" default:"5"`
	MaxConnLifetime   time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime   time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" default:"30m"`
	HealthCheckPeriod time.Duration `env:"DATABASE_HEALTH_CHECK_PERIOD" default:"1m"`
}

// ReplicaConfig holds wiki replica database configuration. The replica is
// optional: deployments without one still serve identity info, and the
// stats/search paths degrade accordingly.
type ReplicaConfig struct {
	Enabled         bool          `env:"REPLICA_ENABLED" default:"false"`
	Host            string        `env:"REPLICA_HOST" default:"localhost"`
	Port            int           `env:"REPLICA_PORT" default:"5433"`
	User            string        `env:"REPLICA_USER" default:"wikilink"`
	Password        string        `env:"REPLICA_PASSWORD" default:"" sensitive:"true"`
	Database        string        `env:"REPLICA_NAME" default:"wikireplica"`
	SSLMode         string        `env:"REPLICA_SSL_MODE" default:"disable"`
	MaxConns        int           `env:"REPLICA_MAX_CONNS" default:"10"`
	MinConns        int           `env:"REPLICA_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `env:"REPLICA_MAX_CONN_LIFETIME" default:"1h"`
}

// RedisConfig holds Redis configuration for the session store.
type RedisConfig struct {
	Host         string        `env:"REDIS_HOST" default:"localhost"`
	Port         int           `env:"REDIS_PORT" default:"6379"`
	Password     string        `env:"REDIS_PASSWORD" default:"" sensitive:"true"`
	DB           int           `env:"REDIS_DB" default:"0"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" default:"5"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL           string        `env:"NATS_URL" default:"nats://localhost:4222"`
	SubjectPrefix string        `env:"NATS_SUBJECT_PREFIX" default:"wikilink"`
	MaxReconnects int           `env:"NATS_MAX_RECONNECTS" default:"10"`
	ReconnectWait time.Duration `env:"NATS_RECONNECT_WAIT" default:"2s"`
}

// WikiConfig holds remote wiki API configuration.
type WikiConfig struct {
	// BaseURL is the wiki the OAuth consumer is registered with; only its
	// host is used for API calls.
	BaseURL        string        `env:"WIKI_BASE_URL" default:"https://meta.wikimedia.org"`
	ConsumerKey    string        `env:"WIKI_CONSUMER_KEY" required:"true"`
	ConsumerSecret string        `env:"WIKI_CONSUMER_SECRET" required:"true" sensitive:"true"`
	RequestTimeout time.Duration `env:"WIKI_REQUEST_TIMEOUT" default:"10s"`

	// ArticleBaseURL prefixes canonical page URLs in search results.
	ArticleBaseURL string `env:"WIKI_ARTICLE_BASE_URL" default:"https://en.wikipedia.org/wiki/"`
}

// SessionConfig holds session store configuration.
type SessionConfig struct {
	TTL time.Duration `env:"SESSION_TTL" default:"24h"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.WithPrefix("WIKILINK_")); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConnectionString returns the primary PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// ConnectionString returns the replica PostgreSQL connection string.
func (c *ReplicaConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Address returns the Redis address.
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
