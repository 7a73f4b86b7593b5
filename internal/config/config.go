package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Graph    GraphConfig    `yaml:"graph"`
	Seeder   SeederConfig   `yaml:"seeder"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// GraphConfig holds limits for graph traversal and cycle enumeration.
type GraphConfig struct {
	// MaxDepth bounds the depth parameter of neighbor expansion.
	MaxDepth int `yaml:"max_depth" env:"GRAPH_MAX_DEPTH" env-default:"3"`

	// MaxCycles stops the simple-cycle search after this many cycles have
	// been counted. The original behavior had no bound; the cap keeps a
	// densely cyclic lexicon from pinning a request forever.
	MaxCycles int `yaml:"max_cycles" env:"GRAPH_MAX_CYCLES" env-default:"10000"`

	// ReportCycles caps the number of cycles included in a response.
	ReportCycles int `yaml:"report_cycles" env:"GRAPH_REPORT_CYCLES" env-default:"20"`

	// SampleCycles caps the cycle examples embedded in degree statistics.
	SampleCycles int `yaml:"sample_cycles" env:"GRAPH_SAMPLE_CYCLES" env-default:"3"`

	// TopLimitMax bounds the limit parameter of top-words queries.
	TopLimitMax int `yaml:"top_limit_max" env:"GRAPH_TOP_LIMIT_MAX" env-default:"50"`
}

// SeederConfig holds settings for the offline GCIDE ingestion job.
type SeederConfig struct {
	DataDir   string `yaml:"data_dir"   env:"SEEDER_DATA_DIR"   env-default:"./data/gcide"`
	BatchSize int    `yaml:"batch_size" env:"SEEDER_BATCH_SIZE" env-default:"1000"`
	DryRun    bool   `yaml:"dry_run"    env:"SEEDER_DRY_RUN"    env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000,http://localhost:5173"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
