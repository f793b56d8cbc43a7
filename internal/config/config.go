package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the product registry, the tag
// layout and image URLs, plus the status HTTP server, the scan history
// database and graceful shutdown behavior.
// Defaults target a local development chain.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// RPC configures the Ethereum JSON-RPC endpoint and the registry contract
	RPC struct {
		// Endpoint is the JSON-RPC HTTP URL of the node
		Endpoint string `env:"RPC_ENDPOINT" env-default:"http://127.0.0.1:8545" yaml:"endpoint"`
		// Contract is the product registry address
		Contract string `env:"RPC_CONTRACT" env-default:"0x5FbDB2315678afecb367f032d93F642f64180aa3" yaml:"contract"`
		// Timeout bounds every eth_call
		Timeout time.Duration `env:"RPC_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// BlockTag is the block eth_call runs against
		BlockTag string `env:"RPC_BLOCK_TAG" env-default:"latest" yaml:"blockTag"`
	} `yaml:"rpc"`

	// Tag describes where the product address lives on the card
	Tag struct {
		// Sector holds the address in its first two blocks
		Sector int `env:"TAG_SECTOR" env-default:"1" yaml:"sector"`
		// KeyA is the hex encoded key A of the sector
		KeyA string `env:"TAG_KEY_A" env-default:"FFFFFFFFFFFF" yaml:"keyA"`
		// KeyB is the hex encoded key B of the sector
		KeyB string `env:"TAG_KEY_B" env-default:"FFFFFFFFFFFF" yaml:"keyB"`
	} `yaml:"tag"`

	// Image configures how product image URLs are built
	Image struct {
		// HostSuffix is the IPFS subdomain gateway, the content ID becomes its first label
		HostSuffix string `env:"IMAGE_HOST_SUFFIX" env-default:"ipfs.nftstorage.link" yaml:"hostSuffix"`
		// NormalizeCID rewrites content IDs into base32 CIDv1 before they are used as the gateway label
		NormalizeCID bool `env:"IMAGE_NORMALIZE_CID" env-default:"false" yaml:"normalizeCID"`
	} `yaml:"image"`

	// HTTP contains all status server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database configures the optional scan history store
	Database struct {
		// Enabled turns on scan history recording and the history API
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"productreader" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"productreader" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"productreader" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"1" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// WriteTimeout bounds each history insert
		WriteTimeout time.Duration `env:"DATABASE_WRITE_TIMEOUT" env-default:"2s" yaml:"writeTimeout"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills a Config from environment variables and defaults only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// ContractAddress returns the registry address. It is only valid after Load
// or FromEnv succeeded.
func (c *Config) ContractAddress() common.Address {
	return common.HexToAddress(c.RPC.Contract)
}

func (c *Config) validate() error {
	if c.RPC.Endpoint == "" {
		return fmt.Errorf("rpc endpoint is required")
	}
	if !common.IsHexAddress(c.RPC.Contract) {
		return fmt.Errorf("rpc contract %q is not an address", c.RPC.Contract)
	}
	if c.RPC.Timeout <= 0 {
		return fmt.Errorf("rpc timeout must be positive, got %s", c.RPC.Timeout)
	}
	if c.Tag.Sector < 0 || c.Tag.Sector > 39 {
		return fmt.Errorf("tag sector %d out of range", c.Tag.Sector)
	}
	if c.Image.HostSuffix == "" {
		return fmt.Errorf("image host suffix is required")
	}
	if c.Database.Enabled && c.Database.WriteTimeout < 0 {
		return fmt.Errorf("database write timeout must not be negative, got %s", c.Database.WriteTimeout)
	}

	return nil
}
