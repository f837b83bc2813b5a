package ftpkit

import (
	"fmt"
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Remote address to dial, e.g. ftp://example.com/some/path
	Address string `env:"FTPKIT_ADDRESS"`

	// Login credentials; anonymous login when unset
	Username string `env:"FTPKIT_USERNAME"`
	Password string `env:"FTPKIT_PASSWORD"`

	// Registered transport to drive
	Transport string `env:"FTPKIT_TRANSPORT,default:goftp"`

	// Dial timeout for transfer sessions, in seconds
	TimeoutSeconds int `env:"FTPKIT_TIMEOUT_SECONDS,default:30"`

	// Disable the secondary download session
	DisableFallback bool `env:"FTPKIT_DISABLE_FALLBACK,default:false"`

	// Checksum algorithm for downloaded files (empty disables digesting)
	Checksum string `env:"FTPKIT_CHECKSUM"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New dials a connection described by the given config
func New(cfg *Config) (*Connection, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return Dial(cfg.Address, cfg.options()...)
}

func validateConfig(cfg *Config) error {
	if cfg == nil || cfg.Address == "" {
		return fmt.Errorf("%w: address is required", ErrEmptyPath)
	}
	if cfg.Checksum != "" {
		if _, err := NewHasher(ChecksumAlgorithm(cfg.Checksum)); err != nil {
			return err
		}
	}
	return nil
}

// options translates the config into dial options
func (cfg *Config) options() []Option {
	opts := []Option{
		WithCredentials(cfg.Username, cfg.Password),
		WithTransport(cfg.Transport),
		WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
	}
	if cfg.DisableFallback {
		opts = append(opts, WithoutFallback())
	}
	if cfg.Checksum != "" {
		opts = append(opts, WithChecksum(ChecksumAlgorithm(cfg.Checksum)))
	}
	return opts
}
