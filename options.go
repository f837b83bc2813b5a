package ftpkit

import (
	"log/slog"
	"time"
)

// DefaultTimeout bounds the dial of a transfer session when no explicit
// timeout option is given.
const DefaultTimeout = 30 * time.Second

// Option represents a configuration option for a connection
type Option func(*Options)

// Options contains all possible options for opening a connection
type Options struct {
	// Username and Password are the login credentials. When both are
	// empty the connection logs in anonymously.
	Username string
	Password string

	// Timeout bounds dialing a transfer session. Zero means
	// DefaultTimeout.
	Timeout time.Duration

	// Transport names the registered transport to drive. Empty means the
	// default goftp transport.
	Transport string

	// DisableFallback turns off the secondary download transport that is
	// tried when the primary session fails to retrieve a file.
	DisableFallback bool

	// Checksum, when set, selects the algorithm used to digest each
	// downloaded file.
	Checksum ChecksumAlgorithm

	// Logger receives debug and warning output. Nil means slog.Default.
	Logger *slog.Logger
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// WithCredentials sets the username and password used at login
func WithCredentials(username, password string) Option {
	return func(o *Options) {
		o.Username = username
		o.Password = password
	}
}

// WithTimeout bounds dialing a transfer session
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithTransport selects a registered transport by name
func WithTransport(name string) Option {
	return func(o *Options) {
		o.Transport = name
	}
}

// WithoutFallback disables the secondary download transport
func WithoutFallback() Option {
	return func(o *Options) {
		o.DisableFallback = true
	}
}

// WithChecksum digests every downloaded file with the given algorithm
func WithChecksum(algorithm ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Checksum = algorithm
	}
}

// WithLogger routes connection logging to the given logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
