package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/tracefetch/internal/logger"
	"github.com/oshokin/tracefetch/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// UserAgent overrides the User-Agent request header (empty = the built-in default).
	UserAgent string `mapstructure:"user_agent"`
	// Method is the HTTP request method.
	Method string `mapstructure:"method"`
	// RequestHeaders holds extra request headers as "Name: value" lines.
	// A line with an empty value removes the header from the request.
	RequestHeaders []string `mapstructure:"request_headers"`
	// Timeout bounds the whole transfer (e.g., "30s", "2m").
	Timeout string `mapstructure:"timeout"`
	// FollowRedirects indicates whether 3xx responses are followed automatically.
	FollowRedirects bool `mapstructure:"follow_redirects"`
	// MaxRedirects is the maximum number of redirects to follow.
	MaxRedirects int64 `mapstructure:"max_redirects"`
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`
	// Proxy routes transfers through the given proxy URL (empty = direct).
	Proxy string `mapstructure:"proxy"`
	// MaxTraceBody caps the body bytes copied into the trace log
	// (e.g., "1MB", "64KB"; "0" removes the cap).
	MaxTraceBody string `mapstructure:"max_trace_body"`
	// OutputPath is the directory path where response bodies will be saved.
	OutputPath string `mapstructure:"output_path"`
	// TracePath is the trace log destination: "" = stderr, "-" = stdout,
	// anything else is treated as a file path.
	TracePath string `mapstructure:"trace_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// Data is the request body to send (flag-only).
	Data string
	// ReportPath is the YAML transfer report destination (flag-only).
	ReportPath string
	// ParsedTimeout is the parsed transfer timeout.
	ParsedTimeout time.Duration
	// ParsedMaxTraceBody is the parsed trace body cap in bytes.
	ParsedMaxTraceBody int64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".tracefetch.yaml"

	// DefaultMethod is the HTTP method used when none is configured.
	DefaultMethod = "GET"

	// DefaultTimeout is the transfer timeout used when none is configured.
	DefaultTimeout = "60s"

	// DefaultMaxRedirects is the redirect ceiling used when none is configured.
	DefaultMaxRedirects = 10

	// DefaultMaxTraceBody is the trace body cap used when none is configured.
	DefaultMaxTraceBody = "1MB"

	// DefaultLogLevel is the logging level used when none is configured.
	DefaultLogLevel = "info"

	// maxRedirectsLimit is the highest accepted max_redirects value.
	maxRedirectsLimit = 100
)

// methodPattern matches HTTP method tokens as defined by RFC 7230.
//
//nolint:gochecknoglobals // This is an immutable, pre-compiled regex pattern and used as a constant.
var methodPattern = regexp.MustCompile(`^[!#$%&'*+\-.^_|~0-9A-Za-z]+$`)

// Static error definitions for better error handling.
var (
	// ErrInvalidMethod indicates that the HTTP method is not a valid token.
	ErrInvalidMethod = errors.New("invalid HTTP method")
	// ErrMalformedHeader indicates a request header line without a name/value separator.
	ErrMalformedHeader = errors.New("request header must look like 'Name: value'")
	// ErrInvalidTimeout indicates that the timeout setting is invalid.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrInvalidMaxRedirects indicates that the max_redirects setting is out of range.
	ErrInvalidMaxRedirects = errors.New("max_redirects is out of range")
	// ErrInvalidProxy indicates that the proxy URL lacks a scheme or a host.
	ErrInvalidProxy = errors.New("proxy URL must include a scheme and a host")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
// An explicitly requested file must exist; the default configuration file
// is optional and its absence yields the built-in defaults.
func LoadConfig(configFilename string) (*Config, error) {
	isDefaultConfigFile := configFilename == ""
	if isDefaultConfigFile {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if !isDefaultConfigFile || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setConfigDefaults registers the built-in defaults
// so an absent or partial config file still yields a usable configuration.
func setConfigDefaults() {
	viper.SetDefault("method", DefaultMethod)
	viper.SetDefault("timeout", DefaultTimeout)
	viper.SetDefault("max_redirects", DefaultMaxRedirects)
	viper.SetDefault("max_trace_body", DefaultMaxTraceBody)
	viper.SetDefault("log_level", DefaultLogLevel)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var (
		maxTraceBody       = strings.TrimSpace(cfg.MaxTraceBody)
		parsedMaxTraceBody uint64
		err                error
	)

	method := strings.TrimSpace(cfg.Method)
	if !methodPattern.MatchString(method) {
		return fmt.Errorf("%w: '%s'", ErrInvalidMethod, cfg.Method)
	}

	cfg.Method = method

	for _, header := range cfg.RequestHeaders {
		if !strings.Contains(header, ":") {
			return fmt.Errorf("%w: '%s'", ErrMalformedHeader, header)
		}
	}

	cfg.ParsedTimeout, err = time.ParseDuration(cfg.Timeout)
	if err != nil {
		return fmt.Errorf("failed to parse timeout: %w", err)
	}

	if cfg.ParsedTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if cfg.MaxRedirects < 0 || cfg.MaxRedirects > maxRedirectsLimit {
		return fmt.Errorf("%w: must be between 0 and %d", ErrInvalidMaxRedirects, maxRedirectsLimit)
	}

	if cfg.Proxy != "" {
		proxyURL, parseErr := url.Parse(cfg.Proxy)
		if parseErr != nil {
			return fmt.Errorf("failed to parse proxy URL: %w", parseErr)
		}

		if proxyURL.Scheme == "" || proxyURL.Host == "" {
			return fmt.Errorf("%w: '%s'", ErrInvalidProxy, cfg.Proxy)
		}
	}

	if maxTraceBody != "" && maxTraceBody != "0" {
		parsedMaxTraceBody, err = humanize.ParseBytes(maxTraceBody)
		if err != nil {
			return fmt.Errorf("failed to parse max trace body: %w", err)
		}
	}

	// The transfer engine accepts only int64 so we transform it safely in order to use it later.
	cfg.ParsedMaxTraceBody = utils.SafeUint64ToInt64(parsedMaxTraceBody)

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !(isLogLevelCorrect) {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}
