package cmd

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/tracefetch/internal/config"
	"github.com/oshokin/tracefetch/internal/constants"
)

const testBaseConfigContent = `
user_agent: "config-agent/1.0"
method: "GET"
request_headers:
  - "Accept: text/plain"
timeout: "45s"
follow_redirects: false
max_redirects: 5
insecure_skip_verify: false
max_trace_body: "512KB"
output_path: "/config/output"
trace_path: ""
log_level: "info"
`

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:funlen,nolintlint,tparallel // It's a comprehensive integration test. Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]any
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]any{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "GET", cfg.Method)
				assert.Equal(t, []string{"Accept: text/plain"}, cfg.RequestHeaders)
				assert.Equal(t, "45s", cfg.Timeout)
				assert.False(t, cfg.FollowRedirects)
				assert.Equal(t, int64(5), cfg.MaxRedirects)
				assert.Equal(t, "512KB", cfg.MaxTraceBody)
				assert.Equal(t, "/config/output", cfg.OutputPath)
			},
		},
		{
			name: "request flag only - override method",
			flags: map[string]any{
				"request": "POST",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "POST", cfg.Method)
				assert.Equal(t, "45s", cfg.Timeout)
				assert.Equal(t, "/config/output", cfg.OutputPath)
			},
		},
		{
			name: "output flag only - override output path",
			flags: map[string]any{
				"output": "/flag/output",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "GET", cfg.Method)
				assert.Equal(t, "/flag/output", cfg.OutputPath)
			},
		},
		{
			name: "location flag only - override redirect following",
			flags: map[string]any{
				"location": true,
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.FollowRedirects)
				assert.Equal(t, int64(5), cfg.MaxRedirects)
			},
		},
		{
			name: "header flags - replace request headers",
			flags: map[string]any{
				"header": []string{"X-One: 1", "X-Two: 2"},
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, []string{"X-One: 1", "X-Two: 2"}, cfg.RequestHeaders)
			},
		},
		{
			name: "timeout and max-redirs flags - partial override",
			flags: map[string]any{
				"timeout":    "90s",
				"max-redirs": 20,
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "90s", cfg.Timeout)
				assert.Equal(t, 90*time.Second, cfg.ParsedTimeout)
				assert.Equal(t, int64(20), cfg.MaxRedirects)
				assert.Equal(t, "GET", cfg.Method)
			},
		},
		{
			name: "insecure and proxy flags - partial override",
			flags: map[string]any{
				"insecure": true,
				"proxy":    "http://127.0.0.1:3128",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.InsecureSkipVerify)
				assert.Equal(t, "http://127.0.0.1:3128", cfg.Proxy)
				assert.False(t, cfg.FollowRedirects)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]any{
				"request":        "POST",
				"header":         []string{"X-Probe: on"},
				"data":           `{"ping":1}`,
				"user-agent":     "custom/2.0",
				"location":       true,
				"max-redirs":     3,
				"insecure":       true,
				"timeout":        "10s",
				"proxy":          "http://127.0.0.1:3128",
				"max-trace-body": "64KB",
				"output":         "/all/flags/output",
				"trace":          "/all/flags/trace.log",
				"report":         "/all/flags/report.yaml",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "POST", cfg.Method)
				assert.Equal(t, []string{"X-Probe: on"}, cfg.RequestHeaders)
				assert.Equal(t, `{"ping":1}`, cfg.Data)
				assert.Equal(t, "custom/2.0", cfg.UserAgent)
				assert.True(t, cfg.FollowRedirects)
				assert.Equal(t, int64(3), cfg.MaxRedirects)
				assert.True(t, cfg.InsecureSkipVerify)
				assert.Equal(t, 10*time.Second, cfg.ParsedTimeout)
				assert.Equal(t, "http://127.0.0.1:3128", cfg.Proxy)
				assert.Equal(t, int64(64000), cfg.ParsedMaxTraceBody)
				assert.Equal(t, "/all/flags/output", cfg.OutputPath)
				assert.Equal(t, "/all/flags/trace.log", cfg.TracePath)
				assert.Equal(t, "/all/flags/report.yaml", cfg.ReportPath)
			},
		},
		{
			name: "location false flag - explicit false override",
			flags: map[string]any{
				"location": false,
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.False(t, cfg.FollowRedirects)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with the same flags as the root command.
			testCmd := &cobra.Command{Use: "test"}
			addRootFlags(testCmd)

			// Set flag values.
			for flagName, flagValue := range tt.flags {
				var setErr error

				switch v := flagValue.(type) {
				case int:
					setErr = testCmd.Flags().Set(flagName, strconv.Itoa(v))
				case string:
					setErr = testCmd.Flags().Set(flagName, v)
				case bool:
					setErr = testCmd.Flags().Set(flagName, strconv.FormatBool(v))
				case []string:
					for _, item := range v {
						if setErr = testCmd.Flags().Set(flagName, item); setErr != nil {
							break
						}
					}
				}

				require.NoError(t, setErr, "failed to set flag %s", flagName)
			}

			// Bind flags to config.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			// Verify expectations.
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_MaxRedirectsValues tests the accepted range of the max-redirs flag.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_MaxRedirectsValues(t *testing.T) {
	redirectTests := []struct {
		name              string
		maxRedirectsValue int
		expectedRedirects int64
	}{
		{"max-redirs 0 - redirects disabled", 0, 0},
		{"max-redirs 1 - single hop", 1, 1},
		{"max-redirs 10 - default ceiling", 10, 10},
		{"max-redirs 100 - upper bound", 100, 100},
	}

	for _, tt := range redirectTests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with flags.
			testCmd := &cobra.Command{Use: "test"}
			testCmd.Flags().Int64("max-redirs", config.DefaultMaxRedirects, "maximum redirects")

			// Set the max-redirs flag.
			err = testCmd.Flags().Set("max-redirs", strconv.Itoa(tt.maxRedirectsValue))
			require.NoError(t, err)

			// Bind flags to config.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			// Verify max-redirs was applied.
			assert.Equal(t, tt.expectedRedirects, cfg.MaxRedirects,
				"MaxRedirects should be set to %d", tt.expectedRedirects)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	invalidTests := []struct {
		name          string
		flagName      string
		flagValue     string
		expectedError string
	}{
		{
			name:          "invalid method - contains a space",
			flagName:      "request",
			flagValue:     "GET POST",
			expectedError: "invalid HTTP method",
		},
		{
			name:          "invalid header - no separator",
			flagName:      "header",
			flagValue:     "NoColonHere",
			expectedError: "request header must look like",
		},
		{
			name:          "invalid timeout - not a duration",
			flagName:      "timeout",
			flagValue:     "soon",
			expectedError: "failed to parse timeout",
		},
		{
			name:          "invalid timeout - zero",
			flagName:      "timeout",
			flagValue:     "0s",
			expectedError: "timeout must be positive",
		},
		{
			name:          "invalid max-redirs - above the ceiling",
			flagName:      "max-redirs",
			flagValue:     "101",
			expectedError: "max_redirects is out of range",
		},
		{
			name:          "invalid proxy - no scheme",
			flagName:      "proxy",
			flagValue:     "localhost",
			expectedError: "proxy URL must include a scheme and a host",
		},
		{
			name:          "invalid max trace body",
			flagName:      "max-trace-body",
			flagValue:     "plenty",
			expectedError: "failed to parse max trace body",
		},
	}

	for _, tt := range invalidTests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with the same flags as the root command.
			testCmd := &cobra.Command{Use: "test"}
			addRootFlags(testCmd)

			// Set the flag.
			err = testCmd.Flags().Set(tt.flagName, tt.flagValue)
			require.NoError(t, err)

			// Bind flags to config - this should fail validation.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

// TestBindFlagsToConfig_UnchangedFlags tests that unchanged flags don't override config values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestBindFlagsToConfig_UnchangedFlags(t *testing.T) {
	// Create temporary directory and config file.
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	// Use specific config content for this test.
	configContent := `
user_agent: "probe/0.9"
method: "HEAD"
timeout: "30s"
follow_redirects: true
max_redirects: 7
insecure_skip_verify: true
max_trace_body: "256KB"
output_path: "/config/output"
trace_path: "/config/trace.log"
log_level: "info"
`

	err := os.WriteFile(
		configPath,
		[]byte(configContent),
		constants.DefaultFilePermissions,
	) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	// Load configuration.
	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	// Create a test command with flags but don't set any.
	testCmd := &cobra.Command{Use: "test"}
	addRootFlags(testCmd)

	// Bind flags to config without setting any flags.
	err = bindFlagsToConfig(testCmd.Flags(), cfg)
	require.NoError(t, err)

	// Verify config values remain unchanged.
	assert.Equal(t, "probe/0.9", cfg.UserAgent)
	assert.Equal(t, "HEAD", cfg.Method)
	assert.Equal(t, 30*time.Second, cfg.ParsedTimeout)
	assert.True(t, cfg.FollowRedirects)
	assert.Equal(t, int64(7), cfg.MaxRedirects)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.Equal(t, "256KB", cfg.MaxTraceBody)
	assert.Equal(t, "/config/output", cfg.OutputPath)
	assert.Equal(t, "/config/trace.log", cfg.TracePath)
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Method:       "GET",
		Timeout:      "30s",
		MaxRedirects: 10,
		MaxTraceBody: "1MB",
		LogLevel:     "info",
	}

	// Create an empty flag set.
	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// Calling with empty flag set should just validate the config.
	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ParsedTimeout)
}

// addRootFlags registers the same transfer flags as the root command
// so tests can exercise bindFlagsToConfig in isolation.
func addRootFlags(testCmd *cobra.Command) {
	flags := testCmd.Flags()
	flags.StringP("request", "X", "", "HTTP method")
	flags.StringArrayP("header", "H", nil, "extra request header")
	flags.StringP("data", "d", "", "request body")
	flags.StringP("user-agent", "A", "", "user agent")
	flags.BoolP("location", "L", false, "follow redirects")
	flags.Int64("max-redirs", config.DefaultMaxRedirects, "maximum redirects")
	flags.BoolP("insecure", "k", false, "skip TLS verification")
	flags.String("timeout", config.DefaultTimeout, "transfer timeout")
	flags.StringP("proxy", "x", "", "proxy URL")
	flags.String("max-trace-body", config.DefaultMaxTraceBody, "trace body cap")
	flags.StringP("output", "o", "", "output directory")
	flags.StringP("trace", "t", "", "trace destination")
	flags.StringP("report", "r", "", "report file")
}
