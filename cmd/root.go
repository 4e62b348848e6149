package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oshokin/tracefetch/internal/app"
	"github.com/oshokin/tracefetch/internal/config"
	"github.com/oshokin/tracefetch/internal/logger"
	"github.com/oshokin/tracefetch/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "tracefetch [flags] {urls}",
		Short: "Fetch URLs while capturing an annotated log of the transfer.",
		Long: `Tracefetch is a CLI tool for fetching URLs while recording everything
that crosses the wire. For every transfer it captures:
- Informational events (connection setup, redirects, TLS parameters)
- Sent and received headers
- Sent and received body data as printable ASCII dumps

Response bodies can be printed, saved to files, or discarded, and each
session can be summarized in a YAML report.`,
		Args:             cobra.MinimumNArgs(1),
		Version:          version.Full(),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, urls []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, urls)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits,funlen // Cobra requires the init function to set up all flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"request",
		"X",
		"",
		"HTTP method to use, for example: GET, POST, HEAD.")

	rootCmdFlags.StringArrayP(
		"header",
		"H",
		nil,
		"extra request header as 'Name: value' (repeatable).")

	rootCmdFlags.StringP(
		"data",
		"d",
		"",
		"request body to send with the transfer.")

	rootCmdFlags.StringP(
		"user-agent",
		"A",
		"",
		"User-Agent header to send instead of the built-in one.")

	rootCmdFlags.BoolP(
		"location",
		"L",
		false,
		"follow 3xx redirects.")

	rootCmdFlags.Int64(
		"max-redirs",
		config.DefaultMaxRedirects,
		"maximum number of redirects to follow.")

	rootCmdFlags.BoolP(
		"insecure",
		"k",
		false,
		"skip TLS certificate verification.")

	rootCmdFlags.String(
		"timeout",
		config.DefaultTimeout,
		"overall transfer timeout, for example: 30s, 2m.")

	rootCmdFlags.StringP(
		"proxy",
		"x",
		"",
		"proxy URL to route transfers through.")

	rootCmdFlags.String(
		"max-trace-body",
		config.DefaultMaxTraceBody,
		"cap on body bytes per transfer in the trace log, 0 disables the cap.")

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save response bodies (the path will be created if it doesn’t exist).")

	rootCmdFlags.StringP(
		"trace",
		"t",
		"",
		"file receiving the trace log, '-' for stdout (default is stderr).")

	rootCmdFlags.StringP(
		"report",
		"r",
		"",
		"file receiving a YAML report of the session.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

//nolint:cyclop // Flag binding is a flat sequence of identical checks.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("request"); flag != nil && flag.Changed {
		cfg.Method, _ = flags.GetString("request")
	}

	if flag := flags.Lookup("header"); flag != nil && flag.Changed {
		cfg.RequestHeaders, _ = flags.GetStringArray("header")
	}

	if flag := flags.Lookup("data"); flag != nil && flag.Changed {
		cfg.Data, _ = flags.GetString("data")
	}

	if flag := flags.Lookup("user-agent"); flag != nil && flag.Changed {
		cfg.UserAgent, _ = flags.GetString("user-agent")
	}

	if flag := flags.Lookup("location"); flag != nil && flag.Changed {
		cfg.FollowRedirects, _ = flags.GetBool("location")
	}

	if flag := flags.Lookup("max-redirs"); flag != nil && flag.Changed {
		cfg.MaxRedirects, _ = flags.GetInt64("max-redirs")
	}

	if flag := flags.Lookup("insecure"); flag != nil && flag.Changed {
		cfg.InsecureSkipVerify, _ = flags.GetBool("insecure")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.Timeout, _ = flags.GetString("timeout")
	}

	if flag := flags.Lookup("proxy"); flag != nil && flag.Changed {
		cfg.Proxy, _ = flags.GetString("proxy")
	}

	if flag := flags.Lookup("max-trace-body"); flag != nil && flag.Changed {
		cfg.MaxTraceBody, _ = flags.GetString("max-trace-body")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("trace"); flag != nil && flag.Changed {
		cfg.TracePath, _ = flags.GetString("trace")
	}

	if flag := flags.Lookup("report"); flag != nil && flag.Changed {
		cfg.ReportPath, _ = flags.GetString("report")
	}

	return config.ValidateConfig(cfg)
}
