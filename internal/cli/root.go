package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vspcatalog/internal/app"
	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "VSPCATALOG"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:          "vspcatalog",
		Short:        "Catalog, select and reconcile geometry design variables",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			logger := newLogger(viper.GetString("log_level"))
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithContext(ctx))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error or T/D/I/W/F/O)")
	cmd.PersistentFlags().String("external-tool-version", "", "Version of the geometry tool that wrote the input files")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("external_tool_version", cmd.PersistentFlags().Lookup("external-tool-version"))

	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newSelectCommand())
	cmd.AddCommand(newReconcileCommand())
	cmd.AddCommand(newExportCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newIngestCommand())
	cmd.AddCommand(newRefreshCommand())
	cmd.AddCommand(newWatchCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("apply_order", true)
	viper.SetDefault("set_id", 1)
	viper.SetDefault("n_apply_des", 1)
	viper.SetDefault("prompt", "reject")

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("vspcatalog")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/vspcatalog")
	_ = viper.ReadInConfig()
	return nil
}

// levelNames maps the single-letter levels older state files and configs
// carry onto zerolog level names.
var levelNames = map[string]string{
	"t":   "trace",
	"d":   "debug",
	"i":   "info",
	"w":   "warn",
	"f":   "error",
	"o":   "disabled",
	"off": "disabled",
}

// stampLevels maps zerolog level names onto the names state documents
// record, which older tool versions also read and write.
var stampLevels = map[string]string{
	"trace":    "TRACE",
	"debug":    "DEBUG",
	"info":     "INFO",
	"warn":     "WARN",
	"error":    "FATAL",
	"fatal":    "FATAL",
	"panic":    "FATAL",
	"disabled": "OFF",
}

func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if name, ok := levelNames[level]; ok {
		return name
	}
	if level == "" {
		return "info"
	}
	return level
}

func stampLevel(level string) string {
	normalized := normalizeLevel(level)
	if name, ok := stampLevels[normalized]; ok {
		return name
	}
	return strings.ToUpper(normalized)
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(normalizeLevel(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}

func runningVersions() types.Versions {
	return types.Versions{
		Tool:     version,
		External: viper.GetString("external_tool_version"),
		LogLevel: stampLevel(viper.GetString("log_level")),
	}
}

func newAppService() app.Service {
	return app.NewService(runningVersions())
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound:
		if strings.HasPrefix(message, shared.PrefixIngestionMismatch) {
			return 4
		}
		return 5
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
