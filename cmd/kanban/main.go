package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kanban-board-client/internal/apiclient"
	"kanban-board-client/internal/config"
	"kanban-board-client/internal/metrics"
	"kanban-board-client/internal/notify"
	"kanban-board-client/internal/service"
)

// app bundles the wired client stack the subcommands run against.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	boards  service.BoardService
	columns service.ColumnService
	tasks   service.TaskService
}

var (
	cfgPath string
	rootApp *app
)

var rootCmd = &cobra.Command{
	Use:           "kanban",
	Short:         "Kanban board client",
	Long:          "Command-line client for a remote Kanban board service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			// .env file not found, environment variables apply as-is
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		logger, err := initLogger(cfg.Logger.Level)
		if err != nil {
			return err
		}

		var notifier notify.Notifier
		if cfg.Features.Notifications {
			notifier = notify.NewLogNotifier(logger)
		} else {
			notifier = notify.NewNoOpNotifier()
		}

		m := metrics.NewWithLogger(logger)
		api := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout(), notifier, logger, m)

		rootApp = &app{
			cfg:     cfg,
			logger:  logger,
			metrics: m,
			boards:  service.NewBoardService(api, m, logger),
			columns: service.NewColumnService(api, m, logger),
			tasks:   service.NewTaskService(api, m, logger),
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "configs/config.yaml", "path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
