package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mdjourney/goal-forecast/internal/config"
	"github.com/mdjourney/goal-forecast/internal/projection"
	"github.com/mdjourney/goal-forecast/internal/server"
	"github.com/mdjourney/goal-forecast/pkg/constants"
	"github.com/mdjourney/goal-forecast/pkg/output"
	"github.com/mdjourney/goal-forecast/pkg/timevalue"
	"github.com/mdjourney/goal-forecast/pkg/validation"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

var rootCmd = &cobra.Command{
	Use:   "goal-forecast",
	Short: "Net-worth goal projection calculator",
	Long:  "Projects whether configured accounts will reach a net-worth target by a target date and the monthly contribution required to close the gap",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the projection for the configured accounts and goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		configLocation, _ := cmd.Flags().GetString("config")
		outputFormatFlag, _ := cmd.Flags().GetString("output-format")
		logLevel, _ := cmd.Flags().GetString("log-level")

		conf, err := config.LoadConfiguration(configLocation)
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
		}

		logger, err := initializeLogger(conf.Logging, logLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		outputFormat := conf.Output.Format
		if outputFormatFlag != "" {
			outputFormat = outputFormatFlag
		}
		if outputFormat == "" {
			outputFormat = constants.OutputFormatPretty
		}
		if err := validation.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}

		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		accounts, err := conf.ToAccounts()
		if err != nil {
			return fmt.Errorf("failed to convert accounts: %w", err)
		}
		params, err := conf.ToParameters()
		if err != nil {
			return err
		}

		now := time.Now()
		result := projection.Calculate(logger, accounts, params, now)

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(result, projection.MilestoneLadder(result.CurrentNetWorthUSD))
			if years, ok := timevalue.YearsToTarget(result.CurrentNetWorthUSD,
				result.MonthlyContributionNeeded, result.TargetAmount, params.GrowthRate); ok {
				fmt.Printf("Years to target at that contribution: %.1f\n", years)
			} else {
				fmt.Printf("Target is unreachable without growth or contributions\n")
			}
		case constants.OutputFormatCSV:
			timeline := projection.Timeline(logger, accounts, result.MonthlyContributionNeeded,
				constants.DefaultTimelineYears, params.GrowthRate, params.Rates, now)
			output.CsvFormat(timeline)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		configLocation, _ := cmd.Flags().GetString("config")
		address, _ := cmd.Flags().GetString("address")
		logLevel, _ := cmd.Flags().GetString("log-level")

		cfg, err := server.LoadConfig(configLocation)
		if err != nil {
			return err
		}
		if address != "" {
			cfg.Address = address
		}

		logger, err := initializeLogger(cfg.Logging, logLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		handler := server.NewHandler(logger, cfg.RequestSizeBytes(), version)
		logger.Info("serving projection API",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
		)
		if err := http.ListenAndServe(cfg.Address, handler); err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, not overwriting", path)
		}

		data, err := yaml.Marshal(exampleConfiguration())
		if err != nil {
			return fmt.Errorf("failed to marshal example configuration: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

// exampleConfiguration seeds a starter config with a representative account mix.
func exampleConfiguration() config.Configuration {
	savingsRate := 2.0
	return config.Configuration{
		Accounts: []config.Account{
			{Name: "Stocks & ETFs", Balance: 42000, Currency: "USD", Investment: true},
			{Name: "Retirement", Balance: 18500, Currency: "EUR", Investment: true, InterestRate: floatPtr(6.5)},
			{Name: "Savings", Balance: 250000, Currency: "CZK", InterestRate: &savingsRate},
			{Name: "Cash", Balance: 3200, Currency: "USD"},
		},
		Goal: config.Goal{
			TargetAmount: constants.DefaultTargetAmountUSD,
			TargetDate:   constants.DefaultTargetDate,
			GrowthRate:   constants.DefaultGrowthRate,
		},
		Logging: config.LoggingConfig{Level: "info", Format: "console"},
		Output:  config.OutputConfig{Format: constants.OutputFormatPretty},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "goal-forecast %s\n", version)
		},
	}
}

func init() {
	calculateCmd.Flags().String("config", constants.DefaultConfigFile, "path to configuration file")
	calculateCmd.Flags().String("output-format", "", "type of output override: pretty, csv")
	calculateCmd.Flags().String("log-level", "", "log level override (debug, info, warn, error)")

	serveCmd.Flags().String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().String("address", "", "listen address override")
	serveCmd.Flags().String("log-level", "", "log level override (debug, info, warn, error)")

	initCmd.Flags().String("path", constants.ExampleConfigFile, "where to write the example configuration")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
