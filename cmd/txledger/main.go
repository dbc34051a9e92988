package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	csvAdapter "github.com/iho/txledger/internal/adapter/csv"
	"github.com/iho/txledger/internal/infrastructure/config"
	"github.com/iho/txledger/internal/infrastructure/idgen"
	"github.com/iho/txledger/internal/infrastructure/logger"
	"github.com/iho/txledger/internal/infrastructure/metrics"
	"github.com/iho/txledger/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel        string
		logFormat       string
		precision       int32
		delimiter       string
		metricsTextfile string
	)

	cmd := &cobra.Command{
		Use:   "txledger <events.csv>",
		Short: "Replay a ledger event log and print account balances",
		Long: `Replays deposits, withdrawals, disputes, resolves and chargebacks from a
CSV event log against per-client accounts and writes the final balances
as CSV to stdout. Logs go to stderr.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("precision") {
				cfg.AmountPrecision = precision
			}
			if flags.Changed("delimiter") {
				cfg.CSVDelimiter = delimiter
			}
			if flags.Changed("metrics-textfile") {
				cfg.MetricsTextfile = metricsTextfile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
	cmd.Flags().Int32Var(&precision, "precision", 4, "Fractional digits kept for amounts")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	cmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file after the run")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, path string, stdout, stderr io.Writer) error {
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: stderr,
	})

	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open event log")
		return err
	}
	defer f.Close()

	opts := []csvAdapter.Option{
		csvAdapter.WithDelimiter(cfg.Delimiter()),
		csvAdapter.WithPrecision(cfg.AmountPrecision),
	}
	reader := csvAdapter.NewReader(f, opts...)
	writer := csvAdapter.NewWriter(stdout, opts...)

	m := metrics.New(prometheus.NewRegistry())
	uc := usecase.NewReplayUseCase(idgen.NewRunIDGenerator(), log, m)

	if _, err := uc.Run(ctx, reader, writer); err != nil {
		log.Error().Err(err).Str("path", path).Msg("replay failed")
		return err
	}

	if cfg.MetricsTextfile != "" {
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Error().Err(err).Str("path", cfg.MetricsTextfile).Msg("failed to write metrics")
			return err
		}
	}

	return nil
}
