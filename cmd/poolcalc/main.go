package main

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"poolcalc/internal/config"
	"poolcalc/internal/service"
	"poolcalc/internal/storage"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "poolcalc",
		Short:        "Constant-product pool pricing calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a one-shot trade quote",
		RunE:  runQuote,
	}

	quoteCmd.Flags().Float64("liquidity", 1000, "pool liquidity L")
	quoteCmd.Flags().Float64("initial-price", 1.0, "initial quote-per-base price")
	quoteCmd.Flags().Float64("final-price", 1.1, "final quote-per-base price")
	quoteCmd.Flags().Float64("fee-percent", 0.3, "fee percentage in [0, 100)")
	quoteCmd.Flags().Bool("json", false, "emit the raw quote record as JSON")
	quoteCmd.Flags().String("out", "", "optional JSONL path to append the quote record to")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP quote API",
		RunE:  runServe,
	}

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Derive calculator inputs from an on-chain pair",
		RunE:  runSeed,
	}

	seedCmd.Flags().String("rpc", "", "EVM RPC URL")
	seedCmd.Flags().String("pair", "", "V2-style pair contract address")
	seedCmd.Flags().Uint64("block", 0, "block number, 0 means latest")
	seedCmd.Flags().Int("base-decimals", 18, "decimals of the base token (token0)")
	seedCmd.Flags().Int("quote-decimals", 18, "decimals of the quote token (token1)")
	seedCmd.Flags().Bool("invert", false, "treat token1 as base and token0 as quote")
	seedCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(seedCmd)

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator session",
		RunE:  runRepl,
	}

	root.AddCommand(replCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadQuote(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	svc := service.NewQuoteService(logger)
	record, err := svc.Quote(service.QuoteParams{
		Liquidity:    cfg.Liquidity,
		InitialPrice: cfg.InitialPrice,
		FinalPrice:   cfg.FinalPrice,
		FeePercent:   cfg.FeePercent,
	})
	if err != nil {
		return err
	}

	if cfg.Out != "" {
		sink := storage.NewJsonlStorage(cfg.Out)
		if err := sink.PutQuote(record); err != nil {
			return err
		}
	}

	if cfg.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(record)
	}

	return renderRecord(os.Stdout, record)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
