package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"poolcalc/internal/chain"
	"poolcalc/internal/config"
	"poolcalc/internal/cpmm"
	"poolcalc/internal/model"
)

func runSeed(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSeed(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if !common.IsHexAddress(cfg.Pair) {
		return fmt.Errorf("%w: %q", chain.ErrInvalidAddress, cfg.Pair)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer client.Close()

	reader := chain.NewPairReader(client, logger)
	snap, err := reader.Snapshot(ctx, chain.PairQuery{
		Pair:          common.HexToAddress(cfg.Pair),
		Block:         cfg.Block,
		BaseDecimals:  cfg.BaseDecimals,
		QuoteDecimals: cfg.QuoteDecimals,
		Invert:        cfg.Invert,
	})
	if err != nil {
		return err
	}

	logger.Info("pair snapshot",
		zap.Uint64("chain_id", snap.ChainID),
		zap.String("pair", snap.PairAddress),
		zap.Uint64("block", snap.BlockNumber),
		zap.Float64("price", snap.Price),
		zap.Float64("liquidity", snap.Liquidity),
	)

	return renderSnapshot(os.Stdout, snap)
}

func renderSnapshot(w io.Writer, snap model.PairSnapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Pair\t%s\n", snap.PairAddress)
	fmt.Fprintf(tw, "Token0\t%s\n", snap.Token0)
	fmt.Fprintf(tw, "Token1\t%s\n", snap.Token1)
	fmt.Fprintf(tw, "Block\t%d\n", snap.BlockNumber)
	fmt.Fprintf(tw, "Base reserve\t%s\n", cpmm.FormatNumber(snap.BaseReserve))
	fmt.Fprintf(tw, "Quote reserve\t%s\n", cpmm.FormatNumber(snap.QuoteReserve))
	fmt.Fprintf(tw, "Price\t%s\n", cpmm.FormatNumber(snap.Price))
	fmt.Fprintf(tw, "Liquidity\t%s\n", cpmm.FormatNumber(snap.Liquidity))
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\npoolcalc quote --liquidity %g --initial-price %g\n", snap.Liquidity, snap.Price)
	return err
}
