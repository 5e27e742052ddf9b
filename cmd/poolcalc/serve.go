package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"poolcalc/internal/config"
	"poolcalc/internal/handler"
	"poolcalc/internal/service"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadServe(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	app := fiber.New()

	quoteHandler := handler.NewQuoteHandler(logger, service.NewQuoteService(logger))
	sliderHandler := handler.NewSliderHandler(logger, service.NewSliderService(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/v1/quote", quoteHandler.Handle())
	app.Get("/v1/slider", sliderHandler.Handle())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	logger.Info("server start", zap.String("addr", cfg.Addr))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	logger.Info("server shutdown")
	return app.Shutdown()
}
