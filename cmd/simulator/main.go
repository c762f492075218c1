package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marinaa13/Banking-Application/internal/adapter/replay"
	"github.com/marinaa13/Banking-Application/internal/adapter/repository/memory"
	"github.com/marinaa13/Banking-Application/internal/config"
	"github.com/marinaa13/Banking-Application/internal/usecase/exchange"
	"github.com/marinaa13/Banking-Application/internal/usecase/splitpay"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// 2. Decode the recorded session
	input, err := replay.LoadInput(cfg.InputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.InputPath).Msg("failed to load command log")
	}

	// 3. Build the rate index once for the whole session
	rates := exchange.NewIndex(input.Rates())

	// 4. Seed the in-memory registry and repositories
	db := memory.NewDB()
	replay.Seed(db, input)
	accountRepo := memory.NewAccountRepository(db)
	userRepo := memory.NewUserRepository(db)

	// 5. Wire the split-payment coordinator and replay the log
	splits := splitpay.NewService(rates, accountRepo)
	runner := replay.NewRunner(db, accountRepo, userRepo, rates, splits)
	entries := runner.Run(context.Background(), input)

	// 6. Emit the output array
	if err := replay.WriteOutput(cfg.OutputPath, entries); err != nil {
		log.Fatal().Err(err).Str("path", cfg.OutputPath).Msg("failed to write output")
	}

	log.Info().
		Int("commands", len(input.Commands)).
		Int("outputs", len(entries)).
		Str("output", cfg.OutputPath).
		Msg("replay finished")
}
