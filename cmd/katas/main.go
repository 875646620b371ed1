// Package main is the entry point for the katas command line.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dice-katas/internal/cli"
	"dice-katas/internal/config"
	"dice-katas/internal/game"
	"dice-katas/internal/game/rover"
	"dice-katas/internal/game/yahtzee"
	"dice-katas/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, _ := cfg.LogLevel() // validated by Load
	zerolog.SetGlobalLevel(level)
	if cfg.Log.JSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	log.Debug().Str("output", cfg.Output.Format).Msg("Configuration loaded")

	categories := yahtzee.NewStandardRegistry()

	// Initialize kata registry and register katas
	katas := game.NewRegistry()
	if err := katas.Register(yahtzee.NewKata(categories)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register yahtzee kata")
	}
	if err := katas.Register(rover.NewKata(&rover.Config{Strict: cfg.Rover.Strict})); err != nil {
		log.Fatal().Err(err).Msg("Failed to register rover kata")
	}

	log.Debug().
		Int("kata_count", katas.Count()).
		Strs("katas", katas.Commands()).
		Msg("Katas registered")

	app := &cli.App{
		Config:     cfg,
		Katas:      katas,
		Categories: categories,
		Ranking:    service.NewRankingService(),
		Scripts:    service.NewScriptService(categories),
	}

	if err := cli.Execute(app); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
