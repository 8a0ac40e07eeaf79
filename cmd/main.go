package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-courier/infrastructure/console"
	"chat-courier/infrastructure/roster"
	"chat-courier/infrastructure/world"
	"chat-courier/leakguard"
	"chat-courier/repositories"
	"chat-courier/runtime"
	"chat-courier/runtime/workers"
	"chat-courier/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the lifecycle, and centralizes
// error reporting so that defers (database cleanup) always execute before
// the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core components
	guard, err := leakguard.New(leakguard.Config{
		Enabled:        config.LeakGuard,
		StripBraces:    config.StripStarscriptBraces,
		BlockDangerous: config.BlockDangerousStarscript,
		BlockRawCoords: config.BlockRawXYZPatterns,
	}, log)
	if err != nil {
		return fmt.Errorf("leak guard setup failed: %w", err)
	}

	participants, err := roster.Parse(config.Roster)
	if err != nil {
		return fmt.Errorf("roster parsing failed: %w", err)
	}

	mailbox := repositories.NewMailboxRepository(db, log)
	transport := console.NewTransport(os.Stdout, config.Colours,
		config.ConsolePrivateDelivery)
	delivery := services.NewDeliveryService(log, mailbox, transport, guard,
		config.NotifySenderOnDelivery)
	commands := services.NewCommandService(log, services.Options{
		Prefix:                 config.CommandPrefix,
		PublicReplies:          config.PublicReplies,
		EnableInfoCommands:     config.EnableInfoCommands,
		EnableOfflineMessenger: config.EnableOfflineMessenger,
	}, mailbox, participants, world.NewClock(config.WorldName), transport, guard, delivery)

	engine := runtime.NewEngine(log, commands, delivery, config.BufferSize)

	// 4. Supervision
	sup := workers.NewSupervisor(log)
	sup.Add(engine)
	sup.Add(console.NewReader(log, os.Stdin, engine.Lines()))
	sup.Add(workers.NewTelemetryWorker(log, config.TelemetryInterval))
	if config.EnableOfflineMessenger {
		sup.Add(workers.NewPresenceWorker(log, participants,
			config.PresenceInterval, engine.Appearances()))
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting chat-courier", "prefix", config.CommandPrefix)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
