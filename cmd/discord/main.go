package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/MixMaster_Go/internal/bootstrap"
	"github.com/osse101/MixMaster_Go/internal/config"
	"github.com/osse101/MixMaster_Go/internal/discord"
)

const shutdownTimeout = 10 * time.Second

// The bot runs the engine in process; it does not call the HTTP API.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ValidateDiscordEnv(); err != nil {
		return err
	}

	cfg.ServiceName += "-discord"
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svcs, err := bootstrap.InitializeServices(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		return err
	}
	defer svcs.Close()

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, &discord.Deps{Mix: svcs.Mix, Optimizer: svcs.Optimizer})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		return err
	}

	health := discord.NewHTTPServer(cfg.DiscordHealthPort, bot, svcs.CheckReady)
	health.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := health.Stop(shutdownCtx); err != nil {
			slog.Error("Failed to stop health server", "error", err)
		}
	}()

	if cfg.DiscordForceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceUpdate); err != nil {
		// Commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		return err
	}
	return nil
}
