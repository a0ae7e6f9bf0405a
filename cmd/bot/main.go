package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fortunabot/fortuna/internal/catalog"
	"github.com/fortunabot/fortuna/internal/common/clock"
	"github.com/fortunabot/fortuna/internal/common/uuid"
	"github.com/fortunabot/fortuna/internal/config"
	"github.com/fortunabot/fortuna/internal/handlers/discord"
	"github.com/fortunabot/fortuna/internal/repositories/account"
	"github.com/fortunabot/fortuna/internal/rng"
	"github.com/fortunabot/fortuna/internal/services/arcade"
	"github.com/fortunabot/fortuna/internal/services/messaging"
	"github.com/fortunabot/fortuna/internal/services/round"
	"github.com/fortunabot/fortuna/internal/services/wallet"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	accountRepo, err := account.NewRedis(&account.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create account repository")
	}

	sysClock := &clock.DefaultClock{}
	randSource := rng.New(nil)

	walletSvc, err := wallet.New(&wallet.Config{
		AccountRepo: accountRepo,
		Clock:       sysClock,
		Rand:        randSource,
		Logger:      log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create wallet service")
	}

	caseCatalog, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load case catalog")
	}

	roundSvc, err := round.New(&round.Config{
		WalletService: walletSvc,
		Clock:         sysClock,
		UUIDGenerator: uuid.New(),
		Rand:          randSource,
		Catalog:       caseCatalog,
		Logger:        log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create round service")
	}

	arcadeSvc, err := arcade.New(&arcade.Config{
		WalletService: walletSvc,
		Rand:          randSource,
		Logger:        log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create arcade service")
	}

	messagingSvc, err := messaging.New(&messaging.Config{
		Rand: randSource,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		WalletService:    walletSvc,
		RoundService:     roundSvc,
		ArcadeService:    arcadeSvc,
		MessagingService: messagingSvc,
		Logger:           log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop cleanly")
	}
}
