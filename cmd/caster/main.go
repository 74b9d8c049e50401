package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/lol-cast-engine/internal/castmodes"
	"github.com/KirkDiggler/lol-cast-engine/internal/clients/ddragon"
	"github.com/KirkDiggler/lol-cast-engine/internal/clients/liveclient"
	"github.com/KirkDiggler/lol-cast-engine/internal/config"
	"github.com/KirkDiggler/lol-cast-engine/internal/events"
	"github.com/KirkDiggler/lol-cast-engine/internal/handlers/discord"
	"github.com/KirkDiggler/lol-cast-engine/internal/handlers/display"
	"github.com/KirkDiggler/lol-cast-engine/internal/input"
	"github.com/KirkDiggler/lol-cast-engine/internal/logging"
	"github.com/KirkDiggler/lol-cast-engine/internal/repositories/champions"
	"github.com/KirkDiggler/lol-cast-engine/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("no .env file found")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("caster stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	redisClient := connectRedis(ctx, cfg.Redis.URL, logger)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("failed to close redis", zap.Error(err))
			}
		}()
	}

	ddragonClient, err := ddragon.New(&ddragon.Config{
		BaseURL: cfg.DDragon.BaseURL,
		Timeout: cfg.DDragon.Timeout,
		Logger:  logger.Named("ddragon"),
	})
	if err != nil {
		return err
	}

	modes, err := castModeSource(cfg.CastModesFile)
	if err != nil {
		return err
	}

	// zero disables the early release
	earlyRelease := cfg.EarlyRelease
	if earlyRelease == 0 {
		earlyRelease = -1
	}

	bus := events.NewBus(logger.Named("events"))
	providerConfig := &services.ProviderConfig{
		DDragonClient: ddragonClient,
		CastModes:     modes,
		Bus:           bus,
		Preference:    cfg.Preference(),
		KeyMap:        cfg.KeyMap(),
		EarlyRelease:  earlyRelease,
		LiveClient: liveclient.New(&liveclient.Config{
			URL:         cfg.LiveClient.URL,
			InsecureTLS: cfg.LiveClient.InsecureTLS,
		}),
		PollInterval: cfg.LiveClient.PollInterval,
		Logger:       logger,
	}
	if redisClient != nil {
		providerConfig.ChampionRepository = champions.NewRedisRepository(&champions.RedisRepoConfig{
			Client:     redisClient,
			VersionTTL: cfg.Redis.CacheTTL,
		})
	} else {
		providerConfig.ChampionRepository = champions.NewInMemoryRepository(cfg.Redis.CacheTTL)
	}

	provider := services.NewProvider(providerConfig)

	data, err := provider.ChampionService.Load(ctx, cfg.Champion)
	if err != nil {
		return err
	}
	if err := provider.Controller.Activate(data); err != nil {
		return err
	}
	defer provider.Controller.Deactivate()

	logger.Info("champion active",
		zap.String("champion", data.Name),
		zap.String("version", data.Version),
		zap.Stringer("preference", cfg.Preference()))

	source, err := input.NewTerminalSource(&input.TerminalConfig{
		Buffer: cfg.InputBuffer,
		Quit:   cancel,
		Logger: logger.Named("input"),
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// a closed source ends the process
		defer cancel()
		return provider.Controller.Run(gctx, source)
	})

	g.Go(func() error {
		return provider.Poller.Run(gctx)
	})

	if cfg.Display.Addr != "" {
		hub := display.NewHub(&display.HubConfig{
			Status: provider.Controller,
			Logger: logger.Named("display"),
		})
		bus.SubscribeAll(hub)

		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		server := &http.Server{
			Addr:              cfg.Display.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.Info("display listening", zap.String("addr", cfg.Display.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			hub.Close()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	if cfg.Discord.Enabled() {
		session, err := discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			return err
		}
		notifier, err := discord.NewNotifier(&discord.NotifierConfig{
			Sender:    session,
			ChannelID: cfg.Discord.ChannelID,
			Logger:    logger.Named("discord"),
		})
		if err != nil {
			return err
		}
		for _, eventType := range notifier.Types() {
			bus.Subscribe(eventType, notifier)
		}

		g.Go(func() error {
			return notifier.Run(gctx)
		})
	}

	return g.Wait()
}

// connectRedis returns nil when no URL is set or the server is unreachable,
// leaving the champion cache in memory
func connectRedis(ctx context.Context, url string, logger *zap.Logger) *redis.Client {
	if url == "" {
		logger.Info("no REDIS_URL set, caching champions in memory")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("failed to parse REDIS_URL, caching champions in memory", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("failed to connect to redis, caching champions in memory", zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("using redis champion cache", zap.String("addr", opts.Addr))
	return client
}

func castModeSource(path string) (castmodes.Source, error) {
	builtin := castmodes.Builtin()
	if path == "" {
		return builtin, nil
	}

	file, err := castmodes.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return castmodes.Chain(file, builtin), nil
}
