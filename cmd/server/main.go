package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	natsclient "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/log"

	"github.com/0xsj/wikilink/internal/adapter/inbound/httpapi"
	"github.com/0xsj/wikilink/internal/adapter/outbound/mediawiki"
	natsadapter "github.com/0xsj/wikilink/internal/adapter/outbound/nats"
	"github.com/0xsj/wikilink/internal/adapter/outbound/postgres"
	rediscache "github.com/0xsj/wikilink/internal/adapter/outbound/redis"
	"github.com/0xsj/wikilink/internal/app/query"
	"github.com/0xsj/wikilink/internal/app/service"
	"github.com/0xsj/wikilink/internal/config"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.NewPretty(log.DefaultConfig())

	logger.Info("starting wikilink service",
		log.String("address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		log.String("wiki", cfg.Wiki.BaseURL),
	)

	// Connect to the primary identity store
	pool, err := connectPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	// Connect to the wiki replica when this deployment has one
	var replicaRepo repository.ReplicaRepository
	if cfg.Replica.Enabled {
		replicaPool, err := connectReplica(ctx, cfg.Replica, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to replica: %w", err)
		}
		defer replicaPool.Close()
		replicaRepo = postgres.NewReplicaRepository(replicaPool)
	} else {
		logger.Info("replica not configured, stats and search degraded")
	}

	// Connect to Redis
	redisClient, err := connectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Connect to NATS
	natsConn, err := connectNATS(cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}
	defer natsConn.Close()

	// Initialize repositories and stores
	identityRepo := postgres.NewIdentityRepository(pool)
	sessionStore := rediscache.NewSessionStore(redisClient, cfg.Session.TTL)

	// Initialize event publisher
	eventPublisher := natsadapter.NewEventPublisher(natsConn, cfg.NATS.SubjectPrefix)

	// Initialize the wiki API client
	wikiClient, err := mediawiki.NewClient(mediawiki.ClientConfig{
		BaseURL:        cfg.Wiki.BaseURL,
		ConsumerKey:    cfg.Wiki.ConsumerKey,
		ConsumerSecret: cfg.Wiki.ConsumerSecret,
		Timeout:        cfg.Wiki.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create wiki client: %w", err)
	}

	// Initialize the credential resolver
	resolver := service.NewCredentialResolver(identityRepo, eventPublisher)

	// Initialize query handlers
	getUserInfoHandler := query.NewGetUserInfoHandler(resolver, wikiClient, eventPublisher)
	getWikiStatsHandler := query.NewGetWikiStatsHandler(identityRepo, replicaRepo)
	searchArticlesHandler := query.NewSearchArticlesHandler(replicaRepo, cfg.Wiki.ArticleBaseURL)

	// Initialize HTTP handler and server
	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		GetUserInfoHandler:    getUserInfoHandler,
		GetWikiStatsHandler:   getWikiStatsHandler,
		SearchArticlesHandler: searchArticlesHandler,
		Logger:                logger,
	})

	authMiddleware := httpapi.NewAuthMiddleware(sessionStore, logger)

	server := httpapi.NewServer(
		httpapi.ServerConfig{
			Host: cfg.Server.Host,
			Port: cfg.Server.Port,
		},
		handler,
		authMiddleware,
		logger,
	)

	// Handle graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("wikilink service started")

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received shutdown signal", log.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}

		logger.Info("wikilink service stopped gracefully")
		return nil
	}
}

func connectPostgres(ctx context.Context, cfg config.DatabaseConfig, logger log.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to postgres",
		log.String("host", cfg.Host),
		log.String("database", cfg.Database),
	)

	return pool, nil
}

func connectReplica(ctx context.Context, cfg config.ReplicaConfig, logger log.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping replica: %w", err)
	}

	logger.Info("connected to wiki replica",
		log.String("host", cfg.Host),
		log.String("database", cfg.Database),
	)

	return pool, nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig, logger log.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("connected to redis",
		log.String("address", cfg.Address()),
	)

	return client, nil
}

func connectNATS(cfg config.NATSConfig, logger log.Logger) (*natsclient.Conn, error) {
	opts := []natsclient.Option{
		natsclient.MaxReconnects(cfg.MaxReconnects),
		natsclient.ReconnectWait(cfg.ReconnectWait),
		natsclient.DisconnectErrHandler(func(nc *natsclient.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", log.String("error", err.Error()))
			}
		}),
		natsclient.ReconnectHandler(func(nc *natsclient.Conn) {
			logger.Info("nats reconnected", log.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := natsclient.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	logger.Info("connected to nats",
		log.String("url", conn.ConnectedUrl()),
	)

	return conn, nil
}
