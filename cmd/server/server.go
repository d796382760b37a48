package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/charforge/internal/clients/external"
	"github.com/KirkDiggler/charforge/internal/config"
	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
	"github.com/KirkDiggler/charforge/internal/orchestrators/character"
	"github.com/KirkDiggler/charforge/internal/orchestrators/dice"
	"github.com/KirkDiggler/charforge/internal/pkg/clock"
	"github.com/KirkDiggler/charforge/internal/pkg/idgen"
	"github.com/KirkDiggler/charforge/internal/pkg/tracing"
	redisclient "github.com/KirkDiggler/charforge/internal/redis"
	characterrepo "github.com/KirkDiggler/charforge/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/charforge/internal/repositories/character_draft"
	dicesession "github.com/KirkDiggler/charforge/internal/repositories/dice_session"
	"github.com/KirkDiggler/charforge/internal/sqlite"
)

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the charforge gRPC server with the character creation and dice services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GRPC_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// A missing dotenv file is fine; the environment may already be set
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	slog.SetDefault(newLogger(cfg))

	shutdownTracing, err := tracing.Setup(ctx, &tracing.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	deps, cleanup, err := wireServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer()

	characterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: deps.characterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create character handler: %w", err)
	}
	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: deps.diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice handler: %w", err)
	}

	v1alpha1.RegisterCharacterCreationServer(srv, characterHandler)
	v1alpha1.RegisterDiceServer(srv, diceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.CharacterCreationServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.DiceServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.GRPCPort,
			"character_store", cfg.CharacterStore,
			"catalog", cfg.CatalogSource,
		)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

type services struct {
	characterService character.Service
	diceService      dice.Service
}

// wireServices builds the storage, catalog and orchestrators. cleanup closes
// every opened connection.
func wireServices(ctx context.Context, cfg *config.Config) (*services, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				slog.Warn("failed to close resource", "error", err)
			}
		}
	}
	fail := func(err error) (*services, func(), error) {
		cleanup()
		return nil, func() {}, err
	}

	redis, err := redisclient.NewClient(cfg.RedisEndpoint, &redisclient.Options{
		PoolSize:        10,
		MinIdleConns:    2,
		ConnMaxIdleTime: 5 * time.Minute,
		MaxRetries:      3,
	})
	if err != nil {
		return fail(err)
	}
	closers = append(closers, redis.Close)

	if err := redisclient.Ping(ctx, redis); err != nil {
		return fail(err)
	}

	characterRepo, db, err := newCharacterRepository(ctx, cfg, redis)
	if err != nil {
		return fail(err)
	}
	if db != nil {
		closers = append(closers, db.Close)
	}

	draftRepo, err := draftrepo.NewRedisRepository(&draftrepo.Config{
		Client: redis,
		TTL:    cfg.DraftTTL,
	})
	if err != nil {
		return fail(err)
	}

	clk := clock.New()
	diceSessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: redis,
		Clock:  clk,
		TTL:    cfg.DiceSessionTTL,
	})
	if err != nil {
		return fail(err)
	}

	catalog, err := newCatalog(cfg)
	if err != nil {
		return fail(err)
	}

	eng, err := engine.New(nil)
	if err != nil {
		return fail(err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: diceSessionRepo,
		Engine:          eng,
		IDGenerator:     idgen.NewUUID("roll"),
	})
	if err != nil {
		return fail(err)
	}

	characterService, err := character.New(&character.Config{
		CharacterRepo:        characterRepo,
		CharacterDraftRepo:   draftRepo,
		Engine:               eng,
		ExternalClient:       catalog,
		DiceService:          diceService,
		DraftIDGenerator:     idgen.NewUUID("draft"),
		CharacterIDGenerator: idgen.NewUUID("char"),
		Clock:                clk,
		DraftTTL:             cfg.DraftTTL,
	})
	if err != nil {
		return fail(err)
	}

	return &services{
		characterService: characterService,
		diceService:      diceService,
	}, cleanup, nil
}

func newCharacterRepository(
	ctx context.Context,
	cfg *config.Config,
	redis redisclient.Client,
) (characterrepo.Repository, *sql.DB, error) {
	switch cfg.CharacterStore {
	case config.StoreRedis:
		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redis})
		return repo, nil, err
	default:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{DB: db})
		if err != nil {
			_ = db.Close() // nolint:errcheck // already failing
			return nil, nil, err
		}
		return repo, db, nil
	}
}

func newCatalog(cfg *config.Config) (external.Client, error) {
	if cfg.CatalogSource == config.CatalogDND5eAPI {
		return external.New(&external.Config{
			BaseURL:     cfg.DND5eBaseURL,
			HTTPTimeout: cfg.DND5eHTTPTimeout,
			CacheTTL:    cfg.DND5eCacheTTL,
		})
	}
	return external.NewStatic()
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newGRPCServer() *grpc.Server {
	logger := grpc_logging.LoggerFunc(logFunc)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "panic in gRPC handler", "panic", p)
	return errors.ToGRPCError(errors.Internalf("internal error: %v", p))
}
