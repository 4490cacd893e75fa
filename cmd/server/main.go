package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cinerate/internal/auth"
	"cinerate/internal/config"
	apphttp "cinerate/internal/http"
	"cinerate/internal/realtime"
	"cinerate/internal/repository"
	"cinerate/internal/repository/memory"
	"cinerate/internal/repository/sqlite"
	"cinerate/internal/service"
	"cinerate/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo, movieRepo, reviewRepo, closeStore, err := buildRepositories(ctx, cfg)
	if err != nil {
		logger.Fatalf("setup store: %v", err)
	}
	defer closeStore()

	if cfg.Seed.Enabled {
		if err := seedCatalog(ctx, movieRepo); err != nil {
			logger.Fatalf("seed movie catalog: %v", err)
		}
	}

	userService := service.NewUserService(userRepo)
	aggregator := service.NewAggregator(movieRepo, reviewRepo)
	hub := realtime.NewHub(logger)
	reviewService := service.NewReviewService(reviewRepo, movieRepo, userRepo, aggregator, hub)
	sessions := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	storageSvc, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		userService,
		reviewService,
		movieRepo,
		sessions,
		hub,
		storageSvc,
		logger,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildRepositories(ctx context.Context, cfg config.Config) (
	repository.UserRepository,
	repository.MovieRepository,
	repository.ReviewRepository,
	func(),
	error,
) {
	switch cfg.Database.Driver {
	case "memory", "":
		return memory.NewUserRepository(), memory.NewMovieRepository(), memory.NewReviewRepository(), func() {}, nil

	case "sqlite":
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("open database: %w", err)
		}

		userRepo := sqlite.NewUserRepository(db)
		movieRepo := sqlite.NewMovieRepository(db)
		reviewRepo := sqlite.NewReviewRepository(db)
		if err := userRepo.Init(ctx); err != nil {
			db.Close()
			return nil, nil, nil, nil, err
		}
		if err := movieRepo.Init(ctx); err != nil {
			db.Close()
			return nil, nil, nil, nil, err
		}
		if err := reviewRepo.Init(ctx); err != nil {
			db.Close()
			return nil, nil, nil, nil, err
		}
		return userRepo, movieRepo, reviewRepo, func() { _ = db.Close() }, nil

	default:
		return nil, nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// seedCatalog inserts the startup catalog into an empty movie store.
func seedCatalog(ctx context.Context, movies repository.MovieRepository) error {
	count, err := movies.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, movie := range repository.SeedCatalog() {
		m := movie
		if _, err := movies.Create(ctx, &m); err != nil {
			return err
		}
	}
	return nil
}

// buildStorage sets up the profile image store. With no bucket configured
// uploads stay disabled and the rest of the service runs normally.
func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, error) {
	if cfg.Storage.Bucket == "" {
		logger.Info("no storage bucket configured; profile uploads disabled")
		return nil, nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client, cfg.Storage.Bucket, cfg.Storage.KeyPrefix, cfg.Storage.Region, cfg.Storage.Endpoint), nil
}
