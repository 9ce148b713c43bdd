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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/audit"
	"github.com/BruksfildServices01/beauty-site/internal/beauty"
	"github.com/BruksfildServices01/beauty-site/internal/cache"
	"github.com/BruksfildServices01/beauty-site/internal/config"
	dbpkg "github.com/BruksfildServices01/beauty-site/internal/db"
	"github.com/BruksfildServices01/beauty-site/internal/logging"
	"github.com/BruksfildServices01/beauty-site/internal/notify"
	"github.com/BruksfildServices01/beauty-site/internal/routes"
	"github.com/BruksfildServices01/beauty-site/internal/scheduler"
	"github.com/BruksfildServices01/beauty-site/internal/timezone"
	ucCatalog "github.com/BruksfildServices01/beauty-site/internal/usecase/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile, err := config.LoadProfile(cfg.ProfileFile)
	if err != nil {
		logger.Fatal("failed to load profile", zap.Error(err))
	}

	clock := timezone.NewClock(cfg.Timezone)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	backend := newBackend(cfg, logger)
	catalogCache := newCatalogCache(ctx, cfg, logger)

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	sinks := []audit.Sink{audit.NewZapSink(logger)}
	if db != nil {
		sinks = append(sinks, audit.New(db))
	}
	auditDispatcher := audit.NewDispatcher(logger, sinks...)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.TwilioEnabled() {
		notifier = notify.NewWhatsAppNotifier(notify.TwilioConfig{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			From:       cfg.TwilioWhatsAppFrom,
			To:         cfg.TwilioNotifyTo,
		}, logger)
	}

	listServices := ucCatalog.NewListServices(backend, catalogCache, logger)

	// ======================================================
	// ⏰ REFRESH DO CATÁLOGO
	// ======================================================
	sched := scheduler.New(clock.Location(), logger)
	if cfg.CatalogRefresh != "" {
		refresh := scheduler.RefresherFunc(func(ctx context.Context) (int, error) {
			services, err := listServices.Refresh(ctx)
			return len(services), err
		})
		if err := sched.AddCatalogRefresh(cfg.CatalogRefresh, refresh); err != nil {
			logger.Fatal("invalid catalog refresh schedule", zap.String("spec", cfg.CatalogRefresh), zap.Error(err))
		}
	}
	sched.Start()
	logger.Info("scheduler started", zap.Int("jobs", sched.Entries()))

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(logger))

	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}
	r.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:   cfg,
		Profile:  profile,
		Backend:  backend,
		Services: listServices,
		DB:       db,
		Audit:    auditDispatcher,
		Notifier: notifier,
		Clock:    clock,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.Bool("static_mode", cfg.StaticMode()),
			zap.String("version", cfg.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	sched.Stop(shutdownCtx)
	auditDispatcher.Close()
}

func newBackend(cfg *config.Config, logger *zap.Logger) beauty.Backend {
	if !cfg.StaticMode() {
		client := beauty.NewClient(cfg.APIURL)
		logger.Info("catalog from backend api", zap.String("base_url", client.BaseURL()))
		return client
	}

	var loader beauty.Loader = beauty.EmbeddedLoader
	s3cfg := beauty.S3Config{
		Bucket:    cfg.StaticCatalogBucket,
		Key:       cfg.StaticCatalogKey,
		Region:    cfg.StaticCatalogRegion,
		Endpoint:  cfg.StaticCatalogEndpoint,
		AccessKey: cfg.AWSAccessKeyID,
		SecretKey: cfg.AWSSecretAccessKey,
	}
	if s3cfg.Enabled() {
		logger.Info("static catalog from s3", zap.String("bucket", s3cfg.Bucket), zap.String("key", s3cfg.Key))
		loader = beauty.S3Loader(beauty.NewS3Client(s3cfg), s3cfg.Bucket, s3cfg.Key)
	}
	return beauty.NewStatic(loader)
}

func newCatalogCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) cache.Catalog {
	if cfg.RedisURL == "" {
		return cache.NopCatalog{}
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		return cache.NopCatalog{}
	}
	return cache.NewRedisCatalog(client, cfg.CatalogCacheTTL)
}
