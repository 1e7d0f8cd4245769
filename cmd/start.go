package cmd

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"enum-registry/core/loader"
	"enum-registry/core/logger"
	"enum-registry/core/middleware/auth"
	"enum-registry/core/middleware/rayid"
	"enum-registry/core/reconcile"
	"enum-registry/feature/enums"
	"enum-registry/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "enum-registry/docs/swagger"
)

// @title Enum Registry API
// @version 1.0
// @description API serving localized enum metadata and lookup table synchronization.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the enum registry server",
	Long: `Starts the HTTP server and initializes all enabled features.
When a database is configured the lookup table is synchronized on startup
and, if sync.interval_seconds is set, periodically afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx, false)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := rt.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		enumsFeature := enums.NewFeature(rt.registry, rt.engine, rt.cfg.Server, rt.cfg.Sync, logg)
		mgr.Register(enumsFeature)
		mgr.Register(integrity.NewFeature(rt.registry, rt.db, rt.cfg.Sync.Schema, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		if rt.engine != nil {
			go runBackgroundSync(ctx, logg, enumsFeature.Service(), rt.cfg.Sync)
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// runBackgroundSync runs the startup pass and then one pass per interval
// until ctx ends. Failed units are retried on the next pass.
func runBackgroundSync(ctx context.Context, logg *zap.Logger, svc *enums.Service, cfg reconcile.Config) {
	pass := func(reason string) {
		report, err := svc.Sync(ctx, enums.SyncRequest{})
		var partial *reconcile.PartialFailure
		switch {
		case errors.As(err, &partial) && report != nil:
			logg.Warn("Lookup sync finished with failures",
				zap.String("reason", reason),
				zap.String("run_id", report.RunID),
				zap.Error(err))
		case err != nil:
			logg.Error("Lookup sync failed", zap.String("reason", reason), zap.Error(err))
		}
	}

	if cfg.OnStartup {
		pass("startup")
	}

	interval := cfg.Interval()
	if interval == 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pass("interval")
		}
	}
}
