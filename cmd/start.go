package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spec-sync/core/config"
	"spec-sync/core/database"
	"spec-sync/core/loader"
	"spec-sync/core/logger"
	"spec-sync/core/metrics"
	"spec-sync/core/middleware/auth"
	"spec-sync/core/middleware/rayid"
	"spec-sync/core/storage"

	"spec-sync/feature/contract"
	"spec-sync/feature/endpoint"
	"spec-sync/feature/project"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "spec-sync/docs/swagger"
)

// @title Spec Sync API
// @version 1.0
// @description API for reconciling frontend and backend endpoint contracts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the spec-sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		if cfg.Database.AutoMigrate {
			if err := database.Migrate(db); err != nil {
				logg.Fatal("Migration failed", zap.Error(err))
			}
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		var recorder *metrics.Recorder
		if cfg.Metrics.Enabled {
			recorder = metrics.NewRecorder()
		}

		app := fiber.New(fiber.Config{
			AppName:               "spec-sync",
			DisableStartupMessage: true,
		})

		// 5. Register Features
		mgr := loader.NewManager()
		mgr.Register(project.NewFeature(db, logg))
		mgr.Register(endpoint.NewFeature(db, recorder, logg))
		mgr.Register(contract.NewFeature(db, store, cfg.Storage, logg))

		// Middleware Registration
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Server.IsDevelopment()}))

		// RayID must come before logging to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request completed", fields...)
			return nil
		})

		app.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.Server.AllowOrigins,
			AllowHeaders:  "Origin, Content-Type, Accept, " + auth.HeaderName + ", " + rayid.HeaderName,
			ExposeHeaders: rayid.HeaderName,
		}))

		// Public routes
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/swagger/*", swagger.HandlerDefault)
		if recorder != nil {
			app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(recorder.Handler()))
		}

		// Everything registered below requires the API key
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app.Group("/api"))
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
