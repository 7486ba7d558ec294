package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learning-buddy-be/internal/bootstrap"
	"learning-buddy-be/internal/config"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/internal/server"
	"learning-buddy-be/internal/tracer"
	"learning-buddy-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Logger & Tracer
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	shutdownTracer := tracer.InitTracer(cfg.Tracing.Enabled, sysLogger)

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := bootstrap.NewContainer(ctx, gormDB, cfg, sysLogger)
	if err != nil {
		sysLogger.Error("MAIN", "Failed to bootstrap container", map[string]interface{}{"error": err.Error()})
		log.Fatalf("bootstrap: %v", err)
	}

	// 5. Start Background Services
	go func() {
		sysLogger.Info("MAIN", "Starting progress consumer", nil)
		if err := container.ConsumerService.Consume(ctx); err != nil {
			sysLogger.Error("MAIN", "Progress consumer stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		if err := srv.Run(); err != nil {
			sysLogger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 7. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sysLogger.Info("MAIN", "Shutting down", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sysLogger.Warn("MAIN", "Server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	cancel()
	container.Close()

	if err := shutdownTracer(shutdownCtx); err != nil {
		sysLogger.Warn("MAIN", "Tracer shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}
