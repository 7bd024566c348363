// Command main is the entry point for the North Pole feed server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"northpole/internal/config"
	"northpole/internal/middleware"
	"northpole/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "North Pole Feed API",
	})
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// The scheduler runs for the life of the process; cancelling schedCtx
	// stops the heartbeat and waits out in-flight actor invocations.
	schedCtx, stopSched := context.WithCancel(context.Background())
	if cfg.SchedulerDisabled {
		middleware.Logger.Warn("scheduler disabled by configuration")
	} else {
		go srv.Scheduler().Run(schedCtx)
		if cfg.KickstartOnBoot {
			go func() {
				time.Sleep(time.Second)
				srv.Scheduler().Kickstart(schedCtx)
			}()
		}
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		stopSched()
		srv.Scheduler().Wait()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server resource shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
