package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/brewhub/coffeeshop-orders/internal/cart"
	"github.com/brewhub/coffeeshop-orders/internal/config"
	"github.com/brewhub/coffeeshop-orders/internal/db"
	"github.com/brewhub/coffeeshop-orders/internal/events"
	httpserver "github.com/brewhub/coffeeshop-orders/internal/http"
	"github.com/brewhub/coffeeshop-orders/internal/order"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := log.New(os.Stdout, "[coffeeshop-orders] ", log.LstdFlags|log.Lshortfile)

	// DB
	database := db.MustOpen(cfg.DatabaseDSN)
	defer database.Close()

	if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
		logger.Fatalf("migrations: %v", err)
	}

	orderRepo := order.NewRepository(database)
	cartStore := cart.NewStore()

	// RabbitMQ
	rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
	defer rabbitConn.Close()

	publisher, err := events.NewPublisher(rabbitConn)
	if err != nil {
		logger.Fatalf("create publisher: %v", err)
	}
	defer publisher.Close()

	// HTTP
	mux := httpserver.NewRouter(orderRepo, cartStore, publisher, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Printf("coffeeshop-orders listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
