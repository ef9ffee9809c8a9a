package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/warroom/war-server/internal/auth"
	"github.com/warroom/war-server/internal/cache"
	"github.com/warroom/war-server/internal/database"
	"github.com/warroom/war-server/internal/handlers"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx := context.Background()

	store, err := database.Connect(ctx)
	if err != nil {
		logger.Fatalf("connect to database: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatalf("ensure schema: %v", err)
	}
	if err := store.SeedDeck(ctx); err != nil {
		logger.Fatalf("seed deck: %v", err)
	}

	// the feed is an optimization; the app runs without redis
	feed, err := cache.Connect(ctx)
	if err != nil {
		logger.Warnf("redis unavailable, recent-round feed disabled: %v", err)
		feed = nil
	} else {
		defer feed.Close()
	}

	// session keys: load from files when configured, else generate per run
	privPath, pubPath := os.Getenv("JWT_PRIVATE_KEY_FILE"), os.Getenv("JWT_PUBLIC_KEY_FILE")
	if privPath != "" && pubPath != "" {
		err = auth.InitFromPath(privPath, pubPath)
	} else {
		err = auth.Init()
	}
	if err != nil {
		logger.Fatalf("init session keys: %v", err)
	}

	srv := handlers.NewServer(store, feed, logger)

	server := &http.Server{
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	port := os.Getenv("WAR_SERVICE_PORT")
	if port == "" {
		port = "8080"
	}
	l, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		logger.Fatalf("failed to listen: %v", err)
	}

	logger.Infof("listening on %s", l.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(l)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		logger.Errorf("failed to serve: %v", err)
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
