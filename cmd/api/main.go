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

	"github.com/postcraft/postcraft-gateway/config"
	"github.com/postcraft/postcraft-gateway/internal/bootstrap"
	"github.com/postcraft/postcraft-gateway/internal/storage/docstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	posts := bootstrap.NewPostService(ctx, cfg.LLM)

	store, err := bootstrap.OpenStoreFromConfig(ctx, cfg.Firebase)
	if err != nil {
		// project endpoints report 503 until /set_firebase_json succeeds
		log.Printf("[error] %v", err)
		store = nil
	}
	holder := docstore.NewHolder(cfg.Firebase.Collection, store)
	defer func() {
		if err := holder.Close(); err != nil {
			log.Printf("[warn] closing store: %v", err)
		}
	}()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		Posts:       posts,
		Store:       holder,
		Firebase:    cfg.Firebase,
		OpenStore:   bootstrap.OpenStore,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[warn] shutdown: %v", err)
	}
}
