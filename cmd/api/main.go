package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/biased-framework/go-service/config"
	"github.com/biased-framework/go-service/internal/banner"
	"github.com/biased-framework/go-service/internal/bootstrap"
	"github.com/biased-framework/go-service/internal/project"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[error] config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	meta := project.New(cfg.Project.Name)
	banner.Print(os.Stdout, meta, cfg.Server.Port)
	log.Printf("[info] version=%s env=%s", cfg.App.Version, cfg.App.Environment)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Project:        meta,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	srv := bootstrap.NewServer(cfg.Server, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Serve(ctx, srv, cfg.Server.ShutdownTimeout); err != nil {
		log.Fatalf("[error] %v", err)
	}
	log.Println("[info] server stopped")
}
