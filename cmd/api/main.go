package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"projectTracker/internal/app"
	"projectTracker/internal/config"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		log.Fatalf("загрузка конфигурации: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg)
	if err := application.Init(ctx); err != nil {
		log.Fatalf("инициализация приложения: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("работа приложения: %v", err)
	}
}
