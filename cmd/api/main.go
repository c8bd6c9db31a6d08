package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/cafe-pos/internal/config"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/joho/godotenv"
)

// version é sobrescrita no build com -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Log)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	// Iniciar o servidor
	if err := app.Start(ctx); err != nil {
		appLogger.Error("servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
