package main

import (
	"flag"
	"log"
	"os"

	"github.com/hugohenrick/cafe-pos/internal/config"
	"github.com/hugohenrick/cafe-pos/internal/infrastructure/database"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	command := flag.String("cmd", "up", "comando de migração: up, down ou version")
	flag.Parse()

	cfg := config.Load()
	appLogger := logger.NewLogger(cfg.Log)
	defer appLogger.Sync()

	migrator, err := database.NewMigrator(&cfg.Database)
	if err != nil {
		appLogger.Error("erro ao preparar migrações", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			appLogger.Error("erro ao fechar migrator", "error", err)
		}
	}()

	if err := run(migrator, *command, appLogger); err != nil {
		appLogger.Error("erro ao executar migrações", "cmd", *command, "error", err)
		os.Exit(1)
	}
}

func run(m *database.Migrator, command string, log logger.Logger) error {
	switch command {
	case "up":
		if err := m.Up(); err != nil {
			return err
		}
	case "down":
		if err := m.Down(); err != nil {
			return err
		}
	case "version":
	default:
		log.Warn("comando desconhecido, nada a fazer", "cmd", command)
		return nil
	}

	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Info("migrações concluídas", "cmd", command, "version", v, "dirty", dirty)
	return nil
}
