package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig contém as configurações para conexão com o PostgreSQL
type PostgresConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
	TxIsolation     pgx.TxIsoLevel
}

// ConnectionString retorna a URL de conexão, priorizando DATABASE_URL
func (c *PostgresConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Database,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// MigrationURL retorna a URL no esquema esperado pelo driver pgx5 do golang-migrate
func (c *PostgresConfig) MigrationURL() string {
	conn := c.ConnectionString()
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(conn, prefix) {
			return "pgx5://" + strings.TrimPrefix(conn, prefix)
		}
	}
	return conn
}

// ParseIsolation converte o nome do nível de isolamento; vazio ou desconhecido vira read committed
func ParseIsolation(name string) pgx.TxIsoLevel {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", " ")) {
	case "serializable":
		return pgx.Serializable
	case "repeatable read":
		return pgx.RepeatableRead
	default:
		return pgx.ReadCommitted
	}
}

// NewPostgresDB cria um pool de conexões e verifica a conexão
func NewPostgresDB(ctx context.Context, cfg *PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	if cfg.MaxConnections > 0 {
		poolConfig.MaxConns = cfg.MaxConnections
	}
	if cfg.MinConnections > 0 {
		poolConfig.MinConns = cfg.MinConnections
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao verificar conexão com o banco de dados: %w", err)
	}

	return pool, nil
}

// TxBeginner é satisfeito por *pgxpool.Pool e pelo pgxmock
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// WithTransaction executa fn dentro de uma transação.
// Confirma quando fn retorna nil; desfaz em erro ou panic, e o panic é propagado.
func WithTransaction(ctx context.Context, db TxBeginner, opts pgx.TxOptions, log logger.Logger, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, tx, log)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		rollback(ctx, tx, log)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, log logger.Logger) {
	// contexto cancelado não pode impedir o rollback
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := tx.Rollback(rbCtx); err != nil && log != nil {
		log.Error("erro ao fazer rollback", "error", err)
	}
}
