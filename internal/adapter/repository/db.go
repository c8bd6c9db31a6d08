package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX é satisfeito por *pgxpool.Pool, pgx.Tx e pelo pgxmock,
// permitindo que o mesmo repositório rode dentro ou fora de uma transação
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// writeError trata falhas de escrita: referência a registro inexistente ou
// valor barrado por CHECK vira erro de validação, o resto segue como falha de persistência
func writeError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return apperror.Validation(fmt.Sprintf("%s: registro relacionado não encontrado", msg))
		case pgerrcode.CheckViolation:
			return apperror.Validation(fmt.Sprintf("%s: valor fora do intervalo permitido", msg))
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
