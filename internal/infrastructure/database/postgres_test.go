package database

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	cfg := &PostgresConfig{Host: "db", Port: 5432, User: "pos", Password: "s3cr@t", Database: "cafe", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:s3cr%40t@db:5432/cafe?sslmode=disable", cfg.ConnectionString())
	assert.Equal(t, "pgx5://pos:s3cr%40t@db:5432/cafe?sslmode=disable", cfg.MigrationURL())

	cfg.URL = "postgresql://u:p@host/db"
	assert.Equal(t, "postgresql://u:p@host/db", cfg.ConnectionString())
	assert.Equal(t, "pgx5://u:p@host/db", cfg.MigrationURL())
}

func TestParseIsolation(t *testing.T) {
	assert.Equal(t, pgx.Serializable, ParseIsolation("SERIALIZABLE"))
	assert.Equal(t, pgx.RepeatableRead, ParseIsolation("repeatable_read"))
	assert.Equal(t, pgx.ReadCommitted, ParseIsolation(""))
	assert.Equal(t, pgx.ReadCommitted, ParseIsolation("whatever"))
}

func TestWithTransaction(t *testing.T) {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	t.Run("commit", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(opts)
		mock.ExpectExec("UPDATE member").WithArgs(int64(7), int64(1)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err = WithTransaction(context.Background(), mock, opts, logger.NewNop(), func(tx pgx.Tx) error {
			_, err := tx.Exec(context.Background(), "UPDATE member SET points = points + $1 WHERE member_id = $2", int64(7), int64(1))
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback em erro", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(opts)
		mock.ExpectRollback()

		boom := errors.New("boom")
		err = WithTransaction(context.Background(), mock, opts, logger.NewNop(), func(tx pgx.Tx) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback em panic", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(opts)
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "falha", func() {
			_ = WithTransaction(context.Background(), mock, opts, logger.NewNop(), func(tx pgx.Tx) error {
				panic("falha")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro ao iniciar", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBeginTx(opts).WillReturnError(errors.New("conn refused"))

		called := false
		err = WithTransaction(context.Background(), mock, opts, logger.NewNop(), func(tx pgx.Tx) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})
}
