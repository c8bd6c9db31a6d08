package repository

import (
	"context"

	"github.com/hugohenrick/cafe-pos/internal/domain/ingredient"
	"github.com/hugohenrick/cafe-pos/internal/domain/member"
	"github.com/hugohenrick/cafe-pos/internal/domain/menu"
	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
	"github.com/hugohenrick/cafe-pos/internal/domain/store"
	"github.com/hugohenrick/cafe-pos/internal/infrastructure/database"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// UnitOfWork implementa store.UnitOfWork sobre uma transação do PostgreSQL
type UnitOfWork struct {
	db   database.TxBeginner
	opts pgx.TxOptions
	log  logger.Logger
}

// NewUnitOfWork cria uma nova instância de UnitOfWork
func NewUnitOfWork(db database.TxBeginner, isolation pgx.TxIsoLevel, log logger.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:   db,
		opts: pgx.TxOptions{IsoLevel: isolation},
		log:  log,
	}
}

// Do implementa store.UnitOfWork.Do.
// Erros do domínio passam intactos; falhas do banco viram apperror de persistência.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error {
	err := database.WithTransaction(ctx, u.db, u.opts, u.log, func(tx pgx.Tx) error {
		return fn(ctx, txRepositories{tx: tx})
	})
	if err == nil {
		return nil
	}

	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Persistence("erro ao gravar no banco de dados", err)
}

type txRepositories struct {
	tx pgx.Tx
}

func (t txRepositories) Sales() sale.Repository { return NewSaleRepository(t.tx) }

func (t txRepositories) Menu() menu.Repository { return NewMenuRepository(t.tx) }

func (t txRepositories) Members() member.Repository { return NewMemberRepository(t.tx) }

func (t txRepositories) PurchaseOrders() purchase.Repository {
	return NewPurchaseOrderRepository(t.tx)
}

func (t txRepositories) Ingredients() ingredient.Repository {
	return NewIngredientRepository(t.tx)
}
