package store

import (
	"context"

	"github.com/hugohenrick/cafe-pos/internal/domain/ingredient"
	"github.com/hugohenrick/cafe-pos/internal/domain/member"
	"github.com/hugohenrick/cafe-pos/internal/domain/menu"
	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
)

// Tx expõe os repositórios ligados a uma mesma transação
type Tx interface {
	Sales() sale.Repository
	Menu() menu.Repository
	Members() member.Repository
	PurchaseOrders() purchase.Repository
	Ingredients() ingredient.Repository
}

// UnitOfWork executa fn dentro de uma transação.
// Retorno nil confirma; qualquer erro ou panic desfaz tudo.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage aplica o tamanho padrão e o limite máximo de página
func NormalizePage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = DefaultPageSize
	} else if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
