package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// MenuRepository implementa menu.Repository
type MenuRepository struct {
	db DBTX
}

// NewMenuRepository cria uma nova instância de MenuRepository
func NewMenuRepository(db DBTX) *MenuRepository {
	return &MenuRepository{db: db}
}

// CurrentPrices implementa menu.Repository.CurrentPrices
func (r *MenuRepository) CurrentPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	prices := make(map[int64]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	rows, err := r.db.Query(ctx, `SELECT menu_id, price FROM menu WHERE menu_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar preços do cardápio: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("erro ao ler preço do cardápio: %w", err)
		}
		prices[id] = price
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar preços do cardápio: %w", err)
	}

	return prices, nil
}
