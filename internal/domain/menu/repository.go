package menu

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository define a consulta de preços do cardápio
type Repository interface {
	// CurrentPrices retorna o preço atual de cada id encontrado.
	// Ids inexistentes ficam fora do mapa.
	CurrentPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error)
}
