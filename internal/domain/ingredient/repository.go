package ingredient

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository define as operações sobre o estoque de ingredientes
type Repository interface {
	// IncrementStock soma a quantidade ao estoque com um único incremento atômico.
	// Retorna false quando o ingrediente não existe.
	IncrementStock(ctx context.Context, ingredientID string, quantity decimal.Decimal) (bool, error)
}
