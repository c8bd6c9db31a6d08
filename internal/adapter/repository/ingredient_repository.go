package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// IngredientRepository implementa ingredient.Repository
type IngredientRepository struct {
	db DBTX
}

// NewIngredientRepository cria uma nova instância de IngredientRepository
func NewIngredientRepository(db DBTX) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// IncrementStock implementa ingredient.Repository.IncrementStock
func (r *IngredientRepository) IncrementStock(ctx context.Context, ingredientID string, quantity decimal.Decimal) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE ingredient SET quantity_on_hand = COALESCE(quantity_on_hand, 0) + $1 WHERE ingredient_id = $2`,
		quantity, ingredientID)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar estoque do ingrediente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
