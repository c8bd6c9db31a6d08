package purchase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoLines         = errors.New("o pedido precisa de ao menos um item")
	ErrInvalidLine     = errors.New("ingredient_id e quantity são obrigatórios")
	ErrAlreadyReceived = errors.New("pedido já recebido")
)

const (
	// QuantityScale é o número de casas decimais de quantidades (DECIMAL(15,3))
	QuantityScale int32 = 3
	// CostScale é o número de casas decimais do custo unitário (DECIMAL(12,2))
	CostScale int32 = 2
)

// Status representa a situação do pedido de compra.
// O conjunto é aberto: valores diferentes dos abaixo são gravados como vieram.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusReceived Status = "Received"
)

// IsReceived compara sem diferenciar maiúsculas de minúsculas
func (s Status) IsReceived() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(StatusReceived))
}

// Line representa um item do pedido de compra
type Line struct {
	ID             int64            `json:"order_item_id,omitempty"`
	IngredientID   string           `json:"ingredient_id"`
	IngredientName string           `json:"ingredient_name,omitempty"`
	Unit           string           `json:"unit,omitempty"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitCost       *decimal.Decimal `json:"unit_cost"`
}

// Validate rejeita itens sem ingrediente, com quantidade não positiva
// ou com mais casas decimais do que o estoque guarda
func (l Line) Validate() error {
	if strings.TrimSpace(l.IngredientID) == "" || !l.Quantity.IsPositive() {
		return ErrInvalidLine
	}
	if !l.Quantity.Equal(l.Quantity.Round(QuantityScale)) {
		return fmt.Errorf("%w: quantity aceita no máximo %d casas decimais", ErrInvalidLine, QuantityScale)
	}
	return nil
}

// Order representa o cabeçalho do pedido de compra
type Order struct {
	ID           int64     `json:"order_id"`
	Status       Status    `json:"order_status"`
	SupplierID   *int64    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Lines        []Line    `json:"items"`
}

// NewOrder cria um pedido; status vazio vira Pending e o custo unitário
// é arredondado para CostScale casas
func NewOrder(supplierID *int64, status string, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	st := Status(strings.TrimSpace(status))
	if st == "" {
		st = StatusPending
	}

	normalized := make([]Line, len(lines))
	for i, l := range lines {
		if l.UnitCost != nil {
			cost := l.UnitCost.Round(CostScale)
			l.UnitCost = &cost
		}
		normalized[i] = l
	}

	return &Order{
		Status:     st,
		SupplierID: supplierID,
		Lines:      normalized,
	}, nil
}

// StockIncrements soma as quantidades por ingrediente, na ordem em que aparecem
func StockIncrements(lines []Line) []Line {
	index := make(map[string]int, len(lines))
	merged := make([]Line, 0, len(lines))
	for _, l := range lines {
		if i, ok := index[l.IngredientID]; ok {
			merged[i].Quantity = merged[i].Quantity.Add(l.Quantity)
			continue
		}
		index[l.IngredientID] = len(merged)
		merged = append(merged, Line{IngredientID: l.IngredientID, Quantity: l.Quantity})
	}
	return merged
}
