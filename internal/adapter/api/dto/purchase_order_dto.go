package dto

import (
	"time"

	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
	"github.com/shopspring/decimal"
)

// OrderItemRequest representa um item do pedido de compra
type OrderItemRequest struct {
	IngredientID FlexibleID       `json:"ingredient_id" swaggertype:"string" example:"A"`
	Quantity     decimal.Decimal  `json:"quantity" swaggertype:"number" example:"5"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty" swaggertype:"number"`
}

// CreateOrderRequest representa o cadastro de um pedido de compra
type CreateOrderRequest struct {
	SupplierID  *int64             `json:"supplier_id,omitempty"`
	OrderStatus string             `json:"order_status" example:"Pending"`
	Items       []OrderItemRequest `json:"items"`
}

// ToLines converte os itens da requisição para o domínio
func (r CreateOrderRequest) ToLines() []purchase.Line {
	lines := make([]purchase.Line, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, purchase.Line{
			IngredientID: string(it.IngredientID),
			Quantity:     it.Quantity,
			UnitCost:     it.UnitCost,
		})
	}
	return lines
}

// OrderItemResponse representa um item gravado do pedido
type OrderItemResponse struct {
	OrderItemID    int64            `json:"order_item_id"`
	IngredientID   string           `json:"ingredient_id"`
	IngredientName string           `json:"ingredient_name,omitempty"`
	Unit           string           `json:"unit,omitempty"`
	Quantity       decimal.Decimal  `json:"quantity" swaggertype:"string"`
	UnitCost       *decimal.Decimal `json:"unit_cost" swaggertype:"string"`
}

// OrderResponse representa a resposta com os dados de um pedido de compra
type OrderResponse struct {
	OrderID      int64               `json:"order_id"`
	CreatedAt    time.Time           `json:"created_at"`
	OrderStatus  string              `json:"order_status"`
	SupplierID   *int64              `json:"supplier_id"`
	SupplierName string              `json:"supplier_name,omitempty"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderListResponse representa a resposta de listagem de pedidos
type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ToOrderResponse converte um modelo de domínio em uma resposta DTO
func ToOrderResponse(o *purchase.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, OrderItemResponse{
			OrderItemID:    l.ID,
			IngredientID:   l.IngredientID,
			IngredientName: l.IngredientName,
			Unit:           l.Unit,
			Quantity:       l.Quantity,
			UnitCost:       l.UnitCost,
		})
	}

	return OrderResponse{
		OrderID:      o.ID,
		CreatedAt:    o.CreatedAt,
		OrderStatus:  string(o.Status),
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Items:        items,
	}
}

// ToOrderListResponse converte uma lista de pedidos para o formato de resposta
func ToOrderListResponse(orders []*purchase.Order, p Pagination) OrderListResponse {
	response := OrderListResponse{
		Orders:   make([]OrderResponse, len(orders)),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	for i, o := range orders {
		response.Orders[i] = ToOrderResponse(o)
	}
	return response
}
