package dto

import (
	"time"

	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa um item do carrinho
type SaleItemRequest struct {
	MenuID    int64            `json:"menu_id" binding:"required"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"number"`
}

// CreateSaleRequest representa o fechamento de uma venda no caixa
type CreateSaleRequest struct {
	Items          []SaleItemRequest `json:"items"`
	PaymentMethod  string            `json:"payment_method" example:"Cash"`
	DiscountAmount *decimal.Decimal  `json:"discount_amount,omitempty" swaggertype:"number"`
	MemberID       *int64            `json:"member_id,omitempty"`
	PromotionID    *int64            `json:"promotion_id,omitempty"`
}

// ToCartItems converte os itens da requisição para o domínio
func (r CreateSaleRequest) ToCartItems() []sale.CartItem {
	items := make([]sale.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, sale.CartItem{
			MenuID:    it.MenuID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return items
}

// SaleItemResponse representa um item gravado da venda
type SaleItemResponse struct {
	SaleItemID int64           `json:"sale_item_id"`
	MenuID     int64           `json:"menu_id"`
	MenuName   string          `json:"menu_name,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string" example:"45.00"`
}

// SaleResponse representa a resposta com os dados de uma venda
type SaleResponse struct {
	SaleID           int64              `json:"sale_id"`
	CreatedAt        time.Time          `json:"created_at"`
	Subtotal         decimal.Decimal    `json:"subtotal" swaggertype:"string" example:"150.00"`
	DiscountAmount   decimal.Decimal    `json:"discount_amount" swaggertype:"string" example:"10.00"`
	NetTotal         decimal.Decimal    `json:"net_total" swaggertype:"string" example:"140.00"`
	PaymentMethod    string             `json:"payment_method"`
	EmployeeID       int64              `json:"employee_id"`
	EmployeeUsername string             `json:"employee_username,omitempty"`
	MemberID         *int64             `json:"member_id"`
	MemberName       string             `json:"member_name,omitempty"`
	PromotionID      *int64             `json:"promotion_id"`
	PromotionName    string             `json:"promotion_name,omitempty"`
	PointsEarned     int64              `json:"points_earned"`
	Items            []SaleItemResponse `json:"items"`
}

// SaleListResponse representa a resposta de listagem de vendas
type SaleListResponse struct {
	Sales    []SaleResponse `json:"sales"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToSaleResponse converte um modelo de domínio em uma resposta DTO
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		items = append(items, SaleItemResponse{
			SaleItemID: l.ID,
			MenuID:     l.MenuID,
			MenuName:   l.MenuName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
		})
	}

	return SaleResponse{
		SaleID:           s.ID,
		CreatedAt:        s.CreatedAt,
		Subtotal:         s.Subtotal,
		DiscountAmount:   s.DiscountAmount,
		NetTotal:         s.NetTotal,
		PaymentMethod:    s.PaymentMethod,
		EmployeeID:       s.EmployeeID,
		EmployeeUsername: s.EmployeeUsername,
		MemberID:         s.MemberID,
		MemberName:       s.MemberName,
		PromotionID:      s.PromotionID,
		PromotionName:    s.PromotionName,
		PointsEarned:     s.PointsEarned,
		Items:            items,
	}
}

// ToSaleListResponse converte uma lista de vendas para o formato de resposta
func ToSaleListResponse(sales []*sale.Sale, p Pagination) SaleListResponse {
	response := SaleListResponse{
		Sales:    make([]SaleResponse, len(sales)),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	for i, s := range sales {
		response.Sales[i] = ToSaleResponse(s)
	}
	return response
}
