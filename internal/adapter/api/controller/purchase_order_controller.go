package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/cafe-pos/internal/application/receiving"
	"github.com/hugohenrick/cafe-pos/internal/domain/purchase"
)

// PurchaseOrderService define as operações de pedidos de compra usadas pelo controller
type PurchaseOrderService interface {
	CreateOrder(ctx context.Context, in receiving.CreateOrderInput) (*purchase.Order, error)
	Receive(ctx context.Context, orderID int64) error
	Get(ctx context.Context, orderID int64) (*purchase.Order, error)
	List(ctx context.Context, limit, offset int) ([]*purchase.Order, error)
}

// PurchaseOrderController gerencia as requisições relacionadas a pedidos de compra
type PurchaseOrderController struct {
	service PurchaseOrderService
}

// NewPurchaseOrderController cria uma nova instância de PurchaseOrderController
func NewPurchaseOrderController(service PurchaseOrderService) *PurchaseOrderController {
	return &PurchaseOrderController{service: service}
}

// Create registra um pedido de compra
// @Summary Registra um pedido de compra
// @Description Grava o pedido e seus itens; pedidos com status Received dão entrada no estoque na mesma transação
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Pedido"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /orders [post]
func (c *PurchaseOrderController) Create(ctx *gin.Context) {
	var request dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	o, err := c.service.CreateOrder(ctx.Request.Context(), receiving.CreateOrderInput{
		SupplierID: request.SupplierID,
		Status:     request.OrderStatus,
		Lines:      request.ToLines(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// List lista os pedidos de compra
// @Summary Lista pedidos de compra
// @Tags orders
// @Produce json
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /orders [get]
func (c *PurchaseOrderController) List(ctx *gin.Context) {
	p := pagination(ctx)

	orders, err := c.service.List(ctx.Request.Context(), p.Limit(), p.Offset())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, p))
}

// GetByID busca um pedido de compra
// @Summary Busca um pedido de compra
// @Tags orders
// @Produce json
// @Param id path int true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /orders/{id} [get]
func (c *PurchaseOrderController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	o, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Receive marca o pedido como recebido
// @Summary Recebe um pedido de compra
// @Description Muda o status para Received e dá entrada das quantidades no estoque.
// @Description Se a releitura do pedido falhar, a resposta traz só order_id e order_status, com items vazio.
// @Tags orders
// @Produce json
// @Param id path int true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /orders/{id}/receive [patch]
func (c *PurchaseOrderController) Receive(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Receive(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	o, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		// o recebimento já foi confirmado; responde sem os itens e registra a falha da releitura
		_ = ctx.Error(err)
		ctx.JSON(http.StatusOK, dto.OrderResponse{
			OrderID:     id,
			OrderStatus: string(purchase.StatusReceived),
			Items:       []dto.OrderItemResponse{},
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}
