package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/cafe-pos/internal/application/settlement"
	"github.com/hugohenrick/cafe-pos/internal/domain/sale"
	"github.com/hugohenrick/cafe-pos/pkg/auth"
)

// SaleService define as operações de venda usadas pelo controller
type SaleService interface {
	Settle(ctx context.Context, in settlement.SettleInput) (*sale.Sale, error)
	Cancel(ctx context.Context, saleID int64) error
	Get(ctx context.Context, saleID int64) (*sale.Sale, error)
	List(ctx context.Context, limit, offset int) ([]*sale.Sale, error)
}

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	service SaleService
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(service SaleService) *SaleController {
	return &SaleController{service: service}
}

// Create fecha uma venda
// @Summary Registra uma venda
// @Description Precifica o carrinho, grava a venda e credita pontos ao membro em uma única transação
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Carrinho"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	actor, ok := auth.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	var request dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	s, err := c.service.Settle(ctx.Request.Context(), settlement.SettleInput{
		Items:          request.ToCartItems(),
		PaymentMethod:  request.PaymentMethod,
		DiscountAmount: request.DiscountAmount,
		MemberID:       request.MemberID,
		PromotionID:    request.PromotionID,
		ActorID:        actor.EmployeeID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// List lista as vendas
// @Summary Lista vendas
// @Description Lista as vendas mais recentes com seus itens
// @Tags sales
// @Produce json
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	p := pagination(ctx)

	sales, err := c.service.List(ctx.Request.Context(), p.Limit(), p.Offset())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, p))
}

// GetByID busca uma venda
// @Summary Busca uma venda
// @Tags sales
// @Produce json
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /sales/{id} [get]
func (c *SaleController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	s, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Delete cancela uma venda
// @Summary Cancela uma venda
// @Description Exclui a venda e seus itens. Pontos já creditados não são estornados.
// @Tags sales
// @Produce json
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Cancel(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Venda cancelada com sucesso", nil))
}
