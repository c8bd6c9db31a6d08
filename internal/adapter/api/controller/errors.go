package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
)

// respondError converte erros da aplicação no status HTTP correspondente.
// Detalhes de falhas de banco não são expostos ao cliente.
func respondError(ctx *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)

	message := "Erro interno do servidor"
	if appErr, ok := apperror.As(err); ok && kind != apperror.KindPersistence {
		message = appErr.Message
	}

	_ = ctx.Error(err)
	ctx.JSON(status, dto.NewErrorResponse(status, message, ""))
}

func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", "o id deve ser um número inteiro positivo"))
		return 0, false
	}
	return id, true
}

func pagination(ctx *gin.Context) dto.Pagination {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	return dto.GetPagination(page, pageSize)
}
