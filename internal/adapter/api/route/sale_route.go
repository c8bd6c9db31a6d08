package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/cafe-pos/internal/domain/employee"
	"github.com/hugohenrick/cafe-pos/pkg/auth"
)

// SetupSaleRoutes configura as rotas para o módulo de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController, jwtService *auth.JWTService) {
	saleRouter := router.Group("/sales")
	saleRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		saleRouter.POST("", saleController.Create)
		saleRouter.GET("", saleController.List)
		saleRouter.GET("/:id", saleController.GetByID)

		// Cancelamento restrito à gerência
		saleRouter.DELETE("/:id",
			auth.RoleAuthMiddleware(string(employee.RoleAdmin), string(employee.RoleManager)),
			saleController.Delete)
	}
}
