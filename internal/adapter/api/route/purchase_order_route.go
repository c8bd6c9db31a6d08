package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/cafe-pos/internal/domain/employee"
	"github.com/hugohenrick/cafe-pos/pkg/auth"
)

// SetupPurchaseOrderRoutes configura as rotas para o módulo de pedidos de compra.
// Todas as rotas exigem cargo de gerência.
func SetupPurchaseOrderRoutes(router *gin.RouterGroup, orderController *controller.PurchaseOrderController, jwtService *auth.JWTService) {
	orderRouter := router.Group("/orders")
	orderRouter.Use(
		auth.JWTAuthMiddleware(jwtService),
		auth.RoleAuthMiddleware(string(employee.RoleAdmin), string(employee.RoleManager)),
	)
	{
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("", orderController.List)
		orderRouter.GET("/:id", orderController.GetByID)
		orderRouter.PATCH("/:id/receive", orderController.Receive)
	}
}
