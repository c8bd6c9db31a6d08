package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/cafe-pos/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		// Rotas públicas
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/logout", authController.Logout)

		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
