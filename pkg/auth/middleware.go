package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/dto"
)

// CookieName é o cookie onde o login grava o token
const CookieName = "accessToken"

const actorKey = "actor"

// JWTAuthMiddleware cria um middleware para autenticação JWT.
// O token vem do cabeçalho Authorization (Bearer) ou do cookie accessToken.
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				err.Error(),
			))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set(actorKey, claims.Actor())
		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware para verificação do cargo do funcionário
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		for _, r := range roles {
			if strings.EqualFold(actor.Role, r) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"Acesso negado",
			"Você não tem permissão para acessar este recurso",
		))
	}
}

// CurrentActor obtém o funcionário autenticado do contexto
func CurrentActor(c *gin.Context) (Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}

// SetActor grava o funcionário no contexto
func SetActor(c *gin.Context, a Actor) {
	c.Set(actorKey, a)
}

func extractToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", errors.New("use o formato 'Bearer <token>'")
		}
		return parts[1], nil
	}

	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	return "", errors.New("token não informado")
}
