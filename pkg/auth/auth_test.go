package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWT(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService("segredo-de-teste", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newJWT(t)

	token, err := svc.GenerateToken(Actor{EmployeeID: 7, Username: "ana", Role: "Manager"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, Actor{EmployeeID: 7, Username: "ana", Role: "Manager"}, claims.Actor())
	assert.Equal(t, "7", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newJWT(t)

	claims := JWTClaims{
		EmployeeID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo-de-teste"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other, err := NewJWTService("outro-segredo", time.Hour)
	require.NoError(t, err)
	token, err := other.GenerateToken(Actor{EmployeeID: 1})
	require.NoError(t, err)

	_, err = newJWT(t).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newRouter(svc *JWTService, roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuthMiddleware(svc)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleAuthMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := CurrentActor(c)
		c.JSON(http.StatusOK, actor)
	})
	r.GET("/me", handlers...)
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newJWT(t)
	token, err := svc.GenerateToken(Actor{EmployeeID: 3, Username: "caixa", Role: "Cashier"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		status int
	}{
		{"bearer", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: CookieName, Value: token}) }, http.StatusOK},
		{"sem token", func(req *http.Request) {}, http.StatusUnauthorized},
		{"formato inválido", func(req *http.Request) { req.Header.Set("Authorization", token) }, http.StatusUnauthorized},
		{"token inválido", func(req *http.Request) { req.Header.Set("Authorization", "Bearer abc.def.ghi") }, http.StatusUnauthorized},
	}

	router := newRouter(svc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"employee_id":3`)
			}
		})
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	svc := newJWT(t)
	router := newRouter(svc, "Admin", "Manager")

	for role, want := range map[string]int{
		"Manager": http.StatusOK,
		"admin":   http.StatusOK,
		"Cashier": http.StatusForbidden,
	} {
		token, err := svc.GenerateToken(Actor{EmployeeID: 1, Role: role})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, role)
	}
}
