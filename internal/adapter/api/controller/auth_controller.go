package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/dto"
	"github.com/hugohenrick/cafe-pos/internal/domain/employee"
	"github.com/hugohenrick/cafe-pos/pkg/apperror"
	"github.com/hugohenrick/cafe-pos/pkg/auth"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// defaultRole é atribuído a funcionários sem cargo cadastrado
const defaultRole = "Staff"

// EmployeeFinder busca funcionários pelo login
type EmployeeFinder interface {
	FindByUsername(ctx context.Context, username string) (*employee.Employee, error)
}

// CookieConfig define os atributos do cookie de sessão
type CookieConfig struct {
	Secure   bool
	SameSite string
}

func (c CookieConfig) sameSite() http.SameSite {
	switch c.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	employees EmployeeFinder
	jwt       *auth.JWTService
	cookie    CookieConfig
	log       logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(employees EmployeeFinder, jwt *auth.JWTService, cookie CookieConfig, log logger.Logger) *AuthController {
	return &AuthController{
		employees: employees,
		jwt:       jwt,
		cookie:    cookie,
		log:       log,
	}
}

// Login autentica um funcionário e retorna um token JWT
// @Summary Autentica um funcionário
// @Description Verifica as credenciais, grava o token no cookie accessToken e o retorna no corpo
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "username e password são obrigatórios", err.Error()))
		return
	}

	e, err := c.employees.FindByUsername(ctx.Request.Context(), request.Username)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
			return
		}
		c.log.Error("erro ao buscar funcionário", "error", err)
		respondError(ctx, err)
		return
	}

	if !e.IsActive() {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Funcionário desligado", ""))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(request.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
		return
	}

	role := string(e.Role)
	if role == "" {
		role = defaultRole
	}
	actor := auth.Actor{EmployeeID: e.ID, Username: e.Username, Role: role}

	token, err := c.jwt.GenerateToken(actor)
	if err != nil {
		c.log.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", ""))
		return
	}

	ctx.SetSameSite(c.cookie.sameSite())
	ctx.SetCookie(auth.CookieName, token, int(c.jwt.Expiration().Seconds()), "/", "", c.cookie.Secure, true)

	c.log.Info("login realizado", "employee_id", e.ID)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message:     "Login realizado com sucesso",
		User:        toActorResponse(actor),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(c.jwt.Expiration()),
	})
}

// Logout remove o cookie de sessão
// @Summary Encerra a sessão
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(c.cookie.sameSite())
	ctx.SetCookie(auth.CookieName, "", -1, "/", "", c.cookie.Secure, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logout realizado com sucesso", nil))
}

// Me retorna o funcionário autenticado
// @Summary Dados do funcionário logado
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security Bearer
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	actor, ok := auth.CurrentActor(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.MeResponse{User: toActorResponse(actor)})
}

func toActorResponse(a auth.Actor) dto.ActorResponse {
	return dto.ActorResponse{EmployeeID: a.EmployeeID, Username: a.Username, Role: a.Role}
}
