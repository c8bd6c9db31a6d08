package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/cafe-pos/docs"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/controller"
	"github.com/hugohenrick/cafe-pos/internal/adapter/api/route"
	"github.com/hugohenrick/cafe-pos/internal/adapter/repository"
	"github.com/hugohenrick/cafe-pos/internal/application/receiving"
	"github.com/hugohenrick/cafe-pos/internal/application/settlement"
	"github.com/hugohenrick/cafe-pos/internal/config"
	"github.com/hugohenrick/cafe-pos/internal/infrastructure/database"
	"github.com/hugohenrick/cafe-pos/internal/infrastructure/observability"
	"github.com/hugohenrick/cafe-pos/pkg/auth"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg            *config.Config
	log            logger.Logger
	router         *gin.Engine
	db             *pgxpool.Pool
	shutdownTracer func(context.Context) error

	jwtService       *auth.JWTService
	authController   *controller.AuthController
	saleController   *controller.SaleController
	orderController  *controller.PurchaseOrderController
	healthController *controller.HealthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	shutdownTracer, err := observability.SetupTracing(ctx, observability.Config{
		Endpoint:       cfg.OtelEndpoint,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: version,
		Insecure:       true,
	})
	if err != nil {
		return nil, err
	}

	// Configurar banco de dados
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		_ = shutdownTracer(ctx)
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)
	if err != nil {
		db.Close()
		_ = shutdownTracer(ctx)
		return nil, err
	}

	// Criar repositórios e serviços
	uow := repository.NewUnitOfWork(db, cfg.Database.TxIsolation, log)
	settlementService := settlement.NewService(uow, repository.NewSaleRepository(db), log)
	receivingService := receiving.NewService(uow, repository.NewPurchaseOrderRepository(db), log)

	cookie := controller.CookieConfig{Secure: cfg.CookieSecure, SameSite: cfg.CookieSameSite}

	app := &App{
		cfg:              cfg,
		log:              log,
		db:               db,
		shutdownTracer:   shutdownTracer,
		jwtService:       jwtService,
		authController:   controller.NewAuthController(repository.NewEmployeeRepository(db), jwtService, cookie, log),
		saleController:   controller.NewSaleController(settlementService),
		orderController:  controller.NewPurchaseOrderController(receivingService),
		healthController: controller.NewHealthController(db, version),
	}

	app.setupRouter()
	return app, nil
}

func (a *App) setupRouter() {
	gin.SetMode(a.cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware(a.log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		ExposeHeaders:    []string{logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	docs.SwaggerInfo.BasePath = a.cfg.BasePath
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(a.cfg.BasePath)
	route.SetupHealthRoutes(api, a.healthController)
	route.SetupAuthRoutes(api, a.authController, a.jwtService)
	route.SetupSaleRoutes(api, a.saleController, a.jwtService)
	route.SetupPurchaseOrderRoutes(api, a.orderController, a.jwtService)

	a.router = router
}

// Start inicia o servidor HTTP e bloqueia até o contexto ser cancelado
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.HTTPPort,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("servidor iniciado", "port", a.cfg.HTTPPort, "base_path", a.cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro ao encerrar servidor: %w", err)
	}
	return nil
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdownTracer(ctx); err != nil {
		a.log.Error("erro ao encerrar tracer", "error", err)
	}
}
