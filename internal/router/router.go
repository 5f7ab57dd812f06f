package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/config"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/handler"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/infra"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/middleware"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

// Deps carries the wired services the server entrypoint also needs
// (worker handlers, backup scheduling).
type Deps struct {
	Engine  *gin.Engine
	Backups service.BackupService
	Cierres service.CierreService
	Mailer  *infra.Mailer
}

// New wires all dependencies and returns the configured engine plus the
// services shared with the worker pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, nube *infra.CloudBackupClient) *Deps {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	cola := infra.NewColaRedis(rdb)
	pdfGen := infra.NewGeneradorCierres()

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	cierreRepo := repository.NewCierreRepository(db)
	contadorRepo := repository.NewContadorRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	fabrica := service.NewFabricaTransacciones(contadorRepo, cfg.ReciboPrefijo)
	cierreSvc := service.NewCierreService(cierreRepo, turnoRepo, pdfGen, cola)
	turnoSvc := service.NewTurnoService(turnoRepo, fabrica, cierreSvc, cfg.ClaveRetiro)
	facturaSvc := service.NewFacturaService(facturaRepo, productoRepo, servicioRepo, turnoSvc, fabrica)
	ventaSvc := service.NewVentaService(productoRepo, turnoSvc, fabrica)
	backupSvc := service.NewBackupService(db, turnoRepo, cierreRepo, facturaRepo,
		productoRepo, servicioRepo, contadorRepo, nube, cola, cfg.BackupIntervalMins)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	turnoH := handler.NewTurnoHandler(turnoSvc, cierreSvc)
	facturasH := handler.NewFacturaHandler(facturaSvc)
	ventasH := handler.NewVentaHandler(ventaSvc)
	cierresH := handler.NewCierreHandler(cierreSvc)
	productosH := handler.NewProductoHandler(productoRepo)
	serviciosH := handler.NewServicioHandler(servicioRepo)
	backupH := handler.NewBackupHandler(backupSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, nube))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	operadores := middleware.RequireRole("operador", "administrador")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		turno := v1.Group("/turno", operadores)
		{
			turno.POST("/abrir", turnoH.Abrir)
			turno.GET("", turnoH.Activo)
			turno.POST("/retiro", turnoH.Retirar)
			turno.POST("/cerrar", turnoH.Cerrar)
			turno.GET("/csv", turnoH.ExportarCSV)
		}

		facturas := v1.Group("/facturas", operadores)
		{
			facturas.POST("", facturasH.Abrir)
			facturas.GET("", facturasH.Listar)
			facturas.GET("/:id", facturasH.Obtener)
			facturas.POST("/:id/items/kiosco", facturasH.AgregarKiosco)
			facturas.POST("/:id/items/personalizado", facturasH.AgregarPersonalizado)
			facturas.POST("/:id/items/servicio", facturasH.AgregarServicio)
			facturas.PUT("/:id/items/:itemId", facturasH.EditarItem)
			facturas.DELETE("/:id/items/:itemId", facturasH.QuitarItem)
			facturas.POST("/:id/finalizar", facturasH.Finalizar)
		}

		v1.POST("/ventas", operadores, ventasH.Registrar)

		cierres := v1.Group("/cierres", operadores)
		{
			cierres.GET("", cierresH.Listar)
			cierres.GET("/csv", cierresH.ExportarCSV)
			cierres.GET("/:id", cierresH.Obtener)
			cierres.GET("/:id/pdf", cierresH.DescargarPDF)
			cierres.POST("/:id/email", cierresH.Enviar)
		}

		v1.GET("/productos", operadores, productosH.Listar)
		v1.GET("/productos/stock-bajo", operadores, productosH.StockBajo)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.POST("/:id/stock", productosH.AjustarStock)
		}

		v1.GET("/servicios", operadores, serviciosH.Listar)
		v1.POST("/servicios", admin, serviciosH.Crear)

		backup := v1.Group("/backup", admin)
		{
			backup.GET("/exportar", backupH.Exportar)
			backup.POST("/importar", backupH.Importar)
			backup.POST("/programar", backupH.Programar)
			backup.GET("/estado", backupH.Estado)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return &Deps{Engine: r, Backups: backupSvc, Cierres: cierreSvc, Mailer: mailer}
}
