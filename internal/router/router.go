package router

import (
	"time"

	"inventia/internal/config"
	"inventia/internal/handler"
	"inventia/internal/infra"
	"inventia/internal/middleware"
	"inventia/internal/repository"
	"inventia/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker, alertas service.AlertaDispatcher) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	compraRepo := repository.NewCompraRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	accessTTL := time.Duration(cfg.JWTExpirationHours) * time.Hour
	refreshTTL := time.Duration(cfg.JWTRefreshHours) * time.Hour
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, accessTTL, refreshTTL)

	inventarioSvc := service.NewInventarioService(productoRepo, ventaRepo, compraRepo)
	productoSvc := service.NewProductoService(productoRepo, proveedorRepo, ventaRepo, compraRepo, inventarioSvc)
	clienteSvc := service.NewClienteService(clienteRepo, ventaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, productoRepo, inventarioSvc, alertas)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, productoRepo)
	dashboardSvc := service.NewDashboardService(ventaRepo, compraRepo, productoRepo, clienteRepo, proveedorRepo, usuarioRepo, inventarioSvc, rdb)
	reporteSvc := service.NewReporteService(ventaRepo, compraRepo, clienteRepo, proveedorRepo, inventarioSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		v1.POST("/usuarios", usuariosH.Crear)
		v1.GET("/usuarios", usuariosH.Listar)

		v1.POST("/productos", productosH.Crear)
		v1.GET("/productos", productosH.Listar)
		v1.GET("/productos/:id", productosH.Obtener)
		v1.PUT("/productos/:id", productosH.Actualizar)
		v1.DELETE("/productos/:id", productosH.Eliminar)
		v1.GET("/productos/:id/stock", inventarioH.Stock)

		v1.POST("/clientes", clientesH.Crear)
		v1.GET("/clientes", clientesH.Listar)
		v1.GET("/clientes/:id", clientesH.Obtener)
		v1.PUT("/clientes/:id", clientesH.Actualizar)
		v1.DELETE("/clientes/:id", clientesH.Eliminar)

		v1.POST("/proveedores", proveedoresH.Crear)
		v1.GET("/proveedores", proveedoresH.Listar)
		v1.GET("/proveedores/:id", proveedoresH.Obtener)
		v1.PUT("/proveedores/:id", proveedoresH.Actualizar)
		v1.DELETE("/proveedores/:id", proveedoresH.Eliminar)

		v1.POST("/ventas", ventasH.Registrar)
		v1.GET("/ventas", ventasH.Listar)
		v1.GET("/ventas/:id", ventasH.Obtener)
		v1.DELETE("/ventas/:id", ventasH.Eliminar)

		v1.POST("/compras", comprasH.Registrar)
		v1.GET("/compras", comprasH.Listar)
		v1.GET("/compras/:id", comprasH.Obtener)
		v1.DELETE("/compras/:id", comprasH.Eliminar)

		v1.GET("/inventario", inventarioH.Listar)
		v1.GET("/inventario/bajo-stock", inventarioH.BajoStock)

		v1.GET("/dashboard", dashboardH.Resumen)

		v1.GET("/reportes/ventas.pdf", reportesH.VentasPDF)
		v1.GET("/reportes/compras.pdf", reportesH.ComprasPDF)
		v1.GET("/reportes/clientes.pdf", reportesH.ClientesPDF)
		v1.GET("/reportes/proveedores.pdf", reportesH.ProveedoresPDF)
		v1.GET("/reportes/productos.pdf", reportesH.ProductosPDF)
		v1.GET("/reportes/inventario.xlsx", reportesH.InventarioExcel)
	}

	// Swagger UI — dev only
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
