package router

import (
	"time"

	"garcolderp/internal/catalog"
	"garcolderp/internal/config"
	"garcolderp/internal/handler"
	"garcolderp/internal/middleware"
	"garcolderp/internal/repository"
	"garcolderp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, cat *catalog.Catalogo) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	bancoRepo := repository.NewBancoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	transaccionRepo := repository.NewTransaccionRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	prestamoRepo := repository.NewPrestamoRepository(db)
	inversionRepo := repository.NewInversionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	bancoSvc := service.NewBancoService(bancoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	productoSvc := service.NewProductoService(productoRepo)
	transaccionSvc := service.NewTransaccionService(transaccionRepo, bancoSvc, clienteSvc, cat)
	ventaSvc := service.NewVentaService(ventaRepo, productoSvc, bancoSvc, clienteSvc, transaccionSvc, cat)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, productoSvc, bancoSvc, transaccionSvc, cat)
	gastoSvc := service.NewGastoService(gastoRepo, bancoSvc, transaccionSvc, cat)
	prestamoSvc := service.NewPrestamoService(prestamoRepo, bancoSvc, transaccionSvc, cat)
	inversionSvc := service.NewInversionService(inversionRepo, bancoSvc, transaccionSvc, cat)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	bancosH := handler.NewBancosHandler(bancoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	transaccionesH := handler.NewTransaccionesHandler(transaccionSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	prestamosH := handler.NewPrestamosHandler(prestamoSvc)
	inversionesH := handler.NewInversionesHandler(inversionSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(rdb), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/precio/:referencia", consultaH.GetPrecioPorReferencia)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole("admin", "operador")
	adminOnly := middleware.RequireRole("admin")

	v1 := r.Group("/v1", jwtMW)
	{
		bancos := v1.Group("/bancos")
		{
			bancos.GET("", anyRole, bancosH.Listar)
			bancos.GET("/:id", anyRole, bancosH.Obtener)
			bancos.POST("", adminOnly, bancosH.Crear)
			bancos.PUT("/:id", adminOnly, bancosH.Actualizar)
			bancos.DELETE("/:id", adminOnly, bancosH.Eliminar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", anyRole, clientesH.Listar)
			clientes.GET("/:id", anyRole, clientesH.Obtener)
			clientes.POST("", anyRole, clientesH.Crear)
			clientes.PUT("/:id", anyRole, clientesH.Actualizar)
			clientes.DELETE("/:id", adminOnly, clientesH.Eliminar)
		}

		proveedores := v1.Group("/proveedores")
		{
			proveedores.GET("", anyRole, proveedoresH.Listar)
			proveedores.GET("/:id", anyRole, proveedoresH.Obtener)
			proveedores.POST("", anyRole, proveedoresH.Crear)
			proveedores.PUT("/:id", anyRole, proveedoresH.Actualizar)
			proveedores.DELETE("/:id", adminOnly, proveedoresH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.GET("", anyRole, productosH.Listar)
			productos.GET("/:id", anyRole, productosH.Obtener)
			productos.POST("", adminOnly, productosH.Crear)
			productos.PUT("/:id", adminOnly, productosH.Actualizar)
			productos.DELETE("/:id", adminOnly, productosH.Desactivar)
			productos.PATCH("/:id/reactivar", adminOnly, productosH.Reactivar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", anyRole, ventasH.Registrar)
			ventas.GET("", anyRole, ventasH.Listar)
			ventas.GET("/:id", anyRole, ventasH.Obtener)
			ventas.DELETE("/:id", adminOnly, ventasH.Eliminar)
			ventas.GET("/:id/ganancia", anyRole, ventasH.ObtenerGanancia)
			ventas.POST("/:id/abonos", anyRole, ventasH.CrearAbono)
			ventas.GET("/:id/abonos", anyRole, ventasH.ListarAbonos)
			ventas.DELETE("/:id/abonos/:abono_id", adminOnly, ventasH.EliminarAbono)
		}

		compras := v1.Group("/compras")
		{
			compras.POST("", anyRole, comprasH.Registrar)
			compras.GET("", anyRole, comprasH.Listar)
			compras.GET("/:id", anyRole, comprasH.Obtener)
			compras.DELETE("/:id", adminOnly, comprasH.Eliminar)
			compras.POST("/:id/abonos", anyRole, comprasH.CrearAbono)
			compras.GET("/:id/abonos", anyRole, comprasH.ListarAbonos)
			compras.DELETE("/:id/abonos/:abono_id", adminOnly, comprasH.EliminarAbono)
		}

		transacciones := v1.Group("/transacciones")
		{
			transacciones.GET("", anyRole, transaccionesH.Listar)
			transacciones.POST("", anyRole, transaccionesH.CrearManual)
			transacciones.DELETE("/:id", adminOnly, transaccionesH.Eliminar)
		}

		gastos := v1.Group("/gastos")
		{
			gastos.POST("", anyRole, gastosH.Crear)
			gastos.GET("", anyRole, gastosH.Listar)
			gastos.GET("/:id", anyRole, gastosH.Obtener)
			gastos.DELETE("/:id", adminOnly, gastosH.Eliminar)
		}
		categorias := v1.Group("/categorias-gasto")
		{
			categorias.GET("", anyRole, gastosH.ListarCategorias)
			categorias.POST("", adminOnly, gastosH.CrearCategoria)
			categorias.DELETE("/:id", adminOnly, gastosH.EliminarCategoria)
		}

		prestamos := v1.Group("/prestamos")
		{
			prestamos.POST("", anyRole, prestamosH.Crear)
			prestamos.GET("", anyRole, prestamosH.Listar)
			prestamos.GET("/:id", anyRole, prestamosH.Obtener)
			prestamos.POST("/:id/pagos", anyRole, prestamosH.AplicarPago)
			prestamos.DELETE("/:id", adminOnly, prestamosH.Eliminar)
		}

		inversiones := v1.Group("/inversiones")
		{
			inversiones.POST("", anyRole, inversionesH.Crear)
			inversiones.GET("", anyRole, inversionesH.Listar)
			inversiones.GET("/:id", anyRole, inversionesH.Obtener)
			inversiones.POST("/:id/saldo", anyRole, inversionesH.AgregarSaldo)
			inversiones.POST("/:id/retiros", anyRole, inversionesH.Retirar)
			inversiones.DELETE("/:id", adminOnly, inversionesH.Eliminar)
		}

		usuarios := v1.Group("/usuarios", adminOnly)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	return r
}
