package router

import (
	"time"

	"tramitesbackend/internal/config"
	"tramitesbackend/internal/handler"
	"tramitesbackend/internal/infra"
	"tramitesbackend/internal/middleware"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/presence"
	"tramitesbackend/internal/repository"
	"tramitesbackend/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Conjuntos de roles del esquema de permisos. nil significa que basta un JWT
// válido, sin restricción de rol.
var (
	gestores          = []string{model.RolAdmin, model.RolSuperAdmin}
	gestoresYContador = []string{model.RolAdmin, model.RolSuperAdmin, model.RolContador}
	gestoresYVendedor = []string{model.RolAdmin, model.RolSuperAdmin, model.RolVendedor}
	personalClientes  = []string{model.RolAdmin, model.RolSuperAdmin, model.RolAuxiliar, model.RolVendedor}
	soloAdmin         = []string{model.RolAdmin}
)

// operacionesCrud agrupa los handlers del juego estándar de rutas que expone
// cada entidad con borrado suave.
type operacionesCrud struct {
	Listar             gin.HandlerFunc
	Obtener            gin.HandlerFunc
	Crear              gin.HandlerFunc
	Actualizar         gin.HandlerFunc
	Eliminar           gin.HandlerFunc
	Restaurar          gin.HandlerFunc
	EliminarDefinitivo gin.HandlerFunc
	Historial          gin.HandlerFunc
}

// politicaCrud declara qué roles pueden tocar cada grupo de operaciones.
// Lectura cubre list/ y :id/; Escritura cubre create/ y :id/update/; Gestión
// cubre delete, restore, hard-delete e history.
type politicaCrud struct {
	Lectura   []string
	Escritura []string
	Gestion   []string
}

func conRoles(roles []string, h gin.HandlerFunc) []gin.HandlerFunc {
	if len(roles) == 0 {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{middleware.RequireRole(roles...), h}
}

func montarCrud(g *gin.RouterGroup, ops operacionesCrud, pol politicaCrud) {
	g.GET("/list/", conRoles(pol.Lectura, ops.Listar)...)
	g.POST("/create/", conRoles(pol.Escritura, ops.Crear)...)
	g.GET("/:id/", conRoles(pol.Lectura, ops.Obtener)...)
	g.PUT("/:id/update/", conRoles(pol.Escritura, ops.Actualizar)...)
	g.DELETE("/:id/delete/", conRoles(pol.Gestion, ops.Eliminar)...)
	g.POST("/:id/restore/", conRoles(pol.Gestion, ops.Restaurar)...)
	g.DELETE("/:id/hard-delete/", conRoles(pol.Gestion, ops.EliminarDefinitivo)...)
	g.GET("/:id/history/", conRoles(pol.Gestion, ops.Historial)...)
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	pdfCotizaciones := infra.NewPDFCotizaciones()
	presencia := presence.NewStore(rdb, time.Duration(cfg.PresenceTTLSeconds)*time.Second)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	historialRepo := repository.NewHistorialRepository(db)

	clienteRepo := repository.NewCrudRepository[model.Cliente](db, repository.Descriptor{
		Tabla:            "clientes",
		ColumnasBusqueda: []string{"clientes.nombre", "clientes.telefono", "clientes.direccion"},
		Preloads:         []string{"Precios"},
	})
	precioClienteRepo := repository.NewCrudRepository[model.PrecioCliente](db, repository.Descriptor{
		Tabla:            "precios_cliente",
		ColumnasBusqueda: []string{"precios_cliente.descripcion"},
	})
	etiquetaRepo := repository.NewCrudRepository[model.Etiqueta](db, repository.Descriptor{
		Tabla:            "etiquetas",
		ColumnasBusqueda: []string{"etiquetas.nombre"},
	})
	proveedorRepo := repository.NewCrudRepository[model.Proveedor](db, repository.Descriptor{
		Tabla:            "proveedores",
		ColumnasBusqueda: []string{"proveedores.nombre"},
		Preloads:         []string{"Etiqueta"},
	})
	tarjetaRepo := repository.NewCrudRepository[model.Tarjeta](db, repository.Descriptor{
		Tabla:            "tarjetas",
		ColumnasBusqueda: []string{"tarjetas.numero", "tarjetas.titular", "tarjetas.descripcion"},
	})
	cotizadorRepo := repository.NewCrudRepository[model.Cotizador](db, repository.Descriptor{
		Tabla:            "cotizadores",
		ColumnasBusqueda: []string{"cotizadores.placa", "cotizadores.nombre_completo", "cotizadores.numero_documento", "cotizadores.chasis"},
		Preloads:         []string{"Cliente", "Etiqueta", "PrecioCliente"},
	})
	cotizadorPagoRepo := repository.NewCrudRepository[model.CotizadorPago](db, repository.Descriptor{
		Tabla:      "cotizador_pagos",
		CampoFecha: "fecha_pago",
	})
	cargoRepo := repository.NewCrudRepository[model.CargoNoRegistrado](db, repository.Descriptor{
		Tabla:            "cargos_no_registrados",
		ColumnasBusqueda: []string{"clientes.nombre", "tarjetas.numero", "tarjetas.titular", "cargos_no_registrados.observacion"},
		Joins: []string{
			"LEFT JOIN clientes ON clientes.id = cargos_no_registrados.cliente_id",
			"LEFT JOIN tarjetas ON tarjetas.id = cargos_no_registrados.tarjeta_id",
		},
		CampoFecha: "fecha",
		Preloads:   []string{"Cliente", "Tarjeta"},
	})
	devolucionRepo := repository.NewCrudRepository[model.Devolucion](db, repository.Descriptor{
		Tabla:            "devoluciones",
		ColumnasBusqueda: []string{"clientes.nombre", "tarjetas.numero", "tarjetas.titular", "devoluciones.observacion"},
		Joins: []string{
			"LEFT JOIN clientes ON clientes.id = devoluciones.cliente_id",
			"LEFT JOIN tarjetas ON tarjetas.id = devoluciones.tarjeta_id",
		},
		CampoFecha: "fecha",
		Preloads:   []string{"Cliente", "Tarjeta"},
	})
	recepcionRepo := repository.NewCrudRepository[model.RecepcionPago](db, repository.Descriptor{
		Tabla:            "recepciones_pago",
		ColumnasBusqueda: []string{"clientes.nombre", "tarjetas.numero", "tarjetas.titular", "recepciones_pago.observacion"},
		Joins: []string{
			"LEFT JOIN clientes ON clientes.id = recepciones_pago.cliente_id",
			"LEFT JOIN tarjetas ON tarjetas.id = recepciones_pago.tarjeta_id",
		},
		CampoFecha: "fecha",
		Preloads:   []string{"Cliente", "Tarjeta"},
	})
	ajusteRepo := repository.NewCrudRepository[model.AjusteDeSaldo](db, repository.Descriptor{
		Tabla:            "ajustes_de_saldo",
		ColumnasBusqueda: []string{"clientes.nombre", "ajustes_de_saldo.observacion"},
		Joins:            []string{"LEFT JOIN clientes ON clientes.id = ajustes_de_saldo.cliente_id"},
		CampoFecha:       "fecha",
		Preloads:         []string{"Cliente"},
	})
	gastoRepo := repository.NewCrudRepository[model.Gasto](db, repository.Descriptor{
		Tabla:            "gastos",
		ColumnasBusqueda: []string{"gastos.nombre", "gastos.descripcion"},
	})
	gastoRelacionRepo := repository.NewCrudRepository[model.GastoRelacion](db, repository.Descriptor{
		Tabla:            "gasto_relaciones",
		ColumnasBusqueda: []string{"gastos.nombre", "tarjetas.numero", "tarjetas.titular", "gasto_relaciones.observacion"},
		Joins: []string{
			"LEFT JOIN gastos ON gastos.id = gasto_relaciones.gasto_id",
			"LEFT JOIN tarjetas ON tarjetas.id = gasto_relaciones.tarjeta_id",
		},
		CampoFecha: "fecha",
		Preloads:   []string{"Gasto", "Tarjeta"},
	})
	utilidadRepo := repository.NewCrudRepository[model.UtilidadOcasional](db, repository.Descriptor{
		Tabla:            "utilidad_ocasional",
		ColumnasBusqueda: []string{"tarjetas.numero", "tarjetas.titular", "utilidad_ocasional.observacion"},
		Joins:            []string{"LEFT JOIN tarjetas ON tarjetas.id = utilidad_ocasional.tarjeta_id"},
		CampoFecha:       "fecha",
		Preloads:         []string{"Tarjeta"},
	})

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	clienteSvc := service.NewClienteService(clienteRepo, precioClienteRepo, historialRepo)
	etiquetaSvc := service.NewEtiquetaService(etiquetaRepo, historialRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo, etiquetaRepo, historialRepo)
	tarjetaSvc := service.NewTarjetaService(tarjetaRepo, historialRepo)
	cotizadorSvc := service.NewCotizadorService(cotizadorRepo, cotizadorPagoRepo, clienteRepo, etiquetaRepo, precioClienteRepo, historialRepo, pdfCotizaciones, mailer)
	cargoSvc := service.NewMovimientoService[model.CargoNoRegistrado](cargoRepo, clienteRepo, tarjetaRepo, historialRepo)
	devolucionSvc := service.NewMovimientoService[model.Devolucion](devolucionRepo, clienteRepo, tarjetaRepo, historialRepo)
	recepcionSvc := service.NewMovimientoService[model.RecepcionPago](recepcionRepo, clienteRepo, tarjetaRepo, historialRepo)
	ajusteSvc := service.NewAjusteService(ajusteRepo, clienteRepo, historialRepo)
	gastoSvc := service.NewGastoService(gastoRepo, gastoRelacionRepo, tarjetaRepo, historialRepo)
	utilidadSvc := service.NewUtilidadService(utilidadRepo, tarjetaRepo, historialRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc, presencia)
	clientesH := handler.NewClientesHandler(clienteSvc)
	etiquetasH := handler.NewEtiquetasHandler(etiquetaSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	tarjetasH := handler.NewTarjetasHandler(tarjetaSvc)
	cotizadorH := handler.NewCotizadorHandler(cotizadorSvc)
	cargosH := handler.NewMovimientosHandler(cargoSvc)
	devolucionesH := handler.NewMovimientosHandler(devolucionSvc)
	recepcionesH := handler.NewMovimientosHandler(recepcionSvc)
	ajustesH := handler.NewAjustesHandler(ajusteSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	utilidadesH := handler.NewUtilidadesHandler(utilidadSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	r.POST("/api/token/", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/api/token/refresh/", authH.Refresh)

	// Protected routes
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))

	user := api.Group("/user")
	{
		user.GET("/me/", usuariosH.Me)
		user.POST("/heartbeat/", usuariosH.Heartbeat)
		user.GET("/online/", usuariosH.Online)
		user.GET("/list/", conRoles(soloAdmin, usuariosH.Listar)...)
		user.POST("/create/", conRoles(soloAdmin, usuariosH.Crear)...)
		user.GET("/:id/", conRoles(soloAdmin, usuariosH.Obtener)...)
		user.PUT("/:id/update/", conRoles(soloAdmin, usuariosH.Actualizar)...)
		user.DELETE("/:id/delete/", conRoles(soloAdmin, usuariosH.Eliminar)...)
		user.GET("/:id/toggle-status/", conRoles(soloAdmin, usuariosH.CambiarEstado)...)
	}

	clientes := api.Group("/clientes")
	montarCrud(clientes, operacionesCrud{
		Listar:             clientesH.Listar,
		Obtener:            clientesH.Obtener,
		Crear:              clientesH.Crear,
		Actualizar:         clientesH.Actualizar,
		Eliminar:           clientesH.Eliminar,
		Restaurar:          clientesH.Restaurar,
		EliminarDefinitivo: clientesH.EliminarDefinitivo,
		Historial:          clientesH.Historial,
	}, politicaCrud{Lectura: personalClientes, Escritura: gestores, Gestion: gestores})
	{
		clientes.GET("/:id/precios/", conRoles(personalClientes, clientesH.ListarPrecios)...)
		clientes.POST("/:id/precios/add/", conRoles(gestores, clientesH.CrearPrecio)...)
		clientes.PUT("/:id/precios/:precio_id/update/", conRoles(gestores, clientesH.ActualizarPrecio)...)
		clientes.DELETE("/:id/precios/:precio_id/delete/", conRoles(gestores, clientesH.EliminarPrecio)...)
	}

	montarCrud(api.Group("/etiquetas"), operacionesCrud{
		Listar:             etiquetasH.Listar,
		Obtener:            etiquetasH.Obtener,
		Crear:              etiquetasH.Crear,
		Actualizar:         etiquetasH.Actualizar,
		Eliminar:           etiquetasH.Eliminar,
		Restaurar:          etiquetasH.Restaurar,
		EliminarDefinitivo: etiquetasH.EliminarDefinitivo,
		Historial:          etiquetasH.Historial,
	}, politicaCrud{Escritura: gestores, Gestion: gestores})

	montarCrud(api.Group("/proveedores"), operacionesCrud{
		Listar:             proveedoresH.Listar,
		Obtener:            proveedoresH.Obtener,
		Crear:              proveedoresH.Crear,
		Actualizar:         proveedoresH.Actualizar,
		Eliminar:           proveedoresH.Eliminar,
		Restaurar:          proveedoresH.Restaurar,
		EliminarDefinitivo: proveedoresH.EliminarDefinitivo,
		Historial:          proveedoresH.Historial,
	}, politicaCrud{Escritura: gestores, Gestion: gestores})

	montarCrud(api.Group("/tarjetas"), operacionesCrud{
		Listar:             tarjetasH.Listar,
		Obtener:            tarjetasH.Obtener,
		Crear:              tarjetasH.Crear,
		Actualizar:         tarjetasH.Actualizar,
		Eliminar:           tarjetasH.Eliminar,
		Restaurar:          tarjetasH.Restaurar,
		EliminarDefinitivo: tarjetasH.EliminarDefinitivo,
		Historial:          tarjetasH.Historial,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})

	cotizador := api.Group("/cotizador")
	montarCrud(cotizador, operacionesCrud{
		Listar:             cotizadorH.Listar,
		Obtener:            cotizadorH.Obtener,
		Crear:              cotizadorH.Crear,
		Actualizar:         cotizadorH.Actualizar,
		Eliminar:           cotizadorH.Eliminar,
		Restaurar:          cotizadorH.Restaurar,
		EliminarDefinitivo: cotizadorH.EliminarDefinitivo,
		Historial:          cotizadorH.Historial,
	}, politicaCrud{Escritura: gestoresYVendedor, Gestion: gestores})
	{
		cotizador.POST("/:id/cambiar-estado/", conRoles(gestoresYVendedor, cotizadorH.CambiarEstado)...)
		cotizador.POST("/:id/revertir-estado/", conRoles(gestores, cotizadorH.RevertirEstado)...)
		cotizador.GET("/:id/pagos/", cotizadorH.ListarPagos)
		cotizador.POST("/:id/pagos/create/", conRoles(gestoresYContador, cotizadorH.CrearPago)...)
		cotizador.PUT("/pagos/:pago_id/update/", conRoles(gestoresYContador, cotizadorH.ActualizarPago)...)
		cotizador.DELETE("/pagos/:pago_id/delete/", conRoles(gestores, cotizadorH.EliminarPago)...)
		cotizador.GET("/:id/pdf/", cotizadorH.PDF)
		cotizador.POST("/:id/enviar/", conRoles(gestoresYVendedor, cotizadorH.Enviar)...)
	}

	montarCrud(api.Group("/recepcion_pago"), operacionesCrud{
		Listar:             recepcionesH.Listar,
		Obtener:            recepcionesH.Obtener,
		Crear:              recepcionesH.Crear,
		Actualizar:         recepcionesH.Actualizar,
		Eliminar:           recepcionesH.Eliminar,
		Restaurar:          recepcionesH.Restaurar,
		EliminarDefinitivo: recepcionesH.EliminarDefinitivo,
		Historial:          recepcionesH.Historial,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})

	montarCrud(api.Group("/devoluciones"), operacionesCrud{
		Listar:             devolucionesH.Listar,
		Obtener:            devolucionesH.Obtener,
		Crear:              devolucionesH.Crear,
		Actualizar:         devolucionesH.Actualizar,
		Eliminar:           devolucionesH.Eliminar,
		Restaurar:          devolucionesH.Restaurar,
		EliminarDefinitivo: devolucionesH.EliminarDefinitivo,
		Historial:          devolucionesH.Historial,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})

	montarCrud(api.Group("/cargos_no_registrados"), operacionesCrud{
		Listar:             cargosH.Listar,
		Obtener:            cargosH.Obtener,
		Crear:              cargosH.Crear,
		Actualizar:         cargosH.Actualizar,
		Eliminar:           cargosH.Eliminar,
		Restaurar:          cargosH.Restaurar,
		EliminarDefinitivo: cargosH.EliminarDefinitivo,
		Historial:          cargosH.Historial,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})

	montarCrud(api.Group("/ajuste_de_saldo"), operacionesCrud{
		Listar:             ajustesH.Listar,
		Obtener:            ajustesH.Obtener,
		Crear:              ajustesH.Crear,
		Actualizar:         ajustesH.Actualizar,
		Eliminar:           ajustesH.Eliminar,
		Restaurar:          ajustesH.Restaurar,
		EliminarDefinitivo: ajustesH.EliminarDefinitivo,
		Historial:          ajustesH.Historial,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})

	gastos := api.Group("/gastos")
	montarCrud(gastos, operacionesCrud{
		Listar:             gastosH.Listar,
		Obtener:            gastosH.Obtener,
		Crear:              gastosH.Crear,
		Actualizar:         gastosH.Actualizar,
		Eliminar:           gastosH.Eliminar,
		Restaurar:          gastosH.Restaurar,
		EliminarDefinitivo: gastosH.EliminarDefinitivo,
		Historial:          gastosH.Historial,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})
	montarCrud(gastos.Group("/relaciones"), operacionesCrud{
		Listar:             gastosH.ListarRelaciones,
		Obtener:            gastosH.ObtenerRelacion,
		Crear:              gastosH.CrearRelacion,
		Actualizar:         gastosH.ActualizarRelacion,
		Eliminar:           gastosH.EliminarRelacion,
		Restaurar:          gastosH.RestaurarRelacion,
		EliminarDefinitivo: gastosH.EliminarRelacionDefinitivo,
		Historial:          gastosH.HistorialRelacion,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})

	montarCrud(api.Group("/utilidad_ocasional"), operacionesCrud{
		Listar:             utilidadesH.Listar,
		Obtener:            utilidadesH.Obtener,
		Crear:              utilidadesH.Crear,
		Actualizar:         utilidadesH.Actualizar,
		Eliminar:           utilidadesH.Eliminar,
		Restaurar:          utilidadesH.Restaurar,
		EliminarDefinitivo: utilidadesH.EliminarDefinitivo,
		Historial:          utilidadesH.Historial,
	}, politicaCrud{Escritura: gestoresYContador, Gestion: gestores})

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
