package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/gateway"
	"github.com/aracah/aracah-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DB       gateway.Caller
	Dir      gateway.Directory
	Verifier gateway.Verifier
}

// Listas de roles por grupo de rutas. Declararlas acá deja a la vista
// quién puede qué, en lugar de repetir strings en cada ruta.
var (
	staff     = []domain.Role{domain.RoleAdmin, domain.RoleSupervisor, domain.RoleVendedor}
	gestion   = []domain.Role{domain.RoleAdmin, domain.RoleSupervisor}
	soloAdmin = []domain.Role{domain.RoleAdmin}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	auth := AuthRequired(deps.Verifier)
	requiere := func(roles []domain.Role) fiber.Handler {
		return RequireRole(deps.Dir, roles...)
	}

	// Salud y catálogo público de roles
	sistema := NewSistemaHandler(deps.DB, deps.Dir)
	api.Get("/ping", sistema.Ping)
	api.Get("/db-ping", sistema.DBPing)
	api.Get("/roles", sistema.Roles)

	// Identidad (solo token, sin rol)
	api.Get("/me", auth, sistema.Me)
	api.Post("/sync-user", auth, sistema.SyncUser)

	// Catálogos
	catalogos := api.Group("/catalogos", auth)
	catalogosHandler := NewCatalogosHandler(deps.DB)
	catalogos.Get("/generos", requiere(staff), catalogosHandler.Generos)
	catalogos.Get("/tipos-cliente", requiere(staff), catalogosHandler.TiposCliente)

	// Clientes
	clientes := api.Group("/clientes", auth)
	clientesHandler := NewClientesHandler(deps.DB)
	clientes.Get("/", requiere(staff), clientesHandler.List)
	clientes.Get("/:id", requiere(staff), clientesHandler.GetByID)
	clientes.Post("/", requiere(staff), clientesHandler.Create)
	clientes.Put("/:id", requiere(staff), clientesHandler.Update)
	clientes.Delete("/:id", requiere(soloAdmin), clientesHandler.Delete)

	// Cotizaciones
	cotizaciones := api.Group("/cotizaciones", auth)
	cotizacionesHandler := NewCotizacionesHandler(deps.DB)
	cotizaciones.Get("/aux/producto-lite", requiere(staff), cotizacionesHandler.ProductoLite)
	cotizaciones.Get("/", requiere(staff), cotizacionesHandler.List)
	cotizaciones.Get("/:id", requiere(staff), cotizacionesHandler.GetByID)
	cotizaciones.Post("/", requiere(staff), cotizacionesHandler.Create)
	cotizaciones.Put("/:id", requiere(staff), cotizacionesHandler.Update)
	cotizaciones.Post("/:id/approve", requiere(gestion), cotizacionesHandler.Approve)
	cotizaciones.Post("/:id/reject", requiere(gestion), cotizacionesHandler.Reject)
	cotizaciones.Post("/:id/confirm-to-pedido", requiere(gestion), cotizacionesHandler.ConfirmToPedido)
	cotizaciones.Delete("/:id", requiere(soloAdmin), cotizacionesHandler.Delete)

	// Productos (lectura para armado de líneas)
	productos := api.Group("/productos", auth)
	productosHandler := NewProductosHandler(deps.DB)
	productos.Get("/:id/brief", requiere(staff), productosHandler.Brief)

	// Pedidos
	pedidos := api.Group("/pedidos", auth)
	pedidosHandler := NewPedidosHandler(deps.DB)
	pedidos.Get("/", requiere(staff), pedidosHandler.List)
	pedidos.Post("/confirmar", requiere(staff), pedidosHandler.Confirmar)
	pedidos.Post("/manual", requiere(gestion), pedidosHandler.CrearManual)
	pedidos.Get("/:id", requiere(staff), pedidosHandler.GetByID)
	pedidos.Get("/:id/detalle", requiere(staff), pedidosHandler.GetDetalle)
	pedidos.Post("/:id/to-prod", requiere(gestion), pedidosHandler.ToProd)
	pedidos.Post("/:id/to-listo", requiere(gestion), pedidosHandler.ToListo)
	pedidos.Post("/:id/to-ent", requiere(gestion), pedidosHandler.ToEnt)
	pedidos.Post("/:id/cancel", requiere(gestion), pedidosHandler.Cancel)
	pedidos.Post("/:id/to-pen", requiere(soloAdmin), pedidosHandler.ToPen)

	// Órdenes de producción
	op := api.Group("/op", auth)
	opHandler := NewOPHandler(deps.DB)
	op.Get("/", requiere(gestion), opHandler.List)
	op.Get("/:id", requiere(gestion), opHandler.GetByID)
	op.Get("/:id/consumo", requiere(gestion), opHandler.GetConsumo)
	op.Get("/:id/detalle", requiere(gestion), opHandler.GetDetalle)
	op.Post("/:id/assign", requiere(gestion), opHandler.Assign)
	op.Post("/:id/start", requiere(gestion), opHandler.Start)
	op.Post("/:id/pause", requiere(gestion), opHandler.Pause)
	op.Post("/:id/resume", requiere(gestion), opHandler.Resume)
	op.Post("/:id/finish", requiere(gestion), opHandler.Finish)
	op.Post("/:id/consume", requiere(gestion), opHandler.Consume)

	// Entregas
	entregas := api.Group("/entregas", auth)
	entregasHandler := NewEntregasHandler(deps.DB, deps.Dir)
	entregas.Get("/transportistas", requiere(gestion), entregasHandler.Transportistas)
	entregas.Get("/", requiere(gestion), entregasHandler.List)
	entregas.Get("/:id", requiere(gestion), entregasHandler.GetByID)
	entregas.Post("/", requiere(gestion), entregasHandler.Create)
	entregas.Put("/:id/tracking", requiere(gestion), entregasHandler.UpdateTracking)
	entregas.Patch("/:id/tracking", requiere(gestion), entregasHandler.UpdateTracking)
	entregas.Post("/:id/to-ruta", requiere(gestion), entregasHandler.ToRuta)
	entregas.Post("/:id/to-ent", requiere(gestion), entregasHandler.ToEnt)
	entregas.Post("/:id/to-fall", requiere(gestion), entregasHandler.ToFall)

	// Materiales e inventario
	materiales := api.Group("/materiales", auth)
	materialesHandler := NewMaterialesHandler(deps.DB)
	materiales.Get("/familias/list", requiere(staff), materialesHandler.Familias)
	materiales.Post("/recalcular/stock", requiere(soloAdmin), materialesHandler.RecalcularStock)
	materiales.Get("/", requiere(staff), materialesHandler.List)
	materiales.Get("/:id", requiere(staff), materialesHandler.GetByID)
	materiales.Post("/", requiere(gestion), materialesHandler.Create)
	materiales.Put("/:id", requiere(gestion), materialesHandler.Update)
	materiales.Delete("/:id", requiere(gestion), materialesHandler.Delete)
	materiales.Get("/:id/kardex", requiere(staff), materialesHandler.KardexList)
	materiales.Post("/:id/entrada", requiere(gestion), materialesHandler.KardexEntrada)
	materiales.Post("/:id/salida", requiere(gestion), materialesHandler.KardexSalida)
	materiales.Post("/:id/ajuste", requiere(gestion), materialesHandler.KardexAjuste)

	// Usuarios (solo admin)
	usuarios := api.Group("/usuarios", auth)
	usuariosHandler := NewUsuariosHandler(deps.DB)
	usuarios.Get("/roles", requiere(soloAdmin), usuariosHandler.Roles)
	usuarios.Get("/", requiere(soloAdmin), usuariosHandler.List)
	usuarios.Get("/:id", requiere(soloAdmin), usuariosHandler.GetByID)
	usuarios.Put("/:id", requiere(soloAdmin), usuariosHandler.Update)

	// Reportes
	reportes := api.Group("/reportes", auth, requiere(gestion))
	reportesHandler := NewReportesHandler(deps.DB)
	reportes.Get("/resumen", reportesHandler.Resumen)
	reportes.Get("/ventas-dia", reportesHandler.VentasDia)
	reportes.Get("/top-productos", reportesHandler.TopProductos)
	reportes.Get("/ops", reportesHandler.Ops)
	reportes.Get("/materiales", reportesHandler.Materiales)
	reportes.Get("/entregas", reportesHandler.Entregas)
}
