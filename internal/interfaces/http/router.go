package http

import (
	"github.com/gofiber/fiber/v2"

	appcache "github.com/tu-usuario/textil-lotes/internal/application/cache"
	"github.com/tu-usuario/textil-lotes/internal/application/session"
	"github.com/tu-usuario/textil-lotes/internal/infrastructure/localstore"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LoteCache    *appcache.LoteCache
	ClienteCache *appcache.ClienteCache
	Buscador     *appcache.BuscadorClientes
	LocalStore   *localstore.Store
	Sesion       *session.Context
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.Sesion))

	lotes := api.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteCache, deps.LocalStore)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/acompanhamento", loteHandler.Acompanhamento)
	lotes.Post("/", loteHandler.Create)
	lotes.Get("/:codigo", loteHandler.Consulta)
	lotes.Patch("/:id", loteHandler.Update)

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteCache, deps.Buscador)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/buscar", clienteHandler.Buscar)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	dashboard := NewDashboardHandler(deps.LoteCache, deps.ClienteCache, deps.LocalStore)
	api.Get("/dashboard", dashboard.Resumen)
}
