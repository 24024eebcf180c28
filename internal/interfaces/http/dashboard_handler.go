package http

import (
	"github.com/gofiber/fiber/v2"

	appcache "github.com/tu-usuario/textil-lotes/internal/application/cache"
	"github.com/tu-usuario/textil-lotes/internal/application/dto"
	"github.com/tu-usuario/textil-lotes/internal/infrastructure/localstore"
)

// DashboardHandler contadores del panel de entrada.
type DashboardHandler struct {
	lotes    *appcache.LoteCache
	clientes *appcache.ClienteCache
	local    *localstore.Store
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(lotes *appcache.LoteCache, clientes *appcache.ClienteCache, local *localstore.Store) *DashboardHandler {
	return &DashboardHandler{lotes: lotes, clientes: clientes, local: local}
}

// Resumen GET /api/dashboard
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{
		Lotes:        len(h.lotes.Listado()),
		Clientes:     len(h.clientes.Listado()),
		LotesLocales: h.local.Cantidad(),
	})
}
