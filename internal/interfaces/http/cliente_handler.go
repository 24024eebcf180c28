package http

import (
	"github.com/gofiber/fiber/v2"

	appcache "github.com/tu-usuario/textil-lotes/internal/application/cache"
	"github.com/tu-usuario/textil-lotes/internal/application/dto"
	"github.com/tu-usuario/textil-lotes/internal/domain/listing"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	cache    *appcache.ClienteCache
	buscador *appcache.BuscadorClientes
}

// NewClienteHandler construye el handler.
func NewClienteHandler(cache *appcache.ClienteCache, buscador *appcache.BuscadorClientes) *ClienteHandler {
	return &ClienteHandler{cache: cache, buscador: buscador}
}

// List GET /api/clientes?nome=&codigo=&orden=&dir=
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var q dto.ClienteFiltrosQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	clientes := listing.FiltrarClientes(h.cache.Listado(), listing.ClienteFiltros{Nome: q.Nome, Codigo: q.Codigo})
	clientes = listing.OrdenarClientes(clientes, ordenDesdeQuery(q.Orden, q.Dir))
	return c.JSON(dto.ListadoClientesResponse{Total: len(clientes), Clientes: clientes})
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.cache.Crear(c.Context(), in.Entity())
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Update PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.cache.Actualizar(c.Context(), c.Params("id"), in.Patch())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(cliente)
}

// Delete DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.cache.Eliminar(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Buscar GET /api/clientes/buscar?q= — autocompletado (falla suave a vacío).
func (h *ClienteHandler) Buscar(c *fiber.Ctx) error {
	sugerencias := h.buscador.Buscar(c.Context(), c.Query("q"))
	return c.JSON(dto.ListadoClientesResponse{Total: len(sugerencias), Clientes: sugerencias})
}
