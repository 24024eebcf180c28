package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcache "github.com/tu-usuario/textil-lotes/internal/application/cache"
	"github.com/tu-usuario/textil-lotes/internal/application/dto"
	"github.com/tu-usuario/textil-lotes/internal/domain"
	"github.com/tu-usuario/textil-lotes/internal/domain/listing"
	"github.com/tu-usuario/textil-lotes/internal/domain/repository"
	"github.com/tu-usuario/textil-lotes/internal/infrastructure/localstore"
)

// LoteHandler maneja las peticiones HTTP de lotes (protegido).
type LoteHandler struct {
	cache *appcache.LoteCache
	local *localstore.Store
}

// NewLoteHandler construye el handler.
func NewLoteHandler(cache *appcache.LoteCache, local *localstore.Store) *LoteHandler {
	return &LoteHandler{cache: cache, local: local}
}

// List GET /api/lotes?codigo=&usuario=&desde=&hasta=&orden=&dir=
// Filtra y ordena sobre la instantánea local del caché.
func (h *LoteHandler) List(c *fiber.Ctx) error {
	var q dto.LoteFiltrosQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	desde, hasta := q.Fechas()
	filtros := listing.LoteFiltros{
		Codigo:     q.Codigo,
		Usuario:    q.Usuario,
		DesdeFecha: desde,
		HastaFecha: hasta,
	}
	lotes := listing.FiltrarLotes(h.cache.Listado(), filtros)
	lotes = listing.OrdenarLotes(lotes, ordenDesdeQuery(q.Orden, q.Dir))
	return c.JSON(dto.ListadoLotesResponse{Total: len(lotes), Lotes: lotes})
}

// Acompanhamento GET /api/lotes/acompanhamento?codigo=&usuario=&desde=&hasta=
// Variante con filtros resueltos del lado del almacén remoto.
func (h *LoteHandler) Acompanhamento(c *fiber.Ctx) error {
	var q dto.LoteFiltrosQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	desde, hasta := q.Fechas()
	lotes, err := h.cache.ConsultaFiltrada(c.Context(), repository.LoteCriteria{
		Codigo:     q.Codigo,
		Usuario:    q.Usuario,
		DesdeFecha: desde,
		HastaFecha: hasta,
	})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE_QUERY", Message: err.Error()})
	}
	return c.JSON(dto.ListadoLotesResponse{Total: len(lotes), Lotes: lotes})
}

// Create POST /api/lotes
func (h *LoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lote, err := h.cache.Crear(c.Context(), in.Entity())
	if err != nil {
		return mapError(c, err)
	}
	// Espejo en el almacén local heredado (solo alimenta el contador del panel).
	_ = h.local.GuardarBorrador(lote.Codigo, *lote)
	return c.Status(fiber.StatusCreated).JSON(lote)
}

// Consulta GET /api/lotes/:codigo — búsqueda puntual por código de negocio.
func (h *LoteHandler) Consulta(c *fiber.Ctx) error {
	lote, err := h.cache.BuscarPorCodigo(c.Context(), c.Params("codigo"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE_QUERY", Message: err.Error()})
	}
	if lote == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(lote)
}

// Update PATCH /api/lotes/:id
func (h *LoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lote, err := h.cache.Actualizar(c.Context(), c.Params("id"), in.Patch())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(lote)
}

// ordenDesdeQuery traduce los parámetros orden/dir al estado del motor.
func ordenDesdeQuery(campo, dir string) listing.Orden {
	if campo == "" {
		return listing.Orden{}
	}
	switch dir {
	case "asc":
		return listing.Orden{Campo: campo, Dir: listing.Ascendente}
	case "desc":
		return listing.Orden{Campo: campo, Dir: listing.Descendente}
	default:
		return listing.Orden{Campo: campo}
	}
}

// mapError traduce la taxonomía de errores de dominio a estados HTTP.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrAuthRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH_REQUIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrRemoteQuery):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE_QUERY", Message: err.Error()})
	case errors.Is(err, domain.ErrRemoteWrite):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE_WRITE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
