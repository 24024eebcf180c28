package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
)

// LoteCriteria filtros que se resuelven del lado del almacén remoto
// (substring case-insensitive; fechas como cotas inclusivas sobre created_at).
// Un campo en cero significa "sin restricción".
type LoteCriteria struct {
	Codigo     string
	Usuario    string
	DesdeFecha time.Time
	HastaFecha time.Time
}

// LoteRepository define el puerto de acceso a la colección remota `lotes`.
// List y ListFiltered devuelven los lotes en orden canónico: created_at descendente.
type LoteRepository interface {
	List(ctx context.Context) ([]*entity.Lote, error)
	ListFiltered(ctx context.Context, criteria LoteCriteria) ([]*entity.Lote, error)
	// Create inserta el lote y devuelve la representación autoritativa
	// (con id y timestamps asignados por el almacén).
	Create(ctx context.Context, lote *entity.Lote) (*entity.Lote, error)
	// Update aplica un parche parcial por id y devuelve el registro resultante.
	Update(ctx context.Context, id string, patch entity.LotePatch) (*entity.Lote, error)
	// GetByCodigo búsqueda puntual por código exacto; (nil, nil) si no existe.
	GetByCodigo(ctx context.Context, codigo string) (*entity.Lote, error)
}
