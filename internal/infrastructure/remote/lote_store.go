package remote

import (
	"context"
	"time"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
	"github.com/tu-usuario/textil-lotes/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteStore)(nil)

const coleccionLotes = "lotes"

// LoteStore adaptador de LoteRepository sobre la colección remota `lotes`.
type LoteStore struct {
	client *Client
}

// NewLoteStore construye el adaptador.
func NewLoteStore(client *Client) *LoteStore {
	return &LoteStore{client: client}
}

// List descarga la colección completa en orden canónico (created_at descendente).
func (s *LoteStore) List(ctx context.Context) ([]*entity.Lote, error) {
	var lotes []*entity.Lote
	q := Query{OrderBy: "created_at", Descendente: true}
	if err := s.client.Select(ctx, coleccionLotes, q, &lotes); err != nil {
		return nil, err
	}
	return lotes, nil
}

// ListFiltered aplica los criterios del lado del almacén (substring sobre
// código y usuario, cotas inclusivas de fecha) conservando el orden canónico.
func (s *LoteStore) ListFiltered(ctx context.Context, criteria repository.LoteCriteria) ([]*entity.Lote, error) {
	q := Query{OrderBy: "created_at", Descendente: true}
	if criteria.Codigo != "" {
		q.Filtros = append(q.Filtros, ILike("codigo_lote", criteria.Codigo))
	}
	if criteria.Usuario != "" {
		q.Filtros = append(q.Filtros, ILike("user_name", criteria.Usuario))
	}
	if !criteria.DesdeFecha.IsZero() {
		q.Filtros = append(q.Filtros, Gte("created_at", criteria.DesdeFecha.Format(time.RFC3339)))
	}
	if !criteria.HastaFecha.IsZero() {
		q.Filtros = append(q.Filtros, Lte("created_at", criteria.HastaFecha.Format(time.RFC3339)))
	}
	var lotes []*entity.Lote
	if err := s.client.Select(ctx, coleccionLotes, q, &lotes); err != nil {
		return nil, err
	}
	return lotes, nil
}

// Create inserta el lote y devuelve la representación autoritativa.
func (s *LoteStore) Create(ctx context.Context, lote *entity.Lote) (*entity.Lote, error) {
	var creado entity.Lote
	if err := s.client.Insert(ctx, coleccionLotes, lote, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// Update aplica el parche por id y devuelve el registro resultante.
func (s *LoteStore) Update(ctx context.Context, id string, patch entity.LotePatch) (*entity.Lote, error) {
	var actualizado entity.Lote
	if err := s.client.Update(ctx, coleccionLotes, id, patch, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// GetByCodigo búsqueda puntual por código de negocio exacto; (nil, nil) si no hay fila.
func (s *LoteStore) GetByCodigo(ctx context.Context, codigo string) (*entity.Lote, error) {
	var lotes []*entity.Lote
	q := Query{Filtros: []Filtro{Eq("codigo_lote", codigo)}, Limit: 1}
	if err := s.client.Select(ctx, coleccionLotes, q, &lotes); err != nil {
		return nil, err
	}
	if len(lotes) == 0 {
		return nil, nil
	}
	return lotes[0], nil
}
