package repository

import (
	"context"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
)

// ClienteRepository define el puerto de acceso a la colección remota `clientes`.
// List devuelve los clientes en orden canónico: nome ascendente.
type ClienteRepository interface {
	List(ctx context.Context) ([]*entity.Cliente, error)
	Create(ctx context.Context, cliente *entity.Cliente) (*entity.Cliente, error)
	Update(ctx context.Context, id string, patch entity.ClientePatch) (*entity.Cliente, error)
	Delete(ctx context.Context, id string) error
	// Search consulta remota para el autocompletado: substring case-insensitive
	// sobre nome O codigo, orden nome ascendente, a lo sumo `limit` filas.
	Search(ctx context.Context, term string, limit int) ([]*entity.Cliente, error)
}
