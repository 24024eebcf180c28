package remote

import (
	"context"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
	"github.com/tu-usuario/textil-lotes/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteStore)(nil)

const coleccionClientes = "clientes"

// ClienteStore adaptador de ClienteRepository sobre la colección remota `clientes`.
type ClienteStore struct {
	client *Client
}

// NewClienteStore construye el adaptador.
func NewClienteStore(client *Client) *ClienteStore {
	return &ClienteStore{client: client}
}

// List descarga la colección completa en orden canónico (nome ascendente).
func (s *ClienteStore) List(ctx context.Context) ([]*entity.Cliente, error) {
	var clientes []*entity.Cliente
	q := Query{OrderBy: "nome"}
	if err := s.client.Select(ctx, coleccionClientes, q, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// Create inserta el cliente y devuelve la representación autoritativa.
func (s *ClienteStore) Create(ctx context.Context, cliente *entity.Cliente) (*entity.Cliente, error) {
	var creado entity.Cliente
	if err := s.client.Insert(ctx, coleccionClientes, cliente, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// Update aplica el parche por id y devuelve el registro resultante.
func (s *ClienteStore) Update(ctx context.Context, id string, patch entity.ClientePatch) (*entity.Cliente, error) {
	var actualizado entity.Cliente
	if err := s.client.Update(ctx, coleccionClientes, id, patch, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Delete elimina el cliente por id.
func (s *ClienteStore) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, coleccionClientes, id)
}

// Search búsqueda del autocompletado: substring case-insensitive sobre
// nome O codigo, orden nome ascendente, a lo sumo limit filas.
func (s *ClienteStore) Search(ctx context.Context, term string, limit int) ([]*entity.Cliente, error) {
	var clientes []*entity.Cliente
	q := Query{
		Filtros: []Filtro{Or(ILike("nome", term), ILike("codigo", term))},
		OrderBy: "nome",
		Limit:   limit,
	}
	if err := s.client.Select(ctx, coleccionClientes, q, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}
