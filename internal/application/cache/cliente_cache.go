package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tu-usuario/textil-lotes/internal/application/session"
	"github.com/tu-usuario/textil-lotes/internal/domain"
	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
	"github.com/tu-usuario/textil-lotes/internal/domain/listing"
	"github.com/tu-usuario/textil-lotes/internal/domain/repository"
)

// ordenClientes orden canónico de la instantánea de clientes.
var ordenClientes = listing.Orden{Campo: "nome", Dir: listing.Ascendente}

// ClienteCache instantánea ordenada por nome de la colección `clientes`.
// Mismo contrato de consistencia que LoteCache: solo estado confirmado.
type ClienteCache struct {
	repo     repository.ClienteRepository
	sesion   *session.Context
	notifier Notifier

	mu       sync.RWMutex
	clientes []*entity.Cliente
	cerrado  bool
}

// NewClienteCache construye el caché suscrito a las transiciones de identidad.
func NewClienteCache(repo repository.ClienteRepository, sesion *session.Context, notifier Notifier) *ClienteCache {
	c := &ClienteCache{repo: repo, sesion: sesion, notifier: notifier}
	sesion.OnChange(func(session.Identity) {
		_ = c.Recargar(context.Background())
	})
	return c
}

// Recargar descarga la colección completa (nome ascendente) y reemplaza la
// instantánea; en fallo conserva la previa.
func (c *ClienteCache) Recargar(ctx context.Context) error {
	clientes, err := c.repo.List(ctx)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível carregar os clientes")
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cerrado {
		return nil
	}
	c.clientes = clientes
	return nil
}

// Crear valida nome y codigo, estampa la identidad y, confirmada el alta,
// inserta la fila manteniendo el orden por nome (colación pt-BR).
func (c *ClienteCache) Crear(ctx context.Context, borrador entity.Cliente) (*entity.Cliente, error) {
	if strings.TrimSpace(borrador.Nome) == "" || strings.TrimSpace(borrador.Codigo) == "" {
		c.notifier.Error("Erro", "Nome e código são obrigatórios")
		return nil, fmt.Errorf("%w: nome y codigo requeridos", domain.ErrValidation)
	}
	identidad := c.sesion.Identidad()
	if identidad == nil {
		c.notifier.Error("Erro", "Usuário não autenticado")
		return nil, domain.ErrAuthRequired
	}
	borrador.UserID = identidad.ID
	borrador.UserName = identidad.Nombre

	creado, err := c.repo.Create(ctx, &borrador)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível salvar o cliente")
		return nil, err
	}

	c.mu.Lock()
	if !c.cerrado {
		c.clientes = listing.OrdenarClientes(append(c.clientes, creado), ordenClientes)
	}
	c.mu.Unlock()

	c.notifier.Exito("Sucesso!", "Cliente cadastrado com sucesso")
	return creado, nil
}

// Actualizar aplica un parche parcial por id, reemplaza el registro local por
// la fila confirmada y restablece el orden por nome.
func (c *ClienteCache) Actualizar(ctx context.Context, id string, patch entity.ClientePatch) (*entity.Cliente, error) {
	if c.sesion.Identidad() == nil {
		c.notifier.Error("Erro", "Usuário não autenticado")
		return nil, domain.ErrAuthRequired
	}
	actualizado, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível atualizar o cliente")
		return nil, err
	}

	c.mu.Lock()
	if !c.cerrado {
		for i, cl := range c.clientes {
			if cl.ID == id {
				c.clientes[i] = actualizado
				break
			}
		}
		c.clientes = listing.OrdenarClientes(c.clientes, ordenClientes)
	}
	c.mu.Unlock()

	c.notifier.Exito("Sucesso!", "Cliente atualizado com sucesso")
	return actualizado, nil
}

// Eliminar borra el cliente del almacén y de la instantánea. Eliminar un id
// ya ausente localmente no es un error: la operación es idempotente.
func (c *ClienteCache) Eliminar(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.notifier.Error("Erro", "Não foi possível excluir o cliente")
		return err
	}

	c.mu.Lock()
	if !c.cerrado {
		filtrados := c.clientes[:0:0]
		for _, cl := range c.clientes {
			if cl.ID != id {
				filtrados = append(filtrados, cl)
			}
		}
		c.clientes = filtrados
	}
	c.mu.Unlock()

	c.notifier.Exito("Sucesso!", "Cliente excluído com sucesso")
	return nil
}

// Listado devuelve una copia de la instantánea actual.
func (c *ClienteCache) Listado() []*entity.Cliente {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Cliente, len(c.clientes))
	copy(out, c.clientes)
	return out
}

// Cerrar descarta toda respuesta remota que resuelva después del cierre.
func (c *ClienteCache) Cerrar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cerrado = true
}
