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

// ordenLotes orden canónico de la instantánea de lotes.
var ordenLotes = listing.Orden{Campo: "created_at", Dir: listing.Descendente}

// LoteCache instantánea ordenada y deduplicada por id de la colección `lotes`.
// Solo refleja estado confirmado: una mutación fallida deja la instantánea
// intacta y una recarga fallida conserva la anterior.
type LoteCache struct {
	repo     repository.LoteRepository
	sesion   *session.Context
	notifier Notifier

	mu      sync.RWMutex
	lotes   []*entity.Lote
	cerrado bool
}

// NewLoteCache construye el caché y lo suscribe a las transiciones de
// identidad: la primera sesión autenticada dispara la carga inicial.
// Con sesión anónima no se consulta nada.
func NewLoteCache(repo repository.LoteRepository, sesion *session.Context, notifier Notifier) *LoteCache {
	c := &LoteCache{repo: repo, sesion: sesion, notifier: notifier}
	sesion.OnChange(func(session.Identity) {
		_ = c.Recargar(context.Background())
	})
	return c
}

// Recargar descarga la colección completa y reemplaza la instantánea.
// En fallo la instantánea previa queda sin tocar y se devuelve el error de consulta.
func (c *LoteCache) Recargar(ctx context.Context) error {
	lotes, err := c.repo.List(ctx)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível carregar os lotes")
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cerrado {
		// respuesta resuelta después del cierre: se descarta
		return nil
	}
	c.lotes = lotes
	return nil
}

// Crear valida el borrador, estampa identidad y status, y lo inserta.
// La instantánea solo incorpora la fila autoritativa que confirma el almacén,
// antepuesta para conservar el orden created_at descendente.
func (c *LoteCache) Crear(ctx context.Context, borrador entity.Lote) (*entity.Lote, error) {
	if strings.TrimSpace(borrador.Codigo) == "" {
		c.notifier.Error("Erro", "Código do lote é obrigatório")
		return nil, fmt.Errorf("%w: codigo_lote requerido", domain.ErrValidation)
	}
	identidad := c.sesion.Identidad()
	if identidad == nil {
		c.notifier.Error("Erro", "Usuário não autenticado")
		return nil, domain.ErrAuthRequired
	}
	borrador.UserID = identidad.ID
	borrador.UserName = identidad.Nombre
	borrador.Status = entity.StatusAtivo

	creado, err := c.repo.Create(ctx, &borrador)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível salvar o lote")
		return nil, err
	}

	c.mu.Lock()
	if !c.cerrado {
		c.lotes = append([]*entity.Lote{creado}, c.lotes...)
	}
	c.mu.Unlock()

	c.notifier.Exito("Sucesso!", "Lote cadastrado com sucesso")
	return creado, nil
}

// Actualizar aplica un parche parcial por id. Reemplaza el registro local por
// la fila confirmada y restablece el orden canónico. Un id desconocido para el
// almacén falla con error de escritura sin tocar la instantánea.
func (c *LoteCache) Actualizar(ctx context.Context, id string, patch entity.LotePatch) (*entity.Lote, error) {
	if c.sesion.Identidad() == nil {
		c.notifier.Error("Erro", "Usuário não autenticado")
		return nil, domain.ErrAuthRequired
	}
	actualizado, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível atualizar o lote")
		return nil, err
	}

	c.mu.Lock()
	if !c.cerrado {
		for i, l := range c.lotes {
			if l.ID == id {
				c.lotes[i] = actualizado
				break
			}
		}
		c.lotes = listing.OrdenarLotes(c.lotes, ordenLotes)
	}
	c.mu.Unlock()

	c.notifier.Exito("Sucesso!", "Lote atualizado com sucesso")
	return actualizado, nil
}

// BuscarPorCodigo consulta puntual por código exacto directamente contra el
// almacén: no consulta ni alimenta la instantánea. (nil, nil) si no existe.
func (c *LoteCache) BuscarPorCodigo(ctx context.Context, codigo string) (*entity.Lote, error) {
	lote, err := c.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível buscar o lote")
		return nil, err
	}
	return lote, nil
}

// ConsultaFiltrada listado con filtros resueltos del lado del almacén
// (pantalla de acompanhamento). No toca la instantánea.
func (c *LoteCache) ConsultaFiltrada(ctx context.Context, criteria repository.LoteCriteria) ([]*entity.Lote, error) {
	lotes, err := c.repo.ListFiltered(ctx, criteria)
	if err != nil {
		c.notifier.Error("Erro", "Não foi possível carregar os lotes")
		return nil, err
	}
	return lotes, nil
}

// Listado devuelve una copia de la instantánea actual.
func (c *LoteCache) Listado() []*entity.Lote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Lote, len(c.lotes))
	copy(out, c.lotes)
	return out
}

// Cerrar marca el caché como fuera de alcance: toda respuesta remota que
// resuelva después se descarta en lugar de aplicarse.
func (c *LoteCache) Cerrar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cerrado = true
}
