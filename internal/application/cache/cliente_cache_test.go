package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcache "github.com/tu-usuario/textil-lotes/internal/application/cache"
	"github.com/tu-usuario/textil-lotes/internal/application/session"
	"github.com/tu-usuario/textil-lotes/internal/domain"
	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ClienteRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	mu       sync.Mutex
	clientes []*entity.Cliente

	failDelete bool
	failSearch bool

	searchCalls   int
	deleteCalls   int
	ultimoTermino string
}

func (f *fakeClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Cliente, len(f.clientes))
	copy(out, f.clientes)
	return out, nil
}

func (f *fakeClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) (*entity.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	creado := *cliente
	creado.ID = uuid.New().String()
	creado.CreatedAt = time.Now()
	creado.UpdatedAt = creado.CreatedAt
	f.clientes = append(f.clientes, &creado)
	return &creado, nil
}

func (f *fakeClienteRepo) Update(ctx context.Context, id string, patch entity.ClientePatch) (*entity.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.clientes {
		if c.ID == id {
			actualizado := *c
			if patch.Nome != nil {
				actualizado.Nome = *patch.Nome
			}
			if patch.Observacao != nil {
				actualizado.Observacao = *patch.Observacao
			}
			actualizado.UpdatedAt = time.Now()
			return &actualizado, nil
		}
	}
	return nil, fmt.Errorf("%w: id desconocido", domain.ErrRemoteWrite)
}

func (f *fakeClienteRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failDelete {
		return fmt.Errorf("%w: delete rechazado", domain.ErrRemoteWrite)
	}
	// el almacén responde igual exista o no la fila
	filtrados := f.clientes[:0:0]
	for _, c := range f.clientes {
		if c.ID != id {
			filtrados = append(filtrados, c)
		}
	}
	f.clientes = filtrados
	return nil
}

func (f *fakeClienteRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Cliente, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	f.ultimoTermino = term
	if f.failSearch {
		return nil, fmt.Errorf("%w: transporte caído", domain.ErrRemoteQuery)
	}
	out := make([]*entity.Cliente, 0, limit)
	for _, c := range f.clientes {
		if len(out) == limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

func nuevoClienteCache(t *testing.T, repo *fakeClienteRepo) (*appcache.ClienteCache, *fakeNotifier) {
	t.Helper()
	notifier := &fakeNotifier{}
	c := appcache.NewClienteCache(repo, sesionAutenticada(), notifier)
	require.NoError(t, c.Recargar(context.Background()))
	return c, notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear / Actualizar: orden canónico por nome
// ──────────────────────────────────────────────────────────────────────────────

// El alta inserta manteniendo el orden por nome, no al final.
func TestClienteCache_CrearInsertaOrdenado(t *testing.T) {
	repo := &fakeClienteRepo{clientes: []*entity.Cliente{
		{ID: "1", Nome: "Ana", Codigo: "C-01"},
		{ID: "2", Nome: "Zeca", Codigo: "C-02"},
	}}
	c, notifier := nuevoClienteCache(t, repo)

	creado, err := c.Crear(context.Background(), entity.Cliente{Nome: "Bruno", Codigo: "C-03"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", creado.UserID)
	assert.Equal(t, "Maria", creado.UserName)

	listado := c.Listado()
	require.Len(t, listado, 3)
	assert.Equal(t, "Ana", listado[0].Nome)
	assert.Equal(t, "Bruno", listado[1].Nome)
	assert.Equal(t, "Zeca", listado[2].Nome)
	assert.Equal(t, 1, notifier.exitos)
}

// Nome o código vacíos fallan con validación antes de llegar al almacén.
func TestClienteCache_CrearValidaCampos(t *testing.T) {
	repo := &fakeClienteRepo{}
	c, _ := nuevoClienteCache(t, repo)

	_, err := c.Crear(context.Background(), entity.Cliente{Nome: "Ana"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = c.Crear(context.Background(), entity.Cliente{Codigo: "C-01"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, c.Listado())
}

// Una actualización que cambia el nome restablece el orden.
func TestClienteCache_ActualizarReordena(t *testing.T) {
	repo := &fakeClienteRepo{clientes: []*entity.Cliente{
		{ID: "1", Nome: "Ana", Codigo: "C-01"},
		{ID: "2", Nome: "Bruno", Codigo: "C-02"},
	}}
	c, _ := nuevoClienteCache(t, repo)

	nome := "Zuleica"
	_, err := c.Actualizar(context.Background(), "1", entity.ClientePatch{Nome: &nome})

	require.NoError(t, err)
	listado := c.Listado()
	require.Len(t, listado, 2)
	assert.Equal(t, "Bruno", listado[0].Nome)
	assert.Equal(t, "Zuleica", listado[1].Nome)
}

// Sin identidad toda mutación falla con ErrAuthRequired.
func TestClienteCache_MutacionSinIdentidad(t *testing.T) {
	repo := &fakeClienteRepo{}
	c := appcache.NewClienteCache(repo, session.NewContext(), &fakeNotifier{})

	_, err := c.Crear(context.Background(), entity.Cliente{Nome: "Ana", Codigo: "C-01"})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	nome := "Otro"
	_, err = c.Actualizar(context.Background(), "1", entity.ClientePatch{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar: idempotencia
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar dos veces el mismo id no es error y la instantánea queda sin la fila.
func TestClienteCache_EliminarEsIdempotente(t *testing.T) {
	repo := &fakeClienteRepo{clientes: []*entity.Cliente{
		{ID: "1", Nome: "Ana", Codigo: "C-01"},
		{ID: "2", Nome: "Bruno", Codigo: "C-02"},
	}}
	c, notifier := nuevoClienteCache(t, repo)

	require.NoError(t, c.Eliminar(context.Background(), "1"))
	assert.Len(t, c.Listado(), 1)

	require.NoError(t, c.Eliminar(context.Background(), "1"), "repetir el delete no debe fallar")
	assert.Len(t, c.Listado(), 1)
	assert.Equal(t, 2, repo.deleteCalls, "cada llamada llega igual al almacén")
	assert.Equal(t, 2, notifier.exitos)
}

// Un delete rechazado por el almacén deja la instantánea intacta.
func TestClienteCache_EliminarFallidoNoTocaInstantanea(t *testing.T) {
	repo := &fakeClienteRepo{clientes: []*entity.Cliente{{ID: "1", Nome: "Ana", Codigo: "C-01"}}}
	c, notifier := nuevoClienteCache(t, repo)

	repo.failDelete = true
	err := c.Eliminar(context.Background(), "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteWrite)
	assert.Len(t, c.Listado(), 1)
	assert.Equal(t, 1, notifier.errores)
}
