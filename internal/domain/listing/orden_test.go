package listing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
	"github.com/tu-usuario/textil-lotes/internal/domain/listing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo tri-estado
// ──────────────────────────────────────────────────────────────────────────────

// Tres selecciones de la misma columna vuelven a "sin orden".
func TestOrden_CicloSobreLaMismaColumna(t *testing.T) {
	o := listing.Orden{}

	o = o.Siguiente("codigo_lote")
	assert.Equal(t, listing.Orden{Campo: "codigo_lote", Dir: listing.Ascendente}, o)

	o = o.Siguiente("codigo_lote")
	assert.Equal(t, listing.Orden{Campo: "codigo_lote", Dir: listing.Descendente}, o)

	o = o.Siguiente("codigo_lote")
	assert.Equal(t, listing.Orden{Campo: "codigo_lote", Dir: listing.SinOrden}, o)
}

// Seleccionar otra columna reinicia en ascendente, sin importar el estado previo.
func TestOrden_ColumnaDistintaReiniciaAscendente(t *testing.T) {
	o := listing.Orden{Campo: "codigo_lote", Dir: listing.Descendente}

	o = o.Siguiente("user_name")

	assert.Equal(t, listing.Orden{Campo: "user_name", Dir: listing.Ascendente}, o)
}

// ──────────────────────────────────────────────────────────────────────────────
// OrdenarLotes
// ──────────────────────────────────────────────────────────────────────────────

// Escenario del contrato: ascendente por código con valor ausente al final.
func TestOrdenarLotes_AusentesAlFinal(t *testing.T) {
	lotes := []*entity.Lote{
		{Codigo: "B"},
		{Codigo: "A"},
		{Codigo: ""},
	}

	resultado := listing.OrdenarLotes(lotes, listing.Orden{Campo: "codigo_lote", Dir: listing.Ascendente})

	require.Len(t, resultado, 3)
	assert.Equal(t, "A", resultado[0].Codigo)
	assert.Equal(t, "B", resultado[1].Codigo)
	assert.Equal(t, "", resultado[2].Codigo)
}

// Los ausentes quedan al final también en descendente.
func TestOrdenarLotes_AusentesAlFinalDescendente(t *testing.T) {
	lotes := []*entity.Lote{
		{Codigo: ""},
		{Codigo: "A"},
		{Codigo: "B"},
	}

	resultado := listing.OrdenarLotes(lotes, listing.Orden{Campo: "codigo_lote", Dir: listing.Descendente})

	assert.Equal(t, "B", resultado[0].Codigo)
	assert.Equal(t, "A", resultado[1].Codigo)
	assert.Equal(t, "", resultado[2].Codigo)
}

// Estabilidad: claves iguales conservan el orden relativo de entrada.
func TestOrdenarLotes_Estable(t *testing.T) {
	lotes := []*entity.Lote{
		{ID: "1", Cor: "azul", Codigo: "Z"},
		{ID: "2", Cor: "azul", Codigo: "A"},
		{ID: "3", Cor: "amarelo", Codigo: "M"},
	}

	resultado := listing.OrdenarLotes(lotes, listing.Orden{Campo: "cor", Dir: listing.Ascendente})

	require.Len(t, resultado, 3)
	assert.Equal(t, "3", resultado[0].ID)
	// Z antes que A: mismo cor, se conserva el orden de entrada
	assert.Equal(t, "1", resultado[1].ID)
	assert.Equal(t, "2", resultado[2].ID)
}

// SinOrden conserva el orden de entrada tal cual.
func TestOrdenarLotes_SinOrdenConservaEntrada(t *testing.T) {
	lotes := []*entity.Lote{{Codigo: "B"}, {Codigo: "A"}}

	resultado := listing.OrdenarLotes(lotes, listing.Orden{})

	assert.Equal(t, "B", resultado[0].Codigo)
	assert.Equal(t, "A", resultado[1].Codigo)
}

// Ordenar por fecha: orden natural, fecha cero al final.
func TestOrdenarLotes_PorFecha(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	lotes := []*entity.Lote{
		{Codigo: "sin-fecha"},
		{Codigo: "feb", CreatedAt: t2},
		{Codigo: "jan", CreatedAt: t1},
	}

	resultado := listing.OrdenarLotes(lotes, listing.Orden{Campo: "created_at", Dir: listing.Ascendente})

	assert.Equal(t, "jan", resultado[0].Codigo)
	assert.Equal(t, "feb", resultado[1].Codigo)
	assert.Equal(t, "sin-fecha", resultado[2].Codigo)
}

// Ordenar dos veces con el mismo estado da el mismo resultado (idempotencia).
func TestOrdenarLotes_Idempotente(t *testing.T) {
	lotes := []*entity.Lote{{Codigo: "C"}, {Codigo: "A"}, {Codigo: "B"}}
	orden := listing.Orden{Campo: "codigo_lote", Dir: listing.Descendente}

	una := listing.OrdenarLotes(lotes, orden)
	dos := listing.OrdenarLotes(una, orden)

	assert.Equal(t, una, dos)
}

// El ordenamiento no muta la lista de entrada.
func TestOrdenarLotes_NoMutaEntrada(t *testing.T) {
	lotes := []*entity.Lote{{Codigo: "B"}, {Codigo: "A"}}

	_ = listing.OrdenarLotes(lotes, listing.Orden{Campo: "codigo_lote", Dir: listing.Ascendente})

	assert.Equal(t, "B", lotes[0].Codigo)
}

// ──────────────────────────────────────────────────────────────────────────────
// OrdenarClientes
// ──────────────────────────────────────────────────────────────────────────────

// La colación es consciente del idioma: los acentos no rompen el orden.
func TestOrdenarClientes_ColacionConAcentos(t *testing.T) {
	clientes := []*entity.Cliente{
		{Nome: "Zeca"},
		{Nome: "Ágata"},
		{Nome: "Bruno"},
	}

	resultado := listing.OrdenarClientes(clientes, listing.Orden{Campo: "nome", Dir: listing.Ascendente})

	assert.Equal(t, "Ágata", resultado[0].Nome)
	assert.Equal(t, "Bruno", resultado[1].Nome)
	assert.Equal(t, "Zeca", resultado[2].Nome)
}

// Una columna desconocida se trata como ausente: no reordena nada.
func TestOrdenarClientes_ColumnaDesconocida(t *testing.T) {
	clientes := []*entity.Cliente{{Nome: "B"}, {Nome: "A"}}

	resultado := listing.OrdenarClientes(clientes, listing.Orden{Campo: "inexistente", Dir: listing.Ascendente})

	assert.Equal(t, "B", resultado[0].Nome)
	assert.Equal(t, "A", resultado[1].Nome)
}
