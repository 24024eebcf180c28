package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-lotes/internal/application/session"
)

// La transición ausente→presente dispara los observadores una sola vez.
func TestSet_TransicionDisparaObservadores(t *testing.T) {
	ctx := session.NewContext()
	var vistas []string
	ctx.OnChange(func(id session.Identity) {
		vistas = append(vistas, id.ID)
	})

	ctx.Set(&session.Identity{ID: "u1", Nombre: "Maria"})

	require.Equal(t, []string{"u1"}, vistas)
	identidad := ctx.Identidad()
	require.NotNil(t, identidad)
	assert.Equal(t, "Maria", identidad.Nombre)
}

// Repetir la misma identidad no vuelve a disparar.
func TestSet_MismaIdentidadNoDispara(t *testing.T) {
	ctx := session.NewContext()
	disparos := 0
	ctx.OnChange(func(session.Identity) { disparos++ })

	ctx.Set(&session.Identity{ID: "u1"})
	ctx.Set(&session.Identity{ID: "u1"})

	assert.Equal(t, 1, disparos)
}

// Cambiar de usuario sí dispara; limpiar la sesión no.
func TestSet_CambioDeUsuarioYLimpieza(t *testing.T) {
	ctx := session.NewContext()
	disparos := 0
	ctx.OnChange(func(session.Identity) { disparos++ })

	ctx.Set(&session.Identity{ID: "u1"})
	ctx.Set(&session.Identity{ID: "u2"})
	ctx.Clear()

	assert.Equal(t, 2, disparos)
	assert.Nil(t, ctx.Identidad())
}

// La identidad devuelta es una copia: mutarla no afecta al contexto.
func TestIdentidad_DevuelveCopia(t *testing.T) {
	ctx := session.NewContext()
	ctx.Set(&session.Identity{ID: "u1", Nombre: "Maria"})

	id := ctx.Identidad()
	id.Nombre = "Otro"

	assert.Equal(t, "Maria", ctx.Identidad().Nombre)
}
