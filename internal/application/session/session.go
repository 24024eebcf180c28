// Package session mantiene la identidad autenticada de la sesión activa como
// un objeto de contexto explícito: los consumidores la reciben por
// configuración, nunca por estado global.
package session

import "sync"

// Identity identidad firmada provista por el servicio de autenticación externo.
type Identity struct {
	ID     string
	Nombre string // nombre para mostrar, se desnormaliza en las altas
}

// Context contenedor de solo-lectura de la identidad actual con registro de
// observadores. Los caches se suscriben para recargar al pasar de sesión
// anónima a autenticada.
type Context struct {
	mu           sync.RWMutex
	identidad    *Identity
	observadores []func(Identity)
}

// NewContext construye un contexto sin identidad (sesión anónima).
func NewContext() *Context {
	return &Context{}
}

// Identidad devuelve una copia de la identidad actual, o nil si no hay sesión.
func (c *Context) Identidad() *Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identidad == nil {
		return nil
	}
	id := *c.identidad
	return &id
}

// OnChange registra un observador de transiciones de identidad.
// Se invoca solo al pasar de ausente a presente o al cambiar de usuario.
func (c *Context) OnChange(fn func(Identity)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observadores = append(c.observadores, fn)
}

// Set reemplaza la identidad. Dispara los observadores únicamente en una
// transición real (ausente→presente o cambio de id); repetir la misma
// identidad o limpiarla no dispara nada.
func (c *Context) Set(identidad *Identity) {
	c.mu.Lock()
	transicion := identidad != nil && (c.identidad == nil || c.identidad.ID != identidad.ID)
	if identidad == nil {
		c.identidad = nil
	} else {
		id := *identidad
		c.identidad = &id
	}
	observadores := c.observadores
	var actual Identity
	if identidad != nil {
		actual = *identidad
	}
	c.mu.Unlock()

	if !transicion {
		return
	}
	for _, fn := range observadores {
		fn(actual)
	}
}

// Clear limpia la identidad (fin de sesión). No dispara observadores.
func (c *Context) Clear() {
	c.Set(nil)
}
