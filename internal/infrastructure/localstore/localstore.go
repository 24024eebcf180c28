// Package localstore conserva el almacén clave-valor local heredado de la
// primera versión de la aplicación (borradores de lote por código). Quedó
// superado por el almacén remoto: hoy solo alimenta el contador de registros
// del panel de entrada y no es autoritativo.
package localstore

import (
	"encoding/gob"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
	"github.com/tu-usuario/textil-lotes/pkg/logger"
)

func init() {
	gob.Register(entity.Lote{})
}

// Store clave-valor local persistido a archivo.
type Store struct {
	cache *gocache.Cache
	path  string
	log   *logger.Logger
}

// New abre el almacén local. Si el archivo no existe todavía se parte de un
// almacén vacío; un archivo corrupto se ignora con aviso.
func New(path string, log *logger.Logger) *Store {
	c := gocache.New(gocache.NoExpiration, 0)
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("almacén local no cargado; se parte vacío")
		}
	}
	return &Store{cache: c, path: path, log: log}
}

// GuardarBorrador guarda un borrador de lote por código y persiste a disco.
func (s *Store) GuardarBorrador(codigo string, lote entity.Lote) error {
	s.cache.Set(codigo, lote, gocache.NoExpiration)
	if s.path == "" {
		return nil
	}
	if err := s.cache.SaveFile(s.path); err != nil {
		return fmt.Errorf("persistir almacén local: %w", err)
	}
	return nil
}

// Borrador recupera un borrador por código.
func (s *Store) Borrador(codigo string) (entity.Lote, bool) {
	v, ok := s.cache.Get(codigo)
	if !ok {
		return entity.Lote{}, false
	}
	lote, ok := v.(entity.Lote)
	return lote, ok
}

// Cantidad devuelve el número de registros locales (contador del panel).
func (s *Store) Cantidad() int {
	return s.cache.ItemCount()
}
