package cache

import (
	"context"
	"unicode/utf8"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
	"github.com/tu-usuario/textil-lotes/pkg/logger"
)

// Política de dos niveles del autocompletado: términos cortos se resuelven
// contra la instantánea local (matchearían demasiado ancho en remoto);
// desde umbralRemoto caracteres se consulta el almacén, que busca sobre
// nome y codigo a la vez.
const (
	umbralRemoto   = 2
	maxSugerencias = 10
)

// BuscadorClientes autocompletado de clientes sobre el caché y el almacén.
type BuscadorClientes struct {
	cache *ClienteCache
	log   *logger.Logger
}

// NewBuscadorClientes construye el buscador.
func NewBuscadorClientes(cache *ClienteCache, log *logger.Logger) *BuscadorClientes {
	return &BuscadorClientes{cache: cache, log: log}
}

// Buscar devuelve hasta 10 sugerencias para el término tipeado.
// Es una vía de sugerencias, no una operación primaria: un fallo remoto
// degrada a lista vacía sin propagar error (solo se deja registro).
func (b *BuscadorClientes) Buscar(ctx context.Context, termino string) []*entity.Cliente {
	if utf8.RuneCountInString(termino) < umbralRemoto {
		locales := b.cache.Listado()
		if len(locales) > maxSugerencias {
			locales = locales[:maxSugerencias]
		}
		return locales
	}

	sugerencias, err := b.cache.repo.Search(ctx, termino, maxSugerencias)
	if err != nil {
		b.log.Warn().Err(err).Str("termino", termino).Msg("búsqueda de clientes degradada a vacío")
		return []*entity.Cliente{}
	}
	if sugerencias == nil {
		sugerencias = []*entity.Cliente{}
	}
	return sugerencias
}
