// Package listing implementa el motor de filtrado y ordenamiento de las
// grillas de consulta: funciones puras sobre listas materializadas, sin estado.
// Filtrar y ordenar son idempotentes y nunca mutan la lista de entrada.
package listing

import (
	"strings"
	"time"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
)

// LoteFiltros criterios independientes sobre la grilla de lotes.
// Se combinan con AND lógico; un campo vacío no restringe.
type LoteFiltros struct {
	Codigo     string    // substring case-insensitive sobre codigo_lote
	Usuario    string    // substring case-insensitive sobre user_name
	DesdeFecha time.Time // cota inferior inclusiva sobre created_at
	HastaFecha time.Time // cota superior inclusiva sobre created_at
}

// ClienteFiltros criterios sobre la grilla de clientes.
type ClienteFiltros struct {
	Nome   string
	Codigo string
}

// FiltrarLotes aplica los filtros en conjunción sobre la lista dada.
// Una lista vacía produce una lista vacía, nunca un error.
func FiltrarLotes(lotes []*entity.Lote, f LoteFiltros) []*entity.Lote {
	out := make([]*entity.Lote, 0, len(lotes))
	for _, l := range lotes {
		if !contiene(l.Codigo, f.Codigo) {
			continue
		}
		if !contiene(l.UserName, f.Usuario) {
			continue
		}
		if !f.DesdeFecha.IsZero() && l.CreatedAt.Before(f.DesdeFecha) {
			continue
		}
		if !f.HastaFecha.IsZero() && l.CreatedAt.After(f.HastaFecha) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FiltrarClientes aplica los filtros en conjunción sobre la lista dada.
func FiltrarClientes(clientes []*entity.Cliente, f ClienteFiltros) []*entity.Cliente {
	out := make([]*entity.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if !contiene(c.Nome, f.Nome) {
			continue
		}
		if !contiene(c.Codigo, f.Codigo) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// contiene substring case-insensitive; criterio vacío siempre pasa.
func contiene(valor, criterio string) bool {
	if criterio == "" {
		return true
	}
	return strings.Contains(strings.ToLower(valor), strings.ToLower(criterio))
}
