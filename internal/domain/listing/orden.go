package listing

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
)

// Direccion del ordenamiento de una columna (tri-estado).
type Direccion int

const (
	SinOrden Direccion = iota
	Ascendente
	Descendente
)

// Orden columna activa y su dirección. El valor cero (campo vacío,
// SinOrden) significa "conservar el orden de entrada".
type Orden struct {
	Campo string
	Dir   Direccion
}

// Siguiente devuelve el estado tras seleccionar una columna:
// sobre la misma columna cicla SinOrden → Ascendente → Descendente → SinOrden;
// sobre una columna distinta reinicia en Ascendente.
func (o Orden) Siguiente(campo string) Orden {
	if campo != o.Campo {
		return Orden{Campo: campo, Dir: Ascendente}
	}
	switch o.Dir {
	case SinOrden:
		return Orden{Campo: campo, Dir: Ascendente}
	case Ascendente:
		return Orden{Campo: campo, Dir: Descendente}
	default:
		return Orden{Campo: campo, Dir: SinOrden}
	}
}

// clave valor de ordenamiento de un registro: texto o fecha, y si está presente.
// Un valor ausente (texto vacío / fecha cero) ordena al final sin importar la dirección.
type clave struct {
	texto    string
	fecha    time.Time
	esFecha  bool
	presente bool
}

func claveTexto(s string) clave { return clave{texto: s, presente: s != ""} }

func claveFecha(t time.Time) clave {
	return clave{fecha: t, esFecha: true, presente: !t.IsZero()}
}

// OrdenarLotes devuelve una copia de la lista ordenada según `orden`.
// El ordenamiento es estable: registros con clave igual conservan su orden relativo.
func OrdenarLotes(lotes []*entity.Lote, orden Orden) []*entity.Lote {
	out := make([]*entity.Lote, len(lotes))
	copy(out, lotes)
	if orden.Dir == SinOrden || orden.Campo == "" {
		return out
	}
	col := collatorPTBR()
	sort.SliceStable(out, func(i, j int) bool {
		return menor(claveLote(out[i], orden.Campo), claveLote(out[j], orden.Campo), orden.Dir, col)
	})
	return out
}

// OrdenarClientes devuelve una copia de la lista ordenada según `orden`.
func OrdenarClientes(clientes []*entity.Cliente, orden Orden) []*entity.Cliente {
	out := make([]*entity.Cliente, len(clientes))
	copy(out, clientes)
	if orden.Dir == SinOrden || orden.Campo == "" {
		return out
	}
	col := collatorPTBR()
	sort.SliceStable(out, func(i, j int) bool {
		return menor(claveCliente(out[i], orden.Campo), claveCliente(out[j], orden.Campo), orden.Dir, col)
	})
	return out
}

// collatorPTBR colación portuguesa (la UI formatea en pt-BR).
// collate.Collator no es seguro para uso concurrente: se crea uno por llamada.
func collatorPTBR() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
}

// menor implementa la política de comparación: ausentes al final siempre,
// textos con colación, fechas por orden natural; Descendente invierte solo
// la comparación entre presentes.
func menor(a, b clave, dir Direccion, col *collate.Collator) bool {
	if a.presente != b.presente {
		return a.presente
	}
	if !a.presente {
		return false
	}
	var cmp int
	if a.esFecha {
		switch {
		case a.fecha.Before(b.fecha):
			cmp = -1
		case a.fecha.After(b.fecha):
			cmp = 1
		}
	} else {
		cmp = col.CompareString(a.texto, b.texto)
	}
	if dir == Descendente {
		cmp = -cmp
	}
	return cmp < 0
}

// claveLote extrae la clave de la columna indicada (nombres de columna remota).
// Una columna desconocida se trata como ausente.
func claveLote(l *entity.Lote, campo string) clave {
	switch campo {
	case "codigo_lote":
		return claveTexto(l.Codigo)
	case "gramatura":
		return claveTexto(l.Gramatura)
	case "fio":
		return claveTexto(l.Fio)
	case "largura":
		return claveTexto(l.Largura)
	case "cor":
		return claveTexto(l.Cor)
	case "artigo":
		return claveTexto(l.Artigo)
	case "tecelagem":
		return claveTexto(l.Tecelagem)
	case "numero_maquina_tear":
		return claveTexto(l.NumeroMaquina)
	case "status":
		return claveTexto(l.Status)
	case "user_name":
		return claveTexto(l.UserName)
	case "cliente_nome":
		return claveTexto(l.ClienteNome)
	case "created_at":
		return claveFecha(l.CreatedAt)
	case "updated_at":
		return claveFecha(l.UpdatedAt)
	default:
		return clave{}
	}
}

func claveCliente(c *entity.Cliente, campo string) clave {
	switch campo {
	case "nome":
		return claveTexto(c.Nome)
	case "codigo":
		return claveTexto(c.Codigo)
	case "observacao":
		return claveTexto(c.Observacao)
	case "user_name":
		return claveTexto(c.UserName)
	case "created_at":
		return claveFecha(c.CreatedAt)
	case "updated_at":
		return claveFecha(c.UpdatedAt)
	default:
		return clave{}
	}
}
