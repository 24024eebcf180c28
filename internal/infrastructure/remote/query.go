package remote

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Filtro predicado sobre una columna de la colección. Se construye con
// Eq, ILike, Gte, Lte y Or; la codificación sigue el dialecto PostgREST.
type Filtro struct {
	columna string
	op      string
	valor   string
	// ramas de un OR (solo con op == "or")
	izq, der *Filtro
}

// Eq igualdad exacta.
func Eq(columna, valor string) Filtro {
	return Filtro{columna: columna, op: "eq", valor: valor}
}

// ILike substring case-insensitive (se envuelve el término en comodines).
func ILike(columna, termino string) Filtro {
	return Filtro{columna: columna, op: "ilike", valor: "*" + termino + "*"}
}

// Gte cota inferior inclusiva (típicamente sobre una columna de timestamp).
func Gte(columna, valor string) Filtro {
	return Filtro{columna: columna, op: "gte", valor: valor}
}

// Lte cota superior inclusiva.
func Lte(columna, valor string) Filtro {
	return Filtro{columna: columna, op: "lte", valor: valor}
}

// Or disyunción de dos predicados de substring (búsqueda combinada nome/codigo).
func Or(a, b Filtro) Filtro {
	return Filtro{op: "or", izq: &a, der: &b}
}

// Query consulta de lectura: filtros en conjunción, orden por una columna
// y tope de filas. Limit 0 significa sin tope.
type Query struct {
	Filtros     []Filtro
	OrderBy     string
	Descendente bool
	Limit       int
}

// encode traduce la consulta a parámetros del protocolo.
func (q Query) encode() url.Values {
	params := url.Values{"select": {"*"}}
	for _, f := range q.Filtros {
		if f.op == "or" {
			params.Add("or", fmt.Sprintf("(%s,%s)", f.izq.inline(), f.der.inline()))
			continue
		}
		// Add, no Set: dos predicados sobre la misma columna (gte y lte de
		// un rango de fechas) viajan como claves repetidas.
		params.Add(f.columna, f.op+"."+f.valor)
	}
	if q.OrderBy != "" {
		dir := "asc"
		if q.Descendente {
			dir = "desc"
		}
		params.Set("order", q.OrderBy+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

// inline forma columna.op.valor usada dentro de or=(...).
// Las comas del valor se escapan para no romper la lista.
func (f *Filtro) inline() string {
	valor := strings.ReplaceAll(f.valor, ",", "\\,")
	return fmt.Sprintf("%s.%s.%s", f.columna, f.op, valor)
}
