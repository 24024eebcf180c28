package dto

import (
	"time"

	"github.com/tu-usuario/textil-lotes/internal/domain/entity"
)

// CreateLoteRequest entrada para dar de alta un lote.
// Solo codigo_lote es obligatorio; identidad y status los estampa el caché.
type CreateLoteRequest struct {
	Codigo        string `json:"codigo_lote"`
	Gramatura     string `json:"gramatura"`
	Fio           string `json:"fio"`
	Largura       string `json:"largura"`
	Cor           string `json:"cor"`
	Artigo        string `json:"artigo"`
	Tecelagem     string `json:"tecelagem"`
	NumeroMaquina string `json:"numero_maquina_tear"`
	ClienteID     string `json:"cliente_id"`
	ClienteNome   string `json:"cliente_nome"`
}

// Entity convierte la entrada en el borrador de entidad.
func (r CreateLoteRequest) Entity() entity.Lote {
	return entity.Lote{
		Codigo:        r.Codigo,
		Gramatura:     r.Gramatura,
		Fio:           r.Fio,
		Largura:       r.Largura,
		Cor:           r.Cor,
		Artigo:        r.Artigo,
		Tecelagem:     r.Tecelagem,
		NumeroMaquina: r.NumeroMaquina,
		ClienteID:     r.ClienteID,
		ClienteNome:   r.ClienteNome,
	}
}

// UpdateLoteRequest parche parcial de un lote (campos nil no viajan).
type UpdateLoteRequest struct {
	Gramatura     *string `json:"gramatura"`
	Fio           *string `json:"fio"`
	Largura       *string `json:"largura"`
	Cor           *string `json:"cor"`
	Artigo        *string `json:"artigo"`
	Tecelagem     *string `json:"tecelagem"`
	NumeroMaquina *string `json:"numero_maquina_tear"`
	Status        *string `json:"status"`
	ClienteID     *string `json:"cliente_id"`
	ClienteNome   *string `json:"cliente_nome"`
}

// Patch convierte la entrada en el parche de entidad.
func (r UpdateLoteRequest) Patch() entity.LotePatch {
	return entity.LotePatch{
		Gramatura:     r.Gramatura,
		Fio:           r.Fio,
		Largura:       r.Largura,
		Cor:           r.Cor,
		Artigo:        r.Artigo,
		Tecelagem:     r.Tecelagem,
		NumeroMaquina: r.NumeroMaquina,
		Status:        r.Status,
		ClienteID:     r.ClienteID,
		ClienteNome:   r.ClienteNome,
	}
}

// LoteFiltrosQuery parámetros de filtrado/ordenamiento de la grilla de lotes.
// desde/hasta en formato 2006-01-02; la cota superior cubre el día completo.
type LoteFiltrosQuery struct {
	Codigo  string `query:"codigo"`
	Usuario string `query:"usuario"`
	Desde   string `query:"desde"`
	Hasta   string `query:"hasta"`
	Orden   string `query:"orden"` // nombre de columna remota
	Dir     string `query:"dir"`   // asc | desc | (vacío = sin orden)
}

// Fechas interpreta las cotas de fecha; errores de formato se tratan como ausentes.
func (q LoteFiltrosQuery) Fechas() (desde, hasta time.Time) {
	if t, err := time.Parse("2006-01-02", q.Desde); err == nil {
		desde = t
	}
	if t, err := time.Parse("2006-01-02", q.Hasta); err == nil {
		hasta = t.Add(24*time.Hour - time.Second)
	}
	return desde, hasta
}

// ListadoLotesResponse grilla de lotes con su total.
type ListadoLotesResponse struct {
	Total int            `json:"total"`
	Lotes []*entity.Lote `json:"lotes"`
}
