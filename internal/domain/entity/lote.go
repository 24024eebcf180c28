package entity

import "time"

// Estados de un lote. El alta siempre estampa StatusAtivo; otros valores
// llegan del almacén remoto y se conservan tal cual.
const StatusAtivo = "ativo"

// Lote representa un lote de producción textil, la entidad principal de inventario.
// Los tags JSON corresponden a las columnas de la colección remota `lotes`;
// ID, CreatedAt y UpdatedAt los asigna el almacén y son inmutables para el cliente.
type Lote struct {
	ID            string `json:"id,omitempty"`
	Codigo        string `json:"codigo_lote"` // clave de negocio, única, obligatoria
	Gramatura     string `json:"gramatura,omitempty"`
	Fio           string `json:"fio,omitempty"`
	Largura       string `json:"largura,omitempty"`
	Cor           string `json:"cor,omitempty"`
	Artigo        string `json:"artigo,omitempty"`
	Tecelagem     string `json:"tecelagem,omitempty"`
	NumeroMaquina string `json:"numero_maquina_tear,omitempty"`
	Status        string `json:"status,omitempty"`

	// Identidad del usuario que creó el lote, desnormalizada en el alta.
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`

	// Cliente vinculado (opcional). El nombre se duplica para mostrarlo sin join;
	// una referencia colgante se tolera y se muestra como ausente.
	ClienteID   string `json:"cliente_id,omitempty"`
	ClienteNome string `json:"cliente_nome,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// LotePatch actualización parcial de un lote. Solo los campos no-nil viajan
// en el PATCH remoto; el resto del registro queda intacto.
type LotePatch struct {
	Gramatura     *string `json:"gramatura,omitempty"`
	Fio           *string `json:"fio,omitempty"`
	Largura       *string `json:"largura,omitempty"`
	Cor           *string `json:"cor,omitempty"`
	Artigo        *string `json:"artigo,omitempty"`
	Tecelagem     *string `json:"tecelagem,omitempty"`
	NumeroMaquina *string `json:"numero_maquina_tear,omitempty"`
	Status        *string `json:"status,omitempty"`
	ClienteID     *string `json:"cliente_id,omitempty"`
	ClienteNome   *string `json:"cliente_nome,omitempty"`
}
