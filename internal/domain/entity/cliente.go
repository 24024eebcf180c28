package entity

import "time"

// Cliente representa un cliente del taller, opcionalmente vinculado a lotes.
// Tags JSON según la colección remota `clientes`.
type Cliente struct {
	ID         string `json:"id,omitempty"`
	Nome       string `json:"nome"`   // obligatorio
	Codigo     string `json:"codigo"` // obligatorio
	Observacao string `json:"observacao,omitempty"`

	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ClientePatch actualización parcial de un cliente.
type ClientePatch struct {
	Nome       *string `json:"nome,omitempty"`
	Codigo     *string `json:"codigo,omitempty"`
	Observacao *string `json:"observacao,omitempty"`
}
