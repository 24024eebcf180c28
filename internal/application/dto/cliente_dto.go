package dto

import "github.com/tu-usuario/textil-lotes/internal/domain/entity"

// CreateClienteRequest entrada para dar de alta un cliente.
type CreateClienteRequest struct {
	Nome       string `json:"nome"`
	Codigo     string `json:"codigo"`
	Observacao string `json:"observacao"`
}

// Entity convierte la entrada en el borrador de entidad.
func (r CreateClienteRequest) Entity() entity.Cliente {
	return entity.Cliente{
		Nome:       r.Nome,
		Codigo:     r.Codigo,
		Observacao: r.Observacao,
	}
}

// UpdateClienteRequest parche parcial de un cliente.
type UpdateClienteRequest struct {
	Nome       *string `json:"nome"`
	Codigo     *string `json:"codigo"`
	Observacao *string `json:"observacao"`
}

// Patch convierte la entrada en el parche de entidad.
func (r UpdateClienteRequest) Patch() entity.ClientePatch {
	return entity.ClientePatch{
		Nome:       r.Nome,
		Codigo:     r.Codigo,
		Observacao: r.Observacao,
	}
}

// ClienteFiltrosQuery filtros de la grilla de clientes.
type ClienteFiltrosQuery struct {
	Nome   string `query:"nome"`
	Codigo string `query:"codigo"`
	Orden  string `query:"orden"`
	Dir    string `query:"dir"`
}

// ListadoClientesResponse grilla de clientes con su total.
type ListadoClientesResponse struct {
	Total    int               `json:"total"`
	Clientes []*entity.Cliente `json:"clientes"`
}
