package dto

// DashboardResponse contadores del panel de entrada.
// LotesLocales viene del almacén clave-valor heredado y no es autoritativo.
type DashboardResponse struct {
	Lotes        int `json:"lotes"`
	Clientes     int `json:"clientes"`
	LotesLocales int `json:"lotes_locales"`
}
