// Package remote implementa el acceso a las colecciones del almacén remoto
// a través de su interfaz de consulta REST (dialecto PostgREST): select con
// filtros, insert, update por id y delete por id.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tu-usuario/textil-lotes/internal/domain"
	"github.com/tu-usuario/textil-lotes/pkg/logger"
)

// Config parámetros de conexión al almacén remoto.
type Config struct {
	BaseURL string        // ej. https://xyz.supabase.co
	APIKey  string        // clave de servicio; viaja como apikey y Bearer
	Timeout time.Duration // 0 = 15 s
}

// Client cliente de una instancia del almacén remoto.
// Usa net/http de la stdlib; no requiere librerías de terceros.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente REST. El timeout aplica a cada llamada
// completa (conexión + respuesta); no hay reintentos: un fallo se reporta una vez.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Select consulta una colección y decodifica las filas en dest
// (puntero a slice). Un resultado vacío deja el slice vacío, sin error.
func (c *Client) Select(ctx context.Context, coleccion string, q Query, dest any) error {
	params := q.encode()
	body, err := c.do(ctx, http.MethodGet, coleccion, params, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: select %s: %w", domain.ErrRemoteQuery, coleccion, err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: select %s: decodificar filas: %w", domain.ErrRemoteQuery, coleccion, err)
	}
	return nil
}

// Insert inserta una fila y decodifica en dest la representación autoritativa
// devuelta por el almacén (fila con id y timestamps asignados).
func (c *Client) Insert(ctx context.Context, coleccion string, fila, dest any) error {
	payload, err := json.Marshal(fila)
	if err != nil {
		return fmt.Errorf("%w: insert %s: codificar fila: %w", domain.ErrRemoteWrite, coleccion, err)
	}
	body, err := c.do(ctx, http.MethodPost, coleccion, nil, payload, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return fmt.Errorf("%w: insert %s: %w", domain.ErrRemoteWrite, coleccion, err)
	}
	if err := primeraFila(body, dest); err != nil {
		return fmt.Errorf("%w: insert %s: %w", domain.ErrRemoteWrite, coleccion, err)
	}
	return nil
}

// Update aplica un parche parcial a la fila identificada por id y decodifica
// en dest el registro resultante. Un id desconocido para el almacén (cero
// filas afectadas) es un error de escritura.
func (c *Client) Update(ctx context.Context, coleccion, id string, patch, dest any) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("%w: update %s: codificar parche: %w", domain.ErrRemoteWrite, coleccion, err)
	}
	params := url.Values{"id": {"eq." + id}}
	body, err := c.do(ctx, http.MethodPatch, coleccion, params, payload, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return fmt.Errorf("%w: update %s: %w", domain.ErrRemoteWrite, coleccion, err)
	}
	if err := primeraFila(body, dest); err != nil {
		return fmt.Errorf("%w: update %s id %s: %w", domain.ErrRemoteWrite, coleccion, id, err)
	}
	return nil
}

// Delete elimina la fila identificada por id. El almacén responde 204 tanto
// si la fila existía como si no; la idempotencia local la resuelve el caché.
func (c *Client) Delete(ctx context.Context, coleccion, id string) error {
	params := url.Values{"id": {"eq." + id}}
	if _, err := c.do(ctx, http.MethodDelete, coleccion, params, nil, nil); err != nil {
		return fmt.Errorf("%w: delete %s id %s: %w", domain.ErrRemoteWrite, coleccion, id, err)
	}
	return nil
}

// do arma la petición, la ejecuta y devuelve el cuerpo. Cualquier estado
// fuera de 2xx es un error con el cuerpo incluido para diagnóstico.
func (c *Client) do(ctx context.Context, metodo, coleccion string, params url.Values, payload []byte, headers map[string]string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, coleccion)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, metodo, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().
			Str("metodo", metodo).
			Str("coleccion", coleccion).
			Int("status", resp.StatusCode).
			Msg("respuesta no exitosa del almacén remoto")
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}

// primeraFila decodifica en dest el primer elemento del arreglo JSON devuelto
// con return=representation. Un arreglo vacío significa cero filas afectadas.
func primeraFila(body []byte, dest any) error {
	var filas []json.RawMessage
	if err := json.Unmarshal(body, &filas); err != nil {
		return fmt.Errorf("decodificar representación: %w", err)
	}
	if len(filas) == 0 {
		return fmt.Errorf("el almacén no devolvió filas afectadas")
	}
	return json.Unmarshal(filas[0], dest)
}
