package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las operaciones los envuelven con fmt.Errorf("...: %w", ...) para conservar la causa.
var (
	// ErrValidation campo obligatorio ausente; se detecta antes de cualquier llamada remota.
	ErrValidation = errors.New("entrada inválida")
	// ErrAuthRequired mutación intentada sin una identidad autenticada.
	ErrAuthRequired = errors.New("usuario no autenticado")
	// ErrRemoteQuery fallo de lectura contra el almacén remoto.
	ErrRemoteQuery = errors.New("consulta remota fallida")
	// ErrRemoteWrite fallo de escritura (create/update/delete) contra el almacén remoto.
	ErrRemoteWrite = errors.New("escritura remota fallida")
)

// La ausencia de un registro en una búsqueda puntual NO es un error:
// los adaptadores devuelven (nil, nil), igual que una consulta sin filas.
