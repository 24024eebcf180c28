// Package cache implementa los caches de entidades de la sesión: instantáneas
// ordenadas en memoria que espejan las colecciones remotas y solo reflejan
// estado confirmado (nunca se aplican escrituras de forma optimista).
package cache

import "github.com/tu-usuario/textil-lotes/pkg/logger"

// Notifier puerto de notificaciones hacia el usuario. Cada mutación emite
// exactamente un resultado; el destino es fire-and-forget.
type Notifier interface {
	Exito(titulo, mensaje string)
	Error(titulo, mensaje string)
}

// LogNotifier implementación de Notifier sobre el logger estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Exito notifica el resultado exitoso de una operación.
func (n *LogNotifier) Exito(titulo, mensaje string) {
	n.log.Info().Str("titulo", titulo).Msg(mensaje)
}

// Error notifica el fallo de una operación.
func (n *LogNotifier) Error(titulo, mensaje string) {
	n.log.Warn().Str("titulo", titulo).Msg(mensaje)
}
