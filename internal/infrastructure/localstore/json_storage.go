package localstore

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// JSONStorage helper tipado sobre un KeyValueStore. Los fallos de lectura,
// decodificación o escritura se registran y nunca se propagan: una lectura
// fallida equivale a "sin datos" y una escritura fallida se descarta.
type JSONStorage struct {
	kv  repository.KeyValueStore
	log zerolog.Logger
}

// NewJSONStorage construye el helper.
func NewJSONStorage(kv repository.KeyValueStore, log zerolog.Logger) *JSONStorage {
	return &JSONStorage{kv: kv, log: log}
}

// Get decodifica el valor de key en dst. Devuelve false si la clave no existe
// o si la lectura/decodificación falla.
func (s *JSONStorage) Get(key string, dst any) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error leyendo del almacenamiento local")
		return false
	}
	if !ok || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("contenido corrupto en el almacenamiento local")
		return false
	}
	return true
}

// Set codifica value y reemplaza el contenido de key. Devuelve false si falló.
func (s *JSONStorage) Set(key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error codificando para el almacenamiento local")
		return false
	}
	if err := s.kv.Set(key, raw); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error guardando en el almacenamiento local")
		return false
	}
	return true
}

// Remove elimina key. Devuelve false si falló.
func (s *JSONStorage) Remove(key string) bool {
	if err := s.kv.Remove(key); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error eliminando del almacenamiento local")
		return false
	}
	return true
}
