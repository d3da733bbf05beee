package localstore

import (
	"bytes"
	"sync"

	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*MemoryStore)(nil)

// MemoryStore almacenamiento clave-valor en memoria (tests y modo efímero).
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get devuelve una copia del valor.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Set reemplaza el valor completo.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = bytes.Clone(value)
	return nil
}

// Remove elimina la clave; no falla si no existe.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
