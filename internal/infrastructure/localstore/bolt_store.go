// Package localstore implementa el almacenamiento local clave-valor del directorio:
// un archivo bbolt en disco (equivalente al localStorage del navegador) y una variante en memoria.
package localstore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*BoltStore)(nil)

// bucketName bucket único donde viven todas las claves.
var bucketName = []byte("localstore")

// ErrEmptyKey la clave no puede ser vacía.
var ErrEmptyKey = errors.New("localstore: clave vacía")

// BoltStore almacenamiento clave-valor sobre un archivo bbolt.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore abre (o crea) el archivo en dir/file y asegura el bucket.
func OpenBoltStore(dir, file string) (*BoltStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	path := filepath.Join(dir, file)
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("localstore: abrir %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localstore: crear bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Get lee el valor de la clave.
func (s *BoltStore) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			// el slice de bbolt solo es válido dentro de la transacción
			out = bytes.Clone(v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	return out, out != nil, nil
}

// Set escribe el valor completo en una transacción.
func (s *BoltStore) Set(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	}); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave; no falla si no existe.
func (s *BoltStore) Remove(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	}); err != nil {
		return fmt.Errorf("localstore: eliminar %s: %w", key, err)
	}
	return nil
}

// Close cierra el archivo.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
