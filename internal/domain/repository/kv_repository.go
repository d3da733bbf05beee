package repository

// Claves fijas del almacenamiento local.
const (
	KeyEmployees = "employees_data"
	KeyAuthUser  = "auth_user"
)

// KeyValueStore define el puerto de almacenamiento local clave-valor (DIP).
// Get devuelve ok=false cuando la clave no existe. Set reemplaza el valor completo.
type KeyValueStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
}
