package directory

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produce IDs opacos de empleado.
type IDGenerator func() string

const (
	employeeIDPrefix = "EMP-"
	maxIDAttempts    = 16
)

// NewEmployeeID genera un ID con formato EMP-XXXXXXXX (8 hex en mayúscula, derivados de un UUID v4).
func NewEmployeeID() string {
	return employeeIDPrefix + strings.ToUpper(uuid.NewString()[:8])
}

// uniqueIDLocked pide IDs al generador hasta obtener uno libre en la colección.
// Si el generador repite demasiadas veces se usa un sufijo UUID completo.
func (s *EmployeeStore) uniqueIDLocked() string {
	for range maxIDAttempts {
		id := s.newID()
		if s.indexLocked(id) < 0 {
			return id
		}
	}
	return employeeIDPrefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
