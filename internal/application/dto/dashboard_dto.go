package dto

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las estadísticas cubren toda la plantilla, sin importar los filtros de la lista.
type DashboardSummaryDTO struct {
	Stats  entity.Stats       `json:"stats"`
	Recent []EmployeeResponse `json:"recent"` // los más nuevos primero
}
