package dto

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// FiltersRequest cambios de filtros; los campos ausentes no se tocan.
type FiltersRequest struct {
	SearchQuery *string `json:"search_query"`
	Gender      *string `json:"gender"`
	Status      *string `json:"status"`
}

// ViewRequest cambios de la vista de lista; los campos ausentes no se tocan.
type ViewRequest struct {
	Page     *int    `json:"page"`
	PageSize *int    `json:"page_size"`
	ViewMode *string `json:"view_mode"`
}

// SelectAllRequest all=true selecciona todo el listado filtrado; false limpia la selección.
type SelectAllRequest struct {
	All bool `json:"all"`
}

// SelectionResponse selección vigente.
type SelectionResponse struct {
	IDs         []string `json:"ids"`
	Count       int      `json:"count"`
	AllSelected bool     `json:"all_selected"`
}

// EmployeeListResponse respuesta de GET /api/employees.
type EmployeeListResponse struct {
	Items     []EmployeeResponse `json:"items"`
	Page      PageResponse       `json:"page"`
	Filters   entity.Filters     `json:"filters"`
	Stats     entity.Stats       `json:"stats"`
	ViewMode  string             `json:"view_mode"`
	Selection SelectionResponse  `json:"selection"`
}
