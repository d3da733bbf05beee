package dto

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// EmployeeRequest entrada de alta y edición. En PUT solo se aplican los campos enviados;
// profileImage "" quita la foto.
type EmployeeRequest struct {
	FullName     *string `json:"fullName"`
	Gender       *string `json:"gender"`
	DOB          *string `json:"dob"`
	State        *string `json:"state"`
	IsActive     *bool   `json:"isActive"`
	ProfileImage *string `json:"profileImage"`
}

// EmployeeResponse registro con los campos derivados que muestran tabla, tarjeta y ficha.
type EmployeeResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Gender       string `json:"gender"`
	DOB          string `json:"dob"`
	State        string `json:"state"`
	IsActive     bool   `json:"isActive"`
	ProfileImage string `json:"profileImage,omitempty"`

	Initials    string `json:"initials"`
	Age         int    `json:"age"`
	GenderLabel string `json:"gender_label"`
	DOBDisplay  string `json:"dob_display"`
	StatusLabel string `json:"status_label"`
}

// BulkDeleteRequest IDs a eliminar en un solo lote.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResponse resultado de un borrado masivo.
type BulkDeleteResponse struct {
	Deleted int          `json:"deleted"`
	Stats   entity.Stats `json:"stats"`
}

// CatalogResponse opciones de los selects del formulario.
type CatalogResponse struct {
	Genders   []string `json:"genders"`
	States    []string `json:"states"`
	PageSizes []int    `json:"page_sizes"`
	ViewModes []string `json:"view_modes"`
}
