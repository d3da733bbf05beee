package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	PageSizes  []int `json:"page_sizes"`
}

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de validación
// (campo del formulario → mensaje).
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
