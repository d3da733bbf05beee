package entity

import (
	"fmt"
	"strings"
)

// GenderFilter filtro por género: "all" o un Gender.
type GenderFilter string

// GenderFilterAll no filtra por género.
const GenderFilterAll GenderFilter = "all"

// ParseGenderFilter acepta "all" o cualquier valor de Gender.
func ParseGenderFilter(s string) (GenderFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(GenderFilterAll) {
		return GenderFilterAll, nil
	}
	g, err := ParseGender(s)
	if err != nil {
		return "", fmt.Errorf("filtro de género inválido: %q", s)
	}
	return GenderFilter(g), nil
}

// Matches indica si el género del registro pasa el filtro.
func (f GenderFilter) Matches(g Gender) bool {
	return f == GenderFilterAll || Gender(f) == g
}

// StatusFilter filtro por estado activo/inactivo.
type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// ParseStatusFilter acepta all, active o inactive.
func ParseStatusFilter(s string) (StatusFilter, error) {
	f := StatusFilter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return StatusFilterAll, nil
	case StatusFilterAll, StatusFilterActive, StatusFilterInactive:
		return f, nil
	default:
		return "", fmt.Errorf("filtro de estado inválido: %q", s)
	}
}

// Matches indica si isActive pasa el filtro.
func (f StatusFilter) Matches(isActive bool) bool {
	switch f {
	case StatusFilterActive:
		return isActive
	case StatusFilterInactive:
		return !isActive
	default:
		return true
	}
}

// Filters los tres filtros de la vista de lista, combinados con AND.
// No se persisten: cada inicialización arranca con DefaultFilters.
type Filters struct {
	SearchQuery string       `json:"search_query"`
	Gender      GenderFilter `json:"gender"`
	Status      StatusFilter `json:"status"`
}

// DefaultFilters filtros "sin filtro".
func DefaultFilters() Filters {
	return Filters{SearchQuery: "", Gender: GenderFilterAll, Status: StatusFilterAll}
}

// Matches aplica búsqueda (subcadena sin distinguir mayúsculas sobre FullName), género y estado.
func (f Filters) Matches(e Employee) bool {
	if f.SearchQuery != "" && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(f.SearchQuery)) {
		return false
	}
	return f.Gender.Matches(e.Gender) && f.Status.Matches(e.IsActive)
}

// Stats resumen de la plantilla completa (independiente de los filtros).
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ComputeStats cuenta total, activos e inactivos.
func ComputeStats(employees []Employee) Stats {
	active := 0
	for _, e := range employees {
		if e.IsActive {
			active++
		}
	}
	return Stats{Total: len(employees), Active: active, Inactive: len(employees) - active}
}
