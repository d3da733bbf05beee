// Package view contiene el estado efímero de la vista de lista: página, tamaño
// de página, selección de filas y modo de visualización. Nada de esto se persiste.
package view

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// ViewMode tabla o tarjetas.
type ViewMode string

const (
	ViewModeTable ViewMode = "table"
	ViewModeGrid  ViewMode = "grid"
)

// ViewModes modos admitidos.
func ViewModes() []ViewMode { return []ViewMode{ViewModeTable, ViewModeGrid} }

// ParseViewMode valida un modo de vista.
func ParseViewMode(s string) (ViewMode, error) {
	m := ViewMode(s)
	if !slices.Contains(ViewModes(), m) {
		return "", fmt.Errorf("%w: modo de vista %q", domain.ErrInvalidInput, s)
	}
	return m, nil
}

// DefaultPageSize tamaño de página inicial.
const DefaultPageSize = 10

// PageSizes tamaños de página ofrecidos por el selector.
func PageSizes() []int { return []int{10, 20, 30, 40, 50} }

// Store lo que la vista consume del directorio.
type Store interface {
	FilteredEmployees() []entity.Employee
	Filters() entity.Filters
	Stats() entity.Stats
	DeleteMany(ids []string) int
}

// Page corte de la lista filtrada.
type Page struct {
	Items      []entity.Employee
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// ListView estado de la vista de lista. Cualquier cambio de filtros del store
// o de tamaño de página vuelve a la página 1 y limpia la selección.
type ListView struct {
	mu       sync.Mutex
	store    Store
	page     int
	pageSize int
	mode     ViewMode
	selected map[string]struct{}
	filters  entity.Filters // filtros vistos en la última sincronización
}

// NewListView construye la vista en la página 1, tamaño por defecto y modo tabla.
func NewListView(store Store) *ListView {
	return &ListView{
		store:    store,
		page:     1,
		pageSize: DefaultPageSize,
		mode:     ViewModeTable,
		selected: map[string]struct{}{},
		filters:  store.Filters(),
	}
}

// TotalPages ceil(total/pageSize); 0 si no hay registros.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate corte puro [(page-1)*pageSize, page*pageSize) acotado a la lista.
func Paginate(list []entity.Employee, page, pageSize int) []entity.Employee {
	if page < 1 || pageSize <= 0 {
		return []entity.Employee{}
	}
	start := (page - 1) * pageSize
	if start >= len(list) {
		return []entity.Employee{}
	}
	end := min(start+pageSize, len(list))
	return list[start:end]
}

// syncLocked detecta cambios de filtros y poda la selección a los IDs que siguen
// en la lista filtrada. Devuelve la lista filtrada vigente.
func (v *ListView) syncLocked() []entity.Employee {
	if f := v.store.Filters(); f != v.filters {
		v.filters = f
		v.resetLocked()
	}
	filtered := v.store.FilteredEmployees()
	if len(v.selected) > 0 {
		visible := make(map[string]struct{}, len(filtered))
		for _, e := range filtered {
			visible[e.ID] = struct{}{}
		}
		for id := range v.selected {
			if _, ok := visible[id]; !ok {
				delete(v.selected, id)
			}
		}
	}
	if pages := TotalPages(len(filtered), v.pageSize); pages > 0 && v.page > pages {
		v.page = pages
	}
	return filtered
}

func (v *ListView) resetLocked() {
	v.page = 1
	clear(v.selected)
}

// Current página vigente de la lista filtrada.
func (v *ListView) Current() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := v.syncLocked()
	return Page{
		Items:      Paginate(filtered, v.page, v.pageSize),
		Page:       v.page,
		PageSize:   v.pageSize,
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered), v.pageSize),
	}
}

// SetPage cambia de página; no toca la selección.
func (v *ListView) SetPage(page int) error {
	if page < 1 {
		return fmt.Errorf("%w: página %d", domain.ErrInvalidInput, page)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.syncLocked()
	v.page = page
	v.syncLocked()
	return nil
}

// SetPageSize cambia el tamaño de página, vuelve a la página 1 y limpia la selección.
func (v *ListView) SetPageSize(size int) error {
	if !slices.Contains(PageSizes(), size) {
		return fmt.Errorf("%w: tamaño de página %d", domain.ErrInvalidInput, size)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.syncLocked()
	if size != v.pageSize {
		v.pageSize = size
		v.resetLocked()
	}
	return nil
}

// SetViewMode alterna entre tabla y tarjetas.
func (v *ListView) SetViewMode(mode ViewMode) error {
	if !slices.Contains(ViewModes(), mode) {
		return fmt.Errorf("%w: modo de vista %q", domain.ErrInvalidInput, mode)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
	return nil
}

// ViewMode modo vigente.
func (v *ListView) ViewMode() ViewMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

// ToggleSelection marca o desmarca un ID de la lista filtrada. Devuelve si quedó
// seleccionado; ErrNotFound si el ID no está en la lista filtrada.
func (v *ListView) ToggleSelection(id string) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := v.syncLocked()
	idx := slices.IndexFunc(filtered, func(e entity.Employee) bool { return e.ID == id })
	if idx < 0 {
		return false, domain.ErrNotFound
	}
	// la clave es el ID del registro, no el argumento: id puede apuntar a un buffer ajeno
	key := filtered[idx].ID
	if _, ok := v.selected[key]; ok {
		delete(v.selected, key)
		return false, nil
	}
	v.selected[key] = struct{}{}
	return true, nil
}

// SelectAll selecciona todos los IDs de la lista filtrada (no solo la página).
func (v *ListView) SelectAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.syncLocked() {
		v.selected[e.ID] = struct{}{}
	}
}

// DeselectAll limpia la selección.
func (v *ListView) DeselectAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.selected)
}

// Selection IDs seleccionados en el orden de la lista filtrada.
func (v *ListView) Selection() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selectionLocked(v.syncLocked())
}

func (v *ListView) selectionLocked(filtered []entity.Employee) []string {
	ids := make([]string, 0, len(v.selected))
	for _, e := range filtered {
		if _, ok := v.selected[e.ID]; ok {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// DeleteSelected elimina la selección en un solo lote y la limpia.
// Devuelve cuántos registros se pidió eliminar.
func (v *ListView) DeleteSelected() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := v.selectionLocked(v.syncLocked())
	if len(ids) == 0 {
		return 0
	}
	n := v.store.DeleteMany(ids)
	clear(v.selected)
	v.syncLocked()
	return n
}

// Snapshot estado completo de la vista listo para la respuesta HTTP.
func (v *ListView) Snapshot(now time.Time) dto.EmployeeListResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := v.syncLocked()
	selection := v.selectionLocked(filtered)

	return dto.EmployeeListResponse{
		Items: PresentAll(Paginate(filtered, v.page, v.pageSize), now),
		Page: dto.PageResponse{
			Page:       v.page,
			PageSize:   v.pageSize,
			Total:      len(filtered),
			TotalPages: TotalPages(len(filtered), v.pageSize),
			PageSizes:  PageSizes(),
		},
		Filters:  v.filters,
		Stats:    v.store.Stats(),
		ViewMode: string(v.mode),
		Selection: dto.SelectionResponse{
			IDs:         selection,
			Count:       len(selection),
			AllSelected: len(filtered) > 0 && len(selection) == len(filtered),
		},
	}
}
