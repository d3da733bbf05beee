// Package directory contiene el estado autoritativo del directorio de empleados:
// colección en memoria sincronizada con el almacenamiento local, vistas derivadas
// (lista filtrada y estadísticas) y las operaciones de mutación.
package directory

import (
	"slices"
	"sync"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// Storage puerto de persistencia JSON con fallos ya registrados y absorbidos
// (lo implementa *localstore.JSONStorage).
type Storage interface {
	Get(key string, dst any) bool
	Set(key string, value any) bool
}

// Option configura el EmployeeStore.
type Option func(*EmployeeStore)

// WithSeed reemplaza la colección semilla por defecto.
func WithSeed(seed []entity.Employee) Option {
	return func(s *EmployeeStore) { s.seed = cloneAll(seed) }
}

// WithSeedOnEmpty activa o desactiva la siembra en la primera carga vacía.
func WithSeedOnEmpty(enabled bool) Option {
	return func(s *EmployeeStore) { s.seedOnEmpty = enabled }
}

// WithIDGenerator reemplaza el generador de IDs (tests).
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *EmployeeStore) { s.newID = gen }
}

// EmployeeStore único dueño de la colección de empleados de la sesión.
//
// Un solo escritor, muchos lectores: cada operación corre completa bajo el mutex
// y las vistas derivadas se recalculan antes de soltarlo, así que ninguna lectura
// posterior ve estado viejo. Los filtros viven solo en memoria.
type EmployeeStore struct {
	mu      sync.RWMutex
	storage Storage

	loading     bool
	employees   []entity.Employee // más nuevo primero
	filters     entity.Filters
	filtered    []entity.Employee
	stats       entity.Stats
	seed        []entity.Employee
	seedOnEmpty bool
	newID       IDGenerator
}

// NewEmployeeStore construye el store en estado "cargando". Llamar Initialize
// antes de exponerlo a las vistas.
func NewEmployeeStore(storage Storage, opts ...Option) *EmployeeStore {
	s := &EmployeeStore{
		storage:     storage,
		loading:     true,
		filters:     entity.DefaultFilters(),
		seed:        SeedEmployees(),
		seedOnEmpty: true,
		newID:       NewEmployeeID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize carga la colección persistida o, si no hay datos, adopta la semilla
// y la escribe de inmediato. Solo la primera llamada tiene efecto.
func (s *EmployeeStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
}

func (s *EmployeeStore) initLocked() {
	if !s.loading {
		return
	}
	var saved []entity.Employee
	if s.storage.Get(repository.KeyEmployees, &saved) && len(saved) > 0 {
		s.employees = saved
	} else if s.seedOnEmpty {
		s.employees = cloneAll(s.seed)
		s.storage.Set(repository.KeyEmployees, s.employees)
	} else {
		s.employees = []entity.Employee{}
	}
	s.loading = false
	s.recomputeLocked()
}

// IsLoading true hasta que termina Initialize.
func (s *EmployeeStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Employees colección completa, más nuevo primero.
func (s *EmployeeStore) Employees() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.employees)
}

// FilteredEmployees registros que pasan los tres filtros, en el orden de la colección.
func (s *EmployeeStore) FilteredEmployees() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.filtered)
}

// Stats estadísticas de la colección completa; no dependen de los filtros.
func (s *EmployeeStore) Stats() entity.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Filters filtros vigentes.
func (s *EmployeeStore) Filters() entity.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Recent primeros n registros de la colección (los más nuevos).
func (s *EmployeeStore) Recent(n int) []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.employees) {
		n = len(s.employees)
	}
	if n < 0 {
		n = 0
	}
	return cloneAll(s.employees[:n])
}

// GetByID búsqueda pura, sin mutación ni persistencia.
func (s *EmployeeStore) GetByID(id string) (entity.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return entity.Employee{}, false
	}
	return s.employees[idx].Clone(), true
}

// Add asigna un ID nuevo, antepone el registro a la colección y persiste.
func (s *EmployeeStore) Add(data entity.EmployeeFormData) entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	emp := entity.Employee{
		ID:           s.uniqueIDLocked(),
		FullName:     data.FullName,
		Gender:       data.Gender,
		DOB:          data.DOB,
		State:        data.State,
		IsActive:     data.IsActive,
		ProfileImage: data.ProfileImage.Clone(),
	}
	s.employees = slices.Insert(s.employees, 0, emp)
	s.commitLocked()
	return emp.Clone()
}

// Update reemplaza solo los campos presentes en patch. Si el ID no existe no hace nada.
func (s *EmployeeStore) Update(id string, patch entity.EmployeePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	if idx := s.indexLocked(id); idx >= 0 {
		s.employees[idx] = patch.Apply(s.employees[idx])
	}
	s.commitLocked()
}

// Delete elimina el registro; si no existe no hace nada.
func (s *EmployeeStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	s.employees = slices.DeleteFunc(s.employees, func(e entity.Employee) bool { return e.ID == id })
	s.commitLocked()
}

// DeleteMany elimina todos los IDs del conjunto en una pasada y persiste una sola vez.
// El orden relativo del resto se conserva. Con un conjunto vacío no hace nada.
// Devuelve cuántos registros eliminó.
func (s *EmployeeStore) DeleteMany(ids []string) int {
	if len(ids) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	before := len(s.employees)
	s.employees = slices.DeleteFunc(s.employees, func(e entity.Employee) bool {
		_, ok := set[e.ID]
		return ok
	})
	s.commitLocked()
	return before - len(s.employees)
}

// ToggleStatus invierte IsActive del registro; si no existe no hace nada.
func (s *EmployeeStore) ToggleStatus(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	if idx := s.indexLocked(id); idx >= 0 {
		s.employees[idx].IsActive = !s.employees[idx].IsActive
	}
	s.commitLocked()
}

// SetSearchQuery fija la búsqueda por nombre (no se persiste).
func (s *EmployeeStore) SetSearchQuery(q string) {
	s.updateFilters(func(f *entity.Filters) { f.SearchQuery = q })
}

// SetGenderFilter fija el filtro de género (no se persiste).
func (s *EmployeeStore) SetGenderFilter(g entity.GenderFilter) {
	s.updateFilters(func(f *entity.Filters) { f.Gender = g })
}

// SetStatusFilter fija el filtro de estado (no se persiste).
func (s *EmployeeStore) SetStatusFilter(st entity.StatusFilter) {
	s.updateFilters(func(f *entity.Filters) { f.Status = st })
}

// ClearFilters vuelve los tres filtros a "sin filtro" en una sola operación.
func (s *EmployeeStore) ClearFilters() {
	s.updateFilters(func(f *entity.Filters) { *f = entity.DefaultFilters() })
}

func (s *EmployeeStore) updateFilters(fn func(*entity.Filters)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
	fn(&s.filters)
	s.recomputeLocked()
}

// commitLocked recalcula las vistas derivadas y reescribe la colección completa.
// Un fallo de escritura ya quedó registrado por Storage; la memoria manda.
func (s *EmployeeStore) commitLocked() {
	s.recomputeLocked()
	s.storage.Set(repository.KeyEmployees, s.employees)
}

func (s *EmployeeStore) recomputeLocked() {
	filtered := make([]entity.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if s.filters.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	s.filtered = filtered
	s.stats = entity.ComputeStats(s.employees)
}

func (s *EmployeeStore) indexLocked(id string) int {
	return slices.IndexFunc(s.employees, func(e entity.Employee) bool { return e.ID == id })
}

func cloneAll(in []entity.Employee) []entity.Employee {
	out := make([]entity.Employee, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
