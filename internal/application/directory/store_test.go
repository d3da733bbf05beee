package directory_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/directory"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// countingKV envuelve un MemoryStore y cuenta escrituras; puede fallar a demanda.
type countingKV struct {
	*localstore.MemoryStore
	sets      int
	failSet   bool
	failGet   bool
	lastValue []byte
}

func newCountingKV() *countingKV {
	return &countingKV{MemoryStore: localstore.NewMemoryStore()}
}

func (c *countingKV) Get(key string) ([]byte, bool, error) {
	if c.failGet {
		return nil, false, errors.New("lectura bloqueada")
	}
	return c.MemoryStore.Get(key)
}

func (c *countingKV) Set(key string, value []byte) error {
	c.sets++
	if c.failSet {
		return errors.New("QuotaExceededError")
	}
	c.lastValue = value
	return c.MemoryStore.Set(key, value)
}

func newStore(t *testing.T, kv repository.KeyValueStore, opts ...directory.Option) *directory.EmployeeStore {
	t.Helper()
	storage := localstore.NewJSONStorage(kv, zerolog.Nop())
	s := directory.NewEmployeeStore(storage, opts...)
	s.Initialize()
	return s
}

func persisted(t *testing.T, kv repository.KeyValueStore) []entity.Employee {
	t.Helper()
	raw, ok, err := kv.Get(repository.KeyEmployees)
	require.NoError(t, err)
	require.True(t, ok, "employees_data debe existir")
	var out []entity.Employee
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func ids(list []entity.Employee) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.ID
	}
	return out
}

func form(name string, g entity.Gender, active bool) entity.EmployeeFormData {
	return entity.EmployeeFormData{
		FullName: name,
		Gender:   g,
		DOB:      entity.NewDate(1990, time.January, 1),
		State:    "Karnataka",
		IsActive: active,
	}
}

// threeEmployees: 2 activos, 1 inactivo.
func threeEmployees() []entity.Employee {
	return []entity.Employee{
		{ID: "EMP-1", FullName: "Asha Kumar", Gender: entity.GenderFemale, DOB: entity.NewDate(1990, 1, 1), State: "Goa", IsActive: true},
		{ID: "EMP-2", FullName: "Ravi Kumar", Gender: entity.GenderMale, DOB: entity.NewDate(1985, 6, 1), State: "Kerala", IsActive: true},
		{ID: "EMP-3", FullName: "Alex Thomas", Gender: entity.GenderOther, DOB: entity.NewDate(1999, 3, 9), State: "Delhi", IsActive: false},
	}
}

func preload(t *testing.T, kv repository.KeyValueStore, list []entity.Employee) {
	t.Helper()
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	require.NoError(t, kv.Set(repository.KeyEmployees, raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicialización
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialize_AlmacenamientoVacioSiembraYPersiste(t *testing.T) {
	kv := localstore.NewMemoryStore()
	storage := localstore.NewJSONStorage(kv, zerolog.Nop())
	s := directory.NewEmployeeStore(storage)
	assert.True(t, s.IsLoading(), "antes de Initialize el store está cargando")

	s.Initialize()

	assert.False(t, s.IsLoading())
	assert.Equal(t, directory.SeedEmployees(), s.Employees())
	assert.Equal(t, directory.SeedEmployees(), persisted(t, kv),
		"la semilla debe quedar escrita bajo employees_data")
}

func TestInitialize_AdoptaColeccionPersistida(t *testing.T) {
	kv := newCountingKV()
	preload(t, kv, threeEmployees())
	kv.sets = 0

	s := newStore(t, kv)

	assert.Equal(t, threeEmployees(), s.Employees())
	assert.Zero(t, kv.sets, "cargar datos existentes no debe reescribirlos")
}

func TestInitialize_ArregloVacioSeTrataComoSinDatos(t *testing.T) {
	kv := localstore.NewMemoryStore()
	require.NoError(t, kv.Set(repository.KeyEmployees, []byte("[]")))

	s := newStore(t, kv)

	assert.Len(t, s.Employees(), len(directory.SeedEmployees()))
}

func TestInitialize_ContenidoCorruptoSiembra(t *testing.T) {
	kv := localstore.NewMemoryStore()
	require.NoError(t, kv.Set(repository.KeyEmployees, []byte("{no es json")))

	s := newStore(t, kv)

	assert.Equal(t, directory.SeedEmployees(), s.Employees())
	assert.Equal(t, directory.SeedEmployees(), persisted(t, kv))
}

func TestInitialize_LecturaFallidaSiembraSinAbortar(t *testing.T) {
	kv := newCountingKV()
	kv.failGet = true

	s := newStore(t, kv)

	assert.Len(t, s.Employees(), len(directory.SeedEmployees()))
}

func TestInitialize_SinSiembraArrancaVacio(t *testing.T) {
	kv := newCountingKV()

	s := newStore(t, kv, directory.WithSeedOnEmpty(false))

	assert.Empty(t, s.Employees())
	assert.Zero(t, kv.sets)
	assert.Equal(t, entity.Stats{}, s.Stats())
}

func TestInitialize_SoloLaPrimeraLlamadaTieneEfecto(t *testing.T) {
	kv := localstore.NewMemoryStore()
	s := newStore(t, kv, directory.WithSeedOnEmpty(false))
	s.Add(form("Jane Doe", entity.GenderFemale, true))

	s.Initialize()

	assert.Len(t, s.Employees(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_ColeccionVacia_Escenario(t *testing.T) {
	kv := localstore.NewMemoryStore()
	s := newStore(t, kv, directory.WithSeedOnEmpty(false))

	created := s.Add(form("Jane Doe", entity.GenderFemale, true))

	list := s.Employees()
	require.Len(t, list, 1)
	assert.Regexp(t, regexp.MustCompile(`^EMP-[0-9A-F]{8}$`), created.ID)
	assert.Equal(t, "Jane Doe", list[0].FullName)
	assert.Equal(t, created, list[0])
	assert.Equal(t, list, persisted(t, kv))
}

func TestAdd_AntepomeNuevoPrimero(t *testing.T) {
	s := newStore(t, localstore.NewMemoryStore(), directory.WithSeedOnEmpty(false))

	x := s.Add(form("Xavier", entity.GenderMale, true))
	y := s.Add(form("Yamini", entity.GenderFemale, true))

	assert.Equal(t, []string{y.ID, x.ID}, ids(s.Employees()))
}

func TestAdd_IDsDistintos(t *testing.T) {
	s := newStore(t, localstore.NewMemoryStore())
	seen := map[string]bool{}
	for _, e := range s.Employees() {
		seen[e.ID] = true
	}
	for i := 0; i < 200; i++ {
		e := s.Add(form(fmt.Sprintf("Persona %d", i), entity.GenderOther, true))
		assert.False(t, seen[e.ID], "ID repetido: %s", e.ID)
		seen[e.ID] = true
	}
}

func TestAdd_EvitaColisionConIDExistente(t *testing.T) {
	calls := 0
	gen := func() string {
		calls++
		if calls == 1 {
			return "EMP-1" // ya existe
		}
		return "EMP-NEW00001"
	}
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv, directory.WithIDGenerator(gen))

	e := s.Add(form("Nueva", entity.GenderFemale, true))

	assert.Equal(t, "EMP-NEW00001", e.ID)
	assert.Equal(t, 2, calls)
}

func TestAdd_GeneradorSiempreRepetidoUsaFallback(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv, directory.WithIDGenerator(func() string { return "EMP-1" }))

	e := s.Add(form("Nueva", entity.GenderFemale, true))

	assert.NotEqual(t, "EMP-1", e.ID)
	assert.Regexp(t, `^EMP-[0-9A-F]+$`, e.ID)
}

func TestAdd_ConservaImagenOpcional(t *testing.T) {
	s := newStore(t, localstore.NewMemoryStore(), directory.WithSeedOnEmpty(false))
	data := form("Con Foto", entity.GenderMale, true)
	data.ProfileImage = &entity.ProfileImage{MediaType: "image/png", Data: []byte{1, 2, 3}}

	e := s.Add(data)
	data.ProfileImage.Data[0] = 9 // el store no comparte memoria con el llamador

	got, ok := s.GetByID(e.ID)
	require.True(t, ok)
	require.NotNil(t, got.ProfileImage)
	assert.Equal(t, []byte{1, 2, 3}, got.ProfileImage.Data)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete / DeleteMany / Toggle
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloCamposEnviados(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)
	before, _ := s.GetByID("EMP-1")

	state := "Kerala"
	s.Update("EMP-1", entity.EmployeePatch{State: &state})

	after, ok := s.GetByID("EMP-1")
	require.True(t, ok)
	assert.Equal(t, "Kerala", after.State)
	before.State = "Kerala"
	assert.Equal(t, before, after, "el resto de campos no cambia")

	saved := persisted(t, kv)
	assert.Equal(t, "Kerala", saved[0].State)
}

func TestUpdate_IDInexistenteNoHaceNada(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	name := "Nadie"
	s.Update("EMP-999", entity.EmployeePatch{FullName: &name})

	assert.Equal(t, threeEmployees(), s.Employees())
}

func TestUpdate_QuitarImagen(t *testing.T) {
	list := threeEmployees()
	list[0].ProfileImage = &entity.ProfileImage{MediaType: "image/jpeg", Data: []byte("x")}
	kv := localstore.NewMemoryStore()
	preload(t, kv, list)
	s := newStore(t, kv)

	s.Update("EMP-1", entity.EmployeePatch{ProfileImageSet: true})

	got, _ := s.GetByID("EMP-1")
	assert.Nil(t, got.ProfileImage)
}

func TestDelete_IDInexistente_ColeccionIntacta(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	assert.NotPanics(t, func() { s.Delete("EMP-999") })
	assert.Equal(t, threeEmployees(), s.Employees())
}

func TestDelete_EliminaYPersiste(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	s.Delete("EMP-2")

	assert.Equal(t, []string{"EMP-1", "EMP-3"}, ids(s.Employees()))
	assert.Equal(t, []string{"EMP-1", "EMP-3"}, ids(persisted(t, kv)))
	_, ok := s.GetByID("EMP-2")
	assert.False(t, ok)
}

func TestDeleteMany_UnaSolaEscrituraYOrdenConservado(t *testing.T) {
	kv := newCountingKV()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)
	kv.sets = 0

	n := s.DeleteMany([]string{"EMP-3", "EMP-1", "EMP-404"})

	assert.Equal(t, 2, n, "los IDs inexistentes no cuentan")
	assert.Equal(t, []string{"EMP-2"}, ids(s.Employees()))
	assert.Equal(t, 1, kv.sets, "el lote completo se persiste una sola vez")
}

func TestDeleteMany_ConjuntoVacioNoHaceNada(t *testing.T) {
	kv := newCountingKV()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)
	kv.sets = 0

	assert.Zero(t, s.DeleteMany(nil))
	assert.Zero(t, s.DeleteMany([]string{}))

	assert.Equal(t, threeEmployees(), s.Employees())
	assert.Zero(t, kv.sets)
}

func TestDeleteMany_RestoConservaOrdenRelativo(t *testing.T) {
	s := newStore(t, localstore.NewMemoryStore())
	all := ids(s.Employees())
	remove := []string{all[1], all[4], all[7]}

	s.DeleteMany(remove)

	var expected []string
	for i, id := range all {
		if i != 1 && i != 4 && i != 7 {
			expected = append(expected, id)
		}
	}
	assert.Equal(t, expected, ids(s.Employees()))
}

func TestToggleStatus_DosVecesVuelveAlOriginal(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	s.ToggleStatus("EMP-3")
	got, _ := s.GetByID("EMP-3")
	assert.True(t, got.IsActive)
	assert.True(t, persisted(t, kv)[2].IsActive)

	s.ToggleStatus("EMP-3")
	got, _ = s.GetByID("EMP-3")
	assert.False(t, got.IsActive)
}

func TestToggleStatus_IDInexistente(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	s.ToggleStatus("EMP-999")

	assert.Equal(t, threeEmployees(), s.Employees())
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros y estadísticas
// ──────────────────────────────────────────────────────────────────────────────

func TestFiltroInactivo_StatsNoCambian(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	s.SetStatusFilter(entity.StatusFilterInactive)

	assert.Len(t, s.FilteredEmployees(), 1)
	assert.Equal(t, entity.Stats{Total: 3, Active: 2, Inactive: 1}, s.Stats())
}

func TestFiltros_BusquedaSinDistinguirMayusculas(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	s.SetSearchQuery("KUMAR")

	assert.Equal(t, []string{"EMP-1", "EMP-2"}, ids(s.FilteredEmployees()))
}

func TestFiltros_CombinadosConAND(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)

	s.SetSearchQuery("kumar")
	s.SetGenderFilter(entity.GenderFilter(entity.GenderMale))
	s.SetStatusFilter(entity.StatusFilterActive)

	assert.Equal(t, []string{"EMP-2"}, ids(s.FilteredEmployees()))
	assert.Equal(t, entity.Filters{
		SearchQuery: "kumar",
		Gender:      entity.GenderFilter(entity.GenderMale),
		Status:      entity.StatusFilterActive,
	}, s.Filters())
}

func TestFiltros_TodasLasCombinacionesSonSubconjunto(t *testing.T) {
	s := newStore(t, localstore.NewMemoryStore())
	all := s.Employees()
	byID := map[string]entity.Employee{}
	for _, e := range all {
		byID[e.ID] = e
	}

	queries := []string{"", "a", "SH", "zzz"}
	genders := []entity.GenderFilter{entity.GenderFilterAll, "male", "female", "other"}
	statuses := []entity.StatusFilter{entity.StatusFilterAll, entity.StatusFilterActive, entity.StatusFilterInactive}

	for _, q := range queries {
		for _, g := range genders {
			for _, st := range statuses {
				s.SetSearchQuery(q)
				s.SetGenderFilter(g)
				s.SetStatusFilter(st)
				f := s.Filters()
				for _, e := range s.FilteredEmployees() {
					orig, ok := byID[e.ID]
					require.True(t, ok, "registro filtrado fuera de la colección")
					assert.Equal(t, orig, e)
					assert.True(t, f.Matches(e), "q=%q g=%s st=%s id=%s", q, g, st, e.ID)
				}
				stats := s.Stats()
				assert.Equal(t, len(all), stats.Total)
				assert.Equal(t, stats.Total, stats.Active+stats.Inactive)
			}
		}
	}

	s.ClearFilters()
	assert.Equal(t, all, s.FilteredEmployees())
	assert.Equal(t, entity.DefaultFilters(), s.Filters())
}

func TestFiltros_SeRecalculanTrasMutacion(t *testing.T) {
	kv := localstore.NewMemoryStore()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)
	s.SetStatusFilter(entity.StatusFilterActive)

	s.ToggleStatus("EMP-1")

	assert.Equal(t, []string{"EMP-2"}, ids(s.FilteredEmployees()))
	assert.Equal(t, entity.Stats{Total: 3, Active: 1, Inactive: 2}, s.Stats())
}

func TestFiltros_NoSePersisten(t *testing.T) {
	kv := newCountingKV()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)
	kv.sets = 0

	s.SetSearchQuery("x")
	s.SetGenderFilter(entity.GenderFilterAll)
	s.ClearFilters()

	assert.Zero(t, kv.sets)

	reloaded := newStore(t, kv)
	assert.Equal(t, entity.DefaultFilters(), reloaded.Filters())
}

func TestRecent_PrimerosN(t *testing.T) {
	s := newStore(t, localstore.NewMemoryStore())
	all := s.Employees()

	assert.Equal(t, all[:10], s.Recent(10))
	assert.Equal(t, all, s.Recent(100))
	assert.Empty(t, s.Recent(0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestEscrituraFallida_LaMutacionSeAplicaIgual(t *testing.T) {
	kv := newCountingKV()
	preload(t, kv, threeEmployees())
	s := newStore(t, kv)
	kv.failSet = true

	var created entity.Employee
	assert.NotPanics(t, func() {
		created = s.Add(form("Sin Disco", entity.GenderMale, true))
		s.Delete("EMP-1")
		s.ToggleStatus("EMP-2")
	})

	assert.Equal(t, []string{created.ID, "EMP-2", "EMP-3"}, ids(s.Employees()))
	got, _ := s.GetByID("EMP-2")
	assert.False(t, got.IsActive)
	assert.Equal(t, entity.Stats{Total: 3, Active: 1, Inactive: 2}, s.Stats())
	assert.Equal(t, threeEmployees(), persisted(t, kv), "el disco conserva la última escritura buena")
}
