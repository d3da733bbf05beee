// Package analytics contiene el resumen del dashboard del directorio.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/view"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

const dashboardRecent = 10 // registros en el widget "recientes"

// Directory lo que el dashboard lee del store.
type Directory interface {
	IsLoading() bool
	Stats() entity.Stats
	Recent(n int) []entity.Employee
}

// DashboardUseCase genera el resumen de la plantilla completa.
// Las estadísticas no dependen de los filtros de la vista de lista.
type DashboardUseCase struct {
	dir Directory
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dir Directory) *DashboardUseCase {
	return &DashboardUseCase{dir: dir, now: time.Now}
}

// GetSummary devuelve stats y los 10 registros más nuevos.
// ErrStoreLoading mientras el directorio no terminó de inicializarse.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if uc.dir.IsLoading() {
		return nil, domain.ErrStoreLoading
	}
	return &dto.DashboardSummaryDTO{
		Stats:  uc.dir.Stats(),
		Recent: view.PresentAll(uc.dir.Recent(dashboardRecent), uc.now()),
	}, nil
}
