package export

import (
	"context"
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Listing datos de un listado impreso o exportado.
type Listing struct {
	Employees   []entity.Employee
	Stats       entity.Stats
	Filters     entity.Filters
	GeneratedAt time.Time
}

// EmployeePDFGenerator puerto de salida para las vistas de impresión en PDF.
type EmployeePDFGenerator interface {
	// GenerateEmployeeSheet ficha de un empleado ("imprimir uno").
	GenerateEmployeeSheet(ctx context.Context, e entity.Employee, generatedAt time.Time) ([]byte, error)
	// GenerateDirectory listado del directorio filtrado ("imprimir todos").
	GenerateDirectory(ctx context.Context, listing Listing) ([]byte, error)
}

// SpreadsheetExporter puerto de salida para la exportación a hoja de cálculo.
type SpreadsheetExporter interface {
	ExportEmployees(ctx context.Context, listing Listing) ([]byte, error)
}
