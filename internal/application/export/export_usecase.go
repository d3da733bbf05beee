// Package export contiene los casos de uso de impresión y exportación del directorio.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Directory lo que la exportación lee del store.
type Directory interface {
	IsLoading() bool
	GetByID(id string) (entity.Employee, bool)
	FilteredEmployees() []entity.Employee
	Stats() entity.Stats
	Filters() entity.Filters
}

// ExportUseCase genera los documentos de impresión (PDF) y la exportación XLSX.
type ExportUseCase struct {
	dir   Directory
	pdf   EmployeePDFGenerator
	sheet SpreadsheetExporter
	now   func() time.Time
}

// NewExportUseCase construye el caso de uso inyectando sus generadores.
func NewExportUseCase(dir Directory, pdf EmployeePDFGenerator, sheet SpreadsheetExporter) *ExportUseCase {
	return &ExportUseCase{dir: dir, pdf: pdf, sheet: sheet, now: time.Now}
}

// EmployeePDF ficha de un empleado.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el empleado no existe.
//   - domain.ErrStoreLoading     si el directorio aún no terminó de cargar.
func (uc *ExportUseCase) EmployeePDF(ctx context.Context, id string) ([]byte, string, error) {
	if uc.dir.IsLoading() {
		return nil, "", domain.ErrStoreLoading
	}
	e, ok := uc.dir.GetByID(id)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	b, err := uc.pdf.GenerateEmployeeSheet(ctx, e, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("export: ficha %s: %w", id, err)
	}
	return b, fmt.Sprintf("employee-%s.pdf", e.ID), nil
}

// DirectoryPDF listado PDF de la lista filtrada vigente.
func (uc *ExportUseCase) DirectoryPDF(ctx context.Context) ([]byte, string, error) {
	listing, err := uc.listing()
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateDirectory(ctx, listing)
	if err != nil {
		return nil, "", fmt.Errorf("export: listado pdf: %w", err)
	}
	return b, "employees-" + listing.GeneratedAt.Format("20060102") + ".pdf", nil
}

// DirectoryXLSX hoja de cálculo de la lista filtrada vigente.
func (uc *ExportUseCase) DirectoryXLSX(ctx context.Context) ([]byte, string, error) {
	listing, err := uc.listing()
	if err != nil {
		return nil, "", err
	}
	b, err := uc.sheet.ExportEmployees(ctx, listing)
	if err != nil {
		return nil, "", fmt.Errorf("export: xlsx: %w", err)
	}
	return b, "employees-" + listing.GeneratedAt.Format("20060102") + ".xlsx", nil
}

func (uc *ExportUseCase) listing() (Listing, error) {
	if uc.dir.IsLoading() {
		return Listing{}, domain.ErrStoreLoading
	}
	return Listing{
		Employees:   uc.dir.FilteredEmployees(),
		Stats:       uc.dir.Stats(),
		Filters:     uc.dir.Filters(),
		GeneratedAt: uc.now(),
	}, nil
}
