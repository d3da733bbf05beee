// Package xlsx exporta el directorio filtrado a una hoja de cálculo con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Empleados-api/internal/application/export"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

const (
	SheetEmployees = "Employees"
	SheetSummary   = "Summary"
)

var employeeHeaders = []any{"ID", "Full Name", "Gender", "Date of Birth", "Age", "State", "Status"}

// ExcelizeExporter implementa export.SpreadsheetExporter.
type ExcelizeExporter struct {
	author string
}

// NewExcelizeExporter construye el exportador; author queda en las propiedades del libro.
func NewExcelizeExporter(author string) *ExcelizeExporter {
	return &ExcelizeExporter{author: author}
}

// ExportEmployees genera un libro con la hoja de empleados y la hoja de resumen.
func (x *ExcelizeExporter) ExportEmployees(ctx context.Context, listing export.Listing) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetEmployees); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := x.writeEmployees(f, listing); err != nil {
		return nil, err
	}
	if err := x.writeSummary(f, listing); err != nil {
		return nil, err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator: x.author,
		Title:   "Employee Directory",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: propiedades: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (x *ExcelizeExporter) writeEmployees(f *excelize.File, listing export.Listing) error {
	if err := f.SetSheetRow(SheetEmployees, "A1", &employeeHeaders); err != nil {
		return fmt.Errorf("xlsx: cabecera: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2563EB"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	if err := f.SetCellStyle(SheetEmployees, "A1", "G1", header); err != nil {
		return fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, e := range listing.Employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			e.ID,
			e.FullName,
			entity.Capitalize(string(e.Gender)),
			e.DOB.String(),
			e.DOB.AgeAt(listing.GeneratedAt),
			e.State,
			e.StatusLabel(),
		}
		if err := f.SetSheetRow(SheetEmployees, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	widths := map[string]float64{"A": 16, "B": 28, "C": 10, "D": 14, "E": 6, "F": 22, "G": 10}
	for colName, w := range widths {
		if err := f.SetColWidth(SheetEmployees, colName, colName, w); err != nil {
			return fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}
	if err := f.SetPanes(SheetEmployees, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("xlsx: fijar cabecera: %w", err)
	}
	return nil
}

func (x *ExcelizeExporter) writeSummary(f *excelize.File, listing export.Listing) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	rows := [][]any{
		{"Total", listing.Stats.Total},
		{"Active", listing.Stats.Active},
		{"Inactive", listing.Stats.Inactive},
		{"Exported rows", len(listing.Employees)},
		{"Search", listing.Filters.SearchQuery},
		{"Gender filter", string(listing.Filters.Gender)},
		{"Status filter", string(listing.Filters.Status)},
		{"Generated at", listing.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &r); err != nil {
			return fmt.Errorf("xlsx: resumen fila %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SheetSummary, "A", "A", 16)
}
