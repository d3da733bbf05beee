package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Empleados-api/internal/application/export"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/xlsx"
)

func TestExportEmployees_ReabreConExcelize(t *testing.T) {
	list := []entity.Employee{
		{ID: "EMP-1", FullName: "Asha Kumar", Gender: entity.GenderFemale, DOB: entity.NewDate(1990, time.January, 1), State: "Goa", IsActive: true},
		{ID: "EMP-2", FullName: "Ravi Kumar", Gender: entity.GenderMale, DOB: entity.NewDate(1985, time.June, 1), State: "Kerala", IsActive: false},
	}
	listing := export.Listing{
		Employees:   list,
		Stats:       entity.Stats{Total: 5, Active: 3, Inactive: 2},
		Filters:     entity.Filters{SearchQuery: "kumar", Gender: entity.GenderFilterAll, Status: entity.StatusFilterAll},
		GeneratedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	b, err := xlsx.NewExcelizeExporter("employee-directory").ExportEmployees(context.Background(), listing)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, xlsx.SheetEmployees, f.GetSheetName(0))
	rows, err := f.GetRows(xlsx.SheetEmployees)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Full Name", "Gender", "Date of Birth", "Age", "State", "Status"}, rows[0])
	assert.Equal(t, []string{"EMP-1", "Asha Kumar", "Female", "1990-01-01", "36", "Goa", "Active"}, rows[1])
	assert.Equal(t, "Inactive", rows[2][6])

	total, err := f.GetCellValue(xlsx.SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "5", total)
	search, err := f.GetCellValue(xlsx.SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "kumar", search)
}

func TestExportEmployees_ListaVacia(t *testing.T) {
	b, err := xlsx.NewExcelizeExporter("x").ExportEmployees(context.Background(), export.Listing{
		Filters:     entity.DefaultFilters(),
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(xlsx.SheetEmployees)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo la cabecera")
}
