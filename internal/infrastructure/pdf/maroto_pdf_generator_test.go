package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/export"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/pdf"
)

var printedAt = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func sampleEmployee() entity.Employee {
	return entity.Employee{
		ID:       "EMP-A1B2C3D4",
		FullName: "Aarav Sharma",
		Gender:   entity.GenderMale,
		DOB:      entity.NewDate(1990, time.May, 15),
		State:    "Maharashtra",
		IsActive: true,
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 37, G: 99, B: 235, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func assertPDF(t *testing.T, b []byte) {
	t.Helper()
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "el documento debe empezar con %%PDF")
}

func TestGenerateEmployeeSheet_SinFoto(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("employee-directory")

	b, err := g.GenerateEmployeeSheet(context.Background(), sampleEmployee(), printedAt)
	require.NoError(t, err)
	assertPDF(t, b)
}

func TestGenerateEmployeeSheet_ConFotoPNG(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("employee-directory")
	e := sampleEmployee()
	e.ProfileImage = &entity.ProfileImage{MediaType: "image/png", Data: tinyPNG(t)}

	b, err := g.GenerateEmployeeSheet(context.Background(), e, printedAt)
	require.NoError(t, err)
	assertPDF(t, b)
}

func TestGenerateEmployeeSheet_FotoNoDecodificableUsaIniciales(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("employee-directory")
	e := sampleEmployee()
	e.IsActive = false
	e.ProfileImage = &entity.ProfileImage{MediaType: "image/webp", Data: []byte("RIFF....WEBP")}

	b, err := g.GenerateEmployeeSheet(context.Background(), e, printedAt)
	require.NoError(t, err)
	assertPDF(t, b)
}

func TestGenerateEmployeeSheet_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewMarotoPDFGenerator("x").GenerateEmployeeSheet(ctx, sampleEmployee(), printedAt)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateDirectory(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("employee-directory")
	list := make([]entity.Employee, 0, 40)
	for i := 0; i < 40; i++ {
		e := sampleEmployee()
		e.IsActive = i%3 != 0
		list = append(list, e)
	}

	b, err := g.GenerateDirectory(context.Background(), export.Listing{
		Employees:   list,
		Stats:       entity.ComputeStats(list),
		Filters:     entity.Filters{SearchQuery: "sharma", Gender: entity.GenderFilterAll, Status: entity.StatusFilterAll},
		GeneratedAt: printedAt,
	})
	require.NoError(t, err)
	assertPDF(t, b)
}

func TestGenerateDirectory_Vacio(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("employee-directory")

	b, err := g.GenerateDirectory(context.Background(), export.Listing{
		Filters:     entity.DefaultFilters(),
		GeneratedAt: printedAt,
	})
	require.NoError(t, err)
	assertPDF(t, b)
}
