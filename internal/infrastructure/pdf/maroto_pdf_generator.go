// Package pdf implementa las vistas de impresión del directorio con Maroto v2.
//
// Ficha de empleado (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Employee Profile            │  ID + fecha impresión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOTO (o iniciales) │ Nombre, estado, género, edad, estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
//
// Listado: cabecera con totales y filtros aplicados, luego una tabla
// ID | Nombre | Género | Nacimiento | Estado | Estatus.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // registra el decoder para validar fotos
	_ "image/png"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	mimage "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Empleados-api/internal/application/export"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorActive   = &props.Color{Red: 22, Green: 163, Blue: 74}
	colorInactive = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorStripe   = &props.Color{Red: 243, Green: 244, Blue: 246}
)

const printedLayout = "02 Jan 2006 15:04"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa export.EmployeePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author queda en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
	return maroto.New(cfg)
}

// GenerateEmployeeSheet genera la ficha de un empleado y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateEmployeeSheet(
	ctx context.Context,
	e entity.Employee,
	generatedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := g.newDocument("Employee Profile - " + e.FullName)

	m.AddRows(sheetHeaderRow(e, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))
	m.AddRows(profileRow(e, generatedAt))
	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateDirectory genera el listado del directorio filtrado.
func (g *MarotoPDFGenerator) GenerateDirectory(ctx context.Context, listing export.Listing) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := g.newDocument("Employee Directory")

	m.AddRows(directoryHeaderRow(listing))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filtersRow(listing.Filters, len(listing.Employees)))
	m.AddRows(tableHeaderRow())
	if len(listing.Employees) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No employees match the current filters.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for i, e := range listing.Employees {
		m.AddRows(tableDetailRow(e, i))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ficha ───────────────────────────────────────────────────────────

// sheetHeaderRow: título (izq) e ID + fecha de impresión (der).
func sheetHeaderRow(e entity.Employee, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Employee Profile", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(e.ID, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Printed: "+generatedAt.Format(printedLayout), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// profileRow: foto (o iniciales) y datos del empleado.
func profileRow(e entity.Employee, now time.Time) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Top: top, Left: 4, Color: colorGray})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 10, Top: top, Left: 34})
	}

	return row.New(60).Add(
		avatarCol(e),
		col.New(8).Add(
			text.New(e.FullName, props.Text{Style: fontstyle.Bold, Size: 16, Top: 2, Left: 4}),
			text.New(e.StatusLabel(), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 11, Left: 4, Color: statusColor(e.IsActive),
			}),
			label("Gender", 22), value(entity.Capitalize(string(e.Gender)), 22),
			label("Date of Birth", 30), value(e.DOB.Display(), 30),
			label("Age", 38), value(strconv.Itoa(e.DOB.AgeAt(now))+" years", 38),
			label("State", 46), value(e.State, 46),
		),
	)
}

// avatarCol: la foto si es PNG/JPEG decodificable; si no, las iniciales.
func avatarCol(e entity.Employee) core.Col {
	if ext, ok := imageExtension(e.ProfileImage); ok {
		return col.New(4).Add(mimage.NewFromBytes(e.ProfileImage.Data, ext, props.Rect{
			Percent: 90,
			Center:  true,
		}))
	}
	return col.New(4).Add(text.New(entity.Initials(e.FullName), props.Text{
		Style: fontstyle.Bold, Size: 36, Align: align.Center, Top: 18, Color: colorPrimary,
	}))
}

// ── Secciones listado ─────────────────────────────────────────────────────────

// directoryHeaderRow: título + totales de la plantilla completa.
func directoryHeaderRow(listing export.Listing) core.Row {
	s := listing.Stats
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Employee Directory", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Printed: "+listing.GeneratedAt.Format(printedLayout), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Total: %d", s.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Active: %d   |   Inactive: %d", s.Active, s.Inactive), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// filtersRow: filtros aplicados y cantidad de filas impresas.
func filtersRow(f entity.Filters, shown int) core.Row {
	search := nonEmpty(f.SearchQuery, "-")
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Search: %s   |   Gender: %s   |   Status: %s   |   Showing: %d",
			search,
			entity.Capitalize(string(f.Gender)),
			entity.Capitalize(string(f.Status)),
			shown,
		), props.Text{Size: 8, Top: 3, Color: colorGray}),
	))
}

// tableHeaderRow: cabecera de la tabla con fondo primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Left),
		h("Full Name", 3, align.Left),
		h("Gender", 2, align.Center),
		h("Date of Birth", 2, align.Center),
		h("State", 2, align.Left),
		h("Status", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRow: una fila por empleado, con franjas alternas.
func tableDetailRow(e entity.Employee, i int) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	r := row.New(7).Add(
		cell(e.ID, 2, align.Left),
		cell(e.FullName, 3, align.Left),
		cell(entity.Capitalize(string(e.Gender)), 2, align.Center),
		cell(e.DOB.Display(), 2, align.Center),
		cell(e.State, 2, align.Left),
		col.New(1).Add(text.New(e.StatusLabel(), props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1.5,
			Color: statusColor(e.IsActive),
		})),
	)
	if i%2 == 1 {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Employee Directory Admin - confidential, for internal use only.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2, Align: align.Center,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(active bool) *props.Color {
	if active {
		return colorActive
	}
	return colorInactive
}

// imageExtension devuelve la extensión Maroto de la foto si es PNG o JPEG válida.
func imageExtension(img *entity.ProfileImage) (extension.Type, bool) {
	if img == nil || len(img.Data) == 0 {
		return "", false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return "", false
	}
	switch format {
	case "png":
		return extension.Png, true
	case "jpeg":
		return extension.Jpg, true
	default:
		return "", false
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
