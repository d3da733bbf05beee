package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayDateLayout formato de fecha para listados e impresión (ej: 05 Mar 1990).
const DisplayDateLayout = "02 Jan 2006"

var titleCaser = cases.Title(language.English)

// Capitalize primera letra en mayúscula y el resto en minúscula.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(s))
}

// Initials iniciales de las dos primeras palabras del nombre, en mayúscula.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(part))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// AgeAt edad cumplida en la fecha now.
func (d Date) AgeAt(now time.Time) int {
	if d.IsZero() {
		return 0
	}
	age := now.Year() - d.Year()
	if now.Month() < d.Month() || (now.Month() == d.Month() && now.Day() < d.Day()) {
		age--
	}
	return age
}

// Display fecha en formato de lectura; vacío si no hay fecha.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DisplayDateLayout)
}

// StatusLabel etiqueta legible del estado.
func (e Employee) StatusLabel() string {
	if e.IsActive {
		return "Active"
	}
	return "Inactive"
}
