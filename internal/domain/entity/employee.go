package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Gender enumeración cerrada de géneros admitidos.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders devuelve las opciones de género en el orden del formulario.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Valid indica si el género pertenece a la enumeración.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// ParseGender convierte texto libre (sin distinguir mayúsculas) en Gender.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("género desconocido: %q", s)
	}
	return g, nil
}

// DateLayout formato de fecha de nacimiento persistido (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Date fecha de calendario sin hora; se serializa como "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate construye una fecha a medianoche UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate acepta "YYYY-MM-DD" o un timestamp RFC3339 (formato de entrada del formulario original).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida: %q", s)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// String devuelve la fecha en formato YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON implementa json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implementa json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Employee registro del directorio de personal.
// El layout JSON es el que se persiste bajo la clave employees_data.
type Employee struct {
	ID           string        `json:"id"`
	FullName     string        `json:"fullName"`
	Gender       Gender        `json:"gender"`
	DOB          Date          `json:"dob"`
	State        string        `json:"state"`
	IsActive     bool          `json:"isActive"`
	ProfileImage *ProfileImage `json:"profileImage,omitempty"` // nil = sin imagen
}

// Clone devuelve una copia profunda.
func (e Employee) Clone() Employee {
	e.ProfileImage = e.ProfileImage.Clone()
	return e
}

// EmployeeFormData datos de alta de un empleado (todo salvo el ID).
type EmployeeFormData struct {
	FullName     string
	Gender       Gender
	DOB          Date
	State        string
	IsActive     bool
	ProfileImage *ProfileImage
}

// EmployeePatch actualización parcial: solo se aplican los campos no nil.
// ProfileImageSet distingue "no tocar" de "quitar imagen" (ProfileImage nil).
type EmployeePatch struct {
	FullName        *string
	Gender          *Gender
	DOB             *Date
	State           *string
	IsActive        *bool
	ProfileImage    *ProfileImage
	ProfileImageSet bool
}

// Apply aplica el patch sobre una copia del empleado y la devuelve.
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.DOB != nil {
		e.DOB = *p.DOB
	}
	if p.State != nil {
		e.State = *p.State
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	if p.ProfileImageSet {
		e.ProfileImage = p.ProfileImage.Clone()
	}
	return e
}
