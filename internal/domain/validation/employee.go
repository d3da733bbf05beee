// Package validation contiene las validaciones del formulario de empleados.
// El store nunca se invoca hasta que la validación pasa.
package validation

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Mensajes de validación mostrados por el formulario.
const (
	MsgFullNameRequired = "Full name is required"
	MsgFullNameTooShort = "Full name must be at least 2 characters"
	MsgGenderRequired   = "Please select a gender"
	MsgDOBRequired      = "Date of birth is required"
	MsgDOBInvalid       = "Please enter a valid date"
	MsgDOBNotPast       = "Date of birth must be in the past"
	MsgStateRequired    = "Please select a state"
	MsgImageInvalid     = "Please upload a valid image"
	MsgImageTooLarge    = "Image must be smaller than 5MB"
)

// Nombres de campo usados como clave del mapa de errores.
const (
	FieldFullName     = "fullName"
	FieldGender       = "gender"
	FieldDOB          = "dob"
	FieldState        = "state"
	FieldProfileImage = "profileImage"
)

// FieldErrors mapa campo → mensaje. Vacío significa válido.
type FieldErrors map[string]string

// Error implementa error.
func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, domain.ErrValidation).
func (f FieldErrors) Is(target error) bool {
	return target == domain.ErrValidation
}

// Err devuelve nil si no hay errores.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

// EmployeeInput datos crudos del formulario. Campos nil = no enviados
// (en creación todos son obligatorios salvo ProfileImage e IsActive).
type EmployeeInput struct {
	FullName     *string
	Gender       *string
	DOB          *string
	State        *string
	IsActive     *bool
	ProfileImage *string // "" o nil = sin imagen
}

// ValidateCreate valida un alta completa y devuelve los datos normalizados.
func ValidateCreate(in EmployeeInput, now time.Time) (entity.EmployeeFormData, error) {
	errs := FieldErrors{}
	out := entity.EmployeeFormData{IsActive: true}

	out.FullName = validateFullName(deref(in.FullName), errs)
	out.Gender = validateGender(deref(in.Gender), errs)
	out.DOB = validateDOB(deref(in.DOB), now, errs)
	out.State = validateState(deref(in.State), errs)
	if in.IsActive != nil {
		out.IsActive = *in.IsActive
	}
	out.ProfileImage = validateImage(deref(in.ProfileImage), errs)

	if err := errs.Err(); err != nil {
		return entity.EmployeeFormData{}, err
	}
	return out, nil
}

// ValidatePatch valida solo los campos enviados y construye el patch.
func ValidatePatch(in EmployeeInput, now time.Time) (entity.EmployeePatch, error) {
	errs := FieldErrors{}
	var patch entity.EmployeePatch

	if in.FullName != nil {
		name := validateFullName(*in.FullName, errs)
		patch.FullName = &name
	}
	if in.Gender != nil {
		g := validateGender(*in.Gender, errs)
		patch.Gender = &g
	}
	if in.DOB != nil {
		d := validateDOB(*in.DOB, now, errs)
		patch.DOB = &d
	}
	if in.State != nil {
		s := validateState(*in.State, errs)
		patch.State = &s
	}
	if in.IsActive != nil {
		active := *in.IsActive
		patch.IsActive = &active
	}
	if in.ProfileImage != nil {
		patch.ProfileImageSet = true
		patch.ProfileImage = validateImage(*in.ProfileImage, errs)
	}

	if err := errs.Err(); err != nil {
		return entity.EmployeePatch{}, err
	}
	return patch, nil
}

func validateFullName(raw string, errs FieldErrors) string {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		errs[FieldFullName] = MsgFullNameRequired
	case len([]rune(name)) < 2:
		errs[FieldFullName] = MsgFullNameTooShort
	}
	return name
}

func validateGender(raw string, errs FieldErrors) entity.Gender {
	g, err := entity.ParseGender(raw)
	if err != nil {
		errs[FieldGender] = MsgGenderRequired
	}
	return g
}

func validateDOB(raw string, now time.Time, errs FieldErrors) entity.Date {
	if strings.TrimSpace(raw) == "" {
		errs[FieldDOB] = MsgDOBRequired
		return entity.Date{}
	}
	d, err := entity.ParseDate(raw)
	if err != nil {
		errs[FieldDOB] = MsgDOBInvalid
		return entity.Date{}
	}
	if !d.Before(now) {
		errs[FieldDOB] = MsgDOBNotPast
	}
	return d
}

func validateState(raw string, errs FieldErrors) string {
	state := strings.TrimSpace(raw)
	if state == "" || !entity.IsValidState(state) {
		errs[FieldState] = MsgStateRequired
	}
	return state
}

func validateImage(raw string, errs FieldErrors) *entity.ProfileImage {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	img, err := entity.ParseProfileImage(raw)
	if err != nil {
		if errors.Is(err, entity.ErrImageTooLarge) {
			errs[FieldProfileImage] = MsgImageTooLarge
		} else {
			errs[FieldProfileImage] = MsgImageInvalid
		}
		return nil
	}
	return img
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
