package view

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Present arma la respuesta de un empleado con sus campos derivados.
func Present(e entity.Employee, now time.Time) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Gender:       string(e.Gender),
		DOB:          e.DOB.String(),
		State:        e.State,
		IsActive:     e.IsActive,
		ProfileImage: e.ProfileImage.DataURL(),
		Initials:     entity.Initials(e.FullName),
		Age:          e.DOB.AgeAt(now),
		GenderLabel:  entity.Capitalize(string(e.Gender)),
		DOBDisplay:   e.DOB.Display(),
		StatusLabel:  e.StatusLabel(),
	}
}

// PresentAll aplica Present a una lista.
func PresentAll(list []entity.Employee, now time.Time) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, len(list))
	for i, e := range list {
		out[i] = Present(e, now)
	}
	return out
}
