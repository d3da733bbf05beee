package directory

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// SeedEmployees colección semilla que se adopta cuando el almacenamiento está vacío.
// Es un conjunto de demostración; en despliegues reales se desactiva con SEED_ON_EMPTY=false.
func SeedEmployees() []entity.Employee {
	return []entity.Employee{
		{ID: "EMP-A1B2C3D4", FullName: "Aarav Sharma", Gender: entity.GenderMale, DOB: entity.NewDate(1990, time.May, 15), State: "Maharashtra", IsActive: true},
		{ID: "EMP-B2C3D4E5", FullName: "Priya Patel", Gender: entity.GenderFemale, DOB: entity.NewDate(1992, time.August, 22), State: "Gujarat", IsActive: true},
		{ID: "EMP-C3D4E5F6", FullName: "Rohan Mehta", Gender: entity.GenderMale, DOB: entity.NewDate(1988, time.March, 10), State: "Delhi", IsActive: false},
		{ID: "EMP-D4E5F6A7", FullName: "Ananya Iyer", Gender: entity.GenderFemale, DOB: entity.NewDate(1995, time.December, 3), State: "Tamil Nadu", IsActive: true},
		{ID: "EMP-E5F6A7B8", FullName: "Vikram Singh", Gender: entity.GenderMale, DOB: entity.NewDate(1985, time.July, 28), State: "Punjab", IsActive: true},
		{ID: "EMP-F6A7B8C9", FullName: "Sneha Reddy", Gender: entity.GenderFemale, DOB: entity.NewDate(1993, time.February, 14), State: "Telangana", IsActive: false},
		{ID: "EMP-A7B8C9D0", FullName: "Arjun Nair", Gender: entity.GenderMale, DOB: entity.NewDate(1991, time.October, 5), State: "Kerala", IsActive: true},
		{ID: "EMP-B8C9D0E1", FullName: "Kavya Rao", Gender: entity.GenderFemale, DOB: entity.NewDate(1997, time.April, 19), State: "Karnataka", IsActive: true},
		{ID: "EMP-C9D0E1F2", FullName: "Sam Fernandes", Gender: entity.GenderOther, DOB: entity.NewDate(1994, time.June, 30), State: "Goa", IsActive: true},
		{ID: "EMP-D0E1F2A3", FullName: "Ishaan Gupta", Gender: entity.GenderMale, DOB: entity.NewDate(1989, time.September, 12), State: "Uttar Pradesh", IsActive: false},
		{ID: "EMP-E1F2A3B4", FullName: "Meera Das", Gender: entity.GenderFemale, DOB: entity.NewDate(1996, time.January, 25), State: "West Bengal", IsActive: true},
		{ID: "EMP-F2A3B4C5", FullName: "Kabir Joshi", Gender: entity.GenderMale, DOB: entity.NewDate(1987, time.November, 8), State: "Rajasthan", IsActive: true},
	}
}
