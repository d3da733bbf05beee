package entity

import "slices"

// indianStates catálogo cerrado de regiones (estados y territorios de la India).
var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Andaman and Nicobar Islands", "Chandigarh", "Dadra and Nagar Haveli and Daman and Diu",
	"Delhi", "Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
}

// States devuelve una copia del catálogo de regiones.
func States() []string {
	return slices.Clone(indianStates)
}

// IsValidState indica si la región pertenece al catálogo.
func IsValidState(s string) bool {
	return slices.Contains(indianStates, s)
}
