package entity

import "time"

// AuthUser sesión del administrador persistida bajo la clave auth_user.
type AuthUser struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}
