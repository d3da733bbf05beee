// Package auth contiene la puerta de sesión del administrador: login contra la
// credencial fija, cierre de sesión, restauración desde el almacenamiento local
// y emisión/validación de tokens de sesión.
package auth

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
)

// InvalidCredentialsMessage texto devuelto al fallar el login.
const InvalidCredentialsMessage = "Invalid username or password"

// Storage puerto de persistencia JSON (lo implementa *localstore.JSONStorage).
type Storage interface {
	Get(key string, dst any) bool
	Set(key string, value any) bool
	Remove(key string) bool
}

// Clock fuente de tiempo inyectable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config credencial fija del administrador y parámetros de la sesión.
// Si PasswordHash está vacío se deriva de Password con bcrypt.
type Config struct {
	Username     string
	Name         string
	Password     string
	PasswordHash string
	LoginDelay   time.Duration
	JWT          JWTConfig
}

// Option configura el SessionGate.
type Option func(*SessionGate)

// WithClock reemplaza el reloj (tests).
func WithClock(c Clock) Option {
	return func(g *SessionGate) { g.clock = c }
}

// SessionGate estado autenticado / no autenticado respaldado por la clave auth_user.
type SessionGate struct {
	mu      sync.RWMutex
	storage Storage
	cfg     Config
	hash    []byte
	clock   Clock

	loading bool
	user    *entity.AuthUser
}

// NewSessionGate construye la puerta en estado "cargando"; llamar Restore al arrancar.
func NewSessionGate(storage Storage, cfg Config, opts ...Option) (*SessionGate, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		h, err := HashPassword(cfg.Password)
		if err != nil {
			return nil, err
		}
		hash = []byte(h)
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("hash de contraseña inválido: %w", err)
	}
	g := &SessionGate{
		storage: storage,
		cfg:     cfg,
		hash:    hash,
		clock:   systemClock{},
		loading: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// HashPassword hashea la contraseña con bcrypt (coste por defecto).
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashear contraseña: %w", err)
	}
	return string(h), nil
}

// Restore lee la sesión persistida. IsLoading es true hasta que termina.
func (g *SessionGate) Restore() {
	g.mu.Lock()
	defer g.mu.Unlock()
	var saved entity.AuthUser
	if g.storage.Get(repository.KeyAuthUser, &saved) && saved.Username != "" {
		g.user = &saved
	} else {
		g.user = nil
	}
	g.loading = false
}

// Login compara contra la credencial fija, persiste auth_user y emite un token
// atado al instante de login. La espera simulada no se puede cancelar.
func (g *SessionGate) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if g.cfg.LoginDelay > 0 {
		time.Sleep(g.cfg.LoginDelay)
	}

	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(g.cfg.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword(g.hash, []byte(in.Password)) == nil
	if !userOK || !passOK {
		return nil, domain.ErrInvalidCredentials
	}

	now := g.clock.Now().UTC().Truncate(time.Millisecond)
	user := entity.AuthUser{Username: g.cfg.Username, Name: g.cfg.Name, LoginTime: now}
	token, err := jwt.Generate(g.cfg.JWT.Secret, user.Username, user.Name, g.cfg.JWT.Issuer, now, g.cfg.JWT.ExpMinutes)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.user = &user
	g.loading = false
	g.storage.Set(repository.KeyAuthUser, user)
	g.mu.Unlock()

	expiresAt := now.Add(time.Duration(g.cfg.JWT.ExpMinutes) * time.Minute)
	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: &expiresAt,
		User:      toAuthUserResponse(&user),
	}, nil
}

// Logout cierra la sesión y elimina auth_user; los tokens emitidos dejan de valer.
func (g *SessionGate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.user = nil
	g.storage.Remove(repository.KeyAuthUser)
}

// IsAuthenticated true si hay una sesión abierta.
func (g *SessionGate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user != nil
}

// IsLoading true solo durante la lectura inicial de la sesión.
func (g *SessionGate) IsLoading() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.loading
}

// User usuario de la sesión abierta.
func (g *SessionGate) User() (entity.AuthUser, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.user == nil {
		return entity.AuthUser{}, false
	}
	return *g.user, true
}

// Session estado de la sesión para la vista.
func (g *SessionGate) Session() dto.SessionResponse {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return dto.SessionResponse{
		IsAuthenticated: g.user != nil,
		IsLoading:       g.loading,
		User:            toAuthUserResponse(g.user),
	}
}

// ValidateToken verifica firma y expiración, y que el token pertenezca a la sesión abierta.
// Devuelve ErrUnauthorized si el token es inválido y ErrSessionClosed si la sesión
// fue cerrada o reemplazada por otro login.
func (g *SessionGate) ValidateToken(token string) (entity.AuthUser, error) {
	claims, err := jwt.Parse(g.cfg.JWT.Secret, token)
	if err != nil {
		return entity.AuthUser{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	user, ok := g.User()
	if !ok || claims.Username != user.Username || claims.LoginTime != user.LoginTime.UnixMilli() {
		return entity.AuthUser{}, domain.ErrSessionClosed
	}
	return user, nil
}

func toAuthUserResponse(u *entity.AuthUser) *dto.AuthUserResponse {
	if u == nil {
		return nil
	}
	return &dto.AuthUserResponse{
		Username:  u.Username,
		Name:      u.Name,
		LoginTime: u.LoginTime,
	}
}
