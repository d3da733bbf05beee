package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Admin   AdminConfig
	UI      UIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// JWTConfig configuración de JWT.
// Si JWT_SECRET no está definido se genera uno aleatorio por proceso (Ephemeral=true):
// los tokens no sobreviven a un reinicio.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
	Ephemeral  bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig ubicación del almacenamiento local.
type StorageConfig struct {
	Dir         string
	File        string
	SeedOnEmpty bool // sembrar la colección de demostración en la primera carga vacía
}

// AdminConfig credencial fija del administrador.
// PasswordHash (bcrypt) tiene prioridad sobre Password.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
	Name         string
}

// UIConfig parámetros de la capa de presentación.
type UIConfig struct {
	LoginDelay  time.Duration
	SaveDelay   time.Duration
	SwaggerFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, STORAGE_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "employee-directory"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "employee-directory"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Dir:         getString(v, "STORAGE_DIR", "./data"),
			File:        getString(v, "STORAGE_FILE", "localstore.db"),
			SeedOnEmpty: getBool(v, "SEED_ON_EMPTY", true),
		},
		Admin: AdminConfig{
			Username:     getString(v, "ADMIN_USERNAME", "admin"),
			Password:     getString(v, "ADMIN_PASSWORD", "admin123"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
			Name:         getString(v, "ADMIN_NAME", "Administrator"),
		},
		UI: UIConfig{
			LoginDelay:  getMillis(v, "LOGIN_DELAY_MS", 800),
			SaveDelay:   getMillis(v, "SAVE_DELAY_MS", 500),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.JWT.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("config: generar JWT_SECRET: %w", err)
		}
		cfg.JWT.Secret = secret
		cfg.JWT.Ephemeral = true
	}
	if cfg.JWT.Expiration <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo")
	}
	if cfg.Admin.Username == "" {
		return nil, fmt.Errorf("config: ADMIN_USERNAME vacío")
	}

	return cfg, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		if s, ok := v.Get(key).(string); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return def
			}
			return b
		}
		return v.GetBool(key)
	}
	return def
}

func getMillis(v *viper.Viper, key string, def int) time.Duration {
	ms := getInt(v, key, def)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}
