package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Empleados-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "employee-directory-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	login := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	tok, err := pkgjwt.Generate(testSecret, "admin", "Administrator", testIssuer, login, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Administrator", claims.Name)
	assert.Equal(t, login.UnixMilli(), claims.LoginTime)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "admin", claims.Subject)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", "admin", "Administrator", testIssuer, time.Now(), 60)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "x.y.z")
	assert.Error(t, err)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "admin", "Administrator", testIssuer, time.Now(), -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "admin", "Administrator", testIssuer, time.Now(), 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
