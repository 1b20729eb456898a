package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/restaurant-pos/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "restaurant-pos-test"
)

// Caso 1: Generar y validar un token devuelve el mismo subject.
func TestGenerate_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "mesero1", testIssuer, time.Hour)
	require.NoError(t, err, "debe generarse un token válido")
	require.NotEmpty(t, tok)

	sub, err := pkgjwt.Subject(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "mesero1", sub, "el subject debe ser el username original")

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testIssuer, claims.RegisteredClaims.Issuer)
}

// Caso 2: secret vacío es un error de configuración.
func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "mesero1", testIssuer, time.Hour)
	assert.Error(t, err, "secret vacío no debe generar token")
}

// Caso 3: un token firmado con otro secret no valida.
func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "mesero1", testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

// Caso 4: un token expirado no valida (firma y expiración colapsan en el mismo fallo).
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "mesero1", testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token expirado debe rechazarse")
}

// Caso 5: basura arbitraria no valida.
func TestParse_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
