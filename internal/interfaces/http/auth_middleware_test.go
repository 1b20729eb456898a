package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	apphttp "github.com/tu-usuario/restaurant-pos/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/restaurant-pos/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "restaurant-pos-test"
)

// fakeUserRepo resuelve usuarios por username para el middleware.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) ListActive() ([]*entity.User, error)          { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                  { return nil }

// buildAuthApp construye una app mínima con una ruta protegida que devuelve
// los locals que dejó el middleware.
func buildAuthApp(users ...*entity.User) *fiber.App {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

func activeUser(username string) *entity.User {
	return &entity.User{
		ID:       "user-" + username,
		Username: username,
		IsActive: true,
	}
}

func tokenFor(t *testing.T, username string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, username, testIssuer, time.Hour)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido de usuario activo → 200 con los locals cargados.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildAuthApp(activeUser("mesero1"))
	resp := doProtected(t, app, tokenFor(t, "mesero1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "user-mesero1", body["user_id"])
	assert.Equal(t, "mesero1", body["username"])
}

// Caso 2: sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildAuthApp(activeUser("mesero1"))
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

// Caso 3: header sin el prefijo Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	app := buildAuthApp(activeUser("mesero1"))
	resp := doProtected(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

// Caso 4: token firmado con otro secret → 401 INVALID_TOKEN.
func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	app := buildAuthApp(activeUser("mesero1"))
	ajeno, err := pkgjwt.Generate("otro-secret", "mesero1", testIssuer, time.Hour)
	require.NoError(t, err)
	resp := doProtected(t, app, "Bearer "+ajeno)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildAuthApp(activeUser("mesero1"))
	expirado, err := pkgjwt.Generate(testJWTSecret, "mesero1", testIssuer, -time.Minute)
	require.NoError(t, err)
	resp := doProtected(t, app, "Bearer "+expirado)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token válido pero el usuario ya no existe → 401.
func TestAuthMiddleware_UsuarioInexistente(t *testing.T) {
	app := buildAuthApp() // repo vacío
	resp := doProtected(t, app, tokenFor(t, "fantasma"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: usuario inactivo → 403 FORBIDDEN.
func TestAuthMiddleware_UsuarioInactivo(t *testing.T) {
	inactivo := activeUser("mesero1")
	inactivo.IsActive = false
	app := buildAuthApp(inactivo)
	resp := doProtected(t, app, tokenFor(t, "mesero1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "FORBIDDEN", body["code"])
}
