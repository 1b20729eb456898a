package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/restaurant-pos/internal/application/auth"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/restaurant-pos/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.Username] = u
	return nil
}

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

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListActive() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.Username] = u
	return nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func (r *fakeRoleRepo) Create(role *entity.Role) error { return nil }
func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.roles[id], nil
}
func (r *fakeRoleRepo) ListActive() ([]*entity.Role, error) { return nil, nil }
func (r *fakeRoleRepo) Update(role *entity.Role) error      { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "contraseña-correcta"
)

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		Secret:        testSecret,
		AccessMinutes: 60,
		RefreshDays:   7,
		Issuer:        "restaurant-pos-test",
	}
}

// newTestUser crea un usuario activo con la contraseña de prueba hasheada.
func newTestUser(t *testing.T, username, roleID string) *entity.User {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	email := username + "@resto.test"
	return &entity.User{
		ID:           "00000000-0000-0000-0000-00000000000" + username[len(username)-1:],
		Username:     username,
		Email:        &email,
		PasswordHash: hash,
		RoleID:       &roleID,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func newTestUseCase(t *testing.T, users ...*entity.User) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo(users...)
	roleRepo := &fakeRoleRepo{roles: map[string]*entity.Role{
		"role-1": {ID: "role-1", Name: "mesero", IsActive: true},
	}}
	return auth.NewAuthUseCase(userRepo, roleRepo, testJWTConfig()), userRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: credenciales correctas devuelven ambos tokens, el rol resuelto
// por nombre y registran last_login.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	user := newTestUser(t, "mesero1", "role-1")
	uc, repo := newTestUseCase(t, user)

	out, err := uc.Login(dto.LoginRequest{Username: "mesero1", Password: testPassword})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "mesero1", out.User.Username)
	assert.Equal(t, "mesero", out.User.Role, "el rol debe resolverse por nombre")

	// Ambos tokens llevan el username como subject.
	sub, err := pkgjwt.Subject(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "mesero1", sub)
	sub, err = pkgjwt.Subject(testSecret, out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "mesero1", sub)

	stored, _ := repo.GetByUsername("mesero1")
	assert.NotNil(t, stored.LastLogin, "login debe registrar last_login")
}

// Caso 2: también se puede entrar con el email en el campo username.
func TestLogin_ConEmail(t *testing.T) {
	user := newTestUser(t, "mesero1", "role-1")
	uc, _ := newTestUseCase(t, user)

	out, err := uc.Login(dto.LoginRequest{Username: *user.Email, Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "mesero1", out.User.Username)
}

// Caso 3: contraseña incorrecta -> ErrUnauthorized, igual que usuario inexistente.
func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newTestUseCase(t, newTestUser(t, "mesero1", "role-1"))

	_, err := uc.Login(dto.LoginRequest{Username: "mesero1", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "no-existe", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password malo deben ser indistinguibles")
}

// Caso 4: cuenta inactiva -> ErrForbidden (la contraseña se verifica antes).
func TestLogin_CuentaInactiva(t *testing.T) {
	user := newTestUser(t, "mesero1", "role-1")
	user.IsActive = false
	uc, _ := newTestUseCase(t, user)

	_, err := uc.Login(dto.LoginRequest{Username: "mesero1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Refresh
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: refresh emite un access nuevo y devuelve el mismo refresh token.
func TestRefresh_TokenValido(t *testing.T) {
	user := newTestUser(t, "mesero1", "role-1")
	uc, _ := newTestUseCase(t, user)

	login, err := uc.Login(dto.LoginRequest{Username: "mesero1", Password: testPassword})
	require.NoError(t, err)

	out, err := uc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.RefreshToken, out.RefreshToken,
		"el refresh token debe devolverse sin cambios")
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "mesero1", out.User.Username)
}

// Caso 6: refresh con basura o con token de otro secret -> ErrUnauthorized.
func TestRefresh_TokenInvalido(t *testing.T) {
	uc, _ := newTestUseCase(t, newTestUser(t, "mesero1", "role-1"))

	_, err := uc.Refresh("no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ajeno, err := pkgjwt.Generate("otro-secret", "mesero1", "x", time.Hour)
	require.NoError(t, err)
	_, err = uc.Refresh(ajeno)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 7: token válido pero el usuario ya no existe -> ErrUnauthorized.
func TestRefresh_UsuarioDesaparecido(t *testing.T) {
	uc, _ := newTestUseCase(t) // repo vacío

	tok, err := pkgjwt.Generate(testSecret, "fantasma", "restaurant-pos-test", time.Hour)
	require.NoError(t, err)
	_, err = uc.Refresh(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

// Caso 8: cambio correcto persiste un hash nuevo y permite login con la nueva.
func TestChangePassword_OK(t *testing.T) {
	user := newTestUser(t, "mesero1", "role-1")
	uc, repo := newTestUseCase(t, user)
	viejoHash := user.PasswordHash

	err := uc.ChangePassword("mesero1", dto.PasswordChangeRequest{
		OldPassword: testPassword,
		NewPassword: "nueva-contraseña-larga",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByUsername("mesero1")
	assert.NotEqual(t, viejoHash, stored.PasswordHash, "el hash debe cambiar")

	_, err = uc.Login(dto.LoginRequest{Username: "mesero1", Password: "nueva-contraseña-larga"})
	assert.NoError(t, err, "la nueva contraseña debe servir para login")
	_, err = uc.Login(dto.LoginRequest{Username: "mesero1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la vieja ya no debe servir")
}

// Caso 9: la contraseña actual no coincide -> ErrInvalidInput.
func TestChangePassword_ActualIncorrecta(t *testing.T) {
	uc, _ := newTestUseCase(t, newTestUser(t, "mesero1", "role-1"))

	err := uc.ChangePassword("mesero1", dto.PasswordChangeRequest{
		OldPassword: "equivocada",
		NewPassword: "nueva-contraseña-larga",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 10: usuario inexistente -> ErrUserNotFound.
func TestChangePassword_UsuarioInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)

	err := uc.ChangePassword("fantasma", dto.PasswordChangeRequest{
		OldPassword: testPassword,
		NewPassword: "nueva-contraseña-larga",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
