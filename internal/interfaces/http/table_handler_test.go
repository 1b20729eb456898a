package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
	apphttp "github.com/tu-usuario/restaurant-pos/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el ciclo de vida de mesas
// ──────────────────────────────────────────────────────────────────────────────

type memTableRepo struct {
	tables map[string]*entity.Table
}

func (r *memTableRepo) Create(t *entity.Table) error {
	for _, existing := range r.tables {
		if existing.Code == t.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *memTableRepo) GetByID(id string) (*entity.Table, error) {
	t, ok := r.tables[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTableRepo) ListActive() ([]*entity.Table, error) {
	out := make([]*entity.Table, 0, len(r.tables))
	for _, t := range r.tables {
		if t.IsActive {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTableRepo) Update(t *entity.Table) error {
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *memTableRepo) Delete(id string) (bool, error) {
	if _, ok := r.tables[id]; !ok {
		return false, nil
	}
	delete(r.tables, id)
	return true, nil
}

type memTableStatusRepo struct {
	statuses map[string]*entity.TableStatus // por table_id
}

func (r *memTableStatusRepo) Create(s *entity.TableStatus) error {
	cp := *s
	r.statuses[s.TableID] = &cp
	return nil
}

func (r *memTableStatusRepo) GetByTableID(tableID string) (*entity.TableStatus, error) {
	s, ok := r.statuses[tableID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memTableStatusRepo) ListAll() ([]*entity.TableStatus, error) {
	out := make([]*entity.TableStatus, 0, len(r.statuses))
	for _, s := range r.statuses {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTableStatusRepo) Update(s *entity.TableStatus) error {
	cp := *s
	r.statuses[s.TableID] = &cp
	return nil
}

func (r *memTableStatusRepo) DeleteByTableID(tableID string) error {
	delete(r.statuses, tableID)
	return nil
}

type memTxRunner struct {
	tables   repository.TableRepository
	statuses repository.TableStatusRepository
}

func (r *memTxRunner) RunTableTx(_ context.Context, fn func(repository.TableRepository, repository.TableStatusRepository) error) error {
	return fn(r.tables, r.statuses)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTableApp monta las rutas de mesas detrás del middleware de auth,
// igual que el router real.
func buildTableApp() *fiber.App {
	tables := &memTableRepo{tables: map[string]*entity.Table{}}
	statuses := &memTableStatusRepo{statuses: map[string]*entity.TableStatus{}}
	tx := &memTxRunner{tables: tables, statuses: statuses}
	uc := usecase.NewTableUseCase(tx, tables, statuses)
	h := apphttp.NewTableHandler(uc)

	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"mesero1": activeUser("mesero1"),
	}}

	app := fiber.New()
	g := app.Group("/api/tables", apphttp.AuthMiddleware(testJWTSecret, userRepo))
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Patch("/:id/status", h.UpdateStatus)
	g.Delete("/:id", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenFor(t, "mesero1"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TableHandler
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: crear → estado free → ocupar → borrar → 404.
func TestTableHandler_CicloDeVida(t *testing.T) {
	app := buildTableApp()

	// Crear T1 con 4 asientos.
	resp := doJSON(t, app, http.MethodPost, "/api/tables/", map[string]any{
		"code": "T1", "seats": 4, "location": "terraza",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "T1", created["code"])
	assert.Equal(t, "free", created["status"], "una mesa nueva nace libre")
	id := created["id"].(string)
	require.NotEmpty(t, id)

	// Ocupar la mesa; updated_by queda registrado desde el token.
	resp = doJSON(t, app, http.MethodPatch, "/api/tables/"+id+"/status", map[string]any{
		"status": "occupied",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	patched := decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "occupied", patched["status"])
	assert.Equal(t, "user-mesero1", patched["updated_by"])

	// El GET refleja el estado nuevo.
	resp = doJSON(t, app, http.MethodGet, "/api/tables/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "occupied", got["status"])

	// Borrar devuelve el resumen con estado "deleted".
	resp = doJSON(t, app, http.MethodDelete, "/api/tables/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "deleted", deleted["status"])

	// Después del borrado, la mesa ya no existe.
	resp = doJSON(t, app, http.MethodGet, "/api/tables/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// Código duplicado → 409 DUPLICATE.
func TestTableHandler_CodigoDuplicado(t *testing.T) {
	app := buildTableApp()

	resp := doJSON(t, app, http.MethodPost, "/api/tables/", map[string]any{"code": "T1", "seats": 4})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/tables/", map[string]any{"code": "T1", "seats": 2})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	resp.Body.Close()
	assert.Equal(t, "DUPLICATE", body["code"])
}

// Validación: code vacío o seats <= 0 → 400 VALIDATION.
func TestTableHandler_Validacion(t *testing.T) {
	app := buildTableApp()

	resp := doJSON(t, app, http.MethodPost, "/api/tables/", map[string]any{"code": "", "seats": 4})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/tables/", map[string]any{"code": "T1", "seats": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// PATCH de estado sobre mesa inexistente → 404.
func TestTableHandler_StatusMesaInexistente(t *testing.T) {
	app := buildTableApp()

	resp := doJSON(t, app, http.MethodPatch, "/api/tables/no-existe/status", map[string]any{
		"status": "occupied",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// El listado compone mesa + estado actual.
func TestTableHandler_List(t *testing.T) {
	app := buildTableApp()

	resp := doJSON(t, app, http.MethodPost, "/api/tables/", map[string]any{"code": "T1", "seats": 4})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/tables/", map[string]any{"code": "T2", "seats": 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/tables/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Len(t, list, 2)
	for _, row := range list {
		assert.Equal(t, "free", row["status"])
	}
}
