package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/application/usecase"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
)

type fakeMenuItemRepo struct {
	items map[string]*entity.MenuItem
}

func newFakeMenuItemRepo() *fakeMenuItemRepo {
	return &fakeMenuItemRepo{items: map[string]*entity.MenuItem{}}
}

func (r *fakeMenuItemRepo) Create(i *entity.MenuItem) error {
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *fakeMenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeMenuItemRepo) ListActive() ([]*entity.MenuItem, error) {
	out := make([]*entity.MenuItem, 0, len(r.items))
	for _, i := range r.items {
		if i.IsActive {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMenuItemRepo) Update(i *entity.MenuItem) error {
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func newMenuItemUseCase(t *testing.T, names ...string) *usecase.MenuItemUseCase {
	t.Helper()
	repo := newFakeMenuItemRepo()
	uc := usecase.NewMenuItemUseCase(repo)
	for _, name := range names {
		_, err := uc.Create(dto.CreateMenuItemRequest{
			Name:  name,
			Price: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}
	return uc
}

func itemNames(list []dto.MenuItemResponse) []string {
	out := make([]string, 0, len(list))
	for _, i := range list {
		out = append(out, i.Name)
	}
	return out
}

// Caso 1: crear aplica los defaults de disponibilidad y cocina.
func TestMenuItemCreate_Defaults(t *testing.T) {
	repo := newFakeMenuItemRepo()
	uc := usecase.NewMenuItemUseCase(repo)

	out, err := uc.Create(dto.CreateMenuItemRequest{
		Name:  "Café americano",
		Price: decimal.NewFromFloat(3.50),
	})
	require.NoError(t, err)
	assert.True(t, out.IsAvailable, "un ítem nuevo está disponible por defecto")
	assert.True(t, out.RequiresKitchen, "un ítem nuevo pasa por cocina por defecto")
	assert.True(t, out.IsActive)
	assert.True(t, out.TaxRate.IsZero())
}

// Caso 2: la búsqueda ignora tildes y mayúsculas en ambos lados.
func TestMenuItemList_BusquedaInsensibleATildes(t *testing.T) {
	uc := newMenuItemUseCase(t, "Café americano", "Té verde", "Limonada")

	list, err := uc.List("cafe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Café americano"}, itemNames(list),
		"'cafe' sin tilde debe encontrar 'Café'")

	list, err = uc.List("CAFÉ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Café americano"}, itemNames(list))

	list, err = uc.List("te")
	require.NoError(t, err)
	assert.Contains(t, itemNames(list), "Té verde")
}

// Caso 3: búsqueda vacía (o de solo espacios) devuelve todo.
func TestMenuItemList_BusquedaVacia(t *testing.T) {
	uc := newMenuItemUseCase(t, "Café americano", "Limonada")

	list, err := uc.List("")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.List("   ")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// Caso 4: sin coincidencias devuelve lista vacía, no nil ni error.
func TestMenuItemList_SinCoincidencias(t *testing.T) {
	uc := newMenuItemUseCase(t, "Café americano")

	list, err := uc.List("hamburguesa")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

// Caso 5: el borrado es lógico y saca el ítem del listado.
func TestMenuItemDelete_Logico(t *testing.T) {
	repo := newFakeMenuItemRepo()
	uc := usecase.NewMenuItemUseCase(repo)

	created, err := uc.Create(dto.CreateMenuItemRequest{
		Name:  "Limonada",
		Price: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	out, err := uc.Delete(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.IsActive)

	// Sigue existiendo la fila, pero ya no aparece en el listado.
	stored, _ := repo.GetByID(created.ID)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)

	list, err := uc.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}
