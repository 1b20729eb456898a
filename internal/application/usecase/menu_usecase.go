package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MenuCategoryUseCase casos de uso CRUD para categorías del menú (borrado lógico).
type MenuCategoryUseCase struct {
	repo repository.MenuCategoryRepository
}

// NewMenuCategoryUseCase construye el caso de uso.
func NewMenuCategoryUseCase(repo repository.MenuCategoryRepository) *MenuCategoryUseCase {
	return &MenuCategoryUseCase{repo: repo}
}

// Create crea una categoría nueva. Nombre duplicado -> ErrDuplicate desde el repo.
func (uc *MenuCategoryUseCase) Create(in dto.CreateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}
	category := &entity.MenuCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		SortOrder:   sortOrder,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toMenuCategoryResponse(category), nil
}

// List lista las categorías activas.
func (uc *MenuCategoryUseCase) List() ([]dto.MenuCategoryResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuCategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toMenuCategoryResponse(c))
	}
	return out, nil
}

// GetByID obtiene una categoría por ID, o nil si no existe.
func (uc *MenuCategoryUseCase) GetByID(id string) (*dto.MenuCategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toMenuCategoryResponse(category), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *MenuCategoryUseCase) Update(id string, in dto.UpdateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = in.Description
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toMenuCategoryResponse(category), nil
}

// Delete marca la categoría como inactiva (borrado lógico), o nil si no existe.
func (uc *MenuCategoryUseCase) Delete(id string) (*dto.MenuCategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	category.IsActive = false
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toMenuCategoryResponse(category), nil
}

func toMenuCategoryResponse(c *entity.MenuCategory) *dto.MenuCategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.MenuCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// MenuItemUseCase casos de uso CRUD para ítems del menú (borrado lógico),
// con búsqueda por nombre insensible a tildes.
type MenuItemUseCase struct {
	repo repository.MenuItemRepository
}

// NewMenuItemUseCase construye el caso de uso.
func NewMenuItemUseCase(repo repository.MenuItemRepository) *MenuItemUseCase {
	return &MenuItemUseCase{repo: repo}
}

// Create crea un ítem nuevo. Código duplicado -> ErrDuplicate desde el repo.
func (uc *MenuItemUseCase) Create(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item := &entity.MenuItem{
		ID:              uuid.New().String(),
		Code:            in.Code,
		Name:            in.Name,
		Description:     in.Description,
		CategoryID:      in.CategoryID,
		Price:           in.Price,
		TaxRate:         decimal.Zero,
		IsAvailable:     true,
		RequiresKitchen: true,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if in.TaxRate != nil {
		item.TaxRate = *in.TaxRate
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.RequiresKitchen != nil {
		item.RequiresKitchen = *in.RequiresKitchen
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// List lista los ítems activos. Con search no vacío filtra por nombre
// normalizado: "Café" y "cafe" encuentran lo mismo.
func (uc *MenuItemUseCase) List(search string) ([]dto.MenuItemResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	needle := normalizeSearch(search)
	out := make([]dto.MenuItemResponse, 0, len(list))
	for _, i := range list {
		if needle != "" && !strings.Contains(normalizeSearch(i.Name), needle) {
			continue
		}
		out = append(out, *toMenuItemResponse(i))
	}
	return out, nil
}

// GetByID obtiene un ítem por ID, o nil si no existe.
func (uc *MenuItemUseCase) GetByID(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toMenuItemResponse(item), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *MenuItemUseCase) Update(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Code != nil {
		item.Code = in.Code
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = in.Description
	}
	if in.CategoryID != nil {
		item.CategoryID = in.CategoryID
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.TaxRate != nil {
		item.TaxRate = *in.TaxRate
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.RequiresKitchen != nil {
		item.RequiresKitchen = *in.RequiresKitchen
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Delete marca el ítem como inactivo (borrado lógico), o nil si no existe.
func (uc *MenuItemUseCase) Delete(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	item.IsActive = false
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// normalizeSearch pasa a minúsculas y elimina marcas diacríticas (NFD ->
// quitar Mn -> NFC) para comparar nombres sin tildes.
func normalizeSearch(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func toMenuItemResponse(i *entity.MenuItem) *dto.MenuItemResponse {
	if i == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:              i.ID,
		Code:            i.Code,
		Name:            i.Name,
		Description:     i.Description,
		CategoryID:      i.CategoryID,
		Price:           i.Price,
		TaxRate:         i.TaxRate,
		IsAvailable:     i.IsAvailable,
		RequiresKitchen: i.RequiresKitchen,
		IsActive:        i.IsActive,
		CreatedAt:       i.CreatedAt,
	}
}
