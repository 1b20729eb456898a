package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// InventoryUseCase casos de uso CRUD para insumos de inventario (borrado lógico).
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create crea un insumo nuevo. SKU duplicado -> ErrDuplicate desde el repo.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	item := &entity.Inventory{
		ID:           uuid.New().String(),
		ItemName:     in.ItemName,
		SKU:          in.SKU,
		Unit:         in.Unit,
		Quantity:     decimal.Zero,
		MinimumStock: decimal.Zero,
		IsActive:     true,
		LastUpdated:  time.Now(),
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinimumStock != nil {
		item.MinimumStock = *in.MinimumStock
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// List lista los insumos activos.
func (uc *InventoryUseCase) List() ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toInventoryResponse(i))
	}
	return out, nil
}

// GetByID obtiene un insumo por ID, o nil si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toInventoryResponse(item), nil
}

// Update aplica una actualización parcial y refresca LastUpdated.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.SKU != nil {
		item.SKU = in.SKU
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinimumStock != nil {
		item.MinimumStock = *in.MinimumStock
	}
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// Delete marca el insumo como inactivo (borrado lógico), o nil si no existe.
func (uc *InventoryUseCase) Delete(id string) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	item.IsActive = false
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

func toInventoryResponse(i *entity.Inventory) *dto.InventoryResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:           i.ID,
		ItemName:     i.ItemName,
		SKU:          i.SKU,
		Unit:         i.Unit,
		Quantity:     i.Quantity,
		MinimumStock: i.MinimumStock,
		IsActive:     i.IsActive,
		LastUpdated:  i.LastUpdated,
	}
}

// RecipeItemUseCase casos de uso CRUD para líneas de receta (borrado lógico).
type RecipeItemUseCase struct {
	repo repository.RecipeItemRepository
}

// NewRecipeItemUseCase construye el caso de uso.
func NewRecipeItemUseCase(repo repository.RecipeItemRepository) *RecipeItemUseCase {
	return &RecipeItemUseCase{repo: repo}
}

// Create asocia un insumo a un ítem del menú.
func (uc *RecipeItemUseCase) Create(in dto.CreateRecipeItemRequest) (*dto.RecipeItemResponse, error) {
	item := &entity.RecipeItem{
		ID:          uuid.New().String(),
		MenuItemID:  in.MenuItemID,
		InventoryID: in.InventoryID,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		IsActive:    true,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toRecipeItemResponse(item), nil
}

// List lista las líneas de receta activas.
func (uc *RecipeItemUseCase) List() ([]dto.RecipeItemResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeItemResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRecipeItemResponse(r))
	}
	return out, nil
}

// GetByID obtiene una línea de receta por ID, o nil si no existe.
func (uc *RecipeItemUseCase) GetByID(id string) (*dto.RecipeItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toRecipeItemResponse(item), nil
}

// Update aplica una actualización parcial (solo los campos presentes).
func (uc *RecipeItemUseCase) Update(id string, in dto.UpdateRecipeItemRequest) (*dto.RecipeItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.MenuItemID != nil {
		item.MenuItemID = *in.MenuItemID
	}
	if in.InventoryID != nil {
		item.InventoryID = *in.InventoryID
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = in.Unit
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toRecipeItemResponse(item), nil
}

// Delete marca la línea como inactiva (borrado lógico), o nil si no existe.
func (uc *RecipeItemUseCase) Delete(id string) (*dto.RecipeItemResponse, error) {
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
	return toRecipeItemResponse(item), nil
}

func toRecipeItemResponse(r *entity.RecipeItem) *dto.RecipeItemResponse {
	if r == nil {
		return nil
	}
	return &dto.RecipeItemResponse{
		ID:          r.ID,
		MenuItemID:  r.MenuItemID,
		InventoryID: r.InventoryID,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		IsActive:    r.IsActive,
	}
}
