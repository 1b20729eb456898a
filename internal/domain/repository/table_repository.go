package repository

import "github.com/tu-usuario/restaurant-pos/internal/domain/entity"

// TableRepository define el puerto de persistencia para Table (DIP).
type TableRepository interface {
	Create(table *entity.Table) error
	GetByID(id string) (*entity.Table, error)
	ListActive() ([]*entity.Table, error)
	Update(table *entity.Table) error
	// Delete elimina físicamente la mesa; devuelve false si no existía.
	Delete(id string) (bool, error)
}

// TableStatusRepository define el puerto de persistencia para TableStatus (DIP).
// La fila de estado se localiza por table_id, no por su propio id: el ciclo
// de vida opera siempre desde la perspectiva de la mesa.
type TableStatusRepository interface {
	Create(status *entity.TableStatus) error
	GetByTableID(tableID string) (*entity.TableStatus, error)
	ListAll() ([]*entity.TableStatus, error)
	Update(status *entity.TableStatus) error
	// DeleteByTableID elimina la(s) fila(s) de estado de una mesa.
	DeleteByTableID(tableID string) error
}
