package usecase

import (
	"context"

	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
)

// TableTxRunner ejecuta un callback con los repos de mesa y estado atados a
// una misma transacción. Lo implementa la infraestructura PostgreSQL; el
// ciclo de vida de mesas lo usa para que la pareja mesa+estado se cree y se
// borre como una sola unidad de trabajo.
type TableTxRunner interface {
	RunTableTx(ctx context.Context, fn func(
		tables repository.TableRepository,
		statuses repository.TableStatusRepository,
	) error) error
}
