package repository

import (
	"context"

	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin.
type AdminRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe y
	// domain.ErrDuplicate si la API key colisiona con la de otro admin.
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// UpdateAPIKey reemplaza la key en una sola sentencia. domain.ErrNotFound si el admin
	// no existe, domain.ErrDuplicate si la key ya está en uso.
	UpdateAPIKey(ctx context.Context, id, apiKey string) error
}
