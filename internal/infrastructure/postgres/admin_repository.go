package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	db Querier
}

// NewAdminRepository construye el adaptador de persistencia para administradores.
func NewAdminRepository(db Querier) *AdminRepo {
	return &AdminRepo{db: db}
}

const adminColumns = `id, name, email, password_hash, api_key, created_at, updated_at`

// Create persiste un admin. Distingue email repetido de API key repetida por el nombre del constraint.
func (r *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	query := `
		INSERT INTO admins (id, name, email, password_hash, api_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, a.ID, a.Name, a.Email, a.PasswordHash, a.APIKey, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return adminWriteError("insert admin", err)
	}
	return nil
}

// GetByID obtiene un admin por ID.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	return r.getOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
}

// GetByEmail obtiene un admin por email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.getOne(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
}

// UpdateAPIKey reemplaza la key en una sola sentencia; la anterior deja de ser válida al confirmar.
func (r *AdminRepo) UpdateAPIKey(ctx context.Context, id, apiKey string) error {
	tag, err := r.db.Exec(ctx, `UPDATE admins SET api_key = $2, updated_at = NOW() WHERE id = $1`, id, apiKey)
	if err != nil {
		return adminWriteError("update api key", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdminRepo) getOne(ctx context.Context, query string, arg any) (*entity.Admin, error) {
	var a entity.Admin
	err := r.db.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.APIKey, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

func adminWriteError(op string, err error) error {
	switch name, _ := uniqueConstraint(err); name {
	case constraintAdminsAPIKey:
		return domain.ErrDuplicate
	case constraintAdminsEmail:
		return domain.ErrEmailAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}
