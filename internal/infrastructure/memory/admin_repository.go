package memory

import (
	"context"
	"time"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// AdminRepo implementación en memoria de repository.AdminRepository.
type AdminRepo struct {
	r runner
}

var _ repository.AdminRepository = (*AdminRepo)(nil)

// Create inserta un admin; email y API key son únicos.
func (r *AdminRepo) Create(_ context.Context, a *entity.Admin) error {
	return r.r.update(func(st *state) error {
		for _, existing := range st.admins {
			if existing.Email == a.Email {
				return domain.ErrEmailAlreadyExists
			}
			if existing.APIKey == a.APIKey {
				return domain.ErrDuplicate
			}
		}
		cp := *a
		st.admins[a.ID] = &cp
		return nil
	})
}

// GetByID obtiene un admin por ID.
func (r *AdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	var out *entity.Admin
	err := r.r.view(func(st *state) error {
		if a, ok := st.admins[id]; ok {
			cp := *a
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetByEmail obtiene un admin por email.
func (r *AdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	var out *entity.Admin
	err := r.r.view(func(st *state) error {
		for _, a := range st.admins {
			if a.Email == email {
				cp := *a
				out = &cp
				return nil
			}
		}
		return nil
	})
	return out, err
}

// UpdateAPIKey reemplaza la API key del admin.
func (r *AdminRepo) UpdateAPIKey(_ context.Context, id, apiKey string) error {
	return r.r.update(func(st *state) error {
		a, ok := st.admins[id]
		if !ok {
			return domain.ErrNotFound
		}
		for otherID, other := range st.admins {
			if otherID != id && other.APIKey == apiKey {
				return domain.ErrDuplicate
			}
		}
		a.APIKey = apiKey
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}
