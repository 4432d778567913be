package auth

import (
	"context"
	"crypto/subtle"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
)

// RequireUser resuelve el token de un pasajero.
// ErrUnauthorized si falta, es inválido o pertenece a un admin; ErrUserNotFound si el usuario ya no existe.
func (uc *AuthUseCase) RequireUser(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil || claims.Role != entity.RoleUser {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, claims.SubjectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user.Principal(), nil
}

// RequireAdmin exige token de admin válido Y la API key vigente de ese admin.
// Un token válido sin key correcta no basta: ErrForbidden.
func (uc *AuthUseCase) RequireAdmin(ctx context.Context, token, apiKey string) (*entity.Principal, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil || claims.Role != entity.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	if apiKey == "" {
		return nil, domain.ErrForbidden
	}
	admin, err := uc.adminRepo.GetByID(ctx, claims.SubjectID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrForbidden
	}
	if subtle.ConstantTimeCompare([]byte(admin.APIKey), []byte(apiKey)) != 1 {
		return nil, domain.ErrForbidden
	}
	return admin.Principal(), nil
}
