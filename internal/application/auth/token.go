package auth

import (
	"time"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// TokenClaims contenido verificado de un token de sesión.
type TokenClaims struct {
	SubjectID string
	Role      entity.Role
}

// TokenService emite y verifica tokens de sesión. No guarda estado: no hay
// tabla de sesiones ni renovación, al expirar hay que volver a iniciar sesión.
type TokenService struct {
	cfg JWTConfig
}

// NewTokenService construye el servicio de tokens.
func NewTokenService(cfg JWTConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// TTL duración de validez de los tokens emitidos.
func (s *TokenService) TTL() time.Duration { return s.cfg.TTL }

// Issue firma {sub, role, exp = ahora + TTL}.
func (s *TokenService) Issue(subjectID string, role entity.Role) (string, time.Time, error) {
	if subjectID == "" || !role.Valid() {
		return "", time.Time{}, domain.ErrInvalidInput
	}
	return jwt.Generate(s.cfg.Secret, subjectID, role.String(), s.cfg.Issuer, s.cfg.TTL)
}

// Verify valida firma y expiración. Cualquier fallo, incluido un rol desconocido, es ErrInvalidToken.
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	subject, roleClaim, err := jwt.Parse(s.cfg.Secret, token)
	if err != nil || subject == "" {
		return nil, domain.ErrInvalidToken
	}
	role, ok := entity.ParseRole(roleClaim)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return &TokenClaims{SubjectID: subject, Role: role}, nil
}
