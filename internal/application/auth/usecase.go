package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
	"github.com/kartheek0410/Bus-Management-API/pkg/numcode"
)

// MinPasswordLength longitud mínima aceptada para contraseñas.
const MinPasswordLength = 6

const defaultAPIKeyAttempts = 5

// Options parámetros del almacén de credenciales.
type Options struct {
	BcryptCost      int
	APIKeyGenerator numcode.Generator // nil = numcode.New
	APIKeyAttempts  int
}

// AuthUseCase casos de uso de credenciales: registro, login, rotación de API key
// y resolución de la identidad a partir del token (ver access.go).
type AuthUseCase struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	tokens    *TokenService
	opts      Options

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, adminRepo repository.AdminRepository, tokens *TokenService, opts Options) *AuthUseCase {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.APIKeyGenerator == nil {
		opts.APIKeyGenerator = numcode.New
	}
	if opts.APIKeyAttempts <= 0 {
		opts.APIKeyAttempts = defaultAPIKeyAttempts
	}
	return &AuthUseCase{userRepo: userRepo, adminRepo: adminRepo, tokens: tokens, opts: opts}
}

// RegisterUser crea un pasajero: valida, hashea password con bcrypt y persiste.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.SignupRequest) (*entity.Principal, error) {
	name, email, err := validateSignup(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user.Principal(), nil
}

// RegisterAdmin crea un administrador con una API key nueva de 9 dígitos.
// Si la key colisiona con la de otro admin se genera otra.
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, in dto.SignupRequest) (*entity.Principal, error) {
	name, email, err := validateSignup(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i := 0; i < uc.opts.APIKeyAttempts; i++ {
		key, err := uc.opts.APIKeyGenerator()
		if err != nil {
			return nil, err
		}
		admin.APIKey = key
		err = uc.adminRepo.Create(ctx, admin)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return admin.Principal(), nil
	}
	return nil, fmt.Errorf("%w: no se pudo generar una API key única", domain.ErrConflict)
}

// VerifyCredential comprueba email/password para la cuenta del rol indicado.
// ErrAccountNotFound si el email no existe, ErrInvalidCredential si el hash no coincide.
func (uc *AuthUseCase) VerifyCredential(ctx context.Context, email, password string, role entity.Role) (*entity.Principal, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	var (
		hash      string
		principal *entity.Principal
	)
	switch role {
	case entity.RoleUser:
		user, err := uc.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			hash, principal = user.PasswordHash, user.Principal()
		}
	case entity.RoleAdmin:
		admin, err := uc.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if admin != nil {
			hash, principal = admin.PasswordHash, admin.Principal()
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if principal == nil {
		// Igualamos el coste de la respuesta con el de una cuenta existente.
		_ = bcrypt.CompareHashAndPassword(uc.dummy(), []byte(password))
		return nil, domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	return principal, nil
}

// RotateAPIKey reemplaza la API key del admin. La anterior deja de valer en cuanto se confirma el UPDATE.
func (uc *AuthUseCase) RotateAPIKey(ctx context.Context, adminID string) (string, error) {
	if adminID == "" {
		return "", domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", domain.ErrNotFound
	}
	for i := 0; i < uc.opts.APIKeyAttempts; i++ {
		key, err := uc.opts.APIKeyGenerator()
		if err != nil {
			return "", err
		}
		if key == admin.APIKey {
			continue
		}
		err = uc.adminRepo.UpdateAPIKey(ctx, adminID, key)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return "", err
		}
		return key, nil
	}
	return "", fmt.Errorf("%w: no se pudo generar una API key única", domain.ErrConflict)
}

// IssueSession emite el token de sesión para la identidad ya verificada.
func (uc *AuthUseCase) IssueSession(p *entity.Principal) (string, time.Time, error) {
	return uc.tokens.Issue(p.ID, p.Role)
}

func (uc *AuthUseCase) hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.opts.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (uc *AuthUseCase) dummy() []byte {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), uc.opts.BcryptCost)
	})
	return uc.dummyHash
}

func validateSignup(in dto.SignupRequest) (name, email string, err error) {
	name = strings.TrimSpace(in.Name)
	email = normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" || !strings.Contains(email, "@") {
		return "", "", domain.ErrInvalidInput
	}
	if len(in.Password) < MinPasswordLength {
		return "", "", domain.ErrWeakCredential
	}
	return name, email, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
