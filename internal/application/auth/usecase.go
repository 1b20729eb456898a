package auth

import (
	"time"

	"github.com/tu-usuario/restaurant-pos/internal/application/dto"
	"github.com/tu-usuario/restaurant-pos/internal/domain"
	"github.com/tu-usuario/restaurant-pos/internal/domain/entity"
	"github.com/tu-usuario/restaurant-pos/internal/domain/repository"
	"github.com/tu-usuario/restaurant-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens. Access y refresh usan
// el mismo secreto y la misma codificación; solo cambia la duración.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshDays   int
	Issuer        string
}

// AccessTTL duración del access token.
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessMinutes) * time.Minute
}

// RefreshTTL duración del refresh token.
func (c JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshDays) * 24 * time.Hour
}

// AuthUseCase casos de uso de autenticación: login, refresh, cambio de
// contraseña y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Login verifica username (o email) + password, actualiza last_login y
// devuelve el par access/refresh con el resumen del usuario.
// Credenciales malas -> ErrUnauthorized; cuenta inactiva -> ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.userRepo.GetByEmail(in.Username)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := VerifyPassword(user.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	user.LastLogin = &now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.AccessTTL())
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshTTL())
	if err != nil {
		return nil, err
	}

	authUser, err := uc.toAuthUser(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         *authUser,
	}, nil
}

// Refresh valida el refresh token, re-resuelve el usuario y emite un nuevo
// access token. El refresh token se devuelve sin cambios.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	username, err := jwt.Subject(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.AccessTTL())
	if err != nil {
		return nil, err
	}
	authUser, err := uc.toAuthUser(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         *authUser,
	}, nil
}

// ChangePassword verifica la contraseña actual y persiste el nuevo hash.
// Mismatch de la contraseña actual -> ErrInvalidInput (400 en el handler).
func (uc *AuthUseCase) ChangePassword(username string, in dto.PasswordChangeRequest) error {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := VerifyPassword(user.PasswordHash, in.OldPassword); err != nil {
		return domain.ErrInvalidInput
	}
	hash, err := HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return uc.userRepo.Update(user)
}

// CurrentUser devuelve el usuario autenticado por username (subject del token).
func (uc *AuthUseCase) CurrentUser(username string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		RoleID:    user.RoleID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}, nil
}

// toAuthUser resuelve el nombre del rol con un lookup explícito (sin grafo de objetos).
func (uc *AuthUseCase) toAuthUser(u *entity.User) (*dto.AuthUser, error) {
	roleName := ""
	if u.RoleID != nil {
		role, err := uc.roleRepo.GetByID(*u.RoleID)
		if err != nil {
			return nil, err
		}
		if role != nil {
			roleName = role.Name
		}
	}
	return &dto.AuthUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     roleName,
	}, nil
}
