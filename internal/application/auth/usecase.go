package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
	"github.com/jhoicas/siloe-api/pkg/jwt"
)

// Config parámetros fijos del flujo de auth, cargados una vez al arranque.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	JWTExp     int // horas de validez del token
	BcryptCost int
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	cfg      Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, cfg: cfg}
}

// Login verifica email/password, actualiza last_login y genera el JWT con
// {user_id, email, role_id}. Un password que no coincide es un resultado
// negativo normal (ErrInvalidPassword), nunca un error de servidor.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Email, user.RoleID, uc.cfg.JWTIssuer, uc.cfg.JWTExp)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		User:    *ToUserResponse(user),
	}, nil
}

// Register crea un usuario (rol explícito, email único) y emite un token
// automático, igual que el login.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		RoleID:       in.RoleID,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Email, user.RoleID, uc.cfg.JWTIssuer, uc.cfg.JWTExp)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Message: "Usuario registrado exitosamente",
		Token:   token,
		User:    *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea la entidad al DTO de salida (sin hash de contraseña).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		RoleID:    u.RoleID,
		Status:    u.Status,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
