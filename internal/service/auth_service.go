package service

import (
	"context"
	"time"

	"tramitesbackend/internal/apierror"
	"tramitesbackend/internal/config"
	"tramitesbackend/internal/dto"
	"tramitesbackend/internal/model"
	"tramitesbackend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apierror.NoAutenticado("Credenciales inválidas.")
	}
	if !user.IsActive {
		return nil, apierror.NoAutenticado("Credenciales inválidas.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.NoAutenticado("Credenciales inválidas.")
	}

	access, err := s.generarToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, apierror.Inesperado(err)
	}
	refresh, err := s.generarToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, apierror.Inesperado(err)
	}
	return &dto.TokenResponse{Access: access, Refresh: refresh}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.NoAutenticado("Refresh token inválido o expirado.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.NoAutenticado("Refresh token inválido o expirado.")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, apierror.NoAutenticado("Refresh token inválido o expirado.")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apierror.NoAutenticado("Refresh token inválido o expirado.")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil || !user.IsActive {
		return nil, apierror.NoAutenticado("Usuario no encontrado o inactivo.")
	}

	access, err := s.generarToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, apierror.Inesperado(err)
	}
	return &dto.TokenResponse{Access: access}, nil
}

func (s *authService) generarToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPassword is shared with the seeding command.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
