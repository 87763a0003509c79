package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventia/internal/dto"
	"inventia/internal/model"
	"inventia/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Claims is the JWT payload for both access and refresh tokens. TokenType
// distinguishes them so a refresh token can never authorize an API call.
type Claims struct {
	UserID    string `json:"uid"`
	Username  string `json:"username"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type AuthService struct {
	usuarios   repository.UsuarioRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(usuarios repository.UsuarioRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		usuarios:   usuarios,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.usuarios.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciales
		}
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if !VerifyPassword(req.Password, u.PasswordHash) {
		return nil, ErrCredenciales
	}
	return s.tokens(u)
}

func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := s.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, fmt.Errorf("%w: se esperaba un refresh token", ErrTokenInvalido)
	}
	u, err := s.usuarios.FindByUsername(ctx, claims.Username)
	if err != nil {
		// the account may have been removed since the token was issued
		return nil, ErrTokenInvalido
	}
	return s.tokens(u)
}

func (s *AuthService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.usuarios.FindByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: el username ya esta en uso", ErrConflictoReferencial)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("generando hash: %w", err)
	}
	u := &model.Usuario{
		Username:      req.Username,
		PasswordHash:  hash,
		FechaRegistro: time.Now(),
	}
	if err := s.usuarios.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creando usuario: %w", err)
	}
	return usuarioToResponse(u), nil
}

func (s *AuthService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando usuarios: %w", err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *usuarioToResponse(&usuarios[i]))
	}
	return out, nil
}

// ParseToken validates signature, expiry and signing method. Middleware uses
// it for access tokens; Refresh uses it for refresh tokens.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metodo de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}

func (s *AuthService) tokens(u *model.Usuario) (*dto.LoginResponse, error) {
	access, err := s.sign(u, "access", s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("firmando access token: %w", err)
	}
	refresh, err := s.sign(u, "refresh", s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("firmando refresh token: %w", err)
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(s.accessTTL.Seconds()),
		User:         *usuarioToResponse(u),
	}, nil
}

func (s *AuthService) sign(u *model.Usuario, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    u.ID.String(),
		Username:  u.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   u.ID.String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:            u.ID.String(),
		Username:      u.Username,
		FechaRegistro: u.FechaRegistro.Format(fechaFormato),
	}
}
