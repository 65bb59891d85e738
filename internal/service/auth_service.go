package service

import (
	"context"
	"fmt"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.TokenResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.TokenResponse, error)
	// ValidateToken verifies an access token and returns the user id it was
	// issued for.
	ValidateToken(tokenString string) (string, error)
}

type authService struct {
	userRepo domain.UserRepository
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo domain.UserRepository, jwtCfg config.JWTConfig, now func() time.Time) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		now:      now,
	}
}

// SignUp registers a new account and returns an access token.
func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.NewInvalidInputError("email and password are required")
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, domain.NewInvalidInputError("first_name and last_name are required")
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewEmailAlreadyExistsError(req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		ID:         util.NewULID(),
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   string(hash),
		IsEnabled:  true,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// SignIn verifies credentials and returns an access token.
func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.NewInvalidInputError("email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.NewInvalidCredentialsError()
	}
	if !user.IsEnabled {
		return nil, domain.NewUnauthorizedError("Account is disabled")
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *domain.User) (*dto.TokenResponse, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return nil, domain.NewInternalError("Failed to sign access token", err)
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtCfg.AccessTokenTTL.Seconds()),
		User:        *toUserResponse(user),
	}, nil
}

// ValidateToken implements AuthService
func (s *authService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", domain.NewUnauthorizedError("Invalid or expired access token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.NewUnauthorizedError("Invalid token claims")
	}
	return claims.Subject, nil
}
