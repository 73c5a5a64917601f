package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/db/repository"
	"github.com/pizza-pixel/ordering-service/internal/models"
)

// JWTConfig holds configuration for JWT token generation
type JWTConfig struct {
	Secret    string
	ExpiresIn int // hours
}

// AuthService handles authentication, registration, and profile management
type AuthService struct {
	repos     *repository.Repositories
	jwtConfig JWTConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(repos *repository.Repositories, jwtConfig JWTConfig) *AuthService {
	return &AuthService{
		repos:     repos,
		jwtConfig: jwtConfig,
	}
}

// Claims represents JWT claims
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates a customer account and returns its profile with a session
// token. The email uniqueness pre-check races with concurrent registrations;
// the unique index on users.email is what actually guarantees it.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.Profile, string, error) {
	exists, err := s.repos.User.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", api.Conflict("Email already registered")
	}

	hashed, err := models.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repos.User.Create(ctx, models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
		Role:      models.RoleCustomer,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	profile := user.Profile()
	return &profile, token, nil
}

// Login authenticates a user and returns their profile with a session token.
// Stored passwords are either bcrypt digests or legacy plaintext from seed
// data; models.ParseCredential makes that branch explicit.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Profile, string, error) {
	user, err := s.repos.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", api.Unauthorized("Invalid credentials")
		}
		return nil, "", err
	}

	if !models.ParseCredential(user.Password).Matches(password) {
		return nil, "", api.Unauthorized("Invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	profile := user.Profile()
	return &profile, token, nil
}

// generateToken generates a JWT token for a user
func (s *AuthService) generateToken(user *models.User) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.jwtConfig.ExpiresIn) * time.Hour)

	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GetProfile retrieves the profile for an email.
func (s *AuthService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	user, err := s.repos.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, api.NotFound("User not found")
		}
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile updates name, phone, address, and avatar for an email.
func (s *AuthService) UpdateProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) error {
	err := s.repos.User.UpdateProfile(ctx, email, req)
	if errors.Is(err, repository.ErrNotFound) {
		return api.NotFound("User not found")
	}
	return err
}

// ChangePassword verifies the current password with the same dual-mode
// comparison as login, then stores the new one bcrypt-hashed. A legacy
// account is upgraded to a hashed credential on its first password change.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.repos.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return api.NotFound("User not found")
		}
		return err
	}

	if !models.ParseCredential(user.Password).Matches(currentPassword) {
		return api.Unauthorized("Current password is incorrect")
	}

	hashed, err := models.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repos.User.UpdatePassword(ctx, email, hashed)
}
