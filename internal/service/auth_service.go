package service

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hoa-be-svc/internal/config"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// Token types embedded in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload issued by this service. Besides the registered
// claims it carries the resident's name, resident ID and email so clients can
// render the account without a follow-up request.
type Claims struct {
	UserID     uint   `json:"user_id"`
	Name       string `json:"name"`
	ResidentID string `json:"resident_id"`
	Email      string `json:"email"`
	TokenType  string `json:"token_type"`
	jwt.RegisteredClaims
}

// RegisterInput carries the registration payload
type RegisterInput struct {
	Email      string
	Name       string
	ContactNo  string
	ResidentID string
	HouseID    *uint
	Password   string
	Password2  string
}

// TokenPair is the login response: signed token pair plus the denormalized
// account fields the original API echoes alongside the tokens.
type TokenPair struct {
	Access     string `json:"access"`
	Refresh    string `json:"refresh"`
	Name       string `json:"name"`
	ResidentID string `json:"resident_id"`
	Email      string `json:"email"`
}

// AuthService interface defines authentication methods
type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (*TokenPair, error)
	Refresh(refreshToken string) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// authService implements AuthService interface
type authService struct {
	userRepo  repository.UserRepository
	houseRepo repository.HouseRepository
	jwtCfg    config.JWTConfig
	logger    *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, houseRepo repository.HouseRepository, jwtCfg config.JWTConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		houseRepo: houseRepo,
		jwtCfg:    jwtCfg,
		logger:    logger,
	}
}

// Register creates a new resident account. The username is forced to the
// supplied email; password and confirmation must match exactly.
func (s *authService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if input.Password != input.Password2 {
		return nil, NewValidationError("password", "Passwords do not match.")
	}
	if err := validatePasswordPolicy(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, NewConflictError("email", "A user with this email already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByResidentID(input.ResidentID); err == nil {
		return nil, NewConflictError("resident_id", "A user with this resident ID already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if input.HouseID != nil {
		if _, err := s.houseRepo.GetByID(*input.HouseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("house", "House does not exist.")
			}
			return nil, err
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     email,
		Email:        email,
		Name:         input.Name,
		ContactNo:    input.ContactNo,
		ResidentNo:   input.ResidentID,
		HouseID:      input.HouseID,
		PasswordHash: string(passwordHash),
	}
	if err := s.userRepo.Create(user); err != nil {
		s.logger.WithError(err).WithField("email", email).Error("Failed to create user")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":     user.ID,
		"resident_id": user.ResidentNo,
	}).Info("User registered successfully")

	return user, nil
}

// Login checks the credentials and issues an access/refresh token pair
func (s *authService) Login(email, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.signToken(user, TokenTypeAccess, s.jwtCfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, TokenTypeRefresh, s.jwtCfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User logged in successfully")

	return &TokenPair{
		Access:     access,
		Refresh:    refresh,
		Name:       user.Name,
		ResidentID: user.ResidentNo,
		Email:      user.Email,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *authService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	// Re-read the user so a refreshed token carries current claims.
	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", jwt.ErrTokenInvalidClaims
		}
		return "", err
	}

	return s.signToken(user, TokenTypeAccess, s.jwtCfg.AccessTTL)
}

// ValidateAccessToken verifies the signature and token type of an access token
func (s *authService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.parseToken(tokenString, TokenTypeAccess)
}

func (s *authService) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:     user.ID,
		Name:       user.Name,
		ResidentID: user.ResidentNo,
		Email:      user.Email,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "hoa-be-svc",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

func (s *authService) parseToken(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != expectedType {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// validatePasswordPolicy mirrors the minimum password rules: at least eight
// characters and not entirely numeric.
func validatePasswordPolicy(password string) error {
	if len(password) < 8 {
		return NewValidationError("password", "Password must be at least 8 characters.")
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return NewValidationError("password", "Password cannot be entirely numeric.")
	}
	return nil
}
