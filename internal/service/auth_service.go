package service

import (
	"context"
	"errors"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/util"
	"interview-prep/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserPayload, error)
	ValidateAccessToken(tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	userRepo  domain.UserRepository
	jwtConfig config.JWTConfig
	validator *validation.Validator
	hashCost  int
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, jwtConfig config.JWTConfig, hashCost int) AuthService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &authServiceImpl{
		userRepo:  userRepo,
		jwtConfig: jwtConfig,
		validator: validation.NewValidator(),
		hashCost:  hashCost,
	}
}

// Register validates the request, hashes the password and creates the user.
// The stats row is created lazily on first session start, not here.
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := validation.NormalizeEmail(req.Email)
	name := validation.NormalizeName(req.Name)

	if errs := s.validator.ValidateRegister(email, req.Password, name); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to check existing user", err)
	}
	if existing != nil {
		return nil, domain.NewDuplicateUserError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	user := &domain.User{
		ID:           util.NewULID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// The unique index is the final authority; a concurrent register
		// between the lookup and the insert still surfaces as a duplicate.
		var domErr *domain.DomainError
		if errors.As(err, &domErr) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to create user", err)
	}

	logger.Get().Info("User registered", zap.String("userID", user.ID))

	return s.buildAuthResponse(user)
}

// Login checks the credentials and issues a token pair. Unknown email and
// wrong password produce the same error so callers cannot probe accounts.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := validation.NormalizeEmail(req.Email)

	if errs := s.validator.ValidateLogin(email, req.Password); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NewInvalidCredentialsError()
	}

	return s.buildAuthResponse(user)
}

// Refresh verifies a refresh token and issues a new access token. Refresh
// tokens are not rotated.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, domain.NewInvalidRefreshTokenError(errors.New("refresh token is required"))
	}

	claims, err := s.parseToken(refreshToken, s.jwtConfig.RefreshSecret)
	if err != nil {
		return nil, domain.NewInvalidRefreshTokenError(err)
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewInvalidRefreshTokenError(errors.New("user no longer exists"))
	}

	accessToken, err := s.createToken(user, s.jwtConfig.AccessSecret, s.jwtConfig.AccessTokenTTL)
	if err != nil {
		return nil, domain.NewInternalError("failed to create access token", err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// GetProfile returns the public representation of a user.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserPayload, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}
	return &dto.UserPayload{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// ValidateAccessToken parses and verifies an access token. Tokens signed
// with the refresh secret fail here; the secrets are distinct so each token
// kind is only valid at its own endpoints.
func (s *authServiceImpl) ValidateAccessToken(tokenString string) (*dto.AuthClaims, error) {
	claims, err := s.parseToken(tokenString, s.jwtConfig.AccessSecret)
	if err != nil {
		return nil, domain.NewUnauthorizedError("Invalid or expired token")
	}
	return claims, nil
}

func (s *authServiceImpl) buildAuthResponse(user *domain.User) (*dto.AuthResponse, error) {
	accessToken, err := s.createToken(user, s.jwtConfig.AccessSecret, s.jwtConfig.AccessTokenTTL)
	if err != nil {
		return nil, domain.NewInternalError("failed to create access token", err)
	}
	refreshToken, err := s.createToken(user, s.jwtConfig.RefreshSecret, s.jwtConfig.RefreshTokenTTL)
	if err != nil {
		return nil, domain.NewInternalError("failed to create refresh token", err)
	}

	return &dto.AuthResponse{
		User:         dto.UserPayload{ID: user.ID, Email: user.Email, Name: user.Name},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authServiceImpl) createToken(user *domain.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &dto.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *authServiceImpl) parseToken(tokenString, secret string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
