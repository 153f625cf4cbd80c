package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/internal/validation"
	"github.com/wellnest/backend/repository"
)

// Config carries token and hashing settings for the auth use case.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
}

type UseCase struct {
	users  repository.UserRepository
	cfg    Config
	logger *zap.Logger
}

func New(users repository.UserRepository, cfg Config, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &UseCase{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// LoginResult is returned on successful authentication. User never carries the
// password hash over the wire.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

var signupSchema = validation.Schema{
	{Field: "username", Required: true, MinLen: 4},
	{Field: "email", Required: true, Email: true},
	{Field: "password", Required: true, MinLen: 4},
}

var loginSchema = validation.Schema{
	{Field: "email", Required: true, Email: true},
	{Field: "password", Required: true},
}

// Signup validates the candidate account, hashes the password with a randomly
// salted bcrypt digest and stores the user. The plaintext password is never
// persisted or returned.
func (uc *UseCase) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := signupSchema.Validate(map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	}); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "password hashing failed", err)
	}

	user, err := uc.users.Create(ctx, &domain.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeModelValidation) {
			uc.logger.Error("user creation failed", zap.Error(err))
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password. A missing user and a wrong
// password both yield domain.ErrInvalidCredentials so callers cannot probe
// which accounts exist.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := loginSchema.Validate(map[string]any{
		"email":    email,
		"password": password,
	}); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		uc.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.issueToken(user.ID)
	if err != nil {
		uc.logger.Error("token signing failed", zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeInternal, "token signing failed", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (uc *UseCase) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     uc.cfg.JWTIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(uc.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.cfg.JWTSecret))
}
