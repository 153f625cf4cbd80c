package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wellnest/backend/domain"
)

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.byEmail[user.Email]; exists {
		return nil, domain.NewModelValidationError("email already exists")
	}
	user.ID = "3f1f8e7e-0c4a-4b5e-9a8a-6a2f0c9d1b2e"
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func testUseCase(repo *fakeUserRepo) *UseCase {
	return New(repo, Config{
		JWTSecret:  "test-secret",
		JWTIssuer:  "wellnest-test",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, nil)
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)

	user, err := uc.Signup(context.Background(), "nayram", "nayram@me.com", "nayram123")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEqual(t, "nayram123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("nayram123")))
	assert.NotEmpty(t, user.ID)
}

func TestSignupValidation(t *testing.T) {
	uc := testUseCase(newFakeUserRepo())

	tests := []struct {
		name                      string
		username, email, password string
		want                      string
	}{
		{"short username", "abc", "a@b.io", "secret99", "username length must be at least 4 characters long"},
		{"empty email", "nayram", "", "secret99", "email is not allowed to be empty"},
		{"bad email", "nayram", "nope", "secret99", "email must be a valid email"},
		{"short password", "nayram", "a@b.io", "abc", "password length must be at least 4 characters long"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Signup(context.Background(), tc.username, tc.email, tc.password)
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)

	_, err := uc.Signup(context.Background(), "nayram", "nayram@me.com", "nayram123")
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), "other_name", "nayram@me.com", "nayram123")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeModelValidation))
	assert.Equal(t, "email already exists", err.Error())
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)

	created, err := uc.Signup(context.Background(), "nayram", "nayram@me.com", "nayram123")
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), "nayram@me.com", "nayram123")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, created.ID, result.User.ID)
	assert.Equal(t, "nayram", result.User.Username)

	token, err := jwt.Parse(result.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, created.ID, claims["user_id"])
	assert.Equal(t, "wellnest-test", claims["iss"])
}

func TestLoginNeverSerializesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)

	_, err := uc.Signup(context.Background(), "nayram", "nayram@me.com", "nayram123")
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), "nayram@me.com", "nayram123")
	require.NoError(t, err)

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	user, ok := decoded["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "password")
	assert.Contains(t, user, "username")
	assert.Contains(t, user, "created_at")
}

func TestLoginFailureIsUniform(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)

	_, err := uc.Signup(context.Background(), "nayram", "nayram@me.com", "nayram123")
	require.NoError(t, err)

	_, unknownErr := uc.Login(context.Background(), "unknown@me.com", "nayram123")
	_, wrongPassErr := uc.Login(context.Background(), "nayram@me.com", "wrong-pass")

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	// Identical error for both failure modes, no account probing.
	assert.Equal(t, domain.ErrInvalidCredentials, unknownErr)
	assert.Equal(t, domain.ErrInvalidCredentials, wrongPassErr)
	assert.Equal(t, "Invalid email or password", unknownErr.Error())
}

func TestLoginValidation(t *testing.T) {
	uc := testUseCase(newFakeUserRepo())

	_, err := uc.Login(context.Background(), "", "secret")
	require.Error(t, err)
	assert.Equal(t, "email is not allowed to be empty", err.Error())

	_, err = uc.Login(context.Background(), "nayram@me.com", "")
	require.Error(t, err)
	assert.Equal(t, "password is not allowed to be empty", err.Error())
}
