package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"spots_backend/internal/feature/auth/domain"
	"spots_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string, withSecret bool) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string, withSecret bool) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email, withSecret)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	GenerateTokenFunc func(userID uint) (string, error)
}

func (m *mockTokenGenerator) GenerateToken(userID uint) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID)
	}
	return "mock-token", nil
}

func validInput() RegisterInput {
	return RegisterInput{
		Email:    "a@b.com",
		Password: "longpass1",
		FullName: "A",
		Role:     entity.RoleHost,
	}
}

func TestRegister_Success(t *testing.T) {
	var stored *entity.User
	mockRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) error {
			// The repository must receive the hash, never the plaintext
			require.NotEmpty(t, user.PasswordHash)
			require.NotEqual(t, "longpass1", user.PasswordHash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longpass1")))
			user.ID = 7
			stored = user
			return nil
		},
	}

	uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
	user, err := uc.Register(context.Background(), validInput())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, entity.RoleHost, user.Role)
	assert.Empty(t, user.PasswordHash, "the returned projection must not carry the hash")
}

func TestRegister_NormalizesEmail(t *testing.T) {
	mockRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) error {
			assert.Equal(t, "a@b.com", user.Email)
			return nil
		},
	}

	uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
	in := validInput()
	in.Email = "  A@B.Com "
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
}

func TestRegister_DefaultsRoleToGuest(t *testing.T) {
	mockRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) error {
			assert.Equal(t, entity.RoleGuest, user.Role)
			return nil
		},
	}

	uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
	in := validInput()
	in.Role = ""
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
}

func TestRegister_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *RegisterInput)
	}{
		{"invalid email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
		{"blank full name", func(in *RegisterInput) { in.FullName = "   " }},
		{"admin self-registration", func(in *RegisterInput) { in.Role = entity.RoleAdmin }},
		{"unknown role", func(in *RegisterInput) { in.Role = "superuser" }},
		{"bad phone", func(in *RegisterInput) { in.Phone = "call me" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			mockRepo := &mockUserRepository{
				CreateFunc: func(ctx context.Context, user *entity.User) error {
					created = true
					return nil
				},
			}
			uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})

			in := validInput()
			tt.mutate(&in)
			_, err := uc.Register(context.Background(), in)

			assert.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
			assert.False(t, created, "repository must not be called for invalid input")
		})
	}
}

func TestRegister_AcceptsLoosePhoneShapes(t *testing.T) {
	for _, phone := range []string{"+371 2000-0000", "20000000", "  "} {
		mockRepo := &mockUserRepository{}
		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})

		in := validInput()
		in.Phone = phone
		_, err := uc.Register(context.Background(), in)
		assert.NoError(t, err, "phone %q should be accepted", phone)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) error {
			return domain.ErrEmailAlreadyExists
		},
	}

	uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
	_, err := uc.Register(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("longpass1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string, withSecret bool) (*entity.User, error) {
			assert.Equal(t, "a@b.com", email, "lookup must use the normalized email")
			assert.True(t, withSecret, "login needs the stored hash")
			return &entity.User{ID: 7, Email: email, PasswordHash: string(hash), Role: entity.RoleHost}, nil
		},
	}
	mockTokens := &mockTokenGenerator{
		GenerateTokenFunc: func(userID uint) (string, error) {
			assert.Equal(t, uint(7), userID)
			return "signed-token", nil
		},
	}

	uc := NewAuthUsecase(mockRepo, mockTokens)
	token, user, err := uc.Login(context.Background(), " A@B.com ", "longpass1")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, uint(7), user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_GenericFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("longpass1"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		findFunc func(ctx context.Context, email string, withSecret bool) (*entity.User, error)
		password string
	}{
		{
			name: "unknown account",
			findFunc: func(ctx context.Context, email string, withSecret bool) (*entity.User, error) {
				return nil, domain.ErrUserNotFound
			},
			password: "longpass1",
		},
		{
			name: "wrong password",
			findFunc: func(ctx context.Context, email string, withSecret bool) (*entity.User, error) {
				return &entity.User{ID: 7, PasswordHash: string(hash)}, nil
			},
			password: "wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: tt.findFunc}, &mockTokenGenerator{})

			// Unknown account and wrong password collapse into the same
			// generic error
			_, _, err := uc.Login(context.Background(), "a@b.com", tt.password)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLogin_StoreFailureIsNotMasked(t *testing.T) {
	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string, withSecret bool) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})

	// A lookup failure must surface as an internal error, never as a
	// credential rejection.
	_, _, err := uc.Login(context.Background(), "a@b.com", "longpass1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorContains(t, err, "connection refused")
}

func TestLogin_TokenGenerationFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("longpass1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string, withSecret bool) (*entity.User, error) {
			return &entity.User{ID: 7, PasswordHash: string(hash)}, nil
		},
	}
	mockTokens := &mockTokenGenerator{
		GenerateTokenFunc: func(userID uint) (string, error) {
			return "", errors.New("signing failed")
		},
	}

	uc := NewAuthUsecase(mockRepo, mockTokens)
	_, _, err = uc.Login(context.Background(), "a@b.com", "longpass1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	t.Run("resolves known subject", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Email: "a@b.com", Role: entity.RoleGuest}, nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})

		user, err := uc.CurrentUser(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("unknown subject is an authentication failure", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenGenerator{})

		_, err := uc.CurrentUser(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("store failure is not masked", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})

		_, err := uc.CurrentUser(context.Background(), 7)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
