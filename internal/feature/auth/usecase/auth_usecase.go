// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"spots_backend/internal/feature/auth/domain"
	"spots_backend/internal/feature/auth/domain/entity"
	"spots_backend/internal/platform/password"
)

const (
	// minPasswordLength defines the minimum number of password characters.
	minPasswordLength = 8
)

// Input shape checks mirror the account contract: a basic email shape
// and a loose phone shape. Stricter parsing is intentionally not done.
var (
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]+$`)
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage. It returns
	// domain.ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given normalized email.
	// The password hash is loaded only when withSecret is true.
	FindByEmail(ctx context.Context, email string, withSecret bool) (*entity.User, error)

	// FindByID retrieves a user by ID. The password hash is never loaded.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator defines the interface for issuing signed tokens.
// Following Go convention, interfaces are defined by the consumer (usecase), not the provider (platform/token).
type TokenGenerator interface {
	// GenerateToken creates a signed token bound to the given user ID.
	GenerateToken(userID uint) (string, error)
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     entity.Role
	Phone    string
}

// AuthUsecase implements the authentication business logic.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
	}
}

// NormalizeEmail lowercases and trims an email address. All storage and
// comparison happens on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegisterInput checks the registration fields against the
// account contract and normalizes them in place.
func validateRegisterInput(in *RegisterInput) error {
	in.Email = NormalizeEmail(in.Email)
	if !emailPattern.MatchString(in.Email) {
		return domain.NewValidationError("email", "must be a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters long", minPasswordLength))
	}
	in.FullName = strings.TrimSpace(in.FullName)
	if in.FullName == "" {
		return domain.NewValidationError("fullName", "is required")
	}
	if in.Role == "" {
		in.Role = entity.RoleGuest
	}
	if !in.Role.SelfRegisterable() {
		return domain.NewValidationError("role", "must be guest or host")
	}
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return domain.NewValidationError("phone", "must be a valid phone number")
	}
	return nil
}

// Register creates a new user with a hashed password.
// The stored email is normalized, the role defaults to guest, and a
// duplicate normalized email fails with domain.ErrEmailAlreadyExists.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validateRegisterInput(&in); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: hashed,
		FullName:     in.FullName,
		Role:         in.Role,
		Phone:        in.Phone,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// The caller receives the stored record, never the hash.
	user.PasswordHash = ""
	return user, nil
}

// Login authenticates a user and returns a signed token on success.
// A dummy-hash comparison runs even when the account does not exist so
// that timing does not reveal account existence.
func (u *AuthUsecase) Login(ctx context.Context, email, plaintext string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email), true)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		// A store failure is not a credential failure.
		return "", nil, fmt.Errorf("failed to look up account: %w", err)
	}

	hash := password.DummyHash
	if err == nil {
		hash = user.PasswordHash
	}
	ok := password.Verify(plaintext, hash)

	// Unknown account and wrong password collapse into one generic error.
	if err != nil || !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return tok, user, nil
}

// CurrentUser resolves the user behind an already verified token subject.
// An unknown subject is an authentication failure, not a lookup error.
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
