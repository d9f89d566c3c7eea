package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"notesvc/internal/entity"
	"notesvc/pkg/logger/slogx"
)

// passwordHashCost keeps registration cheap; raise it when hashing cost
// matters more than test latency.
const passwordHashCost = 4

type usersRepository interface {
	CreateUser(ctx context.Context, user entity.User) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	UserExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]entity.UserInfo, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo usersRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate auth usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// Register creates a user with a fresh opaque id and a bcrypt password
// hash. Registering an already taken email inserts nothing and reports
// AlreadyExists instead of failing.
func (u *Usecase) Register(ctx context.Context, email, password string) (entity.RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return entity.RegisterResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	inserted, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return entity.RegisterResult{}, fmt.Errorf("usecase register: %w", err)
	}

	if !inserted {
		slogx.Info(ctx, "registration skipped, email already taken", slogx.Email(email))
		return entity.RegisterResult{AlreadyExists: true}, nil
	}

	slogx.Info(ctx, "success to register user", slogx.UserID(user.ID))

	return entity.RegisterResult{UserID: user.ID}, nil
}

// Authenticate distinguishes an unknown email from a wrong password so
// the caller can present distinct messaging.
func (u *Usecase) Authenticate(ctx context.Context, email, password string) (entity.AuthResult, error) {
	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.AuthResult{Status: entity.AuthStatusNoSuchUser}, nil
		}
		return entity.AuthResult{}, fmt.Errorf("usecase authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entity.AuthResult{Status: entity.AuthStatusWrongPassword}, nil
	}

	return entity.AuthResult{Status: entity.AuthStatusAuthenticated, UserID: user.ID}, nil
}

// Unregister deletes the user by id. A nonexistent id is a no-op.
func (u *Usecase) Unregister(ctx context.Context, userID string) error {
	if err := u.repo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("usecase unregister: %w", err)
	}

	return nil
}

func (u *Usecase) IsRegistered(ctx context.Context, email string) (bool, error) {
	registered, err := u.repo.UserExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("usecase is registered: %w", err)
	}

	return registered, nil
}

func (u *Usecase) ListUsers(ctx context.Context) ([]entity.UserInfo, error) {
	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list users: %w", err)
	}

	return users, nil
}
