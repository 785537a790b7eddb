package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CheckIfEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrIncorrectCredentials = errors.New("incorrect email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidRole          = errors.New("invalid role")
	ErrFailedSignup         = errors.New("failed to sign up")
	ErrFailedLogin          = errors.New("failed to log in")
)

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AuthStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	User  store.User `json:"user"`
	Token string     `json:"token"`
}

func (p *AuthProcessor) Signup(ctx context.Context, name, email, password, role string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email", Value: email},
		observability.Field{Key: "role", Value: role},
	)

	if role != store.RoleCreator && role != store.RoleReceiver {
		return AuthResult{}, ErrInvalidRole
	}

	exists, err := p.store.CheckIfEmailExists(ctx, email)
	if err != nil {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return AuthResult{}, ErrFailedSignup
	}
	if exists {
		return AuthResult{}, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return AuthResult{}, ErrFailedSignup
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Name:         strings.TrimSpace(name),
		Email:        email,
		Role:         role,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create user", err)
		return AuthResult{}, ErrFailedSignup
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return AuthResult{}, ErrFailedSignup
	}
	return AuthResult{User: user, Token: token}, nil
}

func (p *AuthProcessor) Login(ctx context.Context, email, password string) (AuthResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrIncorrectCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return AuthResult{}, ErrFailedLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.WarnWithError(ctx, "password mismatch", err)
		return AuthResult{}, ErrIncorrectCredentials
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return AuthResult{}, ErrFailedLogin
	}
	return AuthResult{User: user, Token: token}, nil
}

func (p *AuthProcessor) GetUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return store.User{}, err
	}
	return user, nil
}
