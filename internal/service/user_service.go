package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"devconnector/internal/domain"
	"devconnector/internal/repository"
)

// UserService coordina registro, autenticación y baja de usuarios.
type UserService struct {
	logger       *zap.Logger
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	bcryptCost   int
	loginLimiter LoginRateLimiter
}

var (
	ErrEmailTaken        = errors.New("email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordIncorrect = errors.New("password incorrect")
	ErrRateLimited       = errors.New("rate limited")
)

func NewUserService(logger *zap.Logger, users repository.UserRepository, profiles repository.ProfileRepository, bcryptCost int, loginLimiter LoginRateLimiter) *UserService {
	return &UserService{
		logger:       logger,
		users:        users,
		profiles:     profiles,
		bcryptCost:   bcryptCost,
		loginLimiter: loginLimiter,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register crea el usuario tras verificar que el email esté libre. El
// chequeo de duplicados es una lectura previa al insert: se acepta la
// ventana de carrera.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	email := normalizeEmail(input.Email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hash, err := HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Avatar:       GravatarURL(email),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Authenticate resuelve email y contraseña a un usuario. Email
// desconocido y contraseña incorrecta se reportan por separado.
func (s *UserService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	emailAddr = normalizeEmail(emailAddr)

	if s.loginLimiter != nil && !s.loginLimiter.Allow(emailAddr) {
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return domain.User{}, ErrPasswordIncorrect
	}
	return user, nil
}

// GetByID devuelve el usuario o ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// DeleteAccount elimina primero el perfil y después el usuario.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
