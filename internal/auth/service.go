package auth

import (
	"errors"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence slice the auth gate needs.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
}

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already taken")
	ErrMissingFields      = errors.New("username and password required")
)

type Service struct {
	users UserStore
	log   *zap.Logger
}

func NewService(users UserStore, log *zap.Logger) *Service {
	return &Service{users: users, log: log}
}

// Verify checks the submitted password against the stored bcrypt hash. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *Service) Verify(username, password string) error {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Register creates a user with a bcrypt hash of the password.
func (s *Service) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}
	_, err := s.users.FindByUsername(username)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// SeedAdmin makes sure the built-in admin account exists at startup.
func (s *Service) SeedAdmin(username, password string) {
	err := s.Register(username, password)
	switch {
	case err == nil:
		s.log.Info("seeded admin user", zap.String("username", username))
	case errors.Is(err, ErrUserExists):
		// already seeded
	default:
		s.log.Warn("could not seed admin user", zap.Error(err))
	}
}
