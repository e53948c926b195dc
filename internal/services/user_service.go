package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "financafacil/internal/errors"
	"financafacil/internal/models"
	"financafacil/internal/store"
)

type userService struct {
	store *store.Store
}

// NewUserService creates a user service over the store. The credential
// list is local to this installation; there is no remote identity
// provider behind it.
func NewUserService(s *store.Store) UserServicer {
	return &userService{store: s}
}

func (s *userService) users() []models.User {
	return store.Get(s.store, models.KeyUsers, []models.User{})
}

func (s *userService) Register(username, password, fullName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}
	if len(password) < 6 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at least 6 characters")
	}

	users := s.users()
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return nil, apperrors.ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
	}
	users = append(users, user)
	store.Set(s.store, models.KeyUsers, users)
	return &user, nil
}

func (s *userService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	for _, u := range s.users() {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
