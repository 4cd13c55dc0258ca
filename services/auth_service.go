package services

import (
	"context"
	"errors"

	"github.com/Syed-Bipul-Rahman/call-server/models"
	"github.com/Syed-Bipul-Rahman/call-server/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	store  models.UserStore
	secret []byte
}

func NewAuthService(store models.UserStore, secret []byte) *AuthService {
	return &AuthService{store: store, secret: secret}
}

// Signup registers a new user with a bcrypt-hashed password. The
// conflict error deliberately does not say whether the username or
// the email collided.
func (s *AuthService) Signup(ctx context.Context, username, email, password, fcmToken string) error {
	if username == "" || email == "" || password == "" || fcmToken == "" {
		return ErrValidation
	}

	_, err := s.store.FindByEmailOrUsername(ctx, email, username)
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		FCMToken: fcmToken,
	}
	if err := s.store.Create(ctx, user); err != nil {
		// Two signups can both pass the existence check; the unique
		// index catches the loser of that race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Login verifies credentials and issues a one-hour session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrValidation
	}

	user, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
