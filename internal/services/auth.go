package services

import (
	"context"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/models"
)

// AuthService implements mock sign-in. Credentials are validated for shape
// only; passwords are never checked, hashed or stored.
type AuthService struct {
	forms *FormValidator
}

func NewAuthService(forms *FormValidator) *AuthService {
	return &AuthService{forms: forms}
}

func (s *AuthService) Login(ctx context.Context, params models.LoginParams) (*models.User, error) {
	if err := s.forms.Validate(params); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("Login submitted", map[string]interface{}{
		"username": params.Username,
	})
	return &models.User{Username: params.Username}, nil
}

func (s *AuthService) Register(ctx context.Context, params models.RegisterParams) (*models.User, error) {
	if err := s.forms.Validate(params); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("Registration submitted", map[string]interface{}{
		"username": params.Username,
	})
	return &models.User{Username: params.Username}, nil
}
