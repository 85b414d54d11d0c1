package usecase

import (
	"context"

	"batulens/internal/domain/entity"
)

// LoginInput is the credential payload for admin login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the signed tokens and the authenticated user.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// AuthUsecase handles admin authentication.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}
