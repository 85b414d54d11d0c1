package impl

import (
	"context"
	"testing"

	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	"batulens/internal/domain/repository"
	mockRepo "batulens/internal/mocks/repository"
	mockService "batulens/internal/mocks/service"
	"batulens/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	svc := NewAuthService(userRepo, hasher, tokens, newDiscardLogger())

	return authServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "admin@batulens.id",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleAdmin,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "admin@batulens.id").
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("s3cret", "$2a$12$hash").
		Return(true)
	fx.tokens.EXPECT().
		GenerateTokens(userID, []string{"admin"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "  Admin@Batulens.id ",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@batulens.id").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@batulens.id",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@batulens.id",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleAdmin,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "admin@batulens.id").
		Return(user, nil)
	fx.hasher.EXPECT().
		Check("wrong", "$2a$12$hash").
		Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "admin@batulens.id",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_CurrentUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "admin@batulens.id", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	got, err := fx.service.CurrentUser(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_CurrentUser_BadID(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.CurrentUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentUser(ctx, userID.String())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
