package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arena/config"
	jwtInfra "arena/infras/jwt"
	jwtMocks "arena/infras/jwt/mocks"
	"arena/infras/otel/mocks"
	"arena/internal/domains/auth/model/dto"
	"arena/internal/domains/auth/service"
	userMocks "arena/internal/domains/user/mocks"
	userModel "arena/internal/domains/user/model"
	"arena/shared/failure"
)

// bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func activeUser() userModel.User {
	return userModel.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: passwordHash,
		FullName: "Admin Arena",
		Role:     "admin",
		Active:   true,
	}
}

func tokenPair() *jwtInfra.TokenPair {
	return &jwtInfra.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
}

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	return service.New(mockUserRepo, cfg, mockOtel, mockJWT), mockUserRepo, mockJWT
}

func TestAuthService_Login(t *testing.T) {
	req := dto.LoginRequest{Email: "admin@example.com", Password: "password"}

	t.Run("success", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newAuthService(t)

		user := activeUser()

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)
		mockJWT.EXPECT().
			GenerateTokenPair(user.ID, user.Email, user.Role).
			Return(tokenPair(), nil)
		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updatedFields map[string]any, _ any) error {
				assert.Contains(t, updatedFields, userModel.FieldLastLogin)

				return nil
			})

		res, err := svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, "refresh-token", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(), nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    req.Email,
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("deactivated user", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		user := activeUser()
		user.Active = false

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "user account is deactivated")
	})

	t.Run("token generation fails", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newAuthService(t)

		user := activeUser()

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)
		mockJWT.EXPECT().
			GenerateTokenPair(user.ID, user.Email, user.Role).
			Return(nil, errors.New("signing failed"))

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, mockJWT := newAuthService(t)

		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(tokenPair(), nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, _, mockJWT := newAuthService(t)

		mockJWT.EXPECT().
			RefreshTokens("expired-token").
			Return(nil, errors.New("token is expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "expired-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_Profile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(), nil)

		res, err := svc.Profile(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, "admin@example.com", res.Email)
		assert.Equal(t, "Admin Arena", res.FullName)
		assert.True(t, res.Active)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Profile(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	req := dto.ChangePasswordRequest{
		CurrentPassword: "password",
		NewPassword:     "newSecurePassword1!",
	}

	t.Run("success", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(), nil)
		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updatedFields map[string]any, _ any) error {
				hashed, ok := updatedFields[userModel.FieldPassword].(string)
				assert.True(t, ok)
				assert.NotEqual(t, req.NewPassword, hashed, "password must be stored hashed")

				return nil
			})

		err := svc.ChangePassword(context.Background(), req, "user-1")

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), req, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(), nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong-password",
			NewPassword:     req.NewPassword,
		}, "user-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "current password is incorrect")
	})
}
