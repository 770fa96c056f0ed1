package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testJWT = utils.JWTConfig{Secret: "test-secret", ExpiryHours: 2}

func newAuthFixture() (*mockUserRepository, *mockSessionRepository, AuthService) {
	users := new(mockUserRepository)
	sessions := new(mockSessionRepository)
	repo := &repository.Repository{User: users, Session: sessions}
	return users, sessions, NewAuthService(repo, testJWT, zap.NewNop())
}

func activeUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Username:     "host1",
		Email:        "host1@example.com",
		PasswordHash: hash,
		IsHost:       true,
		IsActive:     true,
	}
}

func TestRegister(t *testing.T) {
	users, sessions, svc := newAuthFixture()
	ctx := context.Background()

	users.On("FindByEmail", ctx, "new@example.com").Return(nil, nil).Once()
	users.On("FindByUsername", ctx, "newbie").Return(nil, nil).Once()
	users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "newbie" && u.IsHost && u.IsActive && u.PasswordHash != "secret123"
	})).Return(nil).Once()
	sessions.On("Create", ctx, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Username: "newbie",
		Email:    " New@Example.com ",
		Password: "secret123",
		IsHost:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.True(t, resp.IsHost)

	claims, err := utils.ParseToken(resp.Token, testJWT)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID.String())
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), resp.ExpiresAt, time.Minute)

	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestRegister_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid input", func(t *testing.T) {
		_, _, svc := newAuthFixture()
		_, err := svc.Register(ctx, &request.RegisterRequest{Username: "ab", Email: "nope", Password: "123"})

		var inputErr *InputError
		require.True(t, errors.As(err, &inputErr))
		assert.Len(t, inputErr.Fields, 3)
	})

	t.Run("email taken", func(t *testing.T) {
		users, _, svc := newAuthFixture()
		users.On("FindByEmail", ctx, "dup@example.com").Return(&entity.User{}, nil).Once()

		_, err := svc.Register(ctx, &request.RegisterRequest{Username: "dupe", Email: "dup@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrAccountExists)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost insert race", func(t *testing.T) {
		users, _, svc := newAuthFixture()
		users.On("FindByEmail", ctx, "race@example.com").Return(nil, nil).Once()
		users.On("FindByUsername", ctx, "racer").Return(nil, nil).Once()
		users.On("Create", ctx, mock.Anything).Return(fmt.Errorf("create user racer: %w", repository.ErrDuplicate)).Once()

		_, err := svc.Register(ctx, &request.RegisterRequest{Username: "racer", Email: "race@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrAccountExists)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("by username", func(t *testing.T) {
		users, sessions, svc := newAuthFixture()
		user := activeUser(t, "secret123")
		users.On("FindByEmail", ctx, "host1").Return(nil, nil).Once()
		users.On("FindByUsername", ctx, "host1").Return(user, nil).Once()
		sessions.On("Create", ctx, mock.MatchedBy(func(s *entity.Session) bool {
			return s.UserID == user.ID && s.UserAgent != nil && *s.UserAgent == "curl/8" && s.IPAddress == nil
		})).Return(nil).Once()

		resp, err := svc.Login(ctx, &request.LoginRequest{
			Username:   "host1",
			Password:   "secret123",
			ClientInfo: request.ClientInfo{UserAgent: "curl/8"},
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.UserID)
		assert.NotEmpty(t, resp.Token)
		sessions.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		users, sessions, svc := newAuthFixture()
		user := activeUser(t, "secret123")
		users.On("FindByEmail", ctx, "host1@example.com").Return(user, nil).Once()

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "host1@example.com", Password: "wrong-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users, _, svc := newAuthFixture()
		users.On("FindByEmail", ctx, "ghost").Return(nil, nil).Once()
		users.On("FindByUsername", ctx, "ghost").Return(nil, nil).Once()

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "ghost", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive", func(t *testing.T) {
		users, _, svc := newAuthFixture()
		user := activeUser(t, "secret123")
		user.IsActive = false
		users.On("FindByEmail", ctx, "host1@example.com").Return(user, nil).Once()

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "host1@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestLogout(t *testing.T) {
	_, sessions, svc := newAuthFixture()
	ctx := context.Background()
	live, gone, broken := uuid.New(), uuid.New(), uuid.New()

	sessions.On("Revoke", ctx, live).Return(nil).Once()
	sessions.On("Revoke", ctx, gone).Return(fmt.Errorf("session: %w", repository.ErrNotFound)).Once()
	sessions.On("Revoke", ctx, broken).Return(errors.New("timeout")).Once()

	assert.NoError(t, svc.Logout(ctx, live))
	assert.NoError(t, svc.Logout(ctx, gone))
	assert.Error(t, svc.Logout(ctx, broken))
	sessions.AssertExpectations(t)
}

func TestGetProfile(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewUserService(users, zap.NewNop())
	ctx := context.Background()
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "guest", Email: "guest@example.com"}
	missing := uuid.New()

	users.On("FindByID", ctx, user.ID).Return(user, nil).Once()
	users.On("FindByID", ctx, missing).Return(nil, nil).Once()

	resp, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "guest", resp.Username)

	_, err = svc.GetProfile(ctx, missing)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
