package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/internal/reservation"
	"rental-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockUnitService struct {
	mock.Mock
}

func (m *mockUnitService) CreateRoom(ctx context.Context, hostID uuid.UUID, req *request.CreateRoomRequest) (*response.UnitResponse, error) {
	args := m.Called(ctx, hostID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UnitResponse), args.Error(1)
}

func (m *mockUnitService) CreateExperience(ctx context.Context, hostID uuid.UUID, req *request.CreateExperienceRequest) (*response.UnitResponse, error) {
	args := m.Called(ctx, hostID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UnitResponse), args.Error(1)
}

func (m *mockUnitService) GetUnit(ctx context.Context, kind reservation.Kind, unitID uuid.UUID) (*response.UnitResponse, error) {
	args := m.Called(ctx, kind, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UnitResponse), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "created", body: `{"username":"ana","email":"ana@example.com","password":"secret123"}`, wantStatus: http.StatusCreated},
		{name: "taken", body: `{"username":"ana","email":"ana@example.com","password":"secret123"}`, serviceErr: usecase.ErrAccountExists, wantStatus: http.StatusConflict},
		{name: "malformed body", body: `{"username":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAuthService)
			if tt.wantStatus != http.StatusBadRequest {
				call := svc.On("Register", mock.Anything, mock.MatchedBy(func(req *request.RegisterRequest) bool {
					return req.Username == "ana" && req.ClientInfo.UserAgent == "test-agent" && req.ClientInfo.IPAddress == "10.0.0.7"
				}))
				if tt.serviceErr != nil {
					call.Return(nil, tt.serviceErr)
				} else {
					call.Return(&response.AuthResponse{UserID: uuid.NewString(), Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)
				}
			}

			h := NewAuthHandler(svc, zap.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			req.Header.Set("User-Agent", "test-agent")
			req.RemoteAddr = "10.0.0.7:51234"
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "bad credentials", serviceErr: usecase.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "inactive", serviceErr: usecase.ErrAccountInactive, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAuthService)
			call := svc.On("Login", mock.Anything, mock.AnythingOfType("*request.LoginRequest"))
			if tt.serviceErr != nil {
				call.Return(nil, tt.serviceErr)
			} else {
				call.Return(&response.AuthResponse{Token: "tok"}, nil)
			}

			h := NewAuthHandler(svc, zap.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/users/log-in", strings.NewReader(`{"username":"ana","password":"secret123"}`))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("no session in context", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc, zap.NewNop())
		rec := httptest.NewRecorder()
		h.Logout(rec, httptest.NewRequest(http.MethodPost, "/users/log-out", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("revokes the current session", func(t *testing.T) {
		svc := new(mockAuthService)
		svc.On("Logout", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)

		r := chi.NewRouter()
		r.With(withUser(uuid.New())).Post("/users/log-out", NewAuthHandler(svc, zap.NewNop()).Logout)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/log-out", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestUserHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	svc := new(mockUserService)
	svc.On("GetProfile", mock.Anything, userID).Return(&response.UserResponse{ID: userID.String(), Username: "ana"}, nil)

	r := chi.NewRouter()
	r.With(withUser(userID)).Get("/users/me", NewUserHandler(svc, zap.NewNop()).GetProfile)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "ana", env.Data.(map[string]any)["username"])
}

func unitRouter(svc usecase.UnitService, userID uuid.UUID) http.Handler {
	h := NewUnitHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/rooms/{id}", h.Get(reservation.KindRoom))
	r.Get("/experiences/{id}", h.Get(reservation.KindExperience))
	r.Group(func(r chi.Router) {
		r.Use(withUser(userID))
		r.Post("/rooms", h.CreateRoom)
		r.Post("/experiences", h.CreateExperience)
	})
	return r
}

func TestUnitHandler_Create(t *testing.T) {
	hostID := uuid.New()

	t.Run("room by host", func(t *testing.T) {
		svc := new(mockUnitService)
		svc.On("CreateRoom", mock.Anything, hostID, mock.AnythingOfType("*request.CreateRoomRequest")).
			Return(&response.UnitResponse{ID: uuid.NewString(), Kind: reservation.KindRoom}, nil)

		rec := httptest.NewRecorder()
		unitRouter(svc, hostID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(`{"name":"Loft","price":90}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("room by guest", func(t *testing.T) {
		svc := new(mockUnitService)
		svc.On("CreateRoom", mock.Anything, hostID, mock.Anything).Return(nil, usecase.ErrNotHost)

		rec := httptest.NewRecorder()
		unitRouter(svc, hostID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(`{"name":"Loft","price":90}`)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("experience with inverted window", func(t *testing.T) {
		svc := new(mockUnitService)
		svc.On("CreateExperience", mock.Anything, hostID, mock.Anything).
			Return(nil, &reservation.FieldError{Field: "end", Err: usecase.ErrInvalidWindow})

		rec := httptest.NewRecorder()
		body := `{"name":"Kayak","price":40,"start":"14:00","end":"09:00"}`
		unitRouter(svc, hostID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, map[string]any{"end": usecase.ErrInvalidWindow.Error()}, env.Errors)
	})
}

func TestUnitHandler_Get(t *testing.T) {
	unitID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := new(mockUnitService)
		svc.On("GetUnit", mock.Anything, reservation.KindExperience, unitID).
			Return(&response.UnitResponse{ID: unitID.String(), Kind: reservation.KindExperience}, nil)

		rec := httptest.NewRecorder()
		unitRouter(svc, uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/experiences/"+unitID.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong kind", func(t *testing.T) {
		svc := new(mockUnitService)
		svc.On("GetUnit", mock.Anything, reservation.KindRoom, unitID).Return(nil, usecase.ErrUnitNotFound)

		rec := httptest.NewRecorder()
		unitRouter(svc, uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/"+unitID.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(mockUnitService)

		rec := httptest.NewRecorder()
		unitRouter(svc, uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/not-a-uuid", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertNotCalled(t, "GetUnit", mock.Anything, mock.Anything, mock.Anything)
	})
}
