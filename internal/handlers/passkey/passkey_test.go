package passkey

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/dto"
	"github.com/constella/constella/internal/service/walletservice"
	"github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/utils"
)

const testAdminKey = "admin-key"

func NewMock(t *testing.T) (*PasskeyHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, testAdminKey)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterStartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Registration ceremony started",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().BeginRegistration(gomock.Any(), "alice").
					Return(&protocol.CredentialCreation{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Username taken",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().BeginRegistration(gomock.Any(), "alice").
					Return(nil, walletservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "username is already taken",
		},
		{
			name:          "Invalid username",
			body:          `{"username":"A!"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid username",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Ceremony failure",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().BeginRegistration(gomock.Any(), "alice").
					Return(nil, errors.New("rp failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to start registration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/users/register/start", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.RegisterStart(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestRegisterFinishHandler(t *testing.T) {
	handler, _ := NewMock(t)

	t.Run("Malformed credential response", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/users/register/finish?username=alice", bytes.NewReader([]byte(`{not json`)))
		rr := httptest.NewRecorder()

		handler.RegisterFinish(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Invalid credential response", resp.Message)
	})

	t.Run("Missing username", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/users/register/finish", bytes.NewReader([]byte(`{}`)))
		rr := httptest.NewRecorder()

		handler.RegisterFinish(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Invalid username", resp.Message)
	})
}

func TestLoginStartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Login ceremony started",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().BeginLogin(gomock.Any(), "alice").
					Return(&protocol.CredentialAssertion{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().BeginLogin(gomock.Any(), "alice").
					Return(nil, walletservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "user not found",
		},
		{
			name: "Registration still pending",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().BeginLogin(gomock.Any(), "alice").
					Return(nil, walletservice.ErrRegistrationPending)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "registration not completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/users/login/start", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.LoginStart(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginFinishHandler(t *testing.T) {
	handler, _ := NewMock(t)

	t.Run("Malformed credential response", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/users/login/finish?username=alice", bytes.NewReader([]byte(`{not json`)))
		rr := httptest.NewRecorder()

		handler.LoginFinish(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Invalid credential response", resp.Message)
	})
}

func TestProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	address := "0xabc"
	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), "user-1").
					Return(&domain.WalletUser{ID: "user-1", Username: "alice", Registered: true, WalletAddress: &address}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, walletservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/users/profile", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.SubjectIDKey, "user-1"))
			rr := httptest.NewRecorder()

			handler.Profile(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.WalletProfileResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "alice", resp.Username)
				assert.Equal(t, "0xabc", *resp.WalletAddress)
			}
		})
	}
}

func TestCheckUsernameHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name              string
		username          string
		prepareMock       func()
		expectedAvailable bool
	}{
		{
			name:     "Available username",
			username: "alice",
			prepareMock: func() {
				service.EXPECT().CheckUsername(gomock.Any(), "alice").Return(true, nil)
			},
			expectedAvailable: true,
		},
		{
			name:     "Taken username",
			username: "alice",
			prepareMock: func() {
				service.EXPECT().CheckUsername(gomock.Any(), "alice").Return(false, nil)
			},
		},
		{
			name:        "Invalid username short-circuits",
			username:    "A!",
			prepareMock: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("GET", "/api/users/check-username/lookup", nil), "username", tt.username)
			rr := httptest.NewRecorder()

			handler.CheckUsername(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp dto.UsernameAvailabilityResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedAvailable, resp.Available)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		adminKey      string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "User deleted with valid admin key",
			adminKey: testAdminKey,
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), "alice").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Wrong admin key",
			adminKey:      "wrong-key",
			prepareMock:   func() {},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name:          "Missing admin key",
			adminKey:      "",
			prepareMock:   func() {},
			expectedCode:  http.StatusForbidden,
			expectedError: "Forbidden",
		},
		{
			name:     "Unknown user",
			adminKey: testAdminKey,
			prepareMock: func() {
				service.EXPECT().DeleteUser(gomock.Any(), "alice").Return(walletservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withURLParam(httptest.NewRequest("DELETE", "/api/users/alice", nil), "username", "alice")
			if tt.adminKey != "" {
				req.Header.Set("X-Admin-Key", tt.adminKey)
			}
			rr := httptest.NewRecorder()

			handler.DeleteUser(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestDisabledAdminKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, "")
	defer ctrl.Finish()

	req := withURLParam(httptest.NewRequest("DELETE", "/api/users/alice", nil), "username", "alice")
	req.Header.Set("X-Admin-Key", "")
	rr := httptest.NewRecorder()

	handler.DeleteUser(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
