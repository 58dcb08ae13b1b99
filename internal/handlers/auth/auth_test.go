package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkorsun/storefront/internal/domain"
	authservice "github.com/mkorsun/storefront/internal/service/authservice"
	pkgauth "github.com/mkorsun/storefront/pkg/auth"
	"github.com/mkorsun/storefront/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newFormRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: "username=newuser&password=password123",
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "newuser", "password123").Return(&domain.User{
					ID:       1,
					Username: "newuser",
					Role:     domain.RoleAdmin,
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Username already taken",
			body: "username=existinguser&password=password123",
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "existinguser", "password123").
					Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name:          "Missing username",
			body:          "password=password123",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "missing fields",
		},
		{
			name:          "Missing password",
			body:          "username=newuser",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "missing fields",
		},
		{
			name: "Unexpected service error",
			body: "username=newuser&password=password123",
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "newuser", "password123").
					Return(nil, errors.New("boom"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newFormRequest("POST", "/register", tt.body)
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: "username=testuser&password=password123",
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "password123").
					Return(&domain.User{ID: 1, Username: "testuser"}, nil)
				service.EXPECT().
					CreateSession(gomock.Any(), 1).
					Return("a1b2c3d4e5f60718293a4b5c6d7e8f90", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Invalid credentials",
			body: "username=testuser&password=wrongpassword",
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid credentials",
		},
		{
			name: "Error creating session",
			body: "username=testuser&password=password123",
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "password123").
					Return(&domain.User{ID: 1, Username: "testuser"}, nil)
				service.EXPECT().
					CreateSession(gomock.Any(), 1).
					Return("", errors.New("entropy exhausted"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newFormRequest("POST", "/login", tt.body)
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Authenticate(gomock.Any(), "testuser", "password123").
		Return(&domain.User{ID: 7, Username: "testuser"}, nil)
	service.EXPECT().
		CreateSession(gomock.Any(), 7).
		Return("deadbeefdeadbeefdeadbeefdeadbeef", nil)

	req := newFormRequest("POST", "/login", "username=testuser&password=password123")
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == pkgauth.SessionCookie {
			session = c
		}
	}
	if assert.NotNil(t, session) {
		assert.Equal(t, "deadbeefdeadbeefdeadbeefdeadbeef", session.Value)
		assert.Equal(t, "/", session.Path)
		assert.True(t, session.HttpOnly)
	}
}
