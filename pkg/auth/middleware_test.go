package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	sessions map[string]int
}

func (s *stubResolver) Resolve(_ context.Context, token string) (int, bool) {
	id, ok := s.sessions[token]
	return id, ok
}

type stubAdminChecker struct {
	admins map[int]bool
}

func (s *stubAdminChecker) IsAdmin(_ context.Context, userID int) bool {
	return s.admins[userID]
}

func echoUserID(t *testing.T, captured *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value(UserIDKey).(int)
		assert.True(t, ok, "user id should be on the context")
		*captured = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionMiddleware(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]int{"goodtoken": 7}}

	tests := []struct {
		name         string
		cookie       *http.Cookie
		expectedCode int
		expectedUser int
	}{
		{
			name:         "Valid session",
			cookie:       &http.Cookie{Name: SessionCookie, Value: "goodtoken"},
			expectedCode: http.StatusOK,
			expectedUser: 7,
		},
		{
			name:         "No cookie",
			cookie:       nil,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Unknown token",
			cookie:       &http.Cookie{Name: SessionCookie, Value: "staletoken"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Empty token",
			cookie:       &http.Cookie{Name: SessionCookie, Value: ""},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured int
			handler := SessionMiddleware(resolver)(echoUserID(t, &captured))

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedUser, captured)
			} else {
				assert.Contains(t, rec.Body.String(), "not logged in")
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]int{"admintoken": 1, "usertoken": 2}}
	checker := &stubAdminChecker{admins: map[int]bool{1: true}}

	tests := []struct {
		name         string
		cookie       *http.Cookie
		expectedCode int
	}{
		{
			name:         "Admin session",
			cookie:       &http.Cookie{Name: SessionCookie, Value: "admintoken"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Customer session",
			cookie:       &http.Cookie{Name: SessionCookie, Value: "usertoken"},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "No session",
			cookie:       nil,
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured int
			handler := AdminMiddleware(resolver, checker)(echoUserID(t, &captured))

			req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, 1, captured)
			} else {
				assert.Contains(t, rec.Body.String(), "admin only")
			}
		})
	}
}
