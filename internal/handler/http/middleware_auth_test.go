package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// okHandler records whether the wrapped handler was reached and what user
// the middleware put into the context.
type okHandler struct {
	called bool
	user   models.User
	userOK bool
}

func (o *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	o.called = true
	o.user, o.userOK = utils.GetUserFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{Subject: "alice", SignedString: tokenString}, nil
		},
		resolveSubjectFn: func(_ context.Context, subject string) (models.User, error) {
			assert.Equal(t, "alice", subject)
			return models.User{UserID: 1, Username: "alice", IsActive: true, Roles: []string{"user"}}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	next := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	require.True(t, next.userOK)
	assert.Equal(t, "alice", next.user.Username)
	assert.Equal(t, []string{"user"}, next.user.Roles)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	assert.Equal(t, app.MsgCouldNotValidateCredentials, errorBody(t, rec).Error)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	tests := []struct {
		name   string
		header string
	}{
		{name: "no scheme", header: "just-a-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &okHandler{}
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, next.called)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidToken
		},
	}

	h := newHandlerWithAuth(t, auth)
	next := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer expired.or.forged")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	assert.Equal(t, app.MsgCouldNotValidateCredentials, errorBody(t, rec).Error)
}

// TestAuthMiddleware_UnknownSubject covers a valid token whose account was
// deleted after issuance: the store lookup decides, not the token.
func TestAuthMiddleware_UnknownSubject(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{Subject: "ghost", SignedString: tokenString}, nil
		},
		resolveSubjectFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrUnknownSubject
		},
	}

	h := newHandlerWithAuth(t, auth)
	next := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer valid.but.orphaned")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
	assert.Equal(t, app.MsgCouldNotValidateCredentials, errorBody(t, rec).Error)
}

// ─────────────────────────────────────────────
// requireActive
// ─────────────────────────────────────────────

func TestRequireActive_ActiveUserPasses(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	ctx := context.WithValue(req.Context(), utils.UserCtxKey, models.User{Username: "alice", IsActive: true})
	rec := httptest.NewRecorder()

	h.requireActive(next).ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, next.called)
}

// TestRequireActive_InactiveUserRejected verifies that a deactivated account
// holding a still-valid token is rejected with 400.
func TestRequireActive_InactiveUserRejected(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	ctx := context.WithValue(req.Context(), utils.UserCtxKey, models.User{Username: "alice", IsActive: false})
	rec := httptest.NewRecorder()

	h.requireActive(next).ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, next.called)
	assert.Equal(t, app.MsgInactiveUser, errorBody(t, rec).Error)
}

func TestRequireActive_NoUserInContext(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	h.requireActive(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}
