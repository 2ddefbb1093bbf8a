package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookreviews/internal/auth"
	"bookreviews/internal/testutil"
	"bookreviews/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *auth.HTTPHandler {
	return auth.NewHTTPHandler(auth.NewService(testutil.Secret, user.NewMemoryRepo()))
}

func TestHTTPHandler_Register(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "success",
			body:           map[string]string{"username": "alice", "password": "pw1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate username",
			body:           map[string]string{"username": "alice", "password": "pw2"},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_EXISTS",
		},
		{
			name:           "missing username",
			body:           map[string]string{"password": "pw1"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "missing password",
			body:           map[string]string{"username": "bob"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "username too short",
			body:           map[string]string{"username": "ab", "password": "pw1"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "username with invalid characters",
			body:           map[string]string{"username": "bad name!", "password": "pw1"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := testutil.NewRequest(http.MethodPost, "/register", tt.body)

			handler.Register(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				body := testutil.DecodeBody(w)
				errBody := body["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedCode, errBody["code"])
			}
		})
	}

	t.Run("invalid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/register", nil)

		handler.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Login(t *testing.T) {
	handler := newTestHandler()

	// Register first so login has an account to match.
	w := httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "pw1",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("success returns token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/login", map[string]string{
			"username": "alice",
			"password": "pw1",
		})

		handler.Login(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		body := testutil.DecodeBody(w)
		data := body["data"].(map[string]interface{})
		token, ok := data["token"].(string)
		require.True(t, ok)
		assert.NotEmpty(t, token)

		claims, err := auth.ParseToken(testutil.Secret, token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Sub)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/login", map[string]string{
			"username": "alice",
			"password": "wrong",
		})

		handler.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unregistered username", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/login", map[string]string{
			"username": "nobody",
			"password": "pw1",
		})

		handler.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/login", map[string]string{
			"username": "alice",
		})

		handler.Login(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
