package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/ao-tech/club-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		setup          func()
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful login",
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("alice").
					WithPassword("Valid1!pw").
					Build(t, ts.DB.DB)
			},
			request:        map[string]string{"username": "alice", "password": "Valid1!pw"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					Message string `json:"message"`
					User    struct {
						Username string `json:"username"`
						IsAdmin  bool   `json:"is_admin"`
					} `json:"user"`
				}
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "alice", result.User.Username)
				assert.False(t, result.User.IsAdmin)

				var cookie *http.Cookie
				for _, c := range resp.Cookies() {
					if c.Name == "session_token" {
						cookie = c
					}
				}
				require.NotNil(t, cookie, "session cookie not set")
				assert.NotEmpty(t, cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.True(t, cookie.Expires.After(time.Now().Add(23*time.Hour)))
			},
		},
		{
			name:           "unknown username",
			request:        map[string]string{"username": "ghost", "password": "Valid1!pw"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("alice").
					WithPassword("Valid1!pw").
					Build(t, ts.DB.DB)
			},
			request:        map[string]string{"username": "alice", "password": "nope"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unapproved account",
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("alice").
					WithPassword("Valid1!pw").
					Unapproved().
					Build(t, ts.DB.DB)
			},
			request:        map[string]string{"username": "alice", "password": "Valid1!pw"},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := ts.PostJSON(t, "/login", tt.request)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		setup          func()
		request        map[string]string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"username": "newuser",
				"email":    "newuser@example.com",
				"password": "Valid1!pw",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "duplicate username",
			setup: func() {
				testutil.NewUserBuilder().WithUsername("taken").Build(t, ts.DB.DB)
			},
			request: map[string]string{
				"username": "taken",
				"email":    "fresh@example.com",
				"password": "Valid1!pw",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "username is already in use",
		},
		{
			name: "invalid email",
			request: map[string]string{
				"username": "newuser",
				"email":    "nope",
				"password": "Valid1!pw",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "weak password",
			request: map[string]string{
				"username": "newuser",
				"email":    "newuser@example.com",
				"password": "password",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := ts.PostJSON(t, "/register", tt.request)
			if tt.expectedError != "" {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedError)
			} else {
				testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			}
		})
	}
}

func TestAuthHandler_CheckSession(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user := testutil.NewUserBuilder().
		WithUsername("alice").
		WithPassword("Valid1!pw").
		Build(t, ts.DB.DB)
	cookie := ts.Login(t, "alice", "Valid1!pw")

	t.Run("valid cookie", func(t *testing.T) {
		resp := ts.Get(t, "/check-session", cookie)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			Valid  bool   `json:"valid"`
			UserID string `json:"userId"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.True(t, result.Valid)
		assert.Equal(t, user.ID.String(), result.UserID)
	})

	t.Run("missing cookie", func(t *testing.T) {
		resp := ts.Get(t, "/check-session")
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		resp := ts.Get(t, "/check-session", &http.Cookie{Name: "session_token", Value: "garbage"})
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().
		WithUsername("alice").
		WithPassword("Valid1!pw").
		Build(t, ts.DB.DB)
	cookie := ts.Login(t, "alice", "Valid1!pw")

	resp := ts.PostJSON(t, "/logout", nil, cookie)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// The session row is gone; the cookie no longer authenticates
	resp = ts.Get(t, "/check-session", cookie)
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)

	// And a second logout with the dead cookie is itself rejected
	resp = ts.PostJSON(t, "/logout", nil, cookie)
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}
