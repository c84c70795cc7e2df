package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username   string
	email      string
	password   string
	isAdmin    bool
	isApproved bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username:   fmt.Sprintf("testuser_%s", suffix),
		email:      fmt.Sprintf("test_%s@example.com", suffix),
		password:   "Valid1!pw",
		isApproved: true,
	}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.isAdmin = true
	return b
}

func (b *UserBuilder) Unapproved() *UserBuilder {
	b.isApproved = false
	return b
}

// Build creates the user in the database
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:         uuid.New(),
		Username:   b.username,
		Email:      b.email,
		Password:   b.password,
		IsAdmin:    b.isAdmin,
		IsApproved: b.isApproved,
		CreatedAt:  time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// MemberBuilder creates test members
type MemberBuilder struct {
	id   string
	name string
	age  int
	typ  string
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		id:   uuid.New().String(),
		name: fmt.Sprintf("member_%s", uuid.New().String()[:8]),
		age:  25,
		typ:  "senior",
	}
}

func (b *MemberBuilder) WithID(id string) *MemberBuilder {
	b.id = id
	return b
}

func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.name = name
	return b
}

func (b *MemberBuilder) WithAge(age int) *MemberBuilder {
	b.age = age
	return b
}

func (b *MemberBuilder) WithType(typ string) *MemberBuilder {
	b.typ = typ
	return b
}

func (b *MemberBuilder) Build(t *testing.T, db *gorm.DB) *domain.Member {
	t.Helper()

	member := &domain.Member{
		ID:   b.id,
		Name: b.name,
		Age:  b.age,
		Type: b.typ,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

// SessionBuilder creates session rows directly, including expired ones
type SessionBuilder struct {
	userID    uuid.UUID
	token     string
	expiresAt time.Time
}

func NewSessionBuilder(userID uuid.UUID) *SessionBuilder {
	return &SessionBuilder{
		userID:    userID,
		token:     uuid.New().String(),
		expiresAt: time.Now().Add(24 * time.Hour),
	}
}

func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.token = token
	return b
}

func (b *SessionBuilder) ExpiredSince(d time.Duration) *SessionBuilder {
	b.expiresAt = time.Now().Add(-d)
	return b
}

func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Session {
	t.Helper()

	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    b.userID,
		Token:     b.token,
		ExpiresAt: b.expiresAt,
		CreatedAt: time.Now(),
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return session
}

// PostJSON sends a JSON POST to the test server
func (ts *TestServer) PostJSON(t *testing.T, path string, body interface{}, cookies ...*http.Cookie) *http.Response {
	return ts.doJSON(t, http.MethodPost, path, body, cookies...)
}

// PutJSON sends a JSON PUT to the test server
func (ts *TestServer) PutJSON(t *testing.T, path string, body interface{}, cookies ...*http.Cookie) *http.Response {
	return ts.doJSON(t, http.MethodPut, path, body, cookies...)
}

// Get sends a GET to the test server
func (ts *TestServer) Get(t *testing.T, path string, cookies ...*http.Cookie) *http.Response {
	return ts.doJSON(t, http.MethodGet, path, nil, cookies...)
}

// Delete sends a DELETE to the test server
func (ts *TestServer) Delete(t *testing.T, path string, cookies ...*http.Cookie) *http.Response {
	return ts.doJSON(t, http.MethodDelete, path, nil, cookies...)
}

// Do sends a bodyless request with an arbitrary method
func (ts *TestServer) Do(t *testing.T, method, path string, cookies ...*http.Cookie) *http.Response {
	return ts.doJSON(t, method, path, nil, cookies...)
}

func (ts *TestServer) doJSON(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, ts.URL()+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// Login authenticates a user and returns the session cookie
func (ts *TestServer) Login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	resp := ts.PostJSON(t, "/login", map[string]string{
		"username": username,
		"password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}
