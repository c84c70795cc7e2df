package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/ao-tech/club-manager/internal/config"
	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotApproved = errors.New("account pending approval")
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindConflict(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == input.Username {
			return nil, domain.ErrUsernameTaken
		}
		return nil, domain.ErrEmailTaken
	}

	// TODO: hash passwords with bcrypt; requires a migration pass over
	// existing rows, which still hold the raw value.
	user := &domain.User{
		ID:         uuid.New(),
		Username:   input.Username,
		Email:      input.Email,
		Password:   input.Password,
		IsAdmin:    false,
		IsApproved: false,
		CreatedAt:  time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsApproved {
		return nil, ErrAccountNotApproved
	}

	if user.Password != input.Password {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.cfg.SessionTTL)
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the session. Revoking an already-absent token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}

// ValidateSession resolves a token to the owning user id. The token is valid
// iff an unexpired session row carries it; expired rows stay in place and are
// simply never matched.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	return session.UserID, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// generateToken returns 32 bytes of randomness as an opaque URL-safe string.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
