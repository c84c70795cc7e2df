package service_test

import (
	"context"
	"testing"

	"github.com/ao-tech/club-manager/internal/domain"
	"github.com/ao-tech/club-manager/internal/repository/postgres"
	"github.com/ao-tech/club-manager/internal/service"
	"github.com/ao-tech/club-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Username: "newuser",
				Email:    "newuser@example.com",
				Password: "Valid1!pw",
			},
		},
		{
			name: "invalid email",
			input: service.RegisterInput{
				Username: "newuser",
				Email:    "not-an-email",
				Password: "Valid1!pw",
			},
			wantErr: service.ErrInvalidEmail,
		},
		{
			name: "weak password",
			input: service.RegisterInput{
				Username: "newuser",
				Email:    "newuser@example.com",
				Password: "password",
			},
			wantErr: service.ErrWeakPassword,
		},
		{
			name: "username too short",
			input: service.RegisterInput{
				Username: "ab",
				Email:    "newuser@example.com",
				Password: "Valid1!pw",
			},
			wantErr: service.ErrBadUsernameLength,
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Username: "existing",
				Email:    "fresh@example.com",
				Password: "Valid1!pw",
			},
			setup: func() {
				testutil.NewUserBuilder().WithUsername("existing").Build(t, testDB.DB)
			},
			wantErr: domain.ErrUsernameTaken,
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Username: "freshname",
				Email:    "taken@example.com",
				Password: "Valid1!pw",
			},
			setup: func() {
				testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Username, user.Username)
			assert.False(t, user.IsAdmin)
			assert.False(t, user.IsApproved)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func()
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("alice").
					WithPassword("Valid1!pw").
					Build(t, testDB.DB)
			},
			input: service.LoginInput{Username: "alice", Password: "Valid1!pw"},
		},
		{
			name:    "unknown username",
			input:   service.LoginInput{Username: "ghost", Password: "Valid1!pw"},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("alice").
					WithPassword("Valid1!pw").
					Build(t, testDB.DB)
			},
			input:   service.LoginInput{Username: "alice", Password: "wrong"},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "unapproved account",
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("alice").
					WithPassword("Valid1!pw").
					Unapproved().
					Build(t, testDB.DB)
			},
			input:   service.LoginInput{Username: "alice", Password: "Valid1!pw"},
			wantErr: service.ErrAccountNotApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.Token)
			assert.Equal(t, "alice", result.User.Username)

			// Token round-trips through validation
			userID, err := authService.ValidateSession(ctx, result.Token)
			require.NoError(t, err)
			assert.Equal(t, result.User.ID, userID)
		})
	}
}

func TestAuthService_ConcurrentSessionsPerUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithUsername("alice").
		WithPassword("Valid1!pw").
		Build(t, testDB.DB)

	input := service.LoginInput{Username: "alice", Password: "Valid1!pw"}
	first, err := authService.Login(ctx, input)
	require.NoError(t, err)
	second, err := authService.Login(ctx, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	// Both sessions stay valid; logging in again revokes nothing
	_, err = authService.ValidateSession(ctx, first.Token)
	require.NoError(t, err)
	_, err = authService.ValidateSession(ctx, second.Token)
	require.NoError(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithUsername("alice").
		WithPassword("Valid1!pw").
		Build(t, testDB.DB)

	result, err := authService.Login(ctx, service.LoginInput{Username: "alice", Password: "Valid1!pw"})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, result.Token))

	_, err = authService.ValidateSession(ctx, result.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Logout of a revoked token still succeeds
	require.NoError(t, authService.Logout(ctx, result.Token))
}
