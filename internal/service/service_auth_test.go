package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/models"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

// memoryUserRepository stores users in a map, for round-trip tests.
type memoryUserRepository struct {
	users map[string]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, ok := m.users[user.Username]; ok {
		return models.User{}, store.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return user, nil
}

func (m *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		TokenIssuer:     "ganttrack-test",
		TokenDuration:   time.Hour,
		TokenRenewAhead: time.Minute,
	}
}

func newAuthServiceWithRepo(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

// TestRegisterUser_Success verifies that registration hashes the password,
// generates a per-user secret key, and persists the account.
func TestRegisterUser_Success(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	user, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	stored := repo.users["alice"]
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "Sturdy-pass-1", stored.PasswordHash)
	assert.NotEmpty(t, stored.SecretKey)
}

// TestRegisterUser_EmptyCredentials verifies that empty username or password
// is rejected with ErrInvalidDataProvided.
func TestRegisterUser_EmptyCredentials(t *testing.T) {
	svc := newAuthServiceWithRepo(newMemoryUserRepository())

	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{"empty username", models.Credentials{Password: "Sturdy-pass-1"}},
		{"empty password", models.Credentials{Username: "alice"}},
		{"both empty", models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// TestRegisterUser_DuplicateUsername verifies that a taken username surfaces
// store.ErrUserAlreadyExists.
func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	creds := models.Credentials{Username: "alice", Password: "Sturdy-pass-1"}
	_, err := svc.RegisterUser(context.Background(), creds)
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), creds)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// TestRegisterUser_UniqueSecretKeys verifies that two accounts never share a
// signing key.
func TestRegisterUser_UniqueSecretKeys(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})
	require.NoError(t, err)
	_, err = svc.RegisterUser(context.Background(), models.Credentials{Username: "bob", Password: "Sturdy-pass-1"})
	require.NoError(t, err)

	assert.NotEqual(t, repo.users["alice"].SecretKey, repo.users["bob"].SecretKey)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

// TestLogin_Success verifies the registered password authenticates.
func TestLogin_Success(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	creds := models.Credentials{Username: "alice", Password: "Sturdy-pass-1"}
	_, err := svc.RegisterUser(context.Background(), creds)
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

// TestLogin_WrongPassword verifies a hash mismatch surfaces ErrWrongPassword.
func TestLogin_WrongPassword(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

// TestLogin_UnknownUser verifies an unknown username surfaces
// store.ErrNoUserWasFound.
func TestLogin_UnknownUser(t *testing.T) {
	svc := newAuthServiceWithRepo(newMemoryUserRepository())

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// TestLogin_EmptyCredentials verifies empty input short-circuits before any
// repository call.
func TestLogin_EmptyCredentials(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			t.Fatal("repository must not be reached")
			return models.User{}, nil
		},
	}
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken round trip
// ─────────────────────────────────────────────

// TestTokenRoundTrip verifies that a token issued by CreateToken parses back
// to the same subject.
func TestTokenRoundTrip(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	user, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})
	require.NoError(t, err)

	token, err := svc.CreateToken(context.Background(), repo.users[user.Username])
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
}

// TestParseToken_Garbage verifies that an unparseable string surfaces
// ErrTokenIsInvalid.
func TestParseToken_Garbage(t *testing.T) {
	svc := newAuthServiceWithRepo(newMemoryUserRepository())

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

// TestParseToken_ForeignKey verifies that a token signed with another user's
// key is rejected: the subject names a user whose stored key cannot verify
// the signature.
func TestParseToken_ForeignKey(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})
	require.NoError(t, err)

	token, err := svc.CreateToken(context.Background(), repo.users["alice"])
	require.NoError(t, err)

	// Swap alice's key after issuing, simulating a token signed with a key
	// the server no longer holds.
	tampered := repo.users["alice"]
	tampered.SecretKey = "completely-different-key"
	repo.users["alice"] = tampered

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

// TestParseToken_ExpiredToken verifies that an expired token surfaces
// ErrTokenIsExpired.
func TestParseToken_ExpiredToken(t *testing.T) {
	repo := newMemoryUserRepository()

	// Issue with a service whose tokens are already expired.
	expiredCfg := testAppConfig()
	expiredCfg.TokenDuration = -time.Hour
	issuer := NewAuthService(repo, expiredCfg, logger.Nop())

	_, err := issuer.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})
	require.NoError(t, err)

	token, err := issuer.CreateToken(context.Background(), repo.users["alice"])
	require.NoError(t, err)

	svc := newAuthServiceWithRepo(repo)
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

// TestParseToken_RenewsNearExpiry verifies that a token inside the renewal
// window comes back replaced with a fresh signed string.
func TestParseToken_RenewsNearExpiry(t *testing.T) {
	repo := newMemoryUserRepository()

	// Tokens live five seconds and renew within a minute of expiry, so every
	// freshly issued token is inside the window immediately.
	cfg := testAppConfig()
	cfg.TokenDuration = 5 * time.Second
	cfg.TokenRenewAhead = time.Minute
	svc := NewAuthService(repo, cfg, logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})
	require.NoError(t, err)

	token, err := svc.CreateToken(context.Background(), repo.users["alice"])
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
	assert.NotEmpty(t, parsed.SignedString)
}

// TestParseToken_RepositoryError verifies that a failing user lookup surfaces
// ErrTokenIsInvalid rather than the raw storage error.
func TestParseToken_RepositoryError(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})
	require.NoError(t, err)

	token, err := svc.CreateToken(context.Background(), repo.users["alice"])
	require.NoError(t, err)

	failing := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("connection reset")
		},
	}
	failingSvc := newAuthServiceWithRepo(failing)

	_, err = failingSvc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
