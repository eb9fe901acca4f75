package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/internal/utils"
	"github.com/jasonyi-dev/ganttrack/internal/validators"
	"github.com/jasonyi-dev/ganttrack/models"
)

// authService is the concrete implementation of [AuthService].
//
// Every account gets its own random signing key at registration, so tokens
// are verified in two steps: the unverified subject claim names the user,
// the user's stored key verifies the signature. Compromising one key never
// exposes another user's sessions.
type authService struct {
	userRepository store.UserRepository

	credentialsValidator validators.Validator

	// tokenIssuer is the "iss" claim embedded in every issued JWT. Tokens
	// with a different issuer are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT stays valid.
	tokenDuration time.Duration

	// tokenRenewAhead is the window before expiry inside which ParseToken
	// issues a replacement token.
	tokenRenewAhead time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		credentialsValidator: validators.NewCredentialsValidator(),
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		tokenRenewAhead:      cfg.TokenRenewAhead,
		logger:               logger,
	}
}

// RegisterUser creates a new account.
//
// The username and password must satisfy the registration rules enforced by
// [validators.CredentialsValidator]; rule violations come back wrapped in
// ErrInvalidDataProvided so handlers can map them to a 400 while keeping
// the specific message. The password is hashed with the reversed-username
// salt, and a fresh per-user signing key is generated.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided (wrapping the rule violation) on bad input.
//   - store.ErrUserAlreadyExists when the username is taken.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.credentialsValidator.Validate(ctx, creds); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	secret, err := utils.GenerateSecretKey()
	if err != nil {
		log.Err(err).Msg("secret key generation failed")
		return models.User{}, fmt.Errorf("secret key generation failed: %w", err)
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: utils.HashPassword(creds.Username, creds.Password),
		SecretKey:    secret,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by comparing password hashes.
//
// Returns the account record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the lookup fails (see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword when the hashes do not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if utils.HashPassword(creds.Username, creds.Password) != foundUser.PasswordHash {
		log.Error().Str("username", creds.Username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user using the user's own
// secret key.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, user.SecretKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string against the key of the user named
// in its subject claim.
//
// When the token is valid and expires within the renewal window, a fresh
// replacement is issued and returned in its place; the caller must echo
// the new SignedString back to the client.
//
// Returns:
//   - ErrTokenIsExpired when the exp claim has passed.
//   - ErrTokenIsInvalid on any other validation failure, including an
//     unknown subject.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	username, err := utils.ParseUsernameFromJWT(tokenString)
	if err != nil {
		log.Err(err).Msg("token subject extraction failed")
		return models.Token{}, ErrTokenIsInvalid
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("token subject is not a known user")
		return models.Token{}, ErrTokenIsInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, user.SecretKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}

		log.Err(err).Str("username", username).Msg("token validation failed")
		return models.Token{}, ErrTokenIsInvalid
	}

	if utils.TokenExpiresWithin(token, a.tokenRenewAhead) {
		renewed, err := a.CreateToken(ctx, user)
		if err != nil {
			log.Err(err).Str("username", username).Msg("token renewal failed, keeping current token")
			return token, nil
		}
		return renewed, nil
	}

	return token, nil
}
