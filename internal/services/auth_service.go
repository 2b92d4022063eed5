package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"parley-chat/internal/domain/user"
	"parley-chat/internal/redis"
	"parley-chat/internal/repository"
	parley_errors "parley-chat/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns the session-token lifecycle: issue on login, invalidate on
// logout, resolve on every protected request. Tokens are opaque random strings;
// only their SHA-256 digest is stored, and the digest lookup is what resolves
// a bearer token back to a user.
type AuthService struct {
	userRepo repository.UserRepository
	cache    *redis.CacheStore
}

// NewAuthService creates the auth service. cache may be nil; resolution then
// always goes to the database.
func NewAuthService(userRepo repository.UserRepository, cache *redis.CacheStore) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token string
	User  user.User
}

// Login verifies the credential pair and mints a fresh token bound to the
// user. Unknown username and wrong password collapse into the same error so
// the caller cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, parley_errors.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, parley_errors.ErrNotFound) {
			return LoginResult{}, parley_errors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := comparePassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, parley_errors.ErrInvalidCredentials
	}

	token, err := generateToken(20)
	if err != nil {
		return LoginResult{}, err
	}

	authToken := &user.AuthToken{
		TokenHash: hashToken(token),
		UserID:    u.ID,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.CreateToken(ctx, authToken); err != nil {
		return LoginResult{}, err
	}

	if s.cache != nil {
		_ = s.cache.SetToken(ctx, authToken.TokenHash, &u)
	}

	return LoginResult{Token: token, User: u}, nil
}

// Logout deletes the caller's token. The token is gone afterwards; a Resolve
// call on the same string fails.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return parley_errors.ErrUnauthenticated
	}

	tokenHash := hashToken(token)
	if err := s.userRepo.DeleteToken(ctx, tokenHash); err != nil {
		if errors.Is(err, parley_errors.ErrNotFound) {
			return parley_errors.ErrUnauthenticated
		}
		return err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateToken(ctx, tokenHash)
	}

	return nil
}

// Resolve returns the user a bearer token is bound to, or ErrUnauthenticated
// if the token is missing or unknown. The cache is consulted first; Postgres
// stays the source of truth.
func (s *AuthService) Resolve(ctx context.Context, token string) (user.User, error) {
	if token == "" {
		return user.User{}, parley_errors.ErrUnauthenticated
	}

	tokenHash := hashToken(token)

	if s.cache != nil {
		if cached, err := s.cache.GetToken(ctx, tokenHash); err == nil && cached != nil {
			return user.User{ID: cached.UserID, Username: cached.Username}, nil
		}
	}

	t, err := s.userRepo.GetToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, parley_errors.ErrNotFound) {
			return user.User{}, parley_errors.ErrUnauthenticated
		}
		return user.User{}, err
	}

	u, err := s.lookupUser(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, parley_errors.ErrNotFound) {
			return user.User{}, parley_errors.ErrUnauthenticated
		}
		return user.User{}, err
	}

	if s.cache != nil {
		_ = s.cache.SetToken(ctx, tokenHash, &u)
	}

	return u, nil
}

// LogoutAll deletes every token bound to the user, ending all their concurrent
// sessions at once.
func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	hashes, err := s.userRepo.DeleteUserTokens(ctx, userID)
	if err != nil {
		return err
	}

	if s.cache != nil {
		for _, hash := range hashes {
			_ = s.cache.InvalidateToken(ctx, hash)
		}
	}

	return nil
}

// lookupUser consults the user cache before Postgres. Cache failures degrade
// to a database read.
func (s *AuthService) lookupUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetUser(ctx, id); err == nil && cached != nil {
			return user.User{ID: cached.ID, Username: cached.Username}, nil
		}
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	if s.cache != nil {
		_ = s.cache.SetUser(ctx, &u)
	}
	return u, nil
}

// HTTPStatus maps service errors to HTTP status codes.
func HTTPStatus(err error) int {
	var ve *parley_errors.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, parley_errors.ErrInvalidInput),
		errors.Is(err, parley_errors.ErrInvalidCredentials):
		return 400
	case errors.Is(err, parley_errors.ErrUnauthenticated):
		return 401
	case errors.Is(err, parley_errors.ErrForbidden):
		return 403
	case errors.Is(err, parley_errors.ErrNotFound):
		return 404
	case errors.Is(err, parley_errors.ErrAlreadyExists), errors.Is(err, parley_errors.ErrConflict):
		return 409
	default:
		return 500
	}
}

type ctxKey string

var authUserKey ctxKey = "auth_user"
var authTokenKey ctxKey = "auth_token"

// WithAuthContext stores the resolved caller and their raw token on the
// request context.
func WithAuthContext(ctx context.Context, u user.User, token string) context.Context {
	ctx = context.WithValue(ctx, authUserKey, u)
	ctx = context.WithValue(ctx, authTokenKey, token)
	return ctx
}

// UserFromContext returns the resolved caller, if any.
func UserFromContext(ctx context.Context) (user.User, bool) {
	value := ctx.Value(authUserKey)
	if value == nil {
		return user.User{}, false
	}
	u, ok := value.(user.User)
	return u, ok
}

// TokenFromContext returns the caller's raw bearer token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(authTokenKey)
	if value == nil {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func generateToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
