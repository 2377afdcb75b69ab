package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// email or password wrong
	ErrInvalidCredentials = errors.New("invalid credentials")
	// account disabled
	ErrUserInactive = errors.New("user is inactive")
	// valid credentials but not an admin account
	ErrNotAdmin = errors.New("not an admin")
)

// SessionTokenIssuer signs a cookie token binding a session row to a user.
type SessionTokenIssuer interface {
	Issue(sessionID string, userID int64, now time.Time) (token string, expiresAt time.Time, err error)
}

// SessionTokenParser reverses Issue. A failed parse means "no session",
// never a server error.
type SessionTokenParser interface {
	Parse(raw string) (sessionID string, userID int64, err error)
}

// PasswordVerifier compares a plain password against a stored hash.
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

type AdminAuthUsecase struct {
	userRepo    repo.AdminUserRepository
	sessionRepo repo.AdminSessionRepository
	verifier    PasswordVerifier
	issuer      SessionTokenIssuer
	parser      SessionTokenParser
	idGen       IDGenerator
	clock       Clock
	sessionTTL  time.Duration
}

func NewAdminAuthUsecase(
	userRepo repo.AdminUserRepository,
	sessionRepo repo.AdminSessionRepository,
	verifier PasswordVerifier,
	issuer SessionTokenIssuer,
	parser SessionTokenParser,
	idGen IDGenerator,
	clock Clock,
	sessionTTL time.Duration,
) *AdminAuthUsecase {
	return &AdminAuthUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		verifier:    verifier,
		issuer:      issuer,
		parser:      parser,
		idGen:       idGen,
		clock:       clock,
		sessionTTL:  sessionTTL,
	}
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
}

// AdminUserView is the identity shape handed to clients; never the hash.
type AdminUserView struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginOutput struct {
	User AdminUserView `json:"user"`
}

// The handler needs these to set the cookie.
type LoginSideEffect struct {
	SessionToken string
	ExpiresAt    time.Time
}

func (u *AdminAuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, LoginSideEffect, error) {
	var out LoginOutput
	var side LoginSideEffect

	email := strings.TrimSpace(strings.ToLower(in.Email))

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, side, err
	}
	if user == nil {
		return out, side, ErrInvalidCredentials
	}

	if !user.IsActive {
		return out, side, ErrUserInactive
	}

	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, side, ErrInvalidCredentials
	}

	if !user.IsAdmin {
		return out, side, ErrNotAdmin
	}

	now := u.clock.Now()

	session := &model.AdminSession{
		ID:        u.idGen.NewID(),
		UserID:    user.ID,
		UserAgent: in.UserAgent,
		ExpiresAt: now.Add(u.sessionTTL),
		CreatedAt: now,
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return out, side, err
	}

	token, expiresAt, err := u.issuer.Issue(session.ID, user.ID, now)
	if err != nil {
		return out, side, err
	}

	user.LastLoginAt = &now
	if err := u.userRepo.Update(ctx, user); err != nil {
		return out, side, err
	}

	out.User = AdminUserView{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	side.SessionToken = token
	side.ExpiresAt = expiresAt
	return out, side, nil
}

// SessionOutput is the GET /api/admin/session payload.
type SessionOutput struct {
	Success       bool   `json:"success"`
	Authenticated bool   `json:"authenticated"`
	IsAdmin       bool   `json:"isAdmin"`
	UserID        int64  `json:"userId,omitempty"`
	Username      string `json:"username,omitempty"`
}

// CheckSession resolves a raw cookie token to the current admin identity.
// Every way a session can be absent or dead yields authenticated:false
// with a nil error; only infrastructure failures return an error.
func (u *AdminAuthUsecase) CheckSession(ctx context.Context, rawToken string) (SessionOutput, error) {
	unauthenticated := SessionOutput{Success: true, Authenticated: false}

	if rawToken == "" {
		return unauthenticated, nil
	}

	sessionID, userID, err := u.parser.Parse(rawToken)
	if err != nil {
		return unauthenticated, nil
	}

	session, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err == repo.ErrNotFound {
		return unauthenticated, nil
	}
	if err != nil {
		return SessionOutput{}, err
	}

	// Token and row must agree on the user.
	if session.UserID != userID {
		return unauthenticated, nil
	}
	if !session.Live(u.clock.Now()) {
		return unauthenticated, nil
	}

	user, err := u.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return SessionOutput{}, err
	}
	if user == nil || !user.IsActive {
		return unauthenticated, nil
	}

	return SessionOutput{
		Success:       true,
		Authenticated: true,
		IsAdmin:       user.IsAdmin,
		UserID:        user.ID,
		Username:      user.Username,
	}, nil
}

// Logout revokes the session row the token names. An unparseable token or
// an already-dead session is not an error; there is nothing left to revoke.
func (u *AdminAuthUsecase) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	sessionID, _, err := u.parser.Parse(rawToken)
	if err != nil {
		return nil
	}

	err = u.sessionRepo.Revoke(ctx, sessionID, u.clock.Now())
	if err == repo.ErrNotFound {
		return nil
	}
	return err
}
