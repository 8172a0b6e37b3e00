package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/flight-reservation-system/internal/model"
	"github.com/iliyamo/flight-reservation-system/internal/repository"
	"github.com/iliyamo/flight-reservation-system/internal/utils"
)

// Session identifies a logged-in user. The token is what the caller keeps
// between operations; the remaining fields are resolved from the user store
// when the token is verified, so a session always reflects the current
// record.
type Session struct {
	Token  string
	UserID string
	Name   string
	Email  string
	Role   model.Role
}

// AuthService registers accounts and exchanges credentials for session
// tokens. There is no logged-in state inside the service; whoever holds a
// valid token is logged in.
type AuthService struct {
	users      *repository.UserStore
	secret     string
	sessionTTL time.Duration
	bcryptCost int

	// mu serializes every email-uniqueness check against the write that
	// follows it; without it two concurrent registrations of one email
	// would both pass the check and both persist.
	mu sync.Mutex
}

// NewAuthService constructs an AuthService. secret signs session tokens;
// bcryptCost controls password hashing.
func NewAuthService(users *repository.UserStore, secret string, sessionTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{users: users, secret: secret, sessionTTL: sessionTTL, bcryptCost: bcryptCost}
}

// Register creates an account with the given role. The email must not be in
// use, otherwise ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role model.Role) (model.User, error) {
	email = strings.TrimSpace(email)
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return model.User{}, err
	}

	// Hashing stays outside the critical section; only the check and the
	// save need to be atomic with respect to other registrations.
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return model.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.User{}, err
	}
	u := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Save(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Login verifies the credentials and returns a fresh session. A wrong email
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}
	token, err := utils.NewSessionToken(s.secret, u.ID, u.Role, s.sessionTTL)
	if err != nil {
		return Session{}, err
	}
	return sessionFor(token, u), nil
}

// Authenticate verifies a session token and resolves the user it belongs to.
// A token for a user that no longer exists is rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (Session, error) {
	userID, err := utils.ParseSessionToken(s.secret, token)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	return sessionFor(token, u), nil
}

// UpdateProfile edits a user's name and email. An empty value keeps the
// current one; a new email must not belong to another account.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if name = strings.TrimSpace(name); name != "" {
		u.Name = name
	}
	if email = strings.TrimSpace(email); email != "" && email != u.Email {
		if _, err := s.users.FindByEmail(ctx, email); err == nil {
			return model.User{}, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return model.User{}, err
		}
		u.Email = email
	}
	if err := s.users.Update(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func sessionFor(token string, u model.User) Session {
	return Session{
		Token:  token,
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
