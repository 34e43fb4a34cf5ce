package service

import (
	"context"
	"strings"
	"time"

	"github.com/xxxsen/webgate/internal/model"
	apperrors "github.com/xxxsen/webgate/internal/pkg/errors"
	"github.com/xxxsen/webgate/internal/pkg/password"
	"github.com/xxxsen/webgate/internal/store"
	"github.com/xxxsen/webgate/internal/validate"
)

type AuthService struct {
	users store.UserStore
}

func NewAuthService(users store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register validates the input, rejects duplicate emails and appends a new
// user with a bcrypt password hash. The duplicate check and the save are not
// atomic: two racing registrations for the same email can both pass the
// check. The flat-file store offers nothing to fence this with.
func (s *AuthService) Register(ctx context.Context, name, email, phone, plainPassword string) (*model.User, error) {
	if err := validate.Registration(name, email, phone, plainPassword); err != nil {
		return nil, err
	}
	email = validate.NormalizeEmail(email)
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	if store.FindByEmail(users, email) != nil {
		return nil, apperrors.ErrEmailTaken
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := model.User{
		ID:           newUserID(users, now),
		Name:         strings.TrimSpace(name),
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: hash,
		Created:      now.Unix(),
	}
	users = append(users, user)
	if err := s.users.Save(ctx, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password return the
// same error so callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*model.User, error) {
	if err := validate.Login(email, plainPassword); err != nil {
		return nil, err
	}
	email = validate.NormalizeEmail(email)
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	user := store.FindByEmail(users, email)
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser resolves a session email back to the stored record. A session
// pointing at a missing user yields ErrNotFound rather than an error page.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.ErrNotFound
	}
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	user := store.FindByEmail(users, email)
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// newUserID keeps the original millisecond-timestamp scheme but bumps past
// the highest stored id so rapid registrations cannot collide.
func newUserID(users []model.User, now time.Time) int64 {
	id := now.UnixMilli()
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	if id <= max {
		id = max + 1
	}
	return id
}
