// Package store persists the user collection as a single JSON array on disk.
// Every call reads or rewrites the whole document; there is no locking, so
// concurrent writers can race (a known limitation of the flat-file format).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/webgate/internal/model"
)

type UserStore interface {
	Load(ctx context.Context) ([]model.User, error)
	Save(ctx context.Context, users []model.User) error
}

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored users. A missing file is created empty; a file that
// no longer parses as a user array is treated as empty after logging a
// warning, so the process keeps serving instead of failing every request.
func (s *FileStore) Load(ctx context.Context) ([]model.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.write(nil); err != nil {
			return nil, fmt.Errorf("create user store: %w", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user store: %w", err)
	}
	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		logutil.GetLogger(ctx).Warn("user store is unreadable, treating as empty",
			zap.String("path", s.path), zap.Error(err))
		return nil, nil
	}
	return users, nil
}

func (s *FileStore) Save(ctx context.Context, users []model.User) error {
	if err := s.write(users); err != nil {
		return fmt.Errorf("write user store: %w", err)
	}
	return nil
}

func (s *FileStore) write(users []model.User) error {
	if users == nil {
		users = []model.User{}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// FindByEmail scans for the first user whose email matches case-insensitively.
func FindByEmail(users []model.User, email string) *model.User {
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}
