package repository

import (
	"context"
	"path/filepath"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

type userCodec struct{}

func (userCodec) Marshal(u model.User) (string, error) { return u.MarshalRecord() }
func (userCodec) Unmarshal(line string) (model.User, error) {
	return model.UnmarshalUserRecord(line)
}
func (userCodec) ID(u model.User) string { return u.ID }

// UserStore persists users in users.txt.
type UserStore struct {
	*FileStore[model.User]
}

// NewUserStore opens the user collection under dataDir.
func NewUserStore(dataDir string) (*UserStore, error) {
	fs, err := NewFileStore[model.User](filepath.Join(dataDir, "users.txt"), userCodec{})
	if err != nil {
		return nil, err
	}
	return &UserStore{fs}, nil
}

// FindByEmail returns the user registered under email, or ErrNotFound. Email
// uniqueness is enforced by the auth service at registration, so the first
// match is the only one.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	return s.First(ctx, func(u model.User) bool { return u.Email == email })
}
