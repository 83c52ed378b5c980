package services

import (
	"context"

	"github.com/around-labs/around/core"
)

// UserService is the operation contract for the users resource. All
// data-shape policing happens at the boundary, so every method assumes a
// well-typed input and only translates storage outcomes.
type UserService struct {
	storage core.UserStorage
}

func NewUserService(storage core.UserStorage) *UserService {
	return &UserService{storage: storage}
}

// Create inserts the user. Retrying the same create never errors: an id
// collision skips the row and returns nil.
func (s *UserService) Create(ctx context.Context, u *core.User) (*core.User, error) {
	return s.storage.CreateUser(ctx, u)
}

func (s *UserService) Get(ctx context.Context, id int32) (*core.User, error) {
	return s.storage.GetUser(ctx, id)
}

// Update replaces every field of the user identified by u.ID. The id
// itself is immutable: it selects the row and is never rewritten.
func (s *UserService) Update(ctx context.Context, u *core.User) (*core.User, error) {
	return s.storage.UpdateUser(ctx, u)
}

// Delete removes the user and returns the deleted row for client
// confirmation.
func (s *UserService) Delete(ctx context.Context, id int32) (*core.User, error) {
	return s.storage.DeleteUser(ctx, id)
}
