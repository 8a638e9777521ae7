package user

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	// List returns all users, newest first. Password hashes stay internal
	// (the entity never serializes them).
	List(ctx context.Context) ([]User, error)
}
