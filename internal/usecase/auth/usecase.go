package auth

import (
	"context"
	"errors"

	"complaintflow-backend/internal/domain/user"
	"complaintflow-backend/pkg/password"
	"complaintflow-backend/pkg/token"

	"gorm.io/gorm"
)

// ErrInvalidCredentials means the password did not match. Unknown users keep
// surfacing as user.ErrNotFound to preserve the reference API's 404.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Usecase struct {
	users  user.Repository
	tokens *token.Manager
}

func NewUsecase(users user.Repository, tokens *token.Manager) *Usecase {
	return &Usecase{users: users, tokens: tokens}
}

type UserSummary struct {
	ID    uint64    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

type LoginOutput struct {
	Token string
	User  UserSummary
}

// Login verifies the password against the stored bcrypt hash and issues a
// signed session credential embedding {id, role, name}.
func (u *Usecase) Login(ctx context.Context, email, plain string) (*LoginOutput, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	if !password.Verify(usr.PasswordHash, plain) {
		return nil, ErrInvalidCredentials
	}

	tok, err := u.tokens.Issue(usr.ID, string(usr.Role), usr.Name)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Token: tok,
		User:  UserSummary{ID: usr.ID, Name: usr.Name, Email: usr.Email, Role: usr.Role},
	}, nil
}
