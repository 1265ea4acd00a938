package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/barbapp/booking-api/internal/domain/user"
	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/models"
)

type AuthenticateUser struct {
	repo domain.Repository

	// Verified against when the username does not exist, so the miss path
	// costs the same bcrypt work as the wrong-password path.
	dummyHash []byte
}

func NewAuthenticateUser(repo domain.Repository, cost int) *AuthenticateUser {
	dummy, err := bcrypt.GenerateFromPassword([]byte("barbapp-dummy-password"), cost)
	if err != nil {
		// only reachable with an out-of-range cost factor
		panic(err)
	}

	return &AuthenticateUser{
		repo:      repo,
		dummyHash: dummy,
	}
}

// Execute verifies a username/password pair. Unknown usernames and wrong
// passwords fail with the same error so callers cannot enumerate accounts.
// On success the stored hash is cleared before the record is returned.
func (uc *AuthenticateUser) Execute(
	ctx context.Context,
	username string,
	password string,
) (*models.User, error) {

	u, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(password))
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	u.PasswordHash = ""
	return u, nil
}
