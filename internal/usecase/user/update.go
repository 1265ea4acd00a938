package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/barbapp/booking-api/internal/domain/user"
	"github.com/barbapp/booking-api/internal/models"
)

type UpdateUserInput struct {
	Name        string
	Username    string
	Password    string
	Email       string
	Role        string
	ProfileInfo string
	PhoneNumber string
	Address     string
}

type UpdateUser struct {
	repo domain.Repository
	cost int
}

func NewUpdateUser(repo domain.Repository, cost int) *UpdateUser {
	return &UpdateUser{repo: repo, cost: cost}
}

// Execute replaces every mutable field with the supplied values. The caller
// sends the full record; there is no partial merge. The one exception is the
// password: an empty password means "unchanged", and the stored hash must
// survive the update untouched.
func (uc *UpdateUser) Execute(
	ctx context.Context,
	id uint,
	in UpdateUserInput,
) (*models.User, error) {

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Name = in.Name
	u.Username = in.Username
	u.Email = in.Email
	u.Role = in.Role
	u.ProfileInfo = in.ProfileInfo
	u.PhoneNumber = in.PhoneNumber
	u.Address = in.Address

	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
