package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/barbapp/booking-api/internal/audit"
	domain "github.com/barbapp/booking-api/internal/domain/user"
	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/models"
)

type CreateUserInput struct {
	Name        string
	Username    string
	Password    string
	Email       string
	Role        string
	ProfileInfo string
	PhoneNumber string
	Address     string
}

type CreateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cost  int
}

func NewCreateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cost int,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: audit,
		cost:  cost,
	}
}

// Execute registers a new user. The username/email pre-check decides the
// common case; the unique indexes decide the concurrent one. The returned
// record carries the password only as its hash, and the JSON mapping strips
// even that at the HTTP boundary.
func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	existing, err := uc.repo.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil && !httperr.IsBusiness(err, httperr.CodeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateCredential)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         in.Role,
		ProfileInfo:  in.ProfileInfo,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
