package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barbapp/booking-api/internal/domain/user"
	"github.com/barbapp/booking-api/internal/httperr"
	"github.com/barbapp/booking-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByUsernameOrEmail(
	ctx context.Context,
	username string,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// The unique indexes on username and email close the race the
		// pre-insert check leaves open: two concurrent signups can both
		// pass the check, but only one insert survives.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness(httperr.CodeDuplicateCredential)
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {

	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness(httperr.CodeDuplicateCredential)
		}
		return err
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
