package repository

import (
	"errors"

	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Get(id uint) (*model.User, error)
	List(skip, limit int) ([]model.User, error)
	Create(user *model.User) error
	Update(user *model.User, fields map[string]any) error
	FindByEmail(email string) (*model.User, error)
}

type userRepository struct {
	base[model.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{base: newBase[model.User](db, "User")}
}

// FindByEmail returns (nil, nil) on a miss: callers treat a missing account
// differently depending on whether they are signing up or logging in.
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
