package repository

import (
	"errors"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
)

type StandardRepository interface {
	Get(id uint) (*model.Standard, error)
	GetManyByIDs(ids []uint) ([]model.Standard, error)
	List(skip, limit int) ([]model.Standard, error)
	Create(standard *model.Standard) error
}

type standardRepository struct {
	base[model.Standard]
}

func NewStandardRepository(db *gorm.DB) StandardRepository {
	return &standardRepository{base: newBase[model.Standard](db, "Standard")}
}

// Get overrides the base lookup to preload the owning topic, which every
// standard response includes.
func (r *standardRepository) Get(id uint) (*model.Standard, error) {
	var standard model.Standard
	err := r.db.Preload("Topic").First(&standard, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Standard", id)
	}
	if err != nil {
		return nil, err
	}
	return &standard, nil
}

func (r *standardRepository) List(skip, limit int) ([]model.Standard, error) {
	var standards []model.Standard
	err := r.db.Preload("Topic").Order("id ASC").Offset(skip).Limit(limit).Find(&standards).Error
	return standards, err
}
