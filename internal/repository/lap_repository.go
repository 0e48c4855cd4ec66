package repository

import (
	"errors"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
)

type LapRepository interface {
	Get(id uint) (*model.Lap, error)
	GetWithAttempts(id uint) (*model.Lap, error)
	Create(lap *model.Lap) error
	Update(lap *model.Lap, fields map[string]any) error
}

type lapRepository struct {
	base[model.Lap]
}

func NewLapRepository(db *gorm.DB) LapRepository {
	return &lapRepository{base: newBase[model.Lap](db, "Lap")}
}

func (r *lapRepository) GetWithAttempts(id uint) (*model.Lap, error) {
	var lap model.Lap
	err := r.db.
		Preload("Attempts").
		Preload("Attempts.Card").
		First(&lap, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Lap", id)
	}
	if err != nil {
		return nil, err
	}
	return &lap, nil
}
