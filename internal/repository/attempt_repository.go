package repository

import (
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Get(id uint) (*model.Attempt, error)
	Create(attempt *model.Attempt) error
}

type attemptRepository struct {
	base[model.Attempt]
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{base: newBase[model.Attempt](db, "Attempt")}
}
