package repository

import (
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
)

type CardRepository interface {
	Get(id uint) (*model.Card, error)
	GetWithResource(id uint) (*model.Card, error)
	Create(card *model.Card) error
	CreateMany(cards []model.Card) error
	Update(card *model.Card, fields map[string]any) error
}

type cardRepository struct {
	base[model.Card]
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{base: newBase[model.Card](db, "Card")}
}

func (r *cardRepository) GetWithResource(id uint) (*model.Card, error) {
	card, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.First(&card.Resource, card.ResourceID).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (r *cardRepository) CreateMany(cards []model.Card) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&cards).Error
	})
}
