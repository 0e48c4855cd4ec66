package repository

import (
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
)

type TopicRepository interface {
	Get(id uint) (*model.Topic, error)
	List(skip, limit int) ([]model.Topic, error)
	Create(topic *model.Topic) error
}

type topicRepository struct {
	base[model.Topic]
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{base: newBase[model.Topic](db, "Topic")}
}
