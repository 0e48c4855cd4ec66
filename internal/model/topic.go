package model

import "time"

type Topic struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Description string `gorm:"not null" json:"description"`

	Standards []Standard `gorm:"foreignKey:TopicID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
