package model

import "time"

// Card is a single flashcard. The answer is the comparison target for
// grading: case and surrounding/internal whitespace are ignored.
type Card struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	ResourceID uint     `gorm:"not null;index" json:"resource_id"`
	Resource   Resource `gorm:"foreignKey:ResourceID" json:"-"`
	Question   string   `gorm:"type:text;not null" json:"question"`
	Answer     string   `gorm:"type:text;not null" json:"answer"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
