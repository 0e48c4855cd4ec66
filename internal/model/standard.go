package model

import "time"

type Subject string

const (
	SubjectMath Subject = "math"
	SubjectELA  Subject = "ela"
)

func (s Subject) Valid() bool {
	return s == SubjectMath || s == SubjectELA
}

// Standard is one curriculum requirement, categorized under a Topic.
type Standard struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	TopicID  uint    `gorm:"not null;index" json:"topic_id"`
	Topic    Topic   `gorm:"foreignKey:TopicID" json:"topic"`
	Template string  `gorm:"type:text;not null" json:"template"`
	Grade    int     `gorm:"not null" json:"grade"`
	Subject  Subject `gorm:"type:varchar(8);not null" json:"subject"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
