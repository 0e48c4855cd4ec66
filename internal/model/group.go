package model

import "time"

// Group is a label plus a membership set, e.g. one class of students and
// their teachers. Membership is checked when a goal is created, not stored
// on the goal afterward.
type Group struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Label string `gorm:"not null" json:"label"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserGroup is the membership join row. Kept as an explicit model so
// membership checks are indexed lookups rather than association traversal.
type UserGroup struct {
	UserID  uint `gorm:"primaryKey" json:"user_id"`
	GroupID uint `gorm:"primaryKey" json:"group_id"`
}

func (UserGroup) TableName() string { return "user_group" }
