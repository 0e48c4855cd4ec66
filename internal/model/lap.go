package model

import "time"

// Lap is one timed practice session a student runs against one Resource
// under a Goal. The (GoalID, ResourceID) pair must be an existing
// goal_resource link.
type Lap struct {
	ID         uint `gorm:"primarykey" json:"id"`
	GoalID     uint `gorm:"not null" json:"goal_id"`
	ResourceID uint `gorm:"not null" json:"resource_id"`

	StartTS time.Time  `gorm:"autoCreateTime" json:"start_ts"`
	EndTS   *time.Time `json:"end_ts,omitempty"`
	Score   *float64   `json:"score,omitempty"`

	Attempts []Attempt `gorm:"foreignKey:LapID" json:"attempts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
