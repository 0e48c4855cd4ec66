package model

import "time"

// Goal assigns one Standard's practice to one student by one teacher.
// Group membership of both parties is verified at creation time only; the
// group is not stored on the row.
type Goal struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	TeacherID  uint     `gorm:"not null;index" json:"-"`
	StudentID  uint     `gorm:"not null;index" json:"-"`
	StandardID uint     `gorm:"not null" json:"-"`
	Teacher    User     `gorm:"foreignKey:TeacherID" json:"teacher"`
	Student    User     `gorm:"foreignKey:StudentID" json:"student"`
	Standard   Standard `gorm:"foreignKey:StandardID" json:"standard"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   time.Time  `gorm:"not null" json:"end_date"`
	Accuracy  *float64   `json:"accuracy,omitempty"`
	NTrials   *int       `json:"n_trials,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalResource links one Resource to one Goal. Laps hang off the link via a
// composite foreign key, which makes a link un-deletable while any lap
// recorded against it still exists.
type GoalResource struct {
	GoalID     uint `gorm:"primaryKey" json:"goal_id"`
	ResourceID uint `gorm:"primaryKey" json:"resource_id"`

	Laps []Lap `gorm:"foreignKey:GoalID,ResourceID;references:GoalID,ResourceID" json:"-"`
}

func (GoalResource) TableName() string { return "goal_resource" }
