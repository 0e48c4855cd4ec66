package model

import "time"

// Attempt is one graded answer submission for one Card within a Lap.
// Correct is computed once at creation and never recomputed, so attempt
// history stays valid even if the card's answer is edited later.
type Attempt struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	LapID      uint   `gorm:"not null;index" json:"lap_id"`
	CardID     uint   `gorm:"not null" json:"card_id"`
	Card       Card   `gorm:"foreignKey:CardID" json:"card"`
	Submission string `gorm:"type:text;not null" json:"submission"`
	Correct    bool   `gorm:"not null" json:"correct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
