package model

import "time"

type ResourceFormat string

const (
	FormatFlashcard ResourceFormat = "flashcard"
	FormatPDF       ResourceFormat = "pdf"
)

func (f ResourceFormat) Valid() bool {
	return f == FormatFlashcard || f == FormatPDF
}

// Resource is teacher-authored learning content: a flashcard deck or a
// document. Private resources are only visible to their creator.
type Resource struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Private   bool           `gorm:"not null" json:"private"`
	Format    ResourceFormat `gorm:"type:varchar(16);default:'flashcard'" json:"format"`
	CreatorID uint           `gorm:"not null;index" json:"-"`
	Creator   *User          `gorm:"foreignKey:CreatorID" json:"-"`

	Cards []Card `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StandardResource links one Resource to one curriculum Standard.
type StandardResource struct {
	StandardID uint `gorm:"primaryKey" json:"standard_id"`
	ResourceID uint `gorm:"primaryKey" json:"resource_id"`
}

func (StandardResource) TableName() string { return "standard_resource" }
