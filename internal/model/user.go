package model

import "time"

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the closed set of roles. The empty role
// is allowed: accounts can exist before being assigned a classroom role.
func (r Role) Valid() bool {
	return r == "" || r == RoleTeacher || r == RoleStudent
}

type User struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	DisplayName    string `json:"display_name,omitempty"`
	Role           Role   `gorm:"type:varchar(16)" json:"role,omitempty"`
	IsActive       bool   `gorm:"not null" json:"-"`
	IsSuperuser    bool   `gorm:"not null" json:"is_superuser"`
	HashedPassword string `gorm:"not null" json:"-"`

	Resources []Resource `gorm:"foreignKey:CreatorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
