package repository

import (
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepository interface {
	Get(id uint) (*model.Group, error)
	Create(group *model.Group) error
	AddMember(groupID, userID uint) error
	HasMember(groupID, userID uint) (bool, error)
}

type groupRepository struct {
	base[model.Group]
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{base: newBase[model.Group](db, "Group")}
}

// AddMember is idempotent: re-adding an existing member is a no-op.
func (r *groupRepository) AddMember(groupID, userID uint) error {
	link := model.UserGroup{UserID: userID, GroupID: groupID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

func (r *groupRepository) HasMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserGroup{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}
