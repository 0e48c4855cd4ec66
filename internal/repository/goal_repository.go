package repository

import (
	"errors"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository interface {
	Get(id uint) (*model.Goal, error)
	Create(goal *model.Goal) error
	Resources(goalID uint) ([]model.Resource, error)
	LinkResource(goalID, resourceID uint) error
	HasLink(goalID, resourceID uint) (bool, error)
	LapCount(goalID uint) (int64, error)
	DeleteWithLinks(goalID uint) error
}

type goalRepository struct {
	base[model.Goal]
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{base: newBase[model.Goal](db, "Goal")}
}

func (r *goalRepository) Get(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.
		Preload("Teacher").
		Preload("Student").
		Preload("Standard").
		Preload("Standard.Topic").
		First(&goal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Goal", id)
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Resources returns the goal's linked resources with their cards, in link
// insertion order.
func (r *goalRepository) Resources(goalID uint) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.Preload("Cards").
		Joins("JOIN goal_resource gr ON gr.resource_id = resources.id").
		Where("gr.goal_id = ?", goalID).
		Order("resources.id ASC").
		Find(&resources).Error
	return resources, err
}

// LinkResource inserts the join row if absent; linking the same pair twice
// leaves exactly one row.
func (r *goalRepository) LinkResource(goalID, resourceID uint) error {
	link := model.GoalResource{GoalID: goalID, ResourceID: resourceID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

func (r *goalRepository) HasLink(goalID, resourceID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.GoalResource{}).
		Where("goal_id = ? AND resource_id = ?", goalID, resourceID).
		Count(&count).Error
	return count > 0, err
}

func (r *goalRepository) LapCount(goalID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lap{}).Where("goal_id = ?", goalID).Count(&count).Error
	return count, err
}

// DeleteWithLinks removes the goal and its resource links in one
// transaction. Callers verify no laps exist first; the composite FK on laps
// is the backstop.
func (r *goalRepository) DeleteWithLinks(goalID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goalID).Delete(&model.GoalResource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Goal{}, goalID).Error
	})
	if isForeignKeyViolation(err) {
		return apperr.Conflictf("Goal with ID %d has laps recorded against it and cannot be deleted", goalID)
	}
	return err
}
