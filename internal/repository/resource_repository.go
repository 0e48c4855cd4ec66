package repository

import (
	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResourceRepository interface {
	Get(id uint) (*model.Resource, error)
	GetManyByIDs(ids []uint) ([]model.Resource, error)
	Create(resource *model.Resource) error
	Update(resource *model.Resource, fields map[string]any) error
	ByCreator(creatorID uint) ([]model.Resource, error)
	ByStandard(standardID uint) ([]model.Resource, error)
	Standards(resourceID uint) ([]model.Standard, error)
	Cards(resourceID uint) ([]model.Card, error)
	LinkStandard(resourceID, standardID uint) error
	LapCount(resourceID uint) (int64, error)
	DeleteWithLinks(resourceID uint) error
}

type resourceRepository struct {
	base[model.Resource]
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{base: newBase[model.Resource](db, "Resource")}
}

func (r *resourceRepository) ByCreator(creatorID uint) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.Where("creator_id = ?", creatorID).Order("id ASC").Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) ByStandard(standardID uint) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.
		Joins("JOIN standard_resource sr ON sr.resource_id = resources.id").
		Where("sr.standard_id = ?", standardID).
		Order("resources.id ASC").
		Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) Standards(resourceID uint) ([]model.Standard, error) {
	var standards []model.Standard
	err := r.db.Preload("Topic").
		Joins("JOIN standard_resource sr ON sr.standard_id = standards.id").
		Where("sr.resource_id = ?", resourceID).
		Order("standards.id ASC").
		Find(&standards).Error
	return standards, err
}

func (r *resourceRepository) Cards(resourceID uint) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.Where("resource_id = ?", resourceID).Order("id ASC").Find(&cards).Error
	return cards, err
}

// LinkStandard inserts the join row if absent. Linking the same pair twice
// leaves exactly one row.
func (r *resourceRepository) LinkStandard(resourceID, standardID uint) error {
	link := model.StandardResource{StandardID: standardID, ResourceID: resourceID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// LapCount counts laps recorded against any goal link of this resource.
func (r *resourceRepository) LapCount(resourceID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Lap{}).Where("resource_id = ?", resourceID).Count(&count).Error
	return count, err
}

// DeleteWithLinks removes the resource together with its cards, standard
// links and lap-free goal links, all in one transaction. Callers must have
// verified there are no dependent laps; the composite FK on laps is the
// backstop if a lap lands concurrently.
func (r *resourceRepository) DeleteWithLinks(resourceID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource_id = ?", resourceID).Delete(&model.StandardResource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resource_id = ?", resourceID).Delete(&model.GoalResource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resource_id = ?", resourceID).Delete(&model.Card{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Resource{}, resourceID).Error
	})
	if isForeignKeyViolation(err) {
		return apperr.Conflictf("Resource with ID %d has laps recorded against it and cannot be deleted", resourceID)
	}
	return err
}
