package repository

import (
	"errors"
	"strings"

	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// base is the generic entity store every per-entity repository embeds.
// Lookups that miss return a NotFound error naming the entity.
type base[T any] struct {
	db     *gorm.DB
	entity string
}

func newBase[T any](db *gorm.DB, entity string) base[T] {
	return base[T]{db: db, entity: entity}
}

func (b *base[T]) Get(id uint) (*T, error) {
	var obj T
	err := b.db.First(&obj, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(b.entity, id)
	}
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

// GetManyByIDs resolves whichever of the given ids exist. Input order does
// not matter; output is ordered by primary key.
func (b *base[T]) GetManyByIDs(ids []uint) ([]T, error) {
	var objs []T
	err := b.db.Where("id IN ?", ids).Order("id ASC").Find(&objs).Error
	return objs, err
}

func (b *base[T]) List(skip, limit int) ([]T, error) {
	var objs []T
	err := b.db.Order("id ASC").Offset(skip).Limit(limit).Find(&objs).Error
	return objs, err
}

func (b *base[T]) Create(obj *T) error {
	return b.db.Create(obj).Error
}

// Update overwrites only the fields present in the map; everything else is
// left untouched.
func (b *base[T]) Update(obj *T, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := b.db.Model(obj).Updates(fields).Error; err != nil {
		return err
	}
	return b.db.First(obj).Error
}

// isForeignKeyViolation recognizes constraint failures from Postgres
// (SQLSTATE 23503) and from the sqlite driver used in tests.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint")
}
